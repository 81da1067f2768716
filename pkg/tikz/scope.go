package tikz

import "strings"

// Scope is a nested scope environment. It collects drawables like a picture
// but renders as a begin/end scope block, so it can itself be drawn into a
// picture or another scope.
type Scope struct {
	Options   string
	drawables []Drawable
}

// NewScope creates a scope with free-form environment options.
func NewScope(options string) *Scope {
	return &Scope{Options: options}
}

// Draw appends drawables to the scope in render order.
func (s *Scope) Draw(ds ...Drawable) {
	s.drawables = append(s.drawables, ds...)
}

// Drawables returns the scope's drawables in insertion order.
func (s *Scope) Drawables() []Drawable {
	return s.drawables
}

func (s *Scope) Code() string {
	var b strings.Builder
	b.WriteString("\\begin{scope}" + brackets(s.Options) + "\n")
	for _, d := range s.drawables {
		b.WriteString("    " + d.Code() + "\n")
	}
	b.WriteString("\\end{scope}")
	return b.String()
}

var _ Drawable = (*Scope)(nil)
