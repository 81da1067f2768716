package tikz

import (
	"strings"

	"github.com/google/uuid"
)

// Picture is a tikzpicture environment: an ordered sequence of drawables
// plus preamble and postamble fragments for environment-wide directives.
//
// Preamble fragments render in insertion order before the begin statement;
// postamble fragments render in reverse insertion order after the end
// statement, so nested begin/end pairs close correctly.
type Picture struct {
	id        string
	options   string
	drawables []Drawable
	preamble  *fragments
	postamble *fragments
}

// PictureOption configures a new picture.
type PictureOption func(*Picture)

// WithOptions sets the tikzpicture environment options, e.g. "scale=2".
func WithOptions(options string) PictureOption {
	return func(p *Picture) { p.options = options }
}

// Centered wraps the picture in a center environment.
func Centered() PictureOption {
	return func(p *Picture) {
		p.preamble.set("center", "\\begin{center}\n")
		p.postamble.set("center", "\\end{center}\n")
	}
}

// NewPicture creates an empty picture. Every picture gets a unique instance
// ID, used downstream to name its compilation working directory.
func NewPicture(opts ...PictureOption) *Picture {
	p := &Picture{
		id:        uuid.NewString(),
		preamble:  newFragments(),
		postamble: newFragments(),
	}
	// Reserve the center slot first so later preamble entries always come
	// after it, matching the postamble's reverse-order close.
	p.preamble.set("center", "")
	p.postamble.set("center", "")
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ID returns the picture's unique instance identifier.
func (p *Picture) ID() string { return p.id }

// Options returns the tikzpicture environment options.
func (p *Picture) Options() string { return p.options }

// Draw appends drawables to the picture in render order.
func (p *Picture) Draw(ds ...Drawable) {
	p.drawables = append(p.drawables, ds...)
}

// Drawables returns the picture's drawables in insertion order.
func (p *Picture) Drawables() []Drawable {
	return p.drawables
}

// Rectangle creates a rectangle, draws it, and returns it.
func (p *Picture) Rectangle(left, right Point, options string) *Rectangle {
	r := NewRectangle(left, right, options)
	p.Draw(r)
	return r
}

// Scope creates a nested scope, draws it, and returns it.
func (p *Picture) Scope(options string) *Scope {
	s := NewScope(options)
	p.Draw(s)
	return s
}

// Tikzset registers a named style in the preamble and returns it.
// Re-registering the same name overwrites the earlier definition.
func (p *Picture) Tikzset(name, rules string) *Style {
	s := NewStyle(name, rules)
	p.AddStyles(s)
	return s
}

// AddStyles registers style definitions in the preamble, keyed by name.
func (p *Picture) AddStyles(styles ...*Style) {
	for _, s := range styles {
		p.preamble.set("tikz_style:"+s.Name, s.Code())
	}
}

// SetTdplotMainCoords sets the 3D viewing angle directive in the preamble.
// theta rotates the coordinate frame about the x axis, phi about the z axis,
// both in degrees. Calling it again overwrites the earlier directive.
func (p *Picture) SetTdplotMainCoords(theta, phi float64) {
	p.preamble.set("tdplotsetmaincoords",
		"\\tdplotsetmaincoords{"+num(theta)+"}{"+num(phi)+"}\n")
}

// Code returns the complete generated TikZ code: preamble fragments, the
// tikzpicture environment with each drawable on its own indented line, and
// the postamble fragments in reverse insertion order.
func (p *Picture) Code() string {
	var b strings.Builder
	for _, frag := range p.preamble.ordered() {
		b.WriteString(frag)
	}
	b.WriteString(p.body())
	for _, frag := range p.postamble.reversed() {
		b.WriteString(frag)
	}
	return b.String()
}

// String returns just the tikzpicture environment, without preamble or
// postamble fragments.
func (p *Picture) String() string {
	return p.body()
}

func (p *Picture) body() string {
	var b strings.Builder
	b.WriteString("\\begin{tikzpicture}" + brackets(p.options) + "\n")
	for _, d := range p.drawables {
		b.WriteString("    " + d.Code() + "\n")
	}
	b.WriteString("\\end{tikzpicture}\n")
	return b.String()
}
