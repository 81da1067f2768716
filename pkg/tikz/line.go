package tikz

// Line is a path between two points drawn with the TikZ "to" operation.
// ToOptions holds options for the to operation itself (e.g. "out=45, in=135")
// and renders only when non-empty.
type Line struct {
	Start     Point
	End       Point
	Options   string
	ToOptions string
}

// NewLine creates a straight line with free-form style options.
func NewLine(start, end Point, options string) *Line {
	return &Line{Start: start, End: end, Options: options}
}

// Midpoint returns the point halfway between the endpoints.
func (l *Line) Midpoint() Point {
	return Point{X: (l.Start.X + l.End.X) / 2, Y: (l.Start.Y + l.End.Y) / 2}
}

// Shift translates both endpoints by (dx, dy).
func (l *Line) Shift(dx, dy float64) {
	delta := Point{X: dx, Y: dy}
	l.Start = l.Start.Add(delta)
	l.End = l.End.Add(delta)
}

// Scale multiplies both endpoints by k, scaling about the origin.
func (l *Line) Scale(k float64) {
	l.Start = l.Start.Scale(k)
	l.End = l.End.Scale(k)
}

func (l *Line) Code() string {
	return "\\draw" + brackets(l.Options) + " " + l.Start.String() +
		" to" + brackets(l.ToOptions) + " " + l.End.String() + ";"
}

var _ Drawable = (*Line)(nil)
