package tikz

import "math"

// Arc is a circular arc starting at Position and sweeping from StartAngle to
// EndAngle (degrees) with the given radius.
type Arc struct {
	Position   Point
	StartAngle float64
	EndAngle   float64
	Radius     float64
	Options    string
}

// NewArc creates an arc with free-form style options.
func NewArc(position Point, startAngle, endAngle, radius float64, options string) *Arc {
	return &Arc{
		Position:   position,
		StartAngle: startAngle,
		EndAngle:   endAngle,
		Radius:     radius,
		Options:    options,
	}
}

// Shift translates the arc's starting position by (dx, dy).
func (a *Arc) Shift(dx, dy float64) {
	a.Position = a.Position.Add(Point{X: dx, Y: dy})
}

// Scale multiplies the position and radius by k, scaling about the origin.
// Angles are unchanged.
func (a *Arc) Scale(k float64) {
	a.Position = a.Position.Scale(k)
	a.Radius *= math.Abs(k)
}

func (a *Arc) Code() string {
	return "\\draw" + brackets(a.Options) + " " + a.Position.String() +
		" arc (" + num(a.StartAngle) + ":" + num(a.EndAngle) + ":" + num(a.Radius) + ");"
}

var _ Drawable = (*Arc)(nil)
