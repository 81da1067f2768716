package tikz

import "math"

// Ellipse is an axis-aligned ellipse defined by its center and semi-axes.
type Ellipse struct {
	Center  Point
	XRadius float64
	YRadius float64
	Options string
}

// NewEllipse creates an ellipse with free-form style options.
func NewEllipse(center Point, xRadius, yRadius float64, options string) *Ellipse {
	return &Ellipse{Center: center, XRadius: xRadius, YRadius: yRadius, Options: options}
}

// Shift translates the center by (dx, dy).
func (e *Ellipse) Shift(dx, dy float64) {
	e.Center = e.Center.Add(Point{X: dx, Y: dy})
}

// Scale multiplies the center and both semi-axes by k, scaling about the
// origin. The semi-axes grow by |k| regardless of the sign of k.
func (e *Ellipse) Scale(k float64) {
	e.Center = e.Center.Scale(k)
	e.XRadius *= math.Abs(k)
	e.YRadius *= math.Abs(k)
}

func (e *Ellipse) Code() string {
	return "\\draw" + brackets(e.Options) + " " + e.Center.String() +
		" ellipse (" + num(e.XRadius) + " and " + num(e.YRadius) + ");"
}

var _ Drawable = (*Ellipse)(nil)
