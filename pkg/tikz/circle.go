package tikz

import "math"

// Circle is a circle defined by its center and radius.
type Circle struct {
	Center  Point
	Radius  float64
	Options string
}

// NewCircle creates a circle with free-form style options.
func NewCircle(center Point, radius float64, options string) *Circle {
	return &Circle{Center: center, Radius: radius, Options: options}
}

// North returns the topmost point of the circle.
func (c *Circle) North() Point { return Point{X: c.Center.X, Y: c.Center.Y + c.Radius} }

// South returns the bottommost point of the circle.
func (c *Circle) South() Point { return Point{X: c.Center.X, Y: c.Center.Y - c.Radius} }

// East returns the rightmost point of the circle.
func (c *Circle) East() Point { return Point{X: c.Center.X + c.Radius, Y: c.Center.Y} }

// West returns the leftmost point of the circle.
func (c *Circle) West() Point { return Point{X: c.Center.X - c.Radius, Y: c.Center.Y} }

// Shift translates the center by (dx, dy).
func (c *Circle) Shift(dx, dy float64) {
	c.Center = c.Center.Add(Point{X: dx, Y: dy})
}

// Scale multiplies the center and radius by k, scaling about the origin.
// The radius grows by |k| regardless of the sign of k.
func (c *Circle) Scale(k float64) {
	c.Center = c.Center.Scale(k)
	c.Radius *= math.Abs(k)
}

func (c *Circle) Code() string {
	return "\\draw" + brackets(c.Options) + " " + c.Center.String() +
		" circle (" + num(c.Radius) + ");"
}

var _ Drawable = (*Circle)(nil)
