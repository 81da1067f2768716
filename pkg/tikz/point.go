package tikz

// Point is a pair of coordinates in the TikZ plane.
// Coordinates are never validated; any float64 values are legal.
type Point struct {
	X, Y float64
}

// XY is shorthand for constructing a Point.
func XY(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the component-wise difference of p and q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns p with both coordinates multiplied by k.
func (p Point) Scale(k float64) Point { return Point{X: p.X * k, Y: p.Y * k} }

// String renders the point in TikZ coordinate syntax, e.g. "(2, 2.5)".
func (p Point) String() string {
	return "(" + num(p.X) + ", " + num(p.Y) + ")"
}
