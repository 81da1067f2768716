package tikz

import "math"

// Rectangle is an axis-aligned rectangle defined by two corner points.
//
// The corners are stored exactly as given; nothing requires LeftCorner to be
// below or left of RightCorner. Rendering preserves the raw corner order,
// while all derived geometry (Width, Height, Center, compass points) is
// normalized through min/max per axis, so it is independent of corner order.
type Rectangle struct {
	LeftCorner  Point
	RightCorner Point
	Options     string
}

// NewRectangle creates a rectangle from two corners and free-form style
// options. Options may be empty.
func NewRectangle(left, right Point, options string) *Rectangle {
	return &Rectangle{LeftCorner: left, RightCorner: right, Options: options}
}

// Width returns the horizontal extent, |right.x - left.x|.
func (r *Rectangle) Width() float64 {
	return math.Abs(r.RightCorner.X - r.LeftCorner.X)
}

// Height returns the vertical extent, |right.y - left.y|.
func (r *Rectangle) Height() float64 {
	return math.Abs(r.RightCorner.Y - r.LeftCorner.Y)
}

// Center returns the midpoint of the two corners.
func (r *Rectangle) Center() Point {
	return Point{
		X: (r.LeftCorner.X + r.RightCorner.X) / 2,
		Y: (r.LeftCorner.Y + r.RightCorner.Y) / 2,
	}
}

// North returns the midpoint of the top edge.
func (r *Rectangle) North() Point {
	minX, maxX, _, maxY := r.normalized()
	return Point{X: (minX + maxX) / 2, Y: maxY}
}

// South returns the midpoint of the bottom edge.
func (r *Rectangle) South() Point {
	minX, maxX, minY, _ := r.normalized()
	return Point{X: (minX + maxX) / 2, Y: minY}
}

// East returns the midpoint of the right edge.
func (r *Rectangle) East() Point {
	_, maxX, minY, maxY := r.normalized()
	return Point{X: maxX, Y: (minY + maxY) / 2}
}

// West returns the midpoint of the left edge.
func (r *Rectangle) West() Point {
	minX, _, minY, maxY := r.normalized()
	return Point{X: minX, Y: (minY + maxY) / 2}
}

// Shift translates both corners by (dx, dy).
func (r *Rectangle) Shift(dx, dy float64) {
	delta := Point{X: dx, Y: dy}
	r.LeftCorner = r.LeftCorner.Add(delta)
	r.RightCorner = r.RightCorner.Add(delta)
}

// Scale multiplies both corners by k, scaling about the origin.
func (r *Rectangle) Scale(k float64) {
	r.LeftCorner = r.LeftCorner.Scale(k)
	r.RightCorner = r.RightCorner.Scale(k)
}

// Code renders the draw command using the raw corners in their given order.
func (r *Rectangle) Code() string {
	return "\\draw" + brackets(r.Options) + " " + r.LeftCorner.String() +
		" rectangle " + r.RightCorner.String() + ";"
}

// normalized returns min/max of x and y independently, so compass points do
// not depend on which corner was nominally "left".
func (r *Rectangle) normalized() (minX, maxX, minY, maxY float64) {
	minX = math.Min(r.LeftCorner.X, r.RightCorner.X)
	maxX = math.Max(r.LeftCorner.X, r.RightCorner.X)
	minY = math.Min(r.LeftCorner.Y, r.RightCorner.Y)
	maxY = math.Max(r.LeftCorner.Y, r.RightCorner.Y)
	return minX, maxX, minY, maxY
}

var _ Drawable = (*Rectangle)(nil)
