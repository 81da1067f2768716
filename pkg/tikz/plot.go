package tikz

import "strings"

// PlotCoordinates draws a plot through a sequence of points.
// PlotOptions holds options for the plot operation (e.g. "smooth cycle")
// and renders only when non-empty.
type PlotCoordinates struct {
	Points      []Point
	Options     string
	PlotOptions string
}

// NewPlotCoordinates creates a plot through the given points.
func NewPlotCoordinates(points []Point, options string) *PlotCoordinates {
	return &PlotCoordinates{Points: points, Options: options}
}

// Shift translates every point by (dx, dy).
func (p *PlotCoordinates) Shift(dx, dy float64) {
	delta := Point{X: dx, Y: dy}
	for i := range p.Points {
		p.Points[i] = p.Points[i].Add(delta)
	}
}

// Scale multiplies every point by k, scaling about the origin.
func (p *PlotCoordinates) Scale(k float64) {
	for i := range p.Points {
		p.Points[i] = p.Points[i].Scale(k)
	}
}

func (p *PlotCoordinates) Code() string {
	coords := make([]string, len(p.Points))
	for i, pt := range p.Points {
		coords[i] = pt.String()
	}
	return "\\draw" + brackets(p.Options) + " plot" + brackets(p.PlotOptions) +
		" coordinates {" + strings.Join(coords, " ") + "};"
}

var _ Drawable = (*PlotCoordinates)(nil)
