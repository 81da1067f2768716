package crop

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Crop policy constants. Horizontal bounds are expanded to cover at least
// the central band of the page so wide diagrams are never clipped too
// aggressively; vertical bounds get a small whitespace padding.
const (
	minLeftFraction  = 0.20 // left bound clamps to at most 20% of width
	minRightFraction = 0.80 // right bound clamps to at least 80% of width
	verticalPadding  = 0.02 // padding fraction of height on each side
)

// FromImage converts an image into a grayscale intensity grid.
func FromImage(img image.Image) Grid {
	b := img.Bounds()
	g := make(Grid, b.Dy())
	for y := range g {
		g[y] = make([]uint8, b.Dx())
		for x := range g[y] {
			c := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			g[y][x] = c.Y
		}
	}
	return g
}

// Window computes the crop window for a grid. The returned rectangle uses
// exclusive upper bounds, so the last ink row and column are always inside
// the window. A grid with no ink at all yields the full extent.
func Window(g Grid) image.Rectangle {
	if len(g) == 0 || len(g[0]) == 0 {
		return image.Rectangle{}
	}
	height, width := len(g), len(g[0])

	y0, y1 := FindStartBoundary(g), FindEndBoundary(g)
	t := g.Transpose()
	x0, x1 := FindStartBoundary(t), FindEndBoundary(t)
	if y0 == NoBoundary || x0 == NoBoundary {
		return image.Rect(0, 0, width, height)
	}

	// Keep at least the central 20%-80% band horizontally.
	x0 = min(x0, int(minLeftFraction*float64(width)))
	xEnd := max(x1+1, int(minRightFraction*float64(width)))

	// Pad vertically by 2% of the height, clamped to the image extent.
	pad := int(verticalPadding * float64(height))
	y0 = max(0, y0-pad)
	yEnd := min(height, y1+1+pad)

	return image.Rect(x0, y0, xEnd, yEnd)
}

// Image returns img cropped to the window around its drawn content.
func Image(img image.Image) image.Image {
	win := Window(FromImage(img)).Add(img.Bounds().Min)
	out := image.NewRGBA(image.Rect(0, 0, win.Dx(), win.Dy()))
	draw.Draw(out, out.Bounds(), img, win.Min, draw.Src)
	return out
}

// Resize scales an image by the given factor using bilinear interpolation.
func Resize(img image.Image, scale float64) image.Image {
	b := img.Bounds()
	w := int(float64(b.Dx()) * scale)
	h := int(float64(b.Dy()) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(out, out.Bounds(), img, b, xdraw.Src, nil)
	return out
}
