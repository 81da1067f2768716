// Package crop finds the drawn content inside a rendered page image and
// computes a crop window around it.
//
// Detection works on a grayscale intensity grid: pixels darker than a fixed
// threshold count as ink, everything else as background. Scanning the grid's
// rows gives the vertical content bounds; scanning the transposed grid gives
// the horizontal bounds with the same two functions.
package crop

// InkThreshold is the intensity below which a pixel counts as drawn content.
// Rendered LaTeX output is near-black ink on near-white background, so a
// fixed cut at 200/255 separates the two reliably.
const InkThreshold = 200

// NoBoundary is returned by FindStartBoundary and FindEndBoundary when the
// grid contains no ink at all.
const NoBoundary = -1

// Grid is a rows × columns grayscale intensity grid. Low values are ink,
// high values are background.
type Grid [][]uint8

// Transpose returns the grid with rows and columns swapped. Applying the
// boundary scans to the transposed grid yields column boundaries.
func (g Grid) Transpose() Grid {
	if len(g) == 0 || len(g[0]) == 0 {
		return Grid{}
	}
	out := make(Grid, len(g[0]))
	for x := range out {
		out[x] = make([]uint8, len(g))
		for y := range g {
			out[x][y] = g[y][x]
		}
	}
	return out
}

// FindStartBoundary scans rows from the top and returns the index of the
// first row containing ink, or NoBoundary if every row is background.
func FindStartBoundary(g Grid) int {
	for i, row := range g {
		if hasInk(row) {
			return i
		}
	}
	return NoBoundary
}

// FindEndBoundary scans rows from the bottom and returns the index of the
// last row containing ink (inclusive), or NoBoundary if every row is
// background.
func FindEndBoundary(g Grid) int {
	for i := len(g) - 1; i >= 0; i-- {
		if hasInk(g[i]) {
			return i
		}
	}
	return NoBoundary
}

func hasInk(row []uint8) bool {
	for _, px := range row {
		if px < InkThreshold {
			return true
		}
	}
	return false
}
