package crop

import (
	"image"
	"image/color"
	"testing"
)

// grid builds a rows×cols background grid with ink painted in the given
// inclusive row/column span.
func grid(rows, cols int, inkY0, inkY1, inkX0, inkX1 int) Grid {
	g := make(Grid, rows)
	for y := range g {
		g[y] = make([]uint8, cols)
		for x := range g[y] {
			g[y][x] = 255
			if y >= inkY0 && y <= inkY1 && x >= inkX0 && x <= inkX1 {
				g[y][x] = 0
			}
		}
	}
	return g
}

func blank(rows, cols int) Grid {
	return grid(rows, cols, -1, -1, -1, -1)
}

func TestFindBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		g         Grid
		wantStart int
		wantEnd   int
	}{
		{
			name:      "ink in the middle",
			g:         grid(10, 10, 3, 5, 4, 6),
			wantStart: 3,
			wantEnd:   5,
		},
		{
			name:      "single ink row",
			g:         grid(10, 10, 7, 7, 0, 9),
			wantStart: 7,
			wantEnd:   7,
		},
		{
			name:      "ink touching both edges",
			g:         grid(10, 10, 0, 9, 5, 5),
			wantStart: 0,
			wantEnd:   9,
		},
		{
			name:      "all background",
			g:         blank(10, 10),
			wantStart: NoBoundary,
			wantEnd:   NoBoundary,
		},
		{
			name:      "empty grid",
			g:         Grid{},
			wantStart: NoBoundary,
			wantEnd:   NoBoundary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindStartBoundary(tt.g); got != tt.wantStart {
				t.Errorf("FindStartBoundary() = %d, want %d", got, tt.wantStart)
			}
			if got := FindEndBoundary(tt.g); got != tt.wantEnd {
				t.Errorf("FindEndBoundary() = %d, want %d", got, tt.wantEnd)
			}
		})
	}
}

// The same two functions applied to the transposed grid yield the column
// boundaries. This must hold for the sentinel as well.
func TestBoundariesOnTransposedGrid(t *testing.T) {
	g := grid(10, 12, 3, 5, 4, 6)
	tr := g.Transpose()

	if got := FindStartBoundary(tr); got != 4 {
		t.Errorf("start column = %d, want 4", got)
	}
	if got := FindEndBoundary(tr); got != 6 {
		t.Errorf("end column = %d, want 6", got)
	}

	trBlank := blank(10, 12).Transpose()
	if got := FindStartBoundary(trBlank); got != NoBoundary {
		t.Errorf("start column of blank grid = %d, want %d", got, NoBoundary)
	}
	if got := FindEndBoundary(trBlank); got != NoBoundary {
		t.Errorf("end column of blank grid = %d, want %d", got, NoBoundary)
	}
}

func TestTranspose(t *testing.T) {
	g := Grid{{1, 2, 3}, {4, 5, 6}}
	tr := g.Transpose()
	if len(tr) != 3 || len(tr[0]) != 2 {
		t.Fatalf("Transpose() dimensions = %dx%d, want 3x2", len(tr), len(tr[0]))
	}
	if tr[0][1] != 4 || tr[2][0] != 3 {
		t.Errorf("Transpose() values wrong: %v", tr)
	}
}

func TestThresholdBoundaryValue(t *testing.T) {
	g := blank(3, 3)
	g[1][1] = InkThreshold // exactly at threshold counts as background
	if got := FindStartBoundary(g); got != NoBoundary {
		t.Errorf("FindStartBoundary() = %d, want %d", got, NoBoundary)
	}
	g[1][1] = InkThreshold - 1
	if got := FindStartBoundary(g); got != 1 {
		t.Errorf("FindStartBoundary() = %d, want 1", got)
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name string
		g    Grid
		want image.Rectangle
	}{
		{
			name: "central ink expands to horizontal band",
			g:    grid(10, 10, 3, 5, 4, 6),
			want: image.Rect(2, 3, 8, 6),
		},
		{
			name: "blank grid keeps full extent",
			g:    blank(10, 10),
			want: image.Rect(0, 0, 10, 10),
		},
		{
			name: "wide ink beyond the band is kept",
			g:    grid(10, 10, 4, 4, 0, 9),
			want: image.Rect(0, 4, 10, 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Window(tt.g); got != tt.want {
				t.Errorf("Window() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWindowVerticalPadding(t *testing.T) {
	g := grid(100, 100, 50, 50, 40, 60)
	win := Window(g)
	if win.Min.Y != 48 || win.Max.Y != 53 {
		t.Errorf("vertical bounds = [%d, %d), want [48, 53)", win.Min.Y, win.Max.Y)
	}

	// Padding clamps at the image edges.
	edge := grid(100, 100, 0, 1, 40, 60)
	win = Window(edge)
	if win.Min.Y != 0 || win.Max.Y != 4 {
		t.Errorf("clamped vertical bounds = [%d, %d), want [0, 4)", win.Min.Y, win.Max.Y)
	}
}

func TestImageCrop(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	for y := 3; y <= 5; y++ {
		for x := 4; x <= 6; x++ {
			img.SetGray(x, y, color.Gray{Y: 0})
		}
	}

	out := Image(img)
	if got, want := out.Bounds().Dx(), 6; got != want {
		t.Errorf("cropped width = %d, want %d", got, want)
	}
	if got, want := out.Bounds().Dy(), 3; got != want {
		t.Errorf("cropped height = %d, want %d", got, want)
	}
}

func TestResize(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 10, 20))
	out := Resize(img, 0.5)
	if out.Bounds().Dx() != 5 || out.Bounds().Dy() != 10 {
		t.Errorf("resized bounds = %v, want 5x10", out.Bounds())
	}
}
