package compile

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
)

// DefaultDPI is the rasterization resolution when none is configured.
const DefaultDPI = 150

// Rasterizer converts a PDF into an ordered sequence of page images.
// The pipeline treats it as a black box.
type Rasterizer interface {
	Rasterize(ctx context.Context, pdfPath string) ([]image.Image, error)
}

// Pdftoppm rasterizes PDFs by shelling out to pdftoppm from poppler-utils.
type Pdftoppm struct {
	// DPI is the render resolution; zero means DefaultDPI.
	DPI int
}

// Rasterize renders every page of the PDF to PNG in a scratch directory and
// decodes them in page order.
func (p Pdftoppm) Rasterize(ctx context.Context, pdfPath string) ([]image.Image, error) {
	if _, err := exec.LookPath("pdftoppm"); err != nil {
		return nil, fmt.Errorf("rasterizing requires pdftoppm. Install with:\n  macOS:  brew install poppler\n  Linux:  apt install poppler-utils")
	}

	dir, err := os.MkdirTemp("", "tikzgo-pages-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	prefix := filepath.Join(dir, "page")
	cmd := exec.CommandContext(ctx, "pdftoppm", p.args(pdfPath, prefix)...)

	var errBuf bytes.Buffer
	cmd.Stderr = &errBuf
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("pdftoppm: %v: %s", err, errBuf.String())
	}

	// pdftoppm zero-pads page numbers, so name order is page order.
	paths, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	pages := make([]image.Image, 0, len(paths))
	for _, path := range paths {
		img, err := decodePNG(path)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
		}
		pages = append(pages, img)
	}
	return pages, nil
}

// args builds the pdftoppm argument list.
func (p Pdftoppm) args(pdfPath, outPrefix string) []string {
	dpi := p.DPI
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return []string{"-png", "-r", strconv.Itoa(dpi), pdfPath, outPrefix}
}

func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

var _ Rasterizer = Pdftoppm{}
