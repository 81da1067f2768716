package compile

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tikzgo/tikzgo/pkg/cache"
	"github.com/tikzgo/tikzgo/pkg/crop"
	"github.com/tikzgo/tikzgo/pkg/observability"
	"github.com/tikzgo/tikzgo/pkg/tikz"
)

// Renderer orchestrates the full pipeline from picture code to artifacts.
//
// The Renderer is stateless apart from its collaborators; multiple
// goroutines can share one Renderer as long as they render pictures with
// distinct instance IDs.
type Renderer struct {
	Compiler   Compiler
	Rasterizer Rasterizer
	Cache      cache.Cache
	Logger     *log.Logger

	// Root is where per-picture working directories are created.
	// Empty means the system temp directory.
	Root string
}

// NewRenderer creates a renderer with the given collaborators.
// Nil values fall back to Latexmk (quiet), Pdftoppm, a null cache, and the
// default logger.
func NewRenderer(c Compiler, r Rasterizer, store cache.Cache, logger *log.Logger) *Renderer {
	if c == nil {
		c = Latexmk{Quiet: true}
	}
	if r == nil {
		r = Pdftoppm{}
	}
	if store == nil {
		store = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Renderer{Compiler: c, Rasterizer: r, Cache: store, Logger: logger}
}

// PNGOptions configures preview rendering.
type PNGOptions struct {
	// NoCrop skips the content-boundary crop of the page image.
	NoCrop bool
	// Scale resizes the final preview; zero or one means no resize.
	Scale float64
}

// RenderPDF compiles the picture and returns the PDF bytes.
func (r *Renderer) RenderPDF(ctx context.Context, pic *tikz.Picture) ([]byte, error) {
	return r.CompileSource(ctx, pic.ID(), tikz.Document(pic))
}

// CompileSource compiles a complete LaTeX document and returns the PDF
// bytes. The compile cache is consulted first, keyed by the source hash; id
// names the working directory used on a miss.
func (r *Renderer) CompileSource(ctx context.Context, id, texSource string) ([]byte, error) {
	key := cache.PDFKey([]byte(texSource))
	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, "pdf")
		r.Logger.Debug("compile cache hit", "key", key[:16])
		return data, nil
	}
	observability.Cache().OnCacheMiss(ctx, "pdf")

	wd := NewWorkdir(r.Root, id)
	if err := wd.Ensure(); err != nil {
		return nil, fmt.Errorf("create workdir: %w", err)
	}
	if err := os.WriteFile(wd.TexPath(), []byte(texSource), 0o644); err != nil {
		return nil, fmt.Errorf("write tex source: %w", err)
	}

	start := time.Now()
	observability.Compile().OnCompileStart(ctx, wd.TexPath())
	pdfPath, err := r.Compiler.Compile(ctx, wd.TexPath(), wd.Path())
	observability.Compile().OnCompileComplete(ctx, wd.TexPath(), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("compiled", "pdf", pdfPath, "duration", time.Since(start).Round(time.Millisecond))

	data, err := os.ReadFile(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("read compiled pdf: %w", err)
	}
	if err := r.Cache.Set(ctx, key, data); err != nil {
		r.Logger.Warn("compile cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "pdf", len(data))
	}
	return data, nil
}

// RenderPNG compiles the picture and returns a cropped PNG preview of it.
func (r *Renderer) RenderPNG(ctx context.Context, pic *tikz.Picture, opts PNGOptions) ([]byte, error) {
	pdf, err := r.RenderPDF(ctx, pic)
	if err != nil {
		return nil, err
	}
	return r.PNGFromPDF(ctx, pic.ID(), pdf, opts)
}

// PNGFromPDF rasterizes PDF bytes and encodes the preview image. Multi-page
// documents are unexpected: the last page is used and a warning is logged.
func (r *Renderer) PNGFromPDF(ctx context.Context, id string, pdf []byte, opts PNGOptions) ([]byte, error) {
	wd := NewWorkdir(r.Root, id)
	if err := wd.Ensure(); err != nil {
		return nil, fmt.Errorf("create workdir: %w", err)
	}
	if err := os.WriteFile(wd.PDFPath(), pdf, 0o644); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}

	start := time.Now()
	observability.Compile().OnRasterizeStart(ctx, wd.PDFPath())
	pages, err := r.Rasterizer.Rasterize(ctx, wd.PDFPath())
	observability.Compile().OnRasterizeComplete(ctx, wd.PDFPath(), len(pages), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("rasterizer produced no pages for %s", wd.PDFPath())
	}

	idx := 0
	if len(pages) > 1 {
		idx = len(pages) - 1
		r.Logger.Warn("expected single-page output, using the last page",
			"pdf", wd.PDFPath(), "pages", len(pages))
	}

	img := pages[idx]
	if !opts.NoCrop {
		img = crop.Image(img)
	}
	if opts.Scale > 0 && opts.Scale != 1 {
		img = crop.Resize(img, opts.Scale)
	}
	return encodePNG(img)
}

// Workdir returns the working directory for a picture instance ID.
// Callers use it to clean up after rendering with [Workdir.Remove].
func (r *Renderer) Workdir(id string) Workdir {
	return NewWorkdir(r.Root, id)
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
