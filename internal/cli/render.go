package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tikzgo/tikzgo/pkg/compile"
	"github.com/tikzgo/tikzgo/pkg/errors"
	"github.com/tikzgo/tikzgo/pkg/observability"
	"github.com/tikzgo/tikzgo/pkg/tikz"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file path (or base path for multiple formats)
	formats []string // output formats: "pdf", "png", "tex"
	dpi     int      // rasterization resolution
	scale   float64  // resize factor for PNG previews
	noCrop  bool     // skip whitespace cropping of PNG previews
	noCache bool     // bypass the compiled PDF cache
}

// renderCommand creates the render command for compiling .tikz files.
//
// Default settings:
//   - format: pdf
//   - dpi: from config (150 if unset)
//   - crop: enabled (PNG previews are trimmed to content)
//   - cache: enabled (PDFs are reused when the source is unchanged)
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Compile a .tikz file into PDF, PNG, or a full .tex document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): pdf (default), png, tex (comma-separated)")
	cmd.Flags().IntVar(&opts.dpi, "dpi", 0, "PNG resolution (default from config)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "resize factor for PNG previews")
	cmd.Flags().BoolVar(&opts.noCrop, "no-crop", false, "keep the full page in PNG previews")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the compiled PDF cache")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["pdf"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{"pdf"}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"pdf": true, "png": true, "tex": true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'pdf', 'png', or 'tex')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. If output has a
// format extension (.pdf, .png, .tex), that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// cacheRecorder observes whether the compile hit the PDF cache.
type cacheRecorder struct {
	observability.NoopCacheHooks
	hit atomic.Bool
}

func (r *cacheRecorder) OnCacheHit(ctx context.Context, keyType string) {
	r.hit.Store(true)
}

// runRender reads TikZ source from input, wraps it into a standalone
// document, and writes the requested output formats.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	source, err := readSource(input)
	if err != nil {
		return err
	}
	doc := tikz.DocumentFromCode(source)
	logger.Debugf("Wrapped %d bytes of TikZ source", len(source))

	recorder := &cacheRecorder{}
	observability.SetCacheHooks(recorder)
	defer observability.Reset()

	renderer, err := c.newRenderer(ctx, opts.noCache, opts.dpi)
	if err != nil {
		return err
	}

	base := basePath(opts.output, input)
	id := uuid.NewString()

	var pdf []byte
	prog := newProgress(logger)
	for _, format := range opts.formats {
		path := base + "." + format
		if opts.output != "" && len(opts.formats) == 1 {
			path = opts.output
		}

		switch format {
		case "tex":
			if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
		case "pdf", "png":
			if pdf == nil {
				pdf, err = c.compileWithSpinner(ctx, renderer, id, doc)
				if err != nil {
					return err
				}
			}
			data := pdf
			if format == "png" {
				data, err = renderer.PNGFromPDF(ctx, id, pdf, compile.PNGOptions{
					NoCrop: opts.noCrop,
					Scale:  opts.scale,
				})
				if err != nil {
					return err
				}
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
		}
		printFile(path)
	}
	prog.done(fmt.Sprintf("Rendered %s", input))

	if pdf != nil {
		printCompileStats(len(pdf), recorder.hit.Load())
	}
	return nil
}

// compileWithSpinner runs the LaTeX compile behind a progress spinner.
func (c *CLI) compileWithSpinner(ctx context.Context, renderer *compile.Renderer, id, doc string) ([]byte, error) {
	spinner := newSpinnerWithContext(ctx, "Compiling with latexmk...")
	spinner.Start()
	pdf, err := renderer.CompileSource(ctx, id, doc)
	if err != nil {
		spinner.StopWithError("Compilation failed")
		return nil, err
	}
	spinner.Stop()
	return pdf, nil
}

// readSource loads a TikZ source file.
func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.New(errors.ErrCodeFileNotFound, "no such file: %s", path)
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
