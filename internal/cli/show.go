package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/tikzgo/tikzgo/pkg/tikz"
)

// showCommand creates the show command, which compiles a figure and opens
// the resulting PDF in the system viewer.
func (c *CLI) showCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Compile a figure and open the PDF in the default viewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShow(cmd.Context(), args[0], noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the compiled PDF cache")
	return cmd
}

func (c *CLI) runShow(ctx context.Context, input string, noCache bool) error {
	source, err := readSource(input)
	if err != nil {
		return err
	}

	renderer, err := c.newRenderer(ctx, noCache, 0)
	if err != nil {
		return err
	}

	id := uuid.NewString()
	pdf, err := c.compileWithSpinner(ctx, renderer, id, tikz.DocumentFromCode(source))
	if err != nil {
		return err
	}

	// The viewer reads the file after we return, so keep it in the
	// figure's working directory rather than a self-cleaning temp file.
	wd := renderer.Workdir(id)
	if err := wd.Ensure(); err != nil {
		return err
	}
	path := filepath.Join(wd.Path(), baseName(input)+".pdf")
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	printSuccess("Opening %s", path)
	return browser.OpenFile(path)
}

func baseName(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
