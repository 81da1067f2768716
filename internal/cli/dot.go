package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tikzgo/tikzgo/pkg/dot"
)

// dotOpts holds the command-line flags for the dot command.
type dotOpts struct {
	output      string
	nodeOptions string
	edgeOptions string
	scale       float64
}

// dotCommand creates the dot command, which lays out a Graphviz DOT graph
// and emits equivalent TikZ code.
func (c *CLI) dotCommand() *cobra.Command {
	opts := dotOpts{}

	cmd := &cobra.Command{
		Use:   "dot [file]",
		Short: "Convert a Graphviz DOT graph into TikZ code",
		Long: `Convert a Graphviz DOT graph into TikZ code.

Graphviz computes node positions; the output is a tikzpicture with one
node per graph node and one edge per graph edge. Without --output the
TikZ code is printed to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDot(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output .tikz file (default stdout)")
	cmd.Flags().StringVar(&opts.nodeOptions, "node-options", "", "TikZ style for nodes (default \"draw, circle\")")
	cmd.Flags().StringVar(&opts.edgeOptions, "edge-options", "", "TikZ style for edges")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "coordinate scale factor")

	return cmd
}

func (c *CLI) runDot(ctx context.Context, input string, opts *dotOpts) error {
	logger := loggerFromContext(ctx)

	src, err := readSource(input)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	pic, err := dot.ToPicture(ctx, src, dot.Options{
		NodeOptions: opts.nodeOptions,
		EdgeOptions: opts.edgeOptions,
		Scale:       opts.scale,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Converted %s", input))

	code := pic.Code()
	if opts.output == "" {
		fmt.Println(code)
		return nil
	}
	if err := os.WriteFile(opts.output, []byte(code), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printFile(opts.output)
	return nil
}
