package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tikzgo/tikzgo/internal/server"
	"github.com/tikzgo/tikzgo/pkg/errors"
	"github.com/tikzgo/tikzgo/pkg/gallery"
)

// serveCommand creates the serve command, which runs the HTTP gallery and
// preview server.
func (c *CLI) serveCommand() *cobra.Command {
	var addr, storeName string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP gallery and preview server",
		Long: `Run the HTTP gallery and preview server.

Figures POSTed to /figures are compiled, rendered to a cropped PNG
preview, and stored. The gallery backend is selected with --store:
"file" keeps figures as JSON files, "mongo" uses MongoDB.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Server.Addr
			}
			if storeName == "" {
				storeName = c.Config.Server.Store
			}
			return c.runServe(cmd.Context(), addr, storeName)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().StringVar(&storeName, "store", "", "gallery backend: file or mongo (default from config)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, storeName string) error {
	store, err := c.newStore(ctx, storeName)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	renderer, err := c.newRenderer(ctx, false, 0)
	if err != nil {
		return err
	}

	printInfo("Serving gallery on %s (%s store)", addr, storeName)
	return server.New(store, renderer, c.Logger).Run(ctx, addr)
}

func (c *CLI) newStore(ctx context.Context, name string) (gallery.Store, error) {
	switch name {
	case "file", "":
		return gallery.NewFileStore("")
	case "mongo":
		uri := c.Config.Server.MongoURI
		if uri == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "mongo store requires server.mongo_uri in the config file")
		}
		store, err := gallery.NewMongoStore(ctx, gallery.MongoConfig{URI: uri})
		if err != nil {
			return nil, fmt.Errorf("connect gallery store: %w", err)
		}
		return store, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown store %q (must be 'file' or 'mongo')", name)
	}
}
