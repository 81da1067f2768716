// Package cli implements the tikzgo command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tikzgo/tikzgo/pkg/buildinfo"
	"github.com/tikzgo/tikzgo/pkg/cache"
	"github.com/tikzgo/tikzgo/pkg/compile"
)

const (
	// appName is the application name used for directories and display.
	appName = "tikzgo"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger and the on-disk
// configuration, if present.
func New(w io.Writer, level log.Level) *CLI {
	cfg, err := LoadConfig("")
	if err != nil {
		cfg = DefaultConfig()
	}
	c := &CLI{
		Logger: newLogger(w, level),
		Config: cfg,
	}
	if err != nil {
		c.Logger.Warn("ignoring invalid config file", "err", err)
	}
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "tikzgo",
		Short:        "Tikzgo generates and compiles TikZ figures",
		Long:         `Tikzgo is a CLI tool for building TikZ figures: it wraps TikZ code into standalone LaTeX documents, compiles them with latexmk, and produces cropped PNG previews.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.newCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRenderer creates a compile renderer honoring the cache settings.
func (c *CLI) newRenderer(ctx context.Context, noCache bool, dpi int) (*compile.Renderer, error) {
	store, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	compiler := compile.Latexmk{Quiet: c.Config.Compiler.Quiet}
	if dpi <= 0 {
		dpi = c.Config.Compiler.DPI
	}
	rasterizer := compile.Pdftoppm{DPI: dpi}
	return compile.NewRenderer(compiler, rasterizer, store, c.Logger), nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache || !c.Config.Cache.Enabled {
		return cache.NewNullCache(), nil
	}
	if addr := c.Config.Cache.Redis; addr != "" {
		return cache.NewRedisCache(ctx, addr)
	}
	dir, err := c.cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/tikzgo/).
func (c *CLI) cacheDir() (string, error) {
	if dir := c.Config.Cache.Dir; dir != "" {
		return dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
