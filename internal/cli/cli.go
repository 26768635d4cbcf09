// Package cli implements the lidkit command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/lidkit/pkg/cache"
	"github.com/matzehuels/lidkit/pkg/catalog"
	"github.com/matzehuels/lidkit/pkg/config"
	"github.com/matzehuels/lidkit/pkg/errors"
	"github.com/matzehuels/lidkit/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "lidkit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	// Config is loaded by the root command before any subcommand runs.
	Config *config.Config

	configPath string
	noCache    bool
	verbose    bool
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Factories
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
// --no-cache swaps in a NullCache.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, error) {
	cc, err := c.openCache(ctx)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cc, nil, c.Logger), nil
}

func (c *CLI) openCache(ctx context.Context) (cache.Cache, error) {
	if c.noCache {
		return cache.NewNullCache(), nil
	}
	cc, err := c.Config.Cache.OpenCache(ctx)
	if err != nil {
		// A broken cache should never block a one-off command.
		c.Logger.Warn("cache unavailable, continuing without it", "err", err)
		return cache.NewNullCache(), nil
	}
	return cc, nil
}

// openCatalog opens the catalog database named by the configuration.
func (c *CLI) openCatalog() (*catalog.Catalog, error) {
	path, err := c.Config.Catalog.CatalogPath()
	if err != nil {
		return nil, err
	}
	if path != catalog.MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, errors.Wrap(errors.ErrCodeIO, err, "create catalog dir")
		}
	}
	c.Logger.Debug("opening catalog", "path", path)
	return catalog.Open(path)
}

// renderDefaults seeds render options from the [render] config section.
func (c *CLI) renderDefaults(kind string) pipeline.RenderOptions {
	opts := pipeline.RenderOptions{Kind: kind}
	if kind == pipeline.KindCurve || kind == "" {
		opts.Width = c.Config.Render.Width
		opts.Height = c.Config.Render.Height
		opts.Planes = append([]float64(nil), c.Config.Render.Planes...)
	}
	return opts
}
