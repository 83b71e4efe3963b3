// Package cli implements the specband command-line interface.
//
// This package provides commands for generating synthetic interference
// networks, assigning frequencies with the coloring heuristics, comparing
// heuristics against each other, rendering assigned networks, and serving
// the HTTP API. The CLI is built using cobra and supports verbose logging
// via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Build a synthetic interference network
//   - color: Assign frequencies to a network
//   - compare: Run all heuristics on one network and compare results
//   - render: Emit a DOT or SVG picture of an assigned network
//   - serve: Run the HTTP API
//   - cache: Manage the result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
//
// # Example
//
//	import "github.com/specband/specband/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/specband/specband/pkg/buildinfo"
	"github.com/specband/specband/pkg/cache"
	"github.com/specband/specband/pkg/config"
	"github.com/specband/specband/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "specband"

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
	Config config.Config

	configPath string
}

// New creates a new CLI instance with a default logger and built-in config.
// The config file is loaded in the root command's PersistentPreRunE once the
// --config flag has been parsed.
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

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Specband assigns radio frequencies with graph coloring",
		Long:         `Specband models radio networks as interference graphs and assigns frequencies with graph coloring heuristics, so nearby transmitters never share a channel while the total spectrum stays small.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/specband/config.toml)")

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.colorCommand())
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	store, err := c.newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

// newCache builds the cache backend selected in the config.
// Cache construction failures degrade to a null cache rather than aborting
// the run; the cache is an optimization, not a requirement.
func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache || c.Config.Cache.Backend == config.BackendOff {
		return cache.NewNullCache(), nil
	}

	switch c.Config.Cache.Backend {
	case config.BackendRedis:
		// The API server fails hard on a broken Redis; CLI runs just skip caching.
		rc, err := cache.NewRedisCache(context.Background(), cache.RedisConfig{
			Addr:     c.Config.Cache.Redis.Addr,
			Password: c.Config.Cache.Redis.Password,
			DB:       c.Config.Cache.Redis.DB,
		})
		if err != nil {
			c.Logger.Warn("redis cache unavailable, caching disabled", "err", err)
			return cache.NewNullCache(), nil
		}
		return rc, nil
	default:
		dir := c.Config.Cache.Dir
		if dir == "" {
			var err error
			dir, err = cacheDir()
			if err != nil {
				return cache.NewNullCache(), nil
			}
		}
		return cache.NewFileCache(dir)
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/specband/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// applyConfigDefaults fills unset pipeline options from the loaded config.
// Flags the user set explicitly are non-zero and survive untouched; pipeline
// validation fills anything the config leaves at zero.
func (c *CLI) applyConfigDefaults(opts *pipeline.Options) {
	cfg := c.Config.PipelineOptions()
	if opts.Nodes == 0 {
		opts.Nodes = cfg.Nodes
	}
	if opts.Radius == 0 {
		opts.Radius = cfg.Radius
	}
	if opts.Width == 0 {
		opts.Width = cfg.Width
	}
	if opts.Height == 0 {
		opts.Height = cfg.Height
	}
	if opts.Rows == 0 {
		opts.Rows = cfg.Rows
	}
	if opts.Cols == 0 {
		opts.Cols = cfg.Cols
	}
	if opts.Connectivity == "" {
		opts.Connectivity = cfg.Connectivity
	}
	if opts.Attachment == 0 {
		opts.Attachment = cfg.Attachment
	}
	if opts.Seed == 0 {
		opts.Seed = cfg.Seed
	}
	if opts.Algorithm == "" {
		opts.Algorithm = cfg.Algorithm
	}
	opts.Logger = c.Logger
}
