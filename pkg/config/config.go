// Package config loads Specband configuration from TOML files.
//
// Configuration supplies defaults for network generation and coloring runs
// plus the cache backend selection. Command-line flags always win over file
// values; the file only moves the baseline.
//
// The default location is ~/.config/specband/config.toml (honoring
// XDG_CONFIG_HOME). A missing file is not an error - built-in defaults apply.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/specband/specband/pkg/coloring"
	"github.com/specband/specband/pkg/pipeline"
)

// Cache backend names.
const (
	BackendOff   = "off"
	BackendFile  = "file"
	BackendRedis = "redis"
)

// ErrInvalidBackend is returned for an unrecognized cache backend name.
var ErrInvalidBackend = errors.New("invalid cache backend")

// Config is the root configuration document.
type Config struct {
	Generator Generator `toml:"generator"`
	Run       Run       `toml:"run"`
	Cache     Cache     `toml:"cache"`
	Server    Server    `toml:"server"`
}

// Generator holds network generation defaults.
type Generator struct {
	Nodes        int     `toml:"nodes"`
	Radius       float64 `toml:"radius"`
	Width        float64 `toml:"width"`
	Height       float64 `toml:"height"`
	Rows         int     `toml:"rows"`
	Cols         int     `toml:"cols"`
	Connectivity string  `toml:"connectivity"`
	Attachment   int     `toml:"attachment"`
}

// Run holds coloring run defaults.
type Run struct {
	Seed      uint64 `toml:"seed"`
	Algorithm string `toml:"algorithm"`
}

// Cache selects and configures the cache backend.
type Cache struct {
	Backend string `toml:"backend"` // off, file, or redis
	Dir     string `toml:"dir"`     // file backend location, empty = XDG cache dir
	Redis   Redis  `toml:"redis"`
}

// Redis holds Redis backend connection settings.
type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Server holds HTTP API settings.
type Server struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Generator: Generator{
			Nodes:        pipeline.DefaultNodes,
			Radius:       pipeline.DefaultRadius,
			Width:        pipeline.DefaultWidth,
			Height:       pipeline.DefaultHeight,
			Rows:         pipeline.DefaultRows,
			Cols:         pipeline.DefaultCols,
			Connectivity: string(pipeline.DefaultConnectivity),
			Attachment:   pipeline.DefaultAttachment,
		},
		Run: Run{
			Seed:      pipeline.DefaultSeed,
			Algorithm: string(pipeline.DefaultAlgorithm),
		},
		Cache: Cache{
			Backend: BackendFile,
			Redis:   Redis{Addr: "localhost:6379"},
		},
		Server: Server{
			Addr: ":8080",
		},
	}
}

// Load reads a TOML file on top of the built-in defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads the config at path, or the default location when path
// is empty. A missing file yields the built-in defaults.
func LoadOrDefault(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Default(), nil
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
		return Default(), nil
	}

	return Load(path)
}

// DefaultPath returns the standard config file location,
// ~/.config/specband/config.toml (honoring XDG_CONFIG_HOME).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "specband", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "specband", "config.toml"), nil
}

// Validate checks enumerated fields. Numeric ranges are left to the
// generators, which report precise errors at run time.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case BackendOff, BackendFile, BackendRedis:
	default:
		return fmt.Errorf("%w: %q (must be one of: off, file, redis)", ErrInvalidBackend, c.Cache.Backend)
	}
	if c.Run.Algorithm != "" {
		if _, err := coloring.ParseAlgorithm(c.Run.Algorithm); err != nil {
			return err
		}
	}
	return nil
}

// PipelineOptions converts the configured defaults into pipeline options.
// The topology itself is a per-invocation choice and stays empty.
func (c Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		Nodes:        c.Generator.Nodes,
		Radius:       c.Generator.Radius,
		Width:        c.Generator.Width,
		Height:       c.Generator.Height,
		Rows:         c.Generator.Rows,
		Cols:         c.Generator.Cols,
		Connectivity: c.Generator.Connectivity,
		Attachment:   c.Generator.Attachment,
		Seed:         c.Run.Seed,
		Algorithm:    c.Run.Algorithm,
	}
}
