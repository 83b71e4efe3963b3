package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Generator.Nodes != 50 {
		t.Errorf("default nodes = %d, want 50", cfg.Generator.Nodes)
	}
	if cfg.Run.Algorithm != "dsatur" {
		t.Errorf("default algorithm = %q, want dsatur", cfg.Run.Algorithm)
	}
	if cfg.Cache.Backend != BackendFile {
		t.Errorf("default backend = %q, want file", cfg.Cache.Backend)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[generator]
nodes = 100
radius = 20.0

[run]
seed = 7
algorithm = "welsh-powell"

[cache]
backend = "redis"

[cache.redis]
addr = "redis.internal:6379"
db = 2
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Generator.Nodes != 100 || cfg.Generator.Radius != 20 {
		t.Errorf("generator = %+v, want overridden nodes/radius", cfg.Generator)
	}
	// Untouched fields keep their defaults.
	if cfg.Generator.Width != 100 {
		t.Errorf("width = %v, want default 100", cfg.Generator.Width)
	}
	if cfg.Run.Seed != 7 || cfg.Run.Algorithm != "welsh-powell" {
		t.Errorf("run = %+v, want seed 7 / welsh-powell", cfg.Run)
	}
	if cfg.Cache.Backend != BackendRedis || cfg.Cache.Redis.Addr != "redis.internal:6379" || cfg.Cache.Redis.DB != 2 {
		t.Errorf("cache = %+v, want redis backend", cfg.Cache)
	}
}

func TestLoadRejectsBadBackend(t *testing.T) {
	path := writeConfig(t, `
[cache]
backend = "memcached"
`)
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestLoadRejectsBadAlgorithm(t *testing.T) {
	path := writeConfig(t, `
[run]
algorithm = "exhaustive"
`)
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown algorithm")
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := writeConfig(t, `generator = [`)
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if cfg.Cache.Backend != BackendFile {
		t.Errorf("missing file should yield defaults, got %+v", cfg.Cache)
	}
}

func TestLoadOrDefaultExplicitMissingFileFails(t *testing.T) {
	_, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Error("explicitly named missing file must be an error")
	}
}

func TestPipelineOptions(t *testing.T) {
	cfg := Default()
	cfg.Generator.Nodes = 80
	cfg.Run.Algorithm = "greedy"

	opts := cfg.PipelineOptions()
	if opts.Nodes != 80 || opts.Algorithm != "greedy" {
		t.Errorf("options = %+v, want config values carried over", opts)
	}
	if opts.Topology != "" {
		t.Errorf("topology = %q, want empty (per-invocation choice)", opts.Topology)
	}
}
