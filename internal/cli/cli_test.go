package cli

import (
	"io"
	"testing"

	"github.com/specband/specband/pkg/config"
)

func newTestCLI(t *testing.T) *CLI {
	t.Helper()
	// Isolate from any real user config and cache.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	return New(io.Discard, LogInfo)
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := newTestCLI(t)
	root := c.RootCommand()

	want := []string{"generate", "color", "compare", "render", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestApplyConfigDefaults(t *testing.T) {
	c := newTestCLI(t)
	c.Config = config.Default()
	c.Config.Generator.Nodes = 77
	c.Config.Run.Algorithm = "greedy"
	c.Config.Run.Seed = 5

	net := netOpts{topology: "geometric"}
	opts := net.pipelineOptions()
	c.applyConfigDefaults(&opts)

	if opts.Nodes != 77 {
		t.Errorf("nodes = %d, want config value 77", opts.Nodes)
	}
	if opts.Algorithm != "greedy" {
		t.Errorf("algorithm = %q, want config value greedy", opts.Algorithm)
	}
	if opts.Seed != 5 {
		t.Errorf("seed = %d, want config value 5", opts.Seed)
	}

	// Explicit flags win over config.
	net = netOpts{topology: "geometric", nodes: 10, seed: 99}
	opts = net.pipelineOptions()
	c.applyConfigDefaults(&opts)
	if opts.Nodes != 10 || opts.Seed != 99 {
		t.Errorf("nodes/seed = %d/%d, want flag values 10/99", opts.Nodes, opts.Seed)
	}
}

func TestCacheDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir: %v", err)
	}
	if dir != "/tmp/xdg-cache/"+appName {
		t.Errorf("cacheDir() = %q, want XDG path", dir)
	}
}

func TestNewCacheOffBackend(t *testing.T) {
	c := newTestCLI(t)
	c.Config.Cache.Backend = config.BackendOff

	store, err := c.newCache(false)
	if err != nil {
		t.Fatalf("newCache: %v", err)
	}
	defer store.Close()

	// Off backend never stores.
	_ = store.Set(t.Context(), "k", []byte("v"), 0)
	if _, ok, _ := store.Get(t.Context(), "k"); ok {
		t.Error("off backend must not cache")
	}
}

func TestNewCacheNoCacheFlagWins(t *testing.T) {
	c := newTestCLI(t)
	c.Config.Cache.Backend = config.BackendFile

	store, err := c.newCache(true)
	if err != nil {
		t.Fatalf("newCache: %v", err)
	}
	defer store.Close()

	_ = store.Set(t.Context(), "k", []byte("v"), 0)
	if _, ok, _ := store.Get(t.Context(), "k"); ok {
		t.Error("--no-cache must disable caching regardless of config")
	}
}
