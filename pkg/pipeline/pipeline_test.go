package pipeline

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/specband/specband/pkg/cache"
	"github.com/specband/specband/pkg/graph"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func testRunner(t *testing.T, c cache.Cache) *Runner {
	t.Helper()
	r := NewRunner(c, nil, quietLogger())
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestValidateAndSetDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}

	if opts.Topology != TopologyGeometric {
		t.Errorf("topology = %q, want geometric", opts.Topology)
	}
	if opts.Nodes != DefaultNodes || opts.Radius != DefaultRadius {
		t.Errorf("nodes/radius = %d/%v, want defaults", opts.Nodes, opts.Radius)
	}
	if opts.Algorithm != string(DefaultAlgorithm) {
		t.Errorf("algorithm = %q, want %q", opts.Algorithm, DefaultAlgorithm)
	}
	if opts.Seed != DefaultSeed {
		t.Errorf("seed = %d, want %d", opts.Seed, DefaultSeed)
	}

	// Idempotent.
	before := opts
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second call: %v", err)
	}
	if opts != before {
		t.Error("second validation must not change options")
	}
}

func TestValidateRejectsUnknownTopology(t *testing.T) {
	opts := Options{Topology: "mesh"}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("expected error for unknown topology")
	}
}

func TestValidateRejectsUnknownAlgorithm(t *testing.T) {
	opts := Options{Algorithm: "backtracking"}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("expected error for unknown algorithm")
	}
}

func TestExecuteGrid(t *testing.T) {
	r := testRunner(t, nil)
	opts := Options{
		Topology:     TopologyGrid,
		Rows:         2,
		Cols:         2,
		Connectivity: "hex",
		Algorithm:    "greedy",
		Logger:       quietLogger(),
	}

	result, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Snapshot.Nodes != 4 || result.Snapshot.Edges != 5 {
		t.Errorf("nodes/edges = %d/%d, want 4/5", result.Snapshot.Nodes, result.Snapshot.Edges)
	}
	if result.Snapshot.Conflicts != 0 {
		t.Errorf("conflicts = %d, want 0", result.Snapshot.Conflicts)
	}
	if result.GraphHash == "" {
		t.Error("expected a topology hash")
	}
	if result.CacheInfo.GenerateHit || result.CacheInfo.ColorHit {
		t.Error("null cache must never report hits")
	}
}

func TestExecuteColorsGraph(t *testing.T) {
	r := testRunner(t, nil)
	opts := Options{Topology: TopologyGeometric, Nodes: 30, Seed: 7, Logger: quietLogger()}

	result, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if got := result.Graph.ChromaticNumber(); got != result.Snapshot.ChromaticNumber {
		t.Errorf("graph chromatic number %d, snapshot says %d", got, result.Snapshot.ChromaticNumber)
	}
}

func TestExecuteCaches(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	r := testRunner(t, fc)
	opts := Options{Topology: TopologyGeometric, Nodes: 25, Seed: 11, Logger: quietLogger()}

	first, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.GenerateHit || first.CacheInfo.ColorHit {
		t.Fatal("first run must miss")
	}

	second, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.GenerateHit || !second.CacheInfo.ColorHit {
		t.Errorf("second run should hit both stages, got %+v", second.CacheInfo)
	}
	if second.GraphHash != first.GraphHash {
		t.Error("cached network must hash identically")
	}
	if second.Snapshot.ChromaticNumber != first.Snapshot.ChromaticNumber {
		t.Error("cached snapshot must match the original")
	}
	if got := second.Graph.ChromaticNumber(); got != second.Snapshot.ChromaticNumber {
		t.Errorf("cached assignment not applied to graph: %d vs %d", got, second.Snapshot.ChromaticNumber)
	}
}

func TestExecuteRefreshBypassesCache(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	r := testRunner(t, fc)
	opts := Options{Topology: TopologyGeometric, Nodes: 25, Seed: 11, Logger: quietLogger()}

	if _, err := r.Execute(context.Background(), opts); err != nil {
		t.Fatalf("warm-up Execute: %v", err)
	}

	opts.Refresh = true
	result, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("refresh Execute: %v", err)
	}
	if result.CacheInfo.GenerateHit || result.CacheInfo.ColorHit {
		t.Errorf("refresh must bypass the cache, got %+v", result.CacheInfo)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	opts := Options{Topology: TopologyGeometric, Nodes: 40, Seed: 3}

	a, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	da, _ := graph.Marshal(a)
	db, _ := graph.Marshal(b)
	if string(da) != string(db) {
		t.Error("same seed must produce the same network")
	}
}

func TestGenerateScaleFree(t *testing.T) {
	opts := Options{Topology: TopologyScaleFree, Nodes: 20, Attachment: 3, Seed: 5}

	g, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if g.NodeCount() != 20 {
		t.Errorf("nodes = %d, want 20", g.NodeCount())
	}
}

func TestColorStandaloneGraph(t *testing.T) {
	g := graph.New()
	for i := range 3 {
		g.AddNode(i, graph.Position{})
	}
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 2}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}

	r := testRunner(t, nil)
	s, err := r.Color(context.Background(), g, Options{Algorithm: "dsatur", Logger: quietLogger()})
	if err != nil {
		t.Fatalf("Color: %v", err)
	}
	if s.ChromaticNumber != 3 {
		t.Errorf("chromatic number = %d, want 3 for a triangle", s.ChromaticNumber)
	}
}
