package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/specband/specband/pkg/cache"
	"github.com/specband/specband/pkg/coloring"
	"github.com/specband/specband/pkg/graph"
	"github.com/specband/specband/pkg/observability"
	"github.com/specband/specband/pkg/report"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete generate → color → report pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{}

	// Stage 1: Generate
	generateStart := time.Now()
	observability.Pipeline().OnGenerateStart(ctx, opts.Topology, opts.Nodes)
	g, generateHit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		observability.Pipeline().OnGenerateComplete(ctx, opts.Topology, 0, 0, time.Since(generateStart), err)
		return nil, fmt.Errorf("generate: %w", err)
	}
	observability.Pipeline().OnGenerateComplete(ctx, opts.Topology, g.NodeCount(), g.EdgeCount(), time.Since(generateStart), nil)
	result.Graph = g
	result.Stats.GenerateTime = time.Since(generateStart)
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()
	result.CacheInfo.GenerateHit = generateHit

	// Compute topology hash for cache keys and API responses
	if data, err := graph.Marshal(g); err == nil {
		result.GraphHash = cache.Hash(data)
	}

	r.Logger.Info("generated network",
		"topology", opts.Topology,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", result.Stats.GenerateTime)

	// Stage 2 + 3: Color and snapshot
	colorStart := time.Now()
	observability.Pipeline().OnColorStart(ctx, opts.Algorithm, g.NodeCount())
	snapshot, colorHit, err := r.ColorWithCacheInfo(ctx, g, opts)
	if err != nil {
		observability.Pipeline().OnColorComplete(ctx, opts.Algorithm, 0, 0, time.Since(colorStart), err)
		return nil, fmt.Errorf("color: %w", err)
	}
	observability.Pipeline().OnColorComplete(ctx, opts.Algorithm, snapshot.ChromaticNumber, snapshot.Conflicts, time.Since(colorStart), nil)
	result.Snapshot = snapshot
	result.Stats.ColorTime = time.Since(colorStart)
	result.CacheInfo.ColorHit = colorHit

	r.Logger.Info("assigned frequencies",
		"algorithm", opts.Algorithm,
		"frequencies", snapshot.ChromaticNumber,
		"conflicts", snapshot.Conflicts,
		"duration", result.Stats.ColorTime)

	return result, nil
}

// GenerateWithCacheInfo builds the network with caching and returns cache
// hit info.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, opts Options) (*graph.Graph, bool, error) {
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	cacheKey := r.Keyer.NetworkKey(opts.Topology, opts.NetworkKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			g, err := graph.Read(bytes.NewReader(data))
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "network")
				return g, true, nil // Cache hit
			}
		}
	}
	observability.Cache().OnCacheMiss(ctx, "network")

	g, err := Generate(opts)
	if err != nil {
		return nil, false, err
	}

	if data, err := graph.Marshal(g); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLNetwork)
		observability.Cache().OnCacheSet(ctx, "network", len(data))
	}

	return g, false, nil // Cache miss
}

// Generate is a convenience wrapper that calls GenerateWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Generate(ctx context.Context, opts Options) (*graph.Graph, error) {
	g, _, err := r.GenerateWithCacheInfo(ctx, opts)
	return g, err
}

// ColorWithCacheInfo assigns frequencies with caching and returns cache hit
// info. On a cache hit the stored assignment is applied back onto the graph,
// so the graph's coloring state matches the snapshot either way.
func (r *Runner) ColorWithCacheInfo(ctx context.Context, g *graph.Graph, opts Options) (report.Snapshot, bool, error) {
	if err := opts.ValidateForColor(); err != nil {
		return report.Snapshot{}, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from the topology content
	data, err := graph.Marshal(g)
	if err != nil {
		return report.Snapshot{}, false, fmt.Errorf("serialize network for cache key: %w", err)
	}
	cacheKey := r.Keyer.SnapshotKey(cache.Hash(data), opts.Algorithm)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			cached, err := report.Read(bytes.NewReader(data))
			if err == nil && applyAssignments(g, cached) == nil {
				observability.Cache().OnCacheHit(ctx, "snapshot")
				return cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recolor
		}
	}
	observability.Cache().OnCacheMiss(ctx, "snapshot")

	algo, err := coloring.ParseAlgorithm(opts.Algorithm)
	if err != nil {
		return report.Snapshot{}, false, err
	}
	if _, err := coloring.Run(g, algo); err != nil {
		return report.Snapshot{}, false, err
	}
	snapshot := report.Take(g, string(algo))

	if data, err := report.Marshal(snapshot); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLSnapshot)
		observability.Cache().OnCacheSet(ctx, "snapshot", len(data))
	}

	return snapshot, false, nil // Cache miss
}

// Color is a convenience wrapper that calls ColorWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Color(ctx context.Context, g *graph.Graph, opts Options) (report.Snapshot, error) {
	s, _, err := r.ColorWithCacheInfo(ctx, g, opts)
	return s, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyAssignments writes a cached snapshot's frequencies back onto the graph.
// Fails if the snapshot references nodes the graph doesn't have, which means
// the cached entry belongs to a different topology.
func applyAssignments(g *graph.Graph, s report.Snapshot) error {
	if s.Nodes != g.NodeCount() {
		return fmt.Errorf("snapshot has %d nodes, graph has %d", s.Nodes, g.NodeCount())
	}
	for _, a := range s.Assignments {
		n, ok := g.Node(a.ID)
		if !ok {
			return fmt.Errorf("%w: %d", graph.ErrUnknownNode, a.ID)
		}
		n.Color = a.Frequency
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
