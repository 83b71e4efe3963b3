// Package pipeline provides the core assignment pipeline for Specband.
//
// This package implements the complete generate → color → report pipeline
// that can be used by CLI and API components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Generate: Build a synthetic interference network (or load one)
//  2. Color: Run a coloring heuristic to assign frequencies
//  3. Report: Capture a snapshot with chromatic number and conflicts
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Topology:  pipeline.TopologyGeometric,
//	    Nodes:     50,
//	    Radius:    15,
//	    Algorithm: "dsatur",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Snapshot.ChromaticNumber)
//
// Run individual stages:
//
//	// Generate only
//	g, err := runner.Generate(ctx, opts)
//
//	// Color an existing graph
//	snapshot, err := runner.Color(ctx, g, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/specband/specband/pkg/cache"
	"github.com/specband/specband/pkg/coloring"
	"github.com/specband/specband/pkg/graph"
	"github.com/specband/specband/pkg/netgen"
	"github.com/specband/specband/pkg/report"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultNodes is the default node count for generated networks.
	DefaultNodes = 50

	// DefaultRadius is the default interference radius for geometric networks.
	DefaultRadius = 15.0

	// DefaultWidth is the default deployment area width.
	DefaultWidth = 100.0

	// DefaultHeight is the default deployment area height.
	DefaultHeight = 100.0

	// DefaultRows is the default row count for cellular grids.
	DefaultRows = 5

	// DefaultCols is the default column count for cellular grids.
	DefaultCols = 5

	// DefaultAttachment is the default attachment count for scale-free networks.
	DefaultAttachment = 2

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)
)

// DefaultAlgorithm is the default coloring heuristic. DSATUR is the best of
// the three on virtually every topology, so it is what callers get unless
// they ask for a specific one.
const DefaultAlgorithm = coloring.AlgorithmDSATUR

// DefaultConnectivity is the default cell adjacency for grid networks.
const DefaultConnectivity = netgen.ConnectivityHex

// Topology constants for network generation.
const (
	TopologyGeometric = "geometric"
	TopologyGrid      = "grid"
	TopologyScaleFree = "scalefree"
)

// ValidTopologies is the set of supported network topologies.
var ValidTopologies = map[string]bool{
	TopologyGeometric: true,
	TopologyGrid:      true,
	TopologyScaleFree: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the assignment pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Generate options
	Topology     string  `json:"topology"`
	Nodes        int     `json:"nodes,omitempty"`
	Radius       float64 `json:"radius,omitempty"`
	Width        float64 `json:"width,omitempty"`
	Height       float64 `json:"height,omitempty"`
	Rows         int     `json:"rows,omitempty"`
	Cols         int     `json:"cols,omitempty"`
	Connectivity string  `json:"connectivity,omitempty"`
	Attachment   int     `json:"attachment,omitempty"`
	Seed         uint64  `json:"seed,omitempty"`
	Refresh      bool    `json:"refresh,omitempty"`

	// Color options
	Algorithm string `json:"algorithm,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the interference network, colored by the run.
	Graph *graph.Graph

	// GraphHash is the content hash of the network topology.
	GraphHash string

	// Snapshot is the captured frequency assignment.
	Snapshot report.Snapshot

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount    int
	EdgeCount    int
	GenerateTime time.Duration
	ColorTime    time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	GenerateHit bool // Whether the network came from cache
	ColorHit    bool // Whether the snapshot came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateTopology checks that a topology name is valid.
func ValidateTopology(topology string) error {
	if !ValidTopologies[topology] {
		return fmt.Errorf("invalid topology: %q (must be one of: geometric, grid, scalefree)", topology)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	if err := o.ValidateForColor(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForGenerate checks required fields for network generation and
// applies generator defaults. Parameter ranges (positive radius, minimum
// attachment count) are enforced by the generators themselves.
func (o *Options) ValidateForGenerate() error {
	if o.Topology == "" {
		o.Topology = TopologyGeometric
	}
	if err := ValidateTopology(o.Topology); err != nil {
		return err
	}

	if o.Nodes == 0 {
		o.Nodes = DefaultNodes
	}
	if o.Radius == 0 {
		o.Radius = DefaultRadius
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Rows == 0 {
		o.Rows = DefaultRows
	}
	if o.Cols == 0 {
		o.Cols = DefaultCols
	}
	if o.Connectivity == "" {
		o.Connectivity = string(DefaultConnectivity)
	}
	if o.Attachment == 0 {
		o.Attachment = DefaultAttachment
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// ValidateForColor checks coloring options and applies the default algorithm.
func (o *Options) ValidateForColor() error {
	if o.Algorithm == "" {
		o.Algorithm = string(DefaultAlgorithm)
	}
	if _, err := coloring.ParseAlgorithm(o.Algorithm); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// NetworkKeyOpts returns cache key options for network generation.
func (o *Options) NetworkKeyOpts() cache.NetworkKeyOpts {
	return cache.NetworkKeyOpts{
		Nodes:        o.Nodes,
		Radius:       o.Radius,
		Width:        o.Width,
		Height:       o.Height,
		Rows:         o.Rows,
		Cols:         o.Cols,
		Connectivity: o.Connectivity,
		Attachment:   o.Attachment,
		Seed:         o.Seed,
	}
}
