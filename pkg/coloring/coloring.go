package coloring

import (
	"errors"
	"fmt"
	"time"

	"github.com/specband/specband/pkg/graph"
)

// Algorithm identifies a coloring heuristic.
type Algorithm string

// Supported algorithms.
const (
	AlgorithmGreedy      Algorithm = "greedy"
	AlgorithmWelshPowell Algorithm = "welsh-powell"
	AlgorithmDSATUR      Algorithm = "dsatur"
)

// ErrUnknownAlgorithm is returned by [Run] and [ParseAlgorithm] for a name
// that doesn't match a supported algorithm.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithms returns the supported algorithms in comparison order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmGreedy, AlgorithmWelshPowell, AlgorithmDSATUR}
}

// ParseAlgorithm maps a user-supplied name to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AlgorithmGreedy, AlgorithmWelshPowell, AlgorithmDSATUR:
		return Algorithm(s), nil
	default:
		return "", fmt.Errorf("%w: %q (must be one of: greedy, welsh-powell, dsatur)", ErrUnknownAlgorithm, s)
	}
}

// Result summarizes a completed coloring run.
type Result struct {
	Algorithm       Algorithm
	ChromaticNumber int // distinct frequencies used
	Conflicts       int // always 0 for a correct run
	Duration        time.Duration
}

// Run executes the named algorithm against the graph and returns its result.
// The graph's previous coloring is discarded. Concurrent runs against the
// same graph are undefined - callers must serialize them.
func Run(g *graph.Graph, algo Algorithm) (Result, error) {
	switch algo {
	case AlgorithmGreedy:
		return Greedy(g), nil
	case AlgorithmWelshPowell:
		return WelshPowell(g), nil
	case AlgorithmDSATUR:
		return DSATUR(g), nil
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
}

// newResult reads the post-run metrics off the graph.
func newResult(algo Algorithm, g *graph.Graph, start time.Time) Result {
	return Result{
		Algorithm:       algo,
		ChromaticNumber: g.ChromaticNumber(),
		Conflicts:       g.ConflictCount(),
		Duration:        time.Since(start),
	}
}
