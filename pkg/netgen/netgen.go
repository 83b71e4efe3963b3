package netgen

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/specband/specband/pkg/graph"
)

// Connectivity selects the adjacency rule of a cellular grid.
type Connectivity string

const (
	// ConnectivitySquare links each cell to its orthogonal neighbors only.
	ConnectivitySquare Connectivity = "square"

	// ConnectivityHex additionally links each cell to its lower-right
	// diagonal neighbor, giving interior cells six neighbors. The adjacency
	// stays symmetric, so the upper-left diagonal follows for free.
	ConnectivityHex Connectivity = "hex"
)

// Sentinel errors for generator parameter validation.
var (
	// ErrInvalidCount is returned when a node count is negative.
	ErrInvalidCount = errors.New("node count must not be negative")

	// ErrInvalidRadius is returned when the interference radius is negative.
	ErrInvalidRadius = errors.New("interference radius must not be negative")

	// ErrInvalidGrid is returned when a grid dimension is not positive.
	ErrInvalidGrid = errors.New("grid dimensions must be positive")

	// ErrInvalidConnectivity is returned for an unrecognized grid adjacency rule.
	ErrInvalidConnectivity = errors.New("invalid connectivity")

	// ErrInvalidAttachment is returned when the scale-free attachment count
	// is not positive or exceeds the node count.
	ErrInvalidAttachment = errors.New("attachment count must be positive and at most the node count")

	// ErrNilRand is returned when no random source is supplied. Randomness
	// is always injected so results are reproducible under a fixed seed.
	ErrNilRand = errors.New("random source is required")
)

// RandomGeometric places n nodes at uniformly random positions in a
// width×height rectangle and links every pair within the interference
// radius. The pairwise distance scan is O(n²), which is fine at the scales
// the engine targets; callers wanting very large networks should bound n
// externally.
func RandomGeometric(n int, radius, width, height float64, rng *rand.Rand) (*graph.Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	if radius < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRadius, radius)
	}
	if rng == nil {
		return nil, ErrNilRand
	}

	g := graph.New()
	for i := range n {
		g.AddNode(i, graph.Position{
			X: rng.Float64() * width,
			Y: rng.Float64() * height,
		})
	}

	nodes := g.Nodes()
	for i := range n {
		for j := i + 1; j < n; j++ {
			if distance(nodes[i].Position, nodes[j].Position) <= radius {
				if err := g.AddEdge(i, j); err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}

// Grid places rows×cols nodes on a rectangular lattice with 100-unit
// spacing, node ID row*cols+col. Each node links to its right and lower
// neighbor, and under ConnectivityHex also to its lower-right diagonal;
// links that would cross the boundary are skipped.
func Grid(rows, cols int, conn Connectivity) (*graph.Graph, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, rows, cols)
	}
	if conn != ConnectivitySquare && conn != ConnectivityHex {
		return nil, fmt.Errorf("%w: %q", ErrInvalidConnectivity, conn)
	}

	g := graph.New()
	for i := range rows {
		for j := range cols {
			g.AddNode(i*cols+j, graph.Position{X: float64(j) * 100, Y: float64(i) * 100})
		}
	}

	for i := range rows {
		for j := range cols {
			id := i*cols + j
			if j < cols-1 {
				if err := g.AddEdge(id, id+1); err != nil {
					return nil, err
				}
			}
			if i < rows-1 {
				if err := g.AddEdge(id, id+cols); err != nil {
					return nil, err
				}
			}
			if conn == ConnectivityHex && i < rows-1 && j < cols-1 {
				if err := g.AddEdge(id, id+cols+1); err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}

// ScaleFree grows an n-node network by Barabási-Albert preferential
// attachment: the first m nodes form a complete graph, and every later node
// attaches to m distinct existing nodes chosen with probability proportional
// to their current degree. Hubs emerge naturally, which stresses the
// degree-driven heuristics.
func ScaleFree(n, m int, rng *rand.Rand) (*graph.Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	if m < 1 || m > n {
		return nil, fmt.Errorf("%w: m=%d n=%d", ErrInvalidAttachment, m, n)
	}
	if rng == nil {
		return nil, ErrNilRand
	}

	g := graph.New()
	for i := range m {
		g.AddNode(i, graph.Position{})
	}
	for i := range m {
		for j := i + 1; j < m; j++ {
			if err := g.AddEdge(i, j); err != nil {
				return nil, err
			}
		}
	}

	for i := m; i < n; i++ {
		g.AddNode(i, graph.Position{})
		for _, target := range attachTargets(g, i, m, rng) {
			if err := g.AddEdge(i, target); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// attachTargets picks m distinct nodes among 0..newID-1, weighted by degree.
// Falls back to uniform weights while the seed clique is still edgeless
// (m == 1 leaves the first node with degree zero).
func attachTargets(g *graph.Graph, newID, m int, rng *rand.Rand) []int {
	weights := make([]int, newID)
	total := 0
	for id := range newID {
		weights[id] = g.Degree(id)
		total += weights[id]
	}
	if total == 0 {
		for id := range newID {
			weights[id] = 1
		}
		total = newID
	}

	targets := make([]int, 0, m)
	for len(targets) < m && total > 0 {
		pick := rng.IntN(total)
		for id, w := range weights {
			if pick < w {
				targets = append(targets, id)
				total -= w
				weights[id] = 0 // without replacement
				break
			}
			pick -= w
		}
	}
	return targets
}

func distance(a, b graph.Position) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
