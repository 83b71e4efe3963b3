package coloring

import (
	"time"

	"github.com/specband/specband/pkg/graph"
)

// Greedy colors nodes in insertion order, assigning each the smallest
// frequency not used by its already-colored neighbors at the time the node
// is processed. Single pass, no reordering - the baseline the other
// heuristics are measured against.
func Greedy(g *graph.Graph) Result {
	start := time.Now()
	g.ResetColoring()

	for _, n := range g.Nodes() {
		n.Color = graph.SmallestAvailableColor(g.NeighborColors(n.ID))
	}

	return newResult(AlgorithmGreedy, g, start)
}
