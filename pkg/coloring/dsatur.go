package coloring

import (
	"time"

	"github.com/specband/specband/pkg/graph"
)

// DSATUR colors the graph by degree of saturation: at every step the
// uncolored node with the most distinct colors among its neighbors is colored
// next with the smallest available frequency. Ties are broken by maximum
// degree, then by lowest node ID, so runs are reproducible. The first
// iteration degenerates to the classic seed step - all saturations are zero,
// so the maximum-degree node (lowest ID on ties) receives frequency 0.
//
// After each assignment the saturation of every uncolored neighbor is
// recomputed as the exact count of distinct colors in its neighborhood. Two
// neighbors introducing the same color must not raise saturation twice, which
// is why this is a recount rather than an increment.
func DSATUR(g *graph.Graph) Result {
	start := time.Now()
	g.ResetColoring()

	ids := g.IDs()
	uncolored := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		uncolored[id] = struct{}{}
	}

	for len(uncolored) > 0 {
		id := selectNext(g, ids, uncolored)
		n, _ := g.Node(id)
		n.Color = graph.SmallestAvailableColor(g.NeighborColors(id))
		delete(uncolored, id)

		for _, v := range g.Neighbors(id) {
			if _, ok := uncolored[v]; !ok {
				continue
			}
			nb, _ := g.Node(v)
			nb.Saturation = len(g.NeighborColors(v))
		}
	}

	return newResult(AlgorithmDSATUR, g, start)
}

// selectNext returns the uncolored node with maximum saturation, breaking
// ties by maximum degree and then by lowest ID.
func selectNext(g *graph.Graph, ids []int, uncolored map[int]struct{}) int {
	best := -1
	var bestNode *graph.Node
	for _, id := range ids {
		if _, ok := uncolored[id]; !ok {
			continue
		}
		n, _ := g.Node(id)
		if bestNode == nil || saturates(n, bestNode) {
			best, bestNode = id, n
		}
	}
	return best
}

// saturates reports whether a should be colored before b.
func saturates(a, b *graph.Node) bool {
	if a.Saturation != b.Saturation {
		return a.Saturation > b.Saturation
	}
	if a.Degree != b.Degree {
		return a.Degree > b.Degree
	}
	return a.ID < b.ID
}
