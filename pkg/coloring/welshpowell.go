package coloring

import (
	"slices"
	"time"

	"github.com/specband/specband/pkg/graph"
)

// WelshPowell colors nodes in descending-degree order, assigning each the
// smallest frequency not used by its already-colored neighbors. Equal-degree
// nodes keep their relative insertion order (stable sort), so output is
// reproducible for a fixed graph.
func WelshPowell(g *graph.Graph) Result {
	start := time.Now()
	g.ResetColoring()

	nodes := g.Nodes()
	slices.SortStableFunc(nodes, func(a, b *graph.Node) int {
		return b.Degree - a.Degree
	})

	for _, n := range nodes {
		n.Color = graph.SmallestAvailableColor(g.NeighborColors(n.ID))
	}

	return newResult(AlgorithmWelshPowell, g, start)
}
