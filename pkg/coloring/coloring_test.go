package coloring_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specband/specband/pkg/coloring"
	"github.com/specband/specband/pkg/graph"
	"github.com/specband/specband/pkg/netgen"
)

// buildGraph constructs a graph with nodes 0..n-1 and the given edges.
func buildGraph(t *testing.T, n int, edges [][2]int) *graph.Graph {
	t.Helper()
	g := graph.New()
	for i := range n {
		g.AddNode(i, graph.Position{})
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

// triangle is the 3-node complete graph: every algorithm needs 3 frequencies.
func triangle(t *testing.T) *graph.Graph {
	return buildGraph(t, 3, [][2]int{{0, 1}, {0, 2}, {1, 2}})
}

// path4 is the path 0-1-2-3: two frequencies suffice.
func path4(t *testing.T) *graph.Graph {
	return buildGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
}

func TestTriangleNeedsThreeColors(t *testing.T) {
	for _, algo := range coloring.Algorithms() {
		t.Run(string(algo), func(t *testing.T) {
			g := triangle(t)
			res, err := coloring.Run(g, algo)
			require.NoError(t, err)

			assert.Equal(t, 3, res.ChromaticNumber)
			assert.Zero(t, res.Conflicts)
		})
	}
}

func TestPathUsesTwoColors(t *testing.T) {
	for _, algo := range []coloring.Algorithm{coloring.AlgorithmWelshPowell, coloring.AlgorithmDSATUR} {
		t.Run(string(algo), func(t *testing.T) {
			g := path4(t)
			res, err := coloring.Run(g, algo)
			require.NoError(t, err)

			assert.Equal(t, 2, res.ChromaticNumber)
			assert.Zero(t, res.Conflicts)
		})
	}
}

func TestEdgelessGraphUsesOneColor(t *testing.T) {
	const n = 10
	g := buildGraph(t, n, nil)

	for _, algo := range coloring.Algorithms() {
		res, err := coloring.Run(g, algo)
		require.NoError(t, err)

		assert.Equal(t, 1, res.ChromaticNumber, "%s on an edgeless graph", algo)
		for _, node := range g.Nodes() {
			assert.Equal(t, 0, node.Color, "%s must give every isolated node frequency 0", algo)
		}
	}
}

func TestEmptyGraph(t *testing.T) {
	for _, algo := range coloring.Algorithms() {
		g := graph.New()
		res, err := coloring.Run(g, algo)
		require.NoError(t, err)
		assert.Zero(t, res.ChromaticNumber)
		assert.Zero(t, res.Conflicts)
	}
}

// TestPropernessAndTotality checks the two run invariants on generated
// networks: no edge joins same-colored endpoints, and every node ends with a
// non-negative frequency.
func TestPropernessAndTotality(t *testing.T) {
	for _, seed := range []uint64{1, 7, 42} {
		rng := rand.New(rand.NewPCG(seed, seed))
		g, err := netgen.RandomGeometric(80, 250, 1000, 1000, rng)
		require.NoError(t, err)

		for _, algo := range coloring.Algorithms() {
			res, err := coloring.Run(g, algo)
			require.NoError(t, err)

			assert.Zero(t, res.Conflicts, "%s seed=%d", algo, seed)
			assert.Zero(t, g.ConflictCount(), "%s seed=%d", algo, seed)

			distinct := make(map[int]struct{})
			for _, n := range g.Nodes() {
				require.GreaterOrEqual(t, n.Color, 0, "%s seed=%d left node %d uncolored", algo, seed, n.ID)
				distinct[n.Color] = struct{}{}
			}
			assert.Equal(t, len(distinct), res.ChromaticNumber, "%s seed=%d", algo, seed)
		}
	}
}

// TestDeterministicRecoloring re-runs each algorithm on the same graph and
// expects identical assignments: reset plus fixed tie-breaks make runs
// reproducible.
func TestDeterministicRecoloring(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 3))
	g, err := netgen.RandomGeometric(60, 300, 1000, 1000, rng)
	require.NoError(t, err)

	for _, algo := range coloring.Algorithms() {
		first, err := coloring.Run(g, algo)
		require.NoError(t, err)
		colors := assignment(g)

		second, err := coloring.Run(g, algo)
		require.NoError(t, err)

		assert.Equal(t, first.ChromaticNumber, second.ChromaticNumber, "%s", algo)
		assert.Equal(t, colors, assignment(g), "%s must recolor identically", algo)
	}
}

// TestDSATURNotWorseThanGreedy checks the quality invariant the suite relies
// on: across generator outputs, DSATUR never needs more frequencies than the
// greedy baseline on the same graph.
func TestDSATURNotWorseThanGreedy(t *testing.T) {
	for _, seed := range []uint64{2, 5, 11, 23, 42} {
		rng := rand.New(rand.NewPCG(seed, seed))
		g, err := netgen.RandomGeometric(100, 250, 1000, 1000, rng)
		require.NoError(t, err)

		greedy := coloring.Greedy(g)
		dsatur := coloring.DSATUR(g)

		assert.LessOrEqual(t, dsatur.ChromaticNumber, greedy.ChromaticNumber, "seed=%d", seed)
	}
}

// TestDSATURSaturationIsExactCount pins the graph where exact distinct-color
// saturation and the per-event counter variant diverge. With exact counting
// the run below needs 3 frequencies; a counter that increments once per
// newly-colored neighbor (double counting repeated colors) needs 4.
func TestDSATURSaturationIsExactCount(t *testing.T) {
	g := buildGraph(t, 6, [][2]int{
		{0, 1}, {0, 3}, {0, 5},
		{1, 2}, {1, 4},
		{2, 3}, {2, 4},
		{3, 5}, {4, 5},
	})

	res := coloring.DSATUR(g)

	assert.Equal(t, 3, res.ChromaticNumber)
	assert.Zero(t, res.Conflicts)
	assert.Equal(t, []int{0, 1, 0, 2, 2, 1}, assignment(g))
}

func TestWelshPowellOrdersByDegree(t *testing.T) {
	// Star plus pendant: node 0 has the highest degree and must be colored
	// first, taking frequency 0; all leaves share frequency 1.
	g := buildGraph(t, 5, [][2]int{{0, 1}, {0, 2}, {0, 3}, {3, 4}})

	res := coloring.WelshPowell(g)

	require.Zero(t, res.Conflicts)
	assert.Equal(t, 2, res.ChromaticNumber)
	node0, _ := g.Node(0)
	assert.Equal(t, 0, node0.Color)
}

func TestRunUnknownAlgorithm(t *testing.T) {
	g := triangle(t)
	_, err := coloring.Run(g, coloring.Algorithm("chromatic-annealing"))
	assert.ErrorIs(t, err, coloring.ErrUnknownAlgorithm)
}

func TestParseAlgorithm(t *testing.T) {
	for _, algo := range coloring.Algorithms() {
		got, err := coloring.ParseAlgorithm(string(algo))
		require.NoError(t, err)
		assert.Equal(t, algo, got)
	}

	_, err := coloring.ParseAlgorithm("exact")
	assert.ErrorIs(t, err, coloring.ErrUnknownAlgorithm)
}

// assignment returns per-node colors in insertion order.
func assignment(g *graph.Graph) []int {
	colors := make([]int, 0, g.NodeCount())
	for _, n := range g.Nodes() {
		colors = append(colors, n.Color)
	}
	return colors
}
