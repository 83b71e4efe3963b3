package netgen_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specband/specband/pkg/graph"
	"github.com/specband/specband/pkg/netgen"
)

func TestRandomGeometricRespectsRadius(t *testing.T) {
	const radius = 200.0
	rng := rand.New(rand.NewPCG(42, 42))

	g, err := netgen.RandomGeometric(120, radius, 1000, 1000, rng)
	require.NoError(t, err)
	require.Equal(t, 120, g.NodeCount())

	for _, e := range g.Edges() {
		u, _ := g.Node(e.U)
		v, _ := g.Node(e.V)
		d := math.Hypot(u.Position.X-v.Position.X, u.Position.Y-v.Position.Y)
		assert.LessOrEqual(t, d, radius, "edge %d-%d spans %v", e.U, e.V, d)
	}
}

func TestRandomGeometricPositionsInArea(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	g, err := netgen.RandomGeometric(50, 100, 800, 600, rng)
	require.NoError(t, err)

	for _, n := range g.Nodes() {
		assert.GreaterOrEqual(t, n.Position.X, 0.0)
		assert.Less(t, n.Position.X, 800.0)
		assert.GreaterOrEqual(t, n.Position.Y, 0.0)
		assert.Less(t, n.Position.Y, 600.0)
	}
}

func TestRandomGeometricDeterministic(t *testing.T) {
	build := func() *graph.Graph {
		rng := rand.New(rand.NewPCG(7, 7))
		g, err := netgen.RandomGeometric(60, 250, 1000, 1000, rng)
		require.NoError(t, err)
		return g
	}

	a, b := build(), build()
	assert.Equal(t, a.EdgeCount(), b.EdgeCount())
	assert.Equal(t, graph.ToNetwork(a), graph.ToNetwork(b), "same seed must rebuild the same network")
}

func TestRandomGeometricValidation(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))

	_, err := netgen.RandomGeometric(-1, 100, 1000, 1000, rng)
	assert.ErrorIs(t, err, netgen.ErrInvalidCount)

	_, err = netgen.RandomGeometric(10, -5, 1000, 1000, rng)
	assert.ErrorIs(t, err, netgen.ErrInvalidRadius)

	_, err = netgen.RandomGeometric(10, 100, 1000, 1000, nil)
	assert.ErrorIs(t, err, netgen.ErrNilRand)
}

func TestGridHex2x2(t *testing.T) {
	g, err := netgen.Grid(2, 2, netgen.ConnectivityHex)
	require.NoError(t, err)

	// 2 horizontal + 2 vertical + 1 diagonal.
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 5, g.EdgeCount())
	assert.True(t, g.HasEdge(0, 3), "lower-right diagonal")
	assert.False(t, g.HasEdge(1, 2), "no lower-left diagonal under hex rule")
}

func TestGridSquare(t *testing.T) {
	tests := []struct {
		rows, cols int
		wantEdges  int
	}{
		{rows: 1, cols: 1, wantEdges: 0},
		{rows: 1, cols: 5, wantEdges: 4},
		{rows: 2, cols: 2, wantEdges: 4},
		{rows: 3, cols: 4, wantEdges: 17}, // 3*3 horizontal + 2*4 vertical
	}

	for _, tt := range tests {
		g, err := netgen.Grid(tt.rows, tt.cols, netgen.ConnectivitySquare)
		require.NoError(t, err)
		assert.Equal(t, tt.rows*tt.cols, g.NodeCount(), "%dx%d", tt.rows, tt.cols)
		assert.Equal(t, tt.wantEdges, g.EdgeCount(), "%dx%d", tt.rows, tt.cols)
	}
}

func TestGridHexInteriorDegree(t *testing.T) {
	g, err := netgen.Grid(4, 4, netgen.ConnectivityHex)
	require.NoError(t, err)

	// Interior cell (1,1) = id 5: left, right, up, down, lower-right, upper-left.
	assert.Equal(t, 6, g.Degree(5))
}

func TestGridValidation(t *testing.T) {
	_, err := netgen.Grid(0, 3, netgen.ConnectivityHex)
	assert.ErrorIs(t, err, netgen.ErrInvalidGrid)

	_, err = netgen.Grid(3, 3, netgen.Connectivity("triangular"))
	assert.ErrorIs(t, err, netgen.ErrInvalidConnectivity)
}

func TestScaleFree(t *testing.T) {
	const (
		n = 40
		m = 3
	)
	rng := rand.New(rand.NewPCG(9, 9))

	g, err := netgen.ScaleFree(n, m, rng)
	require.NoError(t, err)

	assert.Equal(t, n, g.NodeCount())
	// Seed clique plus m attachments per subsequent node.
	assert.Equal(t, m*(m-1)/2+(n-m)*m, g.EdgeCount())

	for id := m; id < n; id++ {
		assert.GreaterOrEqual(t, g.Degree(id), m, "node %d must attach to %d distinct targets", id, m)
	}
}

func TestScaleFreeValidation(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))

	_, err := netgen.ScaleFree(5, 0, rng)
	assert.ErrorIs(t, err, netgen.ErrInvalidAttachment)

	_, err = netgen.ScaleFree(3, 4, rng)
	assert.ErrorIs(t, err, netgen.ErrInvalidAttachment)

	_, err = netgen.ScaleFree(5, 2, nil)
	assert.ErrorIs(t, err, netgen.ErrNilRand)
}
