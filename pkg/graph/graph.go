package graph

import (
	"errors"
	"fmt"
	"slices"
)

// Uncolored is the sentinel color of a node with no frequency assigned.
// Valid assignments are non-negative integers.
const Uncolored = -1

// ErrUnknownNode is returned by [Graph.AddEdge] when either endpoint has not
// been added to the graph. The edge is skipped and the graph is otherwise
// unaffected, so callers may report the error and continue building.
var ErrUnknownNode = errors.New("unknown node")

// Position is a 2-D location in the deployment area. Positions are used by
// the generators (distance checks) and carried through exports; the coloring
// algorithms never read them.
type Position struct {
	X float64
	Y float64
}

// Node is a transmitter in the interference graph.
//
// Degree always equals the size of the node's neighbor set and is maintained
// by [Graph.AddEdge]. Saturation is the count of distinct colors among the
// node's neighbors; it is only meaningful while a DSATUR run is in flight and
// is reset to zero by [Graph.ResetColoring].
type Node struct {
	ID         int
	Position   Position
	Color      int // Uncolored until an algorithm assigns a frequency
	Degree     int
	Saturation int

	neighbors map[int]struct{}
}

// Edge is an undirected interference link between two distinct nodes.
type Edge struct {
	U int
	V int
}

// Graph is an undirected interference graph with per-node coloring state.
//
// The zero value is not usable - use New. Node enumeration order is the
// insertion order, which the coloring algorithms rely on for deterministic
// output.
type Graph struct {
	nodes map[int]*Node
	order []int // node IDs in insertion order
	edges []Edge
}

// New creates an empty interference graph.
func New() *Graph {
	return &Graph{nodes: make(map[int]*Node)}
}

// AddNode inserts a node with the given ID and position.
// Adding an ID that already exists is a no-op, so generators can be re-run
// against the same graph without error.
func (g *Graph) AddNode(id int, pos Position) {
	if _, exists := g.nodes[id]; exists {
		return
	}
	g.nodes[id] = &Node{
		ID:        id,
		Position:  pos,
		Color:     Uncolored,
		neighbors: make(map[int]struct{}),
	}
	g.order = append(g.order, id)
}

// AddEdge records an undirected interference link between u and v and
// increments both endpoints' degrees.
//
// Returns ErrUnknownNode (wrapped with the offending ID) if either endpoint
// is missing; the graph is left unchanged. Self-loops and duplicate edges are
// silently ignored - construction is expected to be idempotent.
func (g *Graph) AddEdge(u, v int) error {
	nu, ok := g.nodes[u]
	if !ok {
		return fmt.Errorf("add edge %d-%d: %w: %d", u, v, ErrUnknownNode, u)
	}
	nv, ok := g.nodes[v]
	if !ok {
		return fmt.Errorf("add edge %d-%d: %w: %d", u, v, ErrUnknownNode, v)
	}
	if u == v {
		return nil
	}
	if _, dup := nu.neighbors[v]; dup {
		return nil
	}

	g.edges = append(g.edges, Edge{U: u, V: v})
	nu.neighbors[v] = struct{}{}
	nv.neighbors[u] = struct{}{}
	nu.Degree++
	nv.Degree++
	return nil
}

// HasEdge reports whether an interference link exists between u and v.
func (g *Graph) HasEdge(u, v int) bool {
	n, ok := g.nodes[u]
	if !ok {
		return false
	}
	_, ok = n.neighbors[v]
	return ok
}

// Neighbors returns the IDs adjacent to the given node in ascending order.
// Returns nil if the node has no neighbors or doesn't exist.
func (g *Graph) Neighbors(id int) []int {
	n, ok := g.nodes[id]
	if !ok || len(n.neighbors) == 0 {
		return nil
	}
	ids := make([]int, 0, len(n.neighbors))
	for v := range n.neighbors {
		ids = append(ids, v)
	}
	slices.Sort(ids)
	return ids
}

// NeighborColors returns the set of distinct colors currently assigned among
// the node's neighbors. Uncolored neighbors contribute nothing. Returns an
// empty set for an unknown node.
func (g *Graph) NeighborColors(id int) map[int]struct{} {
	colors := make(map[int]struct{})
	n, ok := g.nodes[id]
	if !ok {
		return colors
	}
	for v := range n.neighbors {
		if c := g.nodes[v].Color; c != Uncolored {
			colors[c] = struct{}{}
		}
	}
	return colors
}

// SmallestAvailableColor returns the smallest non-negative integer not
// present in used - the minimum excludant over the color set. Every coloring
// algorithm picks a node's frequency with this rule.
func SmallestAvailableColor(used map[int]struct{}) int {
	color := 0
	for {
		if _, taken := used[color]; !taken {
			return color
		}
		color++
	}
}

// ResetColoring clears every node's color back to Uncolored and its
// saturation to zero. Calling it twice in a row is equivalent to once.
func (g *Graph) ResetColoring() {
	for _, n := range g.nodes {
		n.Color = Uncolored
		n.Saturation = 0
	}
}

// ChromaticNumber returns the number of distinct colors currently in use.
// Uncolored nodes are not counted, so a freshly built graph reports 0.
func (g *Graph) ChromaticNumber() int {
	colors := make(map[int]struct{})
	for _, n := range g.nodes {
		if n.Color != Uncolored {
			colors[n.Color] = struct{}{}
		}
	}
	return len(colors)
}

// ConflictCount returns the number of edges whose endpoints are both colored
// and share the same color. A correct coloring run always yields 0.
func (g *Graph) ConflictCount() int {
	conflicts := 0
	for _, e := range g.edges {
		cu, cv := g.nodes[e.U].Color, g.nodes[e.V].Color
		if cu != Uncolored && cu == cv {
			conflicts++
		}
	}
	return conflicts
}

// Node returns the node with the given ID and true, or nil and false if not
// found. The pointer refers to the actual node, so color mutations affect
// the graph.
func (g *Graph) Node(id int) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// IDs returns all node IDs in insertion order. The returned slice is a copy.
func (g *Graph) IDs() []int { return slices.Clone(g.order) }

// Nodes returns all nodes in insertion order. The slice contains pointers to
// the actual node structs, so modifications affect the graph.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, len(g.order))
	for i, id := range g.order {
		nodes[i] = g.nodes[id]
	}
	return nodes
}

// Edges returns a copy of the edge list in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of interference links in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Degree returns the node's neighbor count, or 0 if the node doesn't exist.
func (g *Graph) Degree(id int) int {
	if n, ok := g.nodes[id]; ok {
		return n.Degree
	}
	return 0
}
