package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Wire Format
// =============================================================================

// Network is the canonical serialization format for interference topologies.
// It carries positions and links only - coloring state is run-scoped and
// travels in report snapshots instead. Used for caching generated networks
// and for feeding externally built topologies into the engine.
type Network struct {
	Nodes []NodeRecord `json:"nodes" bson:"nodes"`
	Edges []EdgeRecord `json:"edges" bson:"edges"`
}

// NodeRecord is the serialized form of a node's identity and placement.
type NodeRecord struct {
	ID int     `json:"id" bson:"id"`
	X  float64 `json:"x" bson:"x"`
	Y  float64 `json:"y" bson:"y"`
}

// EdgeRecord is the serialized form of an undirected interference link.
type EdgeRecord struct {
	U int `json:"u" bson:"u"`
	V int `json:"v" bson:"v"`
}

// =============================================================================
// Serialization API
// =============================================================================

// Marshal converts a graph to JSON bytes.
// Nodes appear in insertion order for deterministic output.
func Marshal(g *Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTo(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes a graph as JSON to an io.Writer.
func Write(g *Graph, w io.Writer) error {
	return writeTo(g, w)
}

// WriteFile writes a graph to a JSON file created with 0644 permissions.
func WriteFile(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeTo(g, f)
}

// Read decodes a JSON network from an io.Reader and rebuilds the graph.
// Edges referencing unknown nodes fail with ErrUnknownNode.
func Read(r io.Reader) (*Graph, error) {
	var data Network
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return FromNetwork(data)
}

// ReadFile reads a JSON file and returns the decoded graph.
func ReadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// =============================================================================
// Graph ↔ Network Conversion
// =============================================================================

// ToNetwork converts a graph to its serialization format.
// Node order matches insertion order and edge order matches the edge list,
// so the round trip import → export → re-import is lossless.
func ToNetwork(g *Graph) Network {
	out := Network{
		Nodes: make([]NodeRecord, 0, g.NodeCount()),
		Edges: make([]EdgeRecord, 0, g.EdgeCount()),
	}
	for _, n := range g.Nodes() {
		out.Nodes = append(out.Nodes, NodeRecord{ID: n.ID, X: n.Position.X, Y: n.Position.Y})
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, EdgeRecord{U: e.U, V: e.V})
	}
	return out
}

// FromNetwork rebuilds a graph from its serialization format.
// Returns an error if an edge references a node that isn't listed.
func FromNetwork(nw Network) (*Graph, error) {
	g := New()
	for _, n := range nw.Nodes {
		g.AddNode(n.ID, Position{X: n.X, Y: n.Y})
	}
	for _, e := range nw.Edges {
		if err := g.AddEdge(e.U, e.V); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func writeTo(g *Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ToNetwork(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
