package report

import (
	"slices"

	"github.com/specband/specband/pkg/graph"
)

// Snapshot is the boundary format for a completed frequency assignment.
// Field meanings follow the export contract: frequency is the node's color,
// -1 if the node was never assigned one.
type Snapshot struct {
	Algorithm       string       `json:"algorithm" bson:"algorithm"`
	ChromaticNumber int          `json:"chromatic_number" bson:"chromatic_number"`
	Conflicts       int          `json:"conflicts" bson:"conflicts"`
	Nodes           int          `json:"nodes" bson:"nodes"`
	Edges           int          `json:"edges" bson:"edges"`
	Assignments     []Assignment `json:"assignments" bson:"assignments"`
}

// Assignment is one node's frequency record.
type Assignment struct {
	ID        int `json:"id" bson:"id"`
	Frequency int `json:"frequency" bson:"frequency"`
	Degree    int `json:"degree" bson:"degree"`
}

// Take captures an immutable snapshot of the graph's current coloring.
// Assignments are ordered by ascending node ID for deterministic output.
// The snapshot is decoupled from the graph: later recoloring does not
// affect it.
func Take(g *graph.Graph, algorithm string) Snapshot {
	assignments := make([]Assignment, 0, g.NodeCount())
	for _, n := range g.Nodes() {
		assignments = append(assignments, Assignment{ID: n.ID, Frequency: n.Color, Degree: n.Degree})
	}
	slices.SortFunc(assignments, func(a, b Assignment) int { return a.ID - b.ID })

	return Snapshot{
		Algorithm:       algorithm,
		ChromaticNumber: g.ChromaticNumber(),
		Conflicts:       g.ConflictCount(),
		Nodes:           g.NodeCount(),
		Edges:           g.EdgeCount(),
		Assignments:     assignments,
	}
}

// Efficiency returns the spectrum efficiency percentage: how few frequencies
// were needed relative to the node count. A network where every node needs
// its own frequency scores 0; large networks covered by a handful of
// frequencies approach 100. Returns 0 for an empty network.
func Efficiency(nodes, chromaticNumber int) float64 {
	if nodes == 0 {
		return 0
	}
	return float64(nodes-chromaticNumber) / float64(nodes) * 100
}

// SnapshotEfficiency is a convenience wrapper reading the counts off a snapshot.
func SnapshotEfficiency(s Snapshot) float64 {
	return Efficiency(s.Nodes, s.ChromaticNumber)
}
