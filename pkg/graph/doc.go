// Package graph provides the interference graph used for frequency assignment.
//
// An interference graph models a radio network: nodes are transmitters (cell
// towers, IoT devices) and an edge connects every pair of nodes close enough
// to interfere if assigned the same frequency. Frequencies are represented as
// non-negative integer colors; a node without an assignment carries the
// Uncolored sentinel.
//
// # Structure
//
// The graph owns all node state. Nodes are stored in a map keyed by ID with
// an explicit neighbor set per node, plus an append-only edge list. Adjacency
// is always symmetric and free of self-loops and duplicates: AddEdge silently
// ignores both, so generators can be re-run idempotently.
//
// # Coloring state
//
// Every node starts uncolored. A coloring algorithm (see package coloring)
// takes exclusive write access for the duration of a run and leaves every
// node with a non-negative color. ResetColoring returns the graph to the
// initial state so the same instance can be recolored by a different
// algorithm without rebuilding it.
//
// Graph is not safe for concurrent use without external synchronization.
package graph
