// Package coloring implements the frequency-assignment algorithms.
//
// Three heuristics color an interference graph so that no two adjacent nodes
// share a frequency, using as few frequencies as possible:
//
//   - Greedy: one pass in node insertion order
//   - Welsh-Powell: one pass in descending-degree order
//   - DSATUR: repeatedly colors the most saturated uncolored node
//
// Every algorithm resets the graph's coloring state on entry, colors every
// node exactly once, and picks each node's frequency with the minimum
// excludant over its neighbors' colors. Runs are deterministic for a fixed
// graph and insertion order; the tie-break rules are documented on each
// function.
//
// A run takes exclusive write access to its graph. Callers that share one
// graph across runs must serialize them - see [Run].
package coloring
