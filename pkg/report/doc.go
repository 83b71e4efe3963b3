// Package report derives metrics from a colored interference graph and
// serializes assignment snapshots.
//
// A Snapshot is an immutable record of one completed coloring run: the
// algorithm used, the chromatic number, the conflict count, and the ordered
// per-node frequency assignments. Snapshots marshal to the JSON boundary
// format consumed by external tooling; see [WriteFile] for one-shot export.
//
// The package also renders a colored network as a Graphviz node-link diagram
// (DOT and SVG) for quick visual inspection of an assignment.
package report
