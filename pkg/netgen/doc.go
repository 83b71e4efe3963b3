// Package netgen generates synthetic interference networks for testing and
// benchmarking the coloring algorithms.
//
// Three topology recipes are provided:
//
//   - RandomGeometric: transmitters dropped uniformly into a rectangle, with
//     an interference link between every pair within a given radius
//   - Grid: a cellular rows×cols lattice with square or hex connectivity
//   - ScaleFree: Barabási-Albert preferential attachment, a realistic shape
//     for organically grown IoT deployments
//
// Every generator builds a fresh, independently owned graph and depends on
// no process-wide state: randomness comes from an explicit *rand.Rand, so a
// fixed seed reproduces the exact same network.
package netgen
