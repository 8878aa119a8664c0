// Package topograph builds small interconnection-network topologies and
// computes their shortest-path metrics.
//
// What you get:
//
//   - Topology generators: ring (with optional chords), 2D mesh, 2D torus,
//     and binary hypercube, each a pure function of its parameters.
//   - Unweighted shortest paths: single-source BFS with distance and
//     predecessor maps, plus shortest-path reconstruction.
//   - All-pairs metrics: diameter, average shortest-path length, and
//     connectivity, recomputed from scratch per graph.
//   - Renderer exports: DOT and JSON views of a graph, its metrics, and
//     highlighted paths.
//
// Everything is organized under five subpackages:
//
//	core/     - Node, Edge, Graph primitives and the adjacency builder
//	topology/ - the four generator families and their parameter records
//	bfs/      - breadth-first search and path reconstruction
//	metrics/  - diameter / ASPL / connectivity aggregation, components
//	export/   - DOT and JSON output for external renderers
//
// The library is pure Go, synchronous, and makes no layout or rendering
// decisions: a consumer receives node/edge lists, distances, and paths, and
// draws them however it likes.
//
// Quick example, metrics of a 3-cube:
//
//	g, _ := topology.Build(topology.Hypercube{Dimension: 3})
//	m, _ := metrics.Compute(g)
//	fmt.Println(m.Diameter) // 3
package topograph
