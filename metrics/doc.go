// Package metrics aggregates all-pairs shortest-path measurements over a
// core.Graph: diameter, average shortest-path length (ASPL), and
// connectivity, plus the supporting views used to display them: the dense
// distance matrix, connected components, and the farthest-node paths that
// drive highlighting.
//
// Everything is recomputed from scratch per call by running BFS from every
// node: O(V·(V+E)) time, tractable under the topology package's size caps
// (at most 2^10 nodes).
//
// Representation policy: no numeric infinity leaks out of this package.
// A disconnected graph reports Connected == false with zero Diameter and
// AvgPathLength; the unreachable entries of DistanceMatrix use the explicit
// Unreachable constant.
//
// The connectivity test compares the node count reached from node 0 against
// the graph order, which is exact for the symmetric adjacency core
// guarantees. A per-source reachable-count cross-check guards that
// invariant, and Components provides full component labeling when callers
// need the actual partition.
package metrics
