// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, predecessor links, and visit order.
//
// BFS explores nodes in increasing hop distance from a start node over the
// graph's symmetric adjacency. Correctness relies on unit edge weight and
// undirected adjacency, both guaranteed by core.
//
// The Result exposes:
//
//   - Order: nodes in visit sequence. Deterministic: neighbor order follows
//     edge-insertion order, which the generators keep stable.
//   - Dist: hop distance per reached node. Absence from Dist is the
//     "unreachable" representation; no numeric infinity sentinel exists.
//   - Parent: BFS-tree predecessor per reached node; the start node and
//     unreached nodes have no entry.
//   - PathTo: shortest-path reconstruction from the start to any reached
//     node, with a corruption guard distinct from plain unreachability.
//
// Options allow cancellation (WithContext), depth limiting (WithMaxDepth),
// and a per-node visit hook (WithOnVisit).
//
// Complexity: O(V + E) time, O(V) space per invocation.
package bfs
