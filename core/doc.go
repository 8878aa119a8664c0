// Package core defines the central Graph, Node, and Edge types for
// interconnection-network topologies, and provides primitives for building
// and querying them.
//
// What:
//
//   - Node: dense integer ID plus topology metadata (grid coordinates for
//     mesh/torus, binary label for hypercube), fixed at creation.
//   - Edge: unordered unit-weight pair of node IDs, stored in canonical
//     (min, max) form.
//   - Graph: append-only node and edge sets with structural deduplication:
//     no self-loops, no duplicate unordered pairs, IDs always form [0, n).
//   - AdjacencyList: symmetric neighbor mapping with one entry per node,
//     even for isolated nodes.
//
// Why:
//
//   - Generators discover each undirected edge from both endpoints; the
//     dedup set keyed by a structural (lo, hi) pair collapses the second
//     discovery uniformly, so no generator needs its own bookkeeping.
//   - A Graph value is the whole session: regenerating a topology replaces
//     the previous Graph rather than mutating it.
//
// Errors:
//
//   - ErrNonDenseID: AddNode would break the contiguous [0, n) ID range.
//   - ErrSelfLoop: an edge's endpoints are equal.
//   - ErrNodeNotFound: an operation referenced a non-existent node ID.
//
// The package is synchronous and unsynchronized: a Graph is built by one
// goroutine and read afterwards.
package core
