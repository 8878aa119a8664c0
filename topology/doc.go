// Package topology generates interconnection-network graphs from structural
// parameters: rings with optional chords, 2D meshes, 2D tori, and binary
// hypercubes.
//
// Every generator is a pure function of its parameters: the same inputs
// always produce the same node and edge sets, in the same order. Generation
// fully replaces any previous graph; nothing is mutated incrementally.
//
// Two entry points:
//
//   - Per-family constructors: BuildRing, BuildMesh, BuildTorus,
//     BuildHypercube.
//   - Build(p Params, opts...): dispatch over the tagged parameter union
//     (Ring, Mesh, Torus, Hypercube), giving compile-time exhaustiveness
//     over topology kinds. ParseParams decodes a YAML parameter record into
//     the union.
//
// Validation policy (strict on impossibilities, forgiving on ranges):
//
//   - Structurally impossible input (ring size < 1, grid dimension < 1)
//     returns ErrTooFewNodes.
//   - Out-of-range but recoverable input (skip beyond n/2, hypercube
//     dimension beyond 10, sizes above the practical caps) is clamped to the
//     nearest valid value; the clamp is reported through the WithWarnFunc
//     hook and generation proceeds. No warning is ever fatal.
//
// Size caps keep all-pairs metric computation tractable: rings up to 100
// nodes, grids up to 20×20, hypercubes up to 2^10 nodes.
//
// Edge invariants are enforced by core, not per generator: each family
// discovers undirected edges from both endpoints and relies on the graph's
// canonical-pair deduplication to store each edge exactly once, with no
// self-loops.
package topology
