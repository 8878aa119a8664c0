// Package core declares Node, Edge, Graph, and the sentinel errors shared by
// all graph operations.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNonDenseID indicates AddNode was given an ID that would break the
	// dense [0, n) range (IDs must be added in ascending order without gaps).
	ErrNonDenseID = errors.New("core: node ID breaks dense range")

	// ErrSelfLoop indicates an edge whose endpoints are the same node.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Node represents a single network node.
//
// ID uniquely identifies the node within its Graph; IDs are dense and
// 0-based. Row, Col, and Binary are topology metadata assigned by the
// generator that created the node and never mutated afterwards:
//
//   - ring nodes carry no metadata beyond ID;
//   - mesh and torus nodes carry grid coordinates (Row, Col);
//   - hypercube nodes carry Binary, the fixed-width zero-padded binary
//     rendering of ID.
type Node struct {
	ID     int
	Row    int
	Col    int
	Binary string
}

// Edge represents an undirected unit-weight connection between two nodes.
//
// Edges are stored in canonical form with Source < Target; the pair is
// unordered and carries no weight (every hop costs 1).
type Edge struct {
	Source int
	Target int
}

// pairKey is the structural dedup key for an unordered node pair.
// Invariant: lo < hi (enforced by canonicalPair).
type pairKey struct {
	lo, hi int
}

// canonicalPair orders (u, v) into the canonical (min, max) key.
func canonicalPair(u, v int) pairKey {
	if u > v {
		u, v = v, u
	}

	return pairKey{lo: u, hi: v}
}

// Graph is the in-memory node/edge set produced by a topology generator.
//
// It is undirected, unweighted, loop-free, and duplicate-free. Nodes and
// edges are append-only; a fresh Graph is built for every regeneration.
type Graph struct {
	nodes []Node
	edges []Edge

	// seen holds the canonical key of every stored edge for O(1) dedup.
	seen map[pairKey]struct{}

	// adj mirrors edges as a symmetric neighbor list, maintained on insert
	// so AdjacencyList and Neighbors never rescan the edge set.
	adj [][]int
}
