// Package metrics result types and sentinel errors.
package metrics

import "errors"

// Sentinel errors for metric computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("metrics: graph is nil")
)

// Unreachable marks a node pair with no connecting path in DistanceMatrix.
const Unreachable = -1

// asplPrecision is the rounding granularity for AvgPathLength (3 decimals).
const asplPrecision = 1000

// Metrics summarizes the shortest-path structure of one graph.
//
// Diameter and AvgPathLength are meaningful only when Connected is true;
// for a disconnected graph both are zero and Connected is the sentinel the
// caller must consult.
type Metrics struct {
	// Diameter is the maximum shortest-path distance over all node pairs.
	Diameter int

	// AvgPathLength is the mean shortest-path distance over all ordered
	// distinct node pairs, rounded to 3 decimal places.
	AvgPathLength float64

	// Connected reports whether every node reaches every other node.
	Connected bool
}
