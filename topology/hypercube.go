// impl: Hypercube(d) — binary d-cube with 2^d nodes.
//
// Contract:
//   - d clamps to [0, 10] with a warning (values outside are adjusted, not
//     rejected; 2^10 = 1024 nodes is the practical ceiling).
//   - Node i carries Binary, the d-bit zero-padded binary rendering of i
//     (empty string for d = 0).
//   - Nodes i and i^(1<<j) are adjacent for every bit position j in [0, d):
//     Hamming distance exactly 1. Each edge is discovered once from each
//     endpoint; core's canonical-pair dedup collapses the pair.
//   - d = 0 produces a single node and no edges.
//
// Complexity: O(2^d) nodes + O(d * 2^d) edge emissions.

package topology

import (
	"fmt"

	"github.com/icnlab/topograph/core"
)

// BuildHypercube builds the binary hypercube of the given dimension.
func BuildHypercube(dimension int, opts ...Option) (*core.Graph, error) {
	o := newBuildOptions(opts...)

	d := o.clamp(MethodHypercube, "dimension", dimension, MinCubeDim, MaxCubeDim)
	n := 1 << d

	g := core.NewGraph()
	for i := 0; i < n; i++ {
		if err := g.AddNode(core.Node{ID: i, Binary: binaryLabel(i, d)}); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%d): %w", MethodHypercube, i, err)
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			nbr := i ^ (1 << j)
			if _, err := g.AddEdge(i, nbr); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodHypercube, i, nbr, err)
			}
		}
	}

	return g, nil
}

// binaryLabel renders id as a zero-padded width-d binary string.
// Width 0 yields the empty string (the 0-cube's single node has no bits).
func binaryLabel(id, d int) string {
	if d == 0 {
		return ""
	}

	return fmt.Sprintf("%0*b", d, id)
}
