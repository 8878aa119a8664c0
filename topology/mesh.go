// impl: Mesh(rows, cols) — 2D orthogonal grid, 4-neighborhood, no wraparound.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewNodes); dimensions above
//     MaxGridDim clamp with a warning.
//   - Nodes in row-major order; IDs come from a sequential counter and each
//     node is tagged with its (Row, Col).
//   - Each cell links to its left neighbor (c > 0) and the neighbor above
//     (r > 0), so every edge is emitted exactly once from its later endpoint
//     and no dedup collision can occur.
//
// Complexity: O(rows*cols) nodes + O(rows*cols) edges.

package topology

import (
	"fmt"

	"github.com/icnlab/topograph/core"
)

// BuildMesh builds a rows×cols mesh.
func BuildMesh(rows, cols int, opts ...Option) (*core.Graph, error) {
	o := newBuildOptions(opts...)

	if rows < MinGridDim || cols < MinGridDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			MethodMesh, rows, cols, MinGridDim, ErrTooFewNodes)
	}
	rows = o.clamp(MethodMesh, "rows", rows, MinGridDim, MaxGridDim)
	cols = o.clamp(MethodMesh, "cols", cols, MinGridDim, MaxGridDim)

	g := core.NewGraph()
	id := 0 // sequential counter; coincides with r*cols+c in row-major order
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if err := g.AddNode(core.Node{ID: id, Row: r, Col: c}); err != nil {
				return nil, fmt.Errorf("%s: AddNode(%d): %w", MethodMesh, id, err)
			}

			// Left neighbor (r, c-1).
			if c > 0 {
				if _, err := g.AddEdge(id, id-1); err != nil {
					return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodMesh, id, id-1, err)
				}
			}
			// Neighbor above (r-1, c).
			if r > 0 {
				if _, err := g.AddEdge(id, id-cols); err != nil {
					return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodMesh, id, id-cols, err)
				}
			}
			id++
		}
	}

	return g, nil
}
