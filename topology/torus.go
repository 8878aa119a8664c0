// impl: Torus(rows, cols) — 2D grid with row and column wraparound.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewNodes); dimensions above
//     MaxGridDim clamp with a warning.
//   - Node ID is the row-major encoding r*cols + c (deterministic, unlike
//     the mesh's counter); each node is tagged with (Row, Col).
//   - Every node links downward with the row wrapped mod rows (only when
//     rows > 1) and rightward with the column wrapped mod cols (only when
//     cols > 1). The wrap step revisits each edge from its far endpoint;
//     core's canonical-pair dedup stores it once. The > 1 guards make
//     self-loops impossible.
//
// Complexity: O(rows*cols) nodes + O(rows*cols) edge emissions per axis.

package topology

import (
	"fmt"

	"github.com/icnlab/topograph/core"
)

// BuildTorus builds a rows×cols torus.
func BuildTorus(rows, cols int, opts ...Option) (*core.Graph, error) {
	o := newBuildOptions(opts...)

	if rows < MinGridDim || cols < MinGridDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			MethodTorus, rows, cols, MinGridDim, ErrTooFewNodes)
	}
	rows = o.clamp(MethodTorus, "rows", rows, MinGridDim, MaxGridDim)
	cols = o.clamp(MethodTorus, "cols", cols, MinGridDim, MaxGridDim)

	g := core.NewGraph()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := r*cols + c
			if err := g.AddNode(core.Node{ID: id, Row: r, Col: c}); err != nil {
				return nil, fmt.Errorf("%s: AddNode(%d): %w", MethodTorus, id, err)
			}
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := r*cols + c

			// Node directly below, row wrapped.
			if rows > 1 {
				down := ((r+1)%rows)*cols + c
				if _, err := g.AddEdge(id, down); err != nil {
					return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodTorus, id, down, err)
				}
			}
			// Node directly right, column wrapped.
			if cols > 1 {
				right := r*cols + (c+1)%cols
				if _, err := g.AddEdge(id, right); err != nil {
					return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodTorus, id, right, err)
				}
			}
		}
	}

	return g, nil
}
