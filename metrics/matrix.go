package metrics

import (
	"fmt"

	"github.com/icnlab/topograph/bfs"
	"github.com/icnlab/topograph/core"
)

// DistanceMatrix computes the dense all-pairs shortest-path table of g.
//
// Entry [i][j] is the hop distance from i to j; pairs with no connecting
// path hold the Unreachable constant. The diagonal is always zero. The
// matrix is symmetric because the graph is undirected.
// Complexity: O(V·(V+E)) time, O(V²) space.
func DistanceMatrix(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.NodeCount()
	mat := make([][]int, n)
	for src := 0; src < n; src++ {
		res, err := bfs.BFS(g, src)
		if err != nil {
			return nil, fmt.Errorf("DistanceMatrix: BFS(%d): %w", src, err)
		}

		row := make([]int, n)
		for j := 0; j < n; j++ {
			if d, ok := res.Dist[j]; ok {
				row[j] = d
			} else {
				row[j] = Unreachable
			}
		}
		mat[src] = row
	}

	return mat, nil
}
