package metrics

import (
	"fmt"

	"github.com/icnlab/topograph/bfs"
	"github.com/icnlab/topograph/core"
)

// FarthestPaths reconstructs one shortest path from source to every node at
// the source's eccentricity (its maximum BFS distance), i.e. the "diameter
// paths" a renderer highlights.
//
// When several nodes tie for the maximum distance, one path per node is
// returned, ordered by target ID. A source whose eccentricity is zero
// (single node or isolated node) yields no paths. Unreached nodes never
// appear: eccentricity is taken over the source's component only.
// Complexity: O(V + E) for the BFS plus O(Σ path length).
func FarthestPaths(g *core.Graph, source int) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	res, err := bfs.BFS(g, source)
	if err != nil {
		return nil, fmt.Errorf("FarthestPaths: %w", err)
	}

	ecc := 0
	for _, d := range res.Dist {
		if d > ecc {
			ecc = d
		}
	}
	if ecc == 0 {
		return nil, nil
	}

	var paths [][]int
	for id := 0; id < g.NodeCount(); id++ {
		if d, ok := res.Dist[id]; !ok || d != ecc {
			continue
		}
		p, err := res.PathTo(id)
		if err != nil {
			// A reached node must reconstruct; anything else is corruption.
			return nil, fmt.Errorf("FarthestPaths: target %d: %w", id, err)
		}
		paths = append(paths, p)
	}

	return paths, nil
}
