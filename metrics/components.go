package metrics

import "github.com/icnlab/topograph/core"

// Components partitions g into its connected components.
//
// Each component is a slice of node IDs in BFS discovery order; components
// are ordered by their lowest node ID. A connected graph yields exactly one
// component. This is the general connectivity test for callers that need
// the actual partition rather than the Metrics boolean.
// Complexity: O(V + E) time, O(V) space.
func Components(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.NodeCount()
	adj := g.AdjacencyList()
	seen := make([]bool, n)
	var comps [][]int

	for start := 0; start < n; start++ {
		if seen[start] {
			continue
		}
		// BFS flood to collect the component of start.
		queue := []int{start}
		seen[start] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, v := range adj[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps, nil
}
