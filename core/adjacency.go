package core

// Neighbors returns the neighbor IDs of id, in edge-insertion order.
// The returned slice is a copy; an isolated node yields an empty slice.
// Returns ErrNodeNotFound for an unknown ID.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id int) ([]int, error) {
	if !g.HasNode(id) {
		return nil, ErrNodeNotFound
	}
	out := make([]int, len(g.adj[id]))
	copy(out, g.adj[id])

	return out, nil
}

// Degree returns the number of neighbors of id.
// Returns ErrNodeNotFound for an unknown ID.
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	if !g.HasNode(id) {
		return 0, ErrNodeNotFound
	}

	return len(g.adj[id]), nil
}

// AdjacencyList converts the edge set into an undirected adjacency mapping.
//
// The mapping is symmetric (both directions of every edge appear) and covers
// every node ID, including degree-0 nodes, which map to an empty list. The
// result is an independent copy; mutating it does not affect the graph.
// Complexity: O(V + E) time and space.
func (g *Graph) AdjacencyList() map[int][]int {
	out := make(map[int][]int, len(g.nodes))
	for id := range g.nodes {
		nbrs := make([]int, len(g.adj[id]))
		copy(nbrs, g.adj[id])
		out[id] = nbrs
	}

	return out
}
