package core

import "fmt"

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes: nil,
		edges: nil,
		seen:  make(map[pairKey]struct{}),
		adj:   nil,
	}
}

// AddNode appends n to the graph.
//
// n.ID must equal the current node count so IDs always form the dense range
// [0, NodeCount); any other value returns ErrNonDenseID. Metadata fields are
// stored as given and never mutated by the graph.
// Complexity: amortized O(1).
func (g *Graph) AddNode(n Node) error {
	if n.ID != len(g.nodes) {
		return fmt.Errorf("AddNode: id=%d, next dense id=%d: %w", n.ID, len(g.nodes), ErrNonDenseID)
	}
	g.nodes = append(g.nodes, n)
	g.adj = append(g.adj, nil)

	return nil
}

// AddEdge inserts the undirected edge {u, v}.
//
// Returns (true, nil) when the edge was stored, (false, nil) when the
// unordered pair is already present (duplicate discovery is expected from
// generators and is not an error), ErrSelfLoop when u == v, and
// ErrNodeNotFound when either endpoint does not exist.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int) (bool, error) {
	if u == v {
		return false, fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	if !g.HasNode(u) {
		return false, fmt.Errorf("AddEdge: endpoint %d: %w", u, ErrNodeNotFound)
	}
	if !g.HasNode(v) {
		return false, fmt.Errorf("AddEdge: endpoint %d: %w", v, ErrNodeNotFound)
	}

	key := canonicalPair(u, v)
	if _, dup := g.seen[key]; dup {
		return false, nil
	}
	g.seen[key] = struct{}{}
	g.edges = append(g.edges, Edge{Source: key.lo, Target: key.hi})
	// Symmetric adjacency: both directions for one undirected edge.
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)

	return true, nil
}

// HasNode reports whether id names an existing node.
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	return id >= 0 && id < len(g.nodes)
}

// HasEdge reports whether the unordered pair {u, v} is present.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.seen[canonicalPair(u, v)]

	return ok
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of stored (deduplicated) edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Node returns the node with the given ID.
// Returns ErrNodeNotFound for an unknown ID.
func (g *Graph) Node(id int) (Node, error) {
	if !g.HasNode(id) {
		return Node{}, fmt.Errorf("Node(%d): %w", id, ErrNodeNotFound)
	}

	return g.nodes[id], nil
}

// Nodes returns a copy of the node list in ID order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns a copy of the edge list in insertion order.
// Each edge is in canonical form (Source < Target).
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}
