package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/icnlab/topograph/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("export: graph is nil")

// Default DOT attributes for highlighted path edges.
const (
	defaultGraphName  = "topograph"
	highlightColor    = "red"
	highlightPenwidth = 2
)

// DOTOption configures DOT serialization.
type DOTOption func(*dotOptions)

type dotOptions struct {
	name      string
	highlight []int
}

// WithGraphName overrides the DOT graph identifier.
func WithGraphName(name string) DOTOption {
	return func(o *dotOptions) {
		if name != "" {
			o.name = name
		}
	}
}

// WithHighlight marks the edges along the given node sequence (a path as
// produced by bfs.Result.PathTo) with color and penwidth attributes.
func WithHighlight(path []int) DOTOption {
	return func(o *dotOptions) {
		o.highlight = path
	}
}

// DOT renders g as Graphviz text: an undirected `graph` with one line per
// node and per edge. Hypercube nodes carry their binary string as a label;
// all other nodes render as their bare ID. Returns ErrGraphNil for a nil
// graph.
// Complexity: O(V + E).
func DOT(g *core.Graph, opts ...DOTOption) (string, error) {
	if g == nil {
		return "", ErrGraphNil
	}
	o := dotOptions{name: defaultGraphName}
	for _, opt := range opts {
		opt(&o)
	}

	// Membership set for highlighted hops, keyed by canonical pair.
	marked := make(map[[2]int]bool, len(o.highlight))
	for i := 0; i+1 < len(o.highlight); i++ {
		u, v := o.highlight[i], o.highlight[i+1]
		if u > v {
			u, v = v, u
		}
		marked[[2]int{u, v}] = true
	}

	var b strings.Builder
	fmt.Fprintf(&b, "graph %s {\n", o.name)
	for _, n := range g.Nodes() {
		// Binary is non-empty only for hypercube nodes; it is the one piece
		// of metadata that reads better than the bare ID.
		if n.Binary != "" {
			fmt.Fprintf(&b, "  %d [label=%q];\n", n.ID, n.Binary)
		} else {
			fmt.Fprintf(&b, "  %d;\n", n.ID)
		}
	}
	for _, e := range g.Edges() {
		if marked[[2]int{e.Source, e.Target}] {
			fmt.Fprintf(&b, "  %d -- %d [color=%s, penwidth=%d];\n",
				e.Source, e.Target, highlightColor, highlightPenwidth)
		} else {
			fmt.Fprintf(&b, "  %d -- %d;\n", e.Source, e.Target)
		}
	}
	b.WriteString("}\n")

	return b.String(), nil
}
