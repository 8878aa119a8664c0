package export

import (
	"encoding/json"
	"fmt"

	"github.com/icnlab/topograph/core"
	"github.com/icnlab/topograph/metrics"
)

// Document is the JSON shape consumed by browser-side renderers.
type Document struct {
	Nodes   []NodeRecord   `json:"nodes"`
	Edges   []EdgeRecord   `json:"edges"`
	Metrics *MetricsRecord `json:"metrics,omitempty"`
}

// NodeRecord carries one node with its topology metadata. Row/Col appear
// for grid topologies, Binary for hypercubes; both are omitted when unset.
type NodeRecord struct {
	ID     int    `json:"id"`
	Row    *int   `json:"row,omitempty"`
	Col    *int   `json:"col,omitempty"`
	Binary string `json:"binary,omitempty"`
}

// EdgeRecord carries one undirected edge as an id pair.
type EdgeRecord struct {
	Source int `json:"source"`
	Target int `json:"target"`
}

// MetricsRecord mirrors metrics.Metrics with renderer-facing field names.
type MetricsRecord struct {
	Diameter      int     `json:"diameter"`
	AvgPathLength float64 `json:"avgPathLength"`
	IsConnected   bool    `json:"isConnected"`
}

// JSON serializes g (and, when m is non-nil, its metrics) as a Document.
// Returns ErrGraphNil for a nil graph.
// Complexity: O(V + E).
func JSON(g *core.Graph, m *metrics.Metrics) ([]byte, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	doc := Document{
		Nodes: make([]NodeRecord, 0, g.NodeCount()),
		Edges: make([]EdgeRecord, 0, g.EdgeCount()),
	}
	// Grid coordinates travel only for grid graphs; a hypercube or plain
	// ring leaves them out entirely rather than sending zeros.
	grid := hasGridShape(g)
	for _, n := range g.Nodes() {
		rec := NodeRecord{ID: n.ID, Binary: n.Binary}
		if n.Binary == "" && grid {
			row, col := n.Row, n.Col
			rec.Row, rec.Col = &row, &col
		}
		doc.Nodes = append(doc.Nodes, rec)
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeRecord{Source: e.Source, Target: e.Target})
	}
	if m != nil {
		doc.Metrics = &MetricsRecord{
			Diameter:      m.Diameter,
			AvgPathLength: m.AvgPathLength,
			IsConnected:   m.Connected,
		}
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("JSON: %w", err)
	}

	return out, nil
}

// hasGridShape reports whether any node carries a non-origin grid
// coordinate, marking the graph as mesh/torus output.
func hasGridShape(g *core.Graph) bool {
	for _, n := range g.Nodes() {
		if n.Row != 0 || n.Col != 0 {
			return true
		}
	}

	return false
}
