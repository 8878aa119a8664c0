package topology_test

import (
	"errors"
	"testing"

	"github.com/icnlab/topograph/topology"
)

// TestParseParams_Kinds round-trips one record per topology kind.
func TestParseParams_Kinds(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want topology.Params
	}{
		{"Ring", "kind: ring\nnodes: 12\nskip: 3\n", topology.Ring{Nodes: 12, Skip: 3}},
		{"Mesh", "kind: mesh\nrows: 4\ncols: 5\n", topology.Mesh{Rows: 4, Cols: 5}},
		{"Torus", "kind: torus\nrows: 4\ncols: 5\n", topology.Torus{Rows: 4, Cols: 5}},
		{"Hypercube", "kind: hypercube\ndimension: 3\n", topology.Hypercube{Dimension: 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := topology.ParseParams([]byte(tc.doc))
			if err != nil {
				t.Fatalf("ParseParams error: %v", err)
			}
			if got != tc.want {
				t.Errorf("ParseParams = %#v; want %#v", got, tc.want)
			}
		})
	}
}

// TestParseParams_Errors covers unknown kinds and undecodable documents.
func TestParseParams_Errors(t *testing.T) {
	if _, err := topology.ParseParams([]byte("kind: moebius\n")); !errors.Is(err, topology.ErrUnknownKind) {
		t.Errorf("unknown kind: error = %v; want ErrUnknownKind", err)
	}
	if _, err := topology.ParseParams([]byte("kind: [broken")); !errors.Is(err, topology.ErrBadRecord) {
		t.Errorf("malformed record: error = %v; want ErrBadRecord", err)
	}
}

// TestParseParams_BuildPipeline checks a record flows into a graph.
func TestParseParams_BuildPipeline(t *testing.T) {
	p, err := topology.ParseParams([]byte("kind: torus\nrows: 4\ncols: 5\n"))
	if err != nil {
		t.Fatalf("ParseParams error: %v", err)
	}
	g, err := topology.Build(p)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if g.NodeCount() != 20 || g.EdgeCount() != 40 {
		t.Errorf("torus 4×5 = %d nodes / %d edges; want 20 / 40", g.NodeCount(), g.EdgeCount())
	}
}
