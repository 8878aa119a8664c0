// YAML parameter records: the boundary format a UI layer hands to the
// library. A record is a small document tagged by kind:
//
//	kind: ring
//	nodes: 12
//	skip: 3
//
// Unknown kinds are rejected with ErrUnknownKind; numeric ranges are not
// checked here, the generators clamp on Build.

package topology

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// paramsRecord is the superset of all per-kind fields; only the fields of
// the tagged kind are consulted.
type paramsRecord struct {
	Kind      string `yaml:"kind"`
	Nodes     int    `yaml:"nodes"`
	Skip      int    `yaml:"skip"`
	Rows      int    `yaml:"rows"`
	Cols      int    `yaml:"cols"`
	Dimension int    `yaml:"dimension"`
}

// ParseParams decodes a YAML parameter record into the Params union.
// Returns ErrBadRecord for undecodable input and ErrUnknownKind for a kind
// outside ring|mesh|torus|hypercube.
func ParseParams(data []byte) (Params, error) {
	var rec paramsRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("ParseParams: %v: %w", err, ErrBadRecord)
	}

	switch rec.Kind {
	case KindRing:
		return Ring{Nodes: rec.Nodes, Skip: rec.Skip}, nil
	case KindMesh:
		return Mesh{Rows: rec.Rows, Cols: rec.Cols}, nil
	case KindTorus:
		return Torus{Rows: rec.Rows, Cols: rec.Cols}, nil
	case KindHypercube:
		return Hypercube{Dimension: rec.Dimension}, nil
	default:
		return nil, fmt.Errorf("ParseParams: kind=%q: %w", rec.Kind, ErrUnknownKind)
	}
}
