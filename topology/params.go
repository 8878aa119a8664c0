package topology

import (
	"fmt"

	"github.com/icnlab/topograph/core"
)

// Params is the tagged union of topology parameter records. Exactly four
// variants exist: Ring, Mesh, Torus, and Hypercube. The sealed interface
// replaces duck-typed parameter bags with compile-time exhaustiveness over
// topology kinds.
type Params interface {
	// Kind returns the canonical kind tag ("ring", "mesh", ...).
	Kind() string

	isParams()
}

// Ring parameterizes a ring of Nodes vertices with chords of the given Skip
// distance. Skip 1 (or 0) yields the plain cycle.
type Ring struct {
	Nodes int `yaml:"nodes"`
	Skip  int `yaml:"skip"`
}

// Mesh parameterizes a Rows×Cols 2D mesh without wraparound.
type Mesh struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// Torus parameterizes a Rows×Cols 2D torus (mesh with wrap edges).
type Torus struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// Hypercube parameterizes a binary hypercube of the given Dimension
// (2^Dimension nodes).
type Hypercube struct {
	Dimension int `yaml:"dimension"`
}

// Kind tags for parameter records.
const (
	KindRing      = "ring"
	KindMesh      = "mesh"
	KindTorus     = "torus"
	KindHypercube = "hypercube"
)

func (Ring) isParams()      {}
func (Mesh) isParams()      {}
func (Torus) isParams()     {}
func (Hypercube) isParams() {}

// Kind implements Params.
func (Ring) Kind() string { return KindRing }

// Kind implements Params.
func (Mesh) Kind() string { return KindMesh }

// Kind implements Params.
func (Torus) Kind() string { return KindTorus }

// Kind implements Params.
func (Hypercube) Kind() string { return KindHypercube }

// Build constructs the graph described by p, dispatching to the family
// constructor. Returns ErrNilParams for a nil p; otherwise the constructor's
// result is passed through unchanged.
func Build(p Params, opts ...Option) (*core.Graph, error) {
	switch v := p.(type) {
	case Ring:
		return BuildRing(v.Nodes, v.Skip, opts...)
	case Mesh:
		return BuildMesh(v.Rows, v.Cols, opts...)
	case Torus:
		return BuildTorus(v.Rows, v.Cols, opts...)
	case Hypercube:
		return BuildHypercube(v.Dimension, opts...)
	case nil:
		return nil, ErrNilParams
	default:
		// Unreachable while the union stays sealed.
		return nil, fmt.Errorf("Build: %T: %w", p, ErrUnknownKind)
	}
}
