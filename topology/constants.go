// Package topology shared constants: structural minima and the practical
// size caps that bound worst-case all-pairs metric computation.
package topology

// Method name constants prefix warnings and errors with the generator that
// produced them.
const (
	MethodRing      = "Ring"
	MethodMesh      = "Mesh"
	MethodTorus     = "Torus"
	MethodHypercube = "Hypercube"
)

// MinRingNodes is the structural minimum for a ring; a single node is a
// valid (edgeless) ring.
const MinRingNodes = 1

// MaxRingNodes caps ring size at the practical UI bound.
const MaxRingNodes = 100

// MinSkip is the smallest chord skip; skip 1 degenerates to the base cycle.
const MinSkip = 1

// MinGridDim is the smallest allowed dimension (rows or cols) for mesh and
// torus. A 1×1 grid has no edges but is valid.
const MinGridDim = 1

// MaxGridDim caps mesh/torus dimensions at the practical UI bound (20×20).
const MaxGridDim = 20

// MinCubeDim is the smallest hypercube dimension; 0 yields a single node.
const MinCubeDim = 0

// MaxCubeDim caps the hypercube dimension at 2^10 = 1024 nodes, keeping the
// O(V*(V+E)) metric pass around one million BFS expansions worst case.
const MaxCubeDim = 10
