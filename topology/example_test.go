package topology_test

import (
	"fmt"

	"github.com/icnlab/topograph/topology"
)

// ExampleBuild dispatches over the parameter union and reports graph size.
func ExampleBuild() {
	for _, p := range []topology.Params{
		topology.Ring{Nodes: 12, Skip: 1},
		topology.Mesh{Rows: 4, Cols: 5},
		topology.Torus{Rows: 4, Cols: 5},
		topology.Hypercube{Dimension: 3},
	} {
		g, err := topology.Build(p)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("%s: %d nodes, %d edges\n", p.Kind(), g.NodeCount(), g.EdgeCount())
	}
	// Output:
	// ring: 12 nodes, 12 edges
	// mesh: 20 nodes, 31 edges
	// torus: 20 nodes, 40 edges
	// hypercube: 8 nodes, 12 edges
}

// ExampleWithWarnFunc observes a non-fatal clamp: skip 50 exceeds n/2 and
// is reduced to 6 while generation proceeds.
func ExampleWithWarnFunc() {
	g, err := topology.BuildRing(12, 50, topology.WithWarnFunc(func(w topology.Warning) {
		fmt.Println(w)
	}))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("edges:", g.EdgeCount())
	// Output:
	// Ring: skip=50 out of range, using 6
	// edges: 18
}
