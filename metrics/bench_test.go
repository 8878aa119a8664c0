package metrics_test

import (
	"testing"

	"github.com/icnlab/topograph/metrics"
	"github.com/icnlab/topograph/topology"
)

// BenchmarkCompute_Hypercube10 measures the full metric pass at the size
// cap: 1024 BFS runs over 1024 nodes and 5120 edges.
func BenchmarkCompute_Hypercube10(b *testing.B) {
	g, err := topology.BuildHypercube(10)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = metrics.Compute(g)
	}
}

// BenchmarkDistanceMatrix_Torus20x20 measures the dense table on the
// largest torus.
func BenchmarkDistanceMatrix_Torus20x20(b *testing.B) {
	g, err := topology.BuildTorus(20, 20)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = metrics.DistanceMatrix(g)
	}
}
