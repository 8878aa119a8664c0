package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/icnlab/topograph/core"
	"github.com/icnlab/topograph/metrics"
	"github.com/icnlab/topograph/topology"
)

// splitGraph returns a 2-path plus an isolated node: {0–1, 2}.
func splitGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		require.NoError(t, g.AddNode(core.Node{ID: i}))
	}
	_, err := g.AddEdge(0, 1)
	require.NoError(t, err)

	return g
}

// TestDistanceMatrix_Mesh checks the full table of a 2×2 mesh.
func TestDistanceMatrix_Mesh(t *testing.T) {
	g, err := topology.BuildMesh(2, 2)
	require.NoError(t, err)

	mat, err := metrics.DistanceMatrix(g)
	require.NoError(t, err)
	want := [][]int{
		{0, 1, 1, 2},
		{1, 0, 2, 1},
		{1, 2, 0, 1},
		{2, 1, 1, 0},
	}
	require.Equal(t, want, mat)
}

// TestDistanceMatrix_Unreachable checks the explicit sentinel for split
// graphs and the symmetry of reachable entries.
func TestDistanceMatrix_Unreachable(t *testing.T) {
	mat, err := metrics.DistanceMatrix(splitGraph(t))
	require.NoError(t, err)
	want := [][]int{
		{0, 1, metrics.Unreachable},
		{1, 0, metrics.Unreachable},
		{metrics.Unreachable, metrics.Unreachable, 0},
	}
	require.Equal(t, want, mat)
}

// TestComponents covers labeled partitions for split and connected graphs.
func TestComponents(t *testing.T) {
	comps, err := metrics.Components(splitGraph(t))
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1}, {2}}, comps)

	g, err := topology.BuildTorus(3, 3)
	require.NoError(t, err)
	comps, err = metrics.Components(g)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	require.Len(t, comps[0], 9)
}

// TestFarthestPaths_Ring: from node 0 of Ring(12,1) only the antipode 6
// achieves the eccentricity; its path has 7 nodes.
func TestFarthestPaths_Ring(t *testing.T) {
	g, err := topology.BuildRing(12, 1)
	require.NoError(t, err)

	paths, err := metrics.FarthestPaths(g, 0)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	require.Len(t, paths[0], 7)
	require.Equal(t, 0, paths[0][0])
	require.Equal(t, 6, paths[0][6])
}

// TestFarthestPaths_MeshCenter: all four corners tie for the center's
// eccentricity of a 3×3 mesh.
func TestFarthestPaths_MeshCenter(t *testing.T) {
	g, err := topology.BuildMesh(3, 3)
	require.NoError(t, err)

	paths, err := metrics.FarthestPaths(g, 4)
	require.NoError(t, err)
	require.Len(t, paths, 4)
	// Targets in ID order: the corners 0, 2, 6, 8.
	targets := make([]int, len(paths))
	for i, p := range paths {
		require.Len(t, p, 3)
		require.Equal(t, 4, p[0])
		targets[i] = p[len(p)-1]
	}
	require.Equal(t, []int{0, 2, 6, 8}, targets)
}

// TestFarthestPaths_Trivial: zero eccentricity yields no paths.
func TestFarthestPaths_Trivial(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(core.Node{ID: 0}))

	paths, err := metrics.FarthestPaths(g, 0)
	require.NoError(t, err)
	require.Empty(t, paths)
}

// TestFarthestPaths_BadSource propagates the BFS start validation.
func TestFarthestPaths_BadSource(t *testing.T) {
	g, err := topology.BuildRing(5, 1)
	require.NoError(t, err)

	_, err = metrics.FarthestPaths(g, 42)
	require.Error(t, err)
}
