package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/icnlab/topograph/core"
	"github.com/icnlab/topograph/metrics"
	"github.com/icnlab/topograph/topology"
)

// MetricsSuite exercises Compute across the topology families and the
// degenerate and disconnected cases.
type MetricsSuite struct {
	suite.Suite
}

// twoTriangles builds a deliberately disconnected graph: two disjoint
// 3-rings in one Graph with no connecting edge.
func (s *MetricsSuite) twoTriangles() *core.Graph {
	g := core.NewGraph()
	for i := 0; i < 6; i++ {
		require.NoError(s.T(), g.AddNode(core.Node{ID: i}))
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(s.T(), err)
	}

	return g
}

// TestNilGraph rejects a nil pointer.
func (s *MetricsSuite) TestNilGraph() {
	_, err := metrics.Compute(nil)
	require.ErrorIs(s.T(), err, metrics.ErrGraphNil)
}

// TestTrivial covers the n <= 1 short-circuit.
func (s *MetricsSuite) TestTrivial() {
	empty := core.NewGraph()
	m, err := metrics.Compute(empty)
	require.NoError(s.T(), err)
	require.Equal(s.T(), metrics.Metrics{Diameter: 0, AvgPathLength: 0, Connected: true}, m)

	single := core.NewGraph()
	require.NoError(s.T(), single.AddNode(core.Node{ID: 0}))
	m, err = metrics.Compute(single)
	require.NoError(s.T(), err)
	require.True(s.T(), m.Connected)
	require.Zero(s.T(), m.Diameter)
}

// TestRing verifies Ring(12,1): diameter 6, ASPL 432/132 ≈ 3.273.
func (s *MetricsSuite) TestRing() {
	g, err := topology.BuildRing(12, 1)
	require.NoError(s.T(), err)

	m, err := metrics.Compute(g)
	require.NoError(s.T(), err)
	require.True(s.T(), m.Connected)
	require.Equal(s.T(), 6, m.Diameter)
	require.Equal(s.T(), 3.273, m.AvgPathLength)
}

// TestHypercube verifies the 3-cube: diameter 3 (max Hamming distance),
// ASPL 96/56 ≈ 1.714.
func (s *MetricsSuite) TestHypercube() {
	g, err := topology.BuildHypercube(3)
	require.NoError(s.T(), err)

	m, err := metrics.Compute(g)
	require.NoError(s.T(), err)
	require.True(s.T(), m.Connected)
	require.Equal(s.T(), 3, m.Diameter)
	require.Equal(s.T(), 1.714, m.AvgPathLength)
	require.Greater(s.T(), m.AvgPathLength, 0.0)
}

// TestTorus verifies Torus(4,4): diameter 2+2 = 4.
func (s *MetricsSuite) TestTorus() {
	g, err := topology.BuildTorus(4, 4)
	require.NoError(s.T(), err)

	m, err := metrics.Compute(g)
	require.NoError(s.T(), err)
	require.True(s.T(), m.Connected)
	require.Equal(s.T(), 4, m.Diameter)
}

// TestMesh verifies Mesh(3,3): diameter is the corner-to-corner Manhattan
// distance, 4.
func (s *MetricsSuite) TestMesh() {
	g, err := topology.BuildMesh(3, 3)
	require.NoError(s.T(), err)

	m, err := metrics.Compute(g)
	require.NoError(s.T(), err)
	require.True(s.T(), m.Connected)
	require.Equal(s.T(), 4, m.Diameter)
}

// TestDisconnected: two disjoint rings report Connected=false with zeroed
// metrics, as a result rather than an error.
func (s *MetricsSuite) TestDisconnected() {
	m, err := metrics.Compute(s.twoTriangles())
	require.NoError(s.T(), err)
	require.False(s.T(), m.Connected)
	require.Zero(s.T(), m.Diameter)
	require.Zero(s.T(), m.AvgPathLength)
}

// TestIsolatedNode: one stray node disconnects an otherwise complete ring.
func (s *MetricsSuite) TestIsolatedNode() {
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		require.NoError(s.T(), g.AddNode(core.Node{ID: i}))
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(s.T(), err)
	}

	m, err := metrics.Compute(g)
	require.NoError(s.T(), err)
	require.False(s.T(), m.Connected)
}

func TestMetricsSuite(t *testing.T) {
	suite.Run(t, new(MetricsSuite))
}
