package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/linkpred/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	// Triangle 0-1-2 with a pendant 3 hanging off 2.
	g, err := core.Build(4, []core.Edge{{0, 1}, {0, 2}, {1, 2}, {2, 3}})
	s.Require().NoError(err)
	s.g = g
}

func (s *GraphSuite) TestCounts() {
	require := require.New(s.T())
	require.Equal(4, s.g.NodeCount())
	require.Equal(4, s.g.EdgeCount())
	require.Equal(3, s.g.MaxDegree())
	require.Equal([]int{2, 2, 3, 1}, s.g.Degrees())
}

func (s *GraphSuite) TestNeighborsSortedAndSymmetric() {
	require := require.New(s.T())
	require.Equal([]int{0, 1, 3}, s.g.Neighbors(2))
	for v := 0; v < s.g.NodeCount(); v++ {
		for _, u := range s.g.Neighbors(v) {
			require.Contains(s.g.Neighbors(u), v, "u ∈ N(v) must imply v ∈ N(u)")
		}
	}
	require.Nil(s.g.Neighbors(-1))
	require.Nil(s.g.Neighbors(4))
	require.Zero(s.g.Degree(99))
}

func (s *GraphSuite) TestNeighborsViewIsClipped() {
	nbrs := s.g.Neighbors(0)
	// appending to the view must not clobber N(1)
	_ = append(nbrs, 42)
	s.Require().Equal([]int{0, 2}, s.g.Neighbors(1))
}

func (s *GraphSuite) TestHasEdge() {
	require := require.New(s.T())
	require.True(s.g.HasEdge(2, 3))
	require.True(s.g.HasEdge(3, 2))
	require.False(s.g.HasEdge(0, 3))
	require.False(s.g.HasEdge(1, 1))
	require.False(s.g.HasEdge(0, 17))
}

func (s *GraphSuite) TestEdgesCanonical() {
	s.Require().Equal([]core.Edge{{0, 1}, {0, 2}, {1, 2}, {2, 3}}, s.g.Edges())
}

func (s *GraphSuite) TestWedges() {
	// C(2,2)+C(2,2)+C(3,2)+C(1,2) = 1+1+3+0
	s.Require().Equal(int64(5), s.g.Wedges())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestBuild_DuplicatesCollapse(t *testing.T) {
	g, err := core.Build(3, []core.Edge{{0, 1}, {1, 0}, {0, 1}, {1, 2}})
	require.NoError(t, err)
	require.Equal(t, 2, g.EdgeCount())
	require.Equal(t, []int{0, 2}, g.Neighbors(1))
}

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		edges []core.Edge
		want  error
	}{
		{"negative n", -1, nil, core.ErrNegativeNodeCount},
		{"from out of range", 3, []core.Edge{{3, 0}}, core.ErrOutOfRangeNode},
		{"to negative", 3, []core.Edge{{0, -1}}, core.ErrOutOfRangeNode},
		{"self loop", 3, []core.Edge{{0, 1}, {2, 2}}, core.ErrSelfLoop},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.Build(tc.n, tc.edges)
			require.Nil(t, g)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuild_IsolatedNodes(t *testing.T) {
	g, err := core.Build(5, []core.Edge{{1, 3}})
	require.NoError(t, err)
	require.Equal(t, 5, g.NodeCount())
	require.Equal(t, 0, g.Degree(0))
	require.Empty(t, g.Neighbors(4))
	require.Equal(t, []core.Edge{{1, 3}}, g.Edges())
}

func TestBuild_Empty(t *testing.T) {
	g, err := core.Build(0, nil)
	require.NoError(t, err)
	require.Zero(t, g.NodeCount())
	require.Empty(t, g.Edges())
	require.Zero(t, g.Wedges())
}

func TestBuilder_StreamingMatchesBuild(t *testing.T) {
	b, err := core.NewBuilder(4)
	require.NoError(t, err)
	for _, e := range [][2]int{{2, 3}, {1, 2}, {0, 2}, {0, 1}} {
		require.NoError(t, b.AddEdge(e[0], e[1]))
	}
	require.Equal(t, 4, b.Len())
	require.ErrorIs(t, b.AddEdge(1, 1), core.ErrSelfLoop)
	require.ErrorIs(t, b.AddEdge(0, 4), core.ErrOutOfRangeNode)

	want, err := core.Build(4, []core.Edge{{0, 1}, {0, 2}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	require.Equal(t, want, b.Build())

	_, err = core.NewBuilder(-2)
	require.ErrorIs(t, err, core.ErrNegativeNodeCount)
}

func TestFromAdjacency(t *testing.T) {
	g, err := core.FromAdjacency([][]int{{2, 1}, {0, 2}, {1, 0, 3}, {2}})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 3}, g.Neighbors(2))

	_, err = core.FromAdjacency([][]int{{1}, {}})
	require.ErrorIs(t, err, core.ErrAsymmetricAdjacency)

	_, err = core.FromAdjacency([][]int{{1, 1}, {0}})
	require.ErrorIs(t, err, core.ErrDuplicateNeighbor)

	_, err = core.FromAdjacency([][]int{{0}})
	require.ErrorIs(t, err, core.ErrSelfLoop)

	_, err = core.FromAdjacency([][]int{{5}})
	require.ErrorIs(t, err, core.ErrOutOfRangeNode)
}

func TestEdgeCanonical(t *testing.T) {
	require.Equal(t, core.Edge{From: 1, To: 4}, core.Edge{From: 4, To: 1}.Canonical())
	require.Equal(t, core.Edge{From: 1, To: 4}, core.Edge{From: 1, To: 4}.Canonical())
}
