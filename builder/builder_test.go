// Package builder_test verifies topology, counts, determinism and error
// sentinels of every Constructor.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkpred/builder"
	"github.com/katalvlaran/linkpred/core"
)

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(2, 3))
				assert.False(t, g.HasEdge(0, 3))
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(4, 0))
				for v := 0; v < 5; v++ {
					assert.Equal(t, 2, g.Degree(v))
				}
			},
		},
		{
			name: "Star(5)", ctor: builder.Star(5), wantV: 5, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, 4, g.Degree(0))
				assert.Equal(t, []int{0}, g.Neighbors(3))
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, 4, g.Degree(0))
				assert.True(t, g.HasEdge(4, 1))
				assert.Equal(t, 3, g.Degree(2))
			},
		},
		{
			name: "Complete(6)", ctor: builder.Complete(6), wantV: 6, wantE: 15,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, 5, g.MaxDegree())
			},
		},
		{
			name: "CompleteBipartite(2,3)", ctor: builder.CompleteBipartite(2, 3), wantV: 5, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.False(t, g.HasEdge(0, 1))
				assert.Equal(t, []int{2, 3, 4}, g.Neighbors(1))
			},
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(1, 4))
				assert.False(t, g.HasEdge(2, 3))
			},
		},
		{
			name: "RandomSparse(5,1)", ctor: builder.RandomSparse(5, 1), wantV: 5, wantE: 10,
		},
		{
			name: "RandomSparse(5,0)", ctor: builder.RandomSparse(5, 0), wantV: 5, wantE: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.NodeCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuildGraph_ComposesBlocks(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(3), builder.Star(4), builder.Bridge(2, 3))
	require.NoError(t, err)
	assert.Equal(t, 7, g.NodeCount())
	assert.Equal(t, 2+3+1, g.EdgeCount())
	assert.True(t, g.HasEdge(2, 3))
	assert.Equal(t, 4, g.Degree(3), "hub of the star block sits at its first id")
}

func TestBuildEdges_DuplicateBridgeCollapses(t *testing.T) {
	n, edges, err := builder.BuildEdges(nil, builder.Path(2), builder.Bridge(1, 0))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, edges, 2)

	g, err := builder.BuildGraph(nil, builder.Path(2), builder.Bridge(1, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func(seed int64) []core.Edge {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(60, 0.1))
		require.NoError(t, err)
		return g.Edges()
	}
	assert.Equal(t, build(7), build(7))
	assert.NotEqual(t, build(7), build(8))

	viaRand, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(7)))},
		builder.RandomSparse(60, 0.1),
	)
	require.NoError(t, err)
	assert.Equal(t, build(7), viaRand.Edges())
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		bopts []builder.BuilderOption
		cons  []builder.Constructor
		want  error
	}{
		{"Path(1)", nil, []builder.Constructor{builder.Path(1)}, builder.ErrTooFewVertices},
		{"Cycle(2)", nil, []builder.Constructor{builder.Cycle(2)}, builder.ErrTooFewVertices},
		{"Star(1)", nil, []builder.Constructor{builder.Star(1)}, builder.ErrTooFewVertices},
		{"Wheel(3)", nil, []builder.Constructor{builder.Wheel(3)}, builder.ErrTooFewVertices},
		{"Complete(0)", nil, []builder.Constructor{builder.Complete(0)}, builder.ErrTooFewVertices},
		{"CompleteBipartite(0,2)", nil, []builder.Constructor{builder.CompleteBipartite(0, 2)}, builder.ErrTooFewVertices},
		{"Grid(0,3)", nil, []builder.Constructor{builder.Grid(0, 3)}, builder.ErrTooFewVertices},
		{"RandomSparse(0,.5)", nil, []builder.Constructor{builder.RandomSparse(0, 0.5)}, builder.ErrTooFewVertices},
		{"RandomSparse(p>1)", nil, []builder.Constructor{builder.RandomSparse(4, 1.5)}, builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", nil, []builder.Constructor{builder.RandomSparse(4, 0.5)}, builder.ErrNeedRandSource},
		{"Bridge(empty)", nil, []builder.Constructor{builder.Bridge(0, 1)}, builder.ErrUnknownNode},
		{"Bridge(loop)", nil, []builder.Constructor{builder.Path(2), builder.Bridge(1, 1)}, builder.ErrUnknownNode},
		{"nil constructor", nil, []builder.Constructor{nil}, builder.ErrConstructFailed},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.bopts, tc.cons...)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestWithRand_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
}
