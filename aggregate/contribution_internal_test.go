package aggregate

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkpred/core"
)

func TestContribution_RejectsUndefinedLog(t *testing.T) {
	for _, d := range []int{0, 1} {
		_, err := contribution(7, d)
		require.ErrorIs(t, err, ErrUndefinedLogDegree)

		var de *DegreeError
		require.True(t, errors.As(err, &de))
		require.Equal(t, 7, de.Node)
		require.Equal(t, d, de.Degree)
	}
}

func TestContribution_Values(t *testing.T) {
	r, err := contribution(0, 3)
	require.NoError(t, err)
	require.Equal(t, 1, r.CN)
	require.InDelta(t, 1/math.Log(3), r.AASum, 1e-15)
	require.InDelta(t, 1.0/3, r.RASum, 1e-15)
}

func TestCrossTerm_MatchesDirectSum(t *testing.T) {
	// N(x) degrees {2,2,5}, N(y) degrees {2,3}
	px := []degreeBucket{{inv: 1.0 / 2, count: 2}, {inv: 1.0 / 5, count: 1}}
	py := []degreeBucket{{inv: 1.0 / 2, count: 1}, {inv: 1.0 / 3, count: 1}}

	var want float64
	for _, a := range []float64{2, 2, 5} {
		for _, b := range []float64{2, 3} {
			want += math.Abs(1/a - 1/b)
		}
	}
	require.InDelta(t, want, crossTerm(px, py), 1e-12)
}

func TestPairKeyShard_InRange(t *testing.T) {
	for x := 0; x < 50; x++ {
		s := PairKey{X: x, Y: x + 1}.shard(7)
		require.GreaterOrEqual(t, s, 0)
		require.Less(t, s, 7)
	}
}

func TestEnumerateChunk_StopsAtFirstPairOverBudget(t *testing.T) {
	// A single hub with 2000 leaves spans ~2M pairs; the budget trips at 11.
	edges := make([]core.Edge, 0, 2000)
	for leaf := 1; leaf <= 2000; leaf++ {
		edges = append(edges, core.Edge{From: 0, To: leaf})
	}
	g, err := core.Build(2001, edges)
	require.NoError(t, err)

	o, err := resolve([]Option{WithWorkers(1), WithShards(1), WithMaxPairs(10)})
	require.NoError(t, err)
	part, err := enumerateChunk(context.Background(), g, 0, 1, o)
	require.Nil(t, part)
	require.ErrorIs(t, err, ErrResourceExhausted)
	require.ErrorContains(t, err, "reached 11 pairs > max 10 at node 0")
}
