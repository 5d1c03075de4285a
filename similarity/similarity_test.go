package similarity_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/linkpred/aggregate"
	"github.com/katalvlaran/linkpred/builder"
	"github.com/katalvlaran/linkpred/core"
	"github.com/katalvlaran/linkpred/export"
	"github.com/katalvlaran/linkpred/similarity"
)

// ScenarioSuite scores the triangle 0-1-2 with pendant 3; deg = [2,2,3,1].
type ScenarioSuite struct {
	suite.Suite
	ctx     context.Context
	g       *core.Graph
	battery *similarity.Battery
}

func (s *ScenarioSuite) SetupTest() {
	s.ctx = context.Background()
	g, err := core.Build(4, []core.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 2}, {From: 2, To: 3}})
	s.Require().NoError(err)
	s.g = g
	b, err := similarity.Prepare(s.ctx, g, similarity.WithWorkers(2))
	s.Require().NoError(err)
	s.battery = b
}

func (s *ScenarioSuite) eval(m similarity.Metric) *similarity.Table {
	t, err := s.battery.Evaluate(s.ctx, m)
	s.Require().NoError(err)
	s.Require().Equal(m, t.Metric())

	return t
}

func (s *ScenarioSuite) TestPairZeroOne() {
	want := map[similarity.Metric]float64{
		similarity.CN:    1,
		similarity.AA:    1 / math.Log(3),
		similarity.RA:    1.0 / 3,
		similarity.RACNI: 2.0 / 3,
		similarity.JC:    1.0 / 3,
		similarity.SA:    0.5,
		similarity.SO:    0.5,
		similarity.HPI:   0.5,
		similarity.HDI:   0.5,
		similarity.LLHN:  0.25,
		similarity.PA:    4,
	}
	for m, v := range want {
		got, ok := s.eval(m).Get(0, 1)
		s.Require().True(ok, "%s", m)
		s.InDelta(v, got, 1e-15, "%s", m)
	}
}

func (s *ScenarioSuite) TestDomains() {
	// {2,3} is an edge without shared neighbors; {0,3} shares node 2 without an edge.
	for _, m := range similarity.AllMetrics() {
		t := s.eval(m)
		_, has23 := t.Get(2, 3)
		_, has03 := t.Get(0, 3)
		if m == similarity.PA {
			s.True(has23)
			s.False(has03)
			s.Equal(4, t.Len())
			continue
		}
		s.False(has23, "%s must not score a pair with cn=0", m)
		s.True(has03, "%s", m)
		s.Equal(5, t.Len(), "%s", m)
	}
	pa, _ := s.eval(similarity.PA).Get(3, 2)
	s.Equal(3.0, pa)
}

func (s *ScenarioSuite) TestRunWritesEveryTableInOrder() {
	mem := export.NewMemorySink()
	s.Require().NoError(s.battery.Run(s.ctx, mem))
	s.Equal([]string{"CN", "AA", "RA", "RA_CNI", "PA", "JC", "SA", "SO", "HPI", "HDI", "LLHN"}, mem.Names())

	rows, ok := mem.Table("JC")
	s.Require().True(ok)
	s.Equal(export.Row{Source: 0, Target: 1, Similarity: 1.0 / 3}, rows[0])
	for _, r := range rows {
		s.Less(r.Source, r.Target)
	}
}

func TestScenarioSuite(t *testing.T) {
	suite.Run(t, new(ScenarioSuite))
}

func randomGraph(t testing.TB, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(seed)},
		builder.RandomSparse(220, 0.03),
		builder.Wheel(12),
		builder.Bridge(0, 220),
		builder.Bridge(5, 221),
	)
	require.NoError(t, err)

	return g
}

func TestProperties(t *testing.T) {
	ctx := context.Background()
	g := randomGraph(t, 21)
	b, err := similarity.Prepare(ctx, g, similarity.WithWorkers(3), similarity.WithShards(7))
	require.NoError(t, err)

	cnTable, err := b.Evaluate(ctx, similarity.CN)
	require.NoError(t, err)

	for _, m := range similarity.AllMetrics() {
		tab, err := b.Evaluate(ctx, m)
		require.NoError(t, err, "%s", m)
		for i := 0; i < tab.Len(); i++ {
			sc := tab.At(i)
			require.Less(t, sc.Source, sc.Target)
			// symmetry
			a, ok1 := tab.Get(sc.Source, sc.Target)
			c, ok2 := tab.Get(sc.Target, sc.Source)
			require.True(t, ok1 && ok2)
			require.Equal(t, a, c)

			switch m {
			case similarity.CN:
				require.LessOrEqual(t, sc.Value, float64(min(g.Degree(sc.Source), g.Degree(sc.Target))))
			case similarity.JC, similarity.SA, similarity.SO, similarity.HPI, similarity.HDI, similarity.LLHN:
				require.GreaterOrEqual(t, sc.Value, 0.0, "%s", m)
				require.LessOrEqual(t, sc.Value, 1.0, "%s", m)
			case similarity.PA:
				require.True(t, g.HasEdge(sc.Source, sc.Target))
			default:
				_, ok := cnTable.Get(sc.Source, sc.Target)
				require.True(t, ok)
			}
		}
		if m == similarity.PA {
			require.Equal(t, g.EdgeCount(), tab.Len())
		} else {
			require.Equal(t, cnTable.Len(), tab.Len(), "%s", m)
		}
	}
}

func TestAbsence(t *testing.T) {
	ctx := context.Background()
	g := randomGraph(t, 4)
	b, err := similarity.Prepare(ctx, g)
	require.NoError(t, err)
	jc, err := b.Evaluate(ctx, similarity.JC)
	require.NoError(t, err)

	for x := 0; x < g.NodeCount(); x++ {
		for y := x + 1; y < g.NodeCount(); y++ {
			shared := false
			for _, z := range g.Neighbors(x) {
				if g.HasEdge(z, y) {
					shared = true
					break
				}
			}
			_, ok := jc.Get(x, y)
			require.Equal(t, shared, ok, "pair {%d,%d}", x, y)
		}
	}
}

func TestDeterministicAcrossPartitions(t *testing.T) {
	ctx := context.Background()
	g := randomGraph(t, 8)

	run := func(opts ...similarity.Option) *export.MemorySink {
		b, err := similarity.Prepare(ctx, g, opts...)
		require.NoError(t, err)
		mem := export.NewMemorySink()
		require.NoError(t, b.Run(ctx, mem))
		return mem
	}
	base := run(similarity.WithWorkers(1), similarity.WithShards(1))
	other := run(similarity.WithWorkers(6), similarity.WithShards(29))
	for _, name := range base.Names() {
		want, _ := base.Table(name)
		got, ok := other.Table(name)
		require.True(t, ok)
		require.Equal(t, want, got, name)
	}
}

func TestNewBattery_Errors(t *testing.T) {
	ctx := context.Background()
	g, err := core.Build(4, []core.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 2}, {From: 2, To: 3}})
	require.NoError(t, err)
	cn, err := aggregate.CommonNeighbors(ctx, g)
	require.NoError(t, err)

	_, err = similarity.NewBattery(nil, cn, nil)
	require.ErrorIs(t, err, core.ErrNilGraph)
	_, err = similarity.NewBattery(g, nil, nil)
	require.ErrorIs(t, err, aggregate.ErrTableMismatch)
	_, err = similarity.NewBattery(g, cn, nil, similarity.WithWorkers(0))
	require.ErrorIs(t, err, similarity.ErrOptionViolation)

	other, err := aggregate.CommonNeighbors(ctx, g)
	require.NoError(t, err)
	cni, err := aggregate.Interactions(ctx, g, other)
	require.NoError(t, err)
	_, err = similarity.NewBattery(g, cn, cni)
	require.ErrorIs(t, err, aggregate.ErrTableMismatch)

	b, err := similarity.NewBattery(g, cn, nil)
	require.NoError(t, err)
	_, err = b.Evaluate(ctx, similarity.RACNI)
	require.ErrorIs(t, err, similarity.ErrMissingInteraction)
	_, err = b.Evaluate(ctx, similarity.Metric(99))
	require.ErrorIs(t, err, similarity.ErrUnknownMetric)
	require.ErrorIs(t, b.Run(ctx, nil), similarity.ErrOptionViolation)
	require.ErrorIs(t, b.Run(ctx, export.NewMemorySink(), similarity.CN, similarity.Metric(-1)), similarity.ErrUnknownMetric)

	withCNI, err := similarity.NewBattery(g, other, cni)
	require.NoError(t, err)
	v, err := withCNI.Evaluate(ctx, similarity.RACNI)
	require.NoError(t, err)
	got, _ := v.Get(0, 1)
	assert.InDelta(t, 2.0/3, got, 1e-15)
}

func TestZeroDenominatorIsFatal(t *testing.T) {
	ctx := context.Background()
	full, err := core.Build(4, []core.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 2}, {From: 2, To: 3}})
	require.NoError(t, err)
	cn, err := aggregate.CommonNeighbors(ctx, full)
	require.NoError(t, err)

	// degrees of nodes 2 and 3 drop to zero in this graph
	thin, err := core.Build(4, []core.Edge{{From: 0, To: 1}})
	require.NoError(t, err)
	b, err := similarity.NewBattery(thin, cn, nil)
	require.NoError(t, err)

	_, err = b.Evaluate(ctx, similarity.HPI)
	require.ErrorIs(t, err, similarity.ErrZeroDenominator)
	var se *similarity.ScoreError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, similarity.JC, se.Metric, "the six ratios are reduced together, JC first")
	assert.Equal(t, aggregate.PairKey{X: 0, Y: 2}, se.Pair)
	assert.Equal(t, "deg(x)+deg(y)-cn", se.Quantity)
	assert.Zero(t, se.Value)

	mem := export.NewMemorySink()
	require.ErrorIs(t, b.Run(ctx, mem, similarity.CN, similarity.SA), similarity.ErrZeroDenominator)
	assert.Equal(t, []string{"CN"}, mem.Names())
}

func TestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g := randomGraph(t, 1)
	b, err := similarity.Prepare(context.Background(), g)
	require.NoError(t, err)
	cancel()
	_, err = b.Evaluate(ctx, similarity.SO)
	require.ErrorIs(t, err, context.Canceled)
	_, err = b.Evaluate(ctx, similarity.RACNI)
	require.ErrorIs(t, err, context.Canceled)

	_, err = similarity.Prepare(ctx, g)
	require.ErrorIs(t, err, context.Canceled)
}

func TestParseMetric(t *testing.T) {
	for _, m := range similarity.AllMetrics() {
		got, err := similarity.ParseMetric(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
		assert.NotEmpty(t, m.Formula())
	}
	m, err := similarity.ParseMetric(" ra-cni ")
	require.NoError(t, err)
	assert.Equal(t, similarity.RACNI, m)

	_, err = similarity.ParseMetric("katz")
	assert.ErrorIs(t, err, similarity.ErrUnknownMetric)

	ms, err := similarity.ParseMetrics([]string{"pa", "CN", "PA"})
	require.NoError(t, err)
	assert.Equal(t, []similarity.Metric{similarity.PA, similarity.CN}, ms)
	all, err := similarity.ParseMetrics(nil)
	require.NoError(t, err)
	assert.Len(t, all, 11)

	assert.Equal(t, similarity.DomainEdges, similarity.PA.Domain())
	assert.Equal(t, similarity.DomainCommonNeighbors, similarity.LLHN.Domain())
	assert.Equal(t, "Metric(42)", similarity.Metric(42).String())
}
