package similarity

import (
	"cmp"
	"iter"
	"slices"

	"github.com/katalvlaran/linkpred/export"
)

// Table is one metric's scores, sorted by (Source, Target). Immutable.
type Table struct {
	metric Metric
	scores []Score
}

// Metric returns the metric the table holds.
func (t *Table) Metric() Metric { return t.metric }

// Len returns the number of scored pairs.
func (t *Table) Len() int { return len(t.scores) }

// At returns the i-th score. Panics if i is out of range.
func (t *Table) At(i int) Score { return t.scores[i] }

// Get returns the score of {a,b} in either orientation.
// ok is false when the pair is outside the metric's domain.
func (t *Table) Get(a, b int) (float64, bool) {
	if a > b {
		a, b = b, a
	}
	i, ok := slices.BinarySearchFunc(t.scores, [2]int{a, b}, func(s Score, k [2]int) int {
		if c := cmp.Compare(s.Source, k[0]); c != 0 {
			return c
		}
		return cmp.Compare(s.Target, k[1])
	})
	if !ok {
		return 0, false
	}

	return t.scores[i].Value, true
}

// Scores returns a copy of all scores.
func (t *Table) Scores() []Score { return slices.Clone(t.scores) }

// Rows yields the table as export rows; it can be iterated repeatedly.
func (t *Table) Rows() iter.Seq[export.Row] {
	return func(yield func(export.Row) bool) {
		for _, s := range t.scores {
			if !yield(export.Row{Source: s.Source, Target: s.Target, Similarity: s.Value}) {
				return
			}
		}
	}
}
