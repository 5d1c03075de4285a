package similarity

import (
	"math"

	"github.com/katalvlaran/linkpred/aggregate"
)

// ratioInput is the (cn, deg(x), deg(y)) triple every ratio metric reduces.
type ratioInput struct {
	cn float64
	dx float64
	dy float64
}

// reducer is one cn/degree ratio: value = numer(in) / denom(in).
type reducer struct {
	metric   Metric
	quantity string
	numer    func(ratioInput) float64
	denom    func(ratioInput) float64
}

func sharedCount(in ratioInput) float64 { return in.cn }

// ratioReducers are applied together in one pass over the common-neighbor
// table; index i holds metric JC+i.
var ratioReducers = [...]reducer{
	{JC, "deg(x)+deg(y)-cn", sharedCount, func(in ratioInput) float64 { return in.dx + in.dy - in.cn }},
	{SA, "sqrt(deg(x)*deg(y))", sharedCount, func(in ratioInput) float64 { return math.Sqrt(in.dx * in.dy) }},
	{SO, "deg(x)+deg(y)", func(in ratioInput) float64 { return 2 * in.cn }, func(in ratioInput) float64 { return in.dx + in.dy }},
	{HPI, "min(deg(x),deg(y))", sharedCount, func(in ratioInput) float64 { return min(in.dx, in.dy) }},
	{HDI, "max(deg(x),deg(y))", sharedCount, func(in ratioInput) float64 { return max(in.dx, in.dy) }},
	{LLHN, "deg(x)*deg(y)", sharedCount, func(in ratioInput) float64 { return in.dx * in.dy }},
}

// apply evaluates r for pair k, rejecting zero denominators and non-finite results.
func (r reducer) apply(k aggregate.PairKey, in ratioInput) (float64, error) {
	d := r.denom(in)
	if d == 0 {
		return 0, &ScoreError{Metric: r.metric, Pair: k, Quantity: r.quantity, Value: d, Err: ErrZeroDenominator}
	}

	return finite(r.metric, k, r.metric.String(), r.numer(in)/d)
}

// finite passes v through unless it is NaN or ±Inf.
func finite(m Metric, k aggregate.PairKey, quantity string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ScoreError{Metric: m, Pair: k, Quantity: quantity, Value: v, Err: ErrNonFinite}
	}

	return v, nil
}
