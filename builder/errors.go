// SPDX-License-Identifier: MIT
// Package: linkpred/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Constructors attach context with %w, prefixed by the constructor name.
//   - Constructors never panic; option constructors may.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a size parameter (n, rows, cols, partition)
// below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (supply WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownNode indicates a Bridge endpoint that no earlier constructor created,
// or a bridge from a node to itself.
var ErrUnknownNode = errors.New("builder: endpoint not on canvas")

// ErrConstructFailed indicates the orchestrator could not complete, e.g. a nil
// constructor was passed or freezing the canvas failed.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a wrapped error with the constructor name:
// "<method>: <formatted message>".
func builderErrorf(method, format string, args ...any) error {
	return fmt.Errorf("%s: "+format, append([]any{method}, args...)...)
}
