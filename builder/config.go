// SPDX-License-Identifier: MIT
// Package: linkpred/builder
//
// config.go - resolved configuration and the shared edge canvas.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/linkpred/core"
)

// Minimum sizes accepted by the topology constructors.
const (
	MinPathNodes     = 2
	MinCycleNodes    = 3
	MinStarNodes     = 2
	MinWheelNodes    = 4
	MinCompleteNodes = 1
	MinPartitionSize = 1
	MinGridDim       = 1
	MinRandomNodes   = 1
)

// Probability bounds for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// Method names used as error prefixes.
const (
	methodBuildGraph        = "BuildGraph"
	methodPath              = "Path"
	methodCycle             = "Cycle"
	methodStar              = "Star"
	methodWheel             = "Wheel"
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	methodGrid              = "Grid"
	methodRandomSparse      = "RandomSparse"
	methodBridge            = "Bridge"
)

// builderConfig is the immutable result of applying BuilderOptions.
//   - rng: nil unless WithSeed/WithRand was given; deterministic constructors ignore it.
type builderConfig struct {
	rng *rand.Rand
}

// newBuilderConfig applies opts in order over the zero configuration.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// canvas is the growing node range and edge stream shared by constructors.
type canvas struct {
	n     int
	edges []core.Edge
}

// reserve claims k fresh node ids and returns the first one.
func (c *canvas) reserve(k int) int {
	base := c.n
	c.n += k

	return base
}

// link appends the undirected edge {u,v}. Callers guarantee u != v.
func (c *canvas) link(u, v int) {
	c.edges = append(c.edges, core.Edge{From: u, To: v})
}
