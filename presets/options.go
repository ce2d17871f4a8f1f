// SPDX-License-Identifier: MIT
// Package: graphpad/presets
//
// options.go - generator configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn     = DefaultIDFn        ("0","1","2",...)
//   - rng      = nil                (no randomness unless seeded)
//   - weightFn = constant 1
//   - spacing  = DefaultSpacing     (layout distance between neighbors)
//   - origin   = (DefaultSpacing, DefaultSpacing)
//
// Same options and arguments always produce the same graph, IDs and
// positions included.

package presets

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/graphpad/core"
)

// DefaultSpacing is the distance between adjacent generated nodes.
const DefaultSpacing = 150.0

// config aggregates all generator knobs. It is passed by value.
type config struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn func(*rand.Rand) float64
	spacing  float64
	origin   core.Position
}

// Option customizes a generator.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:     DefaultIDFn,
		weightFn: func(*rand.Rand) float64 { return core.DefaultWeight },
		spacing:  DefaultSpacing,
		origin:   core.Position{X: DefaultSpacing, Y: DefaultSpacing},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c config) weight() float64 {
	return core.NormalizeWeight(c.weightFn(c.rng))
}

// WithIDScheme sets the node ID scheme. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("presets: WithIDScheme(nil)")
	}

	return func(c *config) { c.idFn = fn }
}

// WithSeed seeds the generator RNG used by weight functions.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the edge weight generator. Results that are not finite
// positive numbers become core.DefaultWeight. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) float64) Option {
	if fn == nil {
		panic("presets: WithWeightFn(nil)")
	}

	return func(c *config) { c.weightFn = fn }
}

// WithUniformWeights draws integer weights uniformly from [lo, hi]. It needs
// WithSeed; without an RNG every weight is lo. Panics unless 0 < lo <= hi.
func WithUniformWeights(lo, hi int) Option {
	if lo <= 0 || hi < lo {
		panic(fmt.Sprintf("presets: WithUniformWeights(%d, %d)", lo, hi))
	}

	return WithWeightFn(func(r *rand.Rand) float64 {
		if r == nil {
			return float64(lo)
		}

		return float64(lo + r.Intn(hi-lo+1))
	})
}

// WithSpacing sets the layout distance between neighbors. Panics unless d > 0.
func WithSpacing(d float64) Option {
	if d <= 0 {
		panic(fmt.Sprintf("presets: WithSpacing(%v)", d))
	}

	return func(c *config) { c.spacing = d }
}

// WithOrigin sets the top-left anchor of the layout.
func WithOrigin(p core.Position) Option {
	return func(c *config) { c.origin = p }
}
