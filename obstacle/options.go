// SPDX-License-Identifier: MIT
// Package: gridmap/obstacle
//
// options.go - functional options for NewPlacer.
//
// Contract:
//   • Options mutate a placerConfig before the Placer is built; later
//     options override earlier ones.
//   • Option constructors PANIC on meaningless input (nil RNG, nil hook,
//     placers < 1). Placement itself never panics.
//   • Determinism is explicit: WithSeed or WithRand; otherwise defaultRNGSeed.

package obstacle

import "math/rand"

// defaultPlacers is the number of placing workers: one synchronous pass.
const defaultPlacers = 1

// placerConfig aggregates the knobs used by NewPlacer.
type placerConfig struct {
	rng     *rand.Rand // base stream; nil ⇒ rngFromSeed(0)
	placers int        // ≥1
	hook    func(Rect) // optional observer of each stamped rectangle
}

// Option customizes a Placer.
type Option func(*placerConfig)

// newPlacerConfig applies opts over the defaults in order.
func newPlacerConfig(opts ...Option) placerConfig {
	cfg := placerConfig{placers: defaultPlacers}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}
	return cfg
}

// WithSeed seeds the base RNG stream.
func WithSeed(seed int64) Option {
	return func(c *placerConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides the base RNG explicitly. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("obstacle: WithRand(nil)")
	}
	return func(c *placerConfig) {
		c.rng = r
	}
}

// WithPlacers sets the number of concurrent placing workers. Panics if n < 1.
func WithPlacers(n int) Option {
	if n < 1 {
		panic("obstacle: WithPlacers(n<1)")
	}
	return func(c *placerConfig) {
		c.placers = n
	}
}

// WithStampHook registers fn to observe every clipped rectangle right after
// it is stamped. fn runs under the grid lock, so calls never overlap.
// Panics on nil.
func WithStampHook(fn func(Rect)) Option {
	if fn == nil {
		panic("obstacle: WithStampHook(nil)")
	}
	return func(c *placerConfig) {
		c.hook = fn
	}
}
