// SPDX-License-Identifier: MIT
// Package: supercell
//
// options.go - functional options for decoration and generation.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs
//     (nil RNG, workers < 1). Algorithms themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//     No package-level RNG exists.

package supercell

import "math/rand"

// DefaultWorkers is the Generate parallelism when WithWorkers is not given.
const DefaultWorkers = 1

// Option customizes Decorate and Generate.
type Option func(*config)

type config struct {
	// rng drives site selection; nil means "no randomness available".
	rng *rand.Rand
	// workers bounds concurrent decorations in Generate.
	workers int
}

// WithRand supplies an explicit RNG. The RNG is consumed by the call it is
// passed to and must not be shared across goroutines. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("supercell: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a fresh deterministic RNG from seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWorkers bounds the number of concurrent decorations in Generate.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("supercell: WithWorkers(n<1)")
	}
	return func(c *config) { c.workers = n }
}

// newConfig applies options in order over deterministic defaults.
func newConfig(opts ...Option) config {
	cfg := config{workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
