// SPDX-License-Identifier: MIT

package lattice

// DefaultTolerance is the position/cell tolerance (Å) used to decide that
// a substituted configuration shares the pristine geometry.
const DefaultTolerance = 1e-6

// Option customizes lattice construction.
type Option func(*config)

type config struct {
	tol float64
}

// WithTolerance sets the geometry comparison tolerance in Å.
// Panics on a negative value.
func WithTolerance(tol float64) Option {
	if tol < 0 {
		panic("lattice: WithTolerance(tol<0)")
	}
	return func(c *config) { c.tol = tol }
}

// newConfig applies options over deterministic defaults; last wins.
func newConfig(opts ...Option) config {
	cfg := config{tol: DefaultTolerance}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
