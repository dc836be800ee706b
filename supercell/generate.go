// SPDX-License-Identifier: MIT

package supercell

import (
	"context"
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"
)

const methodGenerate = "Generate"

// Generate produces n independent decorations with the same counts.
// Per-structure seeds are drawn from the master RNG in index order before
// any work starts, and up to WithWorkers(k) decorations run concurrently;
// the result is therefore identical for every worker count.
//
// Errors: ErrInvalidCount (n < 0), the Decorate errors, and ctx.Err() when
// cancelled mid-way (no partial slice is returned).
func (sc *SuperCell) Generate(ctx context.Context, n int, counts map[int][]int, opts ...Option) ([]*Structure, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n = %d: %w", methodGenerate, n, ErrInvalidCount)
	}
	cfg := newConfig(opts...)
	groups := sc.Sublattices()
	pl, err := newPlan(groups, counts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	if pl.stochastic && cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, ErrNeedRandSource)
	}

	seeds := make([]int64, n)
	if pl.stochastic {
		for i := range seeds {
			seeds[i] = cfg.rng.Int63()
		}
	}

	out := make([]*Structure, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var rng *rand.Rand
			if pl.stochastic {
				rng = rand.New(rand.NewSource(seeds[i]))
			}
			out[i] = pl.apply(sc, groups, rng)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	return out, nil
}
