// SPDX-License-Identifier: MIT

package supercell

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/celattice/element"
	"github.com/katalvlaran/celattice/lattice"
)

const (
	methodDecorate = "Decorate"
	methodAssign   = "Assign"
)

// plan is a validated decoration request: sublattice ids in ascending
// order with their substituent counts.
type plan struct {
	ids        []int
	counts     [][]int
	stochastic bool
}

// newPlan validates counts against groups before anything is sampled.
func newPlan(groups []lattice.Sublattice, counts map[int][]int) (plan, error) {
	var pl plan
	for id := range counts {
		pl.ids = append(pl.ids, id)
	}
	sort.Ints(pl.ids)

	pl.counts = make([][]int, len(pl.ids))
	for n, id := range pl.ids {
		if id < 0 || id >= len(groups) {
			return plan{}, &UnknownSublatticeError{ID: id, Available: len(groups)}
		}
		g := groups[id]
		cs := counts[id]
		if len(cs) > len(g.Species)-1 {
			return plan{}, &InvalidCountError{Sublattice: id, Index: -1, Count: len(cs), Max: len(g.Species) - 1}
		}
		sum := 0
		for k, c := range cs {
			if c < 0 {
				return plan{}, &InvalidCountError{Sublattice: id, Index: k, Count: c}
			}
			sum += c
		}
		if sum > g.Size() {
			return plan{}, &OverAllocationError{Sublattice: id, Requested: sum, Available: g.Size()}
		}
		if sum > 0 {
			pl.stochastic = true
		}
		pl.counts[n] = append([]int(nil), cs...)
	}
	return pl, nil
}

// apply samples the plan with rng. For each sublattice a uniform
// permutation of its sites is drawn; the first count[0] receive
// substituent 1, the next count[1] substituent 2, and so on.
func (pl plan) apply(sc *SuperCell, groups []lattice.Sublattice, rng *rand.Rand) *Structure {
	choices := make([]int, sc.NumSites())
	for n, id := range pl.ids {
		total := 0
		for _, c := range pl.counts[n] {
			total += c
		}
		if total == 0 {
			continue
		}
		sites := groups[id].Sites
		perm := rng.Perm(len(sites))
		off := 0
		for k, c := range pl.counts[n] {
			for _, p := range perm[off : off+c] {
				choices[sites[p]] = k + 1
			}
			off += c
		}
	}
	return newStructure(sc, choices)
}

// Decorate returns a new structure with exactly counts[id][k] sites of
// sublattice id occupied by its (k+1)-th candidate, chosen uniformly at
// random among the sublattice's sites; all other sites stay pristine.
// Sublattices absent from counts stay pristine.
//
// Every count is validated before sampling, so an error never leaves a
// partial result. An all-zero request needs no RNG and returns the
// pristine structure.
//
// Errors: ErrUnknownSublattice, ErrInvalidCount, ErrOverAllocation,
// ErrNeedRandSource.
// Complexity: O(N) time and space for N supercell sites.
func (sc *SuperCell) Decorate(counts map[int][]int, opts ...Option) (*Structure, error) {
	cfg := newConfig(opts...)
	groups := sc.Sublattices()
	pl, err := newPlan(groups, counts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDecorate, err)
	}
	if pl.stochastic && cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodDecorate, ErrNeedRandSource)
	}
	return pl.apply(sc, groups, cfg.rng), nil
}

// Assign builds the structure with the given species per supercell site.
// Each symbol is parsed (vacancy aliases accepted) and must be one of its
// site's candidates.
//
// Errors: ErrAssignLength, element.ErrBadSpecies, ErrNotCandidate
// (*NotCandidateError).
func (sc *SuperCell) Assign(symbols []element.Species) (*Structure, error) {
	if len(symbols) != sc.NumSites() {
		return nil, fmt.Errorf("%s: %d symbols for %d sites: %w", methodAssign, len(symbols), sc.NumSites(), ErrAssignLength)
	}
	choices := make([]int, len(symbols))
	for i, raw := range symbols {
		sp, err := element.Parse(string(raw))
		if err != nil {
			return nil, fmt.Errorf("%s: site %d: %w", methodAssign, i, err)
		}
		k, ok := sc.Site(i).Allows(sp)
		if !ok {
			return nil, fmt.Errorf("%s: %w", methodAssign, &NotCandidateError{Site: i, Species: string(sp)})
		}
		choices[i] = k
	}
	return newStructure(sc, choices), nil
}
