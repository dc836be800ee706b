// SPDX-License-Identifier: MIT

package lattice

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/celattice/atoms"
	"github.com/katalvlaran/celattice/element"
)

const (
	methodFromSubstitutions = "FromSubstitutions"
	methodFromCandidates    = "FromCandidates"
)

// Site is one basis site of a parent lattice.
type Site struct {
	index      int
	position   atoms.Vec3
	candidates []element.Species
}

// Index returns the site's position in the lattice's site sequence.
func (s Site) Index() int { return s.index }

// Position returns the Cartesian position.
func (s Site) Position() atoms.Vec3 { return s.position }

// Candidates returns a copy of the ordered candidate species.
func (s Site) Candidates() []element.Species {
	out := make([]element.Species, len(s.candidates))
	copy(out, s.candidates)
	return out
}

// NumCandidates returns the number of legal occupants.
func (s Site) NumCandidates() int { return len(s.candidates) }

// Pristine returns the first candidate.
func (s Site) Pristine() element.Species { return s.candidates[0] }

// Allows reports whether sp is a candidate, and at which index.
func (s Site) Allows(sp element.Species) (int, bool) {
	for i, c := range s.candidates {
		if c == sp {
			return i, true
		}
	}
	return -1, false
}

// ParentLattice is an immutable set of sites with per-site candidate
// species sharing one periodic cell.
type ParentLattice struct {
	sites []Site
	cell  atoms.Cell
	pbc   [3]bool
}

// FromSubstitutions builds a lattice from a pristine configuration and zero
// or more fully substituted configurations of identical geometry. Site i's
// candidates are the pristine species followed by each substitution's
// species at i, duplicates collapsed to their first occurrence.
//
// Errors: ErrNilInput, ErrNoSites, ErrShapeMismatch (*ShapeMismatchError),
// element.ErrBadSpecies.
// Complexity: O(n·(k+1)) for n sites and k substitutions.
func FromSubstitutions(pristine *atoms.Atoms, subs []*atoms.Atoms, opts ...Option) (*ParentLattice, error) {
	cfg := newConfig(opts...)
	if pristine == nil {
		return nil, fmt.Errorf("%s: pristine: %w", methodFromSubstitutions, ErrNilInput)
	}
	if pristine.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", methodFromSubstitutions, ErrNoSites)
	}

	// 1) Validate every substitution against the pristine geometry first,
	// so no partial lattice is ever assembled.
	for k, sub := range subs {
		if sub == nil {
			return nil, fmt.Errorf("%s: substitution %d: %w", methodFromSubstitutions, k, ErrNilInput)
		}
		if err := pristine.SameGeometry(sub, cfg.tol); err != nil {
			var me *atoms.MismatchError
			if errors.As(err, &me) {
				return nil, fmt.Errorf("%s: %w", methodFromSubstitutions,
					&ShapeMismatchError{Input: k, Field: me.Field, Index: me.Index})
			}
			return nil, fmt.Errorf("%s: substitution %d: %w", methodFromSubstitutions, k, err)
		}
	}

	// 2) Column-wise candidate lists: pristine first, then each substitution.
	candidates := make([][]element.Species, pristine.Len())
	for i := range candidates {
		raw := make([]element.Species, 0, len(subs)+1)
		raw = append(raw, pristine.Symbol(i))
		for _, sub := range subs {
			raw = append(raw, sub.Symbol(i))
		}
		candidates[i] = raw
	}

	return build(methodFromSubstitutions, pristine, candidates)
}

// FromCandidates builds a lattice from a pristine configuration and an
// explicit candidate list per site. Lists are used in the given order
// (repeated symbols collapsed); the first entry is the pristine occupant,
// regardless of the species the pristine configuration holds there.
//
// Errors: ErrNilInput, ErrNoSites, ErrShapeMismatch (list count differs
// from site count), ErrEmptyCandidates (*EmptyCandidatesError),
// element.ErrBadSpecies.
func FromCandidates(pristine *atoms.Atoms, candidates [][]element.Species) (*ParentLattice, error) {
	if pristine == nil {
		return nil, fmt.Errorf("%s: pristine: %w", methodFromCandidates, ErrNilInput)
	}
	if pristine.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", methodFromCandidates, ErrNoSites)
	}
	if len(candidates) != pristine.Len() {
		return nil, fmt.Errorf("%s: %d lists for %d sites: %w", methodFromCandidates,
			len(candidates), pristine.Len(),
			&ShapeMismatchError{Input: CandidatesInput, Field: atoms.FieldCount, Index: -1})
	}

	return build(methodFromCandidates, pristine, candidates)
}

// build normalizes symbols, collapses duplicates and freezes the sites.
func build(method string, pristine *atoms.Atoms, candidates [][]element.Species) (*ParentLattice, error) {
	pl := &ParentLattice{
		sites: make([]Site, len(candidates)),
		cell:  pristine.Cell(),
		pbc:   pristine.PBC(),
	}
	for i, raw := range candidates {
		if len(raw) == 0 {
			return nil, fmt.Errorf("%s: %w", method, &EmptyCandidatesError{Site: i})
		}
		norm := make([]element.Species, len(raw))
		for j, s := range raw {
			sp, err := element.Parse(string(s))
			if err != nil {
				return nil, fmt.Errorf("%s: site %d candidate %d: %w", method, i, j, err)
			}
			norm[j] = sp
		}
		pl.sites[i] = Site{
			index:      i,
			position:   pristine.Position(i),
			candidates: element.Dedup(norm),
		}
	}

	return pl, nil
}

// NumSites returns the number of sites.
func (pl *ParentLattice) NumSites() int { return len(pl.sites) }

// Site returns site i. Panics if i is out of range, like slice indexing.
func (pl *ParentLattice) Site(i int) Site { return pl.sites[i] }

// Sites returns a copy of the site sequence.
func (pl *ParentLattice) Sites() []Site {
	out := make([]Site, len(pl.sites))
	copy(out, pl.sites)
	return out
}

// Cell returns the periodic cell.
func (pl *ParentLattice) Cell() atoms.Cell { return pl.cell }

// PBC returns per-axis periodicity.
func (pl *ParentLattice) PBC() [3]bool { return pl.pbc }

// Positions returns a copy of all site positions.
func (pl *ParentLattice) Positions() []atoms.Vec3 {
	out := make([]atoms.Vec3, len(pl.sites))
	for i, s := range pl.sites {
		out[i] = s.position
	}
	return out
}

// Candidates returns a copy of every site's candidate list.
func (pl *ParentLattice) Candidates() [][]element.Species {
	out := make([][]element.Species, len(pl.sites))
	for i, s := range pl.sites {
		out[i] = s.Candidates()
	}
	return out
}

// Species returns every candidate species in first-appearance order.
func (pl *ParentLattice) Species() []element.Species {
	var all []element.Species
	for _, s := range pl.sites {
		all = append(all, s.candidates...)
	}
	return element.Dedup(all)
}

// Pristine returns the configuration with every site at its pristine occupant.
func (pl *ParentLattice) Pristine() *atoms.Atoms {
	sym := make([]element.Species, len(pl.sites))
	for i, s := range pl.sites {
		sym[i] = s.candidates[0]
	}
	// inputs were validated at construction
	a, _ := atoms.New(sym, pl.Positions(), pl.cell, pl.pbc)
	return a
}

// Sublattices partitions the sites by ordered candidate list.
func (pl *ParentLattice) Sublattices() []Sublattice {
	return Partition(pl.Candidates())
}
