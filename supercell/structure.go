// SPDX-License-Identifier: MIT

package supercell

import (
	"github.com/katalvlaran/celattice/atoms"
	"github.com/katalvlaran/celattice/element"
)

// Structure is one decoration of a SuperCell: a choice of candidate per
// site. It is immutable.
type Structure struct {
	sc      *SuperCell
	choices []int
	symbols []element.Species
}

func newStructure(sc *SuperCell, choices []int) *Structure {
	s := &Structure{sc: sc, choices: choices, symbols: make([]element.Species, len(choices))}
	for i, k := range choices {
		s.symbols[i] = sc.Site(i).Candidates()[k]
	}
	return s
}

// SuperCell returns the supercell this structure decorates.
func (s *Structure) SuperCell() *SuperCell { return s.sc }

// NumSites returns the site count, vacancies included.
func (s *Structure) NumSites() int { return len(s.symbols) }

// Species returns the occupant of site i.
func (s *Structure) Species(i int) element.Species { return s.symbols[i] }

// Symbols returns a copy of every site's occupant.
func (s *Structure) Symbols() []element.Species {
	out := make([]element.Species, len(s.symbols))
	copy(out, s.symbols)
	return out
}

// Choices returns a copy of every site's candidate index (0 = pristine).
func (s *Structure) Choices() []int {
	out := make([]int, len(s.choices))
	copy(out, s.choices)
	return out
}

// Counts returns, for every sublattice admitting substitution, how many
// sites hold each substituent. The result is a valid Decorate request
// reproducing this composition.
func (s *Structure) Counts() map[int][]int {
	out := make(map[int][]int)
	for _, g := range s.sc.Sublattices() {
		if !g.Active() {
			continue
		}
		cs := make([]int, len(g.Species)-1)
		for _, site := range g.Sites {
			if k := s.choices[site]; k > 0 {
				cs[k-1]++
			}
		}
		out[g.ID] = cs
	}
	return out
}

// Concentration returns the fraction of sites held by each species,
// vacancies included.
func (s *Structure) Concentration() map[element.Species]float64 {
	out := make(map[element.Species]float64)
	if len(s.symbols) == 0 {
		return out
	}
	w := 1 / float64(len(s.symbols))
	for _, sp := range s.symbols {
		out[sp] += w
	}
	return out
}

// Atoms returns the decorated configuration, vacancies kept as element.Vacancy.
func (s *Structure) Atoms() *atoms.Atoms {
	// positions and symbols were validated by the parent lattice
	a, _ := atoms.New(s.symbols, s.sc.positions, s.sc.cell, s.sc.pbc)
	return a
}

// Occupied returns the decorated configuration without vacancy sites.
func (s *Structure) Occupied() *atoms.Atoms { return s.Atoms().WithoutVacancies() }

// Formula returns the chemical formula of the occupied sites.
func (s *Structure) Formula() string { return element.Formula(s.symbols) }

// Fingerprint identifies the decoration; equal fingerprints mean equal
// occupants on equal positions.
func (s *Structure) Fingerprint() string { return s.Atoms().Fingerprint() }
