// SPDX-License-Identifier: MIT

package lattice

import (
	"strings"

	"github.com/katalvlaran/celattice/element"
)

// NoCode marks a species without a canonical code in Sublattice.Codes.
const NoCode = -1

// Sublattice is a group of sites sharing one ordered candidate list.
type Sublattice struct {
	// ID numbers groups in order of first appearance, from 0.
	ID int
	// Species is the shared candidate list; Species[0] is the pristine occupant.
	Species []element.Species
	// Codes holds each species' atomic number (0 for vacancy, NoCode if unknown).
	Codes []int
	// Sites lists member site indices in ascending order.
	Sites []int
}

// Size returns the number of member sites.
func (s Sublattice) Size() int { return len(s.Sites) }

// Pristine returns the pristine occupant.
func (s Sublattice) Pristine() element.Species { return s.Species[0] }

// Substituents returns the non-pristine candidates, in order. The k-th
// entry is the species targeted by count index k of a decoration request.
func (s Sublattice) Substituents() []element.Species {
	out := make([]element.Species, len(s.Species)-1)
	copy(out, s.Species[1:])
	return out
}

// Active reports whether the sublattice admits any substitution.
func (s Sublattice) Active() bool { return len(s.Species) > 1 }

// Partition groups site indices by identical ordered candidate list.
// Two sites whose lists hold the same species in a different order are
// different sublattices: the order fixes the pristine occupant and the
// meaning of each decoration count.
//
// Guarantees: every index in [0, len(candidates)) appears in exactly one
// group; IDs follow first appearance; member lists are ascending.
// Complexity: O(Σ|candidates|).
func Partition(candidates [][]element.Species) []Sublattice {
	groups := make([]Sublattice, 0, 4)
	byKey := make(map[string]int, 4)
	for site, cand := range candidates {
		key := candidateKey(cand)
		id, ok := byKey[key]
		if !ok {
			id = len(groups)
			byKey[key] = id
			species := make([]element.Species, len(cand))
			copy(species, cand)
			groups = append(groups, Sublattice{
				ID:      id,
				Species: species,
				Codes:   codesOf(species),
			})
		}
		groups[id].Sites = append(groups[id].Sites, site)
	}
	return groups
}

// candidateKey joins symbols with a separator that cannot occur in them.
func candidateKey(cand []element.Species) string {
	parts := element.Strings(cand)
	return strings.Join(parts, "\x00")
}

func codesOf(species []element.Species) []int {
	codes := make([]int, len(species))
	for i, s := range species {
		if z, ok := s.Code(); ok {
			codes[i] = z
		} else {
			codes[i] = NoCode
		}
	}
	return codes
}
