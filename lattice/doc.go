// Package lattice describes a parent lattice: the periodic sites of a
// crystal together with, for each site, the ordered list of species that
// may occupy it. The first candidate of every site is its pristine
// occupant; element.Vacancy is a legal candidate meaning "no atom".
//
// A ParentLattice is built once and is immutable afterwards:
//
//	FromSubstitutions(pristine, alt1, alt2, ...)  // mode (a)
//	FromCandidates(pristine, [][]element.Species) // mode (b)
//
// Sites that share an identical ordered candidate list form a sublattice.
// Partition computes that grouping deterministically (IDs in order of
// first appearance) and is shared with the supercell package, which
// recomputes it over replicated sites.
//
// Errors:
//
//	ErrNoSites         - the pristine configuration is empty.
//	ErrShapeMismatch   - inputs disagree on site count, cell, pbc or positions.
//	ErrEmptyCandidates - a site would have no legal occupant.
package lattice
