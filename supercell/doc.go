// Package supercell expands a lattice.ParentLattice by an integer
// transformation and generates decorated structures on the result.
//
// A SuperCell holds its parent lattice (composition, not embedding) and
// the derived data of the expansion: the supercell S = P·V, the replicated
// sites in image-major order, and each replica's origin (parent site and
// lattice translation). Every replica keeps its parent site's candidate
// list, so the sublattice partition of a SuperCell is recomputed from the
// replicated lists on demand.
//
// Decoration:
//
//	sc, _ := supercell.New(pl, supercell.Repeat(2, 2, 1))
//	s, _ := sc.Decorate(map[int][]int{1: {3}}, supercell.WithSeed(42))
//
// places exactly 3 atoms of sublattice 1's first substituent on a uniform
// random choice of its sites; every other site stays pristine. Each call
// draws afresh; a returned Structure is never mutated.
//
// Randomness is explicit: WithSeed or WithRand. Generate produces many
// structures in parallel; each structure gets its own RNG stream seeded
// from the master RNG in index order, so results do not depend on the
// number of workers.
package supercell
