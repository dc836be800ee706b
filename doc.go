// Package celattice builds training structures for cluster expansions of
// substitutional alloys.
//
// A parent lattice is a set of sites, each with an ordered list of species
// allowed to occupy it. It is built either from a pristine configuration
// plus fully substituted variants of the same geometry, or from explicit
// per-site candidate lists. Sites sharing one candidate list form a
// sublattice. A supercell expands the parent lattice by an integer
// transformation, and decorations place exact numbers of substituents on
// each sublattice at uniformly random sites.
//
// Packages:
//
//	element/    species symbols, the vacancy symbol X, atomic-number codes
//	matrix/     dense matrices: products, LU with pivoting, Det, Inverse
//	atoms/      immutable configurations: cell, positions, species, pbc
//	lattice/    ParentLattice, Site, Sublattice partition
//	supercell/  SuperCell, Transformation, Decorate/Assign/Generate, Structure
//	structset/  thread-safe structure sets, V_Sim export with manifest
//	vsim/       V_Sim ascii reader/writer (.zst aware)
//	cmd/cegen/  CLI running YAML jobs end to end
//
// Quick start:
//
//	pl, _ := lattice.FromSubstitutions(pristine, []*atoms.Atoms{sub1, sub2})
//	sc, _ := supercell.New(pl, supercell.Repeat(2, 2, 2))
//	s, _ := sc.Decorate(map[int][]int{1: {3}}, supercell.WithSeed(42))
//	_ = vsim.WriteFile("s.ascii", s.Occupied())
//
// Randomness is always explicit (WithSeed/WithRand); identical seeds give
// identical structures regardless of parallelism.
package celattice
