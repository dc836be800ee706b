// Package atoms holds immutable snapshots of atomic configurations: an
// ordered list of (species, Cartesian position) pairs, a periodic cell and
// per-axis periodicity flags.
//
// Conventions:
//
//   - Cell rows are the lattice vectors a, b, c (Å).
//   - Fractional ("scaled") coordinates are row vectors: r = f · Cell.
//   - Non-periodic axes still carry a cell vector; positions are never
//     wrapped along them.
//
// Atoms values are read-only after construction: every accessor returns a
// copy and every transformation (WithSymbols, Wrap, WithoutVacancies)
// returns a new snapshot.
package atoms
