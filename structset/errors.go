// SPDX-License-Identifier: MIT

package structset

import "errors"

var (
	// ErrNilStructure indicates a nil structure passed to Add.
	ErrNilStructure = errors.New("structset: nil structure")

	// ErrForeignLattice indicates a structure built on another parent lattice.
	ErrForeignLattice = errors.New("structset: structure belongs to a different parent lattice")

	// ErrIndexOutOfRange indicates an At index outside [0, Len).
	ErrIndexOutOfRange = errors.New("structset: index out of range")

	// ErrNilParent indicates New was called without a parent lattice.
	ErrNilParent = errors.New("structset: nil parent lattice")
)
