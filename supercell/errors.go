// SPDX-License-Identifier: MIT
// Package: supercell
//
// errors.go - sentinel errors and typed errors carrying offending values.
// Callers branch with errors.Is on the sentinels; errors.As on the typed
// errors recovers the indices/counts involved.

package supercell

import (
	"errors"
	"fmt"
)

var (
	// ErrNilParent indicates a nil parent lattice.
	ErrNilParent = errors.New("supercell: nil parent lattice")

	// ErrSingularTransformation indicates a transformation whose determinant
	// is not a positive integer, or which mixes a non-periodic axis.
	ErrSingularTransformation = errors.New("supercell: singular transformation")

	// ErrUnknownSublattice indicates a sublattice id absent from the partition.
	ErrUnknownSublattice = errors.New("supercell: unknown sublattice")

	// ErrOverAllocation indicates more substitutions than sublattice sites.
	ErrOverAllocation = errors.New("supercell: over-allocation")

	// ErrInvalidCount indicates a negative count, more counts than a
	// sublattice has substituent species, or a negative structure count.
	ErrInvalidCount = errors.New("supercell: invalid count")

	// ErrNeedRandSource indicates a stochastic request without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("supercell: rng is required")

	// ErrNotCandidate indicates an explicit assignment of a species that is
	// not among the site's candidates.
	ErrNotCandidate = errors.New("supercell: species is not a candidate")

	// ErrAssignLength indicates an explicit assignment of the wrong length.
	ErrAssignLength = errors.New("supercell: assignment length mismatch")
)

// SingularTransformationError carries the offending determinant and,
// for axis violations, the non-periodic axis involved (else -1).
type SingularTransformationError struct {
	Det  int
	Axis int
}

func (e *SingularTransformationError) Error() string {
	if e.Axis >= 0 {
		return fmt.Sprintf("supercell: singular transformation: non-periodic axis %d must map to itself", e.Axis)
	}
	return fmt.Sprintf("supercell: singular transformation: det(P) = %d, want > 0", e.Det)
}

func (e *SingularTransformationError) Unwrap() error { return ErrSingularTransformation }

// UnknownSublatticeError names the missing id and the partition size.
type UnknownSublatticeError struct {
	ID        int
	Available int
}

func (e *UnknownSublatticeError) Error() string {
	return fmt.Sprintf("supercell: unknown sublattice %d (have %d)", e.ID, e.Available)
}

func (e *UnknownSublatticeError) Unwrap() error { return ErrUnknownSublattice }

// OverAllocationError reports a request exceeding a sublattice's sites.
type OverAllocationError struct {
	Sublattice int
	Requested  int
	Available  int
}

func (e *OverAllocationError) Error() string {
	return fmt.Sprintf("supercell: over-allocation on sublattice %d: %d requested, %d sites",
		e.Sublattice, e.Requested, e.Available)
}

func (e *OverAllocationError) Unwrap() error { return ErrOverAllocation }

// InvalidCountError reports a malformed count list for one sublattice.
// Index is the offending position (-1 when the list is too long).
type InvalidCountError struct {
	Sublattice int
	Index      int
	Count      int
	Max        int
}

func (e *InvalidCountError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("supercell: sublattice %d: %d counts for %d substituent species",
			e.Sublattice, e.Count, e.Max)
	}
	return fmt.Sprintf("supercell: sublattice %d: count[%d] = %d is negative", e.Sublattice, e.Index, e.Count)
}

func (e *InvalidCountError) Unwrap() error { return ErrInvalidCount }

// NotCandidateError reports an illegal explicit assignment.
type NotCandidateError struct {
	Site    int
	Species string
}

func (e *NotCandidateError) Error() string {
	return fmt.Sprintf("supercell: %q is not a candidate at site %d", e.Species, e.Site)
}

func (e *NotCandidateError) Unwrap() error { return ErrNotCandidate }
