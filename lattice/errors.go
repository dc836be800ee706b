// SPDX-License-Identifier: MIT

package lattice

import (
	"errors"
	"fmt"
)

var (
	// ErrNilInput indicates a nil configuration passed to a constructor.
	ErrNilInput = errors.New("lattice: nil configuration")

	// ErrNoSites indicates a pristine configuration without sites.
	ErrNoSites = errors.New("lattice: pristine configuration has no sites")

	// ErrShapeMismatch indicates inconsistent geometry between the pristine
	// configuration and a substituted configuration or candidate table.
	ErrShapeMismatch = errors.New("lattice: shape mismatch")

	// ErrEmptyCandidates indicates a site whose candidate list is empty.
	ErrEmptyCandidates = errors.New("lattice: empty candidate list")
)

// CandidatesInput is the ShapeMismatchError.Input value used when the
// mismatch is in an explicit candidate table rather than a substitution.
const CandidatesInput = -1

// ShapeMismatchError reports which input disagrees with the pristine
// configuration. Input is the substitution index (or CandidatesInput),
// Field one of the atoms.Field* names, Index the offending site or -1.
type ShapeMismatchError struct {
	Input int
	Field string
	Index int
}

func (e *ShapeMismatchError) Error() string {
	src := fmt.Sprintf("substitution %d", e.Input)
	if e.Input == CandidatesInput {
		src = "candidate table"
	}
	if e.Index >= 0 {
		return fmt.Sprintf("lattice: shape mismatch: %s differs in %s at site %d", src, e.Field, e.Index)
	}
	return fmt.Sprintf("lattice: shape mismatch: %s differs in %s", src, e.Field)
}

// Unwrap lets errors.Is(err, ErrShapeMismatch) match.
func (e *ShapeMismatchError) Unwrap() error { return ErrShapeMismatch }

// EmptyCandidatesError names the site without candidates.
type EmptyCandidatesError struct {
	Site int
}

func (e *EmptyCandidatesError) Error() string {
	return fmt.Sprintf("lattice: empty candidate list at site %d", e.Site)
}

// Unwrap lets errors.Is(err, ErrEmptyCandidates) match.
func (e *EmptyCandidatesError) Unwrap() error { return ErrEmptyCandidates }
