// SPDX-License-Identifier: MIT

package atoms

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch indicates symbols and positions of different lengths.
	ErrLengthMismatch = errors.New("atoms: symbols and positions differ in length")

	// ErrNonFinite indicates a NaN or ±Inf coordinate or cell entry.
	ErrNonFinite = errors.New("atoms: non-finite coordinate")

	// ErrDegenerateCell indicates a cell with (near) zero volume where an
	// invertible cell is required (scaled coordinates, wrapping).
	ErrDegenerateCell = errors.New("atoms: degenerate cell")

	// ErrBadCellParams indicates lengths or angles that describe no cell.
	ErrBadCellParams = errors.New("atoms: invalid cell parameters")

	// ErrGeometryMismatch indicates two configurations that do not share
	// site count, cell, periodicity or positions.
	ErrGeometryMismatch = errors.New("atoms: geometry mismatch")
)

// Mismatch fields reported by SameGeometry.
const (
	FieldCount    = "count"
	FieldCell     = "cell"
	FieldPBC      = "pbc"
	FieldPosition = "position"
)

// MismatchError describes the first difference found by SameGeometry.
// Index is the atom index for FieldPosition and -1 otherwise.
type MismatchError struct {
	Field string
	Index int
}

func (e *MismatchError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("atoms: geometry mismatch in %s at index %d", e.Field, e.Index)
	}
	return fmt.Sprintf("atoms: geometry mismatch in %s", e.Field)
}

// Unwrap lets errors.Is(err, ErrGeometryMismatch) match.
func (e *MismatchError) Unwrap() error { return ErrGeometryMismatch }
