// SPDX-License-Identifier: MIT

package vsim

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax indicates a malformed header, box or node line.
	ErrSyntax = errors.New("vsim: syntax error")

	// ErrUnsupported indicates boundary conditions this package cannot
	// represent (surface on read, mixed pbc on write).
	ErrUnsupported = errors.New("vsim: unsupported boundary conditions")
)

// SyntaxError locates a parse failure by 1-based line number.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("vsim: line %d: %s", e.Line, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }
