// SPDX-License-Identifier: MIT

package atoms

import (
	"encoding/hex"
	"fmt"
	"math"
	"strings"

	"lukechampine.com/blake3"

	"github.com/katalvlaran/celattice/element"
)

// wrapEps keeps coordinates that sit a hair below a cell face on that face
// instead of jumping to the opposite one.
const wrapEps = 1e-7

// fingerprintDecimals is the precision of fractional coordinates hashed by
// Fingerprint; positions equal to this precision hash identically.
const fingerprintDecimals = 6

// Atoms is an immutable atomic configuration.
type Atoms struct {
	symbols   []element.Species
	positions []Vec3
	cell      Cell
	pbc       [3]bool
}

// New validates and copies the inputs into a new snapshot.
// Errors: ErrLengthMismatch, element.ErrBadSpecies, ErrNonFinite.
// Complexity: O(n).
func New(symbols []element.Species, positions []Vec3, cell Cell, pbc [3]bool) (*Atoms, error) {
	if len(symbols) != len(positions) {
		return nil, fmt.Errorf("New: %d symbols, %d positions: %w", len(symbols), len(positions), ErrLengthMismatch)
	}
	if !cell.finite() {
		return nil, fmt.Errorf("New: cell: %w", ErrNonFinite)
	}
	a := &Atoms{
		symbols:   make([]element.Species, len(symbols)),
		positions: make([]Vec3, len(positions)),
		cell:      cell,
		pbc:       pbc,
	}
	for i, s := range symbols {
		if strings.TrimSpace(string(s)) == "" {
			return nil, fmt.Errorf("New: symbol %d: %w", i, element.ErrBadSpecies)
		}
		if !finite(positions[i]) {
			return nil, fmt.Errorf("New: position %d: %w", i, ErrNonFinite)
		}
		a.symbols[i] = s
		a.positions[i] = positions[i]
	}

	return a, nil
}

// FromScaled builds a snapshot from fractional coordinates.
func FromScaled(symbols []element.Species, scaled []Vec3, cell Cell, pbc [3]bool) (*Atoms, error) {
	pos := make([]Vec3, len(scaled))
	for i, f := range scaled {
		pos[i] = cell.Cartesian(f)
	}
	return New(symbols, pos, cell, pbc)
}

// Len returns the number of atoms (sites).
func (a *Atoms) Len() int { return len(a.symbols) }

// Symbol returns the species at index i.
func (a *Atoms) Symbol(i int) element.Species { return a.symbols[i] }

// Symbols returns a copy of all species in order.
func (a *Atoms) Symbols() []element.Species {
	out := make([]element.Species, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// Position returns the Cartesian position of atom i.
func (a *Atoms) Position(i int) Vec3 { return a.positions[i] }

// Positions returns a copy of all Cartesian positions.
func (a *Atoms) Positions() []Vec3 {
	out := make([]Vec3, len(a.positions))
	copy(out, a.positions)
	return out
}

// Cell returns the periodic cell.
func (a *Atoms) Cell() Cell { return a.cell }

// PBC returns the per-axis periodicity flags.
func (a *Atoms) PBC() [3]bool { return a.pbc }

// ScaledPositions returns fractional coordinates r · Cell⁻¹.
// Errors: ErrDegenerateCell.
func (a *Atoms) ScaledPositions() ([]Vec3, error) {
	inv, err := a.cell.Inverse()
	if err != nil {
		return nil, fmt.Errorf("ScaledPositions: %w", err)
	}
	out := make([]Vec3, len(a.positions))
	for i, r := range a.positions {
		out[i] = inv.Cartesian(r)
	}
	return out, nil
}

// WithSymbols returns a snapshot with the same geometry and new species.
// Errors: ErrLengthMismatch, element.ErrBadSpecies.
func (a *Atoms) WithSymbols(symbols []element.Species) (*Atoms, error) {
	return New(symbols, a.positions, a.cell, a.pbc)
}

// WithoutVacancies drops every Vacancy site, keeping order of the rest.
func (a *Atoms) WithoutVacancies() *Atoms {
	out := &Atoms{cell: a.cell, pbc: a.pbc}
	for i, s := range a.symbols {
		if s.IsVacancy() {
			continue
		}
		out.symbols = append(out.symbols, s)
		out.positions = append(out.positions, a.positions[i])
	}
	return out
}

// Wrap returns a snapshot whose positions lie inside the cell along every
// periodic axis. Errors: ErrDegenerateCell.
func (a *Atoms) Wrap() (*Atoms, error) {
	scaled, err := a.ScaledPositions()
	if err != nil {
		return nil, fmt.Errorf("Wrap: %w", err)
	}
	out := &Atoms{
		symbols:   a.Symbols(),
		positions: make([]Vec3, len(scaled)),
		cell:      a.cell,
		pbc:       a.pbc,
	}
	for i, f := range scaled {
		out.positions[i] = a.cell.Cartesian(WrapFractional(f, a.pbc))
	}
	return out, nil
}

// WrapFractional maps each periodic component of f into [-wrapEps, 1-wrapEps).
func WrapFractional(f Vec3, pbc [3]bool) Vec3 {
	for k := 0; k < 3; k++ {
		if pbc[k] {
			f[k] -= math.Floor(f[k] + wrapEps)
		}
	}
	return f
}

// SameGeometry checks that b has the same site count, cell, periodicity
// and positions as a (within tol Å). The returned error is a
// *MismatchError naming the first difference.
func (a *Atoms) SameGeometry(b *Atoms, tol float64) error {
	if a.Len() != b.Len() {
		return &MismatchError{Field: FieldCount, Index: -1}
	}
	if !a.cell.AlmostEqual(b.cell, tol) {
		return &MismatchError{Field: FieldCell, Index: -1}
	}
	if a.pbc != b.pbc {
		return &MismatchError{Field: FieldPBC, Index: -1}
	}
	for i := range a.positions {
		for k := 0; k < 3; k++ {
			if math.Abs(a.positions[i][k]-b.positions[i][k]) > tol {
				return &MismatchError{Field: FieldPosition, Index: i}
			}
		}
	}
	return nil
}

// Formula returns the chemical formula in first-appearance order.
func (a *Atoms) Formula() string { return element.Formula(a.symbols) }

// Fingerprint returns a hex BLAKE3 digest of cell, periodicity, species
// and fractional coordinates (rounded to fingerprintDecimals). Identical
// decorations of the same geometry share a fingerprint.
func (a *Atoms) Fingerprint() string {
	var sb strings.Builder
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sb.WriteString(roundStr(a.cell[i][j]))
			sb.WriteByte(' ')
		}
	}
	fmt.Fprintf(&sb, "%v\n", a.pbc)

	scaled, err := a.ScaledPositions()
	if err != nil {
		// degenerate cells fall back to Cartesian coordinates
		scaled = a.positions
	}
	for i, s := range a.symbols {
		sb.WriteString(string(s))
		for k := 0; k < 3; k++ {
			sb.WriteByte(' ')
			sb.WriteString(roundStr(scaled[i][k]))
		}
		sb.WriteByte('\n')
	}

	sum := blake3.Sum256([]byte(sb.String()))
	return hex.EncodeToString(sum[:])
}

// roundStr formats x at fingerprint precision with negative zero folded.
func roundStr(x float64) string {
	s := fmt.Sprintf("%.*f", fingerprintDecimals, x)
	if strings.Trim(s, "-0.") == "" {
		return strings.TrimPrefix(s, "-")
	}
	return s
}
