// SPDX-License-Identifier: MIT

package atoms

import (
	"fmt"
	"math"

	"github.com/katalvlaran/celattice/matrix"
)

// Vec3 is a Cartesian or fractional 3-vector.
type Vec3 [3]float64

// Cell is a periodic cell; row i is lattice vector i in Å.
type Cell [3][3]float64

// minVolume is the smallest |det| accepted as an invertible cell (Å³).
const minVolume = 1e-10

// rightAngleEps snaps angles this close to ±90° onto exact zero cosines,
// so orthogonal cells stay exactly orthogonal after a params round trip.
const rightAngleEps = 2e-14

// Dense returns the cell as a 3×3 matrix.
func (c Cell) Dense() (*matrix.Dense, error) {
	return matrix.NewFrom3x3(c)
}

// Det returns the signed determinant of the cell matrix.
func (c Cell) Det() (float64, error) {
	d, err := c.Dense()
	if err != nil {
		return 0, fmt.Errorf("Cell.Det: %w", ErrNonFinite)
	}
	return matrix.Det(d)
}

// Volume returns |det(Cell)| in Å³.
func (c Cell) Volume() (float64, error) {
	d, err := c.Det()
	return math.Abs(d), err
}

// Inverse returns Cell⁻¹. Errors: ErrDegenerateCell, ErrNonFinite.
func (c Cell) Inverse() (Cell, error) {
	d, err := c.Dense()
	if err != nil {
		return Cell{}, fmt.Errorf("Cell.Inverse: %w", ErrNonFinite)
	}
	vol, err := matrix.Det(d)
	if err != nil {
		return Cell{}, fmt.Errorf("Cell.Inverse: %w", err)
	}
	if math.Abs(vol) < minVolume {
		return Cell{}, fmt.Errorf("Cell.Inverse: volume %g: %w", vol, ErrDegenerateCell)
	}
	inv, err := matrix.Inverse(d)
	if err != nil {
		return Cell{}, fmt.Errorf("Cell.Inverse: %w", ErrDegenerateCell)
	}

	return inv.(*matrix.Dense).To3x3()
}

// Cartesian converts fractional coordinates f to r = f · Cell.
func (c Cell) Cartesian(f Vec3) Vec3 {
	var r Vec3
	for j := 0; j < 3; j++ {
		r[j] = f[0]*c[0][j] + f[1]*c[1][j] + f[2]*c[2][j]
	}
	return r
}

// Lengths returns |a|, |b|, |c|.
func (c Cell) Lengths() [3]float64 {
	var out [3]float64
	for i := 0; i < 3; i++ {
		out[i] = norm(c[i])
	}
	return out
}

// Angles returns α (b,c), β (a,c), γ (a,b) in degrees. A zero-length
// vector reports 90°.
func (c Cell) Angles() [3]float64 {
	lengths := c.Lengths()
	var out [3]float64
	pairs := [3][2]int{{1, 2}, {0, 2}, {0, 1}}
	for i, p := range pairs {
		ll := lengths[p[0]] * lengths[p[1]]
		if ll <= 1e-16 {
			out[i] = 90
			continue
		}
		x := dot(c[p[0]], c[p[1]]) / ll
		x = math.Max(-1, math.Min(1, x))
		out[i] = math.Acos(x) * 180 / math.Pi
	}
	return out
}

// Params returns [a, b, c, α, β, γ].
func (c Cell) Params() [6]float64 {
	l, a := c.Lengths(), c.Angles()
	return [6]float64{l[0], l[1], l[2], a[0], a[1], a[2]}
}

// FromParams builds the standard-orientation cell for [a, b, c, α, β, γ]:
// a along x, b in the xy plane, c with positive z. The result is lower
// triangular, which is the layout V_Sim box lines encode.
// Errors: ErrBadCellParams for non-positive lengths or impossible angles.
func FromParams(p [6]float64) (Cell, error) {
	for i := 0; i < 3; i++ {
		if !(p[i] > 0) || math.IsInf(p[i], 0) {
			return Cell{}, fmt.Errorf("FromParams: length %d = %g: %w", i, p[i], ErrBadCellParams)
		}
	}
	cosAngle := func(deg float64) float64 {
		if math.Abs(math.Abs(deg)-90) < rightAngleEps {
			return 0
		}
		return math.Cos(deg * math.Pi / 180)
	}
	cosA, cosB, cosG := cosAngle(p[3]), cosAngle(p[4]), cosAngle(p[5])

	var sinG float64
	switch {
	case math.Abs(p[5]-90) < rightAngleEps:
		sinG = 1
	case math.Abs(p[5]+90) < rightAngleEps:
		sinG = -1
	default:
		sinG = math.Sin(p[5] * math.Pi / 180)
	}
	if math.Abs(sinG) < 1e-12 {
		return Cell{}, fmt.Errorf("FromParams: gamma = %g: %w", p[5], ErrBadCellParams)
	}

	cx := cosB
	cy := (cosA - cosB*cosG) / sinG
	czSqr := 1 - cx*cx - cy*cy
	if czSqr < 0 {
		return Cell{}, fmt.Errorf("FromParams: angles %v: %w", p[3:], ErrBadCellParams)
	}
	cz := math.Sqrt(czSqr)

	return Cell{
		{p[0], 0, 0},
		{p[1] * cosG, p[1] * sinG, 0},
		{p[2] * cx, p[2] * cy, p[2] * cz},
	}, nil
}

// AlmostEqual reports whether every entry differs by at most tol.
// Cells holding NaN or Inf are never equal.
func (c Cell) AlmostEqual(o Cell, tol float64) bool {
	a, err := c.Dense()
	if err != nil {
		return false
	}
	b, err := o.Dense()
	if err != nil {
		return false
	}
	ok, err := matrix.AllClose(a, b, 0, tol)
	return err == nil && ok
}

func (c Cell) finite() bool {
	for i := 0; i < 3; i++ {
		if !finite(c[i]) {
			return false
		}
	}
	return true
}

func dot(a, b Vec3) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func norm(a Vec3) float64 { return math.Sqrt(dot(a, a)) }

func finite(v Vec3) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
