// SPDX-License-Identifier: MIT

package supercell

import (
	"fmt"

	"github.com/katalvlaran/celattice/matrix"
)

// Transformation is an integer 3×3 matrix P; the supercell is S = P·V
// (rows of V are the parent cell vectors).
type Transformation struct {
	p [3][3]int
}

// Scalar returns n·I: the same repetition along every axis.
func Scalar(n int) Transformation { return Repeat(n, n, n) }

// Repeat returns diag(a, b, c).
func Repeat(a, b, c int) Transformation {
	return Transformation{p: [3][3]int{{a, 0, 0}, {0, b, 0}, {0, 0, c}}}
}

// Matrix returns a general integer transformation.
func Matrix(p [3][3]int) Transformation { return Transformation{p: p} }

// P returns the integer matrix.
func (t Transformation) P() [3][3]int { return t.p }

// Det returns the integer determinant, i.e. the number of parent cells
// the supercell contains when positive.
func (t Transformation) Det() int {
	p := t.p
	return p[0][0]*(p[1][1]*p[2][2]-p[1][2]*p[2][1]) -
		p[0][1]*(p[1][0]*p[2][2]-p[1][2]*p[2][0]) +
		p[0][2]*(p[1][0]*p[2][1]-p[1][1]*p[2][0])
}

// Diagonal reports whether P is a pure repetition.
func (t Transformation) Diagonal() bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i != j && t.p[i][j] != 0 {
				return false
			}
		}
	}
	return true
}

// String renders P as "[[a b c] [d e f] [g h i]]", or "axbxc" when diagonal.
func (t Transformation) String() string {
	if t.Diagonal() {
		return fmt.Sprintf("%dx%dx%d", t.p[0][0], t.p[1][1], t.p[2][2])
	}
	return fmt.Sprint(t.p)
}

// validate rejects non-positive determinants and any mixing of a
// non-periodic axis with the others.
func (t Transformation) validate(pbc [3]bool) error {
	if d := t.Det(); d <= 0 {
		return &SingularTransformationError{Det: d, Axis: -1}
	}
	for k := 0; k < 3; k++ {
		if pbc[k] {
			continue
		}
		for j := 0; j < 3; j++ {
			want := 0
			if j == k {
				want = 1
			}
			if t.p[k][j] != want || t.p[j][k] != want {
				return &SingularTransformationError{Det: t.Det(), Axis: k}
			}
		}
	}
	return nil
}

// dense returns P as a float matrix.
func (t Transformation) dense() (*matrix.Dense, error) {
	var pf [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			pf[i][j] = float64(t.p[i][j])
		}
	}
	return matrix.NewFrom3x3(pf)
}

// cell returns S = P·V.
func (t Transformation) cell(v [3][3]float64) ([3][3]float64, error) {
	pm, err := t.dense()
	if err != nil {
		return [3][3]float64{}, err
	}
	vm, err := matrix.NewFrom3x3(v)
	if err != nil {
		return [3][3]float64{}, err
	}
	s, err := matrix.Mul(pm, vm)
	if err != nil {
		return [3][3]float64{}, err
	}
	return s.(*matrix.Dense).To3x3()
}
