// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels over the Matrix interface.
//
// Purpose:
//   - Products and transposes for coordinate transforms (row-vector convention:
//     cartesian = fractional · Cell).
//   - LU with partial pivoting, Det and Inverse for cell volumes and the
//     fractional coordinates of lattice images.
//
// Notes:
//   - Every kernel validates first and allocates a fresh result; inputs are
//     never mutated.
//   - Fast paths operate on *Dense directly; other Matrix implementations are
//     copied once into a Dense.

package matrix

import (
	"errors"
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator for substitutions and dot products.
const ZeroSum = 0.0

// PivotTolerance is the magnitude below which a pivot is treated as zero.
const PivotTolerance = 1e-12

// Operation name constants for unified error wrapping.
const (
	opMul      = "Mul"
	opVecMat   = "VecMat"
	opLU       = "LU"
	opDet      = "Det"
	opInverse  = "Inverse"
	opAllClose = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise a Dense copy.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// Mul returns the matrix product a·b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·k·c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ad, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bd, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, err := NewDense(ad.r, bd.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k int
		sum     float64
	)
	for i = 0; i < ad.r; i++ {
		for j = 0; j < bd.c; j++ {
			sum = ZeroSum
			for k = 0; k < ad.c; k++ {
				sum += ad.data[i*ad.c+k] * bd.data[k*bd.c+j]
			}
			out.data[i*out.c+j] = sum
		}
	}

	return out, nil
}

// VecMat returns the row-vector product x·m, the natural form for
// "fractional coordinates times cell" transforms.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != Rows).
func VecMat(x []float64, m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	if err := ValidateVecLen(x, m.Rows()); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	y := make([]float64, d.c)
	var i, j int
	for j = 0; j < d.c; j++ {
		sum := ZeroSum
		for i = 0; i < d.r; i++ {
			sum += x[i] * d.data[i*d.c+j]
		}
		y[j] = sum
	}

	return y, nil
}

// LUFactors is the result of a partially pivoted factorization P·A = L·U.
// L is unit lower triangular, U upper triangular; Perm[i] is the source row
// of row i of P·A; Sign is +1/-1 for an even/odd number of row swaps.
type LUFactors struct {
	L, U *Dense
	Perm []int
	Sign float64
}

// LU computes P·A = L·U with partial (row) pivoting.
//
// Implementation:
//   - Stage 1: Validate square, copy A into the working buffer.
//   - Stage 2: For each column k pick the row with the largest |a[i][k]|,
//     swap it up, eliminate below, store multipliers in L.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (all pivot candidates
//     below PivotTolerance).
//
// Determinism: ties in pivot magnitude keep the lowest row index.
// Complexity: O(n³) time, O(n²) space.
func LU(m Matrix) (*LUFactors, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	n := src.r
	a := make([]float64, len(src.data))
	copy(a, src.data)

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign := 1.0

	var (
		i, j, k, p int
		best, f    float64
	)
	for k = 0; k < n; k++ {
		// choose pivot row
		p, best = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(a[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best <= PivotTolerance {
			return nil, matrixErrorf(opLU, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
			sign = -sign
		}
		// eliminate below the pivot, keeping multipliers in the lower part
		for i = k + 1; i < n; i++ {
			f = a[i*n+k] / a[k*n+k]
			a[i*n+k] = f
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
			}
		}
	}

	L, _ := NewIdentity(n)
	U, _ := NewDense(n, n)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if j < i {
				L.data[i*n+j] = a[i*n+j]
			} else {
				U.data[i*n+j] = a[i*n+j]
			}
		}
	}

	return &LUFactors{L: L, U: U, Perm: perm, Sign: sign}, nil
}

// solve returns x with A·x = b using the stored factors.
func (f *LUFactors) solve(b []float64) []float64 {
	n := f.L.r
	y := make([]float64, n)
	x := make([]float64, n)
	var i, k int
	// forward substitution: L·y = P·b
	for i = 0; i < n; i++ {
		sum := ZeroSum
		for k = 0; k < i; k++ {
			sum += f.L.data[i*n+k] * y[k]
		}
		y[i] = b[f.Perm[i]] - sum
	}
	// backward substitution: U·x = y
	for i = n - 1; i >= 0; i-- {
		sum := ZeroSum
		for k = i + 1; k < n; k++ {
			sum += f.U.data[i*n+k] * x[k]
		}
		x[i] = (y[i] - sum) / f.U.data[i*n+i]
	}

	return x
}

// Det returns the determinant of a square matrix. A singular input yields
// 0 with a nil error; only shape problems are reported.
func Det(m Matrix) (float64, error) {
	f, err := LU(m)
	if errors.Is(err, ErrSingular) {
		return 0, nil
	}
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	det := f.Sign
	n := f.U.r
	for i := 0; i < n; i++ {
		det *= f.U.data[i*n+i]
	}

	return det, nil
}

// Inverse returns A⁻¹ by solving A·x = eᵢ for every basis column.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
// Complexity: O(n³).
func Inverse(m Matrix) (Matrix, error) {
	f, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := f.L.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	e := make([]float64, n)
	var col, i int
	for col = 0; col < n; col++ {
		for i = range e {
			e[i] = 0
		}
		e[col] = 1
		x := f.solve(e)
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// AllClose reports whether |a-b| <= atol + rtol*|b| holds elementwise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	ad, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	bd, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for i := range ad.data {
		if math.Abs(ad.data[i]-bd.data[i]) > atol+rtol*math.Abs(bd.data[i]) {
			return false, nil
		}
	}

	return true, nil
}
