// Package matrix provides the small dense linear-algebra kernel used for
// crystal geometry: lattice cells, supercell transformations and the
// fractional/Cartesian coordinate changes between them.
//
// The package provides:
//
//   - Dense, a row-major float64 matrix with error-returning At/Set.
//   - Mul and VecMat for cell products and coordinate transforms.
//   - LU with partial pivoting, Det and Inverse. Pivoting matters here:
//     common primitive cells (fcc, bcc) have a zero leading entry and
//     break a non-pivoting Doolittle factorization.
//   - AllClose for tolerance-based cell comparisons.
//
// All routines are deterministic (fixed loop orders) and never panic on
// user input; failures are reported through the sentinels in errors.go.
package matrix
