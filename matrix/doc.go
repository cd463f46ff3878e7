// Package matrix is a small dense linear-algebra engine for calculator-sized
// matrices (the interactive tools expose 1×1 through 5×5).
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix built from user rows (NewFromRows).
//   - Add, Sub, Mul, Transpose and Scale over any Matrix implementation.
//   - Det (cofactor expansion by default, LU on request), Adjugate, Inverse,
//     Trace and Eigenvalues (closed form for 2×2, Hessenberg-QR on request).
//   - Sentinel errors for every precondition: ErrDimensionMismatch,
//     ErrNonSquare, ErrSingular and ErrNotImplemented.
//
// Every operation is a pure function: inputs are never modified and every
// result is freshly allocated, so a matrix passed to an operation can be
// treated as an immutable value.
//
//	A := matrix.MustFromRows([][]float64{{1, 2}, {3, 4}})
//	inv, err := matrix.Inverse(A) // [[-2, 1], [1.5, -0.5]]
package matrix
