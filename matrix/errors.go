// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (possibly wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions; panics are reserved for invalid option
// constructor arguments (programmer error).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Kernels wrap
// these sentinels as "Op: cause" via matrixErrorf; callers match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil/shape -> dimension mismatch / non-square -> numeric (singular)
// -> capability limits (ErrNotImplemented, ErrTooLarge).

var (
	// ErrBadShape is returned when a matrix cannot be built from the given rows:
	// no rows, an empty row, or rows of different lengths.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular is returned by Inverse when |det(A)| is below the singular epsilon.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotImplemented marks a capability the selected solver does not provide:
	// eigenvalues of n>2 matrices under the closed-form solver, or complex
	// eigenvalues under the real-only policy.
	ErrNotImplemented = errors.New("matrix: operation not implemented")

	// ErrTooLarge is returned when cofactor expansion is requested above
	// MaxCofactorOrder; select DeterminantLU for larger inputs.
	ErrTooLarge = errors.New("matrix: matrix too large for cofactor expansion")

	// ErrEigenFailed indicates that the general eigen solver did not converge.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")
)
