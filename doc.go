// Package matrixlab is a small matrix algebra calculator: a pure engine for
// calculator-sized matrices, a session layer for an interactive view, and a
// renderer for fixed-precision output.
//
// 🚀 What is matrixlab?
//
//	A compact, deterministic library that brings together:
//		• Arithmetic: add, subtract, multiply, transpose
//		• Square-matrix analysis: determinant, inverse, trace
//		• Eigenvalues: closed form for 2×2 (complex pairs included),
//		  Hessenberg-QR for larger inputs on request
//		• Sessions: two editable operands, one displayed result,
//		  stale results never overwrite newer ones
//		• Rendering: 3–6 decimal places with locale-aware separators
//
// ✨ Why choose matrixlab?
//
//   - Pure functions: operands are never mutated, every result is fresh
//   - Typed failures: ErrDimensionMismatch, ErrNonSquare, ErrSingular,
//     ErrNotImplemented, all matchable with errors.Is
//   - Exact small-matrix results: cofactor determinant by default, LU on request
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/       Dense type, kernels, validators and functional options
//	calculator/   Operation dispatch (Evaluate) and the Session state
//	render/       Formatter for scalars, matrices, eigenvalues and errors
//	cmd/matcalc/  command line front-end
//
// Quick example:
//
//	A := matrix.MustFromRows([][]float64{{1, 2}, {3, 4}})
//	inv, _ := matrix.Inverse(A)   // [[-2, 1], [1.5, -0.5]]
//
//	go install github.com/katalvlaran/matrixlab/cmd/matcalc@latest
package matrixlab
