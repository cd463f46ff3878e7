// SPDX-License-Identifier: MIT

package calculator

import (
	"fmt"

	"github.com/katalvlaran/matrixlab/matrix"
)

// Kind tells which field of a Result carries the value.
type Kind int

const (
	KindMatrix      Kind = iota // Result.Matrix
	KindScalar                  // Result.Scalar
	KindEigenvalues             // Result.Eigenvalues
)

// String returns "matrix", "scalar" or "eigenvalues".
func (k Kind) String() string {
	switch k {
	case KindMatrix:
		return "matrix"
	case KindScalar:
		return "scalar"
	case KindEigenvalues:
		return "eigenvalues"
	default:
		return "unknown"
	}
}

// Result is the value of one evaluated operation.
// Exactly one of Matrix, Scalar or Eigenvalues is meaningful, selected by Kind.
// Seq is the session request number that produced it (0 outside a Session).
type Result struct {
	Kind        Kind
	Op          Operation
	Matrix      *matrix.Dense
	Scalar      float64
	Eigenvalues []complex128
	Seq         uint64
}

// Evaluate runs op on the given operands and wraps the outcome as a Result.
//
// Implementation:
//   - Stage 1: reject unknown operations and nil operands (b only for binary ops).
//   - Stage 2: reject NaN or ±Inf entries, which foreign Matrix types may carry.
//   - Stage 3: dispatch to the matrix kernel; unary operations ignore b.
//
// Errors:
//   - ErrUnknownOperation, ErrMissingOperand, matrix.ErrNaNInf.
//   - Engine sentinels unchanged under errors.Is: matrix.ErrDimensionMismatch,
//     matrix.ErrNonSquare, matrix.ErrSingular, matrix.ErrNotImplemented, ...
//
// Notes:
//   - opts are forwarded to Det, Inverse and Eigenvalues; other kernels take none.
func Evaluate(op Operation, a, b matrix.Matrix, opts ...matrix.Option) (Result, error) {
	if !op.Valid() {
		return Result{}, fmt.Errorf("operation %d: %w", int(op), ErrUnknownOperation)
	}
	if isNil(a) || (op.Arity() == 2 && isNil(b)) {
		return Result{}, calcErrorf(op.String(), ErrMissingOperand)
	}
	if err := matrix.ValidateFinite(a); err != nil {
		return Result{}, calcErrorf(op.String(), err)
	}
	if op.Arity() == 2 {
		if err := matrix.ValidateFinite(b); err != nil {
			return Result{}, calcErrorf(op.String(), err)
		}
	}

	res := Result{Op: op, Kind: KindMatrix}
	var err error
	switch op {
	case OpAdd:
		res.Matrix, err = matrix.Add(a, b)
	case OpSub:
		res.Matrix, err = matrix.Sub(a, b)
	case OpMul:
		res.Matrix, err = matrix.Mul(a, b)
	case OpTranspose:
		res.Matrix, err = matrix.Transpose(a)
	case OpInverse:
		res.Matrix, err = matrix.Inverse(a, opts...)
	case OpDet:
		res.Kind = KindScalar
		res.Scalar, err = matrix.Det(a, opts...)
	case OpTrace:
		res.Kind = KindScalar
		res.Scalar, err = matrix.Trace(a)
	case OpEigen:
		res.Kind = KindEigenvalues
		res.Eigenvalues, err = matrix.Eigenvalues(a, opts...)
	}
	if err != nil {
		return Result{}, calcErrorf(op.String(), err)
	}

	return res, nil
}

// isNil catches both an untyped nil and a typed-nil *matrix.Dense.
func isNil(m matrix.Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*matrix.Dense)

	return ok && d == nil
}
