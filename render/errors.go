// SPDX-License-Identifier: MIT

package render

import (
	"context"
	"errors"

	"github.com/katalvlaran/matrixlab/calculator"
	"github.com/katalvlaran/matrixlab/matrix"
)

// errorMessages maps known sentinels to display text, most specific first.
var errorMessages = []struct {
	target error
	msg    string
}{
	{matrix.ErrDimensionMismatch, "Dimension mismatch: the operands have incompatible sizes."},
	{matrix.ErrNonSquare, "This operation needs a square matrix."},
	{matrix.ErrSingular, "The matrix is singular and has no inverse."},
	{matrix.ErrNotImplemented, "Not available: eigenvalues are supported for 1×1 and 2×2 matrices (real values only in real-only mode)."},
	{matrix.ErrTooLarge, "Matrix too large for cofactor expansion; use the LU method."},
	{matrix.ErrEigenFailed, "The eigenvalue solver did not converge."},
	{matrix.ErrNaNInf, "Entries must be finite numbers."},
	{matrix.ErrBadShape, "Every row must be non-empty and of equal length."},
	{matrix.ErrOutOfRange, "Cell index out of range."},
	{calculator.ErrMissingOperand, "A second matrix is required for this operation."},
	{calculator.ErrUnknownOperation, "Unknown operation."},
	{calculator.ErrSizeOutOfRange, "Matrix size must be between 1 and 5."},
	{calculator.ErrStale, "Result superseded by a newer request."},
	{ErrPrecision, "Precision must be between 3 and 6 decimal places."},
	{context.Canceled, "Computation cancelled."},
	{context.DeadlineExceeded, "Computation timed out."},
}

// FormatError maps err to a short user-facing message.
// Unknown errors fall back to err.Error(); nil yields "".
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	for _, e := range errorMessages {
		if errors.Is(err, e.target) {
			return e.msg
		}
	}

	return err.Error()
}
