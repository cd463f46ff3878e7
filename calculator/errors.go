// SPDX-License-Identifier: MIT
// Package calculator: sentinel error set.
// Engine failures (matrix.ErrDimensionMismatch, matrix.ErrSingular, ...) pass
// through wrapped with the operation name; the sentinels below cover the
// dispatch and session layer only.

package calculator

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOperation is returned by ParseOperation and Evaluate for an
	// operation name or value outside the supported set.
	ErrUnknownOperation = errors.New("calculator: unknown operation")

	// ErrMissingOperand indicates that a required operand was nil.
	ErrMissingOperand = errors.New("calculator: missing operand")

	// ErrUnknownOperand indicates a Slot other than SlotA or SlotB.
	ErrUnknownOperand = errors.New("calculator: unknown operand slot")

	// ErrSizeOutOfRange is returned when a session size is outside [MinSize, MaxSize].
	ErrSizeOutOfRange = errors.New("calculator: size out of range")

	// ErrStale is returned by Session.Compute when a newer request or an input
	// change superseded the computation; its result was not published.
	ErrStale = errors.New("calculator: stale result discarded")
)

// calcErrorf tags err with the operation or method name, keeping errors.Is intact.
func calcErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
