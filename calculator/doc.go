// Package calculator dispatches calculator operations onto the matrix engine
// and keeps the state of one calculator view.
//
// Evaluate is the stateless entry point: it maps an Operation (add, sub, mul,
// transpose, det, inverse, trace, eigen) to the matching matrix kernel and
// returns a Result tagged with its Kind.
//
// Session models the interactive tool: two n×n operands (1 ≤ n ≤ 5) edited
// cell by cell, and the result currently on display. Edits never mutate a
// matrix in place; they swap in a modified copy. Compute runs at most one
// computation at a time and refuses to publish a result that a newer request
// or an input change has superseded (ErrStale), so the display never goes
// backwards.
//
//	s, _ := calculator.NewSession(2)
//	_ = s.SetCell(calculator.SlotA, 0, 0, 4)
//	res, err := s.Compute(ctx, calculator.OpDet)
//
// Errors from the engine (matrix.ErrDimensionMismatch, matrix.ErrNonSquare,
// matrix.ErrSingular, matrix.ErrNotImplemented) pass through wrapped with the
// operation name and remain matchable with errors.Is.
package calculator
