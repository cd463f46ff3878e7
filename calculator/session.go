// SPDX-License-Identifier: MIT
//
// File: session.go
// Role: per-UI-instance state: two square operands, the displayed result and
//       the request-sequence guard that keeps stale results off the display.
// Policy:
//   - Operands are immutable *matrix.Dense snapshots; every edit swaps in a
//     modified copy, so a snapshot handed to Compute never changes under it.
//   - Every input change and every Compute draws a new number from one
//     monotonic counter. A computation publishes only if its number is still
//     the latest when it finishes.
//   - At most one computation runs at a time (weighted semaphore of size 1).
// Locking:
//   - mu guards size, a, b and last. Input changes bump the counter while
//     holding the write lock, so a (snapshot, seq) pair is always consistent.

package calculator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/katalvlaran/matrixlab/matrix"
)

// Slot names one of the two session operands.
type Slot int

const (
	SlotA Slot = iota
	SlotB
)

// String returns "A" or "B".
func (s Slot) String() string {
	switch s {
	case SlotA:
		return "A"
	case SlotB:
		return "B"
	default:
		return "?"
	}
}

// Session is the state behind one calculator view.
// All methods are safe for concurrent use.
type Session struct {
	mu   sync.RWMutex
	size int
	a, b *matrix.Dense
	last *Result

	seq      atomic.Uint64
	inflight *semaphore.Weighted

	log        *slog.Logger
	engineOpts []matrix.Option
}

// NewSession creates a session with zero-filled size×size operands.
//
// Errors:
//   - ErrSizeOutOfRange if size is outside [MinSize, MaxSize].
func NewSession(size int, opts ...SessionOption) (*Session, error) {
	if err := validateSize(size); err != nil {
		return nil, calcErrorf("NewSession", err)
	}
	cfg := gatherSessionOptions(opts...)
	s := &Session{
		inflight:   semaphore.NewWeighted(1),
		log:        cfg.logger,
		engineOpts: cfg.engineOpts,
	}
	s.reset(size)

	return s, nil
}

func validateSize(n int) error {
	if n < MinSize || n > MaxSize {
		return fmt.Errorf("size %d not in [%d, %d]: %w", n, MinSize, MaxSize, ErrSizeOutOfRange)
	}

	return nil
}

// reset installs fresh zero operands and drops the result. n must have
// passed validateSize. Caller holds mu (or owns s exclusively).
func (s *Session) reset(n int) {
	s.size, s.a, s.b, s.last = n, zeroSquare(n), zeroSquare(n), nil
	s.seq.Add(1)
}

// zeroSquare builds an n×n zero operand; n ≥ MinSize.
func zeroSquare(n int) *matrix.Dense {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}

	return matrix.MustFromRows(rows)
}

// Size returns the current operand dimension n (operands are n×n).
func (s *Session) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.size
}

// Resize discards both operands and the displayed result, starting over at n×n.
// On error the session is unchanged.
func (s *Session) Resize(n int) error {
	if err := validateSize(n); err != nil {
		return calcErrorf("Resize", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset(n)
	s.log.Debug("session resized", "size", n)

	return nil
}

// Clear zeros both operands and drops the displayed result.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset(s.size)
	s.log.Debug("session cleared", "size", s.size)
}

// slotRef returns the field holding operand which. Caller holds mu.
func (s *Session) slotRef(which Slot) (**matrix.Dense, error) {
	switch which {
	case SlotA:
		return &s.a, nil
	case SlotB:
		return &s.b, nil
	default:
		return nil, fmt.Errorf("slot %d: %w", int(which), ErrUnknownOperand)
	}
}

// Operand returns a private copy of operand which.
func (s *Session) Operand(which Slot) (*matrix.Dense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ref, err := s.slotRef(which)
	if err != nil {
		return nil, calcErrorf("Operand", err)
	}

	return cloneDense(*ref), nil
}

// SetCell writes v at (i, j) of operand which.
// The operand is replaced by a modified copy; snapshots taken earlier keep
// their old values. The displayed result is dropped.
//
// Errors:
//   - ErrUnknownOperand, matrix.ErrOutOfRange, matrix.ErrNaNInf.
func (s *Session) SetCell(which Slot, i, j int, v float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ref, err := s.slotRef(which)
	if err != nil {
		return calcErrorf("SetCell", err)
	}
	next := cloneDense(*ref)
	if err = next.Set(i, j, v); err != nil {
		return calcErrorf("SetCell", err)
	}
	*ref = next
	s.inputChanged()

	return nil
}

// SetOperand replaces operand which with a copy of m, which must be n×n.
//
// Errors:
//   - ErrUnknownOperand, ErrMissingOperand (nil m),
//     matrix.ErrDimensionMismatch (shape differs from Size), matrix.ErrNaNInf.
func (s *Session) SetOperand(which Slot, m matrix.Matrix) error {
	if isNil(m) {
		return calcErrorf("SetOperand", ErrMissingOperand)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ref, err := s.slotRef(which)
	if err != nil {
		return calcErrorf("SetOperand", err)
	}
	if m.Rows() != s.size || m.Cols() != s.size {
		return calcErrorf("SetOperand", fmt.Errorf("%dx%d into %dx%d session: %w",
			m.Rows(), m.Cols(), s.size, s.size, matrix.ErrDimensionMismatch))
	}
	snap, err := snapshot(m)
	if err != nil {
		return calcErrorf("SetOperand", err)
	}
	*ref = snap
	s.inputChanged()

	return nil
}

// inputChanged invalidates the displayed result and any computation in flight.
// Caller holds mu for writing.
func (s *Session) inputChanged() {
	s.last = nil
	s.seq.Add(1)
}

// Compute evaluates op over the current operands and publishes the result.
//
// Implementation:
//   - Stage 1: under the read lock, snapshot (A, B) and draw the request number.
//   - Stage 2: wait for the in-flight slot (honours ctx).
//   - Stage 3: drop the request if something newer arrived while waiting.
//   - Stage 4: evaluate; on success publish as Last unless superseded.
//
// Errors:
//   - ctx.Err() while waiting for the in-flight slot.
//   - ErrStale when superseded; Last is left untouched.
//   - Any Evaluate error; Last is left untouched.
func (s *Session) Compute(ctx context.Context, op Operation) (Result, error) {
	s.mu.RLock()
	a, b := s.a, s.b
	seq := s.seq.Add(1)
	s.mu.RUnlock()

	if err := s.inflight.Acquire(ctx, 1); err != nil {
		return Result{}, calcErrorf(op.String(), err)
	}
	defer s.inflight.Release(1)

	if s.seq.Load() != seq {
		s.log.Debug("compute dropped before start", "op", op, "seq", seq)
		return Result{}, calcErrorf(op.String(), ErrStale)
	}

	s.log.Debug("compute start", "op", op, "seq", seq, "size", a.Rows())
	res, err := Evaluate(op, a, b, s.engineOpts...)
	if err != nil {
		s.log.Debug("compute failed", "op", op, "seq", seq, "err", err)
		return Result{}, err
	}
	res.Seq = seq

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq.Load() != seq {
		s.log.Debug("compute stale", "op", op, "seq", seq, "latest", s.seq.Load())
		return Result{}, calcErrorf(op.String(), ErrStale)
	}
	published := res
	s.last = &published
	s.log.Debug("compute done", "op", op, "seq", seq, "kind", res.Kind)

	return res, nil
}

// Last returns a copy of the displayed result, if any.
func (s *Session) Last() (Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return Result{}, false
	}
	out := *s.last
	if out.Matrix != nil {
		out.Matrix = cloneDense(out.Matrix)
	}
	if out.Eigenvalues != nil {
		out.Eigenvalues = append([]complex128(nil), out.Eigenvalues...)
	}

	return out, true
}

func cloneDense(d *matrix.Dense) *matrix.Dense {
	return d.Clone().(*matrix.Dense)
}

// snapshot copies any Matrix into a fresh *Dense (finite entries only).
func snapshot(m matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return cloneDense(d), nil
	}
	rows := make([][]float64, m.Rows())
	for i := range rows {
		rows[i] = make([]float64, m.Cols())
		for j := range rows[i] {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			rows[i][j] = v
		}
	}

	return matrix.NewFromRows(rows)
}
