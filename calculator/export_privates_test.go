// SPDX-License-Identifier: MIT

package calculator

// Test bridge: exposes session internals to calculator_test only.
// Being a _test.go file in package calculator, it never reaches production builds.

// HoldInflight occupies the in-flight slot until the returned func is called.
func HoldInflight(s *Session) (release func()) {
	if !s.inflight.TryAcquire(1) {
		panic("calculator: HoldInflight: slot already held")
	}

	return func() { s.inflight.Release(1) }
}

// RequestCounter returns the current value of the request/input counter.
func RequestCounter(s *Session) uint64 { return s.seq.Load() }
