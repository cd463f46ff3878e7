// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of the
// algebra kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Defaults reproduce the interactive calculator: cofactor determinant,
//     closed-form 2×2 eigenvalues, singular threshold 1e-10.
//   - DeterminantLU and EigenQR are opt-in and delegate to gonum. LU
//     determinants of integral input are rounded to the exact integer;
//     otherwise they may differ from the cofactor path in the last bits.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultSingularEpsilon is the fixed |det| threshold below which Inverse
	// reports ErrSingular. Determinants smaller than this are non-invertible,
	// not merely "small".
	DefaultSingularEpsilon = 1e-10

	// DefaultEpsilon is the tolerance used by tolerance-based comparisons.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true

	// MaxCofactorOrder caps Laplace expansion (O(n!)); larger inputs need DeterminantLU.
	MaxCofactorOrder = 10
)

// DeterminantMethod selects the determinant algorithm used by Det and Inverse.
type DeterminantMethod int

const (
	// DeterminantCofactor is recursive Laplace expansion along the first row.
	DeterminantCofactor DeterminantMethod = iota
	// DeterminantLU is LU factorization with partial pivoting (gonum).
	DeterminantLU
)

// String returns the CLI spelling of the method.
func (d DeterminantMethod) String() string {
	switch d {
	case DeterminantCofactor:
		return "cofactor"
	case DeterminantLU:
		return "lu"
	default:
		return "unknown"
	}
}

// EigenSolver selects how Eigenvalues treats matrices larger than 2×2.
type EigenSolver int

const (
	// EigenClosedForm solves 1×1 and 2×2 analytically; n>2 is ErrNotImplemented.
	EigenClosedForm EigenSolver = iota
	// EigenQR additionally solves n>2 with the Hessenberg-QR algorithm (gonum).
	EigenQR
)

// String returns the CLI spelling of the solver.
func (e EigenSolver) String() string {
	switch e {
	case EigenClosedForm:
		return "closed"
	case EigenQR:
		return "qr"
	default:
		return "unknown"
	}
}

// Behavioral defaults.
const (
	DefaultDeterminantMethod   = DeterminantCofactor
	DefaultEigenSolver         = EigenClosedForm
	DefaultRealEigenvaluesOnly = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "matrix: WithSingularEpsilon: eps must be finite, non-negative"
	panicDetMethod        = "matrix: WithDeterminantMethod: unknown method"
	panicEigenSolver      = "matrix: WithEigenSolver: unknown solver"
	panicToleranceInvalid = "matrix: WithTolerance: tol must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	singularEps float64           // >= 0; DefaultSingularEpsilon
	tol         float64           // >= 0; DefaultEpsilon
	detMethod   DeterminantMethod // DefaultDeterminantMethod
	eigenSolver EigenSolver       // DefaultEigenSolver
	realOnly    bool              // DefaultRealEigenvaluesOnly
}

// SingularEpsilon returns the resolved singular threshold.
func (o Options) SingularEpsilon() float64 { return o.singularEps }

// Tolerance returns the resolved comparison tolerance.
func (o Options) Tolerance() float64 { return o.tol }

// DeterminantMethod returns the resolved determinant algorithm.
func (o Options) DeterminantMethod() DeterminantMethod { return o.detMethod }

// EigenSolver returns the resolved eigen solver.
func (o Options) EigenSolver() EigenSolver { return o.eigenSolver }

// RealEigenvaluesOnly reports whether complex eigenvalues are refused.
func (o Options) RealEigenvaluesOnly() bool { return o.realOnly }

// ---------- Constructors (WithX) ----------

// WithSingularEpsilon sets the |det| threshold used by Inverse.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Notes:
//   - eps == 0 only rejects exactly-zero determinants.
func WithSingularEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.singularEps = eps }
}

// WithTolerance sets the tolerance used by tolerance-based helpers (Equal).
// Panics when tol is NaN, ±Inf or negative.
func WithTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithDeterminantMethod selects the determinant algorithm for Det and Inverse.
// Panics on values outside the declared DeterminantMethod constants.
//
// Notes:
//   - DeterminantLU pivots rows, so for non-integral input its result may
//     differ from DeterminantCofactor in the last few ulps. For integral
//     input with |det| < 2^53 the LU result is rounded to the nearest
//     integer, so both methods return the same value.
func WithDeterminantMethod(m DeterminantMethod) Option {
	if m != DeterminantCofactor && m != DeterminantLU {
		panic(panicDetMethod)
	}

	return func(o *Options) { o.detMethod = m }
}

// WithEigenSolver selects the eigen solver used for n>2.
// Panics on values outside the declared EigenSolver constants.
func WithEigenSolver(s EigenSolver) Option {
	if s != EigenClosedForm && s != EigenQR {
		panic(panicEigenSolver)
	}

	return func(o *Options) { o.eigenSolver = s }
}

// WithRealEigenvaluesOnly refuses complex eigenvalues with ErrNotImplemented
// instead of returning conjugate pairs (the interactive tool's behavior).
func WithRealEigenvaluesOnly() Option {
	return func(o *Options) { o.realOnly = true }
}

// NewOptions resolves opts against the defaults; exposed for callers that
// need to inspect the effective policy (e.g. the CLI's verbose output).
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// gatherOptions applies user setters over defaults; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		singularEps: DefaultSingularEpsilon,
		tol:         DefaultEpsilon,
		detMethod:   DefaultDeterminantMethod,
		eigenSolver: DefaultEigenSolver,
		realOnly:    DefaultRealEigenvaluesOnly,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
