// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication, transpose,
// scalar scaling, determinant, adjugate, inverse, trace and eigenvalues.
// All functions perform strict fail-fast validation and return clear errors
// before any result is allocated.
//
// Purpose:
//   - Canonical linear-algebra kernels used by the calculator and the CLI.
//   - Operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Every kernel is a pure function: operands are read, never written, and
//     the result is always a freshly allocated *Dense (or a scalar/slice).
//   - The determinant defaults to Laplace expansion, which is O(n!) and only
//     meant for the small grids a calculator exposes (≤5×5). See options.go.

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
)

// ZeroSum is the initial value for dot products and other accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opMinor       = "Minor"
	opDet         = "Det"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
	opTrace       = "Trace"
	opEigenvalues = "Eigenvalues"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m as *Dense without copying when it already is one,
// otherwise materializes it through At. The result is treated as read-only.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation, and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateBinarySameShape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (rowsA≠rowsB or colsA≠colsB).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides;
//     otherwise use i→j→k through At.
//
// Behavior highlights:
//   - Each C[i,j] is Σ_k A[i,k]·B[k,j] accumulated from zero in increasing k,
//     in plain float64 arithmetic. Both paths add the same terms in the same
//     order, so they agree bit for bit.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Always succeeds for a non-nil matrix; Transpose(Transpose(A)) == A exactly.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (alpha not finite).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if isNonFinite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := src.cloneDense()
	for idx := range res.data {
		res.data[idx] *= alpha
	}

	return res, nil
}

// Minor returns A with row r and column c removed.
// Implementation:
//   - Stage 1: validate non-nil, square, n ≥ 2 and 0 ≤ r,c < n.
//   - Stage 2: build the kept index lists and delegate to Dense.Induced.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions (1×1 has no minor), ErrOutOfRange.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Minor(m Matrix, r, c int) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if d.r < 2 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}
	if r < 0 || r >= d.r || c < 0 || c >= d.c {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", r, c, ErrOutOfRange))
	}

	return d.Induced(skipIndex(d.r, r), skipIndex(d.c, c))
}

// skipIndex returns 0..n-1 without skip.
func skipIndex(n, skip int) []int {
	idx := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != skip {
			idx = append(idx, i)
		}
	}

	return idx
}

// minorData is the allocation-light minor used inside the cofactor recursion.
func minorData(data []float64, n, r, c int) []float64 {
	out := make([]float64, 0, (n-1)*(n-1))
	var i, j int
	for i = 0; i < n; i++ {
		if i == r {
			continue
		}
		for j = 0; j < n; j++ {
			if j == c {
				continue
			}
			out = append(out, data[i*n+j])
		}
	}

	return out
}

// cofactorSign returns (−1)^(i+j).
func cofactorSign(i, j int) float64 {
	if (i+j)%2 == 0 {
		return 1
	}

	return -1
}

// detCofactor is Laplace expansion along row 0 on a flat n×n buffer.
//
//	n == 1 → a
//	n == 2 → ad − bc
//	n  > 2 → Σ_i a[0][i]·(−1)^i·det(minor(a, 0, i))
func detCofactor(data []float64, n int) float64 {
	switch n {
	case 1:
		return data[0]
	case 2:
		return data[0]*data[3] - data[1]*data[2]
	}
	det := ZeroSum
	for i := 0; i < n; i++ {
		det += data[i] * cofactorSign(0, i) * detCofactor(minorData(data, n, 0, i), n-1)
	}

	return det
}

// maxExactInt is 2^53: every integer of smaller magnitude is a float64.
const maxExactInt = 1 << 53

// determinant dispatches on the configured method. d must be square.
// An LU result for integral input is snapped to the nearest integer, which
// is what the cofactor path computes exactly.
func determinant(d *Dense, o Options) (float64, error) {
	if o.detMethod == DeterminantLU {
		det := detLU(d)
		if allIntegral(d.data) && math.Abs(det) < maxExactInt {
			if det = math.Round(det); det == 0 {
				det = 0 // no −0
			}
		}

		return det, nil
	}
	if d.r > MaxCofactorOrder {
		return 0, fmt.Errorf("%d×%d: %w", d.r, d.c, ErrTooLarge)
	}

	return detCofactor(d.data, d.r), nil
}

// allIntegral reports whether every entry has no fractional part.
func allIntegral(data []float64) bool {
	for _, v := range data {
		if v != math.Trunc(v) {
			return false
		}
	}

	return true
}

// Det computes the determinant of a square matrix.
// MAIN DESCRIPTION:
//   - 1×1 returns the element, 2×2 returns ad − bc, larger inputs use
//     recursive cofactor expansion along the first row (default) or LU with
//     partial pivoting (WithDeterminantMethod(DeterminantLU)).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare; ErrTooLarge for cofactor above MaxCofactorOrder.
//
// Determinism:
//   - Fixed expansion order (columns 0..n-1 of row 0 at every level).
//
// Complexity:
//   - Cofactor: Time O(n!), LU: Time O(n³).
//
// Notes:
//   - For integral input the cofactor result is exact as long as every
//     intermediate product stays below 2^53. The LU result is rounded to the
//     nearest integer in that case, so both methods return the same value.
func Det(m Matrix, opts ...Option) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	det, err := determinant(d, gatherOptions(opts...))
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return det, nil
}

// adjugate builds adj[j][i] = (−1)^(i+j)·det(minor(A,i,j)). 1×1 → [[1]].
func adjugate(d *Dense, o Options) (*Dense, error) {
	n := d.r
	res, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	if n == 1 {
		res.data[0] = 1

		return res, nil
	}
	if o.detMethod == DeterminantCofactor && n-1 > MaxCofactorOrder {
		return nil, fmt.Errorf("%d×%d: %w", n, n, ErrTooLarge)
	}

	var i, j int
	var minorDet float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			sub := &Dense{r: n - 1, c: n - 1, data: minorData(d.data, n, i, j)}
			if minorDet, err = determinant(sub, o); err != nil {
				return nil, err
			}
			// transpose of the cofactor matrix: write (i,j) cofactor at (j,i)
			res.data[j*n+i] = cofactorSign(i, j) * minorDet
		}
	}

	return res, nil
}

// Adjugate returns the transpose of the cofactor matrix of a square matrix.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrTooLarge.
//
// Complexity:
//   - Cofactor: n² minors of order n−1, each O((n−1)!).
func Adjugate(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	res, err := adjugate(d, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return res, nil
}

// Inverse computes A⁻¹ for a square, non-singular matrix.
// MAIN DESCRIPTION:
//   - Computes det(A) first and refuses |det| < singular epsilon (1e-10 by
//     default) with ErrSingular; no partial result is produced.
//
// Implementation:
//   - Stage 1: validate non-nil and square; compute det with the configured method.
//   - Stage 2: reject a det that overflowed to ±Inf (ErrNaNInf), then the
//     singular check against WithSingularEpsilon.
//   - Stage 3: 1×1 → [[1/a]]; 2×2 → [[d, −b], [−c, a]]/det; n>2 → adjugate/det.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular, ErrTooLarge.
//   - ErrNaNInf: det overflowed float64 range.
//
// Complexity:
//   - 2×2: O(1). Cofactor n>2: O(n²·(n−1)!). LU: O(n⁵) via LU minors.
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)
	det, err := determinant(d, o)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if isNonFinite(det) {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det=%g: %w", det, ErrNaNInf))
	}
	if math.Abs(det) < o.singularEps {
		return nil, matrixErrorf(opInverse, fmt.Errorf("|det|=%g < %g: %w", math.Abs(det), o.singularEps, ErrSingular))
	}

	n := d.r
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	switch n {
	case 1:
		res.data[0] = 1 / d.data[0]
	case 2:
		a, b, c, dd := d.data[0], d.data[1], d.data[2], d.data[3]
		res.data[0] = dd / det
		res.data[1] = -b / det
		res.data[2] = -c / det
		res.data[3] = a / det
	default:
		adj, err := adjugate(d, o)
		if err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for idx, v := range adj.data {
			res.data[idx] = v / det
		}
	}

	return res, nil
}

// Trace returns Σ_i A[i][i] for a square matrix.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n), Space O(1).
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	sum := ZeroSum
	var v float64
	var err error
	for i := 0; i < m.Rows(); i++ {
		if v, err = m.At(i, i); err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
		sum += v
	}

	return sum, nil
}

// Eigenvalues returns the eigenvalues of a square matrix as complex128 values.
// MAIN DESCRIPTION:
//   - 1×1: [a].
//   - 2×2: tr = a+d, det = ad−bc, disc = tr²−4·det.
//     disc ≥ 0 → [(tr+√disc)/2, (tr−√disc)/2] with zero imaginary parts.
//     disc < 0 → the conjugate pair (tr ± i·√−disc)/2, "+" first.
//   - n>2: ErrNotImplemented with the default solver; EigenQR delegates to
//     the Hessenberg-QR algorithm and orders values by real part descending,
//     then imaginary part descending.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrNaNInf: the 2×2 discriminant overflowed.
//   - ErrNotImplemented: n>2 under EigenClosedForm, or any complex value
//     under WithRealEigenvaluesOnly.
//   - ErrEigenFailed: the QR iteration did not converge.
//
// Notes:
//   - The "+√" first order is a convention kept stable for callers and tests,
//     not a mathematical requirement.
//
// AI-Hints:
//   - Use RealParts to get []float64 when every value is known to be real.
func Eigenvalues(m Matrix, opts ...Option) ([]complex128, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opEigenvalues, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opEigenvalues, err)
	}
	o := gatherOptions(opts...)

	var vals []complex128
	switch n := d.r; {
	case n == 1:
		vals = []complex128{complex(d.data[0], 0)}
	case n == 2:
		if vals, err = eigen2x2(d.data[0], d.data[1], d.data[2], d.data[3]); err != nil {
			return nil, matrixErrorf(opEigenvalues, err)
		}
	case o.eigenSolver == EigenQR:
		if vals, err = eigenQR(d); err != nil {
			return nil, matrixErrorf(opEigenvalues, err)
		}
	default:
		return nil, matrixErrorf(opEigenvalues,
			fmt.Errorf("%d×%d with %s solver: %w", n, n, o.eigenSolver, ErrNotImplemented))
	}

	if o.realOnly {
		for _, v := range vals {
			if imag(v) != 0 {
				return nil, matrixErrorf(opEigenvalues, fmt.Errorf("complex eigenvalue %v: %w", v, ErrNotImplemented))
			}
		}
	}

	return vals, nil
}

// eigen2x2 solves λ² − tr·λ + det = 0 for [[a, b], [c, d]].
// Fails with ErrNaNInf when tr² or 4·det overflows.
func eigen2x2(a, b, c, d float64) ([]complex128, error) {
	tr := a + d
	det := a*d - b*c
	disc := tr*tr - 4*det
	if isNonFinite(disc) {
		return nil, fmt.Errorf("discriminant=%g: %w", disc, ErrNaNInf)
	}
	if disc < 0 {
		s := cmplx.Sqrt(complex(disc, 0)) // i·√−disc
		return []complex128{
			(complex(tr, 0) + s) / 2,
			(complex(tr, 0) - s) / 2,
		}, nil
	}
	s := math.Sqrt(disc)

	return []complex128{
		complex((tr+s)/2, 0),
		complex((tr-s)/2, 0),
	}, nil
}

// RealParts returns the real parts of vals and whether every imaginary part is zero.
func RealParts(vals []complex128) ([]float64, bool) {
	out := make([]float64, len(vals))
	allReal := true
	for i, v := range vals {
		out[i] = real(v)
		if imag(v) != 0 {
			allReal = false
		}
	}

	return out, allReal
}
