// SPDX-License-Identifier: MIT

// Package matrix: bridges to gonum for the opt-in O(n³) paths.
//
// Both bridges copy the operand into a fresh gonum buffer, so gonum never
// aliases a *Dense owned by a caller.
package matrix

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// toGonum copies d into a new *mat.Dense (mat.NewDense adopts its slice).
func toGonum(d *Dense) *mat.Dense {
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return mat.NewDense(d.r, d.c, buf)
}

// detLU returns det(d) via LU factorization with partial pivoting.
// For a singular input the factorization still completes and Det reports 0
// (or a value within rounding of it), which Inverse then rejects.
func detLU(d *Dense) float64 {
	var lu mat.LU
	lu.Factorize(toGonum(d))

	return lu.Det()
}

// eigenQR computes all eigenvalues of a general real square matrix with the
// Hessenberg-QR algorithm and orders them by real part descending, then by
// imaginary part descending, so conjugate pairs come out "+i" first.
func eigenQR(d *Dense) ([]complex128, error) {
	var eig mat.Eigen
	if ok := eig.Factorize(toGonum(d), mat.EigenNone); !ok {
		return nil, ErrEigenFailed
	}
	vals := eig.Values(nil)
	slices.SortStableFunc(vals, func(a, b complex128) int {
		if c := cmp.Compare(real(b), real(a)); c != 0 {
			return c
		}

		return cmp.Compare(imag(b), imag(a))
	})

	return vals, nil
}
