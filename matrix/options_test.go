// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/matrixlab/matrix"
)

func TestOptions_Defaults(t *testing.T) {
	o := matrix.NewOptions()

	assert.Equal(t, matrix.DefaultSingularEpsilon, o.SingularEpsilon())
	assert.Equal(t, matrix.DefaultEpsilon, o.Tolerance())
	assert.Equal(t, matrix.DeterminantCofactor, o.DeterminantMethod())
	assert.Equal(t, matrix.EigenClosedForm, o.EigenSolver())
	assert.False(t, o.RealEigenvaluesOnly())
}

func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.NewOptions(
		matrix.WithDeterminantMethod(matrix.DeterminantLU),
		matrix.WithSingularEpsilon(1e-3),
		matrix.WithDeterminantMethod(matrix.DeterminantCofactor),
		matrix.WithEigenSolver(matrix.EigenQR),
		matrix.WithRealEigenvaluesOnly(),
		matrix.WithTolerance(0.5),
		nil,
	)

	assert.Equal(t, 1e-3, o.SingularEpsilon())
	assert.Equal(t, 0.5, o.Tolerance())
	assert.Equal(t, matrix.DeterminantCofactor, o.DeterminantMethod())
	assert.Equal(t, matrix.EigenQR, o.EigenSolver())
	assert.True(t, o.RealEigenvaluesOnly())
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	ExpectPanic(t, func() { matrix.WithSingularEpsilon(-1) })
	ExpectPanic(t, func() { matrix.WithSingularEpsilon(math.NaN()) })
	ExpectPanic(t, func() { matrix.WithTolerance(math.Inf(1)) })
	ExpectPanic(t, func() { matrix.WithDeterminantMethod(matrix.DeterminantMethod(42)) })
	ExpectPanic(t, func() { matrix.WithEigenSolver(matrix.EigenSolver(-1)) })
}

func TestOptions_Strings(t *testing.T) {
	assert.Equal(t, "cofactor", matrix.DeterminantCofactor.String())
	assert.Equal(t, "lu", matrix.DeterminantLU.String())
	assert.Equal(t, "closed", matrix.EigenClosedForm.String())
	assert.Equal(t, "qr", matrix.EigenQR.String())
	assert.Equal(t, "unknown", matrix.EigenSolver(9).String())
}
