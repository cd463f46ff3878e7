package calculator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixlab/calculator"
)

func TestParseOperation_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, op := range calculator.Operations() {
		got, err := calculator.ParseOperation(op.String())
		require.NoError(t, err)
		assert.Equal(t, op, got)
	}
}

func TestParseOperation_AliasesAndCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want calculator.Operation
	}{
		{"ADD", calculator.OpAdd},
		{" mul ", calculator.OpMul},
		{"Determinant", calculator.OpDet},
		{"eigenvalues", calculator.OpEigen},
	}
	for _, tc := range tests {
		got, err := calculator.ParseOperation(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := calculator.ParseOperation("divide")
	require.ErrorIs(t, err, calculator.ErrUnknownOperation)
}

func TestOperation_ArityAndString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, calculator.OpAdd.Arity())
	assert.Equal(t, 2, calculator.OpSub.Arity())
	assert.Equal(t, 2, calculator.OpMul.Arity())
	for _, op := range []calculator.Operation{
		calculator.OpTranspose, calculator.OpDet, calculator.OpInverse,
		calculator.OpTrace, calculator.OpEigen,
	} {
		assert.Equal(t, 1, op.Arity(), op.String())
	}

	assert.Len(t, calculator.Operations(), 8)
	assert.Equal(t, "inverse", calculator.OpInverse.String())
	assert.Equal(t, "unknown", calculator.Operation(99).String())
	assert.False(t, calculator.Operation(-1).Valid())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "matrix", calculator.KindMatrix.String())
	assert.Equal(t, "scalar", calculator.KindScalar.String())
	assert.Equal(t, "eigenvalues", calculator.KindEigenvalues.String())
	assert.Equal(t, "unknown", calculator.Kind(7).String())
}
