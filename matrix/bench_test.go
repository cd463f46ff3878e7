// Package matrix_test provides benchmarks for the matrix kernels,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/matrixlab/matrix"
)

// benchSizes span the calculator grid; cofactor expansion is O(n!) so the
// determinant family stays small.
var benchSizes = []int{2, 3, 5}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkF float64
	sinkC []complex128
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilledDense(b, n, n, 1337)
			B := RandFilledDense(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilledDense(b, n, n, 3)
			B := RandFilledDense(b, n, n, 4)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilledDense(b, n, n, 5)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Transpose(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkDet(b *testing.B) {
	b.ReportAllocs()
	for _, method := range []matrix.DeterminantMethod{matrix.DeterminantCofactor, matrix.DeterminantLU} {
		for _, n := range benchSizes {
			b.Run(fmt.Sprintf("%s/n=%d", method, n), func(b *testing.B) {
				A := RandFilledDense(b, n, n, 6)
				opt := matrix.WithDeterminantMethod(method)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					d, err := matrix.Det(A, opt)
					if err != nil {
						b.Fatal(err)
					}
					sinkF = d
				}
			})
		}
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			// diagonally dominant so the fixture is never singular
			A := RandFilledDense(b, n, n, 7)
			for k := 0; k < n; k++ {
				MustSet(b, A, k, k, 100)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Inverse(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkEigenvalues(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilledDense(b, n, n, 8)
			opt := matrix.WithEigenSolver(matrix.EigenQR)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				vals, err := matrix.Eigenvalues(A, opt)
				if err != nil {
					b.Fatal(err)
				}
				sinkC = vals
			}
		})
	}
}
