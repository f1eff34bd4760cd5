// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/quantik/matrix"
)

// benchSizes are the matrix sizes to benchmark (operators on 4, 6 and 8 qubits).
var benchSizes = []int{16, 64, 256}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkV []complex128
	sinkB bool
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := MustDense(b, n, n), MustDense(b, n, n)
			fillDenseRand(b, A, 1337)
			fillDenseRand(b, B, 4242)
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
			A, B := MustDense(b, n, n), MustDense(b, n, n)
			fillDenseRand(b, A, 7)
			fillDenseRand(b, B, 11)
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

func BenchmarkAdjoint(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustDense(b, n, n)
			fillDenseRand(b, A, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Adjoint(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkKron(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{4, 8, 16} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := MustDense(b, n, n), MustDense(b, n, n)
			fillDenseRand(b, A, 3)
			fillDenseRand(b, B, 5)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Kron(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMatVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustDense(b, n, n)
			fillDenseRand(b, A, 21)
			x := make([]complex128, n)
			for i := range x {
				x[i] = complex(float64(i%7)-3, 1)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := matrix.MatVec(A, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = y
			}
		})
	}
}

func BenchmarkAllClose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustDense(b, n, n)
			fillDenseRand(b, A, 8)
			B := A.Clone()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ok, err := matrix.AllClose(A, B, 1e-5, 1e-8)
				if err != nil {
					b.Fatal(err)
				}
				sinkB = ok
			}
		})
	}
}
