// SPDX-License-Identifier: MIT

// Benchmarks for the 2×2 and 3×3 kernels, on *Dense and through the
// Matrix interface.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvcalc/matrix"
)

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkF float64
)

var benchRows = map[int][][]float64{
	2: {{4, 7}, {2, 6}},
	3: {{2, -3, 1}, {2, 0, -1}, {1, 4, 5}},
}

func mustFromRows(b *testing.B, rows [][]float64) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkDeterminant(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{2, 3} {
		m := mustFromRows(b, benchRows[n])
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				d, err := matrix.Determinant(m)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
		b.Run(fmt.Sprintf("n=%d/interface", n), func(b *testing.B) {
			h := hide{m}
			for i := 0; i < b.N; i++ {
				d, err := matrix.Determinant(h)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{2, 3} {
		m := mustFromRows(b, benchRows[n])
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				p, err := matrix.Mul(m, m)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = p
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	m := mustFromRows(b, benchRows[2])
	for i := 0; i < b.N; i++ {
		inv, err := matrix.Inverse(m)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = inv
	}
}
