// SPDX-License-Identifier: MIT

package equation_test

import (
	"testing"

	"github.com/katalvlaran/lvcalc/equation"
)

// sink to defeat dead-code elimination
var sinkCubic equation.CubicSolution

// (x−1)(x−2)(x−3): three real roots, every seed converges.
func BenchmarkCubic_Newton(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sol, err := equation.Cubic(1, -6, 11, -6)
		if err != nil {
			b.Fatal(err)
		}
		sinkCubic = sol
	}
}

// x³ + 1e18: no seed converges, the scan runs to the iteration cap.
func BenchmarkCubic_NewtonFallback(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sol, err := equation.Cubic(1, 0, 0, 1e18)
		if err != nil {
			b.Fatal(err)
		}
		sinkCubic = sol
	}
}

func BenchmarkCubic_Cardano(b *testing.B) {
	b.ReportAllocs()
	opt := equation.WithMethod(equation.Cardano)
	for i := 0; i < b.N; i++ {
		sol, err := equation.Cubic(1, -6, 11, -6, opt)
		if err != nil {
			b.Fatal(err)
		}
		sinkCubic = sol
	}
}
