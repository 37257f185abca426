// SPDX-License-Identifier: MIT

package tucker_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvtensor/tucker"
)

var sinkFit float64

func BenchmarkHOOI_20x20x20_R5(b *testing.B) {
	x := mustRandom3(b, 20, 20, 20, 1)
	ranks := []int{5, 5, 5}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := tucker.HOOI(context.Background(), x, ranks, tucker.WithMaxIterations(5), tucker.WithNoTolerance())
		if err != nil {
			b.Fatal(err)
		}
		sinkFit = res.Fit
	}
}

func BenchmarkIncrementalHOOI_20x20x20_R6x2(b *testing.B) {
	x := mustRandom3(b, 20, 20, 20, 2)
	ranks := []int{6, 6, 6}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := tucker.IncrementalHOOI(context.Background(), x, ranks, 2, tucker.WithMaxIterations(5))
		if err != nil {
			b.Fatal(err)
		}
		sinkFit = res.Fit
	}
}
