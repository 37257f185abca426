// SPDX-License-Identifier: MIT

package cp_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvtensor/cp"
)

var sinkFit float64

func BenchmarkHOPM_16x16x16_R4(b *testing.B) {
	x := mustRandom3(b, 16, 16, 16, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := cp.HOPM(context.Background(), x, 4, cp.WithMaxIterations(10), cp.WithNoTolerance())
		if err != nil {
			b.Fatal(err)
		}
		sinkFit = res.Fit
	}
}

func BenchmarkHOPM_Restarts4(b *testing.B) {
	x := mustRandom3(b, 16, 16, 16, 2)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := cp.HOPM(context.Background(), x, 4, cp.WithMaxIterations(10), cp.WithRestarts(4))
		if err != nil {
			b.Fatal(err)
		}
		sinkFit = res.Fit
	}
}
