package smoothing

import (
	"context"
	"strconv"
	"testing"

	"calibgrid/pkg/contracts/domain"
)

func benchmarkGrid(rows, cols int) domain.Grid {
	grid := make(domain.Grid, rows)
	for r := range grid {
		grid[r] = make([]string, cols)
		for c := range grid[r] {
			grid[r][c] = strconv.Itoa((r*31 + c*17) % 100)
		}
	}
	return grid
}

func benchmarkSmooth(b *testing.B, req domain.SmoothingRequest) {
	b.Helper()
	s := NewSmoother(nil)
	grid := benchmarkGrid(64, 64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Smooth(context.Background(), grid, req); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMovingAverage(b *testing.B) {
	benchmarkSmooth(b, domain.SmoothingRequest{Method: domain.MethodMovingAverage, WindowSize: 5})
}

func BenchmarkGaussian(b *testing.B) {
	benchmarkSmooth(b, domain.SmoothingRequest{Method: domain.MethodGaussian, Sigma: 1.5})
}

func BenchmarkBilinear(b *testing.B) {
	benchmarkSmooth(b, domain.SmoothingRequest{Method: domain.MethodBilinear})
}
