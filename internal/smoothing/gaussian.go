package smoothing

import (
	"math"

	"calibgrid/pkg/contracts/domain"
)

// gaussian builds a truncated Gaussian kernel pass. The kernel radius is
// ceil(3*sigma), which captures essentially all of the distribution's mass.
// The kernel is normalized over the full, untruncated kernel once, and each
// cell renormalizes by the weights it actually used: neighbors outside the
// grid, outside the mask, or non-numeric contribute nothing, so edge cells
// are not artificially pulled toward zero. That same per-cell
// renormalization makes clamping the radius to maxRadius exact, since the
// clamped-away weights could never be used; without the clamp an oversized
// sigma would size the kernel allocation off user input.
func gaussian(sigma float64, maxRadius int) cellFunc {
	radius := maxRadius
	if r := math.Ceil(3 * sigma); r < float64(maxRadius) {
		radius = int(r)
	}
	kernel := gaussianKernel(radius, sigma)

	return func(grid domain.Grid, mask domain.Mask, row, col int, self float64) (float64, bool) {
		weightedSum := 0.0
		weightUsed := 0.0
		for dr := -radius; dr <= radius; dr++ {
			for dc := -radius; dc <= radius; dc++ {
				v, ok := neighborValue(grid, mask, row+dr, col+dc)
				if !ok {
					continue
				}
				w := kernel[dr+radius][dc+radius]
				weightedSum += v * w
				weightUsed += w
			}
		}
		if weightUsed == 0 {
			return 0, false
		}
		return weightedSum / weightUsed, true
	}
}

// gaussianKernel returns a (2r+1)x(2r+1) kernel with weights
// exp(-(di²+dj²)/(2σ²)), normalized to sum to 1.
func gaussianKernel(radius int, sigma float64) [][]float64 {
	side := 2*radius + 1
	kernel := make([][]float64, side)
	total := 0.0
	for i := range kernel {
		kernel[i] = make([]float64, side)
		for j := range kernel[i] {
			di := float64(i - radius)
			dj := float64(j - radius)
			w := math.Exp(-(di*di + dj*dj) / (2 * sigma * sigma))
			kernel[i][j] = w
			total += w
		}
	}
	for i := range kernel {
		for j := range kernel[i] {
			kernel[i][j] /= total
		}
	}
	return kernel
}
