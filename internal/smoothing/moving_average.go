package smoothing

import "calibgrid/pkg/contracts/domain"

// movingAverage builds the square-window mean. An even window is widened by
// one: the algorithm needs a symmetric window, and normalizing quietly keeps
// the contract simple for hosts that pass user-typed sizes straight through.
// Note the window is square (Chebyshev distance), not the radius its name
// suggests; existing tables depend on that shape. The radius is clamped to
// maxRadius: anything wider only adds out-of-bounds neighbors.
func movingAverage(windowSize, maxRadius int) cellFunc {
	if windowSize%2 == 0 {
		windowSize++
	}
	radius := windowSize / 2
	if radius > maxRadius {
		radius = maxRadius
	}

	return func(grid domain.Grid, mask domain.Mask, row, col int, self float64) (float64, bool) {
		sum := 0.0
		count := 0
		for dr := -radius; dr <= radius; dr++ {
			for dc := -radius; dc <= radius; dc++ {
				v, ok := neighborValue(grid, mask, row+dr, col+dc)
				if !ok {
					continue
				}
				sum += v
				count++
			}
		}
		// count includes the cell itself, so this only trips when the
		// window somehow holds no numeric data at all.
		if count == 0 {
			return 0, false
		}
		return sum / float64(count), true
	}
}
