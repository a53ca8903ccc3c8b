package smoothing

import "calibgrid/pkg/contracts/domain"

// axisOffsets are the four immediate neighbor directions used by bilinear
// interpolation and blank filling.
var axisOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// bilinear averages a cell with whichever of its four axis neighbors are in
// bounds, inside the mask, and numeric. The divisor is 1+count, so the
// cell's own value always participates; with no usable neighbor the cell
// passes through.
func bilinear(grid domain.Grid, mask domain.Mask, row, col int, self float64) (float64, bool) {
	sum := self
	count := 0
	for _, off := range axisOffsets {
		v, ok := neighborValue(grid, mask, row+off[0], col+off[1])
		if !ok {
			continue
		}
		sum += v
		count++
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(1+count), true
}
