// Package fill extrapolates values into blank calibration-grid cells from
// the nearest non-blank cell in each axis direction, weighted by inverse
// distance. Non-blank cells, including text labels, are never rewritten.
package fill

import (
	"log/slog"

	"calibgrid/internal/cellvalue"
	"calibgrid/pkg/contracts/domain"
)

// minOutputDecimals is the floor on decimal places for filled cells.
const minOutputDecimals = 1

// directions are the four axis walks a blank cell searches along.
var directions = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// source is one direction's contribution to a filled value.
type source struct {
	value         float64
	distance      int
	decimalPlaces int
}

// Filler fills blank grid cells by inverse-distance-weighted extrapolation.
type Filler struct {
	logger *slog.Logger
}

// NewFiller creates a filler. A nil logger falls back to slog.Default.
func NewFiller(logger *slog.Logger) *Filler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Filler{logger: logger.With(slog.String("component", "blank_filler"))}
}

// Fill returns a new grid with in-mask blank cells replaced where at least
// one axis direction reaches a numeric cell. Every blank cell searches the
// original grid independently, so values filled in this pass are never used
// as sources for other cells and a second pass changes nothing.
func (f *Filler) Fill(grid domain.Grid, mask domain.Mask) domain.Grid {
	out := grid.Clone()
	filled := 0

	for row := mask.StartRow(); row < len(grid); row++ {
		for col := mask.StartCol(); col < len(grid[row]); col++ {
			if !cellvalue.IsBlank(grid[row][col]) {
				continue
			}
			sources := findSources(grid, mask, row, col)
			if len(sources) == 0 {
				continue
			}
			out[row][col] = weightedValue(sources)
			filled++
		}
	}

	f.logger.Debug("filled blank cells",
		slog.Int("filled", filled),
		slog.Int("rows", grid.Rows()),
	)
	return out
}

// findSources walks outward from (row, col) in each axis direction until the
// first non-blank cell inside the mask. A cell that is non-blank but does
// not parse numerically blocks its direction: the search never continues
// past a label.
func findSources(grid domain.Grid, mask domain.Mask, row, col int) []source {
	var sources []source
	for _, dir := range directions {
		r, c := row, col
		distance := 0
		for {
			r += dir[0]
			c += dir[1]
			distance++
			if !mask.Contains(r, c) || !grid.InBounds(r, c) {
				break
			}
			raw := grid[r][c]
			if cellvalue.IsBlank(raw) {
				continue
			}
			if cv := cellvalue.Parse(raw); cv.Valid {
				sources = append(sources, source{
					value:         cv.Value,
					distance:      distance,
					decimalPlaces: cv.DecimalPlaces,
				})
			}
			break
		}
	}
	return sources
}

// weightedValue combines the found sources with weight 1/distance and
// formats the result with the largest precision any source carried, but at
// least one decimal place.
func weightedValue(sources []source) string {
	weightedSum := 0.0
	weightTotal := 0.0
	places := minOutputDecimals
	for _, s := range sources {
		w := 1 / float64(s.distance)
		weightedSum += s.value * w
		weightTotal += w
		if s.decimalPlaces > places {
			places = s.decimalPlaces
		}
	}
	return cellvalue.Format(weightedSum/weightTotal, places)
}
