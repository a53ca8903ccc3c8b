package gradient

import (
	"math"

	"calibgrid/internal/cellvalue"
	"calibgrid/pkg/contracts/domain"
)

// ValueRange is the numeric span of a grid's parseable cells.
type ValueRange struct {
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	HasValues bool    `json:"has_values"`
}

// Range scans every cell inside the mask and returns the min/max over cells
// that parse numerically. When nothing parses it returns the safe default
// span [0, 1] with HasValues false, so downstream normalization never
// divides by an undefined range.
func Range(grid domain.Grid, mask domain.Mask) ValueRange {
	vr := ValueRange{Min: 0, Max: 1}
	for r := mask.StartRow(); r < len(grid); r++ {
		for c := mask.StartCol(); c < len(grid[r]); c++ {
			cv := cellvalue.Parse(grid[r][c])
			if !cv.Valid {
				continue
			}
			if !vr.HasValues || cv.Value < vr.Min {
				vr.Min = cv.Value
			}
			if !vr.HasValues || cv.Value > vr.Max {
				vr.Max = cv.Value
			}
			vr.HasValues = true
		}
	}
	return vr
}

// ColorFor resolves a normalized value in [0,1] to a color by linear
// interpolation between the bracketing pair of stops. Values outside [0,1]
// are clamped.
func ColorFor(v float64, s Scheme) domain.RGB {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}

	stops := s.Stops
	if v <= stops[0].Position {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if v >= last.Position {
		return last.Color
	}
	for i := 0; i < len(stops)-1; i++ {
		lower, upper := stops[i], stops[i+1]
		if v < lower.Position || v > upper.Position {
			continue
		}
		factor := 0.0
		if span := upper.Position - lower.Position; span > 0 {
			factor = (v - lower.Position) / span
		}
		return domain.RGB{
			R: lerpChannel(lower.Color.R, upper.Color.R, factor),
			G: lerpChannel(lower.Color.G, upper.Color.G, factor),
			B: lerpChannel(lower.Color.B, upper.Color.B, factor),
		}
	}
	return last.Color
}

// CellColors derives the render colors for one cell value given the grid's
// own min/max. A flat dataset maps every cell to the scheme midpoint rather
// than dividing by zero. Text is black on bright backgrounds (luma > 128)
// and white otherwise.
func CellColors(v, min, max float64, s Scheme) domain.CellColors {
	normalized := 0.5
	if max != min {
		normalized = (v - min) / (max - min)
	}
	bg := ColorFor(normalized, s)

	text := domain.RGB{R: 255, G: 255, B: 255}
	if bg.Luma() > 128 {
		text = domain.RGB{}
	}
	return domain.CellColors{Background: bg, Text: text}
}

func lerpChannel(lower, upper int, factor float64) int {
	ch := int(math.Round(float64(lower) + (float64(upper)-float64(lower))*factor))
	if ch < 0 {
		return 0
	}
	if ch > 255 {
		return 255
	}
	return ch
}
