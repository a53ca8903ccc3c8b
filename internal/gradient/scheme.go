// Package gradient maps numeric grid values onto gradient color schemes.
//
// The mapping is self-calibrating: every cell color is derived from the
// dataset's own min/max, never a fixed scale, so the same raw value renders
// differently in different tables. That behavior is intentional and relied
// on by hosts for heatmap rendering of calibration tables.
package gradient

import (
	"fmt"

	"calibgrid/pkg/contracts/domain"
)

// Stop anchors a color at a position along a gradient.
type Stop struct {
	Position float64
	Color    domain.RGB
}

// Scheme is a piecewise-linear gradient: an ordered sequence of at least two
// stops with non-decreasing positions, the first at 0 and the last at 1.
// Built-in schemes are immutable package-level tables, safe for concurrent
// use by any number of callers.
type Scheme struct {
	Name  domain.SchemeName
	Stops []Stop
}

var (
	thermal = Scheme{
		Name: domain.SchemeThermal,
		Stops: []Stop{
			{0.00, domain.RGB{R: 0, G: 0, B: 255}},
			{0.25, domain.RGB{R: 0, G: 255, B: 255}},
			{0.50, domain.RGB{R: 0, G: 255, B: 0}},
			{0.75, domain.RGB{R: 255, G: 255, B: 0}},
			{1.00, domain.RGB{R: 255, G: 0, B: 0}},
		},
	}

	automotive = Scheme{
		Name: domain.SchemeAutomotive,
		Stops: []Stop{
			{0.00, domain.RGB{R: 0, G: 153, B: 51}},
			{0.50, domain.RGB{R: 255, G: 255, B: 0}},
			{1.00, domain.RGB{R: 204, G: 0, B: 0}},
		},
	}

	viridis = Scheme{
		Name: domain.SchemeViridis,
		Stops: []Stop{
			{0.00, domain.RGB{R: 68, G: 1, B: 84}},
			{0.25, domain.RGB{R: 59, G: 82, B: 139}},
			{0.50, domain.RGB{R: 33, G: 145, B: 140}},
			{0.75, domain.RGB{R: 94, G: 201, B: 98}},
			{1.00, domain.RGB{R: 253, G: 231, B: 37}},
		},
	}

	grayscale = Scheme{
		Name: domain.SchemeGrayscale,
		Stops: []Stop{
			{0.00, domain.RGB{R: 255, G: 255, B: 255}},
			{1.00, domain.RGB{R: 0, G: 0, B: 0}},
		},
	}
)

// ByName resolves a scheme name to its built-in scheme. An unrecognized name
// is a programming error at the caller and fails fast.
func ByName(name domain.SchemeName) (Scheme, error) {
	switch name {
	case domain.SchemeThermal:
		return thermal, nil
	case domain.SchemeAutomotive:
		return automotive, nil
	case domain.SchemeViridis:
		return viridis, nil
	case domain.SchemeGrayscale:
		return grayscale, nil
	default:
		return Scheme{}, fmt.Errorf("unknown color scheme %q", string(name))
	}
}
