package domain

import (
	"fmt"
	"strings"
)

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Hex returns the color as a lowercase #rrggbb string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Luma returns the perceptual brightness of the color using Rec. 601 weights.
// The weights and the 128 threshold used by callers are load-bearing for
// text legibility on gradient backgrounds.
func (c RGB) Luma() float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// CellColors is the render output for a single cell: a gradient background
// and a contrasting text color.
type CellColors struct {
	Background RGB `json:"background"`
	Text       RGB `json:"text"`
}

// SchemeName identifies one of the built-in color schemes.
type SchemeName string

const (
	SchemeThermal    SchemeName = "THERMAL"
	SchemeAutomotive SchemeName = "AUTOMOTIVE"
	SchemeViridis    SchemeName = "VIRIDIS"
	SchemeGrayscale  SchemeName = "GRAYSCALE"
)

// SchemeNames lists every built-in scheme name.
func SchemeNames() []SchemeName {
	return []SchemeName{SchemeThermal, SchemeAutomotive, SchemeViridis, SchemeGrayscale}
}

// ParseSchemeName resolves a case-insensitive scheme name. An unrecognized
// name is a caller error, not a data condition.
func ParseSchemeName(s string) (SchemeName, error) {
	switch SchemeName(strings.ToUpper(strings.TrimSpace(s))) {
	case SchemeThermal:
		return SchemeThermal, nil
	case SchemeAutomotive:
		return SchemeAutomotive, nil
	case SchemeViridis:
		return SchemeViridis, nil
	case SchemeGrayscale:
		return SchemeGrayscale, nil
	default:
		return "", fmt.Errorf("unknown color scheme %q", s)
	}
}
