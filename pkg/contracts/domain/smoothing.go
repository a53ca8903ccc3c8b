package domain

import (
	"fmt"
	"strings"
)

// SmoothingMethod identifies a grid smoothing algorithm.
type SmoothingMethod string

const (
	// MethodMovingAverage averages each cell with all numeric cells in a
	// square window around it. The window is square (Chebyshev distance),
	// not radius-based, matching the established table-editor behavior.
	MethodMovingAverage SmoothingMethod = "moving_average"
	// MethodGaussian applies a truncated, renormalized Gaussian kernel.
	MethodGaussian SmoothingMethod = "gaussian"
	// MethodBilinear averages each cell with its four axis neighbors.
	MethodBilinear SmoothingMethod = "bilinear"
)

// String returns the method identifier.
func (m SmoothingMethod) String() string {
	return string(m)
}

// ParseSmoothingMethod resolves a case-insensitive method name.
func ParseSmoothingMethod(s string) (SmoothingMethod, error) {
	switch SmoothingMethod(strings.ToLower(strings.TrimSpace(s))) {
	case MethodMovingAverage:
		return MethodMovingAverage, nil
	case MethodGaussian:
		return MethodGaussian, nil
	case MethodBilinear:
		return MethodBilinear, nil
	default:
		return "", fmt.Errorf("unknown smoothing method %q", s)
	}
}

// SmoothingRequest carries the parameters for one smoothing pass. WindowSize
// applies to moving-average, Sigma to Gaussian; Bilinear takes no parameter.
// Parameters must already be validated and defaulted at the host boundary:
// the core rejects, rather than corrects, invalid ones.
type SmoothingRequest struct {
	Method     SmoothingMethod `json:"method" validate:"required,oneof=moving_average gaussian bilinear"`
	WindowSize int             `json:"window_size,omitempty" validate:"omitempty,min=1"`
	Sigma      float64         `json:"sigma,omitempty" validate:"omitempty,gt=0"`
	Mask       Mask            `json:"mask"`
}
