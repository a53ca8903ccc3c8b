// Package services orchestrates the core grid computations behind a single
// stateless façade consumed by the HTTP transport and the CLI. Coercion of
// user-entered parameters (defaulting an unparseable window size or sigma)
// happens here, at the host boundary; the core packages reject invalid
// parameters instead of guessing.
package services

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"calibgrid/internal/cellvalue"
	"calibgrid/internal/fill"
	"calibgrid/internal/gradient"
	"calibgrid/internal/infrastructure"
	"calibgrid/internal/smoothing"
	"calibgrid/pkg/contracts/domain"
)

// Boundary defaults applied to unparseable user-entered parameters.
const (
	DefaultWindowSize = 3
	DefaultSigma      = 1.0
)

// CellColorMap is the per-cell render output for a grid. Entries are nil for
// cells that do not parse numerically.
type CellColorMap [][]*domain.CellColors

// GridService exposes the calibration-grid operations.
type GridService struct {
	smoother *smoothing.Smoother
	filler   *fill.Filler
	logger   *slog.Logger
	tracer   trace.Tracer
}

// NewGridService creates the service. A nil tracer falls back to the global
// tracer provider.
func NewGridService(logger *slog.Logger, tracer trace.Tracer) *GridService {
	if logger == nil {
		logger = slog.Default()
	}
	if tracer == nil {
		tracer = otel.Tracer(infrastructure.TracerName)
	}
	return &GridService{
		smoother: smoothing.NewSmoother(logger),
		filler:   fill.NewFiller(logger),
		logger:   logger.With(slog.String("component", "grid_service")),
		tracer:   tracer,
	}
}

// SetSmoothConcurrency bounds row-level parallelism inside smoothing.
func (s *GridService) SetSmoothConcurrency(n int) {
	s.smoother.SetMaxConcurrency(n)
}

// Range returns the numeric span of the grid's in-mask cells.
func (s *GridService) Range(ctx context.Context, grid domain.Grid, mask domain.Mask) gradient.ValueRange {
	_, span := s.tracer.Start(ctx, "grid.range")
	defer span.End()
	return gradient.Range(grid, mask)
}

// Colors computes the render colors for every in-mask numeric cell, scaled
// to the grid's own min/max. The scanned range is returned alongside the
// colors so callers do not pay for a second pass over the grid.
func (s *GridService) Colors(ctx context.Context, grid domain.Grid, mask domain.Mask, schemeName domain.SchemeName) (CellColorMap, gradient.ValueRange, error) {
	ctx, span := s.tracer.Start(ctx, "grid.colors",
		trace.WithAttributes(attribute.String("scheme", string(schemeName))))
	defer span.End()

	scheme, err := gradient.ByName(schemeName)
	if err != nil {
		return nil, gradient.ValueRange{}, err
	}

	vr := gradient.Range(grid, mask)
	out := make(CellColorMap, len(grid))
	for r := range grid {
		out[r] = make([]*domain.CellColors, len(grid[r]))
		for c := range grid[r] {
			if !mask.Contains(r, c) {
				continue
			}
			cv := cellvalue.Parse(grid[r][c])
			if !cv.Valid {
				continue
			}
			cc := gradient.CellColors(cv.Value, vr.Min, vr.Max, scheme)
			out[r][c] = &cc
		}
	}

	s.logger.DebugContext(ctx, "computed cell colors",
		slog.String("scheme", string(schemeName)),
		slog.Bool("has_values", vr.HasValues),
	)
	return out, vr, nil
}

// Smooth runs the requested smoothing pass.
func (s *GridService) Smooth(ctx context.Context, grid domain.Grid, req domain.SmoothingRequest) (domain.Grid, error) {
	ctx, span := s.tracer.Start(ctx, "grid.smooth",
		trace.WithAttributes(attribute.String("method", req.Method.String())))
	defer span.End()

	return s.smoother.Smooth(ctx, grid, req)
}

// Fill extrapolates blank in-mask cells.
func (s *GridService) Fill(ctx context.Context, grid domain.Grid, mask domain.Mask) domain.Grid {
	_, span := s.tracer.Start(ctx, "grid.fill")
	defer span.End()

	return s.filler.Fill(grid, mask)
}

// CoerceWindowSize parses a user-entered window size, falling back to the
// default when empty or unparseable. Validation of the parsed value (it
// must be positive) stays with the core.
func CoerceWindowSize(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultWindowSize
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultWindowSize
	}
	return n
}

// CoerceSigma parses a user-entered sigma, falling back to the default when
// empty or unparseable.
func CoerceSigma(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultSigma
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return DefaultSigma
	}
	return v
}
