package smoothing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"calibgrid/internal/cellvalue"
	"calibgrid/pkg/contracts/domain"
)

// Parameter validation failures. These indicate a programming error at the
// caller: hosts default malformed user input before calling the core.
var (
	ErrInvalidWindow = errors.New("moving-average window size must be a positive integer")
	ErrInvalidSigma  = errors.New("gaussian sigma must be positive")
)

// minOutputDecimals is the floor on decimal places for rewritten cells, so
// integer cells become readable floats after smoothing.
const minOutputDecimals = 2

// cellFunc computes the smoothed value for the numeric cell at (row, col),
// reading neighbors from the input grid only. ok is false when the
// neighborhood yields no usable data and the cell must pass through.
type cellFunc func(grid domain.Grid, mask domain.Mask, row, col int, self float64) (value float64, ok bool)

// Smoother runs smoothing passes over calibration grids.
type Smoother struct {
	logger         *slog.Logger
	maxConcurrency int
}

// NewSmoother creates a smoother. A nil logger falls back to slog.Default.
func NewSmoother(logger *slog.Logger) *Smoother {
	if logger == nil {
		logger = slog.Default()
	}
	return &Smoother{
		logger:         logger.With(slog.String("component", "smoother")),
		maxConcurrency: 4,
	}
}

// SetMaxConcurrency bounds the number of rows processed in parallel.
func (s *Smoother) SetMaxConcurrency(n int) {
	if n > 0 {
		s.maxConcurrency = n
	}
}

// Smooth applies the requested algorithm and returns a new grid. The input
// grid is never mutated; out-of-mask and non-numeric cells are carried over
// verbatim.
func (s *Smoother) Smooth(ctx context.Context, grid domain.Grid, req domain.SmoothingRequest) (domain.Grid, error) {
	fn, err := s.cellFunc(req, radiusLimit(grid))
	if err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "smoothing grid",
		slog.String("method", req.Method.String()),
		slog.Int("rows", grid.Rows()),
		slog.Int("cols", grid.Cols()),
	)

	out := grid.Clone()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)
	for row := req.Mask.StartRow(); row < len(grid); row++ {
		g.Go(func() error {
			for col := req.Mask.StartCol(); col < len(grid[row]); col++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				cv := cellvalue.Parse(grid[row][col])
				if !cv.Valid {
					continue
				}
				v, ok := fn(grid, req.Mask, row, col, cv.Value)
				if !ok {
					continue
				}
				out[row][col] = cellvalue.Format(v, maxInt(cv.DecimalPlaces, minOutputDecimals))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("smooth %s: %w", req.Method, err)
	}
	return out, nil
}

// cellFunc validates the request parameters and binds the per-cell
// algorithm.
func (s *Smoother) cellFunc(req domain.SmoothingRequest, maxRadius int) (cellFunc, error) {
	switch req.Method {
	case domain.MethodMovingAverage:
		if req.WindowSize < 1 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidWindow, req.WindowSize)
		}
		return movingAverage(req.WindowSize, maxRadius), nil
	case domain.MethodGaussian:
		if req.Sigma <= 0 {
			return nil, fmt.Errorf("%w: got %g", ErrInvalidSigma, req.Sigma)
		}
		return gaussian(req.Sigma, maxRadius), nil
	case domain.MethodBilinear:
		return bilinear, nil
	default:
		return nil, fmt.Errorf("unknown smoothing method %q", string(req.Method))
	}
}

// radiusLimit bounds the effective neighborhood radius to the grid's largest
// dimension. Neighbors past it are always out of bounds and contribute
// nothing, so clamping changes no result while keeping oversized user-entered
// windows from turning into unbounded per-cell work.
func radiusLimit(grid domain.Grid) int {
	return maxInt(grid.Rows(), grid.Cols())
}

// neighborValue parses the cell at (row, col) when it is in bounds and
// inside the mask.
func neighborValue(grid domain.Grid, mask domain.Mask, row, col int) (float64, bool) {
	if !mask.Contains(row, col) || !grid.InBounds(row, col) {
		return 0, false
	}
	cv := cellvalue.Parse(grid[row][col])
	return cv.Value, cv.Valid
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
