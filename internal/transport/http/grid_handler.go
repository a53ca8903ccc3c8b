package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	apierrors "calibgrid/internal/errors"
	"calibgrid/internal/gradient"
	"calibgrid/internal/services"
	"calibgrid/pkg/contracts/domain"
)

// Param accepts a user-entered numeric parameter as either a JSON string or
// a JSON number; the host contract allows both.
type Param string

// UnmarshalJSON implements json.Unmarshaler.
func (p *Param) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = Param(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("parameter must be a string or number")
	}
	*p = Param(n.String())
	return nil
}

// GridRequest is the shared request shape: the grid plus heading flags.
type GridRequest struct {
	Grid [][]string  `json:"grid" validate:"required,min=1"`
	Mask domain.Mask `json:"mask"`
}

// ColorsRequest asks for per-cell render colors.
type ColorsRequest struct {
	GridRequest
	Scheme string `json:"scheme" validate:"required"`
}

// SmoothRequest asks for a smoothing pass.
type SmoothRequest struct {
	GridRequest
	Method     string `json:"method" validate:"required"`
	WindowSize Param  `json:"window_size,omitempty"`
	Sigma      Param  `json:"sigma,omitempty"`
}

// GridResponse returns a replacement grid.
type GridResponse struct {
	Grid [][]string `json:"grid"`
}

// ColorsResponse returns the per-cell colors; entries are null for cells
// without a numeric value.
type ColorsResponse struct {
	Colors services.CellColorMap `json:"colors"`
	Range  gradient.ValueRange   `json:"range"`
}

// GridHandler handles grid computation requests.
type GridHandler struct {
	service      *services.GridService
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	validate     *validator.Validate
	maxGridCells int
}

// NewGridHandler creates a grid handler. maxGridCells bounds accepted
// payloads; pass 0 for no bound.
func NewGridHandler(service *services.GridService, logger *slog.Logger, errorHandler *apierrors.ErrorHandler, maxGridCells int) *GridHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GridHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "grid_handler")),
		errorHandler: errorHandler,
		validate:     validator.New(),
		maxGridCells: maxGridCells,
	}
}

// Routes returns the grid routes.
func (h *GridHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Post("/range", h.Range)
	r.Post("/colors", h.Colors)
	r.Post("/smooth", h.Smooth)
	r.Post("/fill", h.Fill)
	return r
}

// Range handles POST /api/grid/range.
func (h *GridHandler) Range(w http.ResponseWriter, r *http.Request) {
	var req GridRequest
	if !h.decode(w, r, &req) {
		return
	}
	render.JSON(w, r, h.service.Range(r.Context(), req.Grid, req.Mask))
}

// Colors handles POST /api/grid/colors.
func (h *GridHandler) Colors(w http.ResponseWriter, r *http.Request) {
	var req ColorsRequest
	if !h.decode(w, r, &req) {
		return
	}

	scheme, err := domain.ParseSchemeName(req.Scheme)
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.NewProblem(
			http.StatusBadRequest, apierrors.TypeUnknownScheme, "Unknown color scheme", err.Error()))
		return
	}

	colors, vr, err := h.service.Colors(r.Context(), req.Grid, req.Mask, scheme)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, ColorsResponse{Colors: colors, Range: vr})
}

// Smooth handles POST /api/grid/smooth. The window size and sigma are
// user-entered: empty or unparseable values fall back to defaults here, but
// explicitly invalid values (zero, negative) are passed through for the
// core to reject.
func (h *GridHandler) Smooth(w http.ResponseWriter, r *http.Request) {
	var req SmoothRequest
	if !h.decode(w, r, &req) {
		return
	}

	method, err := domain.ParseSmoothingMethod(req.Method)
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.NewProblem(
			http.StatusBadRequest, apierrors.TypeUnknownMethod, "Unknown smoothing method", err.Error()))
		return
	}

	out, err := h.service.Smooth(r.Context(), req.Grid, domain.SmoothingRequest{
		Method:     method,
		WindowSize: services.CoerceWindowSize(string(req.WindowSize)),
		Sigma:      services.CoerceSigma(string(req.Sigma)),
		Mask:       req.Mask,
	})
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, GridResponse{Grid: out})
}

// Fill handles POST /api/grid/fill.
func (h *GridHandler) Fill(w http.ResponseWriter, r *http.Request) {
	var req GridRequest
	if !h.decode(w, r, &req) {
		return
	}
	render.JSON(w, r, GridResponse{Grid: h.service.Fill(r.Context(), req.Grid, req.Mask)})
}

// decode unmarshals and validates the request body, writing the error
// response itself when the request is unusable.
func (h *GridHandler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.NewProblem(
			http.StatusBadRequest, apierrors.TypeValidation, "Malformed request body", err.Error()))
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		h.errorHandler.HandleError(w, r, h.validationProblem(err))
		return false
	}
	if grid := extractGrid(v); grid != nil && h.maxGridCells > 0 {
		cells := 0
		for _, row := range grid {
			cells += len(row)
		}
		if cells > h.maxGridCells {
			h.errorHandler.HandleError(w, r, apierrors.NewProblem(
				http.StatusRequestEntityTooLarge, apierrors.TypeValidation, "Grid too large",
				fmt.Sprintf("grid has %d cells, limit is %d", cells, h.maxGridCells)))
			return false
		}
	}
	return true
}

func (h *GridHandler) validationProblem(err error) *apierrors.ProblemDetails {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return apierrors.ErrValidation(strings.Join(fields, ", "), err.Error())
	}
	return apierrors.NewProblem(http.StatusBadRequest, apierrors.TypeValidation, "Request validation failed", err.Error())
}

func extractGrid(v interface{}) domain.Grid {
	switch req := v.(type) {
	case *GridRequest:
		return req.Grid
	case *ColorsRequest:
		return req.Grid
	case *SmoothRequest:
		return req.Grid
	default:
		return nil
	}
}
