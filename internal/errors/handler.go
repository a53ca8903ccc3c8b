package errors

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"calibgrid/internal/infrastructure"
	"calibgrid/internal/smoothing"
)

// ErrorHandler converts errors to problem-details responses and logs them
// with request context.
type ErrorHandler struct {
	logger *slog.Logger
}

// NewErrorHandler creates an error handler.
func NewErrorHandler(logger *slog.Logger) *ErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ErrorHandler{logger: logger.With(slog.String("component", "error_handler"))}
}

// HandleError logs err and writes its RFC 7807 representation.
func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	traceID := infrastructure.GetTraceID(r.Context())
	h.logger.ErrorContext(r.Context(), "request failed",
		slog.String("error", err.Error()),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)

	problem := h.ErrorToProblem(err, r)
	if traceID != "" {
		problem.WithExtension("trace_id", traceID)
	}
	render.Render(w, r, problem)
}

// ErrorToProblem maps core errors onto problem types. Parameter and scheme
// errors are caller errors and surface as 400s; anything unrecognized is an
// internal error with the detail withheld from the client.
func (h *ErrorHandler) ErrorToProblem(err error, r *http.Request) *ProblemDetails {
	var problem *ProblemDetails

	switch {
	case errors.As(err, &problem):
		// Already a problem; pass through.
	case errors.Is(err, smoothing.ErrInvalidWindow), errors.Is(err, smoothing.ErrInvalidSigma):
		problem = NewProblem(http.StatusBadRequest, TypeBadParameter, "Invalid smoothing parameter", err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		problem = NewProblem(http.StatusGatewayTimeout, TypeInternal, "Request timed out", "")
	case errors.Is(err, context.Canceled):
		problem = NewProblem(499, TypeInternal, "Request cancelled", "")
	default:
		problem = NewProblem(http.StatusInternalServerError, TypeInternal, "Internal server error", "")
	}

	if r != nil {
		problem.Instance = r.URL.Path
	}
	return problem
}
