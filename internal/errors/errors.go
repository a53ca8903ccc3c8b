// Package errors provides RFC 7807 problem-details error responses for the
// HTTP surface. Core packages return plain wrapped errors; this package maps
// them to structured responses at the transport boundary.
package errors

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/render"
)

// Problem type URIs.
const (
	TypeValidation    = "/errors/validation"
	TypeNotFound      = "/errors/not-found"
	TypeUnknownScheme = "/errors/scheme/unknown"
	TypeUnknownMethod = "/errors/smoothing/unknown-method"
	TypeBadParameter  = "/errors/smoothing/invalid-parameter"
	TypeInternal      = "/errors/internal"
)

// ProblemDetails is an RFC 7807 error response body.
type ProblemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`

	Extensions map[string]interface{} `json:"-"`
}

// Render implements the render.Renderer interface.
func (pd *ProblemDetails) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, pd.Status)
	return nil
}

// Error implements the error interface so a ProblemDetails can travel
// through error-returning call chains.
func (pd *ProblemDetails) Error() string {
	return pd.Title
}

// MarshalJSON flattens extensions into the response body.
func (pd *ProblemDetails) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"type":   pd.Type,
		"title":  pd.Title,
		"status": pd.Status,
	}
	if pd.Detail != "" {
		data["detail"] = pd.Detail
	}
	if pd.Instance != "" {
		data["instance"] = pd.Instance
	}
	for k, v := range pd.Extensions {
		data[k] = v
	}
	return json.Marshal(data)
}

// WithExtension attaches an extension member to the problem.
func (pd *ProblemDetails) WithExtension(key string, value interface{}) *ProblemDetails {
	if pd.Extensions == nil {
		pd.Extensions = make(map[string]interface{})
	}
	pd.Extensions[key] = value
	return pd
}

// NewProblem creates a ProblemDetails.
func NewProblem(status int, problemType, title, detail string) *ProblemDetails {
	return &ProblemDetails{
		Type:   problemType,
		Title:  title,
		Status: status,
		Detail: detail,
	}
}

// ErrValidation builds a validation problem for one field.
func ErrValidation(field, detail string) *ProblemDetails {
	return NewProblem(http.StatusBadRequest, TypeValidation, "Request validation failed", detail).
		WithExtension("field", field)
}
