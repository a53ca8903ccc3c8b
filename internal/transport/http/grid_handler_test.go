package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "calibgrid/internal/errors"
	"calibgrid/internal/services"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestHandler(maxGridCells int) *GridHandler {
	logger := testLogger()
	return NewGridHandler(
		services.NewGridService(logger, nil),
		logger,
		apierrors.NewErrorHandler(logger),
		maxGridCells,
	)
}

func postJSON(t *testing.T, h *GridHandler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.Routes().ServeHTTP(w, r)
	return w
}

func TestSmoothEndpoint(t *testing.T) {
	h := newTestHandler(0)

	w := postJSON(t, h, "/smooth", map[string]interface{}{
		"grid":   [][]string{{"1", "2", "3"}, {"4", "5", "6"}, {"7", "8", "9"}},
		"method": "bilinear",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp GridResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "5.00", resp.Grid[1][1])
}

func TestSmoothEndpointParameterCoercion(t *testing.T) {
	h := newTestHandler(0)

	// Window size as a JSON number and as an unparseable string both work:
	// the number is used, the garbage falls back to the default.
	// The oversized window relies on the core clamping the effective radius
	// to the grid; the request must still return promptly.
	for _, window := range []interface{}{3, "3", "not-a-number", "", 2000000001} {
		w := postJSON(t, h, "/smooth", map[string]interface{}{
			"grid":        [][]string{{"1", "2"}},
			"method":      "moving_average",
			"window_size": window,
		})
		assert.Equal(t, http.StatusOK, w.Code, "window %v", window)
	}
}

func TestSmoothEndpointRejectsInvalidParameter(t *testing.T) {
	h := newTestHandler(0)

	// An explicitly invalid window is not defaulted; the core rejects it.
	w := postJSON(t, h, "/smooth", map[string]interface{}{
		"grid":        [][]string{{"1", "2"}},
		"method":      "moving_average",
		"window_size": "-2",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var pd map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pd))
	assert.Equal(t, apierrors.TypeBadParameter, pd["type"])
}

func TestSmoothEndpointUnknownMethod(t *testing.T) {
	h := newTestHandler(0)

	w := postJSON(t, h, "/smooth", map[string]interface{}{
		"grid":   [][]string{{"1"}},
		"method": "median",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestColorsEndpoint(t *testing.T) {
	h := newTestHandler(0)

	w := postJSON(t, h, "/colors", map[string]interface{}{
		"grid":   [][]string{{"10"}, {"20"}, {"label"}},
		"scheme": "grayscale",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp ColorsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Range.HasValues)
	assert.Equal(t, 10.0, resp.Range.Min)
	assert.Equal(t, 20.0, resp.Range.Max)
	require.Len(t, resp.Colors, 3)
	assert.NotNil(t, resp.Colors[0][0])
	assert.Nil(t, resp.Colors[2][0])
}

func TestColorsEndpointUnknownScheme(t *testing.T) {
	h := newTestHandler(0)

	w := postJSON(t, h, "/colors", map[string]interface{}{
		"grid":   [][]string{{"1"}},
		"scheme": "LAVA",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var pd map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pd))
	assert.Equal(t, apierrors.TypeUnknownScheme, pd["type"])
}

func TestFillEndpoint(t *testing.T) {
	h := newTestHandler(0)

	w := postJSON(t, h, "/fill", map[string]interface{}{
		"grid": [][]string{{"10", "", "30"}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp GridResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "20.0", resp.Grid[0][1])
}

func TestRangeEndpoint(t *testing.T) {
	h := newTestHandler(0)

	w := postJSON(t, h, "/range", map[string]interface{}{
		"grid": [][]string{{"10"}, {"20"}},
		"mask": map[string]bool{"skip_first_row": true},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var vr map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vr))
	assert.Equal(t, 20.0, vr["min"])
	assert.Equal(t, 20.0, vr["max"])
}

func TestValidationRejectsMissingGrid(t *testing.T) {
	h := newTestHandler(0)

	w := postJSON(t, h, "/range", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGridSizeLimit(t *testing.T) {
	h := newTestHandler(4)

	w := postJSON(t, h, "/range", map[string]interface{}{
		"grid": [][]string{{"1", "2", "3"}, {"4", "5", "6"}},
	})
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestMalformedBody(t *testing.T) {
	h := newTestHandler(0)

	r := httptest.NewRequest(http.MethodPost, "/range", bytes.NewReader([]byte("{")))
	w := httptest.NewRecorder()
	h.Routes().ServeHTTP(w, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthHandler(t *testing.T) {
	h := NewHealthHandler(testLogger())

	w := httptest.NewRecorder()
	h.HealthCheck(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	w = httptest.NewRecorder()
	h.VersionInfo(w, httptest.NewRequest(http.MethodGet, "/version", nil))
	assert.Contains(t, w.Body.String(), `"version"`)
}
