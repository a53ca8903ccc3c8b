// Package http exposes the grid operations over a REST API.
//
// # Endpoints
//
//	POST /api/grid/range   - numeric min/max of the masked grid
//	POST /api/grid/colors  - per-cell gradient colors
//	POST /api/grid/smooth  - smoothing pass (moving average, gaussian, bilinear)
//	POST /api/grid/fill    - blank-cell extrapolation
//	GET  /healthz          - liveness
//	GET  /version          - build information
//
// Requests are validated with struct tags before reaching the core; user-
// entered smoothing parameters arrive as strings or numbers and are coerced
// at this boundary. Errors render as RFC 7807 problem details.
package http
