// Package handlers implements the catalogd HTTP surface: Huma operations for
// products and categories, and plain Echo handlers for liveness and readiness.
package handlers

// StatusResponse is the body of the health endpoints. Status is "ok" for
// liveness and "ready" or "unavailable" for readiness.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
