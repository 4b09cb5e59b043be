// ABOUTME: Error handling utilities for preview server handlers
// ABOUTME: Converts the typed error taxonomy to HTTP status codes with a JSON body

package handlers

import (
	"encoding/json"
	"net/http"

	cerrors "designmount/core/errors"
)

// errorResponse is the JSON body of every error reply.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a domain error onto an HTTP status with a JSON body.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case cerrors.IsNotFound(err):
		status = http.StatusNotFound
	case cerrors.IsValidation(err):
		status = http.StatusBadRequest
	case cerrors.IsEnvironmentUnavailable(err):
		status = http.StatusServiceUnavailable
	case cerrors.IsAcquisition(err):
		status = http.StatusBadGateway
	}

	writeJSON(w, status, errorResponse{Error: err.Error()})
}
