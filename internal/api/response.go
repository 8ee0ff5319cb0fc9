package api

import (
	"encoding/json"
	"net/http"

	"avialab/flightdeck/internal/logging"
	"avialab/flightdeck/internal/models/dtos"
)

// writeJSON marshals body and writes it with the given status code.
func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("JSON encode failed", "error", err.Error())
	}
}

// writeError writes the plain {error} body used across the API.
func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, dtos.ErrorResponse{Error: message})
}
