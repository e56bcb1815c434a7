package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// maxBodyBytes is the maximum allowed size for a request body (1 MB).
const maxBodyBytes = 1 << 20

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// limitBody caps the request body at maxBodyBytes to prevent resource
// exhaustion from oversized submissions.
func limitBody(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
}
