// Package api exposes the OBJECT and MEMORY introspection commands
// (spec.md §6.2, component C10) as gorilla/mux-routed HTTP endpoints,
// grounded on the teacher's api/health_handler.go and
// api/system_metrics_handler.go request/response struct-pair style.
package api

import (
	"encoding/json"
	"net/http"
)

// RespondJSON writes a JSON response, matching the teacher's
// api/response_helpers.go contract (content type + status code +
// encoded body).
func RespondJSON(w http.ResponseWriter, code int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"failed to encode response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(body)
}

// RespondError writes a JSON error response.
func RespondError(w http.ResponseWriter, code int, message string) {
	RespondJSON(w, code, map[string]string{"error": message})
}
