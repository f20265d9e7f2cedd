// Package response writes the JSON envelopes used by every Vastra
// endpoint: {"success":true, ...} on success, {"success":false,
// "message":...} on failure.
package response

import (
	"encoding/json"
	"net/http"
)

// M is a free-form success payload merged into the envelope.
type M map[string]any

func write(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// OK sends a 200 envelope with success:true plus the given fields.
func OK(w http.ResponseWriter, fields M) {
	body := map[string]any{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	write(w, http.StatusOK, body)
}

// Error sends an error envelope with the given status and message.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, map[string]any{"success": false, "message": message})
}

// BadRequest sends a 400 error envelope.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 error envelope.
func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, message)
}

// NotFound sends a 404 error envelope.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

// Internal sends the fixed 500 envelope. Details stay in the logs.
func Internal(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "Something went wrong")
}
