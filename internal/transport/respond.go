// Package transport writes JSON responses and maps store errors to HTTP
// status codes in one place.
package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lopes/lopes-events/backend/internal/store"
)

// SendJSON writes v as a JSON response with the given status code.
func SendJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// SendDetail writes the {"detail": ...} body used by every failure response.
func SendDetail(w http.ResponseWriter, status int, msg string) {
	SendJSON(w, status, map[string]string{"detail": msg})
}

// SendStoreError maps a store error to its HTTP response. resource names
// the entity ("Event", "User") for the fixed not-found and creation-failed
// messages; anything else, including a malformed identifier, is a 500 with
// the message exposed.
func SendStoreError(w http.ResponseWriter, err error, resource string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		SendDetail(w, http.StatusNotFound, resource+" not found")
	case errors.Is(err, store.ErrWriteFailed):
		SendDetail(w, http.StatusInternalServerError, resource+" creation failed")
	default:
		SendDetail(w, http.StatusInternalServerError, "Database error: "+err.Error())
	}
}
