package utils

import (
	"encoding/json"
	"net/http"
)

// RespondJSON writes the payload as a JSON response with the given status
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// RespondMessage writes a JSON body containing only a message
func RespondMessage(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]string{"message": message})
}

// RespondError writes a client-error body: {"message": ...}
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondMessage(w, status, message)
}

// RespondInternalError writes a server-error body carrying the diagnostic
// detail: {"message": ..., "error": ...}
func RespondInternalError(w http.ResponseWriter, message string, err error) {
	RespondJSON(w, http.StatusInternalServerError, map[string]string{
		"message": message,
		"error":   err.Error(),
	})
}
