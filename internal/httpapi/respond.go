package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// Notice mirrors the storefront's toast notifications: a transient,
// human-readable confirmation with no machine-readable payload.
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Variant     string `json:"variant,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}
