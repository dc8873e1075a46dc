// Package httputil provides helpers shared by the HTTP handlers
package httputil

import (
	"encoding/json"
	"net/http"
	"os"

	"go.uber.org/zap"

	"titlebot/constants/envvar"
)

// Port returns the port number to listen on from the environment, or :8080 if not set
func Port() string {
	port := ":" + os.Getenv(envvar.Port)
	if port == ":" {
		port = ":8080"
	}
	return port
}

// WriteJSON writes v as a JSON response with the given status code.
// Encoding failures can only be logged since the header is already sent.
func WriteJSON(w http.ResponseWriter, status int, v any, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil && logger != nil {
		logger.Error("Failed to encode response", zap.Error(err))
	}
}

// ErrorResponse is the JSON body sent for failed requests
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError writes an ErrorResponse with the given status code
func WriteError(w http.ResponseWriter, status int, msg string, logger *zap.Logger) {
	WriteJSON(w, status, ErrorResponse{Error: msg}, logger)
}
