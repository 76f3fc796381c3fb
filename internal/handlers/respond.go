package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/regulanikhitha/CHATBOT-AI/internal/models"
	"github.com/regulanikhitha/CHATBOT-AI/internal/services"
)

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

// NotFound answers unknown routes with the standard envelope.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "The requested endpoint does not exist", r))
}

// MethodNotAllowed answers wrong-method requests with the standard envelope.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, errorResp("METHOD_NOT_ALLOWED", "Method not allowed for this endpoint", r))
}

// handleRelayError translates the relay error types into HTTP responses.
// Transport details stay out of the body.
func handleRelayError(w http.ResponseWriter, r *http.Request, err error) {
	switch e := err.(type) {
	case *services.ConfigError:
		writeJSON(w, http.StatusInternalServerError, errorResp("CONFIG_ERROR", e.Message, r))
	case *services.UpstreamError:
		writeJSON(w, http.StatusBadGateway, errorResp("UPSTREAM_ERROR", e.Message, r))
	case *services.TransportError:
		writeJSON(w, http.StatusServiceUnavailable, errorResp("UPSTREAM_UNREACHABLE", "AI service is unreachable", r))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "An unexpected error occurred", r))
	}
}
