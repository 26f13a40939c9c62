package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// APIResponse is the envelope every storefront endpoint returns.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteSuccess writes a success envelope
func WriteSuccess(w http.ResponseWriter, status int, message string, data interface{}, logger *slog.Logger) {
	WriteJSON(w, status, APIResponse{Success: true, Message: message, Data: data}, logger)
}

// WriteError writes an error envelope
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	WriteJSON(w, status, APIResponse{Success: false, Message: message}, logger)
}

// WriteValidationError writes an error envelope carrying every violation so
// the UI can display all problems at once.
func WriteValidationError(w http.ResponseWriter, errs []string, logger *slog.Logger) {
	WriteJSON(w, http.StatusBadRequest, APIResponse{
		Success: false,
		Message: "Invalid request",
		Errors:  errs,
	}, logger)
}
