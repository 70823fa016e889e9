package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lumina-reserve/backend/internal/models"
)

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, log *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, status int, message string, log *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]string{"error": message}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to encode error response", "error", err)
	}
}

// WriteResult writes a normalized write result: 200 when it succeeded,
// 502 when the backend or the local store refused it
func WriteResult(w http.ResponseWriter, result models.WriteResult, log *slog.Logger) {
	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadGateway
	}
	WriteJSON(w, status, result, log)
}
