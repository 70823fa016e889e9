package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// HealthHandler provides health check endpoint
type HealthHandler struct {
	appName string
	mode    string
	log     *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(appName, mode string, log *slog.Logger) *HealthHandler {
	return &HealthHandler{
		appName: appName,
		mode:    mode,
		log:     log,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	App       string    `json:"app"`
	Mode      string    `json:"mode"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// ServeHTTP handles health check requests
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		App:       h.appName,
		Mode:      h.mode,
		Timestamp: time.Now().UTC(),
		Version:   Version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error("failed to encode health response", "error", err)
	}
}
