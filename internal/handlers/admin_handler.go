package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lumina-reserve/backend/internal/auth"
	"github.com/lumina-reserve/backend/internal/middleware"
	"github.com/lumina-reserve/backend/internal/service"
)

// AdminHandler serves the admin panel: unlock, event management and the
// dashboard figures
type AdminHandler struct {
	data     *service.DataService
	stats    *service.StatsService
	sessions *auth.Sessions
	ids      *service.EventIDs
	log      *slog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	data *service.DataService,
	stats *service.StatsService,
	sessions *auth.Sessions,
	ids *service.EventIDs,
	log *slog.Logger,
) *AdminHandler {
	return &AdminHandler{
		data:     data,
		stats:    stats,
		sessions: sessions,
		ids:      ids,
		log:      log,
	}
}

// LoginResponse carries the token for an unlocked session
type LoginResponse struct {
	Token string `json:"token"`
	State string `json:"state"`
}

// Login handles POST /api/admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in LoginInput
	if msg := decodeInput(r, &in); msg != "" {
		WriteError(w, http.StatusBadRequest, msg, h.log)
		return
	}

	token, err := h.sessions.Login(in.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidPassword) {
			h.log.Warn("admin unlock failed", "remote_addr", r.RemoteAddr)
			WriteError(w, http.StatusUnauthorized, "Invalid password", h.log)
			return
		}
		h.log.Error("admin unlock failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	h.log.Info("admin session unlocked", "remote_addr", r.RemoteAddr)
	WriteJSON(w, http.StatusOK, LoginResponse{Token: token, State: auth.Unlocked.String()}, h.log)
}

// Logout handles POST /api/admin/logout
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.AdminToken(r)
	if err := h.sessions.Logout(token); err != nil && !errors.Is(err, auth.ErrSessionNotFound) {
		h.log.Error("admin logout failed", "error", err)
	}

	WriteJSON(w, http.StatusOK, map[string]string{"state": auth.Locked.String()}, h.log)
}

// ListReservations handles GET /api/admin/reservations
func (h *AdminHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.data.GetReservations(r.Context()), h.log)
}

// ListEvents handles GET /api/admin/events
func (h *AdminHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.data.ListEvents(r.Context()), h.log)
}

// CreateEvent handles POST /api/admin/events
func (h *AdminHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var in EventInput
	if msg := decodeInput(r, &in); msg != "" {
		h.log.Warn("rejected event", "reason", msg)
		WriteError(w, http.StatusBadRequest, msg, h.log)
		return
	}

	event := in.Event(h.ids.Next())
	result := h.data.CreateEvent(r.Context(), event)
	if result.Success {
		h.log.Info("event created", "id", event.ID, "title", event.Title, "mode", h.data.Mode())
		if result.Fields == nil {
			result.Fields = map[string]any{}
		}
		if _, ok := result.Fields["id"]; !ok {
			result.Fields["id"] = event.ID
		}
	}
	WriteResult(w, result, h.log)
}

// DeleteEvent handles DELETE /api/admin/events/{eventId}
func (h *AdminHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventId")
	if eventID == "" {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	result := h.data.DeleteEvent(r.Context(), eventID)
	if result.Success {
		h.log.Info("event deleted", "id", eventID, "mode", h.data.Mode())
	}
	WriteResult(w, result, h.log)
}

// Stats handles GET /api/admin/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Stats(r.Context())
	if err != nil {
		h.log.Error("failed to compute statistics", "error", err)
		WriteError(w, http.StatusServiceUnavailable, "Statistics unavailable", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, stats, h.log)
}
