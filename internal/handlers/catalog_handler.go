package handlers

import (
	"log/slog"
	"net/http"

	"github.com/lumina-reserve/backend/internal/service"
)

// CatalogHandler serves the public read-only collections
type CatalogHandler struct {
	data *service.DataService
	log  *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(data *service.DataService, log *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		data: data,
		log:  log,
	}
}

// ListMenu handles GET /api/menu
func (h *CatalogHandler) ListMenu(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.data.GetMenu(r.Context()), h.log)
}

// ListReviews handles GET /api/reviews
func (h *CatalogHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.data.GetReviews(r.Context()), h.log)
}

// ListEvents handles GET /api/events
// Returns the effective list, locally created events included in demo mode
func (h *CatalogHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.data.ListEvents(r.Context()), h.log)
}
