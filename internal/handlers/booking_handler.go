package handlers

import (
	"log/slog"
	"net/http"

	"github.com/lumina-reserve/backend/internal/service"
)

// BookingHandler accepts the public forms
type BookingHandler struct {
	data *service.DataService
	log  *slog.Logger
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(data *service.DataService, log *slog.Logger) *BookingHandler {
	return &BookingHandler{
		data: data,
		log:  log,
	}
}

// CreateReservation handles POST /api/reservations
func (h *BookingHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var in ReservationInput
	if msg := decodeInput(r, &in); msg != "" {
		h.log.Warn("rejected reservation", "reason", msg)
		WriteError(w, http.StatusBadRequest, msg, h.log)
		return
	}

	result := h.data.SubmitReservation(r.Context(), in.Reservation())
	WriteResult(w, result, h.log)
}

// Subscribe handles POST /api/subscribers
func (h *BookingHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var in SubscriberInput
	if msg := decodeInput(r, &in); msg != "" {
		h.log.Warn("rejected subscription", "reason", msg)
		WriteError(w, http.StatusBadRequest, msg, h.log)
		return
	}

	result := h.data.AddSubscriber(r.Context(), in.Subscriber())
	WriteResult(w, result, h.log)
}
