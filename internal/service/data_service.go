package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/lumina-reserve/backend/internal/lib/logger/sl"
	"github.com/lumina-reserve/backend/internal/metrics"
	"github.com/lumina-reserve/backend/internal/models"
	"github.com/lumina-reserve/backend/internal/repository"
)

// Modes reported by DataService.Mode
const (
	ModeDemo   = "demo"
	ModeRemote = "remote"
)

// Backend is the remote spreadsheet API
type Backend interface {
	Fetch(ctx context.Context, action string) (*models.Envelope, error)
	Post(ctx context.Context, action models.WriteAction, payload any) (map[string]any, error)
}

// Recorder counts fallbacks and write outcomes
type Recorder interface {
	Fallback(kind, reason string)
	Write(action, outcome string)
}

type nopRecorder struct{}

func (nopRecorder) Fallback(string, string) {}
func (nopRecorder) Write(string, string)    {}

// DataService is the single gateway to café data.
//
// Reads never fail: with no backend, or when the backend errors or answers
// with anything but a well-formed success, the bundled sample collection is
// returned. Writes never fail either; problems come back as an unsuccessful
// WriteResult. With no backend, event writes go to the override store and
// other writes are acknowledged without being stored.
type DataService struct {
	backend   Backend
	overrides repository.OverrideStore
	metrics   Recorder
	log       *slog.Logger

	// serialises override read-modify-write within this process
	mu sync.Mutex
}

// NewDataService creates the service. A nil backend selects demo mode.
func NewDataService(backend Backend, overrides repository.OverrideStore, recorder Recorder, log *slog.Logger) *DataService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &DataService{
		backend:   backend,
		overrides: overrides,
		metrics:   recorder,
		log:       log,
	}
}

// Mode reports whether a backend is configured
func (s *DataService) Mode() string {
	if s.backend == nil {
		return ModeDemo
	}
	return ModeRemote
}

func (s *DataService) GetMenu(ctx context.Context) []models.MenuItem {
	return fetch(ctx, s, models.KindMenu, models.DecodeMenu, repository.SampleMenu)
}

func (s *DataService) GetReviews(ctx context.Context) []models.Review {
	return fetch(ctx, s, models.KindReviews, models.DecodeReviews, repository.SampleReviews)
}

func (s *DataService) GetReservations(ctx context.Context) []models.Reservation {
	return fetch(ctx, s, models.KindReservations, models.DecodeReservations, repository.SampleReservations)
}

// GetEvents reads the event collection without the override store
func (s *DataService) GetEvents(ctx context.Context) []models.Event {
	return fetch(ctx, s, models.KindEvents, models.DecodeEvents, repository.SampleEvents)
}

// ListEvents returns the events to display. In demo mode that is the
// override store contents followed by the sample events, so samples always
// show and can never be deleted. Otherwise it is exactly GetEvents.
func (s *DataService) ListEvents(ctx context.Context) []models.Event {
	if s.backend != nil {
		return s.GetEvents(ctx)
	}

	s.mu.Lock()
	stored, err := s.overrides.Load(ctx)
	s.mu.Unlock()

	if err != nil {
		s.log.Error("failed to load local events, showing samples only", sl.Err(err))
		stored = nil
	}

	samples := repository.SampleEvents()
	events := make([]models.Event, 0, len(stored)+len(samples))
	events = append(events, stored...)
	events = append(events, samples...)
	return events
}

func (s *DataService) SubmitReservation(ctx context.Context, reservation models.Reservation) models.WriteResult {
	if s.backend == nil {
		s.log.Debug("reservation simulated", "name", reservation.Name, "date", reservation.Date)
		s.metrics.Write(string(models.ActionCreateReservation), metrics.OutcomeLocal)
		return models.Succeeded("Reservation simulated (No API URL configured)")
	}
	return s.post(ctx, models.ActionCreateReservation, reservation, "Failed to submit reservation")
}

func (s *DataService) AddSubscriber(ctx context.Context, subscriber models.Subscriber) models.WriteResult {
	if s.backend == nil {
		s.log.Debug("subscription simulated", "email", subscriber.Email)
		s.metrics.Write(string(models.ActionAddSubscriber), metrics.OutcomeLocal)
		return models.Succeeded("Welcome to the Reserve Society (Mock)")
	}
	return s.post(ctx, models.ActionAddSubscriber, subscriber, "Failed to subscribe")
}

// CreateEvent stores the event remotely, or appends it to the override
// store in demo mode. The caller supplies the id.
func (s *DataService) CreateEvent(ctx context.Context, event models.Event) models.WriteResult {
	if s.backend != nil {
		return s.post(ctx, models.ActionCreateEvent, event, "Failed to create event")
	}

	err := s.updateOverrides(ctx, func(events []models.Event) []models.Event {
		return append(events, event)
	})
	if err != nil {
		s.log.Error("failed to store local event", "id", event.ID, sl.Err(err))
		s.metrics.Write(string(models.ActionCreateEvent), metrics.OutcomeFailure)
		return models.Failed("Failed to create event")
	}

	s.log.Debug("local event created", "id", event.ID, "title", event.Title)
	s.metrics.Write(string(models.ActionCreateEvent), metrics.OutcomeLocal)
	return models.Succeeded("Event created (Mock)")
}

// DeleteEvent removes the event with id. In demo mode only stored events
// can be removed; a sample id is a successful no-op.
func (s *DataService) DeleteEvent(ctx context.Context, id string) models.WriteResult {
	if s.backend != nil {
		return s.post(ctx, models.ActionDeleteEvent, models.DeleteEventPayload{ID: id}, "Failed to delete event")
	}

	err := s.updateOverrides(ctx, func(events []models.Event) []models.Event {
		kept := make([]models.Event, 0, len(events))
		for _, e := range events {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		return kept
	})
	if err != nil {
		s.log.Error("failed to delete local event", "id", id, sl.Err(err))
		s.metrics.Write(string(models.ActionDeleteEvent), metrics.OutcomeFailure)
		return models.Failed("Failed to delete event")
	}

	s.log.Debug("local event deleted", "id", id)
	s.metrics.Write(string(models.ActionDeleteEvent), metrics.OutcomeLocal)
	return models.Succeeded("Event deleted (Mock)")
}

func (s *DataService) updateOverrides(ctx context.Context, update func([]models.Event) []models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.overrides.Load(ctx)
	if err != nil {
		return err
	}
	return s.overrides.Save(ctx, update(events))
}

func (s *DataService) post(ctx context.Context, action models.WriteAction, payload any, failure string) models.WriteResult {
	raw, err := s.backend.Post(ctx, action, payload)
	if err != nil {
		s.log.Error("remote write failed", "action", action, sl.Err(err))
		s.metrics.Write(string(action), metrics.OutcomeFailure)
		return models.Failed(failure)
	}

	result := models.NewWriteResult(raw)
	if !result.Success {
		s.log.Warn("remote write rejected", "action", action, "status", raw["status"], "message", result.Message)
		s.metrics.Write(string(action), metrics.OutcomeFailure)
		return result
	}

	s.log.Debug("remote write succeeded", "action", action)
	s.metrics.Write(string(action), metrics.OutcomeSuccess)
	return result
}

func fetch[T any](
	ctx context.Context,
	s *DataService,
	kind models.Kind,
	decode func(json.RawMessage) ([]T, error),
	fallback func() []T,
) []T {
	if s.backend == nil {
		s.log.Debug("no backend configured, serving sample data", "kind", kind)
		s.metrics.Fallback(string(kind), metrics.ReasonUnconfigured)
		return fallback()
	}

	env, err := s.backend.Fetch(ctx, kind.Action())
	if err != nil {
		s.log.Error("remote read failed, serving sample data", "kind", kind, sl.Err(err))
		s.metrics.Fallback(string(kind), metrics.ReasonNetwork)
		return fallback()
	}

	if !env.OK() {
		s.log.Warn("remote read returned no data, serving sample data", "kind", kind, "status", env.Status, "message", env.Message)
		s.metrics.Fallback(string(kind), metrics.ReasonStatus)
		return fallback()
	}

	items, err := decode(env.Data)
	if err != nil {
		s.log.Error("remote read was malformed, serving sample data", "kind", kind, sl.Err(err))
		s.metrics.Fallback(string(kind), metrics.ReasonMalformed)
		return fallback()
	}

	s.log.Debug("remote read succeeded", "kind", kind, "count", len(items))
	return items
}
