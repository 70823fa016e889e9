package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lumina-reserve/backend/internal/models"
)

var (
	ErrCorruptOverrides = errors.New("override entry is not a JSON event array")
)

// OverrideStore holds the events created in demo mode. The whole list lives
// under one named entry and is rewritten on every change.
type OverrideStore interface {
	Load(ctx context.Context) ([]models.Event, error)
	Save(ctx context.Context, events []models.Event) error
}

func decodeOverrides(data []byte) ([]models.Event, error) {
	if len(data) == 0 {
		return []models.Event{}, nil
	}
	var events []models.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptOverrides, err)
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

func encodeOverrides(events []models.Event) ([]byte, error) {
	if events == nil {
		events = []models.Event{}
	}
	return json.Marshal(events)
}
