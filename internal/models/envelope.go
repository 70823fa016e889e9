package models

import (
	"bytes"
	"encoding/json"
)

// StatusSuccess is the only status the spreadsheet backend uses for success
const StatusSuccess = "success"

// Kind names a readable collection
type Kind string

const (
	KindMenu         Kind = "menu"
	KindReviews      Kind = "reviews"
	KindReservations Kind = "reservations"
	KindEvents       Kind = "events"
)

// Kinds lists every readable collection
var Kinds = []Kind{KindMenu, KindReviews, KindReservations, KindEvents}

// Action returns the remote read action for the kind
func (k Kind) Action() string {
	switch k {
	case KindMenu:
		return "getMenu"
	case KindReviews:
		return "getReviews"
	case KindReservations:
		return "getReservations"
	case KindEvents:
		return "getEvents"
	default:
		return ""
	}
}

// WriteAction names a remote write
type WriteAction string

const (
	ActionCreateReservation WriteAction = "createReservation"
	ActionAddSubscriber     WriteAction = "addSubscriber"
	ActionCreateEvent       WriteAction = "createEvent"
	ActionDeleteEvent       WriteAction = "deleteEvent"
)

// Envelope is the response shape of a remote read
type Envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// OK reports a success status carrying data
func (e *Envelope) OK() bool {
	if e == nil || e.Status != StatusSuccess {
		return false
	}
	data := bytes.TrimSpace(e.Data)
	return len(data) > 0 && !bytes.Equal(data, []byte("null"))
}

// WriteRequest is the body of a remote write
type WriteRequest struct {
	Action WriteAction `json:"action"`
	Data   any         `json:"data"`
}

// DeleteEventPayload identifies the event to remove
type DeleteEventPayload struct {
	ID string `json:"id"`
}

// WriteResult is the normalized outcome of a write: the success flag
// merged with every field of the raw response.
type WriteResult struct {
	Success bool
	Message string
	Fields  map[string]any
}

// NewWriteResult normalizes a raw backend response
func NewWriteResult(raw map[string]any) WriteResult {
	res := WriteResult{Fields: raw}
	if status, ok := raw["status"].(string); ok {
		res.Success = status == StatusSuccess
	}
	if msg, ok := raw["message"].(string); ok {
		res.Message = msg
	}
	return res
}

// Succeeded builds a successful result with a message
func Succeeded(message string) WriteResult {
	return WriteResult{Success: true, Message: message}
}

// Failed builds a failed result with a message
func Failed(message string) WriteResult {
	return WriteResult{Success: false, Message: message}
}

func (r WriteResult) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Fields)+2)
	for k, v := range r.Fields {
		out[k] = v
	}
	if _, ok := out["message"]; !ok && r.Message != "" {
		out["message"] = r.Message
	}
	// success is authoritative even if the raw response carried its own
	out["success"] = r.Success
	return json.Marshal(out)
}

func (r *WriteResult) UnmarshalJSON(b []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	success, _ := raw["success"].(bool)
	message, _ := raw["message"].(string)
	delete(raw, "success")
	*r = WriteResult{Success: success, Message: message, Fields: raw}
	return nil
}
