package sheets

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/lumina-reserve/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const spreadsheetID = "sheet-1"

// fakeSheets serves the subset of the Sheets REST API the client uses
type fakeSheets struct {
	mu   sync.Mutex
	tabs map[string][][]interface{}
}

func (f *fakeSheets) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	prefix := "/v4/spreadsheets/" + spreadsheetID
	path := r.URL.Path

	switch {
	case r.Method == http.MethodGet && strings.HasPrefix(path, prefix+"/values/"):
		tab := strings.TrimPrefix(path, prefix+"/values/")
		writeJSON(w, map[string]any{"range": tab, "majorDimension": "ROWS", "values": f.tabs[tab]})

	case r.Method == http.MethodPost && strings.HasSuffix(path, ":append"):
		tab := strings.TrimSuffix(strings.TrimPrefix(path, prefix+"/values/"), ":append")
		var vr sheets.ValueRange
		if err := json.NewDecoder(r.Body).Decode(&vr); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.tabs[tab] = append(f.tabs[tab], vr.Values...)
		writeJSON(w, map[string]any{"spreadsheetId": spreadsheetID})

	case r.Method == http.MethodGet && path == prefix:
		writeJSON(w, map[string]any{
			"sheets": []map[string]any{
				{"properties": map[string]any{"sheetId": 11, "title": TabMenu}},
				{"properties": map[string]any{"sheetId": 42, "title": TabEvents}},
			},
		})

	case r.Method == http.MethodPost && path == prefix+":batchUpdate":
		var req sheets.BatchUpdateSpreadsheetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		for _, rq := range req.Requests {
			rng := rq.DeleteDimension.Range
			if rng.SheetId != 42 {
				http.Error(w, "wrong sheet", http.StatusBadRequest)
				return
			}
			rows := f.tabs[TabEvents]
			f.tabs[TabEvents] = append(rows[:rng.StartIndex:rng.StartIndex], rows[rng.EndIndex:]...)
		}
		writeJSON(w, map[string]any{"spreadsheetId": spreadsheetID})

	default:
		http.NotFound(w, r)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func newTestClient(t *testing.T, fake *fakeSheets) *Client {
	t.Helper()
	return newTestClientFor(t, fake, time.Second)
}

func newTestClientFor(t *testing.T, handler http.Handler, timeout time.Duration) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewWithOptions(context.Background(), spreadsheetID, timeout,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		option.WithEndpoint(srv.URL+"/"),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)
	return client
}

func TestClient_FetchMenu(t *testing.T) {
	fake := &fakeSheets{tabs: map[string][][]interface{}{
		TabMenu: {
			{"Category", "Name", "Price", "Description", "Image"},
			{"Signature Brews", "Velvet Truffle Latte", "$8.50", "Espresso", "media/latte.jpg"},
			{},
			{"Soups", "Soup", "$9.00"},
		},
	}}
	client := newTestClient(t, fake)

	env, err := client.Fetch(context.Background(), "getMenu")
	require.NoError(t, err)
	require.True(t, env.OK())

	items, err := models.DecodeMenu(env.Data)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Velvet Truffle Latte", items[0].Name)
	assert.Equal(t, "$9.00", items[1].Price)
	assert.Empty(t, items[1].Image)
}

func TestClient_FetchEmptyTab(t *testing.T) {
	client := newTestClient(t, &fakeSheets{tabs: map[string][][]interface{}{}})

	env, err := client.Fetch(context.Background(), "getReservations")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestClient_FetchUnknownAction(t *testing.T) {
	client := newTestClient(t, &fakeSheets{tabs: map[string][][]interface{}{}})

	_, err := client.Fetch(context.Background(), "getOrders")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestClient_AppendReservation(t *testing.T) {
	fake := &fakeSheets{tabs: map[string][][]interface{}{
		TabReservations: {{"Name", "Email", "Phone", "Date", "Time", "Guests"}},
	}}
	client := newTestClient(t, fake)

	raw, err := client.Post(context.Background(), models.ActionCreateReservation, models.Reservation{
		Name: "Ann", Email: "ann@example.com", Date: "2024-03-01", Time: "19:00", Guests: "2",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusSuccess, raw["status"])

	rows := fake.tabs[TabReservations]
	require.Len(t, rows, 2)
	assert.Equal(t, []interface{}{"Ann", "ann@example.com", "", "2024-03-01", "19:00", "2"}, rows[1])
}

func TestClient_AppendWithoutHeader(t *testing.T) {
	client := newTestClient(t, &fakeSheets{tabs: map[string][][]interface{}{}})

	_, err := client.Post(context.Background(), models.ActionAddSubscriber, models.Subscriber{Email: "a@b.c", Name: "A"})
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestClient_DeleteEvent(t *testing.T) {
	fake := &fakeSheets{tabs: map[string][][]interface{}{
		TabEvents: {
			{"id", "title", "date"},
			{"100", "Cupping", "2024-01-01"},
			{"200", "Jazz", "2024-01-02"},
		},
	}}
	client := newTestClient(t, fake)

	raw, err := client.Post(context.Background(), models.ActionDeleteEvent, models.DeleteEventPayload{ID: "200"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusSuccess, raw["status"])
	require.Len(t, fake.tabs[TabEvents], 2)
	assert.Equal(t, "100", fake.tabs[TabEvents][1][0])

	raw, err = client.Post(context.Background(), models.ActionDeleteEvent, models.DeleteEventPayload{ID: "999"})
	require.NoError(t, err)
	assert.Equal(t, "error", raw["status"])
}

func TestClient_StalledAPITimesOut(t *testing.T) {
	stalled := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	client := newTestClientFor(t, stalled, 100*time.Millisecond)

	start := time.Now()
	_, err := client.Fetch(context.Background(), "getMenu")
	require.Error(t, err)

	_, err = client.Post(context.Background(), models.ActionAddSubscriber, models.Subscriber{Email: "a@example.com", Name: "A"})
	require.Error(t, err)

	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestRecordsFromRows(t *testing.T) {
	records := recordsFromRows([][]interface{}{
		{"id", "", "title"},
		{float64(1700000000000), "skipped", "Latte"},
	})
	require.Len(t, records, 1)
	assert.Equal(t, map[string]any{"id": float64(1700000000000), "title": "Latte"}, records[0])
	assert.Equal(t, "1700000000000", cellString(records[0]["id"]))
}
