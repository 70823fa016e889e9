package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/lumina-reserve/backend/internal/models"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrNoHeader      = errors.New("tab has no header row")
	ErrTabNotFound   = errors.New("tab not found")
)

// Tabs hold one collection each; the first row is the header.
const (
	TabMenu         = "Menu"
	TabReviews      = "Reviews"
	TabReservations = "Reservations"
	TabEvents       = "Events"
	TabSubscribers  = "Subscribers"
)

var readTabs = map[string]string{
	models.KindMenu.Action():         TabMenu,
	models.KindReviews.Action():      TabReviews,
	models.KindReservations.Action(): TabReservations,
	models.KindEvents.Action():       TabEvents,
}

var appendTabs = map[models.WriteAction]string{
	models.ActionCreateReservation: TabReservations,
	models.ActionAddSubscriber:     TabSubscribers,
	models.ActionCreateEvent:       TabEvents,
}

// Client reads and writes the café spreadsheet through the Sheets API,
// answering with the same envelopes the Apps Script web app produces.
type Client struct {
	service       *sheets.Service
	spreadsheetID string
	timeout       time.Duration
	log           *slog.Logger
}

type Config struct {
	SpreadsheetID   string
	CredentialsJSON []byte
	Timeout         time.Duration // bounds each Fetch or Post, zero means unbounded
}

// New creates a client authenticated with a service account key
func New(ctx context.Context, cfg Config, log *slog.Logger) (*Client, error) {
	return NewWithOptions(ctx, cfg.SpreadsheetID, cfg.Timeout, log, option.WithCredentialsJSON(cfg.CredentialsJSON))
}

// NewWithOptions creates a client with explicit API options
func NewWithOptions(ctx context.Context, spreadsheetID string, timeout time.Duration, log *slog.Logger, opts ...option.ClientOption) (*Client, error) {
	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		service:       service,
		spreadsheetID: spreadsheetID,
		timeout:       timeout,
		log:           log,
	}, nil
}

// Fetch reads the tab behind a read action
func (c *Client) Fetch(ctx context.Context, action string) (*models.Envelope, error) {
	const op = "sheets.Fetch"

	tab, ok := readTabs[action]
	if !ok {
		return nil, fmt.Errorf("%s: %w: %s", op, ErrUnknownAction, action)
	}

	c.log.Debug("reading tab", "tab", tab)

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	values, err := c.readTab(ctx, tab)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	records := recordsFromRows(values)
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.Envelope{Status: models.StatusSuccess, Data: data}, nil
}

// Post performs a write action
func (c *Client) Post(ctx context.Context, action models.WriteAction, payload any) (map[string]any, error) {
	const op = "sheets.Post"

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if action == models.ActionDeleteEvent {
		raw, err := c.deleteEvent(ctx, payload)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return raw, nil
	}

	tab, ok := appendTabs[action]
	if !ok {
		return nil, fmt.Errorf("%s: %w: %s", op, ErrUnknownAction, action)
	}

	record, err := toRecord(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	values, err := c.readTab(ctx, tab)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("%s: %w: %s", op, ErrNoHeader, tab)
	}

	row := rowFromRecord(values[0], record)
	_, err = c.service.Spreadsheets.Values.Append(c.spreadsheetID, tab, &sheets.ValueRange{
		Values: [][]interface{}{row},
	}).ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to append to %s: %w", op, tab, err)
	}

	c.log.Debug("row appended", "tab", tab)

	return map[string]any{
		"status":  models.StatusSuccess,
		"message": fmt.Sprintf("Row added to %s", tab),
	}, nil
}

func (c *Client) deleteEvent(ctx context.Context, payload any) (map[string]any, error) {
	record, err := toRecord(payload)
	if err != nil {
		return nil, err
	}
	id := cellString(record["id"])

	values, err := c.readTab(ctx, TabEvents)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoHeader, TabEvents)
	}

	idCol := -1
	for i, h := range values[0] {
		if strings.EqualFold(strings.TrimSpace(cellString(h)), "id") {
			idCol = i
			break
		}
	}
	if idCol < 0 {
		return nil, fmt.Errorf("%w: %s has no id column", ErrNoHeader, TabEvents)
	}

	rowIndex := -1
	for i := 1; i < len(values); i++ {
		if idCol < len(values[i]) && cellString(values[i][idCol]) == id {
			rowIndex = i
			break
		}
	}
	if rowIndex < 0 {
		return map[string]any{"status": "error", "message": "Event not found"}, nil
	}

	sheetID, err := c.sheetID(ctx, TabEvents)
	if err != nil {
		return nil, err
	}

	_, err = c.service.Spreadsheets.BatchUpdate(c.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(rowIndex),
					EndIndex:   int64(rowIndex + 1),
				},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to delete row %d: %w", rowIndex, err)
	}

	return map[string]any{"status": models.StatusSuccess, "message": "Event deleted"}, nil
}

// withTimeout covers every API call of one Fetch or Post
func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *Client) readTab(ctx context.Context, tab string) ([][]interface{}, error) {
	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, tab).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", tab, err)
	}
	return resp.Values, nil
}

func (c *Client) sheetID(ctx context.Context, tab string) (int64, error) {
	spreadsheet, err := c.service.Spreadsheets.Get(c.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("failed to read spreadsheet: %w", err)
	}
	for _, s := range spreadsheet.Sheets {
		if s.Properties != nil && s.Properties.Title == tab {
			return s.Properties.SheetId, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrTabNotFound, tab)
}

// recordsFromRows turns rows into objects keyed by the header row.
// Blank rows are skipped, missing cells become empty strings.
func recordsFromRows(values [][]interface{}) []map[string]any {
	records := make([]map[string]any, 0)
	if len(values) == 0 {
		return records
	}

	header := values[0]
	for _, row := range values[1:] {
		if isBlank(row) {
			continue
		}
		record := make(map[string]any, len(header))
		for i, h := range header {
			key := strings.TrimSpace(cellString(h))
			if key == "" {
				continue
			}
			if i < len(row) {
				record[key] = row[i]
			} else {
				record[key] = ""
			}
		}
		records = append(records, record)
	}
	return records
}

// rowFromRecord orders record values by header, matching keys case-insensitively
func rowFromRecord(header []interface{}, record map[string]any) []interface{} {
	row := make([]interface{}, len(header))
	for i, h := range header {
		row[i] = cellString(record[strings.ToLower(strings.TrimSpace(cellString(h)))])
	}
	return row
}

func toRecord(payload any) (map[string]any, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("payload is not an object: %w", err)
	}
	record := make(map[string]any, len(raw))
	for k, v := range raw {
		record[strings.ToLower(k)] = v
	}
	return record, nil
}

func cellString(v any) string {
	if v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func isBlank(row []interface{}) bool {
	for _, cell := range row {
		if strings.TrimSpace(cellString(cell)) != "" {
			return false
		}
	}
	return true
}
