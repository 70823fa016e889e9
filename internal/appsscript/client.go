package appsscript

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/lumina-reserve/backend/internal/models"
)

const maxBodyBytes = 10 << 20

var (
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrDecode           = errors.New("failed to decode response")
)

// Client talks to a Google Apps Script web app that fronts the spreadsheet.
// Reads are GET ?action=..., writes are POST {"action", "data"}.
type Client struct {
	endpoint string
	client   *http.Client
	log      *slog.Logger
}

// New creates a client for the given web app URL
func New(endpoint string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		log:      log,
	}
}

// Fetch issues a read action and decodes the {status, data} envelope
func (c *Client) Fetch(ctx context.Context, action string) (*models.Envelope, error) {
	const op = "appsscript.Fetch"

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid endpoint: %w", op, err)
	}
	q := u.Query()
	q.Set("action", action)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", op, err)
	}

	c.log.Debug("fetching", "action", action)

	var env models.Envelope
	if err := c.do(req, &env); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, action, err)
	}
	return &env, nil
}

// Post issues a write action and returns the raw response object
func (c *Client) Post(ctx context.Context, action models.WriteAction, payload any) (map[string]any, error) {
	const op = "appsscript.Post"

	body, err := json.Marshal(models.WriteRequest{Action: action, Data: payload})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to encode payload: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", op, err)
	}
	// Apps Script web apps only accept simple requests
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	c.log.Debug("submitting", "action", action)

	var raw map[string]any
	if err := c.do(req, &raw); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, action, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%s: %s: %w: empty body", op, action, ErrDecode)
	}
	return raw, nil
}

func (c *Client) do(req *http.Request, v any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}
