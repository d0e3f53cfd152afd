package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/karakusgokhan/team-hub/pkg/logger"
	"go.uber.org/zap"
)

const baseURL = "https://api.airtable.com/v0"

// Table names must match what exists in the Airtable base.
const (
	TableTeamMembers = "TeamMembers"
	TableCheckIns    = "DailyCheckIns"
	TablePriorities  = "WeeklyPriorities"
	TableMessages    = "Messages"
	TableDecisions   = "Decisions"
	TableTasks       = "Tasks"
	TableEvents      = "Events"
)

// Error taxonomy for connection testing. The messages mirror what the
// settings screen shows the user.
var (
	ErrNotConfigured = errors.New("airtable: api key and base id are required")
	ErrInvalidAPIKey = errors.New("airtable: invalid api key")
	ErrBaseNotFound  = errors.New("airtable: base not found, check your base id")
	ErrTableMissing  = errors.New("airtable: table not found, create it in the base")
)

// APIError is a non-2xx response from the Airtable API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("airtable: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("airtable: request failed with status %d", e.StatusCode)
}

// Record is one row of a table. Fields is the raw field map; the domain
// services own the mapping to typed models.
type Record struct {
	ID          string         `json:"id"`
	CreatedTime time.Time      `json:"createdTime"`
	Fields      map[string]any `json:"fields"`
}

// ListParams are the subset of Airtable list options the services use.
type ListParams struct {
	FilterByFormula string
	MaxRecords      int
	SortField       string
	SortDirection   string // "asc" or "desc"
}

// Client talks to one Airtable base over authenticated HTTPS.
type Client struct {
	apiKey     string
	baseID     string
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewClient builds a client for the given credential pair. The caller is
// expected to have checked that live mode is configured; a client with
// empty credentials returns ErrNotConfigured from every call.
func NewClient(apiKey, baseID string, timeout time.Duration, log *logger.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiKey:     apiKey,
		baseID:     baseID,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
	}
}

// SetBaseURL points the client at a different API root. Tests use this
// to talk to a local stub server.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

func (c *Client) configured() bool {
	return c.apiKey != "" && c.baseID != ""
}

func (c *Client) tableURL(table string) string {
	return fmt.Sprintf("%s/%s/%s", c.baseURL, c.baseID, url.PathEscape(table))
}

// List fetches records from a table, following pagination offsets until
// the result set is exhausted or MaxRecords is reached.
func (c *Client) List(ctx context.Context, table string, params ListParams) ([]Record, error) {
	if !c.configured() {
		return nil, ErrNotConfigured
	}

	var out []Record
	offset := ""
	for {
		q := url.Values{}
		if params.FilterByFormula != "" {
			q.Set("filterByFormula", params.FilterByFormula)
		}
		if params.MaxRecords > 0 {
			q.Set("maxRecords", fmt.Sprint(params.MaxRecords))
		}
		if params.SortField != "" {
			q.Set("sort[0][field]", params.SortField)
			dir := params.SortDirection
			if dir == "" {
				dir = "asc"
			}
			q.Set("sort[0][direction]", dir)
		}
		if offset != "" {
			q.Set("offset", offset)
		}

		var page struct {
			Records []Record `json:"records"`
			Offset  string   `json:"offset"`
		}
		if err := c.do(ctx, http.MethodGet, c.tableURL(table)+"?"+q.Encode(), nil, &page); err != nil {
			return nil, err
		}
		out = append(out, page.Records...)

		if page.Offset == "" || (params.MaxRecords > 0 && len(out) >= params.MaxRecords) {
			break
		}
		offset = page.Offset
	}
	return out, nil
}

// Create inserts a record and returns it enriched with the server id
// and creation timestamp.
func (c *Client) Create(ctx context.Context, table string, fields map[string]any) (*Record, error) {
	if !c.configured() {
		return nil, ErrNotConfigured
	}
	body := map[string]any{"fields": fields}
	var rec Record
	if err := c.do(ctx, http.MethodPost, c.tableURL(table), body, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update patches the given fields of a record, leaving others untouched.
func (c *Client) Update(ctx context.Context, table, recordID string, fields map[string]any) (*Record, error) {
	if !c.configured() {
		return nil, ErrNotConfigured
	}
	body := map[string]any{"fields": fields}
	var rec Record
	if err := c.do(ctx, http.MethodPatch, c.tableURL(table)+"/"+url.PathEscape(recordID), body, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete removes a record.
func (c *Client) Delete(ctx context.Context, table, recordID string) error {
	if !c.configured() {
		return ErrNotConfigured
	}
	return c.do(ctx, http.MethodDelete, c.tableURL(table)+"/"+url.PathEscape(recordID), nil, nil)
}

// TestConnection verifies the credential pair against the TeamMembers
// table and maps the usual failure modes to the user-facing taxonomy.
func (c *Client) TestConnection(ctx context.Context) error {
	if !c.configured() {
		return ErrNotConfigured
	}
	_, err := c.List(ctx, TableTeamMembers, ListParams{MaxRecords: 1})
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return ErrInvalidAPIKey
		case http.StatusNotFound:
			return ErrBaseNotFound
		case http.StatusUnprocessableEntity:
			return ErrTableMissing
		}
	}
	return err
}

func (c *Client) do(ctx context.Context, method, rawURL string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("airtable: encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return fmt.Errorf("airtable: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("airtable: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr == nil {
			apiErr.Message = envelope.Error.Message
		}
		c.logger.Warn("airtable request failed",
			zap.String("method", method),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message),
		)
		return apiErr
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("airtable: decode response: %w", err)
	}
	return nil
}
