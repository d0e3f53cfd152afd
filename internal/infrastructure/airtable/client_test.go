package airtable

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/karakusgokhan/team-hub/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient("key_test", "app_test", 0, logger.NewLogger())
	c.SetBaseURL(srv.URL)
	return c
}

func TestListFollowsPagination(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer key_test", r.Header.Get("Authorization"))
		assert.Equal(t, "/app_test/Events", r.URL.Path)
		calls++
		if r.URL.Query().Get("offset") == "" {
			json.NewEncoder(w).Encode(map[string]any{
				"records": []map[string]any{
					{"id": "rec1", "fields": map[string]any{"Title": "one"}},
				},
				"offset": "page2",
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"records": []map[string]any{
				{"id": "rec2", "fields": map[string]any{"Title": "two"}},
			},
		})
	})

	records, err := c.List(context.Background(), TableEvents, ListParams{})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, records, 2)
	assert.Equal(t, "rec1", records[0].ID)
	assert.Equal(t, "two", String(records[1].Fields, "Title"))
}

func TestCreateReturnsServerRecord(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var body struct {
			Fields map[string]any `json:"fields"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "All Hands", body.Fields["Title"])

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"id":          "recNew",
			"createdTime": "2026-02-23T09:00:00.000Z",
			"fields":      body.Fields,
		})
	})

	rec, err := c.Create(context.Background(), TableEvents, map[string]any{"Title": "All Hands"})
	require.NoError(t, err)
	assert.Equal(t, "recNew", rec.ID)
	assert.False(t, rec.CreatedTime.IsZero())
}

func TestErrorEnvelopeDecoded(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "Could not find table Events"},
		})
	})

	_, err := c.List(context.Background(), TableEvents, ListParams{})
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "Could not find table")
}

func TestTestConnectionTaxonomy(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrInvalidAPIKey},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrInvalidAPIKey},
		{name: "base missing", status: http.StatusNotFound, wantErr: ErrBaseNotFound},
		{name: "table missing", status: http.StatusUnprocessableEntity, wantErr: ErrTableMissing},
		{name: "reachable", status: http.StatusOK, wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.status == http.StatusOK {
					w.Write([]byte(`{"records":[]}`))
				}
			})
			err := c.TestConnection(context.Background())
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestUnconfiguredClientFailsFast(t *testing.T) {
	c := NewClient("", "", 0, logger.NewLogger())
	_, err := c.List(context.Background(), TableEvents, ListParams{})
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.ErrorIs(t, c.TestConnection(context.Background()), ErrNotConfigured)
}

func TestFieldAccessors(t *testing.T) {
	fields := map[string]any{
		"Title":    "check",
		"Pinned":   true,
		"Duration": float64(45),
	}
	assert.Equal(t, "check", String(fields, "Title"))
	assert.Equal(t, "", String(fields, "Missing"))
	assert.True(t, Bool(fields, "Pinned"))
	assert.False(t, Bool(fields, "Missing"))
	assert.Equal(t, 45, Int(fields, "Duration"))
	assert.Equal(t, 0, Int(fields, "Missing"))
}
