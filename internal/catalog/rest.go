package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"recetario/internal/manifest"
)

// HTTPDoer describes the HTTP client used by the REST store.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RESTStore upserts recipes into the hosted record service, which speaks the
// PostgREST shape: POST /rest/v1/{table} with merge-duplicates resolution on
// the title_es conflict key.
type RESTStore struct {
	baseURL    string
	table      string
	serviceKey string
	client     HTTPDoer
}

// NewRESTStore builds a REST record store. A nil client gets a default with
// a request timeout.
func NewRESTStore(baseURL, table, serviceKey string, client HTTPDoer) *RESTStore {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &RESTStore{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		table:      strings.TrimSpace(table),
		serviceKey: strings.TrimSpace(serviceKey),
		client:     client,
	}
}

type restRecord struct {
	manifest.Record
	ImageURL  *string `json:"image_url"`
	UpdatedAt string  `json:"updated_at"`
}

// Upsert posts the full record; rows with the same title_es are merged
// rather than duplicated.
func (s *RESTStore) Upsert(ctx context.Context, rec manifest.Record, imageURL string) error {
	payload := restRecord{Record: rec, UpdatedAt: time.Now().UTC().Format(time.RFC3339)}
	if trimmed := strings.TrimSpace(imageURL); trimmed != "" {
		payload.ImageURL = &trimmed
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode record %q: %w", rec.Title(), err)
	}

	endpoint := fmt.Sprintf("%s/rest/v1/%s?on_conflict=title_es", s.baseURL, url.PathEscape(s.table))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build upsert request for %q: %w", rec.Title(), err)
	}
	req.Header.Set("apikey", s.serviceKey)
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "resolution=merge-duplicates,return=minimal")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("upsert %q: %w", rec.Title(), err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("upsert %q: service returned %d: %s", rec.Title(), resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	return nil
}

// Close is a no-op for the REST store.
func (s *RESTStore) Close() error {
	return nil
}
