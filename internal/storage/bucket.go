package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPDoer describes the HTTP client used by the bucket store.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// BucketStore uploads assets to a hosted storage bucket over HTTP. The
// service speaks the Supabase storage REST shape: objects are written with
// POST /storage/v1/object/{bucket}/{key} and served publicly from
// /storage/v1/object/public/{bucket}/{key}.
type BucketStore struct {
	baseURL    string
	bucket     string
	serviceKey string
	client     HTTPDoer
}

// NewBucketStore builds a bucket store for the given service endpoint. The
// client argument may be nil, in which case a default client with a request
// timeout is used.
func NewBucketStore(baseURL, bucket, serviceKey string, client HTTPDoer) *BucketStore {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &BucketStore{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		bucket:     strings.TrimSpace(bucket),
		serviceKey: strings.TrimSpace(serviceKey),
		client:     client,
	}
}

// Upload transfers body under key with x-upsert semantics so repeated runs
// overwrite rather than fail, then returns the public object URL.
func (s *BucketStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, url.PathEscape(s.bucket), url.PathEscape(key))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return "", fmt.Errorf("build upload request for %s: %w", key, err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return "", fmt.Errorf("upload %s: bucket returned %d: %s", key, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	return s.PublicURL(key), nil
}

// Exists probes the public object URL with a HEAD request.
func (s *BucketStore) Exists(ctx context.Context, key string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, s.PublicURL(key), nil)
	if err != nil {
		return false, fmt.Errorf("build exists request for %s: %w", key, err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("probe %s: %w", key, err)
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode >= http.StatusMultipleChoices:
		return false, fmt.Errorf("probe %s: bucket returned %d", key, resp.StatusCode)
	default:
		return true, nil
	}
}

// PublicURL returns the stable public reference for key.
func (s *BucketStore) PublicURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, url.PathEscape(s.bucket), url.PathEscape(key))
}
