package storage

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
)

type fakeDoer struct {
	lastReq *http.Request
	body    string
	status  int
	err     error
}

func (f *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	f.lastReq = req
	if req.Body != nil {
		data, _ := io.ReadAll(req.Body)
		f.body = string(data)
	}
	if f.err != nil {
		return nil, f.err
	}
	status := f.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader("")),
	}, nil
}

func TestBucketUpload(t *testing.T) {
	doer := &fakeDoer{}
	store := NewBucketStore("https://example.supabase.co/", "recipe-images", "service-key", doer)

	ref, err := store.Upload(context.Background(), "ceviche.jpg", strings.NewReader("bytes"), "image/jpeg")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	req := doer.lastReq
	if req.Method != http.MethodPost {
		t.Errorf("method = %s, want POST", req.Method)
	}
	wantURL := "https://example.supabase.co/storage/v1/object/recipe-images/ceviche.jpg"
	if req.URL.String() != wantURL {
		t.Errorf("url = %s, want %s", req.URL.String(), wantURL)
	}
	if got := req.Header.Get("Authorization"); got != "Bearer service-key" {
		t.Errorf("authorization header = %q", got)
	}
	if got := req.Header.Get("Content-Type"); got != "image/jpeg" {
		t.Errorf("content-type = %q", got)
	}
	if got := req.Header.Get("x-upsert"); got != "true" {
		t.Errorf("x-upsert = %q, want true (re-runs must overwrite)", got)
	}
	if doer.body != "bytes" {
		t.Errorf("request body = %q", doer.body)
	}
	wantRef := "https://example.supabase.co/storage/v1/object/public/recipe-images/ceviche.jpg"
	if ref != wantRef {
		t.Errorf("ref = %s, want %s", ref, wantRef)
	}
}

func TestBucketUploadErrorStatus(t *testing.T) {
	doer := &fakeDoer{status: http.StatusForbidden}
	store := NewBucketStore("https://example.supabase.co", "recipe-images", "key", doer)

	if _, err := store.Upload(context.Background(), "x.png", strings.NewReader(""), "image/png"); err == nil {
		t.Fatal("expected error for non-2xx upload response")
	}
}

func TestBucketExists(t *testing.T) {
	doer := &fakeDoer{status: http.StatusNotFound}
	store := NewBucketStore("https://example.supabase.co", "recipe-images", "key", doer)

	ok, err := store.Exists(context.Background(), "x.png")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if ok {
		t.Error("Exists = true for 404 response")
	}
	if doer.lastReq.Method != http.MethodHead {
		t.Errorf("method = %s, want HEAD", doer.lastReq.Method)
	}

	doer.status = http.StatusOK
	ok, err = store.Exists(context.Background(), "x.png")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !ok {
		t.Error("Exists = false for 200 response")
	}
}
