package storage

import (
	"context"
	"io"
)

// Store transfers assets to the object store.
type Store interface {
	// Upload writes body under key, overwriting any existing object, and
	// returns the public reference for the key.
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)

	// Exists reports whether an object is already stored under key.
	Exists(ctx context.Context, key string) (bool, error)
}
