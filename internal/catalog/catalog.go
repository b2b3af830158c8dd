package catalog

import (
	"context"

	"recetario/internal/manifest"
)

// Store persists recipe records.
type Store interface {
	// Upsert writes the record keyed by its Spanish title. An empty
	// imageURL persists a NULL asset reference.
	Upsert(ctx context.Context, rec manifest.Record, imageURL string) error

	// Close releases any underlying connection.
	Close() error
}
