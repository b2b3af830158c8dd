package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"recetario/internal/manifest"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current catalog schema version. Bump this when the
// schema changes; mismatched databases must be recreated.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// SQLiteStore persists recipes in a local SQLite catalog database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// OpenSQLite initializes or connects to the catalog database at path and
// verifies its schema.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create catalog directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &SQLiteStore{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin schema tx: %w", err)
		}
		defer func() { _ = tx.Rollback() }()
		if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		return tx.Commit()
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to recreate)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

// Upsert inserts the record or updates the existing row with the same
// Spanish title. created_at is preserved across re-runs; updated_at always
// advances.
func (s *SQLiteStore) Upsert(ctx context.Context, rec manifest.Record, imageURL string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	columns := map[string]string{
		"ingredients_es": "",
		"ingredients_en": "",
		"steps_es":       "",
		"steps_en":       "",
		"tags":           "",
	}
	lists := map[string][]string{
		"ingredients_es": rec.IngredientsES,
		"ingredients_en": rec.IngredientsEN,
		"steps_es":       rec.StepsES,
		"steps_en":       rec.StepsEN,
		"tags":           rec.Tags,
	}
	for name, values := range lists {
		encoded, err := encodeList(values)
		if err != nil {
			return fmt.Errorf("encode %s for %q: %w", name, rec.Title(), err)
		}
		columns[name] = encoded
	}

	_, err := s.db.ExecContext(ctx, `
        INSERT INTO recipes (
            title_es, title_en, description_es, description_en,
            ingredients_es, ingredients_en, steps_es, steps_en,
            category, difficulty, servings, prep_time_minutes, tags,
            image_url, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(title_es) DO UPDATE SET
            title_en = excluded.title_en,
            description_es = excluded.description_es,
            description_en = excluded.description_en,
            ingredients_es = excluded.ingredients_es,
            ingredients_en = excluded.ingredients_en,
            steps_es = excluded.steps_es,
            steps_en = excluded.steps_en,
            category = excluded.category,
            difficulty = excluded.difficulty,
            servings = excluded.servings,
            prep_time_minutes = excluded.prep_time_minutes,
            tags = excluded.tags,
            image_url = excluded.image_url,
            updated_at = excluded.updated_at`,
		rec.TitleES,
		rec.TitleEN,
		rec.DescriptionES,
		rec.DescriptionEN,
		columns["ingredients_es"],
		columns["ingredients_en"],
		columns["steps_es"],
		columns["steps_en"],
		rec.Category,
		rec.Difficulty,
		rec.Servings,
		rec.PrepTimeMinutes,
		columns["tags"],
		nullableString(imageURL),
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("upsert %q: %w", rec.Title(), err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func encodeList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func nullableString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}
