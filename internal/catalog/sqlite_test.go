package catalog

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"recetario/internal/manifest"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteUpsertOverwrites(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	rec := manifest.Record{
		TitleES:       "Ceviche",
		TitleEN:       "Ceviche",
		IngredientsES: []string{"pescado"},
		Category:      "aperitivos",
		Servings:      4,
	}
	if err := store.Upsert(ctx, rec, "https://example/ceviche.jpg"); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	rec.Servings = 6
	if err := store.Upsert(ctx, rec, "https://example/ceviche_v2.jpg"); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	var count, servings int
	var imageURL sql.NullString
	if err := store.db.QueryRow("SELECT COUNT(*) FROM recipes").Scan(&count); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("row count = %d, want 1 (upsert must not duplicate)", count)
	}
	err := store.db.QueryRow("SELECT servings, image_url FROM recipes WHERE title_es = ?", "Ceviche").
		Scan(&servings, &imageURL)
	if err != nil {
		t.Fatalf("read row: %v", err)
	}
	if servings != 6 {
		t.Errorf("servings = %d, want 6", servings)
	}
	if !imageURL.Valid || imageURL.String != "https://example/ceviche_v2.jpg" {
		t.Errorf("image_url = %+v", imageURL)
	}
}

func TestSQLiteUpsertNullImage(t *testing.T) {
	store := openTestStore(t)

	rec := manifest.Record{TitleES: "Torta de Queso"}
	if err := store.Upsert(context.Background(), rec, ""); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	var imageURL sql.NullString
	err := store.db.QueryRow("SELECT image_url FROM recipes WHERE title_es = ?", "Torta de Queso").Scan(&imageURL)
	if err != nil {
		t.Fatalf("read row: %v", err)
	}
	if imageURL.Valid {
		t.Errorf("image_url = %q, want NULL", imageURL.String)
	}
}

func TestSQLiteListColumnsAreJSON(t *testing.T) {
	store := openTestStore(t)

	rec := manifest.Record{
		TitleES: "Arroz a la Piña",
		StepsES: []string{"Cocinar el arroz", "Añadir la piña"},
	}
	if err := store.Upsert(context.Background(), rec, ""); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	var steps, tags string
	err := store.db.QueryRow("SELECT steps_es, tags FROM recipes WHERE title_es = ?", "Arroz a la Piña").
		Scan(&steps, &tags)
	if err != nil {
		t.Fatalf("read row: %v", err)
	}
	if steps != `["Cocinar el arroz","Añadir la piña"]` {
		t.Errorf("steps_es = %s", steps)
	}
	if tags != "[]" {
		t.Errorf("tags = %s, want empty JSON array for nil slice", tags)
	}
}

func TestSQLiteReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := store.Upsert(context.Background(), manifest.Record{TitleES: "Sabajón"}, ""); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	var count int
	if err := reopened.db.QueryRow("SELECT COUNT(*) FROM recipes").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d after reopen, want 1", count)
	}
}
