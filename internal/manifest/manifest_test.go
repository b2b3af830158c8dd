package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipes.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeManifest(t, `{
  "recipes": [
    {
      "title_es": "Ceviche",
      "title_en": "Ceviche",
      "description_es": "Pescado marinado",
      "ingredients_es": ["pescado", "limón"],
      "steps_es": ["Marinar", "Servir"],
      "category": "aperitivos",
      "difficulty": "easy",
      "servings": 4,
      "prep_time_minutes": 30,
      "tags": ["mariscos"]
    }
  ]
}`)

	records, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	rec := records[0]
	if rec.Title() != "Ceviche" {
		t.Errorf("Title() = %q", rec.Title())
	}
	if rec.Servings != 4 || rec.PrepTimeMinutes != 30 {
		t.Errorf("numeric fields not decoded: %+v", rec)
	}
	if len(rec.IngredientsES) != 2 || len(rec.StepsES) != 2 {
		t.Errorf("list fields not decoded: %+v", rec)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing manifest")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeManifest(t, `{"recipes": [`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed manifest")
	}
}

func TestLoadRejectsUntitledRecord(t *testing.T) {
	path := writeManifest(t, `{"recipes": [{"title_es": "  "}]}`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for record without title_es")
	}
}

func TestLoadEmptyCollection(t *testing.T) {
	path := writeManifest(t, `{"recipes": []}`)
	records, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("len(records) = %d, want 0", len(records))
	}
}
