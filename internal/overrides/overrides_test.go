package overrides

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.toml")
	content := `[mappings]
"Arroz a la Piña" = "arroz_a_la_pina.png"
"Pollo al Strogonoff" = "pollo_strogonoff.png"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write overrides: %v", err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("len(table) = %d, want 2", len(table))
	}
	if table["Arroz a la Piña"] != "arroz_a_la_pina.png" {
		t.Errorf("mapping = %q", table["Arroz a la Piña"])
	}
}

func TestLoadMissingFileYieldsEmptyTable(t *testing.T) {
	table, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(table) != 0 {
		t.Errorf("len(table) = %d, want 0", len(table))
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.toml")
	if err := os.WriteFile(path, []byte("[mappings\n"), 0o644); err != nil {
		t.Fatalf("write overrides: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed overrides file")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.toml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write overrides: %v", err)
	}
	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if table == nil {
		t.Fatal("table is nil, want empty map")
	}
}
