package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	configPath    string
	manifestPath  string
	imagesDir     string
	overridesPath string
	bucketDir     string
	dbPath        string
	logDir        string
}

// setupCLITestEnv builds a fully local environment: filesystem object store,
// sqlite catalog, and a config file pointing at temp inputs.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	env := &cliTestEnv{
		configPath:    filepath.Join(base, "config.toml"),
		manifestPath:  filepath.Join(base, "recipes.json"),
		imagesDir:     filepath.Join(base, "images"),
		overridesPath: filepath.Join(base, "overrides.toml"),
		bucketDir:     filepath.Join(base, "bucket"),
		dbPath:        filepath.Join(base, "catalog.db"),
		logDir:        filepath.Join(base, "logs"),
	}
	for _, dir := range []string{env.imagesDir, env.logDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	content := fmt.Sprintf(`[paths]
manifest = %q
images_dir = %q
log_dir = %q
overrides_file = %q

[storage]
backend = "filesystem"
local_dir = %q

[catalog]
backend = "sqlite"
db_path = %q

[importer]
throttle_ms = 1

[logging]
format = "console"
level = "error"
`, env.manifestPath, env.imagesDir, env.logDir, env.overridesPath, env.bucketDir, env.dbPath)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return env
}

func (e *cliTestEnv) writeManifest(t *testing.T, titles ...string) {
	t.Helper()
	var entries []string
	for _, title := range titles {
		entries = append(entries, fmt.Sprintf(`{"title_es": %q, "title_en": "x"}`, title))
	}
	doc := fmt.Sprintf(`{"recipes": [%s]}`, strings.Join(entries, ", "))
	if err := os.WriteFile(e.manifestPath, []byte(doc), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
}

func (e *cliTestEnv) writeImages(t *testing.T, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(e.imagesDir, name), []byte("imagebytes"), 0o644); err != nil {
			t.Fatalf("write image %s: %v", name, err)
		}
	}
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
