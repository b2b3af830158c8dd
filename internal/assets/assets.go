package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// List returns the names of regular files directly under dir, sorted
// alphabetically. A missing or unreadable directory is a fatal precondition
// failure for the run.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list image directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// ContentType maps a filename extension to the upload content type.
// Unrecognized extensions default to JPEG, matching how the bucket treats
// untyped uploads.
func ContentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "image/jpeg"
	}
}
