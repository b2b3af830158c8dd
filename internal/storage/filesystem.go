package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemStore implements Store on a local directory acting as the
// bucket. Keys map directly to filenames; references use the file scheme so
// report output stays copy-pasteable.
type FilesystemStore struct {
	dir string
}

// NewFilesystemStore creates the backing directory if needed.
func NewFilesystemStore(dir string) (*FilesystemStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store directory %s: %w", dir, err)
	}
	return &FilesystemStore{dir: dir}, nil
}

// Upload writes body to the keyed file, truncating any previous content.
func (s *FilesystemStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path, err := s.keyPath(key)
	if err != nil {
		return "", err
	}
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := io.Copy(out, body); err != nil {
		_ = out.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return "file://" + path, nil
}

// Exists reports whether the keyed file is present.
func (s *FilesystemStore) Exists(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	path, err := s.keyPath(key)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	return true, nil
}

func (s *FilesystemStore) keyPath(key string) (string, error) {
	path := filepath.Join(s.dir, key)
	if !strings.HasPrefix(filepath.Clean(path), filepath.Clean(s.dir)+string(filepath.Separator)) {
		return "", fmt.Errorf("key %q escapes store directory", key)
	}
	return path, nil
}
