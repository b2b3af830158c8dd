package assets

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// Prepare reads the asset at path and returns the bytes to upload. When
// maxWidth is positive and the file is a JPEG or PNG wider than maxWidth,
// the image is downscaled to maxWidth preserving aspect ratio. WebP and
// undecodable files pass through untouched.
func Prepare(path string, maxWidth int) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read asset %s: %w", path, err)
	}
	if maxWidth <= 0 {
		return raw, nil
	}

	var format imaging.Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		format = imaging.JPEG
	case ".png":
		format = imaging.PNG
	default:
		return raw, nil
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		// Corrupt or misnamed files upload as-is.
		return raw, nil
	}
	if img.Bounds().Dx() <= maxWidth {
		return raw, nil
	}

	resized := imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format); err != nil {
		return nil, fmt.Errorf("encode resized asset %s: %w", path, err)
	}
	return buf.Bytes(), nil
}
