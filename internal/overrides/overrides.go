// Package overrides loads the operator-curated title-to-filename table that
// bypasses automatic matching. The table lives in an external TOML file so
// growing it after a run never requires a rebuild; the import report prints
// ready-to-paste lines for every unresolved title.
package overrides

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type document struct {
	Mappings map[string]string `toml:"mappings"`
}

// Load reads the override table at path. A missing file is not an error and
// yields an empty table; a malformed file is fatal because silently dropping
// curated mappings would re-upload wrong assets.
func Load(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read overrides %s: %w", path, err)
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse overrides %s: %w", path, err)
	}
	if doc.Mappings == nil {
		doc.Mappings = map[string]string{}
	}
	return doc.Mappings, nil
}
