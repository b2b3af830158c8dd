package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Record is one bilingual recipe entry pending import. Fields other than the
// Spanish title pass through to the record store unchanged.
type Record struct {
	TitleES         string   `json:"title_es"`
	TitleEN         string   `json:"title_en"`
	DescriptionES   string   `json:"description_es"`
	DescriptionEN   string   `json:"description_en"`
	IngredientsES   []string `json:"ingredients_es"`
	IngredientsEN   []string `json:"ingredients_en"`
	StepsES         []string `json:"steps_es"`
	StepsEN         []string `json:"steps_en"`
	Category        string   `json:"category"`
	Difficulty      string   `json:"difficulty"`
	Servings        int      `json:"servings"`
	PrepTimeMinutes int      `json:"prep_time_minutes"`
	Tags            []string `json:"tags"`
}

// Title returns the authoritative matching and upsert key.
func (r Record) Title() string {
	return r.TitleES
}

type document struct {
	Recipes []Record `json:"recipes"`
}

// Load reads and validates the manifest at path. A missing or malformed
// manifest is a fatal precondition failure for the whole run, so Load
// returns an error rather than a partial result. Records without a Spanish
// title cannot be keyed and are rejected.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	for i, rec := range doc.Recipes {
		if strings.TrimSpace(rec.TitleES) == "" {
			return nil, fmt.Errorf("manifest %s: recipe %d has no title_es", path, i+1)
		}
	}
	return doc.Recipes, nil
}
