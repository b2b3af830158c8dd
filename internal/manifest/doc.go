// Package manifest reads the recipe collection pending import.
//
// The manifest is a JSON document with a top-level "recipes" array. The
// Spanish title is the authoritative key: matching and upserts are both
// keyed by it, so duplicate titles within a batch overwrite on upsert.
package manifest
