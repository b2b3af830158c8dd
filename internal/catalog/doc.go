// Package catalog is the record-store boundary: recipes are upserted keyed
// by their Spanish title, so re-running the importer with corrected
// overrides updates existing rows instead of duplicating them.
//
// The SQLite backend keeps a local catalog database; the REST backend
// upserts into the hosted service. Both accept the full record plus the
// resolved image reference, which may be absent when no asset matched.
package catalog
