// Package importer drives a full import run: resolve every recipe's image
// through the tiered matcher, upload winning assets to the object store,
// upsert each record into the catalog, and produce the run report.
//
// The run is a single linear pass in manifest order. A record that fails to
// match, upload, or upsert is logged and counted but never aborts the batch;
// only missing inputs abort before the first record. A run-scoped upload
// cache guarantees each distinct filename is transferred at most once even
// when several recipes share a photo, and overwrite-allowed uploads plus
// title-keyed upserts make interrupted runs safe to restart.
package importer
