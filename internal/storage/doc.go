// Package storage is the object-store boundary: it accepts image bytes keyed
// by filename with overwrite-allowed semantics and returns a stable public
// reference per key.
//
// Two backends are provided. The bucket backend talks to the hosted storage
// service over HTTP; the filesystem backend writes into a local directory and
// exists for offline runs and tests. Overwrite-allowed uploads keep re-runs
// idempotent: restarting an interrupted import converges on the same end
// state.
package storage
