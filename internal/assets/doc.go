// Package assets handles the local image directory: listing candidate
// filenames for the matcher, deriving upload content types, and preparing
// file bytes for transfer.
//
// Only filenames participate in matching; file contents are read at upload
// time for the winning candidate. The listing is sorted alphabetically so
// tie-breaking inside the matcher does not depend on filesystem iteration
// order.
package assets
