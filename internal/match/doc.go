// Package match selects the image file that best corresponds to a recipe
// title.
//
// Matching is tiered with strict precedence: an operator-curated manual
// override beats an exact canonical-token match, which beats a substring
// match, which beats a keyword-overlap match. The first tier that yields a
// hit wins; ties within a tier go to the first candidate in iteration order,
// so callers must supply candidates in a stable order (the asset lister
// sorts alphabetically).
package match
