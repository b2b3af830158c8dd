// Package normalize canonicalizes recipe titles and image filenames into
// comparable tokens.
//
// A canonical token is lowercase, diacritic-free, and contains only
// [a-z0-9_]: "Arroz a la Piña" becomes "arroz_a_la_pina". Matching across the
// repository is defined entirely over canonical tokens, never over raw
// strings, so two inputs are equal iff their tokens are byte-identical.
package normalize
