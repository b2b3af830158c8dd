package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// minKeywordLength is the shortest token that counts as a discriminative
// keyword. Spanish filler words ("de", "la", "el", "con") fall below it.
const minKeywordLength = 4

// stripMarks decomposes accented characters and removes the combining marks,
// turning "piña" into "pina".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Token converts any string into its canonical token: lowercase, diacritics
// stripped, every run of whitespace or underscores collapsed to a single
// underscore, and everything else removed. The function is total and
// idempotent; punctuation-only input yields the empty string.
func Token(input string) string {
	lowered := strings.ToLower(input)
	stripped, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		stripped = lowered
	}

	var b strings.Builder
	b.Grow(len(stripped))
	pendingSep := false
	for _, r := range stripped {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		case unicode.IsSpace(r), r == '_':
			pendingSep = true
		}
	}
	return b.String()
}

// Stem returns the filename without its final dot-extension. Filenames with
// no extension are returned unchanged.
func Stem(filename string) string {
	if idx := strings.LastIndexByte(filename, '.'); idx > 0 {
		return filename[:idx]
	}
	return filename
}

// Keywords splits a canonical token on underscores and keeps the
// discriminative words (length >= 4).
func Keywords(token string) []string {
	parts := strings.Split(token, "_")
	keep := parts[:0]
	for _, part := range parts {
		if len(part) >= minKeywordLength {
			keep = append(keep, part)
		}
	}
	return keep
}
