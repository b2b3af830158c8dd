package match

import (
	"strings"

	"recetario/internal/normalize"
)

// keywordHitThreshold is the number of title keywords that must appear in a
// candidate token before a KEYWORDS match is accepted. Requiring two hits
// instead of one avoids coincidental matches between unrelated recipes that
// share a single common word like "pollo".
const keywordHitThreshold = 2

// Tier identifies the precedence level at which a match was found.
type Tier int

const (
	// TierNone means no candidate matched at any tier.
	TierNone Tier = iota
	// TierKeywords is a keyword-overlap match.
	TierKeywords
	// TierSubstring is a canonical-token containment match.
	TierSubstring
	// TierExact is a canonical-token equality match.
	TierExact
	// TierManual is an operator-curated override.
	TierManual
)

// String returns the operator-facing tier label.
func (t Tier) String() string {
	switch t {
	case TierManual:
		return "MANUAL"
	case TierExact:
		return "EXACT"
	case TierSubstring:
		return "SUBSTRING"
	case TierKeywords:
		return "KEYWORDS"
	default:
		return "NONE"
	}
}

// Result is the outcome of matching one title against the candidate set.
// Asset is empty when Tier is TierNone.
type Result struct {
	Tier  Tier
	Asset string
}

// Matched reports whether the result carries a usable asset.
func (r Result) Matched() bool {
	return r.Tier != TierNone
}

// Find returns the best-matching candidate filename for the given title.
//
// Overrides are keyed by the exact, unnormalized title and only apply when
// the referenced filename is present among the candidates; they exist so
// operators can correct titles the automatic tiers get wrong. All automatic
// tiers compare canonical tokens, never raw strings.
func Find(title string, candidates []string, overrides map[string]string) Result {
	if asset, ok := overrides[title]; ok {
		for _, candidate := range candidates {
			if candidate == asset {
				return Result{Tier: TierManual, Asset: asset}
			}
		}
	}

	token := normalize.Token(title)

	for _, candidate := range candidates {
		if normalize.Token(normalize.Stem(candidate)) == token {
			return Result{Tier: TierExact, Asset: candidate}
		}
	}

	// Containment checks on an empty token would match everything.
	if token != "" {
		for _, candidate := range candidates {
			stem := normalize.Token(normalize.Stem(candidate))
			if stem == "" {
				continue
			}
			if strings.Contains(stem, token) || strings.Contains(token, stem) {
				return Result{Tier: TierSubstring, Asset: candidate}
			}
		}
	}

	keywords := normalize.Keywords(token)
	if len(keywords) >= keywordHitThreshold {
		for _, candidate := range candidates {
			stem := normalize.Token(normalize.Stem(candidate))
			hits := 0
			for _, word := range keywords {
				if strings.Contains(stem, word) {
					hits++
					if hits >= keywordHitThreshold {
						break
					}
				}
			}
			if hits >= keywordHitThreshold {
				return Result{Tier: TierKeywords, Asset: candidate}
			}
		}
	}

	return Result{}
}
