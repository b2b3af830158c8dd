package importer

import (
	"fmt"
	"strings"
	"time"

	"recetario/internal/match"
)

// Report is the end-of-run summary the operator acts on. Unresolved holds
// the titles that matched nothing; they seed the next round of manual
// overrides.
type Report struct {
	RunID          string
	Total          int
	Succeeded      int
	Failed         int
	Uploaded       int
	UploadFailures int
	Unresolved     []string
	Duration       time.Duration
	DryRun         bool

	tiers map[match.Tier]int
}

// CountTier records one match outcome.
func (r *Report) CountTier(tier match.Tier) {
	if r.tiers == nil {
		r.tiers = make(map[match.Tier]int)
	}
	r.tiers[tier]++
}

// TierCount returns how many records resolved at the given tier.
func (r *Report) TierCount(tier match.Tier) int {
	return r.tiers[tier]
}

// OverrideSnippet renders ready-to-paste override lines for every
// unresolved title. The operator replaces the placeholder filename and
// appends the lines to the overrides file before re-running. Returns the
// empty string when nothing is unresolved.
func (r *Report) OverrideSnippet() string {
	if len(r.Unresolved) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("[mappings]\n")
	for _, title := range r.Unresolved {
		fmt.Fprintf(&b, "%q = \"FIXME.jpg\"\n", title)
	}
	return b.String()
}
