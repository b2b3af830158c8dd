package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"recetario/internal/match"
	"recetario/internal/normalize"
)

const maxSuggestions = 3

func newMappingsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "mappings",
		Short: "Suggest manual overrides for recipes without an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			inputs, err := loadInputs(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var unresolved []string
			for _, rec := range inputs.Records {
				if !match.Find(rec.Title(), inputs.Candidates, inputs.Overrides).Matched() {
					unresolved = append(unresolved, rec.Title())
				}
			}
			if len(unresolved) == 0 {
				fmt.Fprintln(out, "Every recipe has an image; nothing to map.")
				return nil
			}

			fmt.Fprintf(out, "Paste into %s and replace any wrong guesses:\n\n", cfg.Paths.OverridesFile)
			fmt.Fprintln(out, "[mappings]")
			for _, title := range unresolved {
				suggestions := suggestCandidates(title, inputs.Candidates)
				filename := "FIXME.jpg"
				if len(suggestions) > 0 {
					filename = suggestions[0]
				}
				fmt.Fprintf(out, "%q = %q", title, filename)
				if len(suggestions) > 1 {
					fmt.Fprintf(out, " # also: %v", suggestions[1:])
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}

// suggestCandidates ranks candidate filenames by how many keywords they share
// with the title, most overlap first. Filenames with no overlap are omitted.
func suggestCandidates(title string, candidates []string) []string {
	keywords := normalize.Keywords(normalize.Token(title))
	if len(keywords) == 0 {
		return nil
	}

	type scored struct {
		filename string
		overlap  int
	}
	var ranked []scored
	for _, candidate := range candidates {
		stemWords := normalize.Keywords(normalize.Token(normalize.Stem(candidate)))
		overlap := 0
		for _, kw := range keywords {
			for _, sw := range stemWords {
				if kw == sw {
					overlap++
					break
				}
			}
		}
		if overlap > 0 {
			ranked = append(ranked, scored{filename: candidate, overlap: overlap})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].overlap > ranked[j].overlap })
	if len(ranked) > maxSuggestions {
		ranked = ranked[:maxSuggestions]
	}
	names := make([]string, 0, len(ranked))
	for _, s := range ranked {
		names = append(names, s.filename)
	}
	return names
}
