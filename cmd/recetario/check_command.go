package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"recetario/internal/manifest"
	"recetario/internal/match"
	"recetario/internal/normalize"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Show how each recipe would match without importing anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			inputs, err := loadInputs(cfg)
			if err != nil {
				return err
			}
			if limit > 0 && limit < len(inputs.Records) {
				inputs.Records = inputs.Records[:limit]
			}

			tiers := make(map[match.Tier]int, len(tierOrder))
			rows := make([][]string, 0, len(inputs.Records))
			var unmatched []manifest.Record
			for _, rec := range inputs.Records {
				result := match.Find(rec.Title(), inputs.Candidates, inputs.Overrides)
				tiers[result.Tier]++
				asset := result.Asset
				if asset == "" {
					asset = "-"
					unmatched = append(unmatched, rec)
				}
				rows = append(rows, []string{rec.Title(), asset, result.Tier.String()})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d recipes, %d candidate images, %d overrides\n",
				len(inputs.Records), len(inputs.Candidates), len(inputs.Overrides))
			fmt.Fprintln(out, renderTable(out, []string{"Recipe", "Image", "Tier"}, rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft}))

			summary := make([][]string, 0, len(tierOrder))
			for _, tier := range tierOrder {
				summary = append(summary, []string{tier.String(), strconv.Itoa(tiers[tier])})
			}
			fmt.Fprintln(out, "Match tiers:")
			fmt.Fprintln(out, renderTable(out, []string{"Tier", "Recipes"}, summary,
				[]columnAlignment{alignLeft, alignRight}))

			if len(unmatched) > 0 {
				fmt.Fprintf(out, "%d recipes have no image:\n", len(unmatched))
				for _, rec := range unmatched {
					fmt.Fprintf(out, "  - %s (token %q)\n", rec.Title(), normalize.Token(rec.Title()))
				}
				fmt.Fprintln(out, "Run `recetario mappings` for override suggestions.")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Check only the first N manifest records")
	return cmd
}
