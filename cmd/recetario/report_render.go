package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"recetario/internal/importer"
	"recetario/internal/match"
)

var tierOrder = []match.Tier{
	match.TierManual,
	match.TierExact,
	match.TierSubstring,
	match.TierKeywords,
	match.TierNone,
}

func printReport(out io.Writer, report *importer.Report, overridesFile string) {
	header := fmt.Sprintf("Run %s", report.RunID)
	if report.DryRun {
		header += " (dry run)"
	}
	fmt.Fprintln(out, header)

	rows := [][]string{
		{"Recipes", strconv.Itoa(report.Total)},
		{"Succeeded", strconv.Itoa(report.Succeeded)},
		{"Failed", strconv.Itoa(report.Failed)},
		{"Images uploaded", strconv.Itoa(report.Uploaded)},
		{"Upload failures", strconv.Itoa(report.UploadFailures)},
		{"Duration", report.Duration.Round(time.Millisecond).String()},
	}
	fmt.Fprintln(out, renderTable(out, []string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))

	fmt.Fprintln(out, "Match tiers:")
	fmt.Fprintln(out, renderTable(out, []string{"Tier", "Recipes"}, tierRows(report), []columnAlignment{alignLeft, alignRight}))

	if len(report.Unresolved) == 0 {
		fmt.Fprintln(out, "Every recipe has an image.")
		return
	}

	fmt.Fprintf(out, "Recipes without an image (%d):\n", len(report.Unresolved))
	for _, title := range report.Unresolved {
		fmt.Fprintf(out, "  - %s\n", title)
	}
	fmt.Fprintf(out, "\nAdd overrides to %s:\n", overridesFile)
	fmt.Fprint(out, report.OverrideSnippet())
}

func tierRows(report *importer.Report) [][]string {
	rows := make([][]string, 0, len(tierOrder))
	for _, tier := range tierOrder {
		rows = append(rows, []string{tier.String(), strconv.Itoa(report.TierCount(tier))})
	}
	return rows
}

