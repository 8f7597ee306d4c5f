package exporter

import (
	"fmt"
	"io"
	"strings"

	"voynich/internal/types"
)

func ExportFrequencyToTable(title string, entries []types.FrequencyEntry, writer io.Writer) error {
	total := 0
	for _, e := range entries {
		total += e.Count
	}

	fmt.Fprintf(writer, "\n=== %s ===\n", title)
	fmt.Fprintln(writer, "┌───────┬──────────────────────┬─────────┬─────────┐")
	fmt.Fprintf(writer, "│ %-5s │ %-20s │ %-7s │ %-7s │\n", "Rank", "Key", "Count", "%")
	fmt.Fprintln(writer, "├───────┼──────────────────────┼─────────┼─────────┤")

	for i, e := range entries {
		percentage := 0.0
		if total > 0 {
			percentage = float64(e.Count) / float64(total) * 100
		}
		fmt.Fprintf(writer, "│ %-5d │ %-20s │ %7d │ %6.1f%% │\n",
			i+1, truncate(e.Key, 20), e.Count, percentage)
	}

	_, err := fmt.Fprintln(writer, "└───────┴──────────────────────┴─────────┴─────────┘")
	return err
}

func ExportShiftsToTable(results []types.ShiftResult, writer io.Writer) error {
	fmt.Fprintln(writer, "\n=== Caesar Shift Scan ===")
	fmt.Fprintln(writer, "┌───────┬─────────┬────────────────────────────────┐")
	fmt.Fprintf(writer, "│ %-5s │ %-7s │ %-30s │\n", "Shift", "Matches", "")
	fmt.Fprintln(writer, "├───────┼─────────┼────────────────────────────────┤")

	most := 0
	for _, r := range results {
		if r.Matches > most {
			most = r.Matches
		}
	}

	for _, r := range results {
		bar := ""
		if most > 0 {
			bar = strings.Repeat("#", r.Matches*30/most)
		}
		fmt.Fprintf(writer, "│ %5d │ %7d │ %-30s │\n", r.Shift, r.Matches, bar)
	}

	_, err := fmt.Fprintln(writer, "└───────┴─────────┴────────────────────────────────┘")
	return err
}

// ExportReportToTable writes every section of the report as tables.
func ExportReportToTable(r *types.Report, writer io.Writer) error {
	if r.Substitution != nil {
		if err := ExportFrequencyToTable("Character Frequency", r.Substitution.CharFrequency, writer); err != nil {
			return err
		}
		if err := ExportFrequencyToTable("Most Common Words", r.Substitution.WordFrequency, writer); err != nil {
			return err
		}
		fmt.Fprintln(writer, "\n=== Decrypted Text ===")
		fmt.Fprintln(writer, r.Substitution.DecryptedText)
		fmt.Fprintln(writer, "\n=== Translated Words ===")
		if err := writeLines(writer, r.Substitution.Annotated); err != nil {
			return err
		}
	}

	if r.Shift != nil {
		return ExportShiftsToTable(r.Shift.Results, writer)
	}

	return nil
}

func truncate(s string, maxLen int) string {
	s = fmt.Sprintf("%q", s)

	// Remove quote added by %q
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	if len(s) > maxLen {
		return s[:maxLen-3] + "..."
	}
	return s
}
