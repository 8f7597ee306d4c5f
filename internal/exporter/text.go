package exporter

import (
	"fmt"
	"io"

	"voynich/internal/types"
)

// WriteFrequency writes one "<key>: <count>" line per entry.
func WriteFrequency(w io.Writer, entries []types.FrequencyEntry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s: %d\n", e.Key, e.Count); err != nil {
			return err
		}
	}
	return nil
}

// WriteShiftResults writes one "Shift <n>: <count> matches found." line per
// result.
func WriteShiftResults(w io.Writer, results []types.ShiftResult) error {
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return err
		}
	}
	return nil
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteSubstitutionReport writes the frequency listings, the decrypted text
// and the translations. With annotate set, translations are written as
// "token -> translations".
func WriteSubstitutionReport(w io.Writer, r *types.SubstitutionReport, annotate bool) error {
	fmt.Fprintln(w, "Character Frequency:")
	if err := WriteFrequency(w, r.CharFrequency); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nMost Common Words:")
	if err := WriteFrequency(w, r.WordFrequency); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nDecrypted Text:")
	fmt.Fprintln(w, r.DecryptedText)

	fmt.Fprintln(w, "\nTranslated Words:")
	if annotate {
		return writeLines(w, r.Annotated)
	}
	return writeLines(w, r.Translated)
}

// WriteShiftReport writes the scan results followed by the best shift when
// showBest is set.
func WriteShiftReport(w io.Writer, r *types.ShiftReport, showBest bool) error {
	fmt.Fprintln(w, "Caesar Shift Scan:")
	if err := WriteShiftResults(w, r.Results); err != nil {
		return err
	}

	if showBest {
		_, err := fmt.Fprintf(w, "\nBest shift: %d (%d matches)\n", r.Best.Shift, r.Best.Matches)
		return err
	}
	return nil
}

// WriteReport writes every section present in the report.
func WriteReport(w io.Writer, r *types.Report, annotate, showBest bool) error {
	if r.Substitution != nil {
		if err := WriteSubstitutionReport(w, r.Substitution, annotate); err != nil {
			return err
		}
	}

	if r.Shift != nil {
		if r.Substitution != nil {
			fmt.Fprintln(w)
		}
		if err := WriteShiftReport(w, r.Shift, showBest); err != nil {
			return err
		}
	}

	return nil
}
