// Package voynich provides a public API for exploratory cryptanalysis of a
// short ciphertext sample.
//
// This package provides functions to:
//   - Load and normalize ciphertext (UTF-8, CP437, CP850, ISO-8859-1)
//   - Tokenize text in cipher mode or word mode
//   - Count character and word frequencies
//   - Decrypt with a substitution map and translate with a dictionary
//   - Scan all 25 Caesar shifts for dictionary matches
//
// Example usage:
//
//	import "voynich/pkg/voynich"
//
//	text, _ := voynich.LoadText("capture/manuscript.txt", "utf8")
//	report, _ := voynich.Analyze(context.Background(), text, voynich.Options{
//		Map:        voynich.DefaultMap(),
//		Dictionary: voynich.DefaultDictionary(),
//		TopWords:   10,
//	})
//	for _, r := range report.Shift.Results {
//		fmt.Println(r)
//	}
package voynich

import (
	"context"

	"voynich/internal/analysis"
	"voynich/internal/cipher"
	"voynich/internal/config"
	"voynich/internal/dictionary"
	"voynich/internal/importer/source"
	"voynich/internal/processor"
	"voynich/internal/tokenizer"
	"voynich/internal/types"
)

// Type aliases for public API
type (
	// Mode selects how text is cleaned and split
	Mode = types.Mode

	// TokenStats contains statistics about a tokenization pass
	TokenStats = types.TokenStats

	// FrequencyEntry is one ranked line of a frequency listing
	FrequencyEntry = types.FrequencyEntry

	// ShiftResult is the dictionary match count for one Caesar shift
	ShiftResult = types.ShiftResult

	// Report holds the output of both pipelines
	Report = types.Report

	// SubstitutionMap maps ciphertext characters to plaintext characters
	SubstitutionMap = cipher.SubstitutionMap

	// DictionaryTable maps candidate words to their translations
	DictionaryTable = dictionary.Table

	// KeepSet selects which characters survive tokenization
	KeepSet = tokenizer.KeepSet
)

// Mode constants
const (
	ModeCipher = types.ModeCipher
	ModeWords  = types.ModeWords
)

var (
	ErrEmptySource      = source.ErrEmptySource
	ErrSourceNotFound   = source.ErrSourceNotFound
	ErrSourceUnreadable = source.ErrSourceUnreadable
)

// Options configures Analyze.
type Options struct {
	Map        SubstitutionMap
	Dictionary DictionaryTable
	TopWords   int
	Parallel   bool
}

// DefaultMap returns the substitution map of the manuscript study.
func DefaultMap() SubstitutionMap {
	m, _ := config.Default().SubstitutionMap()
	return m
}

// DefaultDictionary returns the built-in dictionary table.
func DefaultDictionary() DictionaryTable {
	return dictionary.Default()
}

// LoadText reads and normalizes a text source. Use "-" for stdin.
func LoadText(path, encoding string) (string, error) {
	return source.LoadText(path, encoding)
}

// Tokenize splits text according to mode.
func Tokenize(text string, mode Mode) []string {
	return tokenizer.NewTokenizer(text, mode).Tokenize()
}

// CharacterFrequency returns characters ranked by descending count.
func CharacterFrequency(tokens []string, lettersOnly bool) []FrequencyEntry {
	return analysis.Report(analysis.CharacterFrequency(tokens, lettersOnly).Ranked())
}

// WordFrequency returns the n most frequent tokens. A negative n returns all.
func WordFrequency(tokens []string, n int) []FrequencyEntry {
	return analysis.Report(analysis.TokenFrequency(tokens).Top(n))
}

// Decrypt applies m to every token.
func Decrypt(tokens []string, m SubstitutionMap) []string {
	return cipher.DecryptTokens(tokens, m)
}

// Translate replaces known tokens by their slash-joined translations.
func Translate(tokens []string, dict DictionaryTable) []string {
	return dict.Translate(tokens)
}

// Shift applies a Caesar shift of +s to every ASCII letter of text.
func Shift(text string, s int) string {
	return cipher.Shift(text, s)
}

// ScanShifts returns the dictionary match count of every shift from 1 to 25.
func ScanShifts(ctx context.Context, text string, dict DictionaryTable) ([]ShiftResult, error) {
	return processor.NewShiftScanner(dict, false, nil).Scan(ctx, text)
}

// Analyze runs the substitution pipeline and the shift scan over text.
func Analyze(ctx context.Context, text string, opts Options) (*Report, error) {
	a := &processor.Analyzer{
		Substitution: processor.NewSubstitutionPipeline(opts.Map, opts.Dictionary, opts.TopWords, nil),
		Shift:        processor.NewShiftScanner(opts.Dictionary, opts.Parallel, nil),
	}
	return a.Run(ctx, "", text)
}
