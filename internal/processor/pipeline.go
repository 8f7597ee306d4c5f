// Package processor wires the tokenizer, frequency analysis, cipher and
// dictionary stages into the two analysis pipelines.
package processor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"voynich/internal/analysis"
	"voynich/internal/cipher"
	"voynich/internal/dictionary"
	"voynich/internal/importer/source"
	"voynich/internal/tokenizer"
	"voynich/internal/types"
)

/////////////////////////////////////////////////////////////////////////////
// SUBSTITUTION PIPELINE
/////////////////////////////////////////////////////////////////////////////

// SubstitutionPipeline tokenizes in cipher mode, counts frequencies,
// decrypts every token with Map and translates the result.
type SubstitutionPipeline struct {
	Map        cipher.SubstitutionMap
	Dictionary dictionary.Table
	// TopWords limits the word frequency listing. Negative keeps every word.
	TopWords int
	Logger   *zap.Logger
}

func NewSubstitutionPipeline(m cipher.SubstitutionMap, dict dictionary.Table, topWords int, logger *zap.Logger) *SubstitutionPipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubstitutionPipeline{
		Map:        m,
		Dictionary: dict,
		TopWords:   topWords,
		Logger:     logger,
	}
}

func (p *SubstitutionPipeline) Run(text string) (*types.SubstitutionReport, error) {
	if text == "" {
		return nil, source.ErrEmptySource
	}

	var tok types.TokenizerWithStats = tokenizer.NewTokenizer(text, types.ModeCipher)
	tokens := tok.Tokenize()
	stats := tok.GetStats()
	p.logger().Debug("Tokenized ciphertext",
		zap.Int("tokens", stats.TotalTokens),
		zap.Int("empty_tokens", stats.EmptyTokens),
		zap.Int("removed_runes", stats.RemovedRunes))

	chars := analysis.CharacterFrequency(tokens, false)
	words := analysis.TokenFrequency(tokens)
	p.logger().Debug("Counted frequencies",
		zap.Int("distinct_chars", chars.Len()),
		zap.Int("distinct_words", words.Len()))

	decrypted := cipher.DecryptTokens(tokens, p.Map)

	return &types.SubstitutionReport{
		Stats:          stats,
		CharFrequency:  analysis.Report(chars.Ranked()),
		WordFrequency:  analysis.Report(words.Top(p.TopWords)),
		DecryptedWords: decrypted,
		DecryptedText:  cipher.JoinTokens(decrypted),
		Translated:     p.Dictionary.Translate(decrypted),
		Annotated:      p.Dictionary.Annotate(decrypted),
	}, nil
}

func (p *SubstitutionPipeline) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}

/////////////////////////////////////////////////////////////////////////////
// ANALYZER
/////////////////////////////////////////////////////////////////////////////

// Analyzer runs whichever pipelines are set.
type Analyzer struct {
	Substitution *SubstitutionPipeline
	Shift        *ShiftScanner
}

// Run analyzes text. Empty text returns source.ErrEmptySource before any
// stage executes.
func (a *Analyzer) Run(ctx context.Context, name, text string) (*types.Report, error) {
	if text == "" {
		return nil, source.ErrEmptySource
	}

	report := &types.Report{Source: name}

	if a.Substitution != nil {
		sub, err := a.Substitution.Run(text)
		if err != nil {
			return nil, fmt.Errorf("substitution pipeline: %w", err)
		}
		report.Substitution = sub
	}

	if a.Shift != nil {
		results, err := a.Shift.Scan(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("shift scan: %w", err)
		}
		report.Shift = &types.ShiftReport{
			Results: results,
			Best:    Best(results),
		}
	}

	return report, nil
}
