// Package tokenizer turns raw ciphertext into an ordered sequence of word
// tokens.
package tokenizer

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"voynich/internal/types"
)

const cipherSeparator = "."

type Tokenizer struct {
	input  string
	mode   types.Mode
	keep   KeepSet
	Tokens []string         `json:"tokens"`
	Stats  types.TokenStats `json:"stats"`
}

func NewTokenizer(input string, mode types.Mode) *Tokenizer {
	keep := CipherKeepSet
	if mode == types.ModeWords {
		keep = WordsKeepSet
	}

	return NewTokenizerWithKeepSet(input, mode, keep)
}

// NewTokenizerWithKeepSet overrides the keep set implied by mode. Runes that
// are separators for the mode should stay in the set or splitting has
// nothing to split on.
func NewTokenizerWithKeepSet(input string, mode types.Mode, keep KeepSet) *Tokenizer {
	return &Tokenizer{
		input:  input,
		mode:   mode,
		keep:   keep,
		Tokens: make([]string, 0),
	}
}

// Tokenize cleans and splits the input. Calling it again recomputes the same
// tokens from scratch.
func (t *Tokenizer) Tokenize() []string {
	t.Stats = types.TokenStats{
		Mode:          t.mode,
		InputRuneSize: utf8.RuneCountInString(t.input),
	}

	text := t.input
	if t.mode == types.ModeWords {
		text = cases.Lower(language.Und).String(text)
	}

	cleaned, removed := t.keep.Clean(text)
	t.Stats.RemovedRunes = removed
	t.Stats.KeptRunes = utf8.RuneCountInString(cleaned)

	switch t.mode {
	case types.ModeWords:
		t.Tokens = strings.Fields(cleaned)
	default:
		t.Tokens = splitCipher(cleaned)
	}

	t.Stats.TotalTokens = len(t.Tokens)
	for _, tok := range t.Tokens {
		if tok == "" {
			t.Stats.EmptyTokens++
		}
	}

	return t.Tokens
}

func (t *Tokenizer) GetStats() types.TokenStats {
	return t.Stats
}

// splitCipher splits on periods. Interior empty tokens are kept; trailing
// empty tokens are dropped.
func splitCipher(text string) []string {
	if text == "" {
		return []string{}
	}

	parts := strings.Split(text, cipherSeparator)

	end := len(parts)
	for end > 0 && parts[end-1] == "" {
		end--
	}

	return parts[:end]
}

// Words tokenizes text in word mode.
func Words(text string) []string {
	return NewTokenizer(text, types.ModeWords).Tokenize()
}

