// Package dictionary maps candidate plaintext words to their known
// translations and renders token translations.
//
// Lookups are exact and case-sensitive. Callers lower-case tokens first when
// case-insensitive matching is wanted.
package dictionary

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	translationSeparator = "/"
	NoMatch              = "(no match)"
)

var ErrInvalidTable = errors.New("invalid dictionary table")

// Table is read-only once built.
type Table map[string][]string

// Default returns the built-in table of candidate words.
func Default() Table {
	return Table{
		"ata": {"father", "data"},
		"ano": {"year", "ring"},
		"che": {"what", "who"},
		"thy": {"your", "thy"},
		"ory": {"story", "history"},
	}
}

// Validate reports empty words, words without translations and empty
// translations.
func (t Table) Validate() error {
	for _, word := range t.Words() {
		if word == "" {
			return fmt.Errorf("%w: empty word", ErrInvalidTable)
		}
		if len(t[word]) == 0 {
			return fmt.Errorf("%w: no translation for %q", ErrInvalidTable, word)
		}
		for i, translation := range t[word] {
			if translation == "" {
				return fmt.Errorf("%w: empty translation %d for %q", ErrInvalidTable, i+1, word)
			}
		}
	}
	return nil
}

// MixedCaseWords returns the words holding upper-case letters. Word-mode
// tokens are lower-cased, so the shift scan never matches them.
func (t Table) MixedCaseWords() []string {
	var words []string
	for _, word := range t.Words() {
		if word != strings.ToLower(word) {
			words = append(words, word)
		}
	}
	return words
}

func (t Table) Lookup(word string) ([]string, bool) {
	translations, ok := t[word]
	return translations, ok
}

func (t Table) Contains(word string) bool {
	_, ok := t[word]
	return ok
}

// Words returns the table keys in sorted order.
func (t Table) Words() []string {
	words := make([]string, 0, len(t))
	for w := range t {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// CountMatches returns how many tokens are words of the table.
func (t Table) CountMatches(tokens []string) int {
	n := 0
	for _, tok := range tokens {
		if t.Contains(tok) {
			n++
		}
	}
	return n
}

// Translate replaces each known token by its slash-joined translations and
// keeps unknown tokens as they are.
func (t Table) Translate(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if translations, ok := t.Lookup(tok); ok {
			out = append(out, strings.Join(translations, translationSeparator))
			continue
		}
		out = append(out, tok)
	}
	return out
}

// Annotate renders each token as "token -> translations", or
// "token -> (no match)" when the token is unknown.
func (t Table) Annotate(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		target := NoMatch
		if translations, ok := t.Lookup(tok); ok {
			target = strings.Join(translations, translationSeparator)
		}
		out = append(out, fmt.Sprintf("%s -> %s", tok, target))
	}
	return out
}

// UnmarshalYAML accepts either a single translation or a list per word.
func (t *Table) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: expected a mapping", ErrInvalidTable, value.Line)
	}

	table := make(Table, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]

		if _, dup := table[key.Value]; dup {
			return fmt.Errorf("%w: line %d: word %q defined twice", ErrInvalidTable, key.Line, key.Value)
		}

		var translations []string
		switch {
		case val.ShortTag() == "!!null":
			return fmt.Errorf("%w: line %d: word %q has no translation", ErrInvalidTable, val.Line, key.Value)
		case val.Kind == yaml.ScalarNode:
			translations = []string{val.Value}
		case val.Kind == yaml.SequenceNode:
			if err := val.Decode(&translations); err != nil {
				return fmt.Errorf("word %q: %w", key.Value, err)
			}
		default:
			return fmt.Errorf("%w: line %d: word %q needs a string or a list", ErrInvalidTable, val.Line, key.Value)
		}

		table[key.Value] = translations
	}

	*t = table
	return nil
}

// Load reads a YAML mapping of word to translations.
func Load(r io.Reader) (Table, error) {
	var table Table
	if err := yaml.NewDecoder(r).Decode(&table); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidTable)
		}
		return nil, fmt.Errorf("error decoding dictionary: %w", err)
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}

	return table, nil
}

func LoadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening dictionary: %w", err)
	}
	defer f.Close()

	return Load(f)
}
