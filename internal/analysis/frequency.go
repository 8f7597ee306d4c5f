// Package analysis counts characters and tokens and ranks them by frequency.
package analysis

import (
	"fmt"
	"slices"

	"voynich/internal/tokenizer"
	"voynich/internal/types"
)

type Entry[K comparable] struct {
	Key   K
	Count int
}

// Table counts occurrences per key. Keys are remembered in first-seen order,
// which breaks ties when ranking.
type Table[K comparable] struct {
	index   map[K]int
	entries []Entry[K]
	total   int
}

func NewTable[K comparable]() *Table[K] {
	return &Table[K]{
		index:   make(map[K]int),
		entries: make([]Entry[K], 0),
	}
}

func (t *Table[K]) Add(key K) {
	t.total++
	if i, ok := t.index[key]; ok {
		t.entries[i].Count++
		return
	}
	t.index[key] = len(t.entries)
	t.entries = append(t.entries, Entry[K]{Key: key, Count: 1})
}

func (t *Table[K]) Count(key K) int {
	if i, ok := t.index[key]; ok {
		return t.entries[i].Count
	}
	return 0
}

// Len returns the number of distinct keys.
func (t *Table[K]) Len() int {
	return len(t.entries)
}

// Total returns the sum of all counts.
func (t *Table[K]) Total() int {
	return t.total
}

// Ranked returns a copy of the entries sorted by descending count.
func (t *Table[K]) Ranked() []Entry[K] {
	ranked := slices.Clone(t.entries)
	slices.SortStableFunc(ranked, func(a, b Entry[K]) int {
		return b.Count - a.Count
	})
	return ranked
}

// Top returns the first n ranked entries. A negative n returns all of them.
func (t *Table[K]) Top(n int) []Entry[K] {
	ranked := t.Ranked()
	if n < 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}

// CharacterFrequency counts every character of every token. With lettersOnly
// set, only ASCII letters are counted.
func CharacterFrequency(tokens []string, lettersOnly bool) *Table[rune] {
	table := NewTable[rune]()
	for _, tok := range tokens {
		for _, r := range tok {
			if lettersOnly && !tokenizer.IsASCIILetter(r) {
				continue
			}
			table.Add(r)
		}
	}
	return table
}

// TokenFrequency counts whole tokens. Empty tokens are not counted.
func TokenFrequency(tokens []string) *Table[string] {
	table := NewTable[string]()
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		table.Add(tok)
	}
	return table
}

// Report renders ranked entries with their keys formatted as strings.
func Report[K comparable](entries []Entry[K]) []types.FrequencyEntry {
	out := make([]types.FrequencyEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, types.FrequencyEntry{Key: keyString(e.Key), Count: e.Count})
	}
	return out
}

func keyString(key any) string {
	switch k := key.(type) {
	case rune:
		return string(k)
	case string:
		return k
	default:
		return fmt.Sprint(k)
	}
}
