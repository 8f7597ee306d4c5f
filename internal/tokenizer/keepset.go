package tokenizer

import (
	"strings"
	"unicode"
)

// KeepSet describes which runes survive the cleaning step.
type KeepSet struct {
	// Letters keeps ASCII letters a-z and A-Z.
	Letters bool
	// Space keeps every Unicode whitespace rune.
	Space bool
	// Extra lists any additional runes to keep.
	Extra string
}

var (
	CipherKeepSet = KeepSet{Letters: true, Extra: ".-"}
	WordsKeepSet  = KeepSet{Letters: true, Space: true}
)

func (k KeepSet) Keeps(r rune) bool {
	if k.Letters && IsASCIILetter(r) {
		return true
	}
	if k.Space && unicode.IsSpace(r) {
		return true
	}
	return k.Extra != "" && strings.ContainsRune(k.Extra, r)
}

// Clean removes every rune not in the keep set. It returns the cleaned text
// and the number of runes removed.
func (k KeepSet) Clean(text string) (string, int) {
	var b strings.Builder
	b.Grow(len(text))

	removed := 0
	for _, r := range text {
		if k.Keeps(r) {
			b.WriteRune(r)
			continue
		}
		removed++
	}

	return b.String(), removed
}

func IsASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
