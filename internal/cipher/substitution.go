// Package cipher implements the literal substitution decryptor and the
// Caesar shift used by the shift scanner.
package cipher

import (
	"strings"
)

// SubstitutionMap replaces a source rune with its counterpart. Runes absent
// from the map pass through unchanged.
type SubstitutionMap map[rune]rune

// IdentityMap maps every rune of alphabet to itself.
func IdentityMap(alphabet string) SubstitutionMap {
	m := make(SubstitutionMap, len(alphabet))
	for _, r := range alphabet {
		m[r] = r
	}
	return m
}

func (m SubstitutionMap) Apply(r rune) rune {
	if to, ok := m[r]; ok {
		return to
	}
	return r
}

// DecryptWord applies the map to every rune of word.
func DecryptWord(word string, m SubstitutionMap) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		b.WriteRune(m.Apply(r))
	}
	return b.String()
}

// DecryptTokens returns a new slice holding each token decrypted.
func DecryptTokens(tokens []string, m SubstitutionMap) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, DecryptWord(tok, m))
	}
	return out
}

// JoinTokens joins tokens with a single ASCII space.
func JoinTokens(tokens []string) string {
	return strings.Join(tokens, " ")
}
