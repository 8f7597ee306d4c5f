package cipher

import (
	"fmt"
	"math"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestShift(t *testing.T) {
	tests := []struct {
		text  string
		shift int
		want  string
	}{
		{"ABC", 1, "BCD"},
		{"ABC", 25, "ZAB"},
		{"xyz", 3, "abc"},
		{"Hello, World!", 13, "Uryyb, Jbeyq!"},
		{"ABC", 26, "ABC"},
		{"BCD", -1, "ABC"},
		{"", 5, ""},
		{"é 42", 7, "é 42"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%d", tt.text, tt.shift), func(t *testing.T) {
			got := Shift(tt.text, tt.shift)
			if got != tt.want {
				t.Errorf("Shift(%q, %d) = %q, want %q", tt.text, tt.shift, got, tt.want)
			}
		})
	}
}

func TestShiftPreservesLengthAndNonLetters(t *testing.T) {
	text := "The quick-brown fox, 1999!\nJumps."

	for s := MinShift; s <= MaxShift; s++ {
		got := Shift(text, s)
		assert.Equal(t, utf8.RuneCountInString(text), utf8.RuneCountInString(got), "shift %d", s)

		in, out := []rune(text), []rune(got)
		for i := range in {
			isLetter := (in[i] >= 'a' && in[i] <= 'z') || (in[i] >= 'A' && in[i] <= 'Z')
			if !isLetter {
				assert.Equal(t, in[i], out[i], "shift %d position %d", s, i)
			}
		}
	}
}

func TestShiftComposes(t *testing.T) {
	text := "Attack at Dawn - ZEBRA zebra"

	for s1 := 0; s1 < AlphabetSize; s1++ {
		for s2 := 0; s2 < AlphabetSize; s2++ {
			got := Shift(Shift(text, s1), s2)
			want := Shift(text, (s1+s2)%AlphabetSize)
			if got != want {
				t.Fatalf("Shift(Shift(T, %d), %d) = %q, want %q", s1, s2, got, want)
			}
		}
	}
}

func TestUnshift(t *testing.T) {
	for s := MinShift; s <= MaxShift; s++ {
		assert.Equal(t, "Voynich", Unshift(Shift("Voynich", s), s))
	}
}

func TestUnshiftExtremeAmounts(t *testing.T) {
	for _, s := range []int{math.MinInt, math.MinInt + 1, math.MaxInt, -27, 0, 26, 52} {
		got := Unshift(Shift("abc XYZ", s), s)
		if got != "abc XYZ" {
			t.Errorf("Unshift(Shift(%q, %d), %d) = %q, want %q", "abc XYZ", s, s, got, "abc XYZ")
		}
	}
}

func TestDecryptWord(t *testing.T) {
	m := SubstitutionMap{'o': 'a', 'c': 't', 'h': 'o', 'y': 'n', 'p': 'r', '.': ' '}

	assert.Equal(t, "toen", DecryptWord("chey", m))
	assert.Equal(t, "aka-dn", DecryptWord("oko-dy", m))
	assert.Equal(t, "", DecryptWord("", m))
	assert.Equal(t, "XYZ", DecryptWord("XYZ", m))
}

func TestIdentityMapLeavesInputUnchanged(t *testing.T) {
	m := IdentityMap("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ.-")

	for _, word := range []string{"", "qokeedy", "Oko-dy", "chey.dal"} {
		assert.Equal(t, word, DecryptWord(word, m))
	}
}

func TestDecryptTokensDoesNotMutateInput(t *testing.T) {
	tokens := []string{"ochy", "", "pc"}
	m := SubstitutionMap{'o': 'a', 'c': 't', 'h': 'o', 'y': 'n', 'p': 'r'}

	got := DecryptTokens(tokens, m)

	assert.Equal(t, []string{"aton", "", "rt"}, got)
	assert.Equal(t, []string{"ochy", "", "pc"}, tokens)
}

func TestJoinTokens(t *testing.T) {
	assert.Equal(t, "ata  ory", JoinTokens([]string{"ata", "", "ory"}))
	assert.Equal(t, "ata", JoinTokens([]string{"ata"}))
	assert.Equal(t, "", JoinTokens(nil))
}
