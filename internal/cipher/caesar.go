package cipher

import "strings"

const (
	AlphabetSize = 26
	MinShift     = 1
	MaxShift     = AlphabetSize - 1
)

// NormalizeShift brings any shift amount into [0, 25].
func NormalizeShift(s int) int {
	s %= AlphabetSize
	if s < 0 {
		s += AlphabetSize
	}
	return s
}

// ShiftRune rotates an ASCII letter by s positions, keeping its case. Any
// other rune is returned unchanged.
func ShiftRune(r rune, s int) rune {
	var base rune
	switch {
	case r >= 'a' && r <= 'z':
		base = 'a'
	case r >= 'A' && r <= 'Z':
		base = 'A'
	default:
		return r
	}
	return base + (r-base+rune(NormalizeShift(s)))%AlphabetSize
}

// Shift applies a Caesar shift of +s to every ASCII letter of text.
func Shift(text string, s int) string {
	s = NormalizeShift(s)
	if s == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		b.WriteRune(ShiftRune(r, s))
	}
	return b.String()
}

// Unshift reverses Shift(text, s).
func Unshift(text string, s int) string {
	return Shift(text, AlphabetSize-NormalizeShift(s))
}
