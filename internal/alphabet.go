package internal

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Package internal: alphabet
//
// The cipher works over a fixed 26-letter lowercase Latin alphabet.
// Letters are addressed by their offset (0..25) so the substitution tables
// can be plain arrays.
//
// This file exposes:
// - Constants: Alphabet, Size
// - Conversions:
//     Offset(b)   → 0..25 for 'a'..'z'
//     Letter(i)   → 'a'..'z' for 0..25
//     IsLetter(r) → whether r takes part in substitution
//
// Anything that is not 'a'..'z' (digits, punctuation, whitespace, uppercase
// that was not normalized, non-Latin runes) passes through the cipher as is.

const (
	// Alphabet is the ordered set of letters the tables are built over.
	Alphabet = "abcdefghijklmnopqrstuvwxyz"
	// Size is the number of letters in Alphabet.
	Size = len(Alphabet)
)

// IsLetter reports whether r is one of the 26 lowercase Latin letters.
func IsLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// Offset converts a letter into its position in Alphabet.
// Returns (offset, true) for 'a'..'z'; otherwise (0, false).
func Offset(b byte) (int, bool) {
	if b < 'a' || b > 'z' {
		return 0, false
	}
	return int(b - 'a'), true
}

// Letter returns the letter at offset i, wrapping around the alphabet so
// callers can pass shifted positions directly.
func Letter(i int) byte {
	i %= Size
	if i < 0 {
		i += Size
	}
	return Alphabet[i]
}

// Lower lowercases s rune by rune. Bytes that are not valid UTF-8 are kept
// as they are instead of becoming U+FFFD, so a line never changes length.
func Lower(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			sb.WriteByte(s[i])
		} else {
			sb.WriteRune(unicode.ToLower(r))
		}
		i += size
	}
	return sb.String()
}
