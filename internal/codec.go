package internal

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Transform substitutes every letter of message through t using the key
// stream letter at the same position.
//
// Behavior:
//  1. Walk message rune by rune, paired by position with keyStream.
//  2. For 'a'..'z' emit t[keyLetter][messageLetter].
//  3. Any other rune, or byte that is not valid UTF-8, is emitted unchanged;
//     its key-stream letter is skipped.
//
// Returns:
//   - the transformed string (same rune length as message)
//   - ErrAlignment if keyStream and message differ in length or the key
//     stream holds a non-letter where a letter needs substituting
func Transform(keyStream, message string, t *Table) (string, error) {
	if n := utf8.RuneCountInString(message); len(keyStream) != n {
		return "", fmt.Errorf("%w: stream has %d positions, message has %d", ErrAlignment, len(keyStream), n)
	}

	var sb strings.Builder
	sb.Grow(len(message))
	pos := 0
	for i := 0; i < len(message); pos++ {
		m, size := utf8.DecodeRuneInString(message[i:])
		if !IsLetter(m) {
			// invalid UTF-8 counts as one position and is copied byte for byte
			sb.WriteString(message[i : i+size])
			i += size
			continue
		}
		c, ok := t.Lookup(keyStream[pos], byte(m))
		if !ok {
			return "", fmt.Errorf("%w: key stream letter %q at position %d", ErrAlignment, keyStream[pos], pos)
		}
		sb.WriteByte(c)
		i += size
	}
	return sb.String(), nil
}

// Cipher bundles a validated key phrase with both halves of the tabula recta.
// Tables are built once and read-only afterwards.
type Cipher struct {
	key string
	enc Table
	dec Table
}

// NewCipher validates key and builds the tables.
func NewCipher(key string) (*Cipher, error) {
	k, err := ValidateKey(key)
	if err != nil {
		return nil, err
	}
	enc, dec := Build()
	return &Cipher{key: k, enc: enc, dec: dec}, nil
}

// Key returns the normalized key phrase.
func (c *Cipher) Key() string { return c.key }

// Encrypt lowercases line and encrypts it with a fresh key stream.
func (c *Cipher) Encrypt(line string) (string, error) {
	return c.convert(line, &c.enc)
}

// Decrypt lowercases line and decrypts it with a fresh key stream.
// line must not carry its line separator.
func (c *Cipher) Decrypt(line string) (string, error) {
	return c.convert(line, &c.dec)
}

func (c *Cipher) convert(line string, t *Table) (string, error) {
	line = Lower(line)
	stream, err := Align(line, c.key)
	if err != nil {
		return "", err
	}
	return Transform(stream, line, t)
}
