package internal

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Align stretches key to exactly the length of message by repeating it and
// appending a prefix of it for the remainder. Length is counted in runes, so
// every character of the message, letter or not, owns one key-stream
// position.
//
// key must already be validated (see ValidateKey). An empty key returns
// ErrEmptyKey.
func Align(message, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	n := utf8.RuneCountInString(message)
	reps, rem := n/len(key), n%len(key)

	stream := strings.Repeat(key, reps) + key[:rem]

	if len(stream) != n {
		return "", fmt.Errorf("%w: stream has %d positions, message has %d", ErrAlignment, len(stream), n)
	}
	return stream, nil
}
