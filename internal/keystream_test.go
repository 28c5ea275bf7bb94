package internal

import (
	"errors"
	"testing"
	"unicode/utf8"
)

func TestAlign(t *testing.T) {
	cases := []struct {
		message, key, want string
	}{
		{"hello", "ab", "ababa"},
		{"hello", "key", "keyke"},
		{"hello", "lemon", "lemon"},
		{"hi", "lemon", "le"},
		{"", "lemon", ""},
		{"attack at dawn", "lemon", "lemonlemonlemo"},
		{"héllo", "ab", "ababa"},
	}
	for _, c := range cases {
		got, err := Align(c.message, c.key)
		if err != nil {
			t.Errorf("Align(%q, %q) error: %v", c.message, c.key, err)
			continue
		}
		if got != c.want {
			t.Errorf("Align(%q, %q) = %q, want %q", c.message, c.key, got, c.want)
		}
	}
}

func TestAlignLength(t *testing.T) {
	message := "the quick brown fox, 1234!"
	for n := 1; n <= 30; n++ {
		key := randomKeyOfLength(n)
		got, err := Align(message, key)
		if err != nil {
			t.Fatalf("Align with key length %d: %v", n, err)
		}
		if len(got) != utf8.RuneCountInString(message) {
			t.Errorf("Align with key length %d: stream length %d, want %d", n, len(got), len(message))
		}
	}
}

func TestAlignEmptyKey(t *testing.T) {
	if _, err := Align("hello", ""); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("Align with empty key: error %v, want ErrEmptyKey", err)
	}
}

func randomKeyOfLength(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = Letter(i * 7)
	}
	return string(b)
}
