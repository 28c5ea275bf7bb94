package internal

import (
	"errors"
	"strings"
	"testing"
)

func mustCipher(t *testing.T, key string) *Cipher {
	t.Helper()
	c, err := NewCipher(key)
	if err != nil {
		t.Fatalf("NewCipher(%q): %v", key, err)
	}
	return c
}

func TestTransform(t *testing.T) {
	enc, _ := Build()
	cases := []struct {
		stream, message, want string
	}{
		{"keyke", "hello", "rijvs"},
		{"abcabcabca", "hi, world!", "hj, xqrmf!"},
		{"bbbbbb", "abc123", "bcd123"},
		{"lemonlemonlemo", "attack at dawn", "lxfopv mh oeib"},
		{"", "", ""},
	}
	for _, c := range cases {
		got, err := Transform(c.stream, c.message, &enc)
		if err != nil {
			t.Errorf("Transform(%q, %q) error: %v", c.stream, c.message, err)
			continue
		}
		if got != c.want {
			t.Errorf("Transform(%q, %q) = %q, want %q", c.stream, c.message, got, c.want)
		}
	}
}

func TestTransformMismatch(t *testing.T) {
	enc, _ := Build()
	if _, err := Transform("abc", "hello", &enc); !errors.Is(err, ErrAlignment) {
		t.Errorf("Transform with short stream: error %v, want ErrAlignment", err)
	}
	if _, err := Transform("a1c", "abc", &enc); !errors.Is(err, ErrAlignment) {
		t.Errorf("Transform with non-letter stream: error %v, want ErrAlignment", err)
	}
}

func TestCipherRoundTrip(t *testing.T) {
	cases := []struct {
		key, plain, cipher string
	}{
		{"key", "hello", "rijvs"},
		{"lemon", "hello", "sixzb"},
		{"lemon", "attack at dawn", "lxfopv mh oeib"},
		{"abc", "hi, world!", "hj, xqrmf!"},
		{"LeMoN", "Attack At Dawn", "lxfopv mh oeib"},
	}
	for _, c := range cases {
		ci := mustCipher(t, c.key)
		got, err := ci.Encrypt(c.plain)
		if err != nil {
			t.Fatalf("Encrypt(%q): %v", c.plain, err)
		}
		if got != c.cipher {
			t.Errorf("Encrypt(%q) with %q = %q, want %q", c.plain, c.key, got, c.cipher)
		}
		back, err := ci.Decrypt(got)
		if err != nil {
			t.Fatalf("Decrypt(%q): %v", got, err)
		}
		if want := strings.ToLower(c.plain); back != want {
			t.Errorf("Decrypt(%q) with %q = %q, want %q", got, c.key, back, want)
		}
	}
}

func TestCipherPassthrough(t *testing.T) {
	c := mustCipher(t, "abc")
	msg := "hi, world! 42 ¿qué?"
	got, err := c.Encrypt(msg)
	if err != nil {
		t.Fatal(err)
	}
	if !samePunctuation(msg, got) {
		t.Errorf("Encrypt(%q) = %q, non-letters moved or changed", msg, got)
	}
}

func TestNewCipherRejectsBadKeys(t *testing.T) {
	if _, err := NewCipher("k3y"); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("NewCipher(k3y): error %v, want ErrInvalidKey", err)
	}
	if _, err := NewCipher(""); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("NewCipher(\"\"): error %v, want ErrEmptyKey", err)
	}
}

func TestCipherKeepsInvalidUTF8(t *testing.T) {
	c := mustCipher(t, "key")

	got, err := c.Decrypt("abc\xe9")
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if len(got) != 4 || got[3] != 0xe9 {
		t.Errorf("Decrypt(%q) = %q, want the trailing byte kept as is", "abc\xe9", got)
	}

	for _, line := range []string{"caf\xe9 ok", "\xff\xfehello", "a\xc3"} {
		enc, err := EncryptVerified(c, line)
		if err != nil {
			t.Fatalf("EncryptVerified(%q): %v", line, err)
		}
		if len(enc) != len(line) {
			t.Errorf("Encrypt(%q) = %q, length %d, want %d", line, enc, len(enc), len(line))
		}
		back, err := c.Decrypt(enc)
		if err != nil {
			t.Fatalf("Decrypt(%q): %v", enc, err)
		}
		if back != line {
			t.Errorf("Decrypt(Encrypt(%q)) = %q", line, back)
		}
	}
}
