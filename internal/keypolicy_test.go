package internal

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateKey(t *testing.T) {
	cases := []struct {
		key  string
		want string
		err  error
	}{
		{"key", "key", nil},
		{"KeY", "key", nil},
		{"lemon", "lemon", nil},
		{"k3y", "", ErrInvalidKey},
		{"two words", "", ErrInvalidKey},
		{"key!", "", ErrInvalidKey},
		{"ñandu", "", ErrInvalidKey},
		{"", "", ErrEmptyKey},
	}
	for _, c := range cases {
		got, err := ValidateKey(c.key)
		if !errors.Is(err, c.err) {
			t.Errorf("ValidateKey(%q) error %v, want %v", c.key, err, c.err)
			continue
		}
		if got != c.want {
			t.Errorf("ValidateKey(%q) = %q, want %q", c.key, got, c.want)
		}
	}
}

func TestValidateKeyDoesNotEchoKey(t *testing.T) {
	_, err := ValidateKey("s3cretphrase")
	if err == nil {
		t.Fatal("ValidateKey accepted a digit")
	}
	if strings.Contains(err.Error(), "s3cret") {
		t.Errorf("error %q echoes the key", err)
	}
}

func TestFingerprint(t *testing.T) {
	policy := DefaultFingerprintPolicy()

	a := Fingerprint("lemon", policy)
	if len(a) != 9 || a[4] != '-' {
		t.Fatalf("Fingerprint(lemon) = %q, want xxxx-xxxx", a)
	}
	if b := Fingerprint("lemon", policy); a != b {
		t.Errorf("Fingerprint not stable: %q then %q", a, b)
	}
	if b := Fingerprint("LEMON", policy); a != b {
		t.Errorf("Fingerprint is case-sensitive: %q vs %q", a, b)
	}
	if b := Fingerprint("melon", policy); a == b {
		t.Errorf("Fingerprint(lemon) == Fingerprint(melon) == %q", a)
	}
	if strings.Contains(a, "lemon") {
		t.Errorf("Fingerprint leaks the key: %q", a)
	}
}
