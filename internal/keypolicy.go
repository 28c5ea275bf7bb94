package internal

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ValidateKey normalizes a key phrase to lowercase and checks that it can
// drive the tabula recta.
//   - An empty key returns ErrEmptyKey (Align would otherwise divide by zero).
//   - Any rune outside 'a'..'z' after lowercasing returns ErrInvalidKey.
//
// Errors never echo the key content.
func ValidateKey(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("%w: key phrase must not be empty", ErrEmptyKey)
	}
	k := strings.ToLower(key)
	for i, r := range k {
		if !IsLetter(r) {
			return "", fmt.Errorf("%w: key phrase must contain only letters a-z (offending character at byte %d)", ErrInvalidKey, i)
		}
	}
	return k, nil
}

// FingerprintPolicy holds the Argon2id parameters used for key fingerprints.
type FingerprintPolicy struct {
	MemKB    uint32 // memory in KiB
	Time     uint32 // iterations
	Parallel uint8
}

// DefaultFingerprintPolicy is cheap enough to run on every start while still
// making a brute-force search over short key phrases from a fingerprint slow.
func DefaultFingerprintPolicy() FingerprintPolicy {
	return FingerprintPolicy{
		MemKB:    16 * 1024,
		Time:     1,
		Parallel: 1,
	}
}

// Fingerprint returns a short, stable identifier for a key phrase in the form
// "xxxx-xxxx". The same key always yields the same fingerprint so an operator
// can spot a mistyped key before writing to the file.
//
// The key is run through Argon2id with a fixed domain salt and the result is
// hashed with SHA-256; the first four bytes are shown.
func Fingerprint(key string, policy FingerprintPolicy) string {
	salt := []byte("vigenere/v1/fingerprint/domain-sep")
	mem := policy.MemKB
	if mem == 0 {
		mem = 16 * 1024
	}
	time := policy.Time
	if time == 0 {
		time = 1
	}
	par := policy.Parallel
	if par == 0 {
		par = 1
	}

	derived := argon2.IDKey([]byte(strings.ToLower(key)), salt, time, mem, par, 32)
	sum := sha256.Sum256(derived)
	h := hex.EncodeToString(sum[:4])
	return h[:4] + "-" + h[4:]
}
