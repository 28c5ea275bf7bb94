package internal

import "fmt"

// EncryptVerified encrypts line and immediately decrypts the result with the
// same cipher. The comparison is against the lowercased input and is exact.
// If verification fails no ciphertext is returned.
func EncryptVerified(c *Cipher, line string) (string, error) {
	want := Lower(line)

	enc, err := c.Encrypt(want)
	if err != nil {
		return "", fmt.Errorf("encrypt failed: %w", err)
	}
	dec, err := c.Decrypt(enc)
	if err != nil {
		return "", fmt.Errorf("decrypt failed: %w", err)
	}
	if dec != want {
		return "", fmt.Errorf("%w: have %q, want %q", ErrRoundTrip, dec, want)
	}
	return enc, nil
}
