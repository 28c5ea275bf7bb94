package internal

import (
	"fmt"
	"io"
	"math/rand"
)

// selfTestFiller holds the non-letter characters mixed into generated
// messages; they must come back unchanged.
const selfTestFiller = " ,.!?'-0123456789"

// RunSelfTest generates `sets` random key/message pairs, prints each one with
// its ciphertext, verifies the round trip and that every non-letter stayed in
// place, and returns the number of failed sets.
//
// Parameters:
// - w:    where the report goes
// - r:    random source (seed it for reproducible runs)
// - sets: number of key/message pairs to check
func RunSelfTest(w io.Writer, r *rand.Rand, sets int) int {
	failed := 0

	fmt.Fprintln(w, Style("Self-test (random key/message pairs)", Bold, Blue))

	for si := 0; si < sets; si++ {
		key := randomLetters(r, 1+r.Intn(12))
		message := randomMessage(r, 1+r.Intn(60))

		c, err := NewCipher(key)
		if err != nil {
			fmt.Fprintf(w, "self-test cipher error: %v\n", err)
			failed++
			continue
		}

		okAll := true
		enc, err := EncryptVerified(c, message)
		if err != nil {
			okAll = false
		} else if !samePunctuation(message, enc) {
			okAll = false
		}

		if sets > 1 {
			fmt.Fprintln(w, Style(fmt.Sprintf("Set %d:", si+1), Bold, Purple))
		}
		fmt.Fprintf(w, "  Key:    %s\n", key)
		fmt.Fprintf(w, "  Plain:  %s\n", message)
		fmt.Fprintf(w, "  Cipher: %s\n", enc)

		var result string
		if okAll {
			result = Style("PASSED", Bold, Green)
		} else {
			result = Style("FAILED", Bold, Red)
			failed++
		}
		fmt.Fprintf(w, "  Result: %s\n", result)
	}

	if sets > 1 {
		fmt.Fprintf(w, "%s %d, %s %d\n",
			Style("Total sets:", Bold), sets,
			Style("Failed:", Bold), failed)
	}
	return failed
}

func randomLetters(r *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = Letter(r.Intn(Size))
	}
	return string(b)
}

// randomMessage is mostly letters with some filler characters.
func randomMessage(r *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		if r.Intn(4) == 0 {
			b[i] = selfTestFiller[r.Intn(len(selfTestFiller))]
			continue
		}
		b[i] = Letter(r.Intn(Size))
	}
	return string(b)
}

// samePunctuation reports whether a and b have identical non-letters at
// identical positions and letters everywhere else.
func samePunctuation(a, b string) bool {
	ra, rb := []rune(a), []rune(b)
	if len(ra) != len(rb) {
		return false
	}
	for i := range ra {
		if IsLetter(ra[i]) != IsLetter(rb[i]) {
			return false
		}
		if !IsLetter(ra[i]) && ra[i] != rb[i] {
			return false
		}
	}
	return true
}
