package internal

// Table is one half of the tabula recta: Table[k][x] is the letter that x
// maps to under key letter k, both given as offsets into Alphabet.
// The encrypt and decrypt tables share this shape so the transform does not
// need to know which one it was handed.
type Table [Size][Size]byte

// Build returns the encrypt and decrypt tables of the tabula recta.
// Row i is the alphabet rotated left by i positions and is keyed by
// Alphabet[i]. The decrypt row is the inverse of the encrypt row.
func Build() (Table, Table) {
	var enc, dec Table
	for i := 0; i < Size; i++ {
		// rotated row: Alphabet[i:] + Alphabet[:i]
		for p := 0; p < Size; p++ {
			enc[i][p] = Letter(p + i)
		}
		dec[i] = inv(enc[i])
	}
	return enc, dec
}

// inv computes the inverse of a substitution row: if row maps x to y then
// the result maps y back to x.
func inv(row [Size]byte) [Size]byte {
	var out [Size]byte
	for x, y := range row {
		out[y-'a'] = Letter(x)
	}
	return out
}

// Lookup substitutes letter under key. Both arguments must be 'a'..'z';
// ok is false otherwise.
func (t *Table) Lookup(key, letter byte) (byte, bool) {
	k, ok := Offset(key)
	if !ok {
		return 0, false
	}
	x, ok := Offset(letter)
	if !ok {
		return 0, false
	}
	return t[k][x], true
}
