package widetext

// Whole-string conversion adapters over the bounded core for the common
// non-chunked case. These grow output as needed and never fail: malformed
// input degrades via Replacement. Truncation is not observable here; a
// trailing unfinished sequence has no next chunk to complete it, so it is
// substituted byte by byte, matching what []rune conversion produces.

// ToUTF16 converts a UTF-8 string to UTF-16 units.
func ToUTF16(s string) []uint16 {
	// A byte never produces more than one output unit (a four-byte
	// character produces two), so len(s) units always suffice.
	dst := make([]uint16, len(s))
	res := DecodeUTF8(dst, []byte(s))
	out := dst[:res.Written]
	for i := 0; i < res.Truncated; i++ {
		out = append(out, uint16(Replacement))
	}
	return out
}

// ToUTF8 converts UTF-16 units to a UTF-8 string.
func ToUTF8(w []uint16) string {
	// A unit never produces more than three output bytes (a surrogate
	// pair produces four for two units), so 3*len(w) bytes always suffice
	// and the conversion runs to completion.
	dst := make([]byte, 3*len(w))
	_, written := EncodeUTF8(dst, w)
	return string(dst[:written])
}
