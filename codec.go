package widetext

import (
	"unicode/utf16"
	"unicode/utf8"
)

// Replacement is the substitution character emitted in place of malformed
// input. It is the same in both conversion directions, and substitution is
// deterministic: the same malformed bytes always produce the same output.
const Replacement = '�'

const (
	// 0xd800-0xdc00 encodes the high 10 bits of a pair.
	// 0xdc00-0xe000 encodes the low 10 bits of a pair.
	// the value is those 20 bits plus 0x10000.
	surr1    = 0xd800
	surr2    = 0xdc00
	surr3    = 0xe000
	surrSelf = 0x10000
)

// Result reports the outcome of one bounded conversion.
//
// Consumed and Written count units of different widths and must never be
// conflated: a character taking four input bytes may take two output
// units. Truncated is nonzero only when the input ends with the valid
// prefix of an unfinished multi-byte character; those bytes are excluded
// from Consumed and must be prepended to the next chunk by the caller.
type Result struct {
	Consumed  int // input units fully converted
	Written   int // output units produced
	Truncated int // trailing input units held back, 0-3
}

// DecodeUTF8 converts UTF-8 bytes from src into UTF-16 units in dst.
//
// As many complete characters as fit in dst are converted; a character is
// never partially written, and Consumed covers only fully converted
// bytes. When src ends inside a multi-byte sequence, Truncated reports
// how many trailing bytes were held back (1-3); re-submit exactly those
// bytes at the front of the next chunk to resume losslessly. Malformed
// bytes substitute Replacement one byte at a time and conversion
// continues: bad text is degraded, never an error.
//
// DecodeUTF8 is stateless, pure and allocation-free, so it is safe for
// unrestricted concurrent use.
func DecodeUTF8(dst []uint16, src []byte) Result {
	var res Result
	for res.Consumed < len(src) {
		c := src[res.Consumed]
		if c < utf8.RuneSelf {
			if res.Written >= len(dst) {
				return res
			}
			dst[res.Written] = uint16(c)
			res.Consumed++
			res.Written++
			continue
		}
		rest := src[res.Consumed:]
		if !utf8.FullRune(rest) {
			// Valid prefix of a multi-byte sequence cut off by the end of
			// src. Held back, not substituted: the next chunk may
			// complete it.
			res.Truncated = len(rest)
			return res
		}
		r, size := utf8.DecodeRune(rest)
		need := 1
		if r >= surrSelf {
			need = 2
		}
		if res.Written+need > len(dst) {
			return res
		}
		if need == 2 {
			hi, lo := utf16.EncodeRune(r)
			dst[res.Written] = uint16(hi)
			dst[res.Written+1] = uint16(lo)
		} else {
			// r is Replacement when the sequence was malformed.
			dst[res.Written] = uint16(r)
		}
		res.Consumed += size
		res.Written += need
	}
	return res
}

// EncodeUTF8 converts UTF-16 units from src into UTF-8 bytes in dst.
//
// It stops before writing a partial character when dst is full; consumed
// covers only fully converted units. A lone surrogate, including a high
// surrogate that ends src, substitutes Replacement. There is no
// truncation count in this direction: output sizing makes it avoidable
// (three bytes per input unit always suffice).
//
// EncodeUTF8 is stateless, pure and allocation-free.
func EncodeUTF8(dst []byte, src []uint16) (consumed, written int) {
	for consumed < len(src) {
		var r rune
		size := 1
		switch u := src[consumed]; {
		case u < surr1, surr3 <= u:
			r = rune(u)
		case u < surr2 && consumed+1 < len(src) &&
			surr2 <= src[consumed+1] && src[consumed+1] < surr3:
			r = utf16.DecodeRune(rune(u), rune(src[consumed+1]))
			size = 2
		default:
			r = Replacement
		}
		n := utf8.RuneLen(r)
		if written+n > len(dst) {
			return consumed, written
		}
		utf8.EncodeRune(dst[written:], r)
		consumed += size
		written += n
	}
	return consumed, written
}
