package widetext

import "unicode/utf8"

// Decoder converts a chunked UTF-8 stream to UTF-16, carrying the
// truncated tail of a split character between calls so the caller needs
// no bookkeeping of its own. State is at most three bytes; the zero value
// is ready for use.
//
// A Decoder serves one stream. It is not safe for concurrent use.
type Decoder struct {
	tail [utf8.UTFMax - 1]byte
	n    int
}

// Pending returns the number of tail bytes held from previous chunks.
func (d *Decoder) Pending() int { return d.n }

// Reset discards any pending tail.
func (d *Decoder) Reset() { d.n = 0 }

// Decode converts src into dst, first completing any character split at
// the previous chunk boundary. consumed counts bytes of src accepted,
// including bytes absorbed into the pending tail; written counts units
// produced. consumed < len(src) only when dst ran out of room, in which
// case the caller re-submits src[consumed:].
func (d *Decoder) Decode(dst []uint16, src []byte) (written, consumed int) {
	if d.n > 0 {
		// Stitch the held tail to the head of src and decode the seam
		// through the bounded core so the two paths cannot disagree.
		var stitch [2 * utf8.UTFMax]byte
		n := copy(stitch[:], d.tail[:d.n])
		k := copy(stitch[n:], src)
		res := DecodeUTF8(dst, stitch[:n+k])
		written = res.Written
		if res.Consumed == 0 {
			if res.Truncated == n+k {
				// Still an unfinished prefix; src was absorbed whole.
				d.n = copy(d.tail[:], stitch[:n+k])
				return written, k
			}
			// No output capacity.
			return 0, 0
		}
		if res.Consumed < n {
			// Capacity ran out inside the pending bytes.
			d.n = copy(d.tail[:], stitch[res.Consumed:n])
			return written, 0
		}
		d.n = 0
		consumed = res.Consumed - n
		// Bytes the seam decode left over are re-read from src below.
		dst = dst[res.Written:]
		src = src[consumed:]
	}

	res := DecodeUTF8(dst, src)
	written += res.Written
	consumed += res.Consumed + res.Truncated
	if res.Truncated > 0 {
		d.n = copy(d.tail[:], src[res.Consumed:res.Consumed+res.Truncated])
	}
	return written, consumed
}

// Flush substitutes a pending tail left dangling at end of stream,
// writing one Replacement unit per held byte so chunked conversion ends
// exactly like the whole-string forms. It returns the units written; if
// dst is smaller than the tail, call again until Pending reports zero.
func (d *Decoder) Flush(dst []uint16) int {
	k := d.n
	if k > len(dst) {
		k = len(dst)
	}
	for i := 0; i < k; i++ {
		dst[i] = uint16(Replacement)
	}
	copy(d.tail[:], d.tail[k:d.n])
	d.n -= k
	return k
}
