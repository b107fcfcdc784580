package widetext

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// ByteOrder selects the byte serialization of a UTF-16 stream.
type ByteOrder uint8

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

// String returns the byte order name.
func (b ByteOrder) String() string {
	switch b {
	case LittleEndian:
		return "utf16le"
	case BigEndian:
		return "utf16be"
	default:
		return "unknown"
	}
}

func (b ByteOrder) put(dst []byte, u uint16) {
	if b == BigEndian {
		dst[0] = byte(u >> 8)
		dst[1] = byte(u)
		return
	}
	dst[0] = byte(u)
	dst[1] = byte(u >> 8)
}

func (b ByteOrder) get(src []byte) uint16 {
	if b == BigEndian {
		return uint16(src[0])<<8 | uint16(src[1])
	}
	return uint16(src[1])<<8 | uint16(src[0])
}

// NewUTF16Encoder returns a transform.Transformer converting a UTF-8 byte
// stream into UTF-16 bytes in the given order, for composition with
// transform.NewReader and transform.NewWriter. The bounded core's
// partial-progress contract maps directly onto ErrShortSrc/ErrShortDst:
// a character split across transform windows is never consumed until it
// can be completed.
func NewUTF16Encoder(order ByteOrder) transform.Transformer {
	return &utf16Encoder{order: order}
}

type utf16Encoder struct {
	order ByteOrder
	wide  []uint16
}

func (e *utf16Encoder) Reset() {}

func (e *utf16Encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	want := len(dst) / 2
	if want == 0 {
		if len(src) == 0 {
			return 0, 0, nil
		}
		return 0, 0, transform.ErrShortDst
	}
	if cap(e.wide) < want {
		e.wide = make([]uint16, want)
	}
	res := DecodeUTF8(e.wide[:want], src)
	for i := 0; i < res.Written; i++ {
		e.order.put(dst[2*i:], e.wide[i])
	}
	nDst = 2 * res.Written
	nSrc = res.Consumed

	switch {
	case res.Truncated > 0 && !atEOF:
		return nDst, nSrc, transform.ErrShortSrc
	case res.Truncated > 0:
		// End of stream inside a multi-byte sequence: substitute the
		// dangling bytes one Replacement each.
		for i := 0; i < res.Truncated; i++ {
			if nDst+2 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			e.order.put(dst[nDst:], uint16(Replacement))
			nDst += 2
			nSrc++
		}
	case res.Consumed < len(src):
		return nDst, nSrc, transform.ErrShortDst
	}
	return nDst, nSrc, nil
}

// NewUTF16Decoder returns a transform.Transformer converting UTF-16 bytes
// in the given order into a UTF-8 byte stream. A surrogate pair or unit
// split across transform windows is held back until completable; at end
// of stream a dangling half substitutes Replacement.
func NewUTF16Decoder(order ByteOrder) transform.Transformer {
	return &utf16Decoder{order: order}
}

type utf16Decoder struct {
	order ByteOrder
	wide  []uint16
}

func (d *utf16Decoder) Reset() {}

func (d *utf16Decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	units := len(src) / 2
	if cap(d.wide) < units {
		d.wide = make([]uint16, units)
	}
	wide := d.wide[:units]
	for i := range wide {
		wide[i] = d.order.get(src[2*i:])
	}

	held := false
	if !atEOF && units > 0 {
		if u := wide[units-1]; surr1 <= u && u < surr2 {
			// Trailing high surrogate: its partner may open the next
			// window.
			wide = wide[:units-1]
			held = true
		}
	}

	consumed, written := EncodeUTF8(dst, wide)
	nSrc = 2 * consumed
	nDst = written
	if consumed < len(wide) {
		return nDst, nSrc, transform.ErrShortDst
	}
	if !atEOF && (held || len(src)%2 == 1) {
		return nDst, nSrc, transform.ErrShortSrc
	}
	if atEOF && len(src)%2 == 1 {
		// Stray trailing byte, not even half a unit.
		if nDst+utf8.RuneLen(Replacement) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], Replacement)
		nSrc++
	}
	return nDst, nSrc, nil
}
