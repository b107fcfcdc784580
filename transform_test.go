package widetext

import (
	"bytes"
	"io"
	"testing"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

func utf16leBytes(units []uint16) []byte {
	out := make([]byte, 2*len(units))
	for i, u := range units {
		out[2*i] = byte(u)
		out[2*i+1] = byte(u >> 8)
	}
	return out
}

func TestUTF16Encoder_MatchesReference(t *testing.T) {
	// Pin the encoder against the x/text reference implementation for
	// well-formed input.
	ref := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	for _, s := range wellFormed {
		want, err := ref.Bytes([]byte(s))
		if err != nil {
			t.Fatalf("reference encoder failed on %q: %v", s, err)
		}
		got, _, err := transform.Bytes(NewUTF16Encoder(LittleEndian), []byte(s))
		if err != nil {
			t.Fatalf("encode %q: %v", s, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("encode %q = %x, want %x", s, got, want)
		}
	}
}

func TestUTF16Decoder_MatchesReference(t *testing.T) {
	ref := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	for _, s := range wellFormed {
		in := utf16leBytes(ToUTF16(s))
		want, err := ref.Bytes(in)
		if err != nil {
			t.Fatalf("reference decoder failed on %q: %v", s, err)
		}
		got, _, err := transform.Bytes(NewUTF16Decoder(LittleEndian), in)
		if err != nil {
			t.Fatalf("decode %q: %v", s, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("decode %q = %q, want %q", s, got, want)
		}
	}
}

func TestUTF16RoundTrip_BothOrders(t *testing.T) {
	for _, order := range []ByteOrder{LittleEndian, BigEndian} {
		for _, s := range wellFormed {
			wide, _, err := transform.Bytes(NewUTF16Encoder(order), []byte(s))
			if err != nil {
				t.Fatalf("%v encode %q: %v", order, s, err)
			}
			back, _, err := transform.Bytes(NewUTF16Decoder(order), wide)
			if err != nil {
				t.Fatalf("%v decode %q: %v", order, s, err)
			}
			if string(back) != s {
				t.Errorf("%v round trip %q = %q", order, s, back)
			}
		}
	}
}

func TestUTF16Decoder_SmallReads(t *testing.T) {
	// Single-byte reads force every unit and every surrogate pair to
	// straddle a transform window.
	s := "a\U0001f600日\U0010ffff"
	in := utf16leBytes(ToUTF16(s))
	r := transform.NewReader(&oneByteReader{data: in}, NewUTF16Decoder(LittleEndian))
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != s {
		t.Errorf("got %q, want %q", got, s)
	}
}

func TestUTF16Encoder_SmallReads(t *testing.T) {
	s := "é\U0001f600 tail"
	r := transform.NewReader(&oneByteReader{data: []byte(s)}, NewUTF16Encoder(LittleEndian))
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(got, utf16leBytes(ToUTF16(s))) {
		t.Errorf("got %x, want %x", got, utf16leBytes(ToUTF16(s)))
	}
}

// oneByteReader yields one byte per Read call.
type oneByteReader struct {
	data []byte
	pos  int
}

func (r *oneByteReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	p[0] = r.data[r.pos]
	r.pos++
	return 1, nil
}

func TestUTF16Decoder_OddTrailingByte(t *testing.T) {
	in := append(utf16leBytes(ToUTF16("ab")), 0x41)
	got, _, err := transform.Bytes(NewUTF16Decoder(LittleEndian), in)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(got) != "ab�" {
		t.Errorf("got %q, want %q", got, "ab�")
	}
}

func TestUTF16Decoder_LoneSurrogateAtEOF(t *testing.T) {
	in := utf16leBytes([]uint16{'x', 0xd83d})
	got, _, err := transform.Bytes(NewUTF16Decoder(LittleEndian), in)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(got) != "x�" {
		t.Errorf("got %q, want %q", got, "x�")
	}
}

func TestUTF16Encoder_DanglingTailAtEOF(t *testing.T) {
	got, _, err := transform.Bytes(NewUTF16Encoder(LittleEndian), []byte("ok\xf0\x9f"))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := utf16leBytes(ToUTF16("ok\xf0\x9f"))
	if !bytes.Equal(got, want) {
		t.Errorf("got %x, want %x", got, want)
	}
}

func TestUTF16Writer(t *testing.T) {
	var buf bytes.Buffer
	w := transform.NewWriter(&buf, NewUTF16Encoder(BigEndian))
	// Split a four-byte character across two writes.
	in := []byte("pre \U0001f600 post")
	mid := bytes.IndexByte(in, 0xf0) + 2
	if _, err := w.Write(in[:mid]); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := w.Write(in[mid:]); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	var want []byte
	for _, u := range ToUTF16(string(in)) {
		want = append(want, byte(u>>8), byte(u))
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got %x, want %x", buf.Bytes(), want)
	}
}
