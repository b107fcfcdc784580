package consoleio

import "github.com/Neumenon/widetext"

const (
	surrHigh = 0xd800
	surrLow  = 0xdc00
)

// WideSource is console-style input yielding UTF-16 units per call.
type WideSource interface {
	ReadWide(buf []uint16) (int, error)
}

// Reader adapts a WideSource into an io.Reader of UTF-8 bytes. A
// surrogate pair split across two source reads is stitched back
// together; the application never observes the seam.
type Reader struct {
	src     WideSource
	wide    []uint16
	pending uint16 // held-back high surrogate, 0 if none
	out     []byte
	outPos  int
	err     error
}

// ReaderOptions configures a console reader.
type ReaderOptions struct {
	// ChunkUnits is the number of wide units requested per source read
	// (default: 512).
	ChunkUnits int
}

// DefaultReaderOptions returns sensible defaults.
func DefaultReaderOptions() ReaderOptions {
	return ReaderOptions{ChunkUnits: 512}
}

// NewReader creates a transcoding reader over src.
func NewReader(src WideSource, opts ReaderOptions) *Reader {
	if opts.ChunkUnits <= 0 {
		opts.ChunkUnits = 512
	}
	return &Reader{
		src:  src,
		wide: make([]uint16, opts.ChunkUnits+1),
		out:  make([]byte, 0, 3*(opts.ChunkUnits+1)),
	}
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	for r.outPos >= len(r.out) {
		if r.err != nil {
			return 0, r.err
		}
		r.fill()
	}
	n := copy(p, r.out[r.outPos:])
	r.outPos += n
	return n, nil
}

func (r *Reader) fill() {
	buf := r.wide
	off := 0
	if r.pending != 0 {
		buf[0] = r.pending
		r.pending = 0
		off = 1
	}
	n, err := r.src.ReadWide(buf[off:])
	units := buf[:off+n]

	if err == nil && len(units) > 0 {
		if u := units[len(units)-1]; surrHigh <= u && u < surrLow {
			// Hold the high surrogate: its partner arrives next read.
			r.pending = u
			units = units[:len(units)-1]
		}
	}

	out := r.out[:cap(r.out)]
	_, written := widetext.EncodeUTF8(out, units)
	r.out = out[:written]
	r.outPos = 0

	if err != nil {
		r.err = err
	}
}
