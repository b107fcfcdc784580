package consoleio

import (
	"github.com/Neumenon/widetext"
)

// WideSink is console-style output accepting UTF-16 units.
type WideSink interface {
	WriteWide(buf []uint16) (int, error)
}

// Writer adapts a WideSink into an io.Writer of UTF-8 bytes. Application
// writes arrive as arbitrary byte chunks, so a multi-byte character can
// end mid-write; the embedded widetext.Decoder holds the truncated tail
// until the next write. Close flushes a tail left dangling at the end of
// the stream.
type Writer struct {
	sink WideSink
	dec  widetext.Decoder
	wide []uint16
}

// WriterOptions configures a console writer.
type WriterOptions struct {
	// ChunkUnits is the wide buffer size per sink write (default: 512,
	// minimum: 8).
	ChunkUnits int
}

// DefaultWriterOptions returns sensible defaults.
func DefaultWriterOptions() WriterOptions {
	return WriterOptions{ChunkUnits: 512}
}

// NewWriter creates a transcoding writer over sink.
func NewWriter(sink WideSink, opts WriterOptions) *Writer {
	if opts.ChunkUnits <= 0 {
		opts.ChunkUnits = 512
	}
	if opts.ChunkUnits < 8 {
		opts.ChunkUnits = 8
	}
	return &Writer{
		sink: sink,
		wide: make([]uint16, opts.ChunkUnits),
	}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	total := 0
	for total < len(p) {
		written, consumed := w.dec.Decode(w.wide, p[total:])
		if err := w.flushWide(w.wide[:written]); err != nil {
			return total, err
		}
		total += consumed
		if written == 0 && consumed == 0 {
			break
		}
	}
	return total, nil
}

// Close substitutes and flushes any dangling partial character. The sink
// is not closed.
func (w *Writer) Close() error {
	for w.dec.Pending() > 0 {
		n := w.dec.Flush(w.wide)
		if err := w.flushWide(w.wide[:n]); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) flushWide(units []uint16) error {
	for len(units) > 0 {
		n, err := w.sink.WriteWide(units)
		if err != nil {
			return err
		}
		units = units[n:]
	}
	return nil
}
