package widetext

import (
	"fmt"
	"unicode/utf8"
)

// InvalidSpan identifies a run of bytes that DecodeUTF8 would substitute.
// Offset and Length are in bytes from the start of the scanned input.
type InvalidSpan struct {
	Offset int
	Length int
}

func (s InvalidSpan) String() string {
	return fmt.Sprintf("invalid sequence at byte %d (%d bytes)", s.Offset, s.Length)
}

// Valid reports whether src would convert without any substitution. An
// unfinished trailing sequence counts as invalid here: validation judges
// a whole buffer, not a resumable chunk.
func Valid(src []byte) bool {
	return len(Validate(src)) == 0
}

// Validate scans src and returns every malformed span, adjacent bad bytes
// merged. It shares the decoder's classification, so a clean result
// guarantees substitution-free conversion. Returns nil for clean input.
//
// Callers that prefer rejecting bad text to degrading it validate first;
// the codec itself never fails.
func Validate(src []byte) []InvalidSpan {
	var spans []InvalidSpan
	add := func(off, length int) {
		if n := len(spans); n > 0 && spans[n-1].Offset+spans[n-1].Length == off {
			spans[n-1].Length += length
			return
		}
		spans = append(spans, InvalidSpan{Offset: off, Length: length})
	}

	for i := 0; i < len(src); {
		if src[i] < utf8.RuneSelf {
			i++
			continue
		}
		rest := src[i:]
		if !utf8.FullRune(rest) {
			add(i, len(rest))
			break
		}
		r, size := utf8.DecodeRune(rest)
		if r == utf8.RuneError && size == 1 {
			add(i, 1)
		}
		i += size
	}
	return spans
}
