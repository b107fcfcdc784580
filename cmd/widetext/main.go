// widetext transcodes a byte stream between UTF-8 and UTF-16, driving
// the bounded streaming codec so characters split across read chunks are
// carried correctly regardless of buffer size.
//
// Usage:
//
//	widetext --from utf16le --to utf8 [-o OUT] [FILE]
//
// With no FILE, input is read from stdin; with no -o, output goes to
// stdout. Malformed input is substituted with U+FFFD, never rejected.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"golang.org/x/text/transform"

	"github.com/Neumenon/widetext"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		from    string
		to      string
		chunk   int
		output  string
		verbose bool
	)
	flags := pflag.NewFlagSet("widetext", pflag.ContinueOnError)
	flags.StringVar(&from, "from", "utf8", "input encoding: utf8, utf16le, utf16be")
	flags.StringVar(&to, "to", "utf16le", "output encoding: utf8, utf16le, utf16be")
	flags.IntVar(&chunk, "chunk", 4096, "copy buffer size in bytes")
	flags.StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log transcoding statistics")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if chunk < 16 {
		chunk = 16
	}

	log := newLogger(verbose)

	in := io.Reader(os.Stdin)
	name := "-"
	switch args := flags.Args(); len(args) {
	case 0:
	case 1:
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
		name = args[0]
	default:
		return fmt.Errorf("at most one input file, got %d", len(args))
	}

	out := io.Writer(os.Stdout)
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	reader, err := decodeSide(in, from)
	if err != nil {
		return err
	}
	writer, err := encodeSide(out, to)
	if err != nil {
		return err
	}

	n, err := io.CopyBuffer(writer, reader, make([]byte, chunk))
	if err != nil {
		return fmt.Errorf("transcode %s: %w", name, err)
	}
	if err := writer.Close(); err != nil {
		return err
	}
	log.Info().
		Str("input", name).
		Str("from", from).
		Str("to", to).
		Int64("bytes", n).
		Msg("transcode complete")
	return nil
}

// decodeSide normalizes the input side to a UTF-8 byte stream.
func decodeSide(r io.Reader, enc string) (io.Reader, error) {
	switch enc {
	case "utf8":
		return r, nil
	case "utf16le":
		return transform.NewReader(r, widetext.NewUTF16Decoder(widetext.LittleEndian)), nil
	case "utf16be":
		return transform.NewReader(r, widetext.NewUTF16Decoder(widetext.BigEndian)), nil
	}
	return nil, fmt.Errorf("unknown input encoding %q", enc)
}

// encodeSide converts the UTF-8 byte stream to the output encoding.
// Close flushes transform state without closing the underlying writer.
func encodeSide(w io.Writer, enc string) (io.WriteCloser, error) {
	switch enc {
	case "utf8":
		return nopCloser{w}, nil
	case "utf16le":
		return transform.NewWriter(w, widetext.NewUTF16Encoder(widetext.LittleEndian)), nil
	case "utf16be":
		return transform.NewWriter(w, widetext.NewUTF16Encoder(widetext.BigEndian)), nil
	}
	return nil, fmt.Errorf("unknown output encoding %q", enc)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.InfoLevel
	}
	var w io.Writer = os.Stderr
	if term.IsTerminal(int(os.Stderr.Fd())) {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
