//go:build windows

package consoleio

import (
	"io"
	"os"

	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

// Stdin returns a UTF-8 reader for standard input. On a console it
// switches the stream to UTF-8, reads wide units via ReadConsole and
// transcodes; for files and pipes bytes pass through untouched.
func Stdin(cfg *Config) io.Reader {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return os.Stdin
	}
	cfg.SetUTF8Stdin()
	return NewReader(&consoleInput{handle: windows.Handle(os.Stdin.Fd())}, DefaultReaderOptions())
}

// Stdout returns a UTF-8 writer for standard output, transcoding to wide
// console writes when stdout is a console.
func Stdout(cfg *Config) io.Writer {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return os.Stdout
	}
	cfg.SetUTF8Stdout()
	return NewWriter(&consoleOutput{handle: windows.Handle(os.Stdout.Fd())}, DefaultWriterOptions())
}

// Stderr returns a UTF-8 writer for standard error, transcoding to wide
// console writes when stderr is a console.
func Stderr(cfg *Config) io.Writer {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return os.Stderr
	}
	cfg.SetUTF8Stderr()
	return NewWriter(&consoleOutput{handle: windows.Handle(os.Stderr.Fd())}, DefaultWriterOptions())
}

type consoleInput struct {
	handle windows.Handle
}

func (c *consoleInput) ReadWide(buf []uint16) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	var read uint32
	if err := windows.ReadConsole(c.handle, &buf[0], uint32(len(buf)), &read, nil); err != nil {
		return 0, err
	}
	if read == 0 {
		return 0, io.EOF
	}
	return int(read), nil
}

type consoleOutput struct {
	handle windows.Handle
}

func (c *consoleOutput) WriteWide(buf []uint16) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	var written uint32
	if err := windows.WriteConsole(c.handle, &buf[0], uint32(len(buf)), &written, nil); err != nil {
		return 0, err
	}
	return int(written), nil
}
