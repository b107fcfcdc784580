//go:build !windows

package consoleio

import (
	"io"
	"os"
)

// Non-Windows hosts speak UTF-8 natively; the standard streams pass
// through. Mode switches are still recorded on cfg for uniform callers.

// Stdin returns a UTF-8 reader for standard input.
func Stdin(cfg *Config) io.Reader {
	cfg.SetUTF8Stdin()
	return os.Stdin
}

// Stdout returns a UTF-8 writer for standard output.
func Stdout(cfg *Config) io.Writer {
	cfg.SetUTF8Stdout()
	return os.Stdout
}

// Stderr returns a UTF-8 writer for standard error.
func Stderr(cfg *Config) io.Writer {
	cfg.SetUTF8Stderr()
	return os.Stderr
}
