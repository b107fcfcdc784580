// Package consoleio wraps host console streams for a UTF-8 application.
//
// It owns two concerns the transcoding core deliberately does not: the
// one-way stream mode switches a host console needs before wide I/O, and
// the chunked read/write loops that carry characters split across buffer
// boundaries through the widetext codec.
package consoleio

import (
	"sync"

	"github.com/rs/zerolog"
)

// Config holds per-process console stream state. It is injected at
// startup rather than kept as package globals; the transcoding core
// below it has no global state at all. Every mode switch is idempotent
// and one-directional: once a stream is switched there is no way back.
type Config struct {
	log zerolog.Logger

	stdinUTF8    sync.Once
	stdoutUTF8   sync.Once
	stderrUTF8   sync.Once
	stdinBinary  sync.Once
	stdoutBinary sync.Once

	mu       sync.Mutex
	switched []string
}

// ConfigOptions configures console stream handling.
type ConfigOptions struct {
	// Logger traces mode switches. Nil disables tracing.
	Logger *zerolog.Logger
}

// DefaultConfigOptions returns sensible defaults.
func DefaultConfigOptions() ConfigOptions {
	return ConfigOptions{}
}

// NewConfig creates a console configuration.
func NewConfig(opts ConfigOptions) *Config {
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	return &Config{log: log}
}

// SetUTF8Stdin switches standard input to UTF-8 console translation.
func (c *Config) SetUTF8Stdin() {
	c.switchMode(&c.stdinUTF8, "stdin", "utf8", setConsoleInputUTF8)
}

// SetUTF8Stdout switches standard output to UTF-8 console translation.
func (c *Config) SetUTF8Stdout() {
	c.switchMode(&c.stdoutUTF8, "stdout", "utf8", setConsoleOutputUTF8)
}

// SetUTF8Stderr switches standard error to UTF-8 console translation.
func (c *Config) SetUTF8Stderr() {
	c.switchMode(&c.stderrUTF8, "stderr", "utf8", setConsoleOutputUTF8)
}

// SetUTF8Stdio switches all three standard streams to UTF-8.
func (c *Config) SetUTF8Stdio() {
	c.SetUTF8Stdin()
	c.SetUTF8Stdout()
	c.SetUTF8Stderr()
}

// SetBinaryStdin switches standard input to untranslated binary reads.
func (c *Config) SetBinaryStdin() {
	c.switchMode(&c.stdinBinary, "stdin", "binary", setStdinBinary)
}

// SetBinaryStdout switches standard output to untranslated binary writes.
func (c *Config) SetBinaryStdout() {
	c.switchMode(&c.stdoutBinary, "stdout", "binary", setStdoutBinary)
}

// Switched reports the switches applied so far, in order, as
// "stream:mode" pairs. Repeat calls to the same switch appear once.
func (c *Config) Switched() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.switched))
	copy(out, c.switched)
	return out
}

func (c *Config) switchMode(once *sync.Once, stream, mode string, apply func() error) {
	once.Do(func() {
		err := apply()
		c.mu.Lock()
		c.switched = append(c.switched, stream+":"+mode)
		c.mu.Unlock()
		if err != nil {
			c.log.Warn().Err(err).Str("stream", stream).Str("mode", mode).
				Msg("console mode switch failed")
			return
		}
		c.log.Debug().Str("stream", stream).Str("mode", mode).
			Msg("console mode switched")
	})
}
