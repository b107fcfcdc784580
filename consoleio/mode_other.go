//go:build !windows

package consoleio

// POSIX streams are byte streams already; switches are recorded but
// apply nothing.

func setConsoleInputUTF8() error  { return nil }
func setConsoleOutputUTF8() error { return nil }
func setStdinBinary() error       { return nil }
func setStdoutBinary() error      { return nil }
