//go:build windows

package consoleio

import "golang.org/x/sys/windows"

const utf8CodePage = 65001

func setConsoleInputUTF8() error {
	return windows.SetConsoleCP(utf8CodePage)
}

func setConsoleOutputUTF8() error {
	// The output code page covers stdout and stderr alike; the call is
	// idempotent so switching both streams is harmless.
	return windows.SetConsoleOutputCP(utf8CodePage)
}

func setStdinBinary() error {
	h, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		return err
	}
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return err
	}
	mode &^= windows.ENABLE_PROCESSED_INPUT | windows.ENABLE_LINE_INPUT | windows.ENABLE_ECHO_INPUT
	return windows.SetConsoleMode(h, mode)
}

func setStdoutBinary() error {
	h, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return err
	}
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return err
	}
	mode &^= windows.ENABLE_PROCESSED_OUTPUT | windows.ENABLE_WRAP_AT_EOL_OUTPUT
	return windows.SetConsoleMode(h, mode)
}
