package output

import (
	"io"
	"os"
)

// Color modes accepted by the persistent --color flag. Every readmegen
// command shares the flag, so the mode names live here next to the Printer
// that consumes them.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Colorize decides whether styled output is wanted for a writer. ColorAlways
// and ColorNever are absolute; ColorAuto (and any unrecognized mode) defers
// to terminal detection, so piping a rendered document or tree into a file
// yields plain text without ANSI noise.
func Colorize(mode string, w io.Writer) bool {
	switch mode {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	default:
		return IsTTY(w)
	}
}

// IsTTY reports whether a writer is an interactive terminal. Only an
// *os.File backed by a character device qualifies; test buffers and pipes
// never do, which keeps command output byte-stable under test.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
