package term

import (
	"os"

	xterm "golang.org/x/term"
)

// NewStdout returns a surface on os.Stdout sized by the controlling
// terminal. When stdout is not a terminal every size query fails.
func NewStdout() *WriterSurface {
	fd := int(os.Stdout.Fd())
	return NewWriterSurface(os.Stdout, func() (int, int, error) {
		return xterm.GetSize(fd)
	})
}

// IsTerminal reports whether stdout is a terminal.
func IsTerminal() bool {
	return xterm.IsTerminal(int(os.Stdout.Fd()))
}
