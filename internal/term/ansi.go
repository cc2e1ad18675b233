package term

import (
	"fmt"
	"strconv"
	"strings"

	"trender/internal/render"
)

const (
	ESC   = "\x1b"
	CSI   = ESC + "["
	Reset = CSI + "0m"
)

// MoveTo positions the cursor at row, col (1-based).
func MoveTo(row, col int) string {
	return fmt.Sprintf("%s%d;%dH", CSI, row, col)
}

// ClearScreen clears the entire screen and homes the cursor.
func ClearScreen() string {
	return CSI + "2J" + CSI + "H"
}

// HideCursor hides the terminal cursor.
func HideCursor() string {
	return CSI + "?25l"
}

// ShowCursor shows the terminal cursor.
func ShowCursor() string {
	return CSI + "?25h"
}

// EnableAltScreen switches to the alternate screen buffer.
func EnableAltScreen() string {
	return CSI + "?1049h"
}

// DisableAltScreen switches back from the alternate screen buffer.
func DisableAltScreen() string {
	return CSI + "?1049l"
}

// WriteBgCell writes a blank cell at the 0-based (col, row) with a truecolor
// background, then resets attributes so nothing leaks into the next cell.
func WriteBgCell(sb *strings.Builder, col, row uint16, c render.Color) {
	sb.WriteString(MoveTo(int(row)+1, int(col)+1))
	sb.WriteString("\x1b[48;2;")
	sb.WriteString(strconv.Itoa(int(c.R)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.G)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.B)))
	sb.WriteString("m ")
	sb.WriteString(Reset)
}
