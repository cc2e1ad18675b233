package render

import "errors"

// ErrSurfaceUnavailable is returned when a surface cannot report its size,
// e.g. stdout is not a terminal. It is never fatal: the operation that hit it
// draws nothing and returns.
var ErrSurfaceUnavailable = errors.New("surface unavailable")

// Surface is a character-grid display that can paint single cells.
//
// Dimensions is queried fresh by every operation that needs it since the
// terminal may be resized between calls. SetCell accepts any address; cells
// outside the physical display are the surface's problem, usually clipped.
type Surface interface {
	Dimensions() (width, height uint16, err error)
	SetCell(col, row uint16, c Color)
	Clear()
	HideCursor()
	ShowCursor()
}
