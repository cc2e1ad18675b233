package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"trender/internal/render"
)

// TcellSurface is a render.Surface on top of a tcell screen. Cells land in
// tcell's back buffer; call Show to flush them to the terminal.
type TcellSurface struct {
	screen tcell.Screen
}

// NewTcellSurface wraps an initialized screen.
func NewTcellSurface(s tcell.Screen) *TcellSurface {
	return &TcellSurface{screen: s}
}

// OpenTcell creates and initializes a tcell screen for the controlling
// terminal. Close it with Fini.
func OpenTcell() (*TcellSurface, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewTcellSurface(s), nil
}

// Screen returns the wrapped screen.
func (t *TcellSurface) Screen() tcell.Screen {
	return t.screen
}

// Dimensions returns the screen size. tcell reports 0x0 before the size is
// known, which counts as unavailable.
func (t *TcellSurface) Dimensions() (uint16, uint16, error) {
	w, h := t.screen.Size()
	if w <= 0 || h <= 0 || w > 0xFFFF || h > 0xFFFF {
		return 0, 0, fmt.Errorf("tcell size %dx%d: %w", w, h, render.ErrSurfaceUnavailable)
	}
	return uint16(w), uint16(h), nil
}

func (t *TcellSurface) SetCell(col, row uint16, c render.Color) {
	t.screen.SetContent(int(col), int(row), ' ', nil, CellStyle(c))
}

func (t *TcellSurface) Clear()      { t.screen.Clear() }
func (t *TcellSurface) HideCursor() { t.screen.HideCursor() }
func (t *TcellSurface) ShowCursor() { t.screen.ShowCursor(0, 0) }

// Show flushes pending cells to the terminal.
func (t *TcellSurface) Show() {
	t.screen.Show()
}

// Fini restores the terminal.
func (t *TcellSurface) Fini() {
	t.screen.Fini()
}

// CellStyle is the style SetCell paints with: a truecolor background.
func CellStyle(c render.Color) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}
