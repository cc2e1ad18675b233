package render

import (
	"errors"
	"fmt"
	"log"
	"time"
)

// Canvas draws square pixels, fills, paths and point sets onto a Surface.
// It holds no drawing state of its own; the surface is the only state.
type Canvas struct {
	surface Surface
	colors  ColorSource
	logger  *log.Logger
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithColorSource sets the source used by the random fill variants.
func WithColorSource(src ColorSource) Option {
	return func(c *Canvas) { c.colors = src }
}

// WithLogger sets where diagnostics such as a missing terminal size go.
func WithLogger(l *log.Logger) Option {
	return func(c *Canvas) { c.logger = l }
}

// NewCanvas creates a canvas drawing onto s. Without options it logs to
// log.Default() and samples random colors from a time-seeded source.
func NewCanvas(s Surface, opts ...Option) *Canvas {
	c := &Canvas{surface: s}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.Default()
	}
	if c.colors == nil {
		c.colors = NewRandomColors(0)
	}
	return c
}

// Surface returns the surface the canvas draws onto.
func (c *Canvas) Surface() Surface {
	return c.surface
}

// RealCell paints a single terminal cell.
func (c *Canvas) RealCell(x, y uint16, col Color) {
	c.surface.SetCell(x, y, col)
}

// SquarePixel paints the two real cells of the square pixel at (x, y).
func (c *Canvas) SquarePixel(x, y uint16, col Color) {
	first, second := SquarePixelCells(x, y)
	c.surface.SetCell(first.Col, first.Row, col)
	c.surface.SetCell(second.Col, second.Row, col)
}

// Clear wipes the surface.
func (c *Canvas) Clear() {
	c.surface.Clear()
}

// HideCursor hides the terminal cursor.
func (c *Canvas) HideCursor() {
	c.surface.HideCursor()
}

// ShowCursor shows the terminal cursor.
func (c *Canvas) ShowCursor() {
	c.surface.ShowCursor()
}

// Sleep blocks for d. Demos use it to pace their drawing.
func (c *Canvas) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Size queries the surface size for callers laying out their own drawing.
// A failure is logged like any drawing operation's.
func (c *Canvas) Size() (width, height uint16, err error) {
	return c.dimensions("size")
}

// dimensions queries the surface once for op. On failure it logs a
// diagnostic and returns an error wrapping ErrSurfaceUnavailable.
func (c *Canvas) dimensions(op string) (uint16, uint16, error) {
	w, h, err := c.surface.Dimensions()
	if err != nil {
		if !errors.Is(err, ErrSurfaceUnavailable) {
			err = fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
		}
		c.logger.Printf("%s: unable to get terminal size: %v", op, err)
		return 0, 0, fmt.Errorf("%s: %w", op, err)
	}
	return w, h, nil
}
