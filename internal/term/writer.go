package term

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"trender/internal/render"
)

// SizeFunc reports the current terminal size.
type SizeFunc func() (width, height int, err error)

// WriterSurface is a render.Surface emitting ANSI escapes to an io.Writer.
// Every SetCell is written straight away; there is no buffering.
type WriterSurface struct {
	mu   sync.Mutex
	w    io.Writer
	size SizeFunc
	sb   strings.Builder
	err  error
}

// NewWriterSurface creates a surface writing to w and sized by size.
func NewWriterSurface(w io.Writer, size SizeFunc) *WriterSurface {
	return &WriterSurface{w: w, size: size}
}

// Dimensions queries size. Errors, negative sizes and sizes that do not fit
// in a uint16 are reported as render.ErrSurfaceUnavailable.
func (s *WriterSurface) Dimensions() (uint16, uint16, error) {
	if s.size == nil {
		return 0, 0, fmt.Errorf("no size source: %w", render.ErrSurfaceUnavailable)
	}
	w, h, err := s.size()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", render.ErrSurfaceUnavailable, err)
	}
	if w < 0 || h < 0 || w > 0xFFFF || h > 0xFFFF {
		return 0, 0, fmt.Errorf("bad terminal size %dx%d: %w", w, h, render.ErrSurfaceUnavailable)
	}
	return uint16(w), uint16(h), nil
}

func (s *WriterSurface) SetCell(col, row uint16, c render.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sb.Reset()
	WriteBgCell(&s.sb, col, row, c)
	s.write(s.sb.String())
}

func (s *WriterSurface) Clear() {
	s.WriteString(ClearScreen())
}

func (s *WriterSurface) HideCursor() {
	s.WriteString(HideCursor())
}

func (s *WriterSurface) ShowCursor() {
	s.WriteString(ShowCursor())
}

// WriteString sends a raw escape sequence or text to the terminal.
func (s *WriterSurface) WriteString(str string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.write(str)
}

// Err returns the first write error seen, if any. Writes keep being attempted
// after an error.
func (s *WriterSurface) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *WriterSurface) write(str string) {
	if _, err := io.WriteString(s.w, str); err != nil && s.err == nil {
		s.err = fmt.Errorf("write terminal: %w", err)
	}
}
