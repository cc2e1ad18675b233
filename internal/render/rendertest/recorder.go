// Package rendertest provides a recording Surface for tests.
package rendertest

import (
	"fmt"

	"trender/internal/render"
)

// Draw is one recorded SetCell call.
type Draw struct {
	Col, Row uint16
	Color    render.Color
}

// Recorder is an in-memory render.Surface that records every call in order.
type Recorder struct {
	Width, Height uint16
	// Unavailable makes Dimensions fail.
	Unavailable bool

	Draws       []Draw
	DimCalls    int
	Clears      int
	HideCursors int
	ShowCursors int
}

// NewRecorder creates a recorder reporting the given size.
func NewRecorder(width, height uint16) *Recorder {
	return &Recorder{Width: width, Height: height}
}

// NewUnavailable creates a recorder whose size query always fails.
func NewUnavailable() *Recorder {
	return &Recorder{Unavailable: true}
}

func (r *Recorder) Dimensions() (uint16, uint16, error) {
	r.DimCalls++
	if r.Unavailable {
		return 0, 0, fmt.Errorf("recorder: %w", render.ErrSurfaceUnavailable)
	}
	return r.Width, r.Height, nil
}

func (r *Recorder) SetCell(col, row uint16, c render.Color) {
	r.Draws = append(r.Draws, Draw{Col: col, Row: row, Color: c})
}

func (r *Recorder) Clear()      { r.Clears++ }
func (r *Recorder) HideCursor() { r.HideCursors++ }
func (r *Recorder) ShowCursor() { r.ShowCursors++ }

// Cells returns the recorded addresses, dropping colors.
func (r *Recorder) Cells() []render.CellAddress {
	out := make([]render.CellAddress, len(r.Draws))
	for i, d := range r.Draws {
		out[i] = render.CellAddress{Col: d.Col, Row: d.Row}
	}
	return out
}

// Final returns the last color written to each cell.
func (r *Recorder) Final() map[render.CellAddress]render.Color {
	out := make(map[render.CellAddress]render.Color, len(r.Draws))
	for _, d := range r.Draws {
		out[render.CellAddress{Col: d.Col, Row: d.Row}] = d.Color
	}
	return out
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.Draws = nil
	r.DimCalls, r.Clears, r.HideCursors, r.ShowCursors = 0, 0, 0, 0
}
