package render

import "math"

// CellAddress is one real terminal cell, 0-based.
type CellAddress struct {
	Col, Row uint16
}

// SquarePixelCells returns the two adjacent real cells that make up the
// square pixel at (x, y). Terminal cells are roughly twice as tall as they
// are wide, so one square pixel spans columns 2x-1 and 2x.
//
// Doubling saturates at math.MaxUint16 and the left column saturates at 0,
// so x == 0 yields the same cell twice.
func SquarePixelCells(x, y uint16) (CellAddress, CellAddress) {
	doubled := satDouble(x)
	return CellAddress{Col: satDec(doubled), Row: y}, CellAddress{Col: doubled, Row: y}
}

func satDouble(v uint16) uint16 {
	if v > math.MaxUint16/2 {
		return math.MaxUint16
	}
	return v * 2
}

func satDec(v uint16) uint16 {
	if v == 0 {
		return 0
	}
	return v - 1
}

// toCell truncates a coordinate toward zero into the cell range.
// NaN and negatives map to 0, anything past the range to math.MaxUint16.
func toCell(f float64) uint16 {
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= math.MaxUint16:
		return math.MaxUint16
	}
	return uint16(f)
}
