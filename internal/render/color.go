package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB color. Surfaces paint it as a cell background.
type Color struct {
	R, G, B uint8
}

// RGB is a shorthand to create a Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// DefaultPointColor is the color MapPoints draws with.
var DefaultPointColor = RGB(100, 100, 255)

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return c.colorful().Hex()
}

// FromColorful converts a go-colorful color, clamping it into the RGB gamut first.
func FromColorful(cf colorful.Color) Color {
	r, g, b := cf.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
