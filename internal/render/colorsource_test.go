package render_test

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"

	"trender/internal/render"
)

func TestFixedColorsCycles(t *testing.T) {
	a, b := render.RGB(1, 2, 3), render.RGB(4, 5, 6)
	src := render.NewFixedColors(a, b)
	want := []render.Color{a, b, a, b, a}
	for i, w := range want {
		if got := src.Next(); got != w {
			t.Errorf("Next #%d = %v, want %v", i, got, w)
		}
	}

	if got := render.NewFixedColors().Next(); got != (render.Color{}) {
		t.Errorf("empty source returned %v", got)
	}
}

func TestRandomColorsSeeded(t *testing.T) {
	a, b := render.NewRandomColors(42), render.NewRandomColors(42)
	distinct := make(map[render.Color]bool)
	for i := 0; i < 50; i++ {
		ca, cb := a.Next(), b.Next()
		if ca != cb {
			t.Fatalf("same seed diverged at %d: %v vs %v", i, ca, cb)
		}
		distinct[ca] = true
	}
	if len(distinct) < 40 {
		t.Errorf("expected mostly distinct colors, got %d of 50", len(distinct))
	}
}

func TestColorHex(t *testing.T) {
	if got := render.RGB(255, 128, 0).Hex(); got != "#ff8000" {
		t.Errorf("Hex = %q", got)
	}
	if got := render.FromColorful(colorful.Color{R: 1.2, G: -0.1, B: 0.5}); got != render.RGB(255, 0, 128) {
		t.Errorf("FromColorful clamped to %v", got)
	}
}
