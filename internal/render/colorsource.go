package render

import (
	"math/rand"
	"time"
)

// ColorSource hands out colors for the random fill variants.
type ColorSource interface {
	Next() Color
}

// RandomColors samples each channel uniformly from [0,255].
type RandomColors struct {
	rng *rand.Rand
}

// NewRandomColors creates a seeded random color source. A zero seed picks one
// from the clock.
func NewRandomColors(seed int64) *RandomColors {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomColors{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a color with three independently sampled channels.
func (rc *RandomColors) Next() Color {
	return Color{
		R: uint8(rc.rng.Intn(256)),
		G: uint8(rc.rng.Intn(256)),
		B: uint8(rc.rng.Intn(256)),
	}
}

// FixedColors cycles through a fixed sequence. An empty sequence yields black.
type FixedColors struct {
	seq []Color
	i   int
}

// NewFixedColors creates a source returning seq in order, wrapping around.
func NewFixedColors(seq ...Color) *FixedColors {
	return &FixedColors{seq: seq}
}

// Next returns the next color of the sequence.
func (fc *FixedColors) Next() Color {
	if len(fc.seq) == 0 {
		return Color{}
	}
	c := fc.seq[fc.i%len(fc.seq)]
	fc.i++
	return c
}
