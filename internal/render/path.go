package render

import (
	"math"
)

// Step calibration for DrawPath. The step count is interpolated linearly
// between MinSteps at MinDistance and MaxSteps at MaxDistance and
// extrapolated outside that band without clamping: segments shorter than
// about 9.1 units get a step count <= 0 and draw only their start point, and
// long segments get more than MaxSteps.
const (
	MinSteps    = 1000
	MaxSteps    = 100000
	MinDistance = 10.0
	MaxDistance = 100.0
)

// Coordinate2D is a point in continuous logical space.
type Coordinate2D struct {
	X, Y float64
}

// PathSegment is a straight line between two points, drawn in one color.
type PathSegment struct {
	From, To Coordinate2D
	Color    Color
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Coordinate2D) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// StepCount returns the number of interpolation steps for a segment of the
// given length. The result may be zero or negative for short segments.
func StepCount(distance float64) int {
	t := (distance - MinDistance) / (MaxDistance - MinDistance)
	return int(math.Round(MinSteps + t*(MaxSteps-MinSteps)))
}

// Walk calls fn for the start point and then for each of the StepCount
// accumulated points along the segment. The increment is added without
// renormalization, so floating drift near the end point is expected.
//
// Zero-length and non-finite segments, and those with no positive step
// count, visit the start point only.
func (s PathSegment) Walk(fn func(Coordinate2D)) {
	fn(s.From)

	distance := Distance(s.From, s.To)
	if distance == 0 || math.IsNaN(distance) || math.IsInf(distance, 0) {
		return
	}
	steps := StepCount(distance)
	if steps <= 0 {
		return
	}

	stepSize := distance / float64(steps)
	dx := (s.To.X - s.From.X) / distance * stepSize
	dy := (s.To.Y - s.From.Y) / distance * stepSize

	p := s.From
	for i := 0; i < steps; i++ {
		p.X += dx
		p.Y += dy
		fn(p)
	}
}

// DrawPath rasterizes each segment in order as a run of square pixels.
// Coordinates are truncated to cells; callers center or clip them first, no
// bounds checking happens here.
func (c *Canvas) DrawPath(segments []PathSegment) {
	for _, seg := range segments {
		col := seg.Color
		seg.Walk(func(p Coordinate2D) {
			c.SquarePixel(toCell(p.X), toCell(p.Y), col)
		})
	}
}
