package render

import "math"

// MapPoints draws one square pixel per coordinate, in order, with
// DefaultPointColor. Each point lands on (floor(x+1), floor(y+1)), keeping a
// one pixel margin at the top-left. Nothing is drawn between points.
func (c *Canvas) MapPoints(coords []Coordinate2D) {
	c.MapPointsColor(coords, DefaultPointColor)
}

// MapPointsColor is MapPoints with an explicit color.
func (c *Canvas) MapPointsColor(coords []Coordinate2D, col Color) {
	for _, p := range coords {
		c.SquarePixel(toCell(math.Floor(p.X+1)), toCell(math.Floor(p.Y+1)), col)
	}
}
