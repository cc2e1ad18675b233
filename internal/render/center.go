package render

// Number is the coordinate domain the centering helpers work over. Integer
// types divide with truncation, floating point types exactly.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// CenterOffsetX shifts base so a set of x coordinates spanning coords sits in
// the middle of the surface. Square pixels are two cells wide, so the middle
// column in pixel units is width/4.
//
// When the surface size is unavailable base is returned unchanged along with
// the error.
func CenterOffsetX[T Number](c *Canvas, base T, coords []T) (T, error) {
	w, _, err := c.dimensions("center x")
	if err != nil {
		return base, err
	}
	return base + T(w/4) - spread(coords)/2, nil
}

// CenterOffsetY is CenterOffsetX for rows; rows are not doubled so the middle
// is height/2.
func CenterOffsetY[T Number](c *Canvas, base T, coords []T) (T, error) {
	_, h, err := c.dimensions("center y")
	if err != nil {
		return base, err
	}
	return base + T(h/2) - spread(coords)/2, nil
}

// spread returns max - min of coords, or 0 when empty.
func spread[T Number](coords []T) T {
	if len(coords) == 0 {
		return 0
	}
	lo, hi := coords[0], coords[0]
	for _, v := range coords[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return hi - lo
}

// CenterPoints adds the x and y centering offsets of pts to every point. A set
// whose minimum sits at the origin ends up centered on the surface. The points
// are returned unchanged with the error when the size is unavailable.
func CenterPoints(c *Canvas, pts []Coordinate2D) ([]Coordinate2D, error) {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	ox, err := CenterOffsetX(c, 0, xs)
	if err != nil {
		return pts, err
	}
	oy, err := CenterOffsetY(c, 0, ys)
	if err != nil {
		return pts, err
	}

	out := make([]Coordinate2D, len(pts))
	for i, p := range pts {
		out[i] = Coordinate2D{X: p.X + ox, Y: p.Y + oy}
	}
	return out, nil
}

// CenterSegments shifts every segment by the centering offset of all
// endpoints taken together.
func CenterSegments(c *Canvas, segs []PathSegment) ([]PathSegment, error) {
	ends := make([]Coordinate2D, 0, 2*len(segs))
	for _, s := range segs {
		ends = append(ends, s.From, s.To)
	}
	moved, err := CenterPoints(c, ends)
	if err != nil {
		return segs, err
	}
	out := make([]PathSegment, len(segs))
	for i, s := range segs {
		out[i] = PathSegment{From: moved[2*i], To: moved[2*i+1], Color: s.Color}
	}
	return out, nil
}
