package render

import "math"

// NearPlane is the minimum depth along the view direction a point needs to
// be projected. Anything closer, including points behind the camera, is
// rejected rather than divided by a tiny or negative depth.
const NearPlane = 0.1

// Vec3 is a point or direction in 3D space.
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Normalize returns v scaled to unit length, or the zero vector if v has none.
func (v Vec3) Normalize() Vec3 {
	mag := math.Sqrt(v.Dot(v))
	if mag == 0 {
		return Vec3{}
	}
	return v.Scale(1 / mag)
}

// RotateX rotates p around the X axis by angle radians.
func RotateX(p Vec3, angle float64) Vec3 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Vec3{X: p.X, Y: p.Y*cos - p.Z*sin, Z: p.Y*sin + p.Z*cos}
}

// RotateY rotates p around the Y axis by angle radians.
func RotateY(p Vec3, angle float64) Vec3 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Vec3{X: p.X*cos + p.Z*sin, Y: p.Y, Z: -p.X*sin + p.Z*cos}
}

// RotateZ rotates p around the Z axis by angle radians.
func RotateZ(p Vec3, angle float64) Vec3 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Vec3{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos, Z: p.Z}
}

// Camera is a pinhole camera. Direction need not be normalized. FOV is the
// full field of view in radians.
type Camera struct {
	Position  Vec3
	Direction Vec3
	FOV       float64
}

// Project maps p onto the camera's image plane. It reports false for points
// closer than NearPlane along the view direction, and for every point when
// Direction is the zero vector.
func (cam Camera) Project(p Vec3) (Coordinate2D, bool) {
	rel := p.Sub(cam.Position)
	depth := cam.Direction.Normalize().Dot(rel)
	if !(depth >= NearPlane) {
		return Coordinate2D{}, false
	}
	f := math.Tan(cam.FOV / 2)
	return Coordinate2D{X: f * rel.X / depth, Y: f * rel.Y / depth}, true
}

// ProjectAll projects pts and drops the rejected ones.
func (cam Camera) ProjectAll(pts []Vec3) []Coordinate2D {
	out := make([]Coordinate2D, 0, len(pts))
	for _, p := range pts {
		if c, ok := cam.Project(p); ok {
			out = append(out, c)
		}
	}
	return out
}

// Edge joins two vertices by index.
type Edge [2]int

// Cube returns the vertices and edges of an axis-aligned cube of the given
// edge length centered on the origin.
func Cube(size float64) ([]Vec3, []Edge) {
	h := size / 2
	verts := []Vec3{
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
	}
	edges := []Edge{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	return verts, edges
}

// Wireframe projects verts and returns one segment per edge whose ends are
// both in front of the camera.
func (cam Camera) Wireframe(verts []Vec3, edges []Edge, col Color) []PathSegment {
	type proj struct {
		p  Coordinate2D
		ok bool
	}
	pp := make([]proj, len(verts))
	for i, v := range verts {
		pp[i].p, pp[i].ok = cam.Project(v)
	}

	var segs []PathSegment
	for _, e := range edges {
		a, b := e[0], e[1]
		if a < 0 || b < 0 || a >= len(pp) || b >= len(pp) {
			continue
		}
		if !pp[a].ok || !pp[b].ok {
			continue
		}
		segs = append(segs, PathSegment{From: pp[a].p, To: pp[b].p, Color: col})
	}
	return segs
}
