package render_test

import (
	"math"
	"testing"

	"trender/internal/render"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestCameraProject(t *testing.T) {
	cam := render.Camera{Direction: render.Vec3{Z: 1}, FOV: math.Pi / 2} // tan(45°) = 1

	tests := []struct {
		name  string
		p     render.Vec3
		want  render.Coordinate2D
		front bool
	}{
		{"in front", render.Vec3{X: 1, Y: 2, Z: 4}, render.Coordinate2D{X: 0.25, Y: 0.5}, true},
		{"on axis", render.Vec3{Z: 10}, render.Coordinate2D{}, true},
		{"behind", render.Vec3{X: 1, Z: -3}, render.Coordinate2D{}, false},
		{"at camera", render.Vec3{}, render.Coordinate2D{}, false},
		{"inside near plane", render.Vec3{X: 5, Z: render.NearPlane / 2}, render.Coordinate2D{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cam.Project(tt.p)
			if ok != tt.front {
				t.Fatalf("ok = %v, want %v", ok, tt.front)
			}
			if ok && (!near(got.X, tt.want.X) || !near(got.Y, tt.want.Y)) {
				t.Errorf("Project(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestCameraProjectUnnormalizedDirection(t *testing.T) {
	p := render.Vec3{X: 1, Y: -1, Z: 6}
	unit := render.Camera{Position: render.Vec3{Z: -2}, Direction: render.Vec3{Z: 1}, FOV: 1}
	long := render.Camera{Position: render.Vec3{Z: -2}, Direction: render.Vec3{Z: 7}, FOV: 1}

	a, okA := unit.Project(p)
	b, okB := long.Project(p)
	if !okA || !okB || !near(a.X, b.X) || !near(a.Y, b.Y) {
		t.Errorf("direction length changed projection: %v/%v vs %v/%v", a, okA, b, okB)
	}
}

func TestCameraZeroDirectionRejectsEverything(t *testing.T) {
	cam := render.Camera{FOV: 1}
	if _, ok := cam.Project(render.Vec3{Z: 5}); ok {
		t.Error("zero direction camera projected a point")
	}
}

func TestProjectAllDropsRejected(t *testing.T) {
	cam := render.Camera{Direction: render.Vec3{Z: 1}, FOV: math.Pi / 2}
	got := cam.ProjectAll([]render.Vec3{{Z: 2}, {Z: -2}, {X: 2, Z: 2}})
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got))
	}
	if !near(got[1].X, 1) {
		t.Errorf("second point %v, want x = 1", got[1])
	}
}

func TestCube(t *testing.T) {
	verts, edges := render.Cube(2)
	if len(verts) != 8 || len(edges) != 12 {
		t.Fatalf("got %d vertices, %d edges", len(verts), len(edges))
	}
	degree := make([]int, len(verts))
	for _, e := range edges {
		a, b := verts[e[0]], verts[e[1]]
		d := a.Sub(b)
		if !near(math.Sqrt(d.Dot(d)), 2) {
			t.Errorf("edge %v has length %v", e, math.Sqrt(d.Dot(d)))
		}
		degree[e[0]]++
		degree[e[1]]++
	}
	for i, n := range degree {
		if n != 3 {
			t.Errorf("vertex %d has %d edges", i, n)
		}
	}
}

func TestWireframeSkipsEdgesBehindCamera(t *testing.T) {
	cam := render.Camera{Direction: render.Vec3{Z: 1}, FOV: math.Pi / 2}
	verts, edges := render.Cube(2)

	// camera at the origin sits inside the cube: the z = -1 face is behind it
	segs := cam.Wireframe(verts, edges, red)
	if len(segs) != 4 {
		t.Errorf("expected only the 4 edges of the far face, got %d", len(segs))
	}

	cam.Position = render.Vec3{Z: -5}
	if segs := cam.Wireframe(verts, edges, red); len(segs) != 12 {
		t.Errorf("expected all 12 edges, got %d", len(segs))
	}
}

func TestRotate(t *testing.T) {
	p := render.RotateZ(render.Vec3{X: 1}, math.Pi/2)
	if !near(p.X, 0) || !near(p.Y, 1) || !near(p.Z, 0) {
		t.Errorf("RotateZ = %v", p)
	}
	p = render.RotateX(render.Vec3{Y: 1}, math.Pi/2)
	if !near(p.Y, 0) || !near(p.Z, 1) {
		t.Errorf("RotateX = %v", p)
	}
	p = render.RotateY(render.Vec3{Z: 1}, math.Pi/2)
	if !near(p.X, 1) || !near(p.Z, 0) {
		t.Errorf("RotateY = %v", p)
	}
}
