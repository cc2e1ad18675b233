package main

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"trender/internal/render"
	"trender/internal/scene"
)

func runFillScreen(_ context.Context, c *render.Canvas, args []string) error {
	col, err := scene.ParseColor(args[0])
	if err != nil {
		return err
	}
	return c.FillScreen(col)
}

func runFillRow(_ context.Context, c *render.Canvas, args []string) error {
	y, err := parseCell("y", args[0])
	if err != nil {
		return err
	}
	col, err := scene.ParseColor(args[1])
	if err != nil {
		return err
	}
	return c.FillRow(y, col)
}

func runFillColumn(_ context.Context, c *render.Canvas, args []string) error {
	x, col, err := cellAndColor(args)
	if err != nil {
		return err
	}
	return c.FillColumn(x, col)
}

func runFillSquareColumn(_ context.Context, c *render.Canvas, args []string) error {
	x, col, err := cellAndColor(args)
	if err != nil {
		return err
	}
	return c.FillSquareColumn(x, col)
}

func runRandomScreen(_ context.Context, c *render.Canvas, args []string) error {
	c, err := seeded(c, args)
	if err != nil {
		return err
	}
	return c.RandomScreen()
}

func runRandomRow(_ context.Context, c *render.Canvas, args []string) error {
	y, err := parseCell("y", args[0])
	if err != nil {
		return err
	}
	c, err = seeded(c, args[1:])
	if err != nil {
		return err
	}
	return c.RandomRow(y)
}

func runPixel(_ context.Context, c *render.Canvas, args []string) error {
	x, err := parseCell("x", args[0])
	if err != nil {
		return err
	}
	y, err := parseCell("y", args[1])
	if err != nil {
		return err
	}
	col, err := scene.ParseColor(args[2])
	if err != nil {
		return err
	}
	c.SquarePixel(x, y, col)
	return nil
}

func runPath(_ context.Context, c *render.Canvas, args []string) error {
	var v [4]float64
	for i := range v {
		f, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return fmt.Errorf("invalid coordinate %q: %w", args[i], err)
		}
		v[i] = f
	}
	col, err := scene.ParseColor(args[4])
	if err != nil {
		return err
	}
	segs := []render.PathSegment{{
		From:  render.Coordinate2D{X: v[0], Y: v[1]},
		To:    render.Coordinate2D{X: v[2], Y: v[3]},
		Color: col,
	}}
	if len(args) > 5 {
		if args[5] != "center" {
			return fmt.Errorf("unexpected argument %q", args[5])
		}
		if segs, err = render.CenterSegments(c, segs); err != nil {
			return err
		}
	}
	c.DrawPath(segs)
	return nil
}

func runPoints(_ context.Context, c *render.Canvas, args []string) error {
	pts := make([]render.Coordinate2D, 0, len(args))
	for _, a := range args {
		p, err := parsePoint(a)
		if err != nil {
			return err
		}
		pts = append(pts, p)
	}
	c.MapPoints(pts)
	return nil
}

// runCenter prints a centering offset. Any coordinate with a decimal point
// switches to the floating point domain.
func runCenter(_ context.Context, c *render.Canvas, args []string) error {
	axis, vals := args[0], args[1:]
	if axis != "x" && axis != "y" {
		return fmt.Errorf("axis must be x or y, got %q", axis)
	}

	float := false
	for _, v := range vals {
		if strings.ContainsAny(v, ".eE") {
			float = true
		}
	}

	if float {
		nums, err := parseNums(vals, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
		if err != nil {
			return err
		}
		off, err := centerOn(c, axis, nums[0], nums[1:])
		if err != nil {
			return err
		}
		fmt.Println(strconv.FormatFloat(off, 'g', -1, 64))
		return nil
	}

	nums, err := parseNums(vals, func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) })
	if err != nil {
		return err
	}
	off, err := centerOn(c, axis, nums[0], nums[1:])
	if err != nil {
		return err
	}
	fmt.Println(off)
	return nil
}

func centerOn[T render.Number](c *render.Canvas, axis string, base T, coords []T) (T, error) {
	if axis == "x" {
		return render.CenterOffsetX(c, base, coords)
	}
	return render.CenterOffsetY(c, base, coords)
}

func parseNums[T any](vals []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, len(vals))
	for i, v := range vals {
		n, err := parse(v)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", v, err)
		}
		out[i] = n
	}
	return out, nil
}

func runPlay(ctx context.Context, c *render.Canvas, args []string) error {
	sc, err := scene.Load(args[0])
	if err != nil {
		return err
	}
	c.HideCursor()
	defer c.ShowCursor()
	return scene.Play(ctx, c, sc)
}

func runClear(_ context.Context, c *render.Canvas, _ []string) error {
	c.Clear()
	return nil
}

const cubeFrameDelay = 80 * time.Millisecond

// runCube spins a wireframe cube in front of the camera.
func runCube(ctx context.Context, c *render.Canvas, args []string) error {
	frames := 36
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid frame count %q", args[0])
		}
		frames = n
	}

	_, h, err := c.Size()
	if err != nil {
		return err
	}
	scale := float64(h) * 0.8

	cam := render.Camera{
		Position:  render.Vec3{Z: -4},
		Direction: render.Vec3{Z: 1},
		FOV:       math.Pi / 3,
	}
	verts, edges := render.Cube(2)
	edgeColor := render.RGB(85, 255, 255)

	c.HideCursor()
	defer c.ShowCursor()

	rotated := make([]render.Vec3, len(verts))
	for f := 0; f < frames; f++ {
		if ctx.Err() != nil {
			return nil
		}
		angle := float64(f) * 2 * math.Pi / float64(frames)
		for i, v := range verts {
			rotated[i] = render.RotateX(render.RotateY(v, angle), angle/2)
		}

		segs := toOrigin(cam.Wireframe(rotated, edges, edgeColor), scale)
		if segs, err = render.CenterSegments(c, segs); err != nil {
			return err
		}

		c.Clear()
		c.DrawPath(segs)
		if s, ok := c.Surface().(interface{ Show() }); ok {
			s.Show()
		}
		c.Sleep(cubeFrameDelay)
	}
	return nil
}

// toOrigin scales segs and moves them so the smallest x and y are 0, which is
// what the centering offsets expect.
func toOrigin(segs []render.PathSegment, scale float64) []render.PathSegment {
	if len(segs) == 0 {
		return segs
	}
	minX, minY := math.Inf(1), math.Inf(1)
	for _, s := range segs {
		minX = math.Min(minX, math.Min(s.From.X, s.To.X))
		minY = math.Min(minY, math.Min(s.From.Y, s.To.Y))
	}
	out := make([]render.PathSegment, len(segs))
	for i, s := range segs {
		out[i] = render.PathSegment{
			From:  render.Coordinate2D{X: (s.From.X - minX) * scale, Y: (s.From.Y - minY) * scale},
			To:    render.Coordinate2D{X: (s.To.X - minX) * scale, Y: (s.To.Y - minY) * scale},
			Color: s.Color,
		}
	}
	return out
}

func parseCell(name, s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return uint16(v), nil
}

func cellAndColor(args []string) (uint16, render.Color, error) {
	x, err := parseCell("x", args[0])
	if err != nil {
		return 0, render.Color{}, err
	}
	col, err := scene.ParseColor(args[1])
	if err != nil {
		return 0, render.Color{}, err
	}
	return x, col, nil
}

func parsePoint(s string) (render.Coordinate2D, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return render.Coordinate2D{}, fmt.Errorf("invalid point %q, want x,y", s)
	}
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return render.Coordinate2D{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return render.Coordinate2D{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return render.Coordinate2D{X: x, Y: y}, nil
}

// seeded returns a canvas on the same surface with a seeded color source
// when args holds a seed.
func seeded(c *render.Canvas, args []string) (*render.Canvas, error) {
	if len(args) == 0 {
		return c, nil
	}
	seed, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid seed %q: %w", args[0], err)
	}
	return render.NewCanvas(c.Surface(), render.WithColorSource(render.NewRandomColors(seed))), nil
}
