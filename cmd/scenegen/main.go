package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"

	"trender/internal/render"
	"trender/internal/scene"
)

func main() {
	genType := flag.String("type", "", "generator type (terrain, stars)")
	seed := flag.Int64("seed", 0, "random seed (0 = random)")
	size := flag.String("size", "60x30", "scene size in square pixels as WxH")
	name := flag.String("name", "", "scene name")
	count := flag.Int("count", 80, "number of stars")
	delay := flag.Float64("delay", 0.2, "seconds between steps")
	out := flag.String("out", "", "output file, .yaml/.yml for YAML (default: JSON on stdout)")
	flag.Parse()

	w, h, err := parseSize(*size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	var f *scene.File
	switch *genType {
	case "terrain":
		f = generateTerrain(w, h, *seed)
	case "stars":
		f = generateStars(w, h, *count, *seed)
	case "":
		fmt.Fprintln(os.Stderr, "Error: -type is required")
		fmt.Fprintln(os.Stderr, "Usage: scenegen -type terrain|stars [-seed N] [-size WxH] [-name Name] [-out file.json]")
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown generator type %q (available: terrain, stars)\n", *genType)
		os.Exit(1)
	}
	if *name != "" {
		f.Name = *name
	}
	f.Delay = *delay

	// Resolving catches anything the generator got wrong before it is written.
	if _, err := f.Resolve(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: generated scene is invalid: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Generated %dx%d %s scene %q (seed %d, %d steps)\n", w, h, *genType, f.Name, *seed, len(f.Steps))

	if *out == "" {
		data, err := scene.Encode(f, false)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}
	if err := scene.Save(*out, f); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", *out)
}

func parseSize(s string) (int, int, error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q, want WxH", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width %q: %w", parts[0], err)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height %q: %w", parts[1], err)
	}
	if w < 2 || h < 2 || w > 0x7FFF || h > 0xFFFF {
		return 0, 0, fmt.Errorf("size %dx%d out of range", w, h)
	}
	return w, h, nil
}

var (
	lowland = colorful.Color{R: 0.2, G: 0.55, B: 0.2}
	summit  = colorful.Color{R: 0.95, G: 0.95, B: 0.95}
	sky     = colorful.Color{R: 0.1, G: 0.1, B: 0.25}
)

// generateTerrain draws a noise ridge line across the scene, one segment per
// sample interval, shaded by elevation.
func generateTerrain(w, h int, seed int64) *scene.File {
	sn := newSimplex(seed)
	const samples = 24

	ridge := make([][2]float64, samples+1)
	for i := range ridge {
		x := float64(i) * float64(w-1) / samples
		elev := sn.fbm(x, 0, 0.05, 4)
		y := float64(h-1) - elev*float64(h)*0.7
		ridge[i] = [2]float64{x, math.Max(0, y)}
	}

	f := &scene.File{
		Name:  "Terrain",
		Clear: true,
		Steps: []scene.FileStep{
			{Op: string(scene.OpFillScreen), Color: render.FromColorful(sky).Hex()},
		},
	}

	path := scene.FileStep{Op: string(scene.OpPath)}
	for i := 0; i < samples; i++ {
		a, b := ridge[i], ridge[i+1]
		t := 1 - (a[1]+b[1])/2/float64(h-1)
		c := lowland.BlendHcl(summit, math.Min(1, math.Max(0, t))).Clamped()
		path.Segments = append(path.Segments, scene.FileSegment{
			From: a, To: b, Color: render.FromColorful(c).Hex(),
		})
	}
	f.Steps = append(f.Steps, path)
	return f
}

// generateStars scatters count points over the scene, in a handful of
// batches so playback twinkles in.
func generateStars(w, h, count int, seed int64) *scene.File {
	rng := rand.New(rand.NewSource(seed))
	f := &scene.File{
		Name:  "Stars",
		Clear: true,
		Steps: []scene.FileStep{
			{Op: string(scene.OpFillScreen), Color: "black"},
		},
	}

	const batches = 4
	colors := []string{"bright_white", "bright_yellow", "bright_cyan", "point"}
	for b := 0; b < batches; b++ {
		step := scene.FileStep{Op: string(scene.OpPoints), Color: colors[b%len(colors)]}
		for i := b; i < count; i += batches {
			// MapPoints adds a one pixel margin, so sample below w-1 and h-1.
			step.Points = append(step.Points, [2]float64{
				rng.Float64() * float64(w-1),
				rng.Float64() * float64(h-1),
			})
		}
		f.Steps = append(f.Steps, step)
	}
	return f
}
