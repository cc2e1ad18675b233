package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"trender/internal/render"
	"trender/internal/scene"
	"trender/internal/term"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "validate":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: scenetools validate <scenes-dir>")
			os.Exit(1)
		}
		os.Exit(runValidate(os.Stdout, args[0]))
	case "viz":
		if len(args) < 1 || len(args) > 2 {
			fmt.Fprintln(os.Stderr, "Usage: scenetools viz <scene-file> [WxH]")
			os.Exit(1)
		}
		size := "80x24"
		if len(args) == 2 {
			size = args[1]
		}
		if err := runViz(os.Stdout, args[0], size); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "stats":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: scenetools stats <scene-file>")
			os.Exit(1)
		}
		sc, err := scene.Load(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printStats(os.Stdout, sc)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: scenetools <command> <path>

Commands:
  validate <scenes-dir>        Validate all scene files in directory
  viz      <scene-file> [WxH]  Draw the scene once, without pauses, at a fixed size
  stats    <scene-file>        Show op distribution and cell draw counts`)
}

// --- validate ---

// runValidate loads every scene in dir and reports per-file problems. It
// keeps going after a bad file so all of them are listed.
func runValidate(out io.Writer, dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Fprintf(out, "FAIL: %v\n", err)
		return 1
	}

	errors := 0
	valid := 0
	names := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || !scene.IsSceneFile(entry.Name()) {
			continue
		}
		fmt.Fprintf(out, "Validating %s...\n", entry.Name())

		sc, err := scene.Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			fmt.Fprintf(out, "  ERROR: %v\n", err)
			errors++
			continue
		}
		if prev, ok := names[sc.Name]; ok {
			fmt.Fprintf(out, "  ERROR: scene name %q already used by %s\n", sc.Name, prev)
			errors++
			continue
		}
		names[sc.Name] = entry.Name()
		valid++
		fmt.Fprintf(out, "  OK (%q, %d steps)\n", sc.Name, len(sc.Steps))
	}

	if errors > 0 {
		fmt.Fprintf(out, "\n%d error(s) found\n", errors)
		return 1
	}
	fmt.Fprintf(out, "\nAll %d scenes valid\n", valid)
	return 0
}

// --- viz ---

func runViz(out io.Writer, path, size string) error {
	w, h, err := parseSize(size)
	if err != nil {
		return err
	}
	sc, err := scene.Load(path)
	if err != nil {
		return err
	}

	surface := term.NewWriterSurface(out, func() (int, int, error) { return w, h, nil })
	canvas := render.NewCanvas(surface)

	still := *sc
	still.Delay = 0
	still.Steps = nil
	for _, st := range sc.Steps {
		if st.Op != scene.OpSleep {
			still.Steps = append(still.Steps, st)
		}
	}

	canvas.Clear()
	if err := scene.Play(context.Background(), canvas, &still); err != nil {
		return err
	}
	io.WriteString(out, term.MoveTo(h+1, 1))
	fmt.Fprintf(out, "%s (%dx%d)\n", sc.Name, w, h)
	return surface.Err()
}

func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q, want WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w < 1 || w > 0xFFFF {
		return 0, 0, fmt.Errorf("invalid width %q", ws)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h < 1 || h > 0xFFFF {
		return 0, 0, fmt.Errorf("invalid height %q", hs)
	}
	return w, h, nil
}

// --- stats ---

func printStats(out io.Writer, sc *scene.Scene) {
	fmt.Fprintf(out, "%s (%d steps, delay %v)\n\n", sc.Name, len(sc.Steps), sc.Delay)

	counts := make(map[scene.Op]int)
	segments, points, pathDraws := 0, 0, 0
	for _, st := range sc.Steps {
		counts[st.Op]++
		points += len(st.Points)
		for _, seg := range st.Segments {
			segments++
			pathDraws += pathCells(seg)
		}
	}

	type entry struct {
		op    scene.Op
		count int
	}
	sorted := make([]entry, 0, len(counts))
	for op, n := range counts {
		sorted = append(sorted, entry{op, n})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].op < sorted[j].op
	})

	for _, e := range sorted {
		pct := float64(e.count) / float64(len(sc.Steps)) * 100
		bar := strings.Repeat("█", int(pct/5))
		fmt.Fprintf(out, "  %-18s %4d (%5.1f%%) %s\n", e.op, e.count, pct, bar)
	}

	fmt.Fprintf(out, "\nSegments: %d (%d square pixel draws)\n", segments, pathDraws)
	fmt.Fprintf(out, "Points:   %d\n", points)
}

// pathCells counts the square pixels DrawPath emits for seg.
func pathCells(seg render.PathSegment) int {
	n := 0
	seg.Walk(func(render.Coordinate2D) { n++ })
	return n
}
