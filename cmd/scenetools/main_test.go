package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"trender/internal/render"
	"trender/internal/scene"
)

const rowScene = `{"name": "Row", "delay": 5, "steps": [
  {"op": "fill_row", "y": 1, "color": "#0a141e"},
  {"op": "sleep", "seconds": 30},
  {"op": "path", "color": "red", "segments": [{"from": [0, 0], "to": [3, 4]}]}
]}`

func writeScene(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunValidate(t *testing.T) {
	dir := t.TempDir()
	writeScene(t, dir, "row.json", rowScene)
	writeScene(t, dir, "clear.yaml", "name: Blank\nsteps:\n  - op: clear\n")

	var out bytes.Buffer
	if code := runValidate(&out, dir); code != 0 {
		t.Fatalf("exit %d:\n%s", code, out.String())
	}
	if !strings.Contains(out.String(), "All 2 scenes valid") {
		t.Errorf("unexpected output:\n%s", out.String())
	}

	writeScene(t, dir, "bad.json", `{"name": "Bad", "steps": [{"op": "fill_row", "y": 1}]}`)
	writeScene(t, dir, "dup.yml", "name: Row\nsteps: []\n")
	out.Reset()
	if code := runValidate(&out, dir); code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	for _, want := range []string{"missing color", `"Row" already used by dup.yml`, "2 error(s) found"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunViz(t *testing.T) {
	path := writeScene(t, t.TempDir(), "row.json", rowScene)

	var out bytes.Buffer
	if err := runViz(&out, path, "8x6"); err != nil {
		t.Fatalf("runViz: %v", err)
	}
	got := out.String()
	if n := strings.Count(got, "48;2;10;20;30m"); n != 8 {
		t.Errorf("row drew %d cells, want 8", n)
	}
	if !strings.Contains(got, "Row (8x6)") {
		t.Errorf("missing caption:\n%q", got)
	}

	if err := runViz(&out, path, "8"); err == nil {
		t.Error("bad size should fail")
	}
}

func TestPrintStats(t *testing.T) {
	sc := &scene.Scene{
		Name: "S",
		Steps: []scene.Step{
			{Op: scene.OpClear},
			{Op: scene.OpPoints, Points: make([]render.Coordinate2D, 3)},
			{Op: scene.OpPoints, Points: make([]render.Coordinate2D, 2)},
			{Op: scene.OpPath, Segments: []render.PathSegment{
				{From: render.Coordinate2D{}, To: render.Coordinate2D{}},
			}},
		},
	}
	var out bytes.Buffer
	printStats(&out, sc)
	got := out.String()
	for _, want := range []string{"points", "Segments: 1 (1 square pixel draws)", "Points:   5"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Index(got, "points") > strings.Index(got, "clear") {
		t.Error("ops should be sorted by count")
	}
}

func TestParseSize(t *testing.T) {
	if w, h, err := parseSize("80X24"); err != nil || w != 80 || h != 24 {
		t.Errorf("parseSize = %d, %d, %v", w, h, err)
	}
	for _, bad := range []string{"", "80", "0x24", "80x", "70000x1"} {
		if _, _, err := parseSize(bad); err == nil {
			t.Errorf("parseSize(%q) should fail", bad)
		}
	}
}
