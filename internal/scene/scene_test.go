package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"trender/internal/render"
)

const sampleJSON = `{
  "name": "Sample",
  "delay": 0.25,
  "clear": true,
  "steps": [
    {"op": "fill_screen", "color": "black"},
    {"op": "fill_row", "y": 2, "color": "#ff8000"},
    {"op": "fill_square_column", "x": 3, "color": "bright_blue"},
    {"op": "path", "color": "red", "center": true, "segments": [
      {"from": [0, 0], "to": [10, 5]},
      {"from": [10, 5], "to": [0, 10], "color": "green"}
    ]},
    {"op": "points", "points": [[0, 0], [1.5, 2.5]]},
    {"op": "sleep", "seconds": 0.5},
    {"op": "random_row", "y": 1}
  ]
}`

const sampleYAML = `
name: Sample
delay: 0.25
clear: true
steps:
  - op: fill_screen
    color: black
  - op: fill_row
    y: 2
    color: "#ff8000"
  - op: fill_square_column
    x: 3
    color: bright_blue
  - op: path
    color: red
    center: true
    segments:
      - {from: [0, 0], to: [10, 5]}
      - {from: [10, 5], to: [0, 10], color: green}
  - op: points
    points: [[0, 0], [1.5, 2.5]]
  - op: sleep
    seconds: 0.5
  - op: random_row
    y: 1
`

func resolve(t *testing.T, data string, asYAML bool) *Scene {
	t.Helper()
	f, err := Decode([]byte(data), asYAML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	sc, err := f.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	return sc
}

func TestResolveSample(t *testing.T) {
	for _, format := range []struct {
		name   string
		data   string
		asYAML bool
	}{
		{"json", sampleJSON, false},
		{"yaml", sampleYAML, true},
	} {
		t.Run(format.name, func(t *testing.T) {
			sc := resolve(t, format.data, format.asYAML)

			if sc.Name != "Sample" || sc.Delay != 250*time.Millisecond || !sc.Clear {
				t.Errorf("header = %q %v %v", sc.Name, sc.Delay, sc.Clear)
			}
			if len(sc.Steps) != 7 {
				t.Fatalf("expected 7 steps, got %d", len(sc.Steps))
			}
			if st := sc.Steps[1]; st.Op != OpFillRow || st.Y != 2 || st.Color != render.RGB(255, 128, 0) {
				t.Errorf("fill_row step = %+v", st)
			}
			if st := sc.Steps[2]; st.X != 3 || st.Color != render.RGB(85, 85, 255) {
				t.Errorf("fill_square_column step = %+v", st)
			}

			path := sc.Steps[3]
			if !path.Center || len(path.Segments) != 2 {
				t.Fatalf("path step = %+v", path)
			}
			if path.Segments[0].Color != colorNames["red"] || path.Segments[1].Color != colorNames["green"] {
				t.Errorf("segment colors = %v, %v", path.Segments[0].Color, path.Segments[1].Color)
			}
			if path.Segments[1].To != (render.Coordinate2D{X: 0, Y: 10}) {
				t.Errorf("segment end = %v", path.Segments[1].To)
			}

			pts := sc.Steps[4]
			if len(pts.Points) != 2 || pts.Points[1] != (render.Coordinate2D{X: 1.5, Y: 2.5}) {
				t.Errorf("points = %v", pts.Points)
			}
			if pts.Color != render.DefaultPointColor {
				t.Errorf("points color = %v, want default", pts.Color)
			}
			if sc.Steps[5].Duration != 500*time.Millisecond {
				t.Errorf("sleep = %v", sc.Steps[5].Duration)
			}
		})
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		step FileStep
		want string
	}{
		{"unknown op", FileStep{Op: "spin"}, "unknown op"},
		{"missing color", FileStep{Op: "fill_screen"}, "missing color"},
		{"bad color", FileStep{Op: "fill_screen", Color: "mauve-ish"}, "unknown color"},
		{"bad hex", FileStep{Op: "fill_screen", Color: "#12"}, "parse color"},
		{"x out of range", FileStep{Op: "fill_column", X: 70000, Color: "red"}, "x 70000 out of range"},
		{"negative y", FileStep{Op: "pixel", X: 1, Y: -1, Color: "red"}, "y -1 out of range"},
		{"empty path", FileStep{Op: "path", Color: "red"}, "at least one segment"},
		{"segment without color", FileStep{Op: "path", Segments: []FileSegment{{To: [2]float64{1, 1}}}}, "segment 0: missing color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &File{Name: "bad", Steps: []FileStep{{Op: "clear"}, tt.step}}
			_, err := f.Resolve()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) || !strings.Contains(err.Error(), "step 1") {
				t.Errorf("error %q should mention %q and the step", err, tt.want)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want render.Color
		ok   bool
	}{
		{"red", render.RGB(170, 0, 0), true},
		{"  Bright_White ", render.RGB(255, 255, 255), true},
		{"grey", render.RGB(85, 85, 85), true},
		{"#ff8000", render.RGB(255, 128, 0), true},
		{"#000000", render.RGB(0, 0, 0), true},
		{"point", render.DefaultPointColor, true},
		{"#gg0000", render.Color{}, false},
		{"orange", render.Color{}, false},
		{"", render.Color{}, false},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseColor(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorNamesSorted(t *testing.T) {
	names := ColorNames()
	if len(names) != len(colorNames) {
		t.Fatalf("got %d names", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("not sorted at %d: %q > %q", i, names[i-1], names[i])
		}
	}
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "sample.yml")
	jsonPath := filepath.Join(dir, "sample.scene")
	if err := os.WriteFile(yamlPath, []byte(sampleYAML), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(jsonPath, []byte(sampleJSON), 0644); err != nil {
		t.Fatal(err)
	}

	for _, p := range []string{yamlPath, jsonPath} {
		sc, err := Load(p)
		if err != nil {
			t.Fatalf("Load(%s): %v", filepath.Base(p), err)
		}
		if len(sc.Steps) != 7 {
			t.Errorf("Load(%s): %d steps", filepath.Base(p), len(sc.Steps))
		}
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
	if err := os.WriteFile(jsonPath, []byte(sampleYAML), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(jsonPath); err == nil || !strings.Contains(err.Error(), "parse scene JSON") {
		t.Errorf("expected a JSON parse error, got %v", err)
	}
}

func TestSaveYAMLLoads(t *testing.T) {
	f, err := Decode([]byte(sampleJSON), false)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := Save(path, f); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "op: fill_screen") {
		t.Errorf("expected YAML output, got:\n%s", data)
	}
	if _, err := Load(path); err != nil {
		t.Errorf("Load saved scene: %v", err)
	}
}

func TestSecsToDuration(t *testing.T) {
	tests := []struct {
		in   float64
		want time.Duration
	}{
		{0, 0},
		{-1, 0},
		{0.0000001, time.Millisecond},
		{0.25, 250 * time.Millisecond},
		{2, 2 * time.Second},
	}
	for _, tt := range tests {
		if got := SecsToDuration(tt.in); got != tt.want {
			t.Errorf("SecsToDuration(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDefaultSceneIsPlayable(t *testing.T) {
	sc := DefaultScene()
	if len(sc.Steps) == 0 {
		t.Fatal("default scene has no steps")
	}
	for i, st := range sc.Steps {
		if st.Op == OpPath && len(st.Segments) == 0 {
			t.Errorf("step %d: path without segments", i)
		}
	}
}
