package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"trender/internal/render"
)

// Op names one drawing step.
type Op string

const (
	OpFillScreen       Op = "fill_screen"
	OpFillRow          Op = "fill_row"
	OpFillColumn       Op = "fill_column"
	OpFillSquareColumn Op = "fill_square_column"
	OpRandomScreen     Op = "random_screen"
	OpRandomRow        Op = "random_row"
	OpPixel            Op = "pixel"
	OpPath             Op = "path"
	OpPoints           Op = "points"
	OpClear            Op = "clear"
	OpSleep            Op = "sleep"
)

// Step is a resolved drawing step.
type Step struct {
	Op       Op
	Color    render.Color
	X, Y     uint16
	Segments []render.PathSegment
	Points   []render.Coordinate2D
	Center   bool
	Duration time.Duration
}

// Scene is a resolved, validated list of steps.
type Scene struct {
	Name  string
	Delay time.Duration // pause between steps
	Clear bool          // clear the surface before the first step
	Steps []Step
}

// File is the on-disk scene format, shared by JSON and YAML.
type File struct {
	Name  string     `json:"name" yaml:"name"`
	Delay float64    `json:"delay,omitempty" yaml:"delay,omitempty"`
	Clear bool       `json:"clear,omitempty" yaml:"clear,omitempty"`
	Steps []FileStep `json:"steps" yaml:"steps"`
}

// FileStep is one step as written in a scene file. Which fields matter
// depends on Op.
type FileStep struct {
	Op       string        `json:"op" yaml:"op"`
	Color    string        `json:"color,omitempty" yaml:"color,omitempty"`
	X        int           `json:"x,omitempty" yaml:"x,omitempty"`
	Y        int           `json:"y,omitempty" yaml:"y,omitempty"`
	Segments []FileSegment `json:"segments,omitempty" yaml:"segments,omitempty"`
	Points   [][2]float64  `json:"points,omitempty" yaml:"points,omitempty"`
	Center   bool          `json:"center,omitempty" yaml:"center,omitempty"`
	Seconds  float64       `json:"seconds,omitempty" yaml:"seconds,omitempty"`
}

// FileSegment is a path segment; an empty Color inherits the step's.
type FileSegment struct {
	From  [2]float64 `json:"from" yaml:"from,flow"`
	To    [2]float64 `json:"to" yaml:"to,flow"`
	Color string     `json:"color,omitempty" yaml:"color,omitempty"`
}

// isYAML reports whether path should be treated as YAML.
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Load reads a scene file from disk. Files ending in .yaml or .yml are
// decoded as YAML, anything else as JSON.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene file: %w", err)
	}
	f, err := Decode(data, isYAML(path))
	if err != nil {
		return nil, err
	}
	return f.Resolve()
}

// Decode parses scene file bytes.
func Decode(data []byte, asYAML bool) (*File, error) {
	var f File
	if asYAML {
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse scene YAML: %w", err)
		}
		return &f, nil
	}
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse scene JSON: %w", err)
	}
	return &f, nil
}

// Encode serializes f, as YAML or indented JSON.
func Encode(f *File, asYAML bool) ([]byte, error) {
	if asYAML {
		data, err := yaml.Marshal(f)
		if err != nil {
			return nil, fmt.Errorf("encode scene YAML: %w", err)
		}
		return data, nil
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode scene JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Save writes f to path, picking the format from the extension.
func Save(path string, f *File) error {
	data, err := Encode(f, isYAML(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene file: %w", err)
	}
	return nil
}

// Resolve validates f and converts it into a Scene.
func (f *File) Resolve() (*Scene, error) {
	sc := &Scene{
		Name:  f.Name,
		Delay: SecsToDuration(f.Delay),
		Clear: f.Clear,
		Steps: make([]Step, 0, len(f.Steps)),
	}
	for i, fs := range f.Steps {
		st, err := fs.resolve()
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, fs.Op, err)
		}
		sc.Steps = append(sc.Steps, st)
	}
	return sc, nil
}

func (fs FileStep) resolve() (Step, error) {
	st := Step{Op: Op(fs.Op), Center: fs.Center}

	needColor := false
	switch st.Op {
	case OpFillScreen:
		needColor = true
	case OpFillRow, OpRandomRow:
		needColor = st.Op == OpFillRow
		y, err := cellIndex("y", fs.Y)
		if err != nil {
			return st, err
		}
		st.Y = y
	case OpFillColumn, OpFillSquareColumn:
		needColor = true
		x, err := cellIndex("x", fs.X)
		if err != nil {
			return st, err
		}
		st.X = x
	case OpPixel:
		needColor = true
		x, err := cellIndex("x", fs.X)
		if err != nil {
			return st, err
		}
		y, err := cellIndex("y", fs.Y)
		if err != nil {
			return st, err
		}
		st.X, st.Y = x, y
	case OpPath:
		if len(fs.Segments) == 0 {
			return st, fmt.Errorf("path needs at least one segment")
		}
	case OpPoints:
		st.Color = render.DefaultPointColor
		for _, p := range fs.Points {
			st.Points = append(st.Points, render.Coordinate2D{X: p[0], Y: p[1]})
		}
	case OpSleep:
		st.Duration = SecsToDuration(fs.Seconds)
	case OpRandomScreen, OpClear:
	default:
		return st, fmt.Errorf("unknown op %q", fs.Op)
	}

	if fs.Color != "" {
		c, err := ParseColor(fs.Color)
		if err != nil {
			return st, err
		}
		st.Color = c
	} else if needColor {
		return st, fmt.Errorf("missing color")
	}

	for j, seg := range fs.Segments {
		col := st.Color
		if seg.Color != "" {
			c, err := ParseColor(seg.Color)
			if err != nil {
				return st, fmt.Errorf("segment %d: %w", j, err)
			}
			col = c
		} else if fs.Color == "" {
			return st, fmt.Errorf("segment %d: missing color", j)
		}
		st.Segments = append(st.Segments, render.PathSegment{
			From:  render.Coordinate2D{X: seg.From[0], Y: seg.From[1]},
			To:    render.Coordinate2D{X: seg.To[0], Y: seg.To[1]},
			Color: col,
		})
	}
	return st, nil
}

func cellIndex(name string, v int) (uint16, error) {
	if v < 0 || v > 0xFFFF {
		return 0, fmt.Errorf("%s %d out of range", name, v)
	}
	return uint16(v), nil
}

// DefaultScene returns a small built-in scene used when no file is given.
func DefaultScene() *Scene {
	blue := render.RGB(50, 80, 180)
	yellow := render.RGB(190, 160, 40)
	return &Scene{
		Name:  "Default",
		Delay: 300 * time.Millisecond,
		Clear: true,
		Steps: []Step{
			{Op: OpFillScreen, Color: render.RGB(10, 10, 15)},
			{Op: OpFillRow, Y: 0, Color: blue},
			{Op: OpFillSquareColumn, X: 1, Color: blue},
			{Op: OpPath, Segments: []render.PathSegment{
				{From: render.Coordinate2D{X: 0, Y: 0}, To: render.Coordinate2D{X: 20, Y: 10}, Color: yellow},
				{From: render.Coordinate2D{X: 20, Y: 10}, To: render.Coordinate2D{X: 0, Y: 20}, Color: yellow},
				{From: render.Coordinate2D{X: 0, Y: 20}, To: render.Coordinate2D{X: 0, Y: 0}, Color: yellow},
			}, Center: true},
			{Op: OpPoints, Color: render.DefaultPointColor, Points: []render.Coordinate2D{
				{X: 2, Y: 2}, {X: 4, Y: 3}, {X: 6, Y: 5}, {X: 8, Y: 8},
			}},
		},
	}
}
