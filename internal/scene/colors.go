package scene

import (
	"fmt"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"trender/internal/render"
)

// colorNames maps the ANSI color names accepted in scene files to RGB.
var colorNames = map[string]render.Color{
	"black":          render.RGB(0, 0, 0),
	"red":            render.RGB(170, 0, 0),
	"green":          render.RGB(0, 170, 0),
	"yellow":         render.RGB(170, 170, 0),
	"blue":           render.RGB(0, 0, 170),
	"magenta":        render.RGB(170, 0, 170),
	"cyan":           render.RGB(0, 170, 170),
	"white":          render.RGB(170, 170, 170),
	"gray":           render.RGB(85, 85, 85),
	"grey":           render.RGB(85, 85, 85),
	"bright_red":     render.RGB(255, 85, 85),
	"bright_green":   render.RGB(85, 255, 85),
	"bright_yellow":  render.RGB(255, 255, 85),
	"bright_blue":    render.RGB(85, 85, 255),
	"bright_magenta": render.RGB(255, 85, 255),
	"bright_cyan":    render.RGB(85, 255, 255),
	"bright_white":   render.RGB(255, 255, 255),
	"point":          render.DefaultPointColor,
}

// ParseColor resolves a color name or a "#rrggbb" hex string.
func ParseColor(s string) (render.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		cf, err := colorful.Hex(s)
		if err != nil {
			return render.Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		return render.FromColorful(cf), nil
	}
	if c, ok := colorNames[strings.ToLower(s)]; ok {
		return c, nil
	}
	return render.Color{}, fmt.Errorf("unknown color %q", s)
}

// ColorNames returns the accepted color names, sorted.
func ColorNames() []string {
	names := make([]string, 0, len(colorNames))
	for n := range colorNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
