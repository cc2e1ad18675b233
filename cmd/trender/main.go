package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/sahilm/fuzzy"

	"trender/internal/render"
	"trender/internal/term"
)

// command is one CLI subcommand. args excludes the command name.
type command struct {
	usage   string
	minArgs int
	maxArgs int // -1 for no limit
	run     func(ctx context.Context, c *render.Canvas, args []string) error
}

var commands = map[string]command{
	"fill-screen":        {"fill-screen <color>", 1, 1, runFillScreen},
	"fill-row":           {"fill-row <y> <color>", 2, 2, runFillRow},
	"fill-column":        {"fill-column <x> <color>", 2, 2, runFillColumn},
	"fill-square-column": {"fill-square-column <x> <color>", 2, 2, runFillSquareColumn},
	"random-screen":      {"random-screen [seed]", 0, 1, runRandomScreen},
	"random-row":         {"random-row <y> [seed]", 1, 2, runRandomRow},
	"pixel":              {"pixel <x> <y> <color>", 3, 3, runPixel},
	"path":               {"path <ax> <ay> <bx> <by> <color> [center]", 5, 6, runPath},
	"points":             {"points <x,y>...", 1, -1, runPoints},
	"center":             {"center <x|y> <base> <coords>...", 2, -1, runCenter},
	"play":               {"play <scene-file>", 1, 1, runPlay},
	"cube":               {"cube [frames]", 0, 1, runCube},
	"clear":              {"clear", 0, 0, runClear},
}

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	backend := flag.String("backend", "ansi", "output backend: ansi or tcell")
	flag.Usage = printUsage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	name, rest := args[0], args[1:]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", name)
		if s := suggest(name); s != "" {
			fmt.Fprintf(os.Stderr, "Did you mean %q?\n", s)
		}
		os.Exit(1)
	}
	if len(rest) < cmd.minArgs || (cmd.maxArgs >= 0 && len(rest) > cmd.maxArgs) {
		fmt.Fprintf(os.Stderr, "Usage: trender %s\n", cmd.usage)
		os.Exit(1)
	}

	surface, done, err := openBackend(*backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = cmd.run(ctx, render.NewCanvas(surface), rest)
	stop()
	done()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("Usage: trender [-backend ansi|tcell] <command> [args]\n\nCommands:\n")
	for _, n := range names {
		fmt.Fprintf(&sb, "  %s\n", commands[n].usage)
	}
	sb.WriteString("\nColors are names (red, bright_blue, ...) or #rrggbb.")
	fmt.Fprintln(os.Stderr, sb.String())
}

// suggest returns the closest known command name, or "".
func suggest(name string) string {
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)
	matches := fuzzy.Find(name, names)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

// openBackend returns the surface to draw on and a function that flushes and
// releases it.
func openBackend(name string) (render.Surface, func(), error) {
	switch name {
	case "ansi":
		s := term.NewStdout()
		return s, func() {
			if err := s.Err(); err != nil {
				log.Printf("output error: %v", err)
			}
		}, nil
	case "tcell":
		s, err := term.OpenTcell()
		if err != nil {
			return nil, nil, err
		}
		return s, func() {
			s.Show()
			waitKey(s.Screen())
			s.Fini()
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q (available: ansi, tcell)", name)
	}
}

// waitKey keeps a tcell picture up until a key is pressed.
func waitKey(s tcell.Screen) {
	for {
		switch s.PollEvent().(type) {
		case *tcell.EventKey, nil:
			return
		}
	}
}
