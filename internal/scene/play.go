package scene

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trender/internal/render"
)

// Play draws the steps of sc onto c in order, pausing sc.Delay between
// steps. Cancellation is checked between steps only; a step that started
// always finishes. Steps failing because the surface size is unavailable are
// skipped (the canvas has already logged them).
func Play(ctx context.Context, c *render.Canvas, sc *Scene) error {
	if sc.Clear {
		c.Clear()
	}
	for i, st := range sc.Steps {
		if i > 0 && sc.Delay > 0 {
			if err := sleep(ctx, sc.Delay); err != nil {
				return err
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := runStep(ctx, c, st); err != nil {
			if errors.Is(err, render.ErrSurfaceUnavailable) {
				continue
			}
			return fmt.Errorf("scene %q step %d: %w", sc.Name, i, err)
		}
	}
	return nil
}

func runStep(ctx context.Context, c *render.Canvas, st Step) error {
	switch st.Op {
	case OpFillScreen:
		return c.FillScreen(st.Color)
	case OpFillRow:
		return c.FillRow(st.Y, st.Color)
	case OpFillColumn:
		return c.FillColumn(st.X, st.Color)
	case OpFillSquareColumn:
		return c.FillSquareColumn(st.X, st.Color)
	case OpRandomScreen:
		return c.RandomScreen()
	case OpRandomRow:
		return c.RandomRow(st.Y)
	case OpPixel:
		c.SquarePixel(st.X, st.Y, st.Color)
	case OpPath:
		segs := st.Segments
		if st.Center {
			var err error
			if segs, err = render.CenterSegments(c, segs); err != nil {
				return err
			}
		}
		c.DrawPath(segs)
	case OpPoints:
		pts := st.Points
		if st.Center {
			var err error
			if pts, err = render.CenterPoints(c, pts); err != nil {
				return err
			}
		}
		c.MapPointsColor(pts, st.Color)
	case OpClear:
		c.Clear()
	case OpSleep:
		return sleep(ctx, st.Duration)
	default:
		return fmt.Errorf("unknown op %q", st.Op)
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
