package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"life-ca/internal/core"
	"life-ca/internal/render"
	"life-ca/internal/sims/life"
)

type recordingDrawer struct {
	frames []core.Frame
	err    error
	// cancel fires after stopAt draws when set.
	cancel context.CancelFunc
	stopAt int
}

func (r *recordingDrawer) Draw(f core.Frame) error {
	r.frames = append(r.frames, f)
	if r.cancel != nil && len(r.frames) == r.stopAt {
		r.cancel()
	}
	return r.err
}

func blinkerEngine(t *testing.T) *life.Engine {
	t.Helper()
	eng, err := life.New(5, 5, life.Clamped)
	require.NoError(t, err)
	eng.Seed([]core.Coord{{Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3}}, 0, 0)
	return eng
}

func TestLoopStopsAtGenerationLimit(t *testing.T) {
	eng := blinkerEngine(t)
	d := &recordingDrawer{}

	res, err := Loop(context.Background(), eng, d, LoopOptions{MaxGenerations: 3})
	require.NoError(t, err)
	require.Equal(t, Result{Generation: 3, Population: 3, Reason: StopLimit}, res)
	require.Len(t, d.frames, 4)
	for i, f := range d.frames {
		require.Equal(t, uint64(i), f.Generation)
	}
	require.Equal(t, d.frames[1].Cells, d.frames[3].Cells)
}

func TestLoopStopsCleanlyOnCancel(t *testing.T) {
	eng := blinkerEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d := &recordingDrawer{cancel: cancel, stopAt: 2}

	res, err := Loop(ctx, eng, d, LoopOptions{})
	require.NoError(t, err)
	require.Equal(t, StopCanceled, res.Reason)
	require.Len(t, d.frames, 2)
	require.Equal(t, uint64(2), eng.Generation(), "the step after the last draw completes")
}

func TestLoopCancelInterruptsDelay(t *testing.T) {
	eng := blinkerEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	d := &recordingDrawer{cancel: cancel, stopAt: 1}

	start := time.Now()
	res, err := Loop(ctx, eng, d, LoopOptions{Delay: time.Hour})
	require.NoError(t, err)
	require.Equal(t, StopCanceled, res.Reason)
	require.Less(t, time.Since(start), time.Minute)
}

func TestLoopPropagatesDrawErrors(t *testing.T) {
	eng := blinkerEngine(t)
	boom := errors.New("screen gone")
	d := &recordingDrawer{err: boom}

	res, err := Loop(context.Background(), eng, d, LoopOptions{})
	require.ErrorIs(t, err, boom)
	require.Equal(t, StopError, res.Reason)
	require.Equal(t, uint64(0), eng.Generation(), "nothing advances after a failed draw")
}

func TestTextDrawer(t *testing.T) {
	var buf bytes.Buffer
	d := TextDrawer{W: &buf, Renderer: render.TextRenderer{Live: "#", Dead: "."}}
	eng := blinkerEngine(t)

	_, err := Loop(context.Background(), eng, d, LoopOptions{MaxGenerations: 1})
	require.NoError(t, err)

	frames := strings.Split(strings.TrimSuffix(buf.String(), "\n\n"), "\n\n")
	require.Len(t, frames, 2)
	require.True(t, strings.HasPrefix(frames[0], ".....\n.....\n.###."))
	require.True(t, strings.HasPrefix(frames[1], ".....\n..#..\n..#.."))
}
