package driver

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mogaika/aquarium_viewer/config"
	"github.com/mogaika/aquarium_viewer/r3d"
	"github.com/mogaika/aquarium_viewer/render"
	"github.com/mogaika/aquarium_viewer/scene"
)

func newAquariumLoop(t *testing.T, clock r3d.Clock) *Loop {
	loop := NewLoop(config.Default(), clock)
	root, err := scene.Build(scene.Aquarium(), scene.Options{Target: loop, Clock: loop})
	require.NoError(t, err)
	loop.Root = root
	return loop
}

func find(t *testing.T, s Snapshot, name string) render.Submission {
	t.Helper()
	for _, p := range s.Primitives {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("primitive %q not in snapshot", name)
	return render.Submission{}
}

func TestLoopFrameUsesClock(t *testing.T) {
	clock := &StepClock{Step: 6}
	loop := newAquariumLoop(t, clock)

	first := loop.Frame()
	assert.Equal(t, uint64(1), first.Frame)
	assert.Equal(t, 0.0, first.Time)
	assert.Len(t, first.Primitives, 6)

	clock.Advance()
	second := loop.Frame()
	assert.Equal(t, 6.0, second.Time)
	assert.Equal(t, second, loop.Snapshot())

	p0 := find(t, first, "dolphin_body").Position
	p1 := find(t, second, "dolphin_body").Position
	assert.InDelta(t, 1.3, p0.X(), 1e-5)
	assert.InDelta(t, 2, p1.Z(), 1e-5)

	// snapshots do not share the recorder buffer
	loop.Frame()
	assert.Equal(t, p0, find(t, first, "dolphin_body").Position)
}

func TestLoopDeterministicReplay(t *testing.T) {
	times := []float64{0, 0.5, 3.25, 23.5, 24, 100}
	run := func() []Snapshot {
		now := 0.0
		loop := newAquariumLoop(t, r3d.ClockFunc(func() float64 { return now }))
		var out []Snapshot
		for _, now = range times {
			out = append(out, loop.Frame())
		}
		return out
	}
	assert.Equal(t, run(), run())
}

func TestLoopInput(t *testing.T) {
	loop := newAquariumLoop(t, &StepClock{})

	for i := 0; i < 5; i++ {
		loop.Input("right")
	}
	s := loop.Frame()
	assert.Equal(t, float32(25), s.Yaw)

	loop.Input("m")
	s = loop.Frame()
	find(t, s, "dolphin_fish")

	loop.Input("up")
	loop.Input(" ")
	s = loop.Frame()
	assert.Equal(t, float32(0), s.Yaw)
	tank := find(t, s, "tank")
	assert.Equal(t, mgl32.Translate3D(0, 0, 1), tank.Model)

	loop.Input("left")
	loop.Input("origin")
	s = loop.Frame()
	assert.Equal(t, float32(0), s.Yaw)
	assert.Equal(t, mgl32.Translate3D(0, 0, 1), find(t, s, "tank").Model)

	// unknown keys change nothing
	loop.Input("z")
	assert.Equal(t, s.Primitives, loop.Frame().Primitives)
}

func TestLoopCanvas(t *testing.T) {
	loop := newAquariumLoop(t, &StepClock{})
	loop.Canvas = render.NewCanvas(60, 20)
	loop.SetAspect(60.0 / 40.0)

	s := loop.Frame()
	assert.NotEmpty(t, s.Primitives)
	assert.Contains(t, loop.Canvas.String(), ".")
}

func TestLoopWithoutRoot(t *testing.T) {
	loop := NewLoop(config.Default(), &StepClock{})
	loop.Input("right")
	s := loop.Frame()
	assert.Empty(t, s.Primitives)
}

func TestStepAndWallClock(t *testing.T) {
	c := &StepClock{Time: 1, Step: 0.5}
	c.Advance()
	c.Advance()
	assert.Equal(t, 2.0, c.Now())

	w := NewWallClock(2)
	a := w.Now()
	time.Sleep(5 * time.Millisecond)
	b := w.Now()
	assert.Greater(t, b-a, 0.009)
}

func TestRunnerSerializesRequests(t *testing.T) {
	loop := newAquariumLoop(t, &StepClock{})
	runner := NewRunner(loop, 200)

	var mu sync.Mutex
	frames := 0
	runner.OnFrame = func(s Snapshot) {
		mu.Lock()
		frames++
		mu.Unlock()
	}

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- runner.Run(ctx) }()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, runner.Input(ctx, "right"))
		}()
	}
	wg.Wait()

	require.Eventually(t, func() bool {
		s, err := runner.Snapshot(ctx)
		return err == nil && s.Yaw == 20
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-errc)
	mu.Lock()
	assert.Greater(t, frames, 0)
	mu.Unlock()

	assert.ErrorIs(t, runner.Input(context.Background(), "left"), ErrStopped)
}
