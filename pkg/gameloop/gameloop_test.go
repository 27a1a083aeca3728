package gameloop

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/taigrr/gemini/pkg/math3d"
)

func TestFrameDuration(t *testing.T) {
	tests := []struct {
		fps  float64
		want time.Duration
	}{
		{60, 16666666 * time.Nanosecond},
		{30, 33333333 * time.Nanosecond},
		{1, time.Second},
		{0, 0},
		{-5, 0},
	}
	for _, tt := range tests {
		if got := FrameDuration(tt.fps); got != tt.want {
			t.Errorf("FrameDuration(%v) = %v, want %v", tt.fps, got, tt.want)
		}
	}
}

func TestSleepFPSOverrun(t *testing.T) {
	start := time.Now()
	if !SleepFPS(60, 50*time.Millisecond) {
		t.Error("overrun frame should report a skip")
	}
	if time.Since(start) > 10*time.Millisecond {
		t.Error("overrun frame should not sleep")
	}
}

func TestSleepFPSSleeps(t *testing.T) {
	start := time.Now()
	if SleepFPS(100, 0) {
		t.Error("idle frame should not skip")
	}
	if d := time.Since(start); d < 10*time.Millisecond {
		t.Errorf("slept %v, want at least 10ms", d)
	}
}

// fakeClock advances only when the loop sleeps or a callback works.
type fakeClock struct {
	t     time.Time
	slept []time.Duration
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) sleep(_ context.Context, d time.Duration) error {
	c.slept = append(c.slept, d)
	c.t = c.t.Add(d)
	return nil
}

func newTestLoop(clock *fakeClock) *Loop {
	return &Loop{FPS: 10, now: clock.now, sleep: clock.sleep}
}

func TestLoopSkipsRenderAfterOverrun(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	l := newTestLoop(clock)
	l.MaxFrames = 4

	var updates int
	var skipped []bool
	l.Update = func(time.Duration) error {
		updates++
		if updates == 2 {
			// frame 2 blows through its 100ms budget
			clock.t = clock.t.Add(250 * time.Millisecond)
		}
		return nil
	}
	l.Render = func() error { return nil }
	l.Report = func(s FrameStats) { skipped = append(skipped, s.Skipped) }

	if err := l.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if updates != 4 {
		t.Errorf("Update ran %d times, want 4", updates)
	}
	want := []bool{false, false, true, false}
	for i := range want {
		if skipped[i] != want[i] {
			t.Fatalf("skipped = %v, want %v", skipped, want)
		}
	}
	// frame 0 runs at once and frame 2 is behind schedule
	if len(clock.slept) != 2 {
		t.Errorf("slept %d times, want 2: %v", len(clock.slept), clock.slept)
	}
}

func TestLoopFirstFrameImmediate(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	l := newTestLoop(clock)
	l.MaxFrames = 1

	var rendered bool
	l.Update = func(time.Duration) error {
		if len(clock.slept) != 0 {
			t.Errorf("slept %v before the first update", clock.slept)
		}
		return nil
	}
	l.Render = func() error {
		rendered = true
		return nil
	}
	if err := l.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !rendered {
		t.Error("first frame was not rendered")
	}
	if !clock.t.Equal(time.Unix(0, 0)) {
		t.Errorf("clock advanced to %v, want no waiting", clock.t)
	}
}

func TestLoopSleepsRemainder(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	l := newTestLoop(clock)
	l.MaxFrames = 3
	l.Render = func() error {
		clock.t = clock.t.Add(30 * time.Millisecond)
		return nil
	}
	if err := l.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(clock.slept) != 2 || clock.slept[0] != 70*time.Millisecond || clock.slept[1] != 70*time.Millisecond {
		t.Errorf("slept %v, want [70ms 70ms]", clock.slept)
	}
}

func TestLoopUpdateDelta(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	l := newTestLoop(clock)
	l.MaxFrames = 3
	var deltas []time.Duration
	l.Update = func(dt time.Duration) error {
		deltas = append(deltas, dt)
		return nil
	}
	if err := l.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if deltas[1] != 100*time.Millisecond || deltas[2] != 100*time.Millisecond {
		t.Errorf("deltas = %v, want 100ms steps", deltas)
	}
}

func TestLoopStops(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}

	l := newTestLoop(clock)
	frames := 0
	l.Update = func(time.Duration) error {
		frames++
		if frames == 5 {
			return ErrStop
		}
		return nil
	}
	if err := l.Run(context.Background()); err != nil {
		t.Errorf("ErrStop should end cleanly, got %v", err)
	}
	if frames != 5 {
		t.Errorf("ran %d frames, want 5", frames)
	}

	boom := errors.New("boom")
	l = newTestLoop(clock)
	l.Render = func() error { return boom }
	if err := l.Run(context.Background()); !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
}

func TestLoopContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	frames := 0
	err := Run(ctx, 1000, func(time.Duration) error {
		frames++
		if frames == 3 {
			cancel()
		}
		return nil
	}, nil)
	if err != nil {
		t.Errorf("cancel should end cleanly, got %v", err)
	}
	if frames != 3 {
		t.Errorf("ran %d frames after cancel, want 3", frames)
	}
}

func TestFPSCounter(t *testing.T) {
	start := time.Unix(0, 0)
	c := NewFPSCounter(start)
	for i := 1; i <= 30; i++ {
		c.Tick(start.Add(time.Duration(i) * time.Second / 30))
	}
	if math.Abs(c.FPS()-30) > 1e-6 {
		t.Errorf("FPS = %v, want 30", c.FPS())
	}
}

func TestSpinSettles(t *testing.T) {
	s := NewSpin(60, 0)
	s.Push(0.5)
	if got := s.Update(); got != 0.5 {
		t.Errorf("first Update = %v, want the pushed velocity", got)
	}
	prev := s.Velocity
	for range 240 {
		s.Update()
		if s.Velocity < -1e-9 {
			t.Fatalf("velocity overshot to %v", s.Velocity)
		}
		if s.Velocity > prev+1e-12 {
			t.Fatalf("velocity rose from %v to %v", prev, s.Velocity)
		}
		prev = s.Velocity
	}
	if math.Abs(s.Velocity) > 1e-3 {
		t.Errorf("velocity after 4s = %v, want near 0", s.Velocity)
	}
}

func TestSpinIdle(t *testing.T) {
	s := NewSpin(30, 0.05)
	for range 10 {
		if got := s.Update(); math.Abs(got-0.05) > 1e-9 {
			t.Fatalf("idle spin drifted to %v", got)
		}
	}
}

func TestSpinZeroRate(t *testing.T) {
	s := NewSpin(0, 0.1)
	s.Push(0.3)
	if got := s.Update(); math.Abs(got-0.4) > 1e-12 {
		t.Errorf("Update = %v, want 0.4", got)
	}
	if s.Velocity > 0.4 || s.Velocity < 0.1 {
		t.Errorf("velocity %v left the range [0.1, 0.4]", s.Velocity)
	}
}

func TestSpin3Composes(t *testing.T) {
	s := NewSpin3(60, math3d.V3(0, 0.1, 0))
	got := s.Update()
	if !got.ApproxEqual(math3d.RotationY(0.1), 1e-12) {
		t.Errorf("Update = %v, want a 0.1 rad yaw", got.Matrix())
	}

	s.Push(0.2, 0, 0)
	want := math3d.RotationX(0.2).Compose(math3d.RotationY(s.Yaw.Velocity))
	if got := s.Update(); !got.ApproxEqual(want, 1e-9) {
		t.Errorf("after a pitch push Update = %v, want %v", got.Matrix(), want.Matrix())
	}
}
