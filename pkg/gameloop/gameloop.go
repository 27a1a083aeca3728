// Package gameloop paces a logic/render loop at a target frame rate.
//
// Pacing is best effort: after each frame the loop sleeps out whatever is
// left of the frame interval, and when a frame overruns it, the next frame
// runs its logic but skips rendering so the loop can catch up.
package gameloop

import (
	"context"
	"errors"
	"time"
)

// FrameDuration returns the length of one frame at fps.
func FrameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}

// SleepFPS sleeps for the rest of a frame that has already taken elapsed.
// It returns true without sleeping when the frame overran, meaning the
// next render should be skipped.
func SleepFPS(fps float64, elapsed time.Duration) bool {
	remaining := FrameDuration(fps) - elapsed
	if remaining <= 0 {
		return true
	}
	time.Sleep(remaining)
	return false
}

// FrameStats describes one pass through the loop.
type FrameStats struct {
	Frame    int
	Elapsed  time.Duration
	Skipped  bool
	FPS      float64
	Rendered int
}

// Loop runs Update every frame and Render on frames that are not being
// skipped.
type Loop struct {
	FPS float64
	// Update advances the simulation by dt, the time since the previous
	// Update.
	Update func(dt time.Duration) error
	Render func() error
	// Report, if set, is called after every frame.
	Report func(FrameStats)
	// MaxFrames stops the loop after that many frames; zero runs until
	// the context ends.
	MaxFrames int

	now   func() time.Time
	sleep func(context.Context, time.Duration) error
}

// ErrStop can be returned from Update or Render to end the loop without
// an error.
var ErrStop = errors.New("stop loop")

// Run is shorthand for a Loop with the given callbacks.
func Run(ctx context.Context, fps float64, update func(time.Duration) error, render func() error) error {
	l := &Loop{FPS: fps, Update: update, Render: render}
	return l.Run(ctx)
}

// Run loops until ctx is done, MaxFrames is reached or a callback returns
// an error. Context cancellation and ErrStop end the loop cleanly.
func (l *Loop) Run(ctx context.Context) error {
	now := l.now
	if now == nil {
		now = time.Now
	}
	sleep := l.sleep
	if sleep == nil {
		sleep = sleepContext
	}

	var (
		elapsed  time.Duration
		rendered int
		counter  = NewFPSCounter(now())
		last     = now()
	)
	for frame := 0; l.MaxFrames == 0 || frame < l.MaxFrames; frame++ {
		// The first frame runs at once; later ones wait out the rest of
		// the previous frame's interval.
		skip := false
		if frame > 0 {
			if remaining := FrameDuration(l.FPS) - elapsed; remaining > 0 {
				if err := sleep(ctx, remaining); err != nil {
					return nil
				}
			} else if l.FPS > 0 {
				skip = true
			}
		}
		if ctx.Err() != nil {
			return nil
		}

		start := now()
		dt := start.Sub(last)
		last = start

		if l.Update != nil {
			if err := l.Update(dt); err != nil {
				return stopOrErr(err)
			}
		}
		if !skip && l.Render != nil {
			if err := l.Render(); err != nil {
				return stopOrErr(err)
			}
			rendered++
		}

		elapsed = now().Sub(start)
		if l.Report != nil {
			l.Report(FrameStats{
				Frame:    frame,
				Elapsed:  elapsed,
				Skipped:  skip,
				FPS:      counter.Tick(now()),
				Rendered: rendered,
			})
		}
	}
	return nil
}

func stopOrErr(err error) error {
	if errors.Is(err, ErrStop) {
		return nil
	}
	return err
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// FPSCounter measures frames per second over one-second windows.
type FPSCounter struct {
	fps    float64
	frames int
	start  time.Time
}

// NewFPSCounter starts a counter at now.
func NewFPSCounter(now time.Time) *FPSCounter {
	return &FPSCounter{start: now}
}

// Tick counts a frame and returns the rate from the last complete window.
func (c *FPSCounter) Tick(now time.Time) float64 {
	c.frames++
	if elapsed := now.Sub(c.start); elapsed >= time.Second {
		c.fps = float64(c.frames) / elapsed.Seconds()
		c.frames = 0
		c.start = now
	}
	return c.fps
}

// FPS returns the last measured rate.
func (c *FPSCounter) FPS() float64 {
	return c.fps
}
