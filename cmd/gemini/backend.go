package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/taigrr/gemini/pkg/gameloop"
	"github.com/taigrr/gemini/pkg/render"
)

// run drives p with the backend named by --backend.
func run(ctx context.Context, opts *options, p program) error {
	render.Logger().Info("starting", "backend", opts.backend, "fps", opts.fps, "frames", opts.frames)
	if opts.backend == backendUV {
		return runUV(ctx, opts, p)
	}
	return runANSI(ctx, opts, os.Stdout, p)
}

// reportFrames logs frame statistics about once a second.
func reportFrames(fps float64) func(gameloop.FrameStats) {
	every := max(int(fps), 1)
	return func(st gameloop.FrameStats) {
		if st.Frame%every != 0 {
			return
		}
		render.Logger().Debug("frame",
			"frame", st.Frame,
			"fps", st.FPS,
			"elapsed", st.Elapsed,
			"skipped", st.Skipped,
			"rendered", st.Rendered,
		)
	}
}

// runANSI repaints a View on out with plain escape sequences. When out is
// not a terminal the scrollback push is skipped, so frames can be piped to
// a file.
func runANSI(ctx context.Context, opts *options, out io.Writer, p program) error {
	var sessionOpts []render.SessionOption
	if _, err := render.StdoutSize(); errors.Is(err, render.ErrNoTerminal) {
		sessionOpts = append(sessionOpts, render.WithoutPreparation())
	}
	session := render.NewSession(out, sessionOpts...)

	view := opts.newView(render.V2(opts.width, opts.height))
	refresh := func() error {
		view.Clear()
		return nil
	}
	if opts.fit {
		fit, err := render.NewScaleFitView(opts.background, render.StdoutSize)
		if err != nil {
			return fmt.Errorf("fit view: %w", err)
		}
		fit.Wrapping = opts.wrapping
		view = fit.View
		refresh = fit.Update
	}

	if _, err := io.WriteString(out, ansi.HideCursor); err != nil {
		return err
	}
	defer io.WriteString(out, ansi.ShowCursor)

	loop := &gameloop.Loop{
		FPS:       opts.fps,
		MaxFrames: opts.frames,
		Update:    p.update,
		Render: func() error {
			if err := refresh(); err != nil {
				return err
			}
			p.draw(view)
			return session.Display(view)
		},
		Report: reportFrames(opts.fps),
	}
	return loop.Run(ctx)
}

// runUV shows frames through an ultraviolet terminal on the alternate
// screen and feeds key presses to p.
func runUV(ctx context.Context, opts *options, p program) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		if err := term.Shutdown(context.Background()); err != nil {
			render.Logger().Warn("shutdown terminal", "err", err)
		}
	}
	defer cleanup()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	viewSize := func(w, h int) render.Vec2 {
		if opts.fit {
			return render.V2(w, h)
		}
		return render.V2(opts.width, opts.height)
	}

	// mu guards p and view against the event goroutine.
	var mu sync.Mutex
	size := viewSize(width, height)
	view := opts.newView(size)

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				mu.Lock()
				term.Erase()
				term.Resize(ev.Width, ev.Height)
				size := viewSize(ev.Width, ev.Height)
				view.Resize(size.X, size.Y)
				mu.Unlock()
				render.Logger().Debug("terminal resized", "width", ev.Width, "height", ev.Height)

			case uv.KeyPressEvent:
				if ev.MatchString("escape", "ctrl+c") {
					cancel()
					return
				}
				if h, ok := p.(keyHandler); ok {
					mu.Lock()
					h.key(ev)
					mu.Unlock()
				}
			}
		}
	}()

	loop := &gameloop.Loop{
		FPS:       opts.fps,
		MaxFrames: opts.frames,
		Update: func(dt time.Duration) error {
			mu.Lock()
			defer mu.Unlock()
			return p.update(dt)
		},
		Render: func() error {
			mu.Lock()
			defer mu.Unlock()
			view.Clear()
			p.draw(view)
			view.Screen().Draw(term, term.Bounds())
			if err := term.Display(); err != nil {
				return fmt.Errorf("display: %w", err)
			}
			return nil
		},
		Report: reportFrames(opts.fps),
	}
	return loop.Run(ctx)
}
