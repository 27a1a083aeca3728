package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/x/term"
)

// ErrNoTerminal is returned when a terminal size is needed but the output
// is not a terminal.
var ErrNoTerminal = errors.New("not a terminal")

const resizeNotice = "Please resize your console window to fit the render\r\n"

// SizeFunc reports the terminal size in cells.
type SizeFunc func() (Vec2, error)

// TerminalSize returns the size of the terminal attached to f.
func TerminalSize(f *os.File) (Vec2, error) {
	if !term.IsTerminal(f.Fd()) {
		return Vec2{}, fmt.Errorf("size of %s: %w", f.Name(), ErrNoTerminal)
	}
	w, h, err := term.GetSize(f.Fd())
	if err != nil {
		return Vec2{}, fmt.Errorf("size of %s: %w", f.Name(), err)
	}
	return Vec2{w, h}, nil
}

// StdoutSize reports the size of the terminal on standard output.
func StdoutSize() (Vec2, error) {
	return TerminalSize(os.Stdout)
}

// Session owns an output stream that frames are displayed on. The first
// Display pushes whatever the terminal already shows out of view by
// printing one newline per terminal row; later calls never repeat that.
//
// A Session is not safe for concurrent Display calls.
type Session struct {
	out  io.Writer
	size SizeFunc

	prepare    bool
	blockFit   bool
	pollPeriod time.Duration

	once     sync.Once
	prepared bool
	buf      []byte
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSizeFunc replaces the terminal size query.
func WithSizeFunc(fn SizeFunc) SessionOption {
	return func(s *Session) {
		s.size = fn
	}
}

// WithoutPreparation skips the one-time scrollback push.
func WithoutPreparation() SessionOption {
	return func(s *Session) {
		s.prepare = false
	}
}

// WithBlockUntilResized makes Display wait, polling every period, until the
// terminal is at least as large as the view being displayed.
func WithBlockUntilResized(period time.Duration) SessionOption {
	return func(s *Session) {
		s.blockFit = true
		s.pollPeriod = period
	}
}

// NewSession creates a session writing to out. The terminal size is read
// from standard output unless WithSizeFunc says otherwise.
func NewSession(out io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		out:        out,
		size:       StdoutSize,
		prepare:    true,
		pollPeriod: 50 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Prepare performs the one-time terminal preparation. Only the call that
// performs it can return an error; every later call is a no-op.
func (s *Session) Prepare() error {
	var err error
	s.once.Do(func() {
		s.prepared = true
		if !s.prepare {
			return
		}

		var size Vec2
		size, err = s.size()
		if err != nil {
			err = fmt.Errorf("prepare terminal: %w", err)
			return
		}
		Logger().Debug("preparing terminal", "rows", size.Y)

		if _, werr := io.WriteString(s.out, strings.Repeat("\n", max(size.Y, 0))); werr != nil {
			err = fmt.Errorf("prepare terminal: %w", werr)
		}
	})
	return err
}

// Prepared reports whether Prepare has run.
func (s *Session) Prepared() bool {
	return s.prepared
}

// Display writes one frame of v, preparing the terminal first if needed.
func (s *Session) Display(v *View) error {
	if err := s.Prepare(); err != nil {
		return err
	}
	if s.blockFit {
		s.waitForSize(v.Size())
	}

	s.buf = v.AppendFrame(s.buf[:0])
	if _, err := s.out.Write(s.buf); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// waitForSize blocks until the terminal fits want. If the size cannot be
// read it returns immediately.
func (s *Session) waitForSize(want Vec2) {
	size, err := s.size()
	if err != nil || (size.X >= want.X && size.Y >= want.Y) {
		return
	}

	Logger().Info("terminal too small for view", "have", size, "want", want)
	_, _ = io.WriteString(s.out, resizeNotice)
	for {
		time.Sleep(s.pollPeriod)
		size, err = s.size()
		if err != nil || (size.X >= want.X && size.Y >= want.Y) {
			return
		}
	}
}
