package render

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is the panic value cause for plots rejected by WrapFail.
var ErrOutOfBounds = errors.New("position out of bounds")

// WrappingMode decides what happens to positions outside a canvas.
type WrappingMode uint8

const (
	// WrapIgnore drops out-of-bounds positions.
	WrapIgnore WrappingMode = iota
	// WrapAround reduces positions modulo the canvas size.
	WrapAround
	// WrapFail panics on out-of-bounds positions. Use it while developing
	// code that is expected to stay inside the canvas.
	WrapFail
)

func (w WrappingMode) String() string {
	switch w {
	case WrapIgnore:
		return "ignore"
	case WrapAround:
		return "wrap"
	case WrapFail:
		return "fail"
	}
	return fmt.Sprintf("WrappingMode(%d)", uint8(w))
}

// ParseWrappingMode maps "ignore", "wrap" or "fail" to a WrappingMode.
func ParseWrappingMode(s string) (WrappingMode, error) {
	switch s {
	case "ignore":
		return WrapIgnore, nil
	case "wrap":
		return WrapAround, nil
	case "fail":
		return WrapFail, nil
	}
	return 0, fmt.Errorf("unknown wrapping mode %q (want ignore, wrap or fail)", s)
}

// HandleBounds applies the mode to pos within size. It returns false when
// the position should be dropped.
func (w WrappingMode) HandleBounds(pos, size Vec2) (Vec2, bool) {
	if size.X <= 0 || size.Y <= 0 {
		if w == WrapFail {
			panic(fmt.Errorf("%w: %v on an empty %dx%d canvas", ErrOutOfBounds, pos, size.X, size.Y))
		}
		return Vec2{}, false
	}

	wrapped := pos.RemEuclid(size)
	switch w {
	case WrapAround:
		return wrapped, true
	case WrapFail:
		if wrapped != pos {
			panic(fmt.Errorf("%w: %v outside %dx%d", ErrOutOfBounds, pos, size.X, size.Y))
		}
		return pos, true
	default:
		return pos, wrapped == pos
	}
}
