package primitives

import (
	"strings"
	"unicode/utf8"

	"github.com/taigrr/gemini/pkg/render"
)

// Sprite is a multi-line block of text drawn with one modifier.
type Sprite struct {
	Pos      render.Vec2
	Texture  string
	Align    TextAlign2D
	Modifier render.Modifier
}

// NewSprite creates a Sprite. Leading line breaks are trimmed so textures
// can be written as raw string literals starting on their own line.
func NewSprite(pos render.Vec2, texture string, mod render.Modifier) Sprite {
	return Sprite{Pos: pos, Texture: strings.TrimLeft(texture, "\n"), Modifier: mod}
}

// WithAlign returns a copy of s with the given alignment.
func (s Sprite) WithAlign(a TextAlign2D) Sprite {
	s.Align = a
	return s
}

// Size returns the widest line and the line count.
func (s Sprite) Size() render.Vec2 {
	lines := strings.Split(s.Texture, "\n")
	var width int
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}
	return render.V2(width, len(lines))
}

// DrawTo draws every line as Text.
func (s Sprite) DrawTo(c render.Canvas) {
	pos := s.Align.Apply(s.Pos, s.Size())
	for y, line := range strings.Split(s.Texture, "\n") {
		Text{Pos: pos.Add(render.V2(0, y)), Content: line, Modifier: s.Modifier}.DrawTo(c)
	}
}

// AnimatedSprite cycles through a list of textures.
type AnimatedSprite struct {
	Pos      render.Vec2
	Frames   []string
	Align    TextAlign2D
	Modifier render.Modifier

	current int
}

// NewAnimatedSprite creates an AnimatedSprite showing its first frame.
func NewAnimatedSprite(pos render.Vec2, frames []string, mod render.Modifier) *AnimatedSprite {
	trimmed := make([]string, len(frames))
	for i, f := range frames {
		trimmed[i] = strings.TrimLeft(f, "\n")
	}
	return &AnimatedSprite{Pos: pos, Frames: trimmed, Modifier: mod}
}

// Frame returns the index of the frame being shown.
func (a *AnimatedSprite) Frame() int {
	return a.current
}

// SetFrame jumps to frame i, wrapping around the frame count.
func (a *AnimatedSprite) SetFrame(i int) {
	if n := len(a.Frames); n > 0 {
		a.current = ((i % n) + n) % n
	}
}

// Next advances to the following frame, looping back to the first.
func (a *AnimatedSprite) Next() {
	a.SetFrame(a.current + 1)
}

// DrawTo draws the current frame.
func (a *AnimatedSprite) DrawTo(c render.Canvas) {
	if len(a.Frames) == 0 {
		return
	}
	Sprite{Pos: a.Pos, Texture: a.Frames[a.current], Align: a.Align, Modifier: a.Modifier}.DrawTo(c)
}
