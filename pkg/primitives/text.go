package primitives

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/taigrr/gemini/pkg/render"
)

// TextAlign positions a run of text relative to its anchor on one axis.
type TextAlign int

const (
	AlignBegin TextAlign = iota
	AlignCentered
	AlignEnd
)

// Apply returns the start coordinate for text of the given length anchored
// at pos.
func (a TextAlign) Apply(pos, length int) int {
	switch a {
	case AlignCentered:
		return pos - length/2
	case AlignEnd:
		return pos - length
	default:
		return pos
	}
}

// TextAlign2D aligns a block of text on both axes.
type TextAlign2D struct {
	X, Y TextAlign
}

// AlignCentered2D centres a block on its anchor.
var AlignCentered2D = TextAlign2D{X: AlignCentered, Y: AlignCentered}

// Apply returns the top-left corner for a block of the given size anchored
// at pos.
func (a TextAlign2D) Apply(pos, size render.Vec2) render.Vec2 {
	return render.V2(a.X.Apply(pos.X, size.X), a.Y.Apply(pos.Y, size.Y))
}

// Text is a single line of characters sharing one modifier. Spaces are not
// plotted, so whatever lies beneath shows through.
type Text struct {
	Pos      render.Vec2
	Content  string
	Align    TextAlign
	Modifier render.Modifier
}

// NewText creates a left-aligned Text. It panics if content contains a line
// break; use Sprite for multi-line content.
func NewText(pos render.Vec2, content string, mod render.Modifier) Text {
	if strings.ContainsRune(content, '\n') {
		panic(fmt.Sprintf("primitives: text %q contains a line break", content))
	}
	return Text{Pos: pos, Content: content, Modifier: mod}
}

// WithAlign returns a copy of t with the given alignment.
func (t Text) WithAlign(a TextAlign) Text {
	t.Align = a
	return t
}

// DrawTo plots each non-space character.
func (t Text) DrawTo(c render.Canvas) {
	pos := t.Pos
	pos.X = t.Align.Apply(pos.X, utf8.RuneCountInString(t.Content))

	x := 0
	for _, r := range t.Content {
		if r != ' ' {
			c.Plot(pos.Add(render.V2(x, 0)), render.NewColChar(r, t.Modifier))
		}
		x++
	}
}
