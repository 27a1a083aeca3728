package render

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ModifierKind tells which variant a Modifier holds.
type ModifierKind uint8

const (
	// ModNone applies no styling.
	ModNone ModifierKind = iota
	// ModCoded is a numeric SGR code such as 31 for red or 0 for reset.
	ModCoded
	// ModColour is a 24-bit foreground colour.
	ModColour
)

// Modifier is the appearance of a cell: nothing, an SGR code or an RGB
// colour. Modifiers are comparable; the zero value is no styling.
type Modifier struct {
	kind   ModifierKind
	code   uint8
	colour Colour
}

// Named modifiers.
var (
	NoModifier = Modifier{}
	End        = Coded(0)
	Red        = Coded(31)
	Green      = Coded(32)
	Yellow     = Coded(33)
	Blue       = Coded(34)
	Purple     = Coded(35)
	Cyan       = Coded(36)
)

// Coded returns a modifier that emits ESC[<code>m.
func Coded(code uint8) Modifier {
	return Modifier{kind: ModCoded, code: code}
}

// WithColour returns a modifier that sets the foreground to c.
func WithColour(c Colour) Modifier {
	return Modifier{kind: ModColour, colour: c}
}

// FromRGB is shorthand for WithColour(RGB(r, g, b)).
func FromRGB(r, g, b uint8) Modifier {
	return WithColour(RGB(r, g, b))
}

// FromHSV is shorthand for WithColour(HSV(h, s, v)).
func FromHSV(h, s, v uint8) Modifier {
	return WithColour(HSV(h, s, v))
}

// Kind returns the variant held by m.
func (m Modifier) Kind() ModifierKind {
	return m.kind
}

// Code returns the SGR code of a coded modifier.
func (m Modifier) Code() (uint8, bool) {
	return m.code, m.kind == ModCoded
}

// Colour returns the colour of a colour modifier.
func (m Modifier) Colour() (Colour, bool) {
	return m.colour, m.kind == ModColour
}

// AppendSGR appends the escape sequence for m to dst. No styling appends
// nothing.
func (m Modifier) AppendSGR(dst []byte) []byte {
	style := m.Style()
	if len(style) == 0 {
		return dst
	}
	return append(dst, style.String()...)
}

// Style returns m as SGR attributes. No styling returns an empty style.
func (m Modifier) Style() ansi.Style {
	switch m.kind {
	case ModCoded:
		return ansi.NewStyle(int(m.code))
	case ModColour:
		c := color.RGBA{R: m.colour.R, G: m.colour.G, B: m.colour.B, A: 0xff}
		return ansi.Style{}.ForegroundColor(c)
	}
	return nil
}

func (m Modifier) String() string {
	return string(m.AppendSGR(nil))
}

// ColChar is a single terminal cell: a glyph and its appearance.
type ColChar struct {
	Char     rune
	Modifier Modifier
}

// Common cells.
var (
	Solid      = ColChar{Char: '█'}
	Background = ColChar{Char: '░'}
	Empty      = ColChar{Char: ' '}
	Void       = ColChar{Char: '\u2008'}
)

// NewColChar creates a ColChar.
func NewColChar(char rune, m Modifier) ColChar {
	return ColChar{Char: char, Modifier: m}
}

// WithChar returns c with its glyph replaced.
func (c ColChar) WithChar(char rune) ColChar {
	c.Char = char
	return c
}

// WithModifier returns c with its modifier replaced.
func (c ColChar) WithModifier(m Modifier) ColChar {
	c.Modifier = m
	return c
}

// WithColour returns c coloured with col.
func (c ColChar) WithColour(col Colour) ColChar {
	c.Modifier = WithColour(col)
	return c
}

// WithRGB returns c coloured with the given channels.
func (c ColChar) WithRGB(r, g, b uint8) ColChar {
	return c.WithModifier(FromRGB(r, g, b))
}

// WithHSV returns c coloured with the given hue, saturation and value.
func (c ColChar) WithHSV(h, s, v uint8) ColChar {
	return c.WithModifier(FromHSV(h, s, v))
}

// String renders c on its own: the glyph, wrapped in its modifier and a
// reset when it has one.
func (c ColChar) String() string {
	if c.Modifier.kind == ModNone {
		return string(c.Char)
	}
	var b strings.Builder
	b.Write(c.Modifier.AppendSGR(nil))
	b.WriteRune(c.Char)
	b.Write(End.AppendSGR(nil))
	return b.String()
}
