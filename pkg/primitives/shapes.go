package primitives

import "github.com/taigrr/gemini/pkg/render"

// Pixel is a single cell.
type Pixel struct {
	Pos  render.Vec2
	Fill render.ColChar
}

// NewPixel creates a Pixel.
func NewPixel(pos render.Vec2, fill render.ColChar) Pixel {
	return Pixel{Pos: pos, Fill: fill}
}

// DrawTo plots the pixel.
func (p Pixel) DrawTo(c render.Canvas) {
	c.Plot(p.Pos, p.Fill)
}

// Rect is a filled axis-aligned rectangle.
type Rect struct {
	Pos  render.Vec2
	Size render.Vec2
	Fill render.ColChar
}

// NewRect creates a Rect with its top-left corner at pos.
func NewRect(pos, size render.Vec2, fill render.ColChar) Rect {
	return Rect{Pos: pos, Size: size, Fill: fill}
}

// RectFromTo creates a Rect covering topLeft to bottomRight inclusive.
func RectFromTo(topLeft, bottomRight render.Vec2, fill render.ColChar) Rect {
	return Rect{Pos: topLeft, Size: bottomRight.Sub(topLeft).Add(render.V2(1, 1)), Fill: fill}
}

// BottomRight returns the last cell covered by the rectangle.
func (r Rect) BottomRight() render.Vec2 {
	return r.Pos.Add(r.Size).Sub(render.V2(1, 1))
}

// DrawTo fills the rectangle.
func (r Rect) DrawTo(c render.Canvas) {
	for y := range r.Size.Y {
		for x := range r.Size.X {
			c.Plot(r.Pos.Add(render.V2(x, y)), r.Fill)
		}
	}
}
