package render

// Canvas accepts coloured characters at integer positions.
type Canvas interface {
	Plot(pos Vec2, c ColChar)
}

// Drawable is anything that can emit pixels to a Canvas.
type Drawable interface {
	DrawTo(c Canvas)
}

// CanvasFunc adapts a function to the Canvas interface.
type CanvasFunc func(pos Vec2, c ColChar)

// Plot calls f(pos, c).
func (f CanvasFunc) Plot(pos Vec2, c ColChar) {
	f(pos, c)
}

// DrawableFunc adapts a function to the Drawable interface.
type DrawableFunc func(c Canvas)

// DrawTo calls f(c).
func (f DrawableFunc) DrawTo(c Canvas) {
	f(c)
}
