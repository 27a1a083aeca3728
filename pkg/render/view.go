package render

import (
	"io"
)

// View is a fixed-size grid of coloured characters. It is a Canvas, and it
// can serialize itself to ANSI text.
//
// The cell slice always holds exactly width*height cells. Changing the size
// goes through Resize, which reallocates and clears.
type View struct {
	// Background is written to every cell by Clear.
	Background ColChar
	// Wrapping decides what happens to out-of-bounds plots.
	Wrapping WrappingMode

	width, height int
	cells         []ColChar
}

// NewView creates a cleared view with WrapIgnore.
func NewView(width, height int, background ColChar) *View {
	v := &View{Background: background}
	v.Resize(width, height)
	return v
}

// Width returns the number of columns.
func (v *View) Width() int { return v.width }

// Height returns the number of rows.
func (v *View) Height() int { return v.height }

// Size returns the view dimensions.
func (v *View) Size() Vec2 {
	return Vec2{v.width, v.height}
}

// Center returns the middle cell, rounded down.
func (v *View) Center() Vec2 {
	return v.Size().Div(2)
}

// Resize reallocates the grid at the new size and clears it. Negative
// dimensions are treated as zero.
func (v *View) Resize(width, height int) {
	v.width, v.height = max(width, 0), max(height, 0)
	v.cells = make([]ColChar, v.width*v.height)
	v.Clear()
}

// Clear overwrites every cell with the background.
func (v *View) Clear() {
	for i := range v.cells {
		v.cells[i] = v.Background
	}
}

// Plot writes c at pos, subject to the wrapping mode. Later writes replace
// earlier ones.
func (v *View) Plot(pos Vec2, c ColChar) {
	p, ok := v.Wrapping.HandleBounds(pos, v.Size())
	if !ok {
		return
	}
	v.cells[p.Y*v.width+p.X] = c
}

// At returns the cell at pos, or false if pos is outside the view.
func (v *View) At(pos Vec2) (ColChar, bool) {
	if !pos.In(v.Size()) {
		return ColChar{}, false
	}
	return v.cells[pos.Y*v.width+pos.X], true
}

// Row returns the cells of row y. The slice aliases the view.
func (v *View) Row(y int) []ColChar {
	return v.cells[y*v.width : (y+1)*v.width]
}

// Draw asks d to emit its pixels to the view.
func (v *View) Draw(d Drawable) {
	d.DrawTo(v)
}

// DrawDoubleWidth draws d with every pixel stretched over two columns: a
// pixel at (x, y) lands on (2x, y) and (2x+1, y). Terminal cells are about
// twice as tall as they are wide, so this gives roughly square pixels.
func (v *View) DrawDoubleWidth(d Drawable) {
	d.DrawTo(CanvasFunc(func(pos Vec2, c ColChar) {
		p := Vec2{pos.X * 2, pos.Y}
		v.Plot(p, c)
		v.Plot(Vec2{p.X + 1, p.Y}, c)
	}))
}

// Render writes one frame to w. It does not prepare the terminal; use a
// Session for that.
func (v *View) Render(w io.Writer) error {
	_, err := w.Write(v.AppendFrame(nil))
	return err
}

func (v *View) String() string {
	return string(v.AppendFrame(nil))
}
