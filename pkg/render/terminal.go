package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

// ScreenDrawable presents a View as an ultraviolet Drawable, one screen cell
// per view cell. It lets a View be shown through a uv.Terminal instead of
// through a Session.
type ScreenDrawable struct {
	View *View
}

// Screen returns v wrapped as an ultraviolet Drawable.
func (v *View) Screen() ScreenDrawable {
	return ScreenDrawable{View: v}
}

// Draw copies the view into area, clipping whatever does not fit.
func (d ScreenDrawable) Draw(scr uv.Screen, area uv.Rectangle) {
	v := d.View
	for row := 0; row < v.height && area.Min.Y+row < area.Max.Y; row++ {
		cells := v.Row(row)
		for col := 0; col < v.width && area.Min.X+col < area.Max.X; col++ {
			c := cells[col]
			scr.SetCell(area.Min.X+col, area.Min.Y+row, &uv.Cell{
				Content: string(c.Char),
				Width:   1,
				Style:   CellStyle(c.Modifier),
			})
		}
	}
}

// CellStyle converts a modifier into an ultraviolet cell style. Foreground
// and background colour codes map to the 16 basic colours, a few attribute
// codes map to attributes, and anything else is unstyled.
func CellStyle(m Modifier) uv.Style {
	switch m.kind {
	case ModColour:
		return uv.Style{Fg: color.RGBA{m.colour.R, m.colour.G, m.colour.B, 0xff}}
	case ModCoded:
		return codedStyle(m.code)
	}
	return uv.Style{}
}

func codedStyle(code uint8) uv.Style {
	switch {
	case code >= 30 && code <= 37:
		return uv.Style{Fg: ansi.BasicColor(code - 30)}
	case code >= 90 && code <= 97:
		return uv.Style{Fg: ansi.BasicColor(code - 90 + 8)}
	case code >= 40 && code <= 47:
		return uv.Style{Bg: ansi.BasicColor(code - 40)}
	case code >= 100 && code <= 107:
		return uv.Style{Bg: ansi.BasicColor(code - 100 + 8)}
	}

	switch code {
	case 1:
		return uv.Style{Attrs: uv.AttrBold}
	case 2:
		return uv.Style{Attrs: uv.AttrFaint}
	case 3:
		return uv.Style{Attrs: uv.AttrItalic}
	case 5:
		return uv.Style{Attrs: uv.AttrBlink}
	case 7:
		return uv.Style{Attrs: uv.AttrReverse}
	}
	return uv.Style{}
}
