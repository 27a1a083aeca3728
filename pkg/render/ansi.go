package render

import (
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

const (
	frameStart = ansi.CursorHomePosition + ansi.EraseScreenBelow
	frameEnd   = ansi.EraseScreenBelow
	rowEnd     = "\r\n"
)

// AppendFrame appends the ANSI text of the whole view to dst.
//
// Within a row a cell only emits its modifier when it differs from the cell
// before it, and only emits a reset when the cell after it has a different
// modifier. Unstyled cells never emit either, so a run of identically styled
// cells costs one escape sequence and one reset.
func (v *View) AppendFrame(dst []byte) []byte {
	if cap(dst)-len(dst) < len(v.cells)+v.height*len(rowEnd)+16 {
		grown := make([]byte, len(dst), len(dst)+len(v.cells)*2+v.height*len(rowEnd)+16)
		copy(grown, dst)
		dst = grown
	}

	dst = append(dst, frameStart...)
	for y := range v.height {
		dst = appendRow(dst, v.Row(y))
		dst = append(dst, rowEnd...)
	}
	return append(dst, frameEnd...)
}

func appendRow(dst []byte, row []ColChar) []byte {
	for x, c := range row {
		m := c.Modifier
		if x == 0 || row[x-1].Modifier != m {
			dst = m.AppendSGR(dst)
		}
		dst = utf8.AppendRune(dst, c.Char)
		if m.kind != ModNone && (x == len(row)-1 || row[x+1].Modifier != m) {
			dst = End.AppendSGR(dst)
		}
	}
	return dst
}
