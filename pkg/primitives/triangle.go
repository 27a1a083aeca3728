package primitives

import (
	"cmp"
	"slices"

	"github.com/taigrr/gemini/pkg/render"
)

// Triangle is a filled triangle.
type Triangle struct {
	Corners [3]render.Vec2
	Fill    render.ColChar
}

// NewTriangle creates a Triangle.
func NewTriangle(p0, p1, p2 render.Vec2, fill render.ColChar) Triangle {
	return Triangle{Corners: [3]render.Vec2{p0, p1, p2}, Fill: fill}
}

// DrawTo fills the triangle scanline by scanline, then draws its edges so
// thin slivers still show up.
func (t Triangle) DrawTo(c render.Canvas) {
	fillTriangle(t.Corners, func(p render.Vec2) {
		c.Plot(p, t.Fill)
	})
	for i := range 3 {
		Line{From: t.Corners[i], To: t.Corners[(i+1)%3], Fill: t.Fill}.DrawTo(c)
	}
}

// fillTriangle plots the interior spans. For each row between the top and
// bottom corners it fills [left, right) between the long edge and the two
// short edges.
func fillTriangle(corners [3]render.Vec2, plot func(render.Vec2)) {
	slices.SortStableFunc(corners[:], func(a, b render.Vec2) int {
		return cmp.Compare(a.Y, b.Y)
	})
	p0, p1, p2 := corners[0], corners[1], corners[2]

	x01 := Interpolate(p0.Y, p0.X, p1.Y, p1.X)
	x12 := Interpolate(p1.Y, p1.X, p2.Y, p2.X)
	x02 := Interpolate(p0.Y, p0.X, p2.Y, p2.X)

	// x01 ends where x12 starts
	x012 := append(x01[:len(x01)-1], x12...)

	left, right := x012, x02
	if m := len(x012) / 2; x02[m] < x012[m] {
		left, right = x02, x012
	}

	for i, y := 0, p0.Y; y < p2.Y; i, y = i+1, y+1 {
		for x := left[i]; x < right[i]; x++ {
			plot(render.Vec2{X: x, Y: y})
		}
	}
}
