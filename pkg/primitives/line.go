package primitives

import "github.com/taigrr/gemini/pkg/render"

// Line is a straight line between two points, both included.
type Line struct {
	From, To render.Vec2
	Fill     render.ColChar
}

// NewLine creates a Line.
func NewLine(from, to render.Vec2, fill render.ColChar) Line {
	return Line{From: from, To: to, Fill: fill}
}

// DrawTo plots the line with Bresenham's algorithm.
func (l Line) DrawTo(c render.Canvas) {
	bresenham(l.From, l.To, func(p render.Vec2) {
		c.Plot(p, l.Fill)
	})
}

// LinePoints returns the cells a line from p0 to p1 covers, in order.
func LinePoints(p0, p1 render.Vec2) []render.Vec2 {
	var pts []render.Vec2
	bresenham(p0, p1, func(p render.Vec2) {
		pts = append(pts, p)
	})
	return pts
}

// bresenham walks an 8-connected path from p0 to p1 inclusive.
func bresenham(p0, p1 render.Vec2, plot func(render.Vec2)) {
	x, y := p0.X, p0.Y
	dx := abs(p1.X - x)
	dy := -abs(p1.Y - y)
	sx, sy := 1, 1
	if x > p1.X {
		sx = -1
	}
	if y > p1.Y {
		sy = -1
	}
	err := dx + dy

	for {
		plot(render.Vec2{X: x, Y: y})
		e2 := 2 * err
		if e2 >= dy {
			if x == p1.X {
				return
			}
			err += dy
			x += sx
		}
		if e2 <= dx {
			if y == p1.Y {
				return
			}
			err += dx
			y += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
