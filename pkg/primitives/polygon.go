package primitives

import "github.com/taigrr/gemini/pkg/render"

// Polygon is a filled simple polygon, convex or concave.
type Polygon struct {
	Vertices []render.Vec2
	Fill     render.ColChar
}

// NewPolygon creates a Polygon.
func NewPolygon(vertices []render.Vec2, fill render.ColChar) Polygon {
	return Polygon{Vertices: vertices, Fill: fill}
}

// DrawTo triangulates the polygon and fills every triangle.
func (p Polygon) DrawTo(c render.Canvas) {
	for _, corners := range Triangulate(p.Vertices) {
		Triangle{Corners: corners, Fill: p.Fill}.DrawTo(c)
	}
}
