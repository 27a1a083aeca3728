package view3d

import (
	"github.com/taigrr/gemini/pkg/math3d"
	"github.com/taigrr/gemini/pkg/render"
)

// IsClockwise reports whether a projected polygon passes the backface
// test: the shoelace sum of (x_i - x_{i+1}) * (y_i + y_{i+1}) over its
// canvas points is non-positive. That is clockwise with the points read on
// a Y-up plane, and counter-clockwise as seen on the terminal, where Y
// grows downward. Fewer than three points always pass.
func IsClockwise(points []render.Vec2) bool {
	var sum int
	for i, p := range points {
		q := points[(i+1)%len(points)]
		sum += (p.X - q.X) * (p.Y + q.Y)
	}
	return sum <= 0
}

// projectedFace is a face that survived clipping, with its vertices in
// camera space and on the canvas.
type projectedFace struct {
	camera []math3d.Vec3
	screen []render.Vec2
	fill   render.ColChar
}

func (f projectedFace) centroid() math3d.Vec3 {
	return math3d.Mean(f.camera...)
}

// depth is the distance from the camera to the face's centroid.
func (f projectedFace) depth() float64 {
	return f.centroid().Len()
}

// normal returns the outward unit normal from the first three vertices.
func (f projectedFace) normal() (math3d.Vec3, bool) {
	if len(f.camera) < 3 {
		return math3d.Vec3{}, false
	}
	a := f.camera[1].Sub(f.camera[2])
	b := f.camera[0].Sub(f.camera[2])
	n := a.Cross(b)
	if n.Len() == 0 {
		return math3d.Vec3{}, false
	}
	return n.Normalize(), true
}
