package models

import (
	"math"

	"github.com/taigrr/gemini/pkg/math3d"
	"github.com/taigrr/gemini/pkg/render"
)

// DefaultCube returns a 2x2x2 cube centred on the origin with blue, plain
// and red opposite face pairs.
func DefaultCube() *Mesh {
	blue := render.Solid.WithModifier(render.Blue)
	red := render.Solid.WithModifier(render.Red)
	return NewMesh(
		[]math3d.Vec3{
			{X: 1, Y: 1, Z: -1},
			{X: 1, Y: 1, Z: 1},
			{X: 1, Y: -1, Z: -1},
			{X: 1, Y: -1, Z: 1},
			{X: -1, Y: 1, Z: -1},
			{X: -1, Y: 1, Z: 1},
			{X: -1, Y: -1, Z: -1},
			{X: -1, Y: -1, Z: 1},
		},
		[]Face{
			{Indices: []int{2, 3, 1, 0}, Fill: blue},
			{Indices: []int{4, 5, 7, 6}, Fill: blue},
			{Indices: []int{1, 3, 7, 5}, Fill: render.Solid},
			{Indices: []int{4, 6, 2, 0}, Fill: render.Solid},
			{Indices: []int{6, 7, 3, 2}, Fill: red},
			{Indices: []int{0, 1, 5, 4}, Fill: red},
		},
	).WithName("cube")
}

// Torus returns a ring around the Y axis. outerRadius is the distance from
// the centre to the middle of the tube and innerRadius is the tube's
// radius. Every face is a quad.
func Torus(outerRadius, innerRadius float64, outerSegments, innerSegments int) *Mesh {
	vertices := make([]math3d.Vec3, 0, outerSegments*innerSegments)
	faces := make([]Face, 0, outerSegments*innerSegments)

	for o := range outerSegments {
		outer := float64(o) / float64(outerSegments) * 2 * math.Pi
		for i := range innerSegments {
			inner := float64(i) / float64(innerSegments) * 2 * math.Pi
			ring := outerRadius + innerRadius*math.Cos(inner)
			vertices = append(vertices, math3d.V3(
				ring*math.Cos(outer),
				innerRadius*math.Sin(inner),
				ring*math.Sin(outer),
			))

			nextO := (o + 1) % outerSegments
			nextI := (i + 1) % innerSegments
			faces = append(faces, Face{
				Indices: []int{
					nextO*innerSegments + i,
					nextO*innerSegments + nextI,
					o*innerSegments + nextI,
					o*innerSegments + i,
				},
				Fill: render.Solid,
			})
		}
	}
	return NewMesh(vertices, faces).WithName("torus")
}

// Gimbal returns three unit axis edges from the origin: red X, green Y and
// blue Z.
func Gimbal() *Mesh {
	return NewMesh(
		[]math3d.Vec3{{}, math3d.UnitX, math3d.UnitY, math3d.UnitZ},
		[]Face{
			{Indices: []int{0, 1}, Fill: render.Solid.WithModifier(render.Red)},
			{Indices: []int{0, 2}, Fill: render.Solid.WithModifier(render.Green)},
			{Indices: []int{0, 3}, Fill: render.Solid.WithModifier(render.Blue)},
		},
	).WithName("gimbal")
}
