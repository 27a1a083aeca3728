package primitives

import (
	"slices"

	"github.com/taigrr/gemini/pkg/render"
)

// Triangulate splits a simple polygon into len(vertices)-2 triangles by ear
// clipping. Fewer than three vertices give no triangles. Either winding is
// accepted.
//
// An ear is a vertex that turns the same way as the polygon and whose
// triangle with its two neighbours contains no other remaining vertex. One
// ear is removed per step until three vertices are left. If no ear exists,
// as with collinear input, the first vertex is clipped so the loop always
// ends.
func Triangulate(vertices []render.Vec2) [][3]render.Vec2 {
	if len(vertices) < 3 {
		return nil
	}

	remaining := slices.Clone(vertices)
	winding := sign(signedArea2(remaining))
	tris := make([][3]render.Vec2, 0, len(vertices)-2)

	for len(remaining) > 3 {
		n := len(remaining)
		i := findEar(remaining, winding)
		tris = append(tris, [3]render.Vec2{remaining[(i+n-1)%n], remaining[i], remaining[(i+1)%n]})
		remaining = slices.Delete(remaining, i, i+1)
	}
	return append(tris, [3]render.Vec2{remaining[0], remaining[1], remaining[2]})
}

func findEar(poly []render.Vec2, winding int) int {
	n := len(poly)
	for i := range poly {
		a, b, c := poly[(i+n-1)%n], poly[i], poly[(i+1)%n]
		if sign(cross(a, b, c)) != winding || winding == 0 {
			continue
		}
		if !containsVertex(poly, a, b, c, winding) {
			return i
		}
	}
	return 0
}

// containsVertex reports whether any polygon vertex other than a, b and c
// lies inside or on triangle abc.
func containsVertex(poly []render.Vec2, a, b, c render.Vec2, winding int) bool {
	for _, p := range poly {
		if p == a || p == b || p == c {
			continue
		}
		if sign(cross(a, b, p)) != -winding &&
			sign(cross(b, c, p)) != -winding &&
			sign(cross(c, a, p)) != -winding {
			return true
		}
	}
	return false
}

// cross is the z component of (b-a) x (c-a): positive for a left turn on a
// Y-up plane.
func cross(a, b, c render.Vec2) int {
	return b.Sub(a).PerpDot(c.Sub(a))
}

// signedArea2 is twice the signed area, positive when the vertices run
// anticlockwise on a Y-up plane.
func signedArea2(poly []render.Vec2) int {
	var sum int
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		sum += p.PerpDot(q)
	}
	return sum
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
