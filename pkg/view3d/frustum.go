package view3d

import (
	"github.com/taigrr/gemini/pkg/math3d"
	"github.com/taigrr/gemini/pkg/models"
)

// Plane is Normal·p + D = 0, with Normal pointing to the inside.
type Plane struct {
	Normal math3d.Vec3
	D      float64
}

// Normalize scales the plane so the normal has unit length. Degenerate
// planes are left alone.
func (p *Plane) Normalize() {
	l := p.Normal.Len()
	if l == 0 {
		return
	}
	p.Normal = p.Normal.Scale(1 / l)
	p.D /= l
}

// DistanceToPoint returns the signed distance to point, positive on the
// inside.
func (p Plane) DistanceToPoint(point math3d.Vec3) float64 {
	return p.Normal.Dot(point) + p.D
}

// Frustum planes, in order.
const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumNear
	FrustumFar
)

// Frustum is the visible volume as six inward-facing planes.
type Frustum struct {
	Planes [6]Plane
}

// NewFrustumFromMatrix extracts the planes of a projection whose clip
// volume is -w <= x, y <= w and 0 <= z <= w (Gribb/Hartmann). With an
// infinite far plane, the far plane degenerates and never rejects.
func NewFrustumFromMatrix(m math3d.Mat4) Frustum {
	row := func(i int) (math3d.Vec3, float64) {
		return math3d.V3(m.At(i, 0), m.At(i, 1), m.At(i, 2)), m.At(i, 3)
	}
	n0, d0 := row(0)
	n1, d1 := row(1)
	n2, d2 := row(2)
	n3, d3 := row(3)

	f := Frustum{Planes: [6]Plane{
		FrustumLeft:   {Normal: n3.Add(n0), D: d3 + d0},
		FrustumRight:  {Normal: n3.Sub(n0), D: d3 - d0},
		FrustumBottom: {Normal: n3.Add(n1), D: d3 + d1},
		FrustumTop:    {Normal: n3.Sub(n1), D: d3 - d1},
		FrustumNear:   {Normal: n2, D: d2},
		FrustumFar:    {Normal: n3.Sub(n2), D: d3 - d2},
	}}
	for i := range f.Planes {
		f.Planes[i].Normalize()
	}
	return f
}

// ContainsPoint reports whether p is inside every plane.
func (f Frustum) ContainsPoint(p math3d.Vec3) bool {
	for _, pl := range f.Planes {
		if pl.DistanceToPoint(p) < 0 {
			return false
		}
	}
	return true
}

// IntersectsSphere reports whether any part of the sphere may be inside.
func (f Frustum) IntersectsSphere(center math3d.Vec3, radius float64) bool {
	for _, pl := range f.Planes {
		if pl.DistanceToPoint(center) < -radius {
			return false
		}
	}
	return true
}

// IntersectAABB reports whether any part of box may be inside, testing
// the corner furthest along each plane's normal.
func (f Frustum) IntersectAABB(box AABB) bool {
	for _, pl := range f.Planes {
		p := math3d.V3(
			pick(pl.Normal.X >= 0, box.Max.X, box.Min.X),
			pick(pl.Normal.Y >= 0, box.Max.Y, box.Min.Y),
			pick(pl.Normal.Z >= 0, box.Max.Z, box.Min.Z),
		)
		if pl.DistanceToPoint(p) < 0 {
			return false
		}
	}
	return true
}

func pick(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max math3d.Vec3
}

// Transform returns the box bounding all eight corners of b after t.
func (b AABB) Transform(t math3d.Transform) AABB {
	var out AABB
	for i := range 8 {
		corner := math3d.V3(
			pick(i&1 != 0, b.Max.X, b.Min.X),
			pick(i&2 != 0, b.Max.Y, b.Min.Y),
			pick(i&4 != 0, b.Max.Z, b.Min.Z),
		)
		p := t.Apply(corner)
		if i == 0 {
			out = AABB{Min: p, Max: p}
			continue
		}
		out.Min = out.Min.Min(p)
		out.Max = out.Max.Max(p)
	}
	return out
}

// Frustum returns the camera-space volume that lands on the canvas: the
// near plane plus the four canvas edges, widened by the character width
// multiplier. A viewport with no canvas area only gets a near plane.
func (v *Viewport) Frustum() Frustum {
	size := v.scale()
	cx, cy := float64(v.CanvasCentre.X), float64(v.CanvasCentre.Y)
	if size <= 0 || cx <= 0 || cy <= 0 {
		return NewFrustumFromMatrix(v.Projection().Matrix()).nearOnly()
	}
	fit := math3d.ScaleMat(math3d.V3(v.CharacterWidthMultiplier*size/cx, size/cy, 1))
	return NewFrustumFromMatrix(fit.Mul(v.Projection().Matrix()))
}

// nearOnly keeps the near plane and opens the others.
func (f Frustum) nearOnly() Frustum {
	near := f.Planes[FrustumNear]
	open := Plane{D: 1}
	return Frustum{Planes: [6]Plane{open, open, open, open, near, open}}
}

// visible reports whether any of obj might land on the canvas.
func (f Frustum) visible(obj *models.Mesh, camera math3d.Transform) bool {
	toCamera := camera.Compose(obj.Transform)
	center, radius := obj.BoundingSphere(toCamera)
	if !f.IntersectsSphere(center, radius) {
		return false
	}
	lo, hi := obj.Bounds()
	return f.IntersectAABB(AABB{Min: lo, Max: hi}.Transform(toCamera))
}
