package view3d

import (
	"math"
	"testing"

	"github.com/taigrr/gemini/pkg/math3d"
	"github.com/taigrr/gemini/pkg/models"
	"github.com/taigrr/gemini/pkg/render"
)

func TestPlaneDistanceToPoint(t *testing.T) {
	plane := Plane{Normal: math3d.V3(0, 0, 1), D: 0}

	tests := []struct {
		name     string
		point    math3d.Vec3
		expected float64
	}{
		{"origin", math3d.V3(0, 0, 0), 0},
		{"in front", math3d.V3(0, 0, 5), 5},
		{"behind", math3d.V3(0, 0, -3), -3},
		{"offset XY", math3d.V3(10, -5, 2), 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dist := plane.DistanceToPoint(tc.point)
			if math.Abs(dist-tc.expected) > 1e-9 {
				t.Errorf("got %v, want %v", dist, tc.expected)
			}
		})
	}
}

func TestPlaneNormalize(t *testing.T) {
	plane := Plane{Normal: math3d.V3(0, 3, 4), D: 10}
	plane.Normalize()

	if l := plane.Normal.Len(); math.Abs(l-1) > 1e-9 {
		t.Errorf("normalized normal length = %v, want 1", l)
	}
	if math.Abs(plane.D-2) > 1e-9 {
		t.Errorf("D = %v, want 2", plane.D)
	}

	flat := Plane{D: 3}
	flat.Normalize()
	if flat.D != 3 {
		t.Errorf("degenerate plane changed: %v", flat)
	}
}

func TestViewportFrustumContainsPoint(t *testing.T) {
	vp := New(math3d.IdentityTransform, 90, render.V2(50, 25))
	f := vp.Frustum()

	tests := []struct {
		name  string
		point math3d.Vec3
		want  bool
	}{
		{"straight ahead", math3d.V3(0, 0, 5), true},
		{"very far", math3d.V3(0, 0, 1e6), true},
		{"behind", math3d.V3(0, 0, -5), false},
		{"inside near plane", math3d.V3(0, 0, 0.1), false},
		{"above the top edge", math3d.V3(0, 6, 5), false},
		{"wide right", math3d.V3(4, 0, 5), true},
		{"past the right edge", math3d.V3(6, 0, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.ContainsPoint(tt.point); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestFrustumMatchesCanvas(t *testing.T) {
	vp := New(math3d.IdentityTransform, 70, render.V2(40, 12))
	f := vp.Frustum()
	size := render.V2(80, 24)
	for _, p := range []math3d.Vec3{
		{X: 1, Y: 0.5, Z: 3}, {X: -2, Y: 1, Z: 4}, {X: 3, Y: -1, Z: 2}, {X: 0.2, Y: 2, Z: 3}, {X: -5, Y: 0, Z: 4},
	} {
		onCanvas := vp.ProjectPoint(p).In(size)
		if inside := f.ContainsPoint(p); inside != onCanvas {
			t.Errorf("%v: frustum says %v, canvas says %v", p, inside, onCanvas)
		}
	}
}

func TestFrustumIntersectsSphere(t *testing.T) {
	f := New(math3d.IdentityTransform, 90, render.V2(50, 25)).Frustum()
	if !f.IntersectsSphere(math3d.V3(0, 0, 10), 1) {
		t.Error("sphere ahead should intersect")
	}
	if !f.IntersectsSphere(math3d.V3(0, 0, -0.5), 1) {
		t.Error("sphere straddling the near plane should intersect")
	}
	if f.IntersectsSphere(math3d.V3(0, 0, -10), 1) {
		t.Error("sphere behind should not intersect")
	}
}

func TestFrustumIntersectAABB(t *testing.T) {
	f := New(math3d.IdentityTransform, 90, render.V2(50, 25)).Frustum()
	tests := []struct {
		name string
		box  AABB
		want bool
	}{
		{"ahead", AABB{Min: math3d.V3(-1, -1, 4), Max: math3d.V3(1, 1, 6)}, true},
		{"behind", AABB{Min: math3d.V3(-1, -1, -6), Max: math3d.V3(1, 1, -4)}, false},
		{"far above", AABB{Min: math3d.V3(-1, 50, 4), Max: math3d.V3(1, 52, 6)}, false},
		{"spanning the camera", AABB{Min: math3d.V3(-1, -1, -1), Max: math3d.V3(1, 1, 1)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.IntersectAABB(tt.box); got != tt.want {
				t.Errorf("IntersectAABB = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAABBTransform(t *testing.T) {
	box := AABB{Min: math3d.V3(-1, -1, -1), Max: math3d.V3(1, 1, 1)}
	moved := box.Transform(math3d.Translation(math3d.V3(5, 0, 0)))
	if !moved.Min.ApproxEqual(math3d.V3(4, -1, -1), 1e-9) || !moved.Max.ApproxEqual(math3d.V3(6, 1, 1), 1e-9) {
		t.Errorf("translated box = %v", moved)
	}

	turned := box.Transform(math3d.RotationY(math.Pi / 4))
	want := math.Sqrt2
	if math.Abs(turned.Max.X-want) > 1e-9 || math.Abs(turned.Max.Z-want) > 1e-9 {
		t.Errorf("rotated box max = %v, want about %v", turned.Max, want)
	}
}

func TestFrustumCullingSkipsOffscreenMesh(t *testing.T) {
	vp := New(math3d.IdentityTransform, 90, render.V2(50, 25))
	vp.FrustumCulling = true
	visible := models.DefaultCube().WithTransform(math3d.Translation(math3d.V3(0, 0, 8)))
	hidden := models.DefaultCube().WithTransform(math3d.Translation(math3d.V3(0, 40, 8)))
	behind := models.DefaultCube().WithTransform(math3d.Translation(math3d.V3(0, 0, -8)))
	vp.Objects = []*models.Mesh{visible, hidden, behind}

	culled := len(vp.projectFaces(false, false))
	vp.FrustumCulling = false
	all := len(vp.projectFaces(false, false))

	if culled != 6 {
		t.Errorf("with culling %d faces, want 6", culled)
	}
	// the cube far above is in front of the camera, so it still projects
	if all != 12 {
		t.Errorf("without culling %d faces, want 12", all)
	}
}

func TestFrustumNoCanvas(t *testing.T) {
	f := New(math3d.IdentityTransform, 90, render.V2(0, 0)).Frustum()
	if !f.ContainsPoint(math3d.V3(100, 100, 5)) {
		t.Error("zero-size canvas should only clip at the near plane")
	}
	if f.ContainsPoint(math3d.V3(0, 0, 0.1)) {
		t.Error("near plane missing")
	}
}

func BenchmarkFrustumIntersectAABB(b *testing.B) {
	f := New(math3d.IdentityTransform, 90, render.V2(50, 25)).Frustum()
	box := AABB{Min: math3d.V3(-1, -1, 4), Max: math3d.V3(1, 1, 6)}
	for b.Loop() {
		_ = f.IntersectAABB(box)
	}
}

func BenchmarkViewportCube(b *testing.B) {
	vp := cubeViewport()
	vp.DisplayMode = Illuminated{Lights: DefaultLights()}
	v := render.NewView(100, 50, render.Empty)
	for b.Loop() {
		v.Clear()
		v.Draw(vp)
	}
}
