package models

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/taigrr/gemini/pkg/math3d"
	"github.com/taigrr/gemini/pkg/render"
)

func TestIndexInto(t *testing.T) {
	f := NewFace([]int{2, 0}, render.Solid)
	got, err := IndexInto(f, []string{"a", "b", "c"})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []string{"c", "a"}) {
		t.Errorf("IndexInto = %v", got)
	}

	_, err = IndexInto(NewFace([]int{0, 3}, render.Solid), []string{"a", "b", "c"})
	if !errors.Is(err, ErrFaceIndex) {
		t.Errorf("err = %v, want ErrFaceIndex", err)
	}
}

func TestMustIndexIntoPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrFaceIndex) {
			t.Errorf("recovered %v, want ErrFaceIndex", r)
		}
	}()
	MustIndexInto(NewFace([]int{-1}, render.Solid), []int{1})
}

func TestPresetsValidate(t *testing.T) {
	for _, m := range []*Mesh{DefaultCube(), Torus(1.8, 1, 32, 16), Gimbal()} {
		if err := m.Validate(); err != nil {
			t.Errorf("%s: %v", m.Name, err)
		}
		if !m.Transform.ApproxEqual(math3d.IdentityTransform, 0) {
			t.Errorf("%s: transform is not identity", m.Name)
		}
	}
}

func TestValidateReportsFace(t *testing.T) {
	m := DefaultCube()
	m.Faces[3].Indices[1] = 99
	err := m.Validate()
	if !errors.Is(err, ErrFaceIndex) {
		t.Fatalf("err = %v, want ErrFaceIndex", err)
	}
}

func TestTorusShape(t *testing.T) {
	m := Torus(2, 0.5, 12, 6)
	if m.VertexCount() != 72 || m.FaceCount() != 72 {
		t.Fatalf("counts = %d, %d, want 72, 72", m.VertexCount(), m.FaceCount())
	}
	for _, v := range m.Vertices {
		ring := math.Hypot(v.X, v.Z) - 2
		if d := math.Hypot(ring, v.Y); math.Abs(d-0.5) > 1e-9 {
			t.Fatalf("vertex %v is %v from the tube centre, want 0.5", v, d)
		}
	}
	lo, hi := m.Bounds()
	if !lo.ApproxEqual(math3d.V3(-2.5, -0.5, -2.5), 0.1) || !hi.ApproxEqual(math3d.V3(2.5, 0.5, 2.5), 0.1) {
		t.Errorf("bounds = %v..%v", lo, hi)
	}
}

func TestCubeBounds(t *testing.T) {
	m := DefaultCube()
	if m.Size() != math3d.V3(2, 2, 2) || m.Center() != (math3d.Vec3{}) {
		t.Errorf("size %v center %v", m.Size(), m.Center())
	}

	m.WithTransform(math3d.Translation(math3d.V3(0, 0, 10)).Compose(math3d.UniformScaling(3)))
	c, r := m.BoundingSphere(m.Transform)
	if !c.ApproxEqual(math3d.V3(0, 0, 10), 1e-9) {
		t.Errorf("sphere centre = %v", c)
	}
	if want := 3 * math.Sqrt(3); math.Abs(r-want) > 1e-9 {
		t.Errorf("sphere radius = %v, want %v", r, want)
	}
}

func TestClone(t *testing.T) {
	m := DefaultCube()
	c := m.Clone()
	c.Vertices[0] = math3d.V3(9, 9, 9)
	c.Faces[0].Indices[0] = 7
	if m.Vertices[0] == c.Vertices[0] || m.Faces[0].Indices[0] == 7 {
		t.Error("Clone shares storage with the original")
	}
}
