// Package models provides meshes for the 3D viewport: vertices, index faces
// and a pose, plus built-in shapes and a glTF loader.
package models

import (
	"errors"
	"fmt"

	"github.com/taigrr/gemini/pkg/math3d"
	"github.com/taigrr/gemini/pkg/render"
)

// ErrFaceIndex is returned when a face refers to a vertex that does not
// exist.
var ErrFaceIndex = errors.New("face vertex index out of range")

// Face is a polygon given as indices into its mesh's vertex list. Faces
// with two indices are edges and only show in wireframe mode. Indices run
// counter-clockwise when the face is seen from outside the mesh.
type Face struct {
	Indices []int
	Fill    render.ColChar
}

// NewFace creates a Face.
func NewFace(indices []int, fill render.ColChar) Face {
	return Face{Indices: indices, Fill: fill}
}

// IndexInto returns the values the face's indices point at.
func IndexInto[T any](f Face, values []T) ([]T, error) {
	out := make([]T, len(f.Indices))
	for i, idx := range f.Indices {
		if idx < 0 || idx >= len(values) {
			return nil, fmt.Errorf("index %d with %d vertices: %w", idx, len(values), ErrFaceIndex)
		}
		out[i] = values[idx]
	}
	return out, nil
}

// MustIndexInto is IndexInto that panics on a bad index.
func MustIndexInto[T any](f Face, values []T) []T {
	out, err := IndexInto(f, values)
	if err != nil {
		panic(err)
	}
	return out
}

// Mesh is a 3D object in its own model space, placed in the world by
// Transform.
type Mesh struct {
	Name      string
	Transform math3d.Transform
	Vertices  []math3d.Vec3
	Faces     []Face
}

// NewMesh creates a mesh at the origin.
func NewMesh(vertices []math3d.Vec3, faces []Face) *Mesh {
	return &Mesh{
		Transform: math3d.IdentityTransform,
		Vertices:  vertices,
		Faces:     faces,
	}
}

// WithTransform sets the pose and returns m.
func (m *Mesh) WithTransform(t math3d.Transform) *Mesh {
	m.Transform = t
	return m
}

// WithName sets the name and returns m.
func (m *Mesh) WithName(name string) *Mesh {
	m.Name = name
	return m
}

// Validate checks every face index against the vertex list.
func (m *Mesh) Validate() error {
	for i, f := range m.Faces {
		if _, err := IndexInto(f, m.Vertices); err != nil {
			return fmt.Errorf("mesh %q face %d: %w", m.Name, i, err)
		}
	}
	return nil
}

// Bounds returns the model-space axis-aligned bounding box.
func (m *Mesh) Bounds() (lo, hi math3d.Vec3) {
	if len(m.Vertices) == 0 {
		return math3d.Vec3{}, math3d.Vec3{}
	}
	lo, hi = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		lo = lo.Min(v)
		hi = hi.Max(v)
	}
	return lo, hi
}

// Center returns the middle of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	lo, hi := m.Bounds()
	return lo.Add(hi).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	lo, hi := m.Bounds()
	return hi.Sub(lo)
}

// BoundingSphere returns a sphere containing every vertex after t. Pass
// m.Transform for world space.
func (m *Mesh) BoundingSphere(t math3d.Transform) (center math3d.Vec3, radius float64) {
	local := m.Center()
	for _, v := range m.Vertices {
		radius = max(radius, v.Sub(local).Len())
	}
	// scale the radius by the largest axis stretch
	var stretch float64
	for _, axis := range []math3d.Vec3{math3d.UnitX, math3d.UnitY, math3d.UnitZ} {
		stretch = max(stretch, t.ApplyDirection(axis).Len())
	}
	return t.Apply(local), radius * stretch
}

// Normalize moves the mesh's vertices so its bounding box is centred on the
// origin and its largest dimension is size.
func (m *Mesh) Normalize(size float64) {
	extent := m.Size()
	largest := max(extent.X, extent.Y, extent.Z)
	if largest == 0 {
		return
	}
	center := m.Center()
	scale := size / largest
	for i, v := range m.Vertices {
		m.Vertices[i] = v.Sub(center).Scale(scale)
	}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Transform: m.Transform,
		Vertices:  make([]math3d.Vec3, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
	}
	copy(clone.Vertices, m.Vertices)
	for i, f := range m.Faces {
		clone.Faces[i] = Face{Indices: append([]int(nil), f.Indices...), Fill: f.Fill}
	}
	return clone
}
