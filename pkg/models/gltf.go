package models

import (
	"encoding/binary"
	"fmt"
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/gemini/pkg/math3d"
	"github.com/taigrr/gemini/pkg/render"
)

// GLTFLoader converts glTF/GLB documents into a single Mesh.
type GLTFLoader struct {
	// Fill is used for faces whose primitive has no base colour.
	Fill render.ColChar
	// UseMaterials colours faces with their material's base colour.
	UseMaterials bool
	// Size, when positive, recentres the mesh and scales its largest
	// dimension to Size.
	Size float64
}

// NewGLTFLoader creates a loader that keeps material colours and fits the
// model into a 2-unit box, matching DefaultCube.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		Fill:         render.Solid,
		UseMaterials: true,
		Size:         2,
	}
}

// LoadGLB loads a binary glTF (.glb) file with the default loader.
func LoadGLB(path string) (*Mesh, error) {
	return NewGLTFLoader().Load(path)
}

// Load reads a glTF or GLB file.
func (l *GLTFLoader) Load(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return l.FromDocument(doc, filepath.Base(path))
}

// FromDocument merges every triangle primitive in doc into one mesh.
//
// glTF is right-handed with counter-clockwise front faces. Z is negated to
// move into the left-handed engine frame and each triangle's winding is
// reversed to match.
func (l *GLTFLoader) FromDocument(doc *gltf.Document, name string) (*Mesh, error) {
	mesh := NewMesh(nil, nil).WithName(name)
	for _, m := range doc.Meshes {
		if err := l.processMesh(doc, m, mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}
	if err := mesh.Validate(); err != nil {
		return nil, err
	}
	if l.Size > 0 {
		mesh.Normalize(l.Size)
	}
	render.Logger().Debug("loaded gltf", "name", name, "vertices", mesh.VertexCount(), "faces", mesh.FaceCount())
	return mesh, nil
}

func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	for pi, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			render.Logger().Warn("skipping non-triangle primitive", "mesh", m.Name, "primitive", pi, "mode", prim.Mode)
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			render.Logger().Warn("skipping primitive without positions", "mesh", m.Name, "primitive", pi)
			continue
		}

		positions, err := readVec3Accessor(doc, posIdx)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		base := len(mesh.Vertices)
		for _, p := range positions {
			mesh.Vertices = append(mesh.Vertices, math3d.V3(p.X, p.Y, -p.Z))
		}

		var indices []int
		if prim.Indices != nil {
			indices, err = readIndices(doc, *prim.Indices)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
		} else {
			indices = make([]int, len(positions))
			for i := range indices {
				indices[i] = i
			}
		}

		fill := l.materialFill(doc, prim.Material)
		for i := 0; i+2 < len(indices); i += 3 {
			mesh.Faces = append(mesh.Faces, Face{
				Indices: []int{base + indices[i], base + indices[i+2], base + indices[i+1]},
				Fill:    fill,
			})
		}
	}
	return nil
}

// materialFill returns the loader's fill coloured with the material's base
// colour, if it has one.
func (l *GLTFLoader) materialFill(doc *gltf.Document, material *int) render.ColChar {
	if !l.UseMaterials || material == nil || *material < 0 || *material >= len(doc.Materials) {
		return l.Fill
	}
	pbr := doc.Materials[*material].PBRMetallicRoughness
	if pbr == nil || pbr.BaseColorFactor == nil {
		return l.Fill
	}
	c := pbr.BaseColorFactor
	return l.Fill.WithRGB(unitToByte(c[0]), unitToByte(c[1]), unitToByte(c[2]))
}

func unitToByte(f float64) uint8 {
	return uint8(math.Round(min(max(f, 0), 1) * 255))
}

func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Vec3, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d does not exist", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 || accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float VEC3, got %v of %v", accessor.Type, accessor.ComponentType)
	}

	data, stride, err := accessorBytes(doc, accessor, 12)
	if err != nil {
		return nil, err
	}

	out := make([]math3d.Vec3, accessor.Count)
	for i := range out {
		b := data[i*stride:]
		out[i] = math3d.V3(readFloat32(b), readFloat32(b[4:]), readFloat32(b[8:]))
	}
	return out, nil
}

func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d does not exist", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR indices, got %v", accessor.Type)
	}

	var size int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, fmt.Errorf("unexpected index type: %v", accessor.ComponentType)
	}

	data, stride, err := accessorBytes(doc, accessor, size)
	if err != nil {
		return nil, err
	}

	out := make([]int, accessor.Count)
	for i := range out {
		b := data[i*stride:]
		switch size {
		case 1:
			out[i] = int(b[0])
		case 2:
			out[i] = int(binary.LittleEndian.Uint16(b))
		case 4:
			out[i] = int(binary.LittleEndian.Uint32(b))
		}
	}
	return out, nil
}

// accessorBytes returns the accessor's bytes starting at its first element
// and the stride between elements. Only embedded buffers are supported.
func accessorBytes(doc *gltf.Document, accessor *gltf.Accessor, elemSize int) ([]byte, int, error) {
	if accessor.BufferView == nil {
		return nil, 0, fmt.Errorf("accessor has no buffer view")
	}
	if *accessor.BufferView < 0 || *accessor.BufferView >= len(doc.BufferViews) {
		return nil, 0, fmt.Errorf("buffer view %d does not exist", *accessor.BufferView)
	}
	view := doc.BufferViews[*accessor.BufferView]
	if view.Buffer < 0 || view.Buffer >= len(doc.Buffers) {
		return nil, 0, fmt.Errorf("buffer %d does not exist", view.Buffer)
	}
	buf := doc.Buffers[view.Buffer]
	if buf.Data == nil {
		return nil, 0, fmt.Errorf("buffer %d has no data", view.Buffer)
	}

	stride := view.ByteStride
	if stride == 0 {
		stride = elemSize
	}
	start := view.ByteOffset + accessor.ByteOffset
	if accessor.Count > 0 {
		end := start + (accessor.Count-1)*stride + elemSize
		if end > len(buf.Data) {
			return nil, 0, fmt.Errorf("accessor reads past end of buffer (%d > %d)", end, len(buf.Data))
		}
	}
	return buf.Data[start:], stride, nil
}

func readFloat32(b []byte) float64 {
	return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
}
