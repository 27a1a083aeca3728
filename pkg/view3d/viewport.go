// Package view3d draws meshes onto a canvas through a camera and a
// perspective projection, using the painter's algorithm for occlusion.
//
// Camera space is left-handed: +X right, +Y up, +Z away from the viewer.
// A face is front-facing when its vertices run counter-clockwise as the
// viewer sees them, which IsClockwise reports on canvas coordinates.
package view3d

import (
	"cmp"
	"context"
	"log/slog"
	"math"
	"slices"

	"github.com/taigrr/gemini/pkg/containers"
	"github.com/taigrr/gemini/pkg/math3d"
	"github.com/taigrr/gemini/pkg/models"
	"github.com/taigrr/gemini/pkg/primitives"
	"github.com/taigrr/gemini/pkg/render"
)

// Defaults for New.
const (
	DefaultCharacterWidthMultiplier = 2.0
	DefaultClippingDistance         = 0.3
)

// Viewport renders Objects as seen through CameraTransform. It keeps no
// state between frames; every DrawTo projects from scratch.
type Viewport struct {
	// CameraTransform maps world space into camera space.
	CameraTransform math3d.Transform
	// FOV is the vertical field of view in degrees.
	FOV float64
	// CanvasCentre is where the camera's axis lands on the canvas.
	CanvasCentre render.Vec2
	// CharacterWidthMultiplier stretches X to make up for cells being
	// taller than they are wide.
	CharacterWidthMultiplier float64
	// ClippingDistance is the near plane. Faces with any vertex at or
	// closer than this are dropped whole.
	ClippingDistance float64
	// FrustumCulling skips meshes whose bounding sphere lies entirely
	// off the canvas. Leave it off when drawing to a wrapping canvas.
	FrustumCulling bool

	Objects     []*models.Mesh
	DisplayMode DisplayMode
}

// New creates a Viewport drawing solid faces.
func New(camera math3d.Transform, fov float64, centre render.Vec2) *Viewport {
	return &Viewport{
		CameraTransform:          camera,
		FOV:                      fov,
		CanvasCentre:             centre,
		CharacterWidthMultiplier: DefaultCharacterWidthMultiplier,
		ClippingDistance:         DefaultClippingDistance,
		DisplayMode:              Solid{},
	}
}

// Projection returns the perspective transform for the current FOV and
// clipping distance. The aspect ratio is always 1; the canvas mapping
// handles cell shape.
func (v *Viewport) Projection() math3d.Transform {
	return math3d.Perspective(v.FOV*math.Pi/180, 1, v.ClippingDistance)
}

// scale is the number of cells per projected unit.
func (v *Viewport) scale() float64 {
	return float64(min(v.CanvasCentre.X, v.CanvasCentre.Y))
}

// ToCanvas maps a projected point onto the canvas, flipping Y so up is up.
func (v *Viewport) ToCanvas(projected math3d.Vec3) render.Vec2 {
	size := v.scale()
	return render.Vec2{
		X: int(projected.X*v.CharacterWidthMultiplier*size + float64(v.CanvasCentre.X)),
		Y: int(-projected.Y*size + float64(v.CanvasCentre.Y)),
	}
}

// ProjectPoint maps a world-space point onto the canvas.
func (v *Viewport) ProjectPoint(world math3d.Vec3) render.Vec2 {
	return v.ToCanvas(v.Projection().Apply(v.CameraTransform.Apply(world)))
}

// projectFaces returns every face in front of the near plane, optionally
// dropping back faces and sorting farthest first. It panics if a face
// indexes past its mesh's vertices.
func (v *Viewport) projectFaces(sortFaces, cull bool) []projectedFace {
	proj := v.Projection()
	var frustum Frustum
	if v.FrustumCulling {
		frustum = v.Frustum()
	}

	var faces []projectedFace
	for _, obj := range v.Objects {
		toCamera := v.CameraTransform.Compose(obj.Transform)
		if v.FrustumCulling && !frustum.visible(obj, v.CameraTransform) {
			continue
		}

		camera := make([]math3d.Vec3, len(obj.Vertices))
		screen := make([]render.Vec2, len(obj.Vertices))
		for i, vert := range obj.Vertices {
			camera[i] = toCamera.Apply(vert)
			screen[i] = v.ToCanvas(proj.Apply(camera[i]))
		}

		for _, f := range obj.Faces {
			cam := models.MustIndexInto(f, camera)
			if slices.ContainsFunc(cam, func(p math3d.Vec3) bool { return p.Z <= v.ClippingDistance }) {
				continue
			}
			scr := models.MustIndexInto(f, screen)
			if cull && !IsClockwise(scr) {
				continue
			}
			faces = append(faces, projectedFace{camera: cam, screen: scr, fill: f.Fill})
		}
	}

	if sortFaces {
		// millimetre buckets keep nearly coplanar faces in mesh order
		slices.SortStableFunc(faces, func(a, b projectedFace) int {
			return cmp.Compare(math.Round(b.depth()*1000), math.Round(a.depth()*1000))
		})
	}
	return faces
}

// DrawTo renders every object onto c according to DisplayMode.
func (v *Viewport) DrawTo(c render.Canvas) {
	mode := v.DisplayMode
	if mode == nil {
		mode = Solid{}
	}

	var faces []projectedFace
	switch m := mode.(type) {
	case Wireframe:
		faces = v.projectFaces(false, m.BackfaceCulling)
		for _, f := range faces {
			drawEdges(c, f)
		}
	case Solid:
		faces = v.projectFaces(true, true)
		for _, f := range faces {
			primitives.Polygon{Vertices: f.screen, Fill: f.fill}.DrawTo(c)
		}
	case Illuminated:
		faces = v.projectFaces(true, true)
		for _, f := range faces {
			fill := f.fill
			if n, ok := f.normal(); ok {
				fill = fill.WithChar(BrightnessChar(TotalIntensity(m.Lights, f.centroid(), n)))
			}
			primitives.Polygon{Vertices: f.screen, Fill: fill}.DrawTo(c)
		}
	}

	if log := render.Logger(); log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("viewport frame", "mode", mode.String(), "objects", len(v.Objects), "faces", len(faces))
	}
}

// drawEdges draws the closed outline of a face. A two-vertex face is a
// single edge.
func drawEdges(c render.Canvas, f projectedFace) {
	n := len(f.screen)
	if n == 2 {
		primitives.Line{From: f.screen[0], To: f.screen[1], Fill: f.fill}.DrawTo(c)
		return
	}
	for i := range n {
		primitives.Line{From: f.screen[i], To: f.screen[(i+1)%n], Fill: f.fill}.DrawTo(c)
	}
}

// Render draws the scene into a new PixelContainer.
func (v *Viewport) Render() *containers.PixelContainer {
	return containers.Capture(v)
}
