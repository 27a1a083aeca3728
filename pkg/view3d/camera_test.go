package view3d

import (
	"math"
	"testing"

	"github.com/taigrr/gemini/pkg/math3d"
)

func TestOrbitCameraDefault(t *testing.T) {
	c := NewOrbitCamera(math3d.V3(1, 2, 3), 5)
	if !c.Position().ApproxEqual(math3d.V3(1, 2, -2), 1e-9) {
		t.Errorf("Position = %v, want (1, 2, -2)", c.Position())
	}
	got := c.Transform().Apply(c.Target)
	if !got.ApproxEqual(math3d.V3(0, 0, 5), 1e-9) {
		t.Errorf("target in camera space = %v, want (0, 0, 5)", got)
	}
}

func TestOrbitCameraRotate(t *testing.T) {
	c := NewOrbitCamera(math3d.Vec3{}, 4)
	c.Rotate(math.Pi/2, 0)
	if !c.Position().ApproxEqual(math3d.V3(-4, 0, 0), 1e-9) {
		t.Errorf("after quarter turn Position = %v, want (-4, 0, 0)", c.Position())
	}

	c.Rotate(0, 10)
	if c.Pitch != maxPitch {
		t.Errorf("Pitch = %v, want clamp at %v", c.Pitch, maxPitch)
	}
	if c.Position().Y <= 0 {
		t.Errorf("positive pitch should lift the camera, got %v", c.Position())
	}

	// the target stays dead ahead however the camera turns
	got := c.Transform().Apply(c.Target)
	if !got.ApproxEqual(math3d.V3(0, 0, 4), 1e-9) {
		t.Errorf("target in camera space = %v, want (0, 0, 4)", got)
	}
}

func TestOrbitCameraZoomPan(t *testing.T) {
	c := NewOrbitCamera(math3d.Vec3{}, 4)
	c.Zoom(0.5)
	if c.Distance != 2 {
		t.Errorf("Distance = %v, want 2", c.Distance)
	}
	c.Zoom(0.01)
	if c.Distance != c.MinDistance {
		t.Errorf("Distance = %v, want MinDistance", c.Distance)
	}

	c.Pan(1, 2)
	if !c.Target.ApproxEqual(math3d.V3(1, 2, 0), 1e-9) {
		t.Errorf("Target = %v, want (1, 2, 0)", c.Target)
	}
}
