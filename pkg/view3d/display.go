package view3d

import (
	"fmt"

	"github.com/taigrr/gemini/pkg/math3d"
)

// DisplayMode selects how a Viewport draws faces. It is one of Wireframe,
// Solid or Illuminated.
type DisplayMode interface {
	fmt.Stringer
	displayMode()
}

// Wireframe draws face edges only, without depth sorting.
type Wireframe struct {
	BackfaceCulling bool
}

// Solid fills faces with their own fill, farthest first.
type Solid struct{}

// Illuminated fills faces farthest first with a glyph picked from
// BrightnessChars by the light reaching each face, keeping the face's
// colour.
type Illuminated struct {
	Lights []Light
}

func (Wireframe) displayMode()   {}
func (Solid) displayMode()       {}
func (Illuminated) displayMode() {}

func (w Wireframe) String() string {
	if w.BackfaceCulling {
		return "wireframe(culled)"
	}
	return "wireframe"
}

func (Solid) String() string { return "solid" }

func (i Illuminated) String() string {
	return fmt.Sprintf("illuminated(%d lights)", len(i.Lights))
}

// DefaultLights is a dim ambient fill plus a key light shining away from
// the camera and down to the right.
func DefaultLights() []Light {
	return []Light{
		Ambient(0.3),
		Directional(0.7, math3d.V3(1, -1, 1)),
	}
}

// ParseDisplayMode accepts "wireframe", "wireframe-culled", "solid" and
// "illuminated". Illuminated uses DefaultLights.
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch s {
	case "wireframe", "wire":
		return Wireframe{}, nil
	case "wireframe-culled", "culled":
		return Wireframe{BackfaceCulling: true}, nil
	case "solid":
		return Solid{}, nil
	case "illuminated", "lit":
		return Illuminated{Lights: DefaultLights()}, nil
	}
	return nil, fmt.Errorf("unknown display mode %q", s)
}
