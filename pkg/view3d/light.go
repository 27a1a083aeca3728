package view3d

import (
	"math"

	"github.com/taigrr/gemini/pkg/math3d"
)

// BrightnessChars is the glyph ramp used by Illuminated mode, from darkest
// to brightest.
const BrightnessChars = ".,-~:;=!*#$@"

var brightnessRamp = []rune(BrightnessChars)

// BrightnessChar maps a summed light intensity to a ramp glyph. Intensities
// of 1 and above give the brightest glyph.
func BrightnessChar(intensity float64) rune {
	i := int(math.Round(intensity * float64(len(brightnessRamp))))
	return brightnessRamp[min(max(i, 0), len(brightnessRamp)-1)]
}

// LightKind selects how a Light contributes.
type LightKind int

const (
	// LightAmbient lights every face equally.
	LightAmbient LightKind = iota
	// LightDirectional shines along Direction from infinitely far away.
	LightDirectional
	// LightPoint shines outward from Position.
	LightPoint
)

func (k LightKind) String() string {
	switch k {
	case LightAmbient:
		return "ambient"
	case LightDirectional:
		return "directional"
	case LightPoint:
		return "point"
	}
	return "unknown"
}

// Light is a light source. Direction and Position are in camera space, the
// same space face normals are computed in.
type Light struct {
	Kind      LightKind
	Intensity float64
	// Direction is the way the light travels, for directional lights.
	Direction math3d.Vec3
	// Position is the source, for point lights.
	Position math3d.Vec3
}

// Ambient returns a light that adds intensity to every face.
func Ambient(intensity float64) Light {
	return Light{Kind: LightAmbient, Intensity: intensity}
}

// Directional returns a light travelling along direction.
func Directional(intensity float64, direction math3d.Vec3) Light {
	return Light{Kind: LightDirectional, Intensity: intensity, Direction: direction}
}

// Point returns a light radiating from position.
func Point(intensity float64, position math3d.Vec3) Light {
	return Light{Kind: LightPoint, Intensity: intensity, Position: position}
}

// IntensityAt returns the light reaching a face centred at point with the
// given outward unit normal. A face turned straight toward the light gets
// the full intensity; one turned away gets none.
func (l Light) IntensityAt(point, normal math3d.Vec3) float64 {
	switch l.Kind {
	case LightDirectional:
		return l.Intensity * max(0, l.Direction.Normalize().Dot(normal.Negate()))
	case LightPoint:
		dir := point.Sub(l.Position).Normalize()
		return l.Intensity * max(0, dir.Dot(normal.Negate()))
	default:
		return l.Intensity
	}
}

// TotalIntensity sums every light's contribution.
func TotalIntensity(lights []Light, point, normal math3d.Vec3) float64 {
	var sum float64
	for _, l := range lights {
		sum += l.IntensityAt(point, normal)
	}
	return sum
}
