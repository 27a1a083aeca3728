package view3d

import (
	"math"
	"testing"

	"github.com/taigrr/gemini/pkg/math3d"
)

func TestBrightnessChar(t *testing.T) {
	tests := []struct {
		intensity float64
		want      rune
	}{
		{-1, '.'},
		{0, '.'},
		{0.04, '.'},
		{0.5, '='},
		{0.96, '@'},
		{1, '@'},
		{3, '@'},
	}
	for _, tt := range tests {
		if got := BrightnessChar(tt.intensity); got != tt.want {
			t.Errorf("BrightnessChar(%v) = %q, want %q", tt.intensity, got, tt.want)
		}
	}
}

func TestLightIntensity(t *testing.T) {
	// outward normal facing the camera
	normal := math3d.V3(0, 0, -1)
	point := math3d.V3(0, 0, 5)

	tests := []struct {
		name  string
		light Light
		want  float64
	}{
		{"ambient", Ambient(0.25), 0.25},
		{"directional head on", Directional(0.8, math3d.V3(0, 0, 3)), 0.8},
		{"directional at 60 degrees", Directional(1, math3d.V3(math.Sin(math.Pi/3), 0, math.Cos(math.Pi/3))), 0.5},
		{"directional grazing", Directional(1, math3d.V3(1, 0, 0)), 0},
		{"directional from behind", Directional(1, math3d.V3(0, 0, -1)), 0},
		{"point in front", Point(0.6, math3d.V3(0, 0, 0)), 0.6},
		{"point behind", Point(0.6, math3d.V3(0, 0, 10)), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.light.IntensityAt(point, normal); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("IntensityAt = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTotalIntensity(t *testing.T) {
	lights := []Light{Ambient(0.2), Directional(0.5, math3d.UnitZ), Directional(0.5, math3d.UnitX)}
	got := TotalIntensity(lights, math3d.V3(0, 0, 5), math3d.V3(0, 0, -1))
	if math.Abs(got-0.7) > 1e-9 {
		t.Errorf("TotalIntensity = %v, want 0.7", got)
	}
}

func TestLightKindString(t *testing.T) {
	if LightPoint.String() != "point" || LightKind(9).String() != "unknown" {
		t.Error("unexpected LightKind names")
	}
}
