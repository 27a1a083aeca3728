package math3d

import (
	"testing"
)

func BenchmarkTransformCompose(b *testing.B) {
	t1 := Translation(V3(1, 2, 3))
	t2 := RotationY(0.5)

	for b.Loop() {
		_ = t1.Compose(t2)
	}
}

func BenchmarkTransformApply(b *testing.B) {
	t := Translation(V3(1, 2, 3)).Compose(RotationY(0.5))
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = t.Apply(v)
	}
}

func BenchmarkProjectionPipeline(b *testing.B) {
	model := TranslationRotation(V3(0, 0, 5), V3(0.3, 0.2, 0.1))
	camera := LookAt(V3(0, 1, -4), V3(0, 0, 0), UnitY)
	proj := Perspective(1.4, 1, 0.3)
	v := V3(1, -1, 1)

	for b.Loop() {
		_ = proj.Apply(camera.Apply(model.Apply(v)))
	}
}

func BenchmarkVec3Normalize(b *testing.B) {
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = v.Normalize()
	}
}
