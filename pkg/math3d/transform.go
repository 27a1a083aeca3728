package math3d

// Transform is an affine (or projective) 3D transform. The zero value is not
// usable; start from IdentityTransform or one of the constructors.
//
// Transforms only change through composition, so repeated relative rotations
// accumulate in the matrix rather than in separate angle fields.
type Transform struct {
	m Mat4
}

// IdentityTransform leaves every point unchanged.
var IdentityTransform = Transform{m: Identity()}

// FromMatrix wraps a raw matrix.
func FromMatrix(m Mat4) Transform {
	return Transform{m: m}
}

// Translation returns a transform that moves points by v.
func Translation(v Vec3) Transform {
	return Transform{m: TranslateMat(v)}
}

// Scaling returns a transform that scales points by v about the origin.
func Scaling(v Vec3) Transform {
	return Transform{m: ScaleMat(v)}
}

// UniformScaling scales all three axes by s.
func UniformScaling(s float64) Transform {
	return Scaling(Vec3{s, s, s})
}

// RotationX returns a rotation of angle radians about the X axis.
func RotationX(angle float64) Transform {
	return Transform{m: RotateXMat(angle)}
}

// RotationY returns a rotation of angle radians about the Y axis.
func RotationY(angle float64) Transform {
	return Transform{m: RotateYMat(angle)}
}

// RotationZ returns a rotation of angle radians about the Z axis.
func RotationZ(angle float64) Transform {
	return Transform{m: RotateZMat(angle)}
}

// RotationAxis returns a rotation of angle radians about axis.
func RotationAxis(axis Vec3, angle float64) Transform {
	return Transform{m: RotateAxisMat(axis, angle)}
}

// TranslationRotation builds translate * rotX * rotY * rotZ, so points are
// rotated about Z, then Y, then X, then moved by translation.
func TranslationRotation(translation, rotation Vec3) Transform {
	return Translation(translation).
		Compose(RotationX(rotation.X)).
		Compose(RotationY(rotation.Y)).
		Compose(RotationZ(rotation.Z))
}

// LookAt returns a camera transform mapping world space into the space of
// an eye at eye looking at target, with up as the vertical hint.
func LookAt(eye, target, up Vec3) Transform {
	return Transform{m: LookAtMat(eye, target, up)}
}

// Perspective returns a projection for a camera looking down +Z.
// fovy is in radians.
func Perspective(fovy, aspect, near float64) Transform {
	return Transform{m: PerspectiveMat(fovy, aspect, near)}
}

// Compose returns t * other: other is applied first, then t.
func (t Transform) Compose(other Transform) Transform {
	return Transform{m: t.m.Mul(other.m)}
}

// Apply transforms a point.
func (t Transform) Apply(p Vec3) Vec3 {
	return t.m.MulPoint(p)
}

// ApplyDirection transforms a direction, ignoring translation.
func (t Transform) ApplyDirection(d Vec3) Vec3 {
	return t.m.MulDir(d)
}

// Position returns the point the origin maps to.
func (t Transform) Position() Vec3 {
	return Vec3{t.m[12], t.m[13], t.m[14]}
}

// Inverse returns the inverse of an affine transform. Singular transforms
// invert to the identity.
func (t Transform) Inverse() Transform {
	return Transform{m: t.m.affineInverse()}
}

// Matrix returns the underlying matrix.
func (t Transform) Matrix() Mat4 {
	return t.m
}

// ApproxEqual reports whether every matrix element differs by at most eps.
func (t Transform) ApproxEqual(other Transform, eps float64) bool {
	for i := range t.m {
		d := t.m[i] - other.m[i]
		if d > eps || d < -eps {
			return false
		}
	}
	return true
}
