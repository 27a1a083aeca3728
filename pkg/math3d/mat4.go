package math3d

import "math"

// Mat4 is a 4x4 matrix in column-major order.
//
//	| 0  4  8  12 |
//	| 1  5  9  13 |
//	| 2  6  10 14 |
//	| 3  7  11 15 |
//
// Columns 0-2 hold the basis vectors, column 3 the translation.
type Mat4 [16]float64

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// TranslateMat returns a translation matrix.
func TranslateMat(v Vec3) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = v.X, v.Y, v.Z
	return m
}

// ScaleMat returns a scaling matrix.
func ScaleMat(v Vec3) Mat4 {
	m := Identity()
	m[0], m[5], m[10] = v.X, v.Y, v.Z
	return m
}

// RotateXMat returns a rotation of angle radians about the X axis.
func RotateXMat(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	m := Identity()
	m[5], m[6] = c, s
	m[9], m[10] = -s, c
	return m
}

// RotateYMat returns a rotation of angle radians about the Y axis.
func RotateYMat(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	m := Identity()
	m[0], m[2] = c, -s
	m[8], m[10] = s, c
	return m
}

// RotateZMat returns a rotation of angle radians about the Z axis.
func RotateZMat(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	m := Identity()
	m[0], m[1] = c, s
	m[4], m[5] = -s, c
	return m
}

// RotateAxisMat returns a rotation of angle radians about an arbitrary axis.
func RotateAxisMat(axis Vec3, angle float64) Mat4 {
	a := axis.Normalize()
	s, c := math.Sincos(angle)
	t := 1 - c
	return Mat4{
		t*a.X*a.X + c, t*a.X*a.Y + s*a.Z, t*a.X*a.Z - s*a.Y, 0,
		t*a.X*a.Y - s*a.Z, t*a.Y*a.Y + c, t*a.Y*a.Z + s*a.X, 0,
		t*a.X*a.Z + s*a.Y, t*a.Y*a.Z - s*a.X, t*a.Z*a.Z + c, 0,
		0, 0, 0, 1,
	}
}

// LookAtMat returns a view matrix for an eye at eye looking at target.
// Camera space has +Z towards target and +Y along up.
func LookAtMat(eye, target, up Vec3) Mat4 {
	f := target.Sub(eye).Normalize()
	r := up.Cross(f).Normalize()
	u := f.Cross(r)
	return Mat4{
		r.X, u.X, f.X, 0,
		r.Y, u.Y, f.Y, 0,
		r.Z, u.Z, f.Z, 0,
		-r.Dot(eye), -u.Dot(eye), -f.Dot(eye), 1,
	}
}

// PerspectiveMat returns an infinite-far perspective projection for a camera
// looking down +Z. fovy is in radians. Points at z == near map to depth 0.
func PerspectiveMat(fovy, aspect, near float64) Mat4 {
	f := 1 / math.Tan(fovy/2)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, 1, 1,
		0, 0, -near, 0,
	}
}

// Mul returns a * b. Applied to a vector, b acts first.
func (a Mat4) Mul(b Mat4) Mat4 {
	var m Mat4
	for col := range 4 {
		for row := range 4 {
			var sum float64
			for k := range 4 {
				sum += a[row+k*4] * b[k+col*4]
			}
			m[row+col*4] = sum
		}
	}
	return m
}

// MulPoint transforms p with w = 1 and divides by the resulting w.
// A zero w is left undivided.
func (m Mat4) MulPoint(p Vec3) Vec3 {
	x := m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12]
	y := m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13]
	z := m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14]
	w := m[3]*p.X + m[7]*p.Y + m[11]*p.Z + m[15]
	if w == 0 || w == 1 {
		return Vec3{x, y, z}
	}
	return Vec3{x / w, y / w, z / w}
}

// MulDir transforms d with w = 0, ignoring translation.
func (m Mat4) MulDir(d Vec3) Vec3 {
	return Vec3{
		m[0]*d.X + m[4]*d.Y + m[8]*d.Z,
		m[1]*d.X + m[5]*d.Y + m[9]*d.Z,
		m[2]*d.X + m[6]*d.Y + m[10]*d.Z,
	}
}

// At returns the element at (row, col).
func (m Mat4) At(row, col int) float64 {
	return m[row+col*4]
}

// affineInverse inverts the upper 3x3 block and the translation. The bottom
// row is assumed to be (0, 0, 0, 1). A singular block yields the identity.
func (m Mat4) affineInverse() Mat4 {
	a, b, c := m[0], m[4], m[8]
	d, e, f := m[1], m[5], m[9]
	g, h, i := m[2], m[6], m[10]

	c00 := e*i - f*h
	c01 := -(d*i - f*g)
	c02 := d*h - e*g
	det := a*c00 + b*c01 + c*c02
	if det == 0 {
		return Identity()
	}
	inv := 1 / det

	var r Mat4
	r[0] = c00 * inv
	r[1] = c01 * inv
	r[2] = c02 * inv
	r[4] = -(b*i - c*h) * inv
	r[5] = (a*i - c*g) * inv
	r[6] = -(a*h - b*g) * inv
	r[8] = (b*f - c*e) * inv
	r[9] = -(a*f - c*d) * inv
	r[10] = (a*e - b*d) * inv
	r[15] = 1

	t := r.MulDir(Vec3{m[12], m[13], m[14]})
	r[12], r[13], r[14] = -t.X, -t.Y, -t.Z
	return r
}
