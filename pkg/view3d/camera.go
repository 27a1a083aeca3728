package view3d

import (
	"math"

	"github.com/taigrr/gemini/pkg/math3d"
)

// OrbitCamera circles a target point at a fixed distance. It produces the
// camera transform for a Viewport.
type OrbitCamera struct {
	Target   math3d.Vec3
	Distance float64
	// Yaw turns around the Y axis; zero looks along +Z.
	Yaw float64
	// Pitch raises the camera above the target.
	Pitch float64

	MinDistance float64
}

// maxPitch keeps the camera off the poles, where up is undefined.
const maxPitch = math.Pi/2 - 0.01

// NewOrbitCamera creates a camera distance units in front of target,
// looking straight at it.
func NewOrbitCamera(target math3d.Vec3, distance float64) *OrbitCamera {
	return &OrbitCamera{
		Target:      target,
		Distance:    distance,
		MinDistance: 0.5,
	}
}

// Forward returns the unit direction the camera looks in.
func (c *OrbitCamera) Forward() math3d.Vec3 {
	sy, cy := math.Sincos(c.Yaw)
	sp, cp := math.Sincos(c.Pitch)
	return math3d.V3(sy*cp, -sp, cy*cp)
}

// Right returns the camera's horizontal right direction.
func (c *OrbitCamera) Right() math3d.Vec3 {
	sy, cy := math.Sincos(c.Yaw)
	return math3d.V3(cy, 0, -sy)
}

// Position returns the eye in world space.
func (c *OrbitCamera) Position() math3d.Vec3 {
	return c.Target.Sub(c.Forward().Scale(c.Distance))
}

// Rotate adds to yaw and pitch, clamping pitch short of straight up or
// down.
func (c *OrbitCamera) Rotate(deltaYaw, deltaPitch float64) {
	c.Yaw = math.Mod(c.Yaw+deltaYaw, 2*math.Pi)
	c.Pitch = min(max(c.Pitch+deltaPitch, -maxPitch), maxPitch)
}

// Zoom multiplies the distance by factor, stopping at MinDistance.
func (c *OrbitCamera) Zoom(factor float64) {
	c.Distance = max(c.Distance*factor, c.MinDistance)
}

// Pan moves the target along the camera's right and world up.
func (c *OrbitCamera) Pan(right, up float64) {
	c.Target = c.Target.Add(c.Right().Scale(right)).Add(math3d.UnitY.Scale(up))
}

// Transform returns the world-to-camera transform.
func (c *OrbitCamera) Transform() math3d.Transform {
	return math3d.LookAt(c.Position(), c.Target, math3d.UnitY)
}
