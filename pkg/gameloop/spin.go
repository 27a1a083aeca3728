package gameloop

import (
	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/gemini/pkg/math3d"
)

// Spin is an angular velocity that coasts back to rest on a critically
// damped spring, so a push keeps a model turning for a moment and then
// settles without overshooting.
type Spin struct {
	// Velocity is in radians per frame.
	Velocity float64
	// Idle is the velocity the spring settles to, for models that keep
	// turning on their own.
	Idle float64

	spring harmonica.Spring
	accel  float64
}

// NewSpin creates a Spin updated fps times a second. Rates below one are
// treated as one.
func NewSpin(fps int, idle float64) *Spin {
	return &Spin{
		Velocity: idle,
		Idle:     idle,
		spring:   harmonica.NewSpring(harmonica.FPS(max(fps, 1)), 4.0, 1.0),
	}
}

// Push adds to the velocity.
func (s *Spin) Push(impulse float64) {
	s.Velocity += impulse
}

// Update returns this frame's rotation and eases the velocity toward
// Idle.
func (s *Spin) Update() float64 {
	delta := s.Velocity
	s.Velocity, s.accel = s.spring.Update(s.Velocity, s.accel, s.Idle)
	return delta
}

// Spin3 is a Spin per axis.
type Spin3 struct {
	Pitch, Yaw, Roll *Spin
}

// NewSpin3 creates a Spin3 with the given idle velocities.
func NewSpin3(fps int, idle math3d.Vec3) *Spin3 {
	return &Spin3{
		Pitch: NewSpin(fps, idle.X),
		Yaw:   NewSpin(fps, idle.Y),
		Roll:  NewSpin(fps, idle.Z),
	}
}

// Push adds an impulse per axis.
func (s *Spin3) Push(pitch, yaw, roll float64) {
	s.Pitch.Push(pitch)
	s.Yaw.Push(yaw)
	s.Roll.Push(roll)
}

// Update returns this frame's rotation as a transform to compose onto a
// mesh: t = t.Compose(spin.Update()).
func (s *Spin3) Update() math3d.Transform {
	return math3d.RotationX(s.Pitch.Update()).
		Compose(math3d.RotationY(s.Yaw.Update())).
		Compose(math3d.RotationZ(s.Roll.Update()))
}
