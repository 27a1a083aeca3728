package main

import (
	"math"
	"math/rand/v2"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/gemini/pkg/gameloop"
	"github.com/taigrr/gemini/pkg/math3d"
	"github.com/taigrr/gemini/pkg/models"
	"github.com/taigrr/gemini/pkg/render"
	"github.com/taigrr/gemini/pkg/view3d"
)

// program is something a backend can run: it advances once per frame and
// paints itself onto a cleared view.
type program interface {
	update(dt time.Duration) error
	draw(v *render.View)
}

// keyHandler is implemented by programs that react to key presses.
type keyHandler interface {
	key(ev uv.KeyPressEvent)
}

const (
	torqueStrength = 0.08
	zoomStep       = 0.9
)

// scene is a set of meshes turning in front of an orbit camera.
type scene struct {
	camera   *view3d.OrbitCamera
	viewport *view3d.Viewport

	spins []*gameloop.Spin3
	start []math3d.Transform
	dist  float64
	pitch float64

	modes []view3d.DisplayMode
	mode  int
}

// sceneConfig describes a scene before the flags are applied.
type sceneConfig struct {
	meshes   []*models.Mesh
	mode     view3d.DisplayMode
	distance float64
	pitch    float64
	// spin is the idle angular velocity per axis, in radians per second.
	spin math3d.Vec3
}

func newScene(opts *options, cfg sceneConfig) (*scene, error) {
	mode, err := opts.displayMode(cfg.mode)
	if err != nil {
		return nil, err
	}

	camera := view3d.NewOrbitCamera(math3d.Vec3{}, cfg.distance)
	camera.Rotate(0, cfg.pitch)

	vp := view3d.New(camera.Transform(), opts.fov, render.Vec2{})
	vp.CharacterWidthMultiplier = opts.charWidth
	vp.ClippingDistance = opts.clip
	vp.Objects = cfg.meshes
	vp.DisplayMode = mode

	s := &scene{
		camera:   camera,
		viewport: vp,
		dist:     cfg.distance,
		pitch:    camera.Pitch,
		modes: []view3d.DisplayMode{
			view3d.Wireframe{},
			view3d.Wireframe{BackfaceCulling: true},
			view3d.Solid{},
			view3d.Illuminated{Lights: view3d.DefaultLights()},
		},
	}
	for i, m := range s.modes {
		if m.String() == mode.String() {
			s.mode = i
		}
	}

	fps := max(int(math.Round(opts.fps)), 1)
	idle := cfg.spin.Div(opts.fps)
	for _, m := range cfg.meshes {
		s.spins = append(s.spins, gameloop.NewSpin3(fps, idle))
		s.start = append(s.start, m.Transform)
	}
	return s, nil
}

// update turns every mesh by its spin. Spins are frame based, so dt is
// not used.
func (s *scene) update(time.Duration) error {
	for i, m := range s.viewport.Objects {
		m.Transform = m.Transform.Compose(s.spins[i].Update())
	}
	s.viewport.CameraTransform = s.camera.Transform()
	return nil
}

func (s *scene) draw(v *render.View) {
	s.viewport.CanvasCentre = v.Center()
	v.Draw(s.viewport)
}

func (s *scene) push(pitch, yaw, roll float64) {
	for _, spin := range s.spins {
		spin.Push(pitch, yaw, roll)
	}
}

func (s *scene) nextMode() {
	s.mode = (s.mode + 1) % len(s.modes)
	s.viewport.DisplayMode = s.modes[s.mode]
	render.Logger().Info("display mode", "mode", s.viewport.DisplayMode)
}

func (s *scene) reset() {
	for i, m := range s.viewport.Objects {
		m.Transform = s.start[i]
		spin := s.spins[i]
		spin.Pitch.Velocity, spin.Yaw.Velocity, spin.Roll.Velocity = spin.Pitch.Idle, spin.Yaw.Idle, spin.Roll.Idle
	}
	s.camera.Distance = s.dist
	s.camera.Yaw = 0
	s.camera.Pitch = s.pitch
}

func (s *scene) key(ev uv.KeyPressEvent) {
	switch {
	case ev.MatchString("w", "up"):
		s.push(-torqueStrength, 0, 0)
	case ev.MatchString("s", "down"):
		s.push(torqueStrength, 0, 0)
	case ev.MatchString("a", "left"):
		s.push(0, -torqueStrength, 0)
	case ev.MatchString("d", "right"):
		s.push(0, torqueStrength, 0)
	case ev.MatchString("q"):
		s.push(0, 0, -torqueStrength)
	case ev.MatchString("e"):
		s.push(0, 0, torqueStrength)
	case ev.MatchString("space"):
		s.push(
			(rand.Float64()-0.5)*torqueStrength*4,
			(rand.Float64()-0.5)*torqueStrength*4,
			(rand.Float64()-0.5)*torqueStrength*4,
		)
	case ev.MatchString("+", "="):
		s.camera.Zoom(zoomStep)
	case ev.MatchString("-", "_"):
		s.camera.Zoom(1 / zoomStep)
	case ev.MatchString("m"):
		s.nextMode()
	case ev.MatchString("r"):
		s.reset()
	}
}
