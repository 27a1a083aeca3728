package main

import (
	"time"

	"github.com/taigrr/gemini/pkg/containers"
	"github.com/taigrr/gemini/pkg/primitives"
	"github.com/taigrr/gemini/pkg/render"
)

const carTexture = `
  ______
 /|_||_\` + "`" + `.__
(   _    _ _\
=` + "`" + `-(_)--(_)-'`

var spinnerFrames = []string{"|", "/", "-", `\`}

// arrow is a concave outline drawn at double width.
var arrow = []render.Vec2{
	{X: 0, Y: -3}, {X: 4, Y: 0}, {X: 0, Y: 3}, {X: 0, Y: 1},
	{X: -4, Y: 1}, {X: -4, Y: -1}, {X: 0, Y: -1},
}

// showcase animates the 2D elements: a pixel and a car sliding across the
// view, an oscillating line, a ball bouncing off a gradient border and some
// blinking text. On a wrapping view the car reappears on the left edge as it
// leaves the right.
type showcase struct {
	blinkEvery int
	frame      int
	size       render.Vec2

	pixel   render.Vec2
	line    primitives.Line
	lineDir int
	car     primitives.Sprite
	spinner *primitives.AnimatedSprite
	blink   *containers.VisibilityToggle[primitives.Text]

	ball   primitives.Pixel
	vel    render.Vec2
	border *containers.PixelContainer
	walls  *containers.CollisionContainer
}

func newShowcase(fps float64) *showcase {
	return &showcase{
		blinkEvery: max(int(fps/2), 1),
		lineDir:    -1,
		car:        primitives.NewSprite(render.V2(0, 1), carTexture, render.Yellow),
		spinner:    primitives.NewAnimatedSprite(render.Vec2{}, spinnerFrames, render.Green),
		blink: containers.NewVisibilityToggle(
			primitives.NewText(render.Vec2{}, "ctrl+c to quit", render.NoModifier).
				WithAlign(primitives.AlignCentered),
		),
		ball: primitives.NewPixel(render.Vec2{}, render.NewColChar('●', render.Red)),
		vel:  render.V2(1, 1),
	}
}

// layout places everything for a view of the given size.
func (s *showcase) layout(size render.Vec2) {
	s.size = size
	s.pixel = render.V2(5, size.Y-1)
	s.line = primitives.NewLine(render.V2(2, size.Y-2), render.V2(size.X/2, size.Y/2), render.Solid.WithModifier(render.Blue))
	s.spinner.Pos = render.V2(size.X-3, size.Y-2)
	s.blink.Element.Pos = render.V2(size.X/2, size.Y-1)
	s.ball.Pos = render.V2(size.X/3, size.Y/2)

	s.border = containers.Capture(render.DrawableFunc(func(c render.Canvas) {
		last := size.Sub(render.V2(1, 1))
		primitives.NewLine(render.V2(0, 0), render.V2(last.X, 0), render.Solid).DrawTo(c)
		primitives.NewLine(render.V2(0, last.Y), last, render.Solid).DrawTo(c)
		primitives.NewLine(render.V2(0, 0), render.V2(0, last.Y), render.Solid).DrawTo(c)
		primitives.NewLine(render.V2(last.X, 0), last, render.Solid).DrawTo(c)
	}))
	s.walls = containers.NewCollisionContainer(s.border)
	render.Logger().Debug("showcase layout", "size", size)
}

func (s *showcase) update(time.Duration) error {
	s.frame++
	if s.size.X < 4 || s.size.Y < 4 {
		return nil
	}

	s.pixel = s.pixel.Add(render.V2(1, 0)).RemEuclid(s.size)
	if s.frame%2 == 0 {
		s.car.Pos = s.car.Pos.Add(render.V2(1, 0)).RemEuclid(s.size)
	}

	s.line.To.Y += s.lineDir
	s.line.From.Y = s.size.Y - 1 - s.line.To.Y
	if s.line.To.Y >= s.size.Y-2 {
		s.lineDir = -1
	} else if s.line.To.Y <= 1 {
		s.lineDir = 1
	}

	if s.walls.WillOverlapElement(s.ball, render.V2(s.vel.X, 0)) {
		s.vel.X = -s.vel.X
	}
	if s.walls.WillOverlapElement(s.ball, render.V2(0, s.vel.Y)) {
		s.vel.Y = -s.vel.Y
	}
	if !s.walls.WillOverlapElement(s.ball, s.vel) {
		s.ball.Pos = s.ball.Pos.Add(s.vel)
	}

	if s.frame%3 == 0 {
		s.spinner.Next()
	}
	if s.frame%s.blinkEvery == 0 {
		s.blink.Toggle()
	}
	return nil
}

func (s *showcase) draw(v *render.View) {
	if v.Size() != s.size {
		s.layout(v.Size())
	}

	size := s.size
	v.Draw(containers.Shaded{
		Element: s.border,
		Shader:  containers.Gradient(render.RGB(255, 96, 0), render.RGB(0, 128, 255), 0, size.X-1),
	})
	v.Draw(primitives.NewText(render.V2(size.X/2, 0), " gemini ", render.Coded(1)).WithAlign(primitives.AlignCentered))

	v.Draw(primitives.NewRect(render.V2(size.X/2+3, 2), render.V2(6, 3), render.Solid.WithModifier(render.Cyan)))
	v.Draw(primitives.NewTriangle(
		render.V2(size.X-14, 2), render.V2(size.X-3, 4), render.V2(size.X-9, 7),
		render.Solid.WithModifier(render.Purple),
	))
	center := render.V2(size.X*3/8, size.Y*2/3)
	points := make([]render.Vec2, len(arrow))
	for i, p := range arrow {
		points[i] = p.Add(center)
	}
	v.DrawDoubleWidth(primitives.NewPolygon(points, render.Solid.WithRGB(80, 200, 120)))

	v.Draw(s.line)
	v.Draw(s.car)
	v.Draw(s.spinner)
	v.Draw(s.blink)
	v.Draw(s.ball)
	v.Plot(s.pixel, render.Solid)
}
