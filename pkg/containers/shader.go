package containers

import (
	"github.com/taigrr/gemini/pkg/primitives"
	"github.com/taigrr/gemini/pkg/render"
)

// Shader rewrites pixels one at a time. Shaders may keep state between
// calls, such as a frame counter.
type Shader interface {
	Shade(p primitives.Pixel) primitives.Pixel
}

// ShaderFunc adapts a function to the Shader interface.
type ShaderFunc func(p primitives.Pixel) primitives.Pixel

// Shade calls f(p).
func (f ShaderFunc) Shade(p primitives.Pixel) primitives.Pixel {
	return f(p)
}

// ShadeWith returns a new container holding every pixel passed through s.
func (pc *PixelContainer) ShadeWith(s Shader) *PixelContainer {
	out := &PixelContainer{Pixels: make([]primitives.Pixel, len(pc.Pixels))}
	for i, p := range pc.Pixels {
		out.Pixels[i] = s.Shade(p)
	}
	return out
}

// Shaded draws an element through a shader.
type Shaded struct {
	Element render.Drawable
	Shader  Shader
}

// DrawTo captures the element, shades every pixel and plots the result.
func (s Shaded) DrawTo(c render.Canvas) {
	Capture(s.Element).ShadeWith(s.Shader).DrawTo(c)
}

// Gradient returns a shader that blends each pixel's colour between from
// and to across the horizontal span [x0, x1].
func Gradient(from, to render.Colour, x0, x1 int) Shader {
	return ShaderFunc(func(p primitives.Pixel) primitives.Pixel {
		t := 0.0
		if x1 != x0 {
			t = float64(p.Pos.X-x0) / float64(x1-x0)
		}
		t = min(max(t, 0), 1)
		p.Fill = p.Fill.WithColour(from.Blend(to, t))
		return p
	})
}
