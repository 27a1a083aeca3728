package containers

import (
	"testing"

	"github.com/taigrr/gemini/pkg/primitives"
	"github.com/taigrr/gemini/pkg/render"
)

func TestPixelContainerReplay(t *testing.T) {
	pc := NewPixelContainer()
	pc.Plot(render.V2(1, 1), render.Solid)
	pc.Plot(render.V2(1, 1), render.Background)
	pc.AppendPoints([]render.Vec2{render.V2(0, 2), render.V2(2, 0)}, render.Solid)

	if pc.Len() != 4 {
		t.Fatalf("Len = %d, want 4", pc.Len())
	}

	v := render.NewView(3, 3, render.Empty)
	v.Draw(pc)
	if c, _ := v.At(render.V2(1, 1)); c != render.Background {
		t.Errorf("later plot did not win: %v", c)
	}
	if c, _ := v.At(render.V2(2, 0)); c != render.Solid {
		t.Errorf("(2,0) = %v", c)
	}

	pc.Reset()
	if pc.Len() != 0 {
		t.Error("Reset kept pixels")
	}
}

func TestCapture(t *testing.T) {
	pc := Capture(primitives.NewRect(render.V2(0, 0), render.V2(2, 3), render.Solid))
	if pc.Len() != 6 {
		t.Errorf("captured %d pixels, want 6", pc.Len())
	}
	if !pc.CollidesWith(render.V2(1, 2)) || pc.CollidesWith(render.V2(2, 2)) {
		t.Error("CollidesWith does not match the rectangle")
	}
}

func TestCollisionContainer(t *testing.T) {
	wall := FromPoints([]render.Vec2{render.V2(5, 0), render.V2(5, 1), render.V2(5, 2)}, render.Solid)
	cc := NewCollisionContainer(wall)

	player := primitives.NewPixel(render.V2(4, 1), render.Solid)
	if cc.OverlapsElement(player) {
		t.Error("player overlaps before moving")
	}
	if !cc.WillOverlapElement(player, render.V2(1, 0)) {
		t.Error("moving right should hit the wall")
	}
	if cc.WillOverlapElement(player, render.V2(0, 5)) {
		t.Error("moving down should miss the wall")
	}

	cc.Push(FromPoints([]render.Vec2{render.V2(4, 1)}, render.Solid))
	if !cc.OverlapsElement(player) {
		t.Error("pushed element not checked")
	}
}

func TestVisibilityToggle(t *testing.T) {
	vt := NewVisibilityToggle(FromPoints([]render.Vec2{render.V2(0, 0)}, render.Solid))
	if !vt.CollidesWith(render.V2(0, 0)) {
		t.Error("visible element does not collide")
	}

	vt.Toggle()
	if vt.CollidesWith(render.V2(0, 0)) {
		t.Error("hidden element collides")
	}
	if got := Capture(vt); got.Len() != 0 {
		t.Errorf("hidden element drew %d pixels", got.Len())
	}

	vt.Toggle()
	if got := Capture(vt); got.Len() != 1 {
		t.Errorf("visible element drew %d pixels, want 1", got.Len())
	}
}

func TestVisibilityToggleNonCollider(t *testing.T) {
	vt := NewVisibilityToggle(render.DrawableFunc(func(c render.Canvas) {
		c.Plot(render.V2(0, 0), render.Solid)
	}))
	if vt.CollidesWith(render.V2(0, 0)) {
		t.Error("element without collision reported a hit")
	}
}

func TestShader(t *testing.T) {
	pc := FromPoints([]render.Vec2{render.V2(0, 0), render.V2(10, 0)}, render.Solid)
	shaded := pc.ShadeWith(Gradient(render.Black, render.White, 0, 10))

	if got, _ := shaded.Pixels[0].Fill.Modifier.Colour(); got != render.Black {
		t.Errorf("left colour = %v, want black", got)
	}
	if got, _ := shaded.Pixels[1].Fill.Modifier.Colour(); got != render.White {
		t.Errorf("right colour = %v, want white", got)
	}
	if pc.Pixels[0].Fill != render.Solid {
		t.Error("ShadeWith modified the source container")
	}
}

func TestShaded(t *testing.T) {
	count := 0
	s := Shaded{
		Element: primitives.NewRect(render.V2(0, 0), render.V2(2, 2), render.Solid),
		Shader: ShaderFunc(func(p primitives.Pixel) primitives.Pixel {
			count++
			p.Fill = p.Fill.WithChar('x')
			return p
		}),
	}
	v := render.NewView(2, 2, render.Empty)
	v.Draw(s)
	if count != 4 {
		t.Errorf("shader ran %d times, want 4", count)
	}
	if c, _ := v.At(render.V2(1, 1)); c.Char != 'x' {
		t.Errorf("(1,1) = %q, want x", c.Char)
	}
}
