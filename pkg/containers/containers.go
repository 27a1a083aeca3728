// Package containers groups drawables: a pixel buffer that is both a canvas
// and a drawable, point collision over sets of elements, a visibility
// switch and per-pixel shaders.
package containers

import (
	"github.com/taigrr/gemini/pkg/primitives"
	"github.com/taigrr/gemini/pkg/render"
)

// Collider reports whether it occupies a position.
type Collider interface {
	CollidesWith(pos render.Vec2) bool
}

// PixelContainer records plotted pixels so they can be replayed, tested for
// collision or shaded later.
type PixelContainer struct {
	Pixels []primitives.Pixel
}

// NewPixelContainer returns an empty container.
func NewPixelContainer() *PixelContainer {
	return &PixelContainer{}
}

// Capture draws d into a new container.
func Capture(d render.Drawable) *PixelContainer {
	pc := NewPixelContainer()
	d.DrawTo(pc)
	return pc
}

// FromPoints creates a container with one pixel per point.
func FromPoints(points []render.Vec2, fill render.ColChar) *PixelContainer {
	pc := &PixelContainer{Pixels: make([]primitives.Pixel, 0, len(points))}
	pc.AppendPoints(points, fill)
	return pc
}

// Plot records a pixel.
func (pc *PixelContainer) Plot(pos render.Vec2, c render.ColChar) {
	pc.Pixels = append(pc.Pixels, primitives.Pixel{Pos: pos, Fill: c})
}

// AppendPoints records fill at each point.
func (pc *PixelContainer) AppendPoints(points []render.Vec2, fill render.ColChar) {
	for _, p := range points {
		pc.Plot(p, fill)
	}
}

// Draw records everything d emits.
func (pc *PixelContainer) Draw(d render.Drawable) {
	d.DrawTo(pc)
}

// Len returns the number of recorded pixels.
func (pc *PixelContainer) Len() int {
	return len(pc.Pixels)
}

// Reset drops every pixel but keeps the backing storage.
func (pc *PixelContainer) Reset() {
	pc.Pixels = pc.Pixels[:0]
}

// DrawTo replays the pixels in the order they were recorded.
func (pc *PixelContainer) DrawTo(c render.Canvas) {
	for _, p := range pc.Pixels {
		c.Plot(p.Pos, p.Fill)
	}
}

// CollidesWith reports whether any pixel sits at pos.
func (pc *PixelContainer) CollidesWith(pos render.Vec2) bool {
	for _, p := range pc.Pixels {
		if p.Pos == pos {
			return true
		}
	}
	return false
}

// CollisionContainer is a set of colliders treated as one.
type CollisionContainer struct {
	Elements []Collider
}

// NewCollisionContainer creates a container over the given elements.
func NewCollisionContainer(elements ...Collider) *CollisionContainer {
	return &CollisionContainer{Elements: elements}
}

// Push adds an element.
func (cc *CollisionContainer) Push(e Collider) {
	cc.Elements = append(cc.Elements, e)
}

// CollidesWith reports whether any element occupies pos.
func (cc *CollisionContainer) CollidesWith(pos render.Vec2) bool {
	for _, e := range cc.Elements {
		if e.CollidesWith(pos) {
			return true
		}
	}
	return false
}

// OverlapsElement reports whether any pixel d draws lands on an element.
func (cc *CollisionContainer) OverlapsElement(d render.Drawable) bool {
	return cc.WillOverlapElement(d, render.Vec2{})
}

// WillOverlapElement reports whether d would overlap an element after
// moving by offset.
func (cc *CollisionContainer) WillOverlapElement(d render.Drawable, offset render.Vec2) bool {
	for _, p := range Capture(d).Pixels {
		if cc.CollidesWith(p.Pos.Add(offset)) {
			return true
		}
	}
	return false
}

// VisibilityToggle hides an element. A hidden element draws nothing and
// collides with nothing.
type VisibilityToggle[E render.Drawable] struct {
	Element E
	Visible bool
}

// NewVisibilityToggle wraps e, initially visible.
func NewVisibilityToggle[E render.Drawable](e E) *VisibilityToggle[E] {
	return &VisibilityToggle[E]{Element: e, Visible: true}
}

// Toggle flips visibility.
func (v *VisibilityToggle[E]) Toggle() {
	v.Visible = !v.Visible
}

// DrawTo draws the element when visible.
func (v *VisibilityToggle[E]) DrawTo(c render.Canvas) {
	if v.Visible {
		v.Element.DrawTo(c)
	}
}

// CollidesWith forwards to the element when it is visible and can collide.
func (v *VisibilityToggle[E]) CollidesWith(pos render.Vec2) bool {
	if !v.Visible {
		return false
	}
	if col, ok := any(v.Element).(Collider); ok {
		return col.CollidesWith(pos)
	}
	return false
}
