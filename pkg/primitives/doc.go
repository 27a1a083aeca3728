// Package primitives holds the 2D shapes every other element is built from:
// pixels, lines, rectangles, triangles, polygons and text. Each shape is a
// render.Drawable.
package primitives
