// Package geom holds the 2-D primitives shared by the transformer,
// the viewport and the highlighters: points, rectangles and affine
// matrices.
package geom

import "math"

// Point is a position in either value space or pixel space.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle given by its origin and size.
//
// Pixel space grows downward, so Y is the top edge there.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectFromEdges builds a rectangle from its four edges in any order.
func RectFromEdges(left, top, right, bottom float64) Rect {
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}.Standardized()
}

func (r Rect) Left() float64 { return math.Min(r.X, r.X+r.Width) }
func (r Rect) Right() float64 { return math.Max(r.X, r.X+r.Width) }
func (r Rect) Top() float64 { return math.Min(r.Y, r.Y+r.Height) }
func (r Rect) Bottom() float64 { return math.Max(r.Y, r.Y+r.Height) }
func (r Rect) MidX() float64 { return r.X + r.Width/2 }
func (r Rect) MidY() float64 { return r.Y + r.Height/2 }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.MidX(), Y: r.MidY()}
}

// Standardized returns an equivalent rectangle with non-negative size.
func (r Rect) Standardized() Rect {
	return Rect{
		X:      r.Left(),
		Y:      r.Top(),
		Width:  math.Abs(r.Width),
		Height: math.Abs(r.Height),
	}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}
