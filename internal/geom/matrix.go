package geom

import "math"

// Matrix is a 2-D affine transform.
//
// A point (x, y) maps to (A*x + C*y + Tx, B*x + D*y + Ty).
type Matrix struct {
	A, B, C, D float64
	Tx, Ty     float64
}

// Identity is the transform that leaves every point unchanged.
var Identity = Matrix{A: 1, D: 1}

// Scale returns a transform scaling by (sx, sy).
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

// Translate returns a transform translating by (tx, ty).
func Translate(tx, ty float64) Matrix {
	return Matrix{A: 1, D: 1, Tx: tx, Ty: ty}
}

// Concat returns the transform that applies m first and then n.
func (m Matrix) Concat(n Matrix) Matrix {
	return Matrix{
		A:  m.A*n.A + m.B*n.C,
		B:  m.A*n.B + m.B*n.D,
		C:  m.C*n.A + m.D*n.C,
		D:  m.C*n.B + m.D*n.D,
		Tx: m.Tx*n.A + m.Ty*n.C + n.Tx,
		Ty: m.Tx*n.B + m.Ty*n.D + n.Ty,
	}
}

// Scaled returns a transform that scales by (sx, sy) and then applies m.
func (m Matrix) Scaled(sx, sy float64) Matrix {
	return Scale(sx, sy).Concat(m)
}

// Translated returns a transform that translates by (tx, ty) and then
// applies m.
func (m Matrix) Translated(tx, ty float64) Matrix {
	return Translate(tx, ty).Concat(m)
}

// Determinant returns A*D - B*C.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// IsInvertible reports whether the transform has an inverse.
func (m Matrix) IsInvertible() bool {
	det := m.Determinant()
	return det != 0 && !math.IsNaN(det) && !math.IsInf(det, 0)
}

// Invert returns the inverse transform.
//
// A singular matrix is returned unchanged.
func (m Matrix) Invert() Matrix {
	if !m.IsInvertible() {
		return m
	}
	det := m.Determinant()
	return Matrix{
		A:  m.D / det,
		B:  -m.B / det,
		C:  -m.C / det,
		D:  m.A / det,
		Tx: (m.C*m.Ty - m.D*m.Tx) / det,
		Ty: (m.B*m.Tx - m.A*m.Ty) / det,
	}
}

// Apply maps a point through the transform.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.Tx,
		Y: m.B*p.X + m.D*p.Y + m.Ty,
	}
}

// ApplyRect maps a rectangle through the transform and returns the
// smallest standardized rectangle containing the mapped corners.
func (m Matrix) ApplyRect(r Rect) Rect {
	corners := [4]Point{
		m.Apply(Point{X: r.X, Y: r.Y}),
		m.Apply(Point{X: r.X + r.Width, Y: r.Y}),
		m.Apply(Point{X: r.X, Y: r.Y + r.Height}),
		m.Apply(Point{X: r.X + r.Width, Y: r.Y + r.Height}),
	}

	minX, minY := corners[0].X, corners[0].Y
	maxX, maxY := minX, minY
	for _, c := range corners[1:] {
		minX = math.Min(minX, c.X)
		minY = math.Min(minY, c.Y)
		maxX = math.Max(maxX, c.X)
		maxY = math.Max(maxY, c.Y)
	}

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
