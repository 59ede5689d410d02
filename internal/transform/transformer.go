// Package transform maps between chart values and pixels.
package transform

import (
	"math"

	"github.com/wandb/wandb/chartcore/internal/geom"
	"github.com/wandb/wandb/chartcore/internal/observability/wberrors"
	"github.com/wandb/wandb/chartcore/internal/viewport"
)

// Transformer converts value coordinates of one y-axis to pixels.
//
// Its mapping is valuePx, then the viewport's touch matrix, then offset;
// the order matters and is kept by every method here.
type Transformer struct {
	vp *viewport.Handler

	valuePx geom.Matrix
	offset  geom.Matrix
}

// New returns a Transformer reading zoom and content size from vp.
func New(vp *viewport.Handler) (*Transformer, error) {
	if vp == nil {
		return nil, wberrors.Newf("transform: viewport handler is nil")
	}

	return &Transformer{
		vp:      vp,
		valuePx: geom.Identity,
		offset:  geom.Identity,
	}, nil
}

// MustNew is New that panics on error.
func MustNew(vp *viewport.Handler) *Transformer {
	t, err := New(vp)
	if err != nil {
		panic(err)
	}
	return t
}

// PrepareMatrixValuePx fits the value range starting at (xMin, yMin) and
// spanning deltaX by deltaY into the content rectangle.
//
// A range that gives a zero, infinite or NaN scale uses a scale of 0.
func (t *Transformer) PrepareMatrixValuePx(xMin, deltaX, deltaY, yMin float64) {
	scaleX := finiteOrZero(t.vp.ContentWidth() / deltaX)
	scaleY := finiteOrZero(t.vp.ContentHeight() / deltaY)

	t.valuePx = geom.Identity.
		Scaled(scaleX, -scaleY).
		Translated(-xMin, -yMin)
}

func finiteOrZero(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}

// PrepareMatrixOffset moves the origin to the content rectangle's bottom
// left, or its top left when the axis is inverted.
func (t *Transformer) PrepareMatrixOffset(inverted bool) {
	if !inverted {
		t.offset = geom.Translate(
			t.vp.OffsetLeft(),
			t.vp.ChartHeight()-t.vp.OffsetBottom())
		return
	}

	t.offset = geom.Scale(1, -1).Translated(t.vp.OffsetLeft(), -t.vp.OffsetTop())
}

// ValueToPixelMatrix is the full value to pixel transform.
func (t *Transformer) ValueToPixelMatrix() geom.Matrix {
	return t.valuePx.Concat(t.vp.TouchMatrix()).Concat(t.offset)
}

// PixelToValueMatrix is the inverse of ValueToPixelMatrix.
func (t *Transformer) PixelToValueMatrix() geom.Matrix {
	return t.ValueToPixelMatrix().Invert()
}

// PointValueToPixel maps a value point to a pixel.
func (t *Transformer) PointValueToPixel(p geom.Point) geom.Point {
	return t.ValueToPixelMatrix().Apply(p)
}

// PointValuesToPixel maps value points to pixels in place.
func (t *Transformer) PointValuesToPixel(points []geom.Point) {
	m := t.ValueToPixelMatrix()
	for i, p := range points {
		points[i] = m.Apply(p)
	}
}

// PixelForValues returns the pixel of the value (x, y).
func (t *Transformer) PixelForValues(x, y float64) geom.Point {
	return t.PointValueToPixel(geom.Point{X: x, Y: y})
}

// RectValueToPixel maps a value rectangle to a pixel rectangle.
func (t *Transformer) RectValueToPixel(r geom.Rect) geom.Rect {
	return t.ValueToPixelMatrix().ApplyRect(r)
}

// RectValueToPixelPhase is RectValueToPixel with the rectangle's vertical
// extent scaled by phaseY first, for bars growing in.
func (t *Transformer) RectValueToPixelPhase(r geom.Rect, phaseY float64) geom.Rect {
	top := r.Y * phaseY
	bottom := (r.Y + r.Height) * phaseY
	r.Y = top
	r.Height = bottom - top
	return t.RectValueToPixel(r)
}

// RectValueToPixelHorizontal is RectValueToPixelPhase for horizontal bars,
// scaling the horizontal extent instead.
func (t *Transformer) RectValueToPixelHorizontal(r geom.Rect, phaseY float64) geom.Rect {
	left := r.X * phaseY
	right := (r.X + r.Width) * phaseY
	r.X = left
	r.Width = right - left
	return t.RectValueToPixel(r)
}

// RectValuesToPixel maps value rectangles to pixel rectangles in place.
func (t *Transformer) RectValuesToPixel(rects []geom.Rect) {
	m := t.ValueToPixelMatrix()
	for i, r := range rects {
		rects[i] = m.ApplyRect(r)
	}
}

// PixelToValue maps a pixel to a value point.
func (t *Transformer) PixelToValue(p geom.Point) geom.Point {
	return t.PixelToValueMatrix().Apply(p)
}

// PixelsToValues maps pixels to value points in place.
func (t *Transformer) PixelsToValues(points []geom.Point) {
	m := t.PixelToValueMatrix()
	for i, p := range points {
		points[i] = m.Apply(p)
	}
}

// ValueForTouchPoint returns the value under the pixel (x, y).
func (t *Transformer) ValueForTouchPoint(x, y float64) geom.Point {
	return t.PixelToValue(geom.Point{X: x, Y: y})
}
