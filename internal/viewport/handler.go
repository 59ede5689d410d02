// Package viewport tracks the zoom and pan state of a chart.
package viewport

import (
	"math"

	"github.com/wandb/wandb/chartcore/internal/geom"
)

const (
	zoomInFactor  = 1.4
	zoomOutFactor = 0.7
)

// Handler owns the chart size, the content rectangle inside it and the
// touch matrix holding the current zoom and pan.
//
// The zoom and pan methods only compute a candidate matrix. Refresh is the
// one place that clamps a candidate and makes it the current state.
type Handler struct {
	touch   geom.Matrix
	content geom.Rect

	chartWidth  float64
	chartHeight float64

	minScaleX, maxScaleX float64
	minScaleY, maxScaleY float64

	scaleX, scaleY float64
	transX, transY float64

	// dragOffsetX and dragOffsetY are how far, in pixels, the content may
	// be dragged past its edges.
	dragOffsetX float64
	dragOffsetY float64

	invalidator func()
}

// New returns a handler without dimensions, fully zoomed out.
func New() *Handler {
	return &Handler{
		touch:     geom.Identity,
		minScaleX: 1,
		maxScaleX: math.MaxFloat64,
		minScaleY: 1,
		maxScaleY: math.MaxFloat64,
		scaleX:    1,
		scaleY:    1,
	}
}

// SetInvalidator sets the function Refresh calls to request a redraw.
func (h *Handler) SetInvalidator(f func()) {
	h.invalidator = f
}

// SetChartDimens sets the chart size, keeping the current offsets.
func (h *Handler) SetChartDimens(width, height float64) {
	left, top := h.OffsetLeft(), h.OffsetTop()
	right, bottom := h.OffsetRight(), h.OffsetBottom()

	h.chartWidth = width
	h.chartHeight = height
	h.RestrainViewPort(left, top, right, bottom)
}

// HasChartDimens reports whether the chart has a non-empty size.
func (h *Handler) HasChartDimens() bool {
	return h.chartWidth > 0 && h.chartHeight > 0
}

// RestrainViewPort insets the content rectangle from the chart edges.
func (h *Handler) RestrainViewPort(left, top, right, bottom float64) {
	h.content = geom.Rect{
		X:      left,
		Y:      top,
		Width:  h.chartWidth - left - right,
		Height: h.chartHeight - top - bottom,
	}
}

func (h *Handler) ChartWidth() float64 { return h.chartWidth }
func (h *Handler) ChartHeight() float64 { return h.chartHeight }

// ContentRect is the area inside the offsets where data is drawn.
func (h *Handler) ContentRect() geom.Rect { return h.content }

func (h *Handler) OffsetLeft() float64 { return h.content.X }
func (h *Handler) OffsetTop() float64 { return h.content.Y }

func (h *Handler) OffsetRight() float64 {
	return h.chartWidth - h.content.Width - h.content.X
}

func (h *Handler) OffsetBottom() float64 {
	return h.chartHeight - h.content.Height - h.content.Y
}

func (h *Handler) ContentLeft() float64 { return h.content.X }
func (h *Handler) ContentTop() float64 { return h.content.Y }
func (h *Handler) ContentRight() float64 { return h.content.X + h.content.Width }
func (h *Handler) ContentBottom() float64 { return h.content.Y + h.content.Height }
func (h *Handler) ContentWidth() float64 { return h.content.Width }
func (h *Handler) ContentHeight() float64 { return h.content.Height }

// ContentCenter is the midpoint of the content rectangle.
func (h *Handler) ContentCenter() geom.Point { return h.content.Center() }

// TouchMatrix is the current, clamped zoom and pan transform.
func (h *Handler) TouchMatrix() geom.Matrix { return h.touch }

// Zoom scales the current matrix about the origin.
func (h *Handler) Zoom(sx, sy float64) geom.Matrix {
	return h.touch.Scaled(sx, sy)
}

// ZoomAround scales the current matrix about the pixel (x, y).
func (h *Handler) ZoomAround(sx, sy, x, y float64) geom.Matrix {
	return h.touch.Translated(x, y).Scaled(sx, sy).Translated(-x, -y)
}

// ZoomIn zooms in by 1.4 about (x, y).
func (h *Handler) ZoomIn(x, y float64) geom.Matrix {
	return h.ZoomAround(zoomInFactor, zoomInFactor, x, y)
}

// ZoomOut zooms out by 0.7 about (x, y).
func (h *Handler) ZoomOut(x, y float64) geom.Matrix {
	return h.ZoomAround(zoomOutFactor, zoomOutFactor, x, y)
}

// ResetZoom returns the current matrix at scale 1, which Refresh raises to
// the minimum scale.
func (h *Handler) ResetZoom() geom.Matrix {
	return h.SetZoomAround(1, 1, 0, 0)
}

// SetZoom replaces the scale of the current matrix.
func (h *Handler) SetZoom(sx, sy float64) geom.Matrix {
	m := h.touch
	m.A = sx
	m.D = sy
	return m
}

// SetZoomAround replaces the scale of the current matrix, scaling about
// the pixel (x, y).
func (h *Handler) SetZoomAround(sx, sy, x, y float64) geom.Matrix {
	m := h.touch
	m.A = 1
	m.D = 1
	return m.Translated(x, y).Scaled(sx, sy).Translated(-x, -y)
}

// FitScreen resets the minimum scales to 1 and returns the identity.
func (h *Handler) FitScreen() geom.Matrix {
	h.minScaleX = 1
	h.minScaleY = 1
	return geom.Identity
}

// Translate pans so that the content origin moves to pt.
func (h *Handler) Translate(pt geom.Point) geom.Matrix {
	return h.touch.Concat(geom.Translate(
		-(pt.X - h.OffsetLeft()),
		-(pt.Y - h.OffsetTop()),
	))
}

// CenterViewPort pans so that the pixel pt ends up at the content origin.
//
// Callers pass the pixel of the desired center minus half the content
// size.
func (h *Handler) CenterViewPort(pt geom.Point) geom.Matrix {
	return h.Translate(pt)
}

// Refresh clamps m to the scale and drag limits, makes it the current
// matrix and returns it.
//
// If invalidate is set, the invalidator is called.
func (h *Handler) Refresh(m geom.Matrix, invalidate bool) geom.Matrix {
	h.touch = h.limitTransAndScale(m)

	if invalidate && h.invalidator != nil {
		h.invalidator()
	}
	return h.touch
}

// limitTransAndScale clamps the scale to its bounds and the translation so
// the content cannot be dragged more than the drag offset past any edge.
func (h *Handler) limitTransAndScale(m geom.Matrix) geom.Matrix {
	h.scaleX = min(max(h.minScaleX, m.A), h.maxScaleX)
	h.scaleY = min(max(h.minScaleY, m.D), h.maxScaleY)

	maxTransX := -h.content.Width * (h.scaleX - 1)
	h.transX = min(max(m.Tx, maxTransX-h.dragOffsetX), h.dragOffsetX)

	maxTransY := h.content.Height * (h.scaleY - 1)
	h.transY = max(min(m.Ty, maxTransY+h.dragOffsetY), -h.dragOffsetY)

	m.A = h.scaleX
	m.D = h.scaleY
	m.Tx = h.transX
	m.Ty = h.transY
	return m
}

func (h *Handler) reclamp() {
	h.touch = h.limitTransAndScale(h.touch)
}

// SetMinimumScaleX sets the smallest x zoom, at least 1.
func (h *Handler) SetMinimumScaleX(s float64) {
	h.minScaleX = max(s, 1)
	h.reclamp()
}

// SetMaximumScaleX sets the largest x zoom; 0 means unbounded.
func (h *Handler) SetMaximumScaleX(s float64) {
	h.maxScaleX = unboundedIfZero(s)
	h.reclamp()
}

// SetMinMaxScaleX sets both x zoom bounds.
func (h *Handler) SetMinMaxScaleX(minScale, maxScale float64) {
	h.minScaleX = max(minScale, 1)
	h.maxScaleX = unboundedIfZero(maxScale)
	h.reclamp()
}

// SetMinimumScaleY sets the smallest y zoom, at least 1.
func (h *Handler) SetMinimumScaleY(s float64) {
	h.minScaleY = max(s, 1)
	h.reclamp()
}

// SetMaximumScaleY sets the largest y zoom; 0 means unbounded.
func (h *Handler) SetMaximumScaleY(s float64) {
	h.maxScaleY = unboundedIfZero(s)
	h.reclamp()
}

// SetMinMaxScaleY sets both y zoom bounds.
func (h *Handler) SetMinMaxScaleY(minScale, maxScale float64) {
	h.minScaleY = max(minScale, 1)
	h.maxScaleY = unboundedIfZero(maxScale)
	h.reclamp()
}

func unboundedIfZero(s float64) float64 {
	if s == 0 {
		return math.MaxFloat64
	}
	return s
}

func (h *Handler) MinScaleX() float64 { return h.minScaleX }
func (h *Handler) MaxScaleX() float64 { return h.maxScaleX }
func (h *Handler) MinScaleY() float64 { return h.minScaleY }
func (h *Handler) MaxScaleY() float64 { return h.maxScaleY }

func (h *Handler) ScaleX() float64 { return h.scaleX }
func (h *Handler) ScaleY() float64 { return h.scaleY }
func (h *Handler) TransX() float64 { return h.transX }
func (h *Handler) TransY() float64 { return h.transY }

// SetDragOffsetX sets how far the content may be dragged past its left and
// right edges.
func (h *Handler) SetDragOffsetX(offset float64) { h.dragOffsetX = offset }

// SetDragOffsetY sets how far the content may be dragged past its top and
// bottom edges.
func (h *Handler) SetDragOffsetY(offset float64) { h.dragOffsetY = offset }

func (h *Handler) HasNoDragOffset() bool {
	return h.dragOffsetX <= 0 && h.dragOffsetY <= 0
}

// IsInBoundsX reports whether the pixel x is within the content, with one
// pixel of tolerance.
func (h *Handler) IsInBoundsX(x float64) bool {
	return h.IsInBoundsLeft(x) && h.IsInBoundsRight(x)
}

// IsInBoundsY reports whether the pixel y is within the content.
func (h *Handler) IsInBoundsY(y float64) bool {
	return h.IsInBoundsTop(y) && h.IsInBoundsBottom(y)
}

func (h *Handler) IsInBounds(x, y float64) bool {
	return h.IsInBoundsX(x) && h.IsInBoundsY(y)
}

func (h *Handler) IsInBoundsLeft(x float64) bool {
	return h.content.X <= x+1
}

func (h *Handler) IsInBoundsRight(x float64) bool {
	return h.ContentRight() >= floor2(x)-1
}

func (h *Handler) IsInBoundsTop(y float64) bool {
	return h.content.Y <= y
}

func (h *Handler) IsInBoundsBottom(y float64) bool {
	return h.ContentBottom() >= floor2(y)
}

// floor2 floors v to two decimals.
func floor2(v float64) float64 {
	return math.Floor(v*100) / 100
}

// IsFullyZoomedOut reports whether neither axis is zoomed in.
func (h *Handler) IsFullyZoomedOut() bool {
	return h.IsFullyZoomedOutX() && h.IsFullyZoomedOutY()
}

// IsFullyZoomedOutX reports whether the x scale is at a minimum of 1.
//
// A minimum scale above 1 forces a zoom, so the axis never counts as fully
// zoomed out.
func (h *Handler) IsFullyZoomedOutX() bool {
	return !(h.scaleX > h.minScaleX || h.minScaleX > 1)
}

// IsFullyZoomedOutY is IsFullyZoomedOutX for the y axis.
func (h *Handler) IsFullyZoomedOutY() bool {
	return !(h.scaleY > h.minScaleY || h.minScaleY > 1)
}

func (h *Handler) CanZoomOutMoreX() bool { return h.scaleX > h.minScaleX }
func (h *Handler) CanZoomInMoreX() bool { return h.scaleX < h.maxScaleX }
func (h *Handler) CanZoomOutMoreY() bool { return h.scaleY > h.minScaleY }
func (h *Handler) CanZoomInMoreY() bool { return h.scaleY < h.maxScaleY }
