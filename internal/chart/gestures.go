package chart

import (
	"time"

	"github.com/wandb/wandb/chartcore/internal/animation"
	"github.com/wandb/wandb/chartcore/internal/chartdata"
	"github.com/wandb/wandb/chartcore/internal/geom"
	"github.com/wandb/wandb/chartcore/internal/viewjob"
)

// touchPivot converts a pixel to the touch matrix' coordinates, whose
// origin is the content's bottom left corner, or its top left corner when
// the left axis is inverted.
func (c *BarLineChart) touchPivot(x, y float64) (float64, float64) {
	x -= c.vp.ContentLeft()
	if c.leftAxis.Inverted {
		return x, -(y - c.vp.ContentTop())
	}
	return x, y - c.vp.ContentBottom()
}

// zoomFactors drops the factors of axes that may not be zoomed.
func (c *BarLineChart) zoomFactors(scaleX, scaleY float64) (float64, float64) {
	if !c.ScaleXEnabled {
		scaleX = 1
	}
	if !c.ScaleYEnabled {
		scaleY = 1
	}
	return scaleX, scaleY
}

// Zoom zooms by the given factors about the pixel (x, y), as a pinch or
// scroll gesture does, and notifies the delegate.
func (c *BarLineChart) Zoom(scaleX, scaleY, x, y float64) {
	scaleX, scaleY = c.zoomFactors(scaleX, scaleY)
	if scaleX == 1 && scaleY == 1 {
		return
	}

	px, py := c.touchPivot(x, y)
	c.vp.Refresh(c.vp.ZoomAround(scaleX, scaleY, px, py), true)

	if c.delegate != nil {
		c.delegate.ChartScaled(c, scaleX, scaleY)
	}
}

// ZoomIn zooms in by 1.4 about the content center.
func (c *BarLineChart) ZoomIn() {
	center := c.vp.ContentCenter()
	px, py := c.touchPivot(center.X, center.Y)
	c.vp.Refresh(c.vp.ZoomIn(px, py), true)
}

// ZoomOut zooms out by 0.7 about the content center.
func (c *BarLineChart) ZoomOut() {
	center := c.vp.ContentCenter()
	px, py := c.touchPivot(center.X, center.Y)
	c.vp.Refresh(c.vp.ZoomOut(px, py), true)
}

// ZoomToCenter zooms by the given factors about the content center.
func (c *BarLineChart) ZoomToCenter(scaleX, scaleY float64) {
	center := c.vp.ContentCenter()
	px, py := c.touchPivot(center.X, center.Y)
	c.vp.Refresh(c.vp.ZoomAround(scaleX, scaleY, px, py), true)
}

// ResetZoom zooms all the way out.
func (c *BarLineChart) ResetZoom() {
	c.vp.Refresh(c.vp.ResetZoom(), true)
}

// FitScreen resets the zoom and the minimum scales.
func (c *BarLineChart) FitScreen() {
	c.vp.Refresh(c.vp.FitScreen(), true)
}

// ZoomAt sets the zoom to (scaleX, scaleY) and centers the value (x, y)
// of the axis dep.
func (c *BarLineChart) ZoomAt(scaleX, scaleY, x, y float64, dep chartdata.AxisDependency) {
	c.addJob(&viewjob.ZoomJob{
		Target: c.jobTarget(dep),
		X:      x,
		Y:      y,
		ScaleX: scaleX,
		ScaleY: scaleY,
		XAxis:  c.xAxis,
		YAxis:  c.Axis(dep),
	})
}

// ZoomAndCenterAnimated animates ZoomAt from the current view.
func (c *BarLineChart) ZoomAndCenterAnimated(
	scaleX, scaleY, x, y float64,
	dep chartdata.AxisDependency,
	duration time.Duration,
	easing animation.EasingFunc,
) {
	origin := c.ValuesForTouch(c.vp.ContentLeft(), c.vp.ContentTop(), dep)

	job := &viewjob.AnimatedZoomJob{
		Target:       c.jobTarget(dep),
		ScaleX:       scaleX,
		ScaleY:       scaleY,
		OriginScaleX: c.vp.ScaleX(),
		OriginScaleY: c.vp.ScaleY(),
		CenterX:      x,
		CenterY:      y,
		OriginX:      origin.X,
		OriginY:      origin.Y,
		XAxis:        c.xAxis,
		YAxis:        c.Axis(dep),
	}
	job.Duration = duration
	job.Easing = easing
	c.addJob(job)
}

// Translate drags the content by (dx, dy) pixels and notifies the
// delegate. It reports whether the view moved.
func (c *BarLineChart) Translate(dx, dy float64) bool {
	if !c.DragEnabled || c.data == nil {
		return false
	}
	if c.leftAxis.Inverted {
		dy = -dy
	}

	before := c.vp.TouchMatrix()
	after := c.vp.Refresh(
		before.Concat(geom.Translate(dx, dy)), true)

	if c.delegate != nil {
		c.delegate.ChartTranslated(c, dx, dy)
	}
	return after != before
}

// yInView is the y range shown on the axis dep.
func (c *BarLineChart) yInView(dep chartdata.AxisDependency) float64 {
	return c.Axis(dep).Range() / c.vp.ScaleY()
}

// xInView is the x range shown.
func (c *BarLineChart) xInView() float64 {
	return c.xAxis.Range() / c.vp.ScaleX()
}

// MoveViewToX moves the view so x is at its left edge.
func (c *BarLineChart) MoveViewToX(x float64) {
	c.addJob(&viewjob.MoveJob{
		Target: c.jobTarget(chartdata.AxisLeft),
		X:      x,
	})
}

// MoveViewToY moves the view so y of the axis dep is in its middle.
func (c *BarLineChart) MoveViewToY(y float64, dep chartdata.AxisDependency) {
	c.addJob(&viewjob.MoveJob{
		Target: c.jobTarget(dep),
		Y:      y + c.yInView(dep)/2,
	})
}

// MoveViewTo moves the view so x is at its left edge and y of the axis dep
// in its middle.
func (c *BarLineChart) MoveViewTo(x, y float64, dep chartdata.AxisDependency) {
	c.addJob(&viewjob.MoveJob{
		Target: c.jobTarget(dep),
		X:      x,
		Y:      y + c.yInView(dep)/2,
	})
}

// MoveViewToAnimated animates MoveViewTo from the current view.
func (c *BarLineChart) MoveViewToAnimated(
	x, y float64,
	dep chartdata.AxisDependency,
	duration time.Duration,
	easing animation.EasingFunc,
) {
	origin := c.ValuesForTouch(c.vp.ContentLeft(), c.vp.ContentTop(), dep)
	c.addJob(viewjob.NewAnimatedMoveJob(
		c.jobTarget(dep),
		x, y+c.yInView(dep)/2,
		origin.X, origin.Y,
		duration, easing,
	))
}

// CenterViewTo moves the view so (x, y) of the axis dep is at its center.
func (c *BarLineChart) CenterViewTo(x, y float64, dep chartdata.AxisDependency) {
	c.addJob(&viewjob.MoveJob{
		Target: c.jobTarget(dep),
		X:      x - c.xInView()/2,
		Y:      y + c.yInView(dep)/2,
	})
}

// CenterViewToAnimated animates CenterViewTo from the current view.
func (c *BarLineChart) CenterViewToAnimated(
	x, y float64,
	dep chartdata.AxisDependency,
	duration time.Duration,
	easing animation.EasingFunc,
) {
	origin := c.ValuesForTouch(c.vp.ContentLeft(), c.vp.ContentTop(), dep)
	c.addJob(viewjob.NewAnimatedMoveJob(
		c.jobTarget(dep),
		x-c.xInView()/2, y+c.yInView(dep)/2,
		origin.X, origin.Y,
		duration, easing,
	))
}

// SetVisibleXRangeMaximum limits zooming out so at most maxRange of x is
// shown.
func (c *BarLineChart) SetVisibleXRangeMaximum(maxRange float64) {
	c.vp.SetMinimumScaleX(c.xAxis.Range() / maxRange)
}

// SetVisibleXRangeMinimum limits zooming in so at least minRange of x is
// shown.
func (c *BarLineChart) SetVisibleXRangeMinimum(minRange float64) {
	c.vp.SetMaximumScaleX(c.xAxis.Range() / minRange)
}

// SetVisibleXRange bounds the visible x range from both sides.
func (c *BarLineChart) SetVisibleXRange(minRange, maxRange float64) {
	r := c.xAxis.Range()
	c.vp.SetMinMaxScaleX(r/maxRange, r/minRange)
}

// SetVisibleYRangeMaximum limits zooming out so at most maxRange of the
// axis dep is shown.
func (c *BarLineChart) SetVisibleYRangeMaximum(maxRange float64, dep chartdata.AxisDependency) {
	c.vp.SetMinimumScaleY(c.Axis(dep).Range() / maxRange)
}

// SetVisibleYRangeMinimum limits zooming in so at least minRange of the
// axis dep is shown.
func (c *BarLineChart) SetVisibleYRangeMinimum(minRange float64, dep chartdata.AxisDependency) {
	c.vp.SetMaximumScaleY(c.Axis(dep).Range() / minRange)
}

// SetVisibleYRange bounds the visible range of the axis dep from both
// sides.
func (c *BarLineChart) SetVisibleYRange(minRange, maxRange float64, dep chartdata.AxisDependency) {
	r := c.Axis(dep).Range()
	c.vp.SetMinMaxScaleY(r/maxRange, r/minRange)
}
