// Package viewjob defers and animates viewport changes.
//
// A job is created for a value-space target and converts it to pixels when
// it runs, so a chart can queue jobs until it knows its size.
package viewjob

import (
	"time"

	"github.com/wandb/wandb/chartcore/internal/animation"
	"github.com/wandb/wandb/chartcore/internal/axis"
	"github.com/wandb/wandb/chartcore/internal/geom"
	"github.com/wandb/wandb/chartcore/internal/transform"
	"github.com/wandb/wandb/chartcore/internal/viewport"
)

// Job is a viewport change.
type Job interface {
	// Run applies the change, or starts it if it is animated.
	Run(now time.Time)
}

// Target is what every job acts on.
type Target struct {
	Viewport    *viewport.Handler
	Transformer *transform.Transformer

	// OnDone is called after the job has changed the viewport, for the
	// chart to recompute its offsets. Optional.
	OnDone func()
}

func (t Target) done() {
	if t.OnDone != nil {
		t.OnDone()
	}
}

// MoveJob moves the viewport so the value (X, Y) is at the content's top
// left corner.
type MoveJob struct {
	Target
	X, Y float64
}

func (j *MoveJob) Run(time.Time) {
	pt := j.Transformer.PixelForValues(j.X, j.Y)
	j.Viewport.Refresh(j.Viewport.CenterViewPort(pt), true)
	j.done()
}

// ZoomJob sets the zoom and then centers the viewport on (X, Y).
type ZoomJob struct {
	Target
	X, Y           float64
	ScaleX, ScaleY float64

	XAxis *axis.XAxis
	YAxis *axis.YAxis
}

func (j *ZoomJob) Run(time.Time) {
	vp := j.Viewport
	vp.Refresh(vp.SetZoom(j.ScaleX, j.ScaleY), false)

	yInView := j.YAxis.Range() / vp.ScaleY()
	xInView := j.XAxis.Range() / vp.ScaleX()

	pt := j.Transformer.PixelForValues(j.X-xInView/2, j.Y+yInView/2)
	vp.Refresh(vp.Translate(pt), true)
	j.done()
}

// animated is the clock shared by the animated jobs.
type animated struct {
	Duration time.Duration

	// Easing defaults to linear.
	Easing animation.EasingFunc

	phase   float64
	start   time.Time
	running bool
}

func (a *animated) begin(now time.Time) {
	if a.Easing == nil {
		a.Easing = animation.Linear.Func()
	}
	a.start = now
	a.running = true
	a.advance(now)
}

func (a *animated) advance(now time.Time) {
	elapsed := min(max(now.Sub(a.start), 0), a.Duration)
	a.phase = a.Easing(elapsed, a.Duration)
}

func (a *animated) finished(now time.Time) bool {
	return !now.Before(a.start.Add(a.Duration))
}

// Phase is the current progress of the animation, 1 when done.
func (a *animated) Phase() float64 { return a.phase }

// IsRunning reports whether the animation was started and not stopped.
func (a *animated) IsRunning() bool { return a.running }

// lerp interpolates from a to b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// AnimatedMoveJob animates a MoveJob from the value (OriginX, OriginY).
type AnimatedMoveJob struct {
	Target
	animated

	X, Y             float64
	OriginX, OriginY float64
}

func NewAnimatedMoveJob(
	target Target,
	x, y, originX, originY float64,
	duration time.Duration,
	easing animation.EasingFunc,
) *AnimatedMoveJob {
	return &AnimatedMoveJob{
		Target:   target,
		animated: animated{Duration: duration, Easing: easing},
		X:        x,
		Y:        y,
		OriginX:  originX,
		OriginY:  originY,
	}
}

// Run starts the animation at now.
func (j *AnimatedMoveJob) Run(now time.Time) {
	j.begin(now)
}

// Tick advances the animation and reports whether it is still running.
func (j *AnimatedMoveJob) Tick(now time.Time) bool {
	if !j.running {
		return false
	}

	j.advance(now)
	j.update()

	if j.finished(now) {
		j.Stop(true)
	}
	return j.running
}

// Stop halts the animation. With finish, it first jumps to the end.
func (j *AnimatedMoveJob) Stop(finish bool) {
	if !j.running {
		return
	}
	j.running = false

	if finish {
		if j.phase != 1 {
			j.phase = 1
			j.update()
		}
		j.done()
	}
}

func (j *AnimatedMoveJob) update() {
	pt := j.Transformer.PixelForValues(
		lerp(j.OriginX, j.X, j.phase),
		lerp(j.OriginY, j.Y, j.phase),
	)
	j.Viewport.Refresh(j.Viewport.CenterViewPort(pt), true)
}

// AnimatedZoomJob animates the zoom from (OriginScaleX, OriginScaleY) to
// (ScaleX, ScaleY) while moving the view's top left corner from the value
// (OriginX, OriginY) to center (CenterX, CenterY).
type AnimatedZoomJob struct {
	Target
	animated

	ScaleX, ScaleY             float64
	OriginScaleX, OriginScaleY float64

	CenterX, CenterY float64
	OriginX, OriginY float64

	XAxis *axis.XAxis
	YAxis *axis.YAxis
}

// Run starts the animation at now.
func (j *AnimatedZoomJob) Run(now time.Time) {
	j.begin(now)
}

// Tick advances the animation and reports whether it is still running.
func (j *AnimatedZoomJob) Tick(now time.Time) bool {
	if !j.running {
		return false
	}

	j.advance(now)
	j.update()

	if j.finished(now) {
		j.Stop(true)
	}
	return j.running
}

// Stop halts the animation. With finish, it first jumps to the end.
func (j *AnimatedZoomJob) Stop(finish bool) {
	if !j.running {
		return
	}
	j.running = false

	if finish {
		if j.phase != 1 {
			j.phase = 1
			j.update()
		}
		j.done()
	}
}

func (j *AnimatedZoomJob) update() {
	vp := j.Viewport

	scaleX := lerp(j.OriginScaleX, j.ScaleX, j.phase)
	scaleY := lerp(j.OriginScaleY, j.ScaleY, j.phase)
	vp.Refresh(vp.SetZoom(scaleX, scaleY), false)

	yInView := j.YAxis.Range() / vp.ScaleY()
	xInView := j.XAxis.Range() / vp.ScaleX()

	pt := j.Transformer.PointValueToPixel(geom.Point{
		X: lerp(j.OriginX, j.CenterX-xInView/2, j.phase),
		Y: lerp(j.OriginY, j.CenterY+yInView/2, j.phase),
	})
	vp.Refresh(vp.Translate(pt), true)
}
