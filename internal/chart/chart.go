// Package chart composes data, axes, viewport, transformers, animator and
// highlighter into charts that a renderer can draw and a touch layer can
// drive.
//
// Charts do no drawing and run no timers. The owner calls Tick once per
// frame; redraws are requested through the Redraw callback, rate limited
// to the configured frame rate.
package chart

import (
	"math"
	"time"

	"golang.org/x/time/rate"

	"github.com/wandb/wandb/chartcore/internal/animation"
	"github.com/wandb/wandb/chartcore/internal/axis"
	"github.com/wandb/wandb/chartcore/internal/chartconfig"
	"github.com/wandb/wandb/chartcore/internal/chartdata"
	"github.com/wandb/wandb/chartcore/internal/debounce"
	"github.com/wandb/wandb/chartcore/internal/format"
	"github.com/wandb/wandb/chartcore/internal/highlight"
	"github.com/wandb/wandb/chartcore/internal/observability"
	"github.com/wandb/wandb/chartcore/internal/viewjob"
	"github.com/wandb/wandb/chartcore/internal/viewport"
)

//go:generate mockgen -package=charttest -destination=charttest/delegate_mock.go . Delegate

// Chart is what every chart kind offers its owner.
type Chart interface {
	// Data returns the chart's data, or nil.
	Data() chartdata.Data

	// SetSize sets the chart size in pixels.
	SetSize(width, height float64)

	// HighlightAt returns the highlight for a touched pixel without
	// selecting it.
	HighlightAt(x, y float64) (highlight.Highlight, bool)

	// Highlighted returns the selected highlights.
	Highlighted() []highlight.Highlight

	// Tick advances animations to now and reports whether any is running.
	Tick(now time.Time) bool
}

// Delegate is notified of user interaction with a chart.
type Delegate interface {
	// ChartValueSelected is called when a value is selected.
	ChartValueSelected(c Chart, entry chartdata.Valuer, h highlight.Highlight)

	// ChartValueNothingSelected is called when the selection is cleared.
	ChartValueNothingSelected(c Chart)

	// ChartScaled is called after the chart was zoomed by a gesture.
	ChartScaled(c Chart, scaleX, scaleY float64)

	// ChartTranslated is called after the chart was dragged.
	ChartTranslated(c Chart, dx, dy float64)
}

// Params configures a new chart.
type Params struct {
	Logger *observability.CoreLogger

	// Now is the clock used to start viewport jobs and animations.
	//
	// Defaults to time.Now.
	Now func() time.Time

	// Redraw is called from Tick when the chart changed. Optional.
	Redraw func()

	// FrameRate caps Redraw calls per second.
	//
	// Defaults to chartconfig.DefaultFrameRate.
	FrameRate int
}

// animatedJob is a viewport job that runs over several frames.
type animatedJob interface {
	viewjob.Job
	Tick(now time.Time) bool
	Stop(finish bool)
}

// base is the state shared by all chart kinds.
type base struct {
	// self is the outer chart, passed to the delegate.
	self Chart

	data        chartdata.Data
	highlighter highlight.Highlighter

	vp       *viewport.Handler
	animator *animation.Animator
	delegate Delegate

	logger    *observability.CoreLogger
	debouncer *debounce.Debouncer
	redraw    func()
	now       func() time.Time

	highlighted     []highlight.Highlight
	lastHighlighted *highlight.Highlight

	highlightPerTap      bool
	maxHighlightDistance float64

	extraLeft, extraTop, extraRight, extraBottom float64

	// defaultFormatter formats values of series without a formatter. Its
	// decimals follow the data.
	defaultFormatter *format.DefaultValueFormatter

	// pending holds jobs added before the chart had a size.
	pending []viewjob.Job

	// running holds animated jobs in flight.
	running []animatedJob
}

func newBase(params Params) base {
	logger := params.Logger
	if logger == nil {
		logger = observability.NewNoOpLogger()
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	fps := params.FrameRate
	if fps <= 0 {
		fps = chartconfig.DefaultFrameRate
	}

	return base{
		vp:                   viewport.New(),
		animator:             animation.NewAnimator(),
		logger:               logger,
		debouncer:            debounce.NewDebouncer(rate.Limit(fps), 1, logger),
		redraw:               params.Redraw,
		now:                  now,
		highlightPerTap:      true,
		maxHighlightDistance: highlight.DefaultMaxHighlightDistance,
		defaultFormatter:     format.NewDefaultValueFormatter(0),
	}
}

// Data returns the chart's data, or nil.
func (b *base) Data() chartdata.Data { return b.data }

// Viewport returns the chart's viewport handler.
func (b *base) Viewport() *viewport.Handler { return b.vp }

// Animator returns the chart's animator.
func (b *base) Animator() *animation.Animator { return b.animator }

func (b *base) SetDelegate(d Delegate) { b.delegate = d }

// DefaultValueFormatter is the formatter given to series without one.
func (b *base) DefaultValueFormatter() *format.DefaultValueFormatter {
	return b.defaultFormatter
}

// IsEmpty reports whether the chart has no entries to show.
func (b *base) IsEmpty() bool {
	return b.data == nil || b.data.EntryCount() <= 0
}

// MaxHighlightDistance is how far, in pixels, a touch may be from a value
// and still select it.
func (b *base) MaxHighlightDistance() float64 { return b.maxHighlightDistance }

func (b *base) SetMaxHighlightDistance(d float64) { b.maxHighlightDistance = d }

// SetHighlightPerTap enables selecting values with Tap.
func (b *base) SetHighlightPerTap(enabled bool) { b.highlightPerTap = enabled }

func (b *base) IsHighlightPerTapEnabled() bool { return b.highlightPerTap }

func (b *base) setExtraOffsets(left, top, right, bottom float64) {
	b.extraLeft = left
	b.extraTop = top
	b.extraRight = right
	b.extraBottom = bottom
}

// invalidate requests a redraw on the next frame.
func (b *base) invalidate() {
	b.debouncer.SetNeedsDebounce()
}

// NeedsRedraw reports whether a redraw is pending.
func (b *base) NeedsRedraw() bool {
	return b.debouncer.NeedsDebounce()
}

// AnimatorUpdated redraws the chart as its animation advances.
func (b *base) AnimatorUpdated(*animation.Animator) { b.invalidate() }

func (b *base) AnimatorStopped(*animation.Animator) {}

// Animate animates both phases from 0 to 1.
//
// A zero duration leaves that phase alone. A nil easing is linear.
func (b *base) Animate(
	xDuration, yDuration time.Duration,
	easingX, easingY animation.EasingFunc,
) {
	b.animator.Animate(b.now(), xDuration, yDuration, easingX, easingY)
}

func (b *base) AnimateX(duration time.Duration, easing animation.EasingFunc) {
	b.animator.AnimateX(b.now(), duration, easing)
}

func (b *base) AnimateY(duration time.Duration, easing animation.EasingFunc) {
	b.animator.AnimateY(b.now(), duration, easing)
}

// PhaseY is the animator's current y phase.
func (b *base) PhaseY() float64 { return b.animator.PhaseY() }

// Tick advances the animator and animated viewport jobs to now, then
// redraws if needed.
//
// It reports whether anything is still animating.
func (b *base) Tick(now time.Time) bool {
	busy := b.animator.Tick(now) && b.animator.IsRunning()

	running := b.running[:0]
	for _, job := range b.running {
		if job.Tick(now) {
			running = append(running, job)
		}
	}
	clear(b.running[len(running):])
	b.running = running

	if b.redraw != nil {
		b.debouncer.DebounceAt(now, b.redraw)
	}

	return busy || len(b.running) > 0
}

// Flush redraws now if a redraw is pending, ignoring the frame rate.
func (b *base) Flush() {
	if b.redraw != nil {
		b.debouncer.Flush(b.redraw)
	}
}

// addJob runs a viewport job, or queues it until the chart has a size.
func (b *base) addJob(job viewjob.Job) {
	if !b.vp.HasChartDimens() {
		b.pending = append(b.pending, job)
		return
	}
	b.runJob(job)
}

func (b *base) runJob(job viewjob.Job) {
	if anim, ok := job.(animatedJob); ok {
		for _, running := range b.running {
			running.Stop(false)
		}
		b.running = append(b.running[:0], anim)
	}
	job.Run(b.now())
}

func (b *base) runPendingJobs() {
	jobs := b.pending
	b.pending = nil
	for _, job := range jobs {
		b.runJob(job)
	}
}

// ClearViewportJobs drops jobs queued before the chart had a size and
// stops running animated jobs where they are.
func (b *base) ClearViewportJobs() {
	b.pending = nil
	for _, job := range b.running {
		job.Stop(false)
	}
	b.running = nil
}

// setupDefaultFormatter sets the default formatter's decimals from the
// magnitude of the data, and gives it to every series without one.
func (b *base) setupDefaultFormatter(d chartdata.Data) {
	lo, hi := d.YMin(), d.YMax()

	var reference float64
	if d.EntryCount() >= 2 {
		reference = math.Abs(hi - lo)
	} else {
		reference = max(math.Abs(lo), math.Abs(hi))
	}
	b.defaultFormatter.SetDecimals(valueDecimals(reference))

	for i := range d.DataSetCount() {
		set, ok := d.DataSetAt(i)
		if !ok {
			continue
		}
		if f := set.ValueFormatter(); f == nil || f == format.ValueFormatter(b.defaultFormatter) {
			set.SetValueFormatter(b.defaultFormatter)
		}
	}
}

// valueDecimals is the number of decimals that show the significant
// digits of values spread over reference, plus two.
func valueDecimals(reference float64) int {
	if reference == 0 || math.IsNaN(reference) || math.IsInf(reference, 0) {
		return 0
	}
	r := axis.RoundToNextSignificant(reference)
	if math.IsInf(r, 0) {
		return 0
	}
	return max(int(math.Ceil(-math.Log10(r)))+2, 0)
}

// Highlighted returns the selected highlights.
func (b *base) Highlighted() []highlight.Highlight { return b.highlighted }

// ValuesToHighlight reports whether anything is selected.
func (b *base) ValuesToHighlight() bool { return len(b.highlighted) > 0 }

// HighlightAt returns the highlight for a touched pixel without selecting
// it.
func (b *base) HighlightAt(x, y float64) (highlight.Highlight, bool) {
	if b.data == nil || b.highlighter == nil {
		return highlight.Highlight{}, false
	}
	return b.highlighter.Highlight(x, y)
}

// HighlightValues replaces the selection without notifying the delegate.
func (b *base) HighlightValues(highs []highlight.Highlight) {
	b.highlighted = highs
	if len(highs) == 0 {
		b.lastHighlighted = nil
	} else {
		last := highs[0]
		b.lastHighlighted = &last
	}
	b.invalidate()
}

// HighlightValue selects h if it refers to an entry, else clears the
// selection.
func (b *base) HighlightValue(h highlight.Highlight, callDelegate bool) {
	entry, ok := chartdata.EntryForHighlight(
		b.data, h.DataIndex, h.DataSetIndex, h.X, h.Y)
	if !ok {
		b.ClearHighlight(callDelegate)
		return
	}

	b.highlighted = []highlight.Highlight{h}
	if callDelegate && b.delegate != nil {
		b.delegate.ChartValueSelected(b.self, entry, h)
	}
	b.invalidate()
}

// HighlightValueAt selects the entry at (x, y) in series dataSetIndex. A
// NaN y matches any entry at x.
func (b *base) HighlightValueAt(x, y float64, dataSetIndex int, callDelegate bool) {
	if b.data == nil {
		b.logger.CaptureWarn("chart: value not highlighted, no data")
		return
	}
	if dataSetIndex < 0 || dataSetIndex >= b.data.DataSetCount() {
		b.ClearHighlight(callDelegate)
		return
	}
	b.HighlightValue(highlight.New(x, y, dataSetIndex), callDelegate)
}

// ClearHighlight clears the selection.
func (b *base) ClearHighlight(callDelegate bool) {
	b.highlighted = nil
	b.lastHighlighted = nil
	if callDelegate && b.delegate != nil {
		b.delegate.ChartValueNothingSelected(b.self)
	}
	b.invalidate()
}

// Tap selects the value under a touched pixel. Tapping the selected
// value, or nothing, clears the selection.
func (b *base) Tap(x, y float64) {
	if !b.highlightPerTap || b.data == nil {
		return
	}

	h, ok := b.HighlightAt(x, y)
	if !ok || (b.lastHighlighted != nil && h.Equal(*b.lastHighlighted)) {
		b.ClearHighlight(true)
		return
	}

	b.HighlightValue(h, true)
	if len(b.highlighted) > 0 {
		b.lastHighlighted = &h
	}
}

// EntryForHighlight returns the entry h refers to.
func (b *base) EntryForHighlight(h highlight.Highlight) (chartdata.Valuer, bool) {
	return chartdata.EntryForHighlight(
		b.data, h.DataIndex, h.DataSetIndex, h.X, h.Y)
}
