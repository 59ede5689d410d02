// Package animation drives the x and y phases that charts scale their
// values by while animating in.
//
// There is no internal timer. The owner calls Tick once per frame with the
// frame's time, which keeps animations deterministic under test.
package animation

import (
	"time"
)

//go:generate mockgen -package=animationtest -destination=animationtest/observer_mock.go . Observer

// Observer is notified as an Animator advances.
type Observer interface {
	// AnimatorUpdated is called after the phases changed.
	AnimatorUpdated(a *Animator)

	// AnimatorStopped is called once when an animation ends or is stopped.
	AnimatorStopped(a *Animator)
}

// Animator interpolates two independent phases over time.
//
// Each phase has its own start, duration and easing. Both phases rest at 1
// when no animation is running.
type Animator struct {
	observer Observer

	phaseX, phaseY float64

	x, y timeline

	running bool
}

// timeline is the schedule of one phase.
type timeline struct {
	enabled  bool
	start    time.Time
	duration time.Duration
	easing   EasingFunc
}

func (tl *timeline) set(now time.Time, duration time.Duration, easing EasingFunc) {
	if easing == nil {
		easing = Linear.Func()
	}

	tl.enabled = duration > 0
	tl.start = now
	tl.duration = duration
	tl.easing = easing
}

func (tl *timeline) end() time.Time {
	return tl.start.Add(tl.duration)
}

func (tl *timeline) phase(now time.Time) float64 {
	elapsed := min(max(now.Sub(tl.start), 0), tl.duration)
	return tl.easing(elapsed, tl.duration)
}

func NewAnimator() *Animator {
	return &Animator{phaseX: 1, phaseY: 1}
}

// SetObserver sets the observer notified of updates; nil disables
// notifications.
func (a *Animator) SetObserver(o Observer) {
	a.observer = o
}

// PhaseX is the current x phase, 1 when idle.
func (a *Animator) PhaseX() float64 { return a.phaseX }

// PhaseY is the current y phase, 1 when idle.
func (a *Animator) PhaseY() float64 { return a.phaseY }

// SetPhaseX overrides the x phase outside of an animation.
func (a *Animator) SetPhaseX(phase float64) { a.phaseX = phase }

// SetPhaseY overrides the y phase outside of an animation.
func (a *Animator) SetPhaseY(phase float64) { a.phaseY = phase }

// IsRunning reports whether an animation is in progress.
func (a *Animator) IsRunning() bool { return a.running }

// Animate stops any running animation and starts animating both phases
// from now.
//
// A zero duration leaves that phase unchanged. A nil easing is linear.
func (a *Animator) Animate(
	now time.Time,
	xDuration, yDuration time.Duration,
	easingX, easingY EasingFunc,
) {
	a.Stop()

	a.x.set(now, xDuration, easingX)
	a.y.set(now, yDuration, easingY)
	a.start(now)
}

// AnimateX (re)starts the x phase, leaving a running y animation alone.
func (a *Animator) AnimateX(now time.Time, duration time.Duration, easing EasingFunc) {
	a.x.set(now, duration, easing)
	a.start(now)
}

// AnimateY (re)starts the y phase, leaving a running x animation alone.
func (a *Animator) AnimateY(now time.Time, duration time.Duration, easing EasingFunc) {
	a.y.set(now, duration, easing)
	a.start(now)
}

func (a *Animator) start(now time.Time) {
	a.updatePhases(now)
	a.running = a.x.enabled || a.y.enabled
}

func (a *Animator) updatePhases(now time.Time) {
	if a.x.enabled {
		a.phaseX = a.x.phase(now)
	}
	if a.y.enabled {
		a.phaseY = a.y.phase(now)
	}
}

// endTime is the latest end of the enabled phases.
func (a *Animator) endTime() time.Time {
	var end time.Time
	if a.x.enabled {
		end = a.x.end()
	}
	if a.y.enabled && a.y.end().After(end) {
		end = a.y.end()
	}
	return end
}

// Tick advances the phases to now and notifies the observer.
//
// Once now reaches the end of both phases, the animation stops. It returns
// whether an animation was running.
func (a *Animator) Tick(now time.Time) bool {
	if !a.running {
		return false
	}

	a.updatePhases(now)
	a.notifyUpdated()

	if !now.Before(a.endTime()) {
		a.Stop()
	}
	return true
}

// Stop ends a running animation.
//
// Phases that have not reached 1 are set to 1 and the observer gets one
// more update before the stop notification. Stopping an idle animator does
// nothing.
func (a *Animator) Stop() {
	if !a.running {
		return
	}

	a.running = false
	a.x.enabled = false
	a.y.enabled = false

	if a.phaseX != 1 || a.phaseY != 1 {
		a.phaseX = 1
		a.phaseY = 1
		a.notifyUpdated()
	}

	if a.observer != nil {
		a.observer.AnimatorStopped(a)
	}
}

func (a *Animator) notifyUpdated() {
	if a.observer != nil {
		a.observer.AnimatorUpdated(a)
	}
}
