// Package debounce coalesces redraw requests.
package debounce

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/wandb/wandb/chartcore/internal/observability"
)

// Debouncer collapses bursts of invalidations into rate-limited redraws.
//
// Callers mark that a redraw is needed with SetNeedsDebounce, any number of
// times, and call Debounce once per frame. The redraw function runs only if
// something was marked and the limiter has a token.
//
// A nil Debouncer is valid and does nothing.
type Debouncer struct {
	limiter       *rate.Limiter
	finished      bool
	needsDebounce bool
	logger        *observability.CoreLogger

	// skipped counts redraws the limiter held back since the last flush.
	skipped int
}

func NewDebouncer(
	eventRate rate.Limit,
	burstSize int,
	logger *observability.CoreLogger,
) *Debouncer {
	if logger == nil {
		logger = observability.NewNoOpLogger()
	}

	return &Debouncer{
		limiter: rate.NewLimiter(eventRate, burstSize),
		logger:  logger,
	}
}

func (d *Debouncer) SetNeedsDebounce() {
	if d == nil {
		return
	}
	d.needsDebounce = true
}

func (d *Debouncer) UnsetNeedsDebounce() {
	if d == nil {
		return
	}
	d.needsDebounce = false
}

// NeedsDebounce reports whether a redraw is pending.
func (d *Debouncer) NeedsDebounce() bool {
	return d != nil && d.needsDebounce
}

// Debounce is DebounceAt with the current time.
func (d *Debouncer) Debounce(f func()) {
	d.DebounceAt(time.Now(), f)
}

// DebounceAt calls f if a redraw is pending and the limiter allows an
// event at now.
func (d *Debouncer) DebounceAt(now time.Time, f func()) {
	if d == nil || d.finished || !d.needsDebounce {
		return
	}
	if !d.limiter.AllowN(now, 1) {
		d.skipped++
		return
	}
	d.Flush(f)
}

// Flush calls f if a redraw is pending, regardless of the rate limit.
func (d *Debouncer) Flush(f func()) {
	if d == nil || d.finished {
		return
	}
	if d.needsDebounce {
		d.logger.Debug("debounce: redrawing", "skipped", d.skipped)
		f()
		d.UnsetNeedsDebounce()
		d.skipped = 0
	}
}

// Stop makes all future debounce operations no-ops.
func (d *Debouncer) Stop() {
	if d == nil {
		return
	}
	d.finished = true
}
