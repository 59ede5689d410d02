package observability

import (
	"time"

	lru "github.com/hashicorp/golang-lru"
)

// RepeatFilter drops log messages that repeat within a time window.
//
// Chart misuse, like appending to a missing series, tends to happen once
// per frame; the filter keeps the log readable by emitting such a message
// at most once per window along with a count of the dropped copies.
//
// Memory usage is limited with an LRU cache keyed by message. If many
// different messages repeat frequently, some repeats may get through.
//
// A nil value lets all messages through.
type RepeatFilter struct {
	cache  *lru.Cache
	window time.Duration
}

type repeatState struct {
	lastLogged time.Time
	suppressed int
}

// NewRepeatFilter returns a RepeatFilter tracking up to size distinct
// messages and allowing each one at most once per window.
func NewRepeatFilter(size int, window time.Duration) (*RepeatFilter, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}

	return &RepeatFilter{cache: cache, window: window}, nil
}

// Allow reports whether msg should be logged now.
//
// When it returns true, suppressed is the number of copies of msg dropped
// since it was last allowed.
func (f *RepeatFilter) Allow(msg string) (ok bool, suppressed int) {
	if f == nil {
		return true, 0
	}

	now := time.Now()

	value, seen := f.cache.Get(msg)
	if !seen {
		f.cache.Add(msg, &repeatState{lastLogged: now})
		return true, 0
	}

	state := value.(*repeatState)
	if now.Sub(state.lastLogged) < f.window {
		state.suppressed++
		return false, 0
	}

	suppressed = state.suppressed
	state.lastLogged = now
	state.suppressed = 0
	return true, suppressed
}
