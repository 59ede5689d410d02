package debounce_test

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/wandb/wandb/chartcore/internal/debounce"
	"github.com/wandb/wandb/chartcore/internal/observability"
	"github.com/wandb/wandb/chartcore/internal/observabilitytest"
)

func TestNewDebouncer(t *testing.T) {
	logger := observability.NewNoOpLogger()
	debouncer := debounce.NewDebouncer(rate.Every(time.Second), 1, logger)
	assert.NotNil(t, debouncer)
	assert.False(t, debouncer.NeedsDebounce())
}

func TestDebouncer(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		logger := observabilitytest.NewTestLogger(t)
		debouncer := debounce.NewDebouncer(rate.Every(50*time.Millisecond), 1, logger)

		count := 0
		redraw := func() { count++ }

		debouncer.SetNeedsDebounce()
		debouncer.Debounce(redraw)
		assert.Equal(t, 1, count)

		debouncer.SetNeedsDebounce()
		debouncer.Debounce(redraw)
		assert.Equal(t, 1, count, "limited")
		assert.True(t, debouncer.NeedsDebounce())

		time.Sleep(60 * time.Millisecond)
		debouncer.Debounce(redraw)
		assert.Equal(t, 2, count)
		assert.False(t, debouncer.NeedsDebounce())
	})
}

func TestDebounceAt_NothingPending(t *testing.T) {
	debouncer := debounce.NewDebouncer(rate.Inf, 1, nil)
	count := 0

	debouncer.DebounceAt(time.Unix(0, 0), func() { count++ })

	assert.Equal(t, 0, count)
}

func TestDebounceAt_ExplicitClock(t *testing.T) {
	debouncer := debounce.NewDebouncer(rate.Every(time.Second), 1, nil)
	start := time.Unix(100, 0)
	count := 0

	for i := range 10 {
		debouncer.SetNeedsDebounce()
		debouncer.DebounceAt(start.Add(time.Duration(i)*100*time.Millisecond), func() { count++ })
	}
	assert.Equal(t, 1, count)

	debouncer.DebounceAt(start.Add(time.Second), func() { count++ })
	assert.Equal(t, 2, count)
}

func TestFlushAndStop(t *testing.T) {
	debouncer := debounce.NewDebouncer(rate.Every(time.Hour), 0, nil)
	count := 0

	debouncer.SetNeedsDebounce()
	debouncer.Flush(func() { count++ })
	assert.Equal(t, 1, count)

	debouncer.Stop()
	debouncer.SetNeedsDebounce()
	debouncer.Flush(func() { count++ })
	assert.Equal(t, 1, count)
}

func TestNilDebouncer(t *testing.T) {
	var debouncer *debounce.Debouncer

	assert.NotPanics(t, func() {
		debouncer.SetNeedsDebounce()
		debouncer.Debounce(func() {})
		debouncer.Flush(func() {})
		debouncer.Stop()
	})
}
