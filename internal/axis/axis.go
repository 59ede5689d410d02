// Package axis computes axis ranges and tick values.
package axis

import (
	"math"
	"slices"

	"github.com/mattn/go-runewidth"

	"github.com/wandb/wandb/chartcore/internal/format"
)

const (
	defaultLabelCount = 6
	minLabelCount     = 2
	maxLabelCount     = 25
)

// LimitLine is a horizontal or vertical marker at a fixed axis value.
type LimitLine struct {
	Limit float64
	Label string
}

// Axis holds the range and ticks shared by x and y axes.
//
// The zero value is not usable; axes are created by NewXAxis and NewYAxis.
type Axis struct {
	Enabled       bool
	DrawLabels    bool
	DrawAxisLine  bool
	DrawGridLines bool

	// SpaceMin and SpaceMax pad the data range, in axis units.
	SpaceMin float64
	SpaceMax float64

	entries         []float64
	centeredEntries []float64
	decimals        int

	labelCount   int
	forceLabels  bool
	centerLabels bool

	granularity        float64
	granularityEnabled bool

	minimum, maximum float64
	span             float64
	customMin        bool
	customMax        bool

	formatter  format.AxisValueFormatter
	limitLines []LimitLine
}

func newAxis() Axis {
	return Axis{
		Enabled:      true,
		DrawLabels:   true,
		DrawAxisLine: true,
		labelCount:   defaultLabelCount,
		granularity:  1,
	}
}

// Minimum is the lowest value shown on the axis.
func (a *Axis) Minimum() float64 { return a.minimum }

// Maximum is the highest value shown on the axis.
func (a *Axis) Maximum() float64 { return a.maximum }

// Range is |Maximum - Minimum|.
func (a *Axis) Range() float64 { return a.span }

// SetAxisMinimum pins the minimum, overriding the data.
func (a *Axis) SetAxisMinimum(v float64) {
	a.customMin = true
	a.minimum = v
	a.span = math.Abs(a.maximum - v)
}

// SetAxisMaximum pins the maximum, overriding the data.
func (a *Axis) SetAxisMaximum(v float64) {
	a.customMax = true
	a.maximum = v
	a.span = math.Abs(v - a.minimum)
}

// ResetAxisMinimum lets the data decide the minimum again.
func (a *Axis) ResetAxisMinimum() { a.customMin = false }

// ResetAxisMaximum lets the data decide the maximum again.
func (a *Axis) ResetAxisMaximum() { a.customMax = false }

func (a *Axis) IsAxisMinCustom() bool { return a.customMin }
func (a *Axis) IsAxisMaxCustom() bool { return a.customMax }

// Calculate sets the axis range from the data range, padded by SpaceMin
// and SpaceMax.
//
// Pinned bounds are kept as is. A non-finite bound takes the value of the
// other one, and an empty range is widened by 1 on both sides.
func (a *Axis) Calculate(dataMin, dataMax float64) {
	dataMin, dataMax = finiteBounds(dataMin, dataMax)

	lo := dataMin - a.SpaceMin
	if a.customMin {
		lo = a.minimum
	}
	hi := dataMax + a.SpaceMax
	if a.customMax {
		hi = a.maximum
	}

	if hi-lo == 0 {
		hi++
		lo--
	}

	a.minimum, a.maximum = lo, hi
	a.span = math.Abs(hi - lo)
}

// finiteBounds replaces a NaN or infinite bound with the other bound, or
// both with 0.
func finiteBounds(lo, hi float64) (float64, float64) {
	loOK := !math.IsNaN(lo) && !math.IsInf(lo, 0)
	hiOK := !math.IsNaN(hi) && !math.IsInf(hi, 0)

	switch {
	case !loOK && !hiOK:
		return 0, 0
	case !loOK:
		return hi, hi
	case !hiOK:
		return lo, lo
	default:
		return lo, hi
	}
}

// ComputeAxisValues recomputes the tick entries for the span [lo, hi].
//
// lo and hi are usually the visible part of the axis range.
func (a *Axis) ComputeAxisValues(lo, hi float64) {
	ticks := ComputeTicks(lo, hi, a.TickOptions())
	a.entries = ticks.Entries
	a.centeredEntries = ticks.CenteredEntries
	a.decimals = ticks.Decimals
}

// TickOptions returns the axis' tick settings.
func (a *Axis) TickOptions() TickOptions {
	return TickOptions{
		LabelCount:         a.labelCount,
		Force:              a.forceLabels,
		Centered:           a.centerLabels,
		Granularity:        a.granularity,
		GranularityEnabled: a.granularityEnabled,
	}
}

// Entries returns the tick values. Callers must not modify the slice.
func (a *Axis) Entries() []float64 { return a.entries }

// CenteredEntries returns the tick midpoints when labels are centered.
func (a *Axis) CenteredEntries() []float64 { return a.centeredEntries }

// Decimals is the number of fraction digits tick labels need.
func (a *Axis) Decimals() int { return a.decimals }

func (a *Axis) LabelCount() int { return a.labelCount }

// SetLabelCount sets the desired number of ticks, clamped to [2, 25].
//
// With force, exactly that many evenly spaced ticks are produced.
func (a *Axis) SetLabelCount(n int, force bool) {
	a.labelCount = min(max(n, minLabelCount), maxLabelCount)
	a.forceLabels = force
}

func (a *Axis) IsForceLabelsEnabled() bool { return a.forceLabels }

// SetCenterAxisLabels places labels between ticks instead of on them.
func (a *Axis) SetCenterAxisLabels(enabled bool) { a.centerLabels = enabled }

func (a *Axis) IsCenterAxisLabelsEnabled() bool {
	return a.centerLabels && len(a.entries) > 0
}

func (a *Axis) Granularity() float64 { return a.granularity }

// SetGranularity sets the smallest tick interval and enables it.
func (a *Axis) SetGranularity(g float64) {
	a.granularity = g
	a.granularityEnabled = true
}

func (a *Axis) SetGranularityEnabled(enabled bool) { a.granularityEnabled = enabled }
func (a *Axis) IsGranularityEnabled() bool { return a.granularityEnabled }

// ValueFormatter returns the tick label formatter.
//
// An axis without one gets a DefaultValueFormatter following its decimals.
func (a *Axis) ValueFormatter() format.AxisValueFormatter {
	if a.formatter == nil {
		a.formatter = format.NewDefaultValueFormatter(a.decimals)
	}
	return a.formatter
}

// SetValueFormatter sets the tick label formatter; nil restores the default.
func (a *Axis) SetValueFormatter(f format.AxisValueFormatter) {
	a.formatter = f
}

// FormattedLabel returns the label of tick i, or "" if there is no tick i.
func (a *Axis) FormattedLabel(i int) string {
	if i < 0 || i >= len(a.entries) {
		return ""
	}
	return a.ValueFormatter().FormatAxisValue(a.entries[i], a)
}

// LongestLabel returns the widest tick label in terminal cells.
func (a *Axis) LongestLabel() string {
	var longest string
	width := 0
	for i := range a.entries {
		label := a.FormattedLabel(i)
		if w := runewidth.StringWidth(label); w > width {
			longest, width = label, w
		}
	}
	return longest
}

func (a *Axis) AddLimitLine(line LimitLine) {
	a.limitLines = append(a.limitLines, line)
}

// RemoveLimitLine removes the first limit line at the given value.
func (a *Axis) RemoveLimitLine(limit float64) bool {
	i := slices.IndexFunc(a.limitLines, func(l LimitLine) bool {
		return l.Limit == limit
	})
	if i < 0 {
		return false
	}
	a.limitLines = slices.Delete(a.limitLines, i, i+1)
	return true
}

func (a *Axis) RemoveAllLimitLines() { a.limitLines = nil }

// LimitLines returns the limit lines. Callers must not modify the slice.
func (a *Axis) LimitLines() []LimitLine { return a.limitLines }
