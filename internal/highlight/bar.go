package highlight

import (
	"math"

	"github.com/wandb/wandb/chartcore/internal/chartdata"
)

// BarHighlighter highlights bar data.
//
// Bars are selected by x distance alone. A touch on a stacked bar selects
// the segment under it unless full-bar highlighting is enabled.
type BarHighlighter struct {
	*ChartHighlighter
	provider BarDataProvider
}

func NewBarHighlighter(provider BarDataProvider) *BarHighlighter {
	h := &BarHighlighter{
		ChartHighlighter: NewChartHighlighter(provider),
		provider:         provider,
	}
	h.distance = func(x1, _, x2, _ float64) float64 { return math.Abs(x1 - x2) }
	h.collect = func(xValue, _, _ float64) []Highlight {
		if d := provider.BarData(); d != nil {
			return h.collectFrom(d, xValue)
		}
		return nil
	}
	return h
}

func (h *BarHighlighter) Highlight(x, y float64) (Highlight, bool) {
	high, ok := h.ChartHighlighter.Highlight(x, y)
	if !ok {
		return Highlight{}, false
	}

	high, ok = h.resolveStack(high, x, y)
	if !ok {
		return Highlight{}, false
	}

	if h.provider.IsHighlightFullBarEnabled() {
		high.StackIndex = -1
	}
	return high, true
}

// resolveStack narrows a highlight on a stacked series to the touched
// segment.
func (h *BarHighlighter) resolveStack(high Highlight, x, y float64) (Highlight, bool) {
	d := h.provider.BarData()
	if d == nil {
		return high, true
	}

	set, ok := d.DataSet(high.DataSetIndex)
	if !ok || !set.IsStacked() {
		return high, true
	}

	pos, ok := h.valuesForTouch(x, y)
	if !ok {
		return high, true
	}
	return h.stackedHighlight(high, set, pos.X, pos.Y)
}

func (h *BarHighlighter) stackedHighlight(
	high Highlight,
	set *chartdata.BarSeries,
	xValue, yValue float64,
) (Highlight, bool) {
	entry, ok := set.EntryForXValue(xValue, yValue, chartdata.RoundClosest)
	if !ok {
		return Highlight{}, false
	}
	if !entry.IsStacked() {
		return high, true
	}

	ranges := entry.Ranges()
	if len(ranges) == 0 {
		return Highlight{}, false
	}

	t := h.provider.Transformer(set.AxisDependency())
	if t == nil {
		return Highlight{}, false
	}

	stackIndex := ClosestStackIndex(ranges, yValue)
	px := t.PixelForValues(high.X, ranges[stackIndex].To)

	stacked := New(entry.X(), entry.Y(), high.DataSetIndex)
	stacked.XPx = px.X
	stacked.YPx = px.Y
	stacked.StackIndex = stackIndex
	stacked.Axis = high.Axis
	return stacked, true
}

// ClosestStackIndex returns the index of the range containing value.
//
// A value outside every range maps to the last range if it is above it,
// otherwise to the first. Ranges must not be empty.
func ClosestStackIndex(ranges []chartdata.Range, value float64) int {
	for i, r := range ranges {
		if r.Contains(value) {
			return i
		}
	}

	last := max(len(ranges)-1, 0)
	if value > ranges[last].To {
		return last
	}
	return 0
}
