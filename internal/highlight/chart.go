package highlight

import (
	"math"

	"github.com/wandb/wandb/chartcore/internal/chartdata"
	"github.com/wandb/wandb/chartcore/internal/geom"
)

// ChartHighlighter highlights line, scatter, candle and bubble data.
//
// A touch selects the entries closest to the touched x value in every
// highlight-enabled series, then keeps the one nearest to the touch in
// pixels, if it is within the provider's MaxHighlightDistance.
type ChartHighlighter struct {
	provider DataProvider

	// collect returns the candidate highlights at an x value.
	collect func(xValue, x, y float64) []Highlight

	// distance measures how far a candidate is from the touch.
	distance func(x1, y1, x2, y2 float64) float64
}

func NewChartHighlighter(provider DataProvider) *ChartHighlighter {
	h := &ChartHighlighter{provider: provider, distance: euclidean}
	h.collect = func(xValue, _, _ float64) []Highlight {
		return h.collectFrom(provider.Data(), xValue)
	}
	return h
}

func euclidean(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}

// Highlight returns the highlight for the touched pixel (x, y).
func (h *ChartHighlighter) Highlight(x, y float64) (Highlight, bool) {
	pos, ok := h.valuesForTouch(x, y)
	if !ok {
		return Highlight{}, false
	}
	return h.highlightForX(pos.X, x, y)
}

// valuesForTouch converts a pixel to values of the left axis.
func (h *ChartHighlighter) valuesForTouch(x, y float64) (geom.Point, bool) {
	t := h.provider.Transformer(chartdata.AxisLeft)
	if t == nil {
		return geom.Point{}, false
	}
	return t.ValueForTouchPoint(x, y), true
}

func (h *ChartHighlighter) highlightForX(xValue, x, y float64) (Highlight, bool) {
	candidates := h.collect(xValue, x, y)
	if len(candidates) == 0 {
		return Highlight{}, false
	}

	// Prefer the axis whose candidates are vertically closer to the touch.
	axis := chartdata.AxisRight
	if minDistance(candidates, y, chartdata.AxisLeft) <
		minDistance(candidates, y, chartdata.AxisRight) {
		axis = chartdata.AxisLeft
	}

	return h.closestByPixel(candidates, x, y, axis, h.provider.MaxHighlightDistance())
}

// minDistance is the smallest vertical pixel distance from y to a candidate
// on the axis, or MaxFloat64 if there is none.
func minDistance(candidates []Highlight, y float64, axis chartdata.AxisDependency) float64 {
	distance := math.MaxFloat64
	for _, c := range candidates {
		if c.Axis != axis {
			continue
		}
		distance = min(distance, math.Abs(c.YPx-y))
	}
	return distance
}

// closestByPixel returns the candidate on the axis nearest to (x, y) that is
// closer than maxDistance.
func (h *ChartHighlighter) closestByPixel(
	candidates []Highlight,
	x, y float64,
	axis chartdata.AxisDependency,
	maxDistance float64,
) (Highlight, bool) {
	var closest Highlight
	found := false
	distance := maxDistance

	for _, c := range candidates {
		if c.Axis != axis {
			continue
		}

		d := h.distance(x, y, c.XPx, c.YPx)
		if d < distance {
			closest = c
			distance = d
			found = true
		}
	}

	return closest, found
}

func (h *ChartHighlighter) collectFrom(d chartdata.Data, xValue float64) []Highlight {
	if d == nil {
		return nil
	}

	var highlights []Highlight
	for i := range d.DataSetCount() {
		set, ok := d.DataSetAt(i)
		if !ok || !set.IsHighlightEnabled() {
			continue
		}
		highlights = append(highlights,
			h.BuildHighlights(set, i, xValue, chartdata.RoundClosest)...)
	}
	return highlights
}

// BuildHighlights returns highlights for the entries of set at xValue.
//
// If no entry sits exactly at xValue, it uses the entries at the x of the
// entry picked by rounding.
func (h *ChartHighlighter) BuildHighlights(
	set chartdata.DataSet,
	dataSetIndex int,
	xValue float64,
	rounding chartdata.Rounding,
) []Highlight {
	values := set.ValuesForXValue(xValue)
	if len(values) == 0 {
		i := set.EntryIndex(xValue, math.NaN(), rounding)
		if closest, ok := set.ValueAt(i); ok {
			values = set.ValuesForXValue(closest.X())
		}
	}

	t := h.provider.Transformer(set.AxisDependency())
	if t == nil {
		return nil
	}

	highlights := make([]Highlight, 0, len(values))
	for _, v := range values {
		px := t.PixelForValues(v.X(), v.Y())

		high := New(v.X(), v.Y(), dataSetIndex)
		high.XPx = px.X
		high.YPx = px.Y
		high.Axis = set.AxisDependency()
		highlights = append(highlights, high)
	}
	return highlights
}
