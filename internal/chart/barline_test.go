package chart_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/wandb/wandb/chartcore/internal/chart"
	"github.com/wandb/wandb/chartcore/internal/chart/charttest"
	"github.com/wandb/wandb/chartcore/internal/chartconfig"
	"github.com/wandb/wandb/chartcore/internal/chartdata"
	"github.com/wandb/wandb/chartcore/internal/format"
	"github.com/wandb/wandb/chartcore/internal/observabilitytest"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return t0 }

// diagonal returns entries (i, i) for i in [0, n].
func diagonal(n int) []chartdata.Entry {
	entries := make([]chartdata.Entry, 0, n+1)
	for i := range n + 1 {
		entries = append(entries, chartdata.NewEntry(float64(i), float64(i)))
	}
	return entries
}

// bareChart returns a chart whose axes take no space and add no padding,
// so its content is the whole chart.
func bareChart(params chart.Params) *chart.BarLineChart {
	if params.Now == nil {
		params.Now = fixedClock
	}
	c := chart.NewBarLineChart(params)
	c.XAxis().DrawLabels = false
	c.LeftAxis().DrawLabels = false
	c.RightAxis().DrawLabels = false
	c.LeftAxis().SpaceTop, c.LeftAxis().SpaceBottom = 0, 0
	c.RightAxis().SpaceTop, c.RightAxis().SpaceBottom = 0, 0
	return c
}

// lineChart maps x and y in [0, 10] onto a 100x100 chart.
func lineChart(t *testing.T, params chart.Params) (*chart.BarLineChart, *chartdata.LineData) {
	t.Helper()
	c := bareChart(params)
	data := chartdata.NewLineData(chartdata.NewLineSeries(diagonal(10), "a"))
	c.SetData(data)
	c.SetSize(100, 100)
	return c, data
}

func assertPoint(t *testing.T, c *chart.BarLineChart, x, y, wantX, wantY float64) {
	t.Helper()
	p := c.PositionFor(x, y, chartdata.AxisLeft)
	assert.InDelta(t, wantX, p.X, 1e-9, "x")
	assert.InDelta(t, wantY, p.Y, 1e-9, "y")
}

func TestBarLineChart_Layout(t *testing.T) {
	c, _ := lineChart(t, chart.Params{})

	assertPoint(t, c, 5, 5, 50, 50)
	assertPoint(t, c, 0, 0, 0, 100)
	assert.InDelta(t, 0, c.LowestVisibleX(), 1e-9)
	assert.InDelta(t, 10, c.HighestVisibleX(), 1e-9)
	assert.Equal(t, []float64{0, 2, 4, 6, 8, 10}, c.LeftAxis().Entries())
	assert.Equal(t, []float64{0, 2, 4, 6, 8, 10}, c.XAxis().Entries())
}

func TestBarLineChart_RightAxisFallsBackToLeft(t *testing.T) {
	c, _ := lineChart(t, chart.Params{})

	assert.Equal(t, 0.0, c.RightAxis().Minimum())
	assert.Equal(t, 10.0, c.RightAxis().Maximum())
}

func TestBarLineChart_ExtraOffsetsShrinkContent(t *testing.T) {
	c, _ := lineChart(t, chart.Params{})

	c.SetExtraOffsets(10, 0, 10, 20)

	assert.Equal(t, 80.0, c.Viewport().ContentWidth())
	assert.Equal(t, 80.0, c.Viewport().ContentHeight())
	assertPoint(t, c, 0, 0, 10, 80)
	assertPoint(t, c, 10, 10, 90, 0)
}

func TestBarLineChart_DefaultFormatter(t *testing.T) {
	custom := format.NewDefaultValueFormatter(5)
	withFormatter := chartdata.NewLineSeries(diagonal(3), "custom")
	withFormatter.SetValueFormatter(custom)
	plain := chartdata.NewLineSeries(diagonal(10), "plain")

	c := bareChart(chart.Params{})
	c.SetData(chartdata.NewLineData(plain, withFormatter))

	// A y range of 10 needs one decimal.
	assert.Equal(t, 1, c.DefaultValueFormatter().Decimals())
	assert.Same(t, c.DefaultValueFormatter(), plain.ValueFormatter())
	assert.Same(t, custom, withFormatter.ValueFormatter())
}

func TestBarLineChart_DefaultFormatterSingleEntry(t *testing.T) {
	c := bareChart(chart.Params{})
	c.SetData(chartdata.NewLineData(chartdata.NewLineSeries(
		[]chartdata.Entry{chartdata.NewEntry(0, 0.05)}, "a")))

	assert.Equal(t, 4, c.DefaultValueFormatter().Decimals())
}

func TestBarLineChart_RejectsPieData(t *testing.T) {
	logger, buf := observabilitytest.NewRecordingTestLogger(t, nil)
	c := bareChart(chart.Params{Logger: logger})

	c.SetData(chartdata.NewPieData(chartdata.NewPieSeries(
		[]chartdata.PieEntry{chartdata.NewPieEntry(1, "a")}, "pie")))

	assert.Nil(t, c.Data())
	logs := observabilitytest.ExtractLogs(t, buf)
	require.Len(t, logs, 1)
	assert.Equal(t, "WARN", logs[0]["level"])
}

func TestBarLineChart_ZoomNotifiesDelegate(t *testing.T) {
	ctrl := gomock.NewController(t)
	delegate := charttest.NewMockDelegate(ctrl)
	c, _ := lineChart(t, chart.Params{})
	c.SetDelegate(delegate)

	delegate.EXPECT().ChartScaled(c, 2.0, 1.0)
	c.Zoom(2, 1, 0, 100)

	assert.Equal(t, 2.0, c.Viewport().ScaleX())
	assert.InDelta(t, 0, c.LowestVisibleX(), 1e-9)
	assert.InDelta(t, 5, c.HighestVisibleX(), 1e-9)

	// Ticks follow the visible range.
	entries := c.XAxis().Entries()
	require.NotEmpty(t, entries)
	assert.LessOrEqual(t, entries[len(entries)-1], 5+1e-9)
}

func TestBarLineChart_ZoomRespectsDisabledAxis(t *testing.T) {
	c, _ := lineChart(t, chart.Params{})
	c.ScaleYEnabled = false

	c.Zoom(2, 2, 50, 50)

	assert.Equal(t, 2.0, c.Viewport().ScaleX())
	assert.Equal(t, 1.0, c.Viewport().ScaleY())
}

func TestBarLineChart_ZoomInAndReset(t *testing.T) {
	c, _ := lineChart(t, chart.Params{})

	c.ZoomIn()
	assert.InDelta(t, 1.4, c.Viewport().ScaleX(), 1e-9)
	// Zooming about the center keeps the center in place.
	assertPoint(t, c, 5, 5, 50, 50)

	c.ResetZoom()
	assert.True(t, c.Viewport().IsFullyZoomedOut())
}

func TestBarLineChart_Translate(t *testing.T) {
	ctrl := gomock.NewController(t)
	delegate := charttest.NewMockDelegate(ctrl)
	c, _ := lineChart(t, chart.Params{})
	c.Zoom(2, 1, 0, 100)
	c.SetDelegate(delegate)

	gomock.InOrder(
		delegate.EXPECT().ChartTranslated(c, -50.0, 0.0),
		delegate.EXPECT().ChartTranslated(c, -100.0, 0.0),
	)

	assert.True(t, c.Translate(-50, 0))
	assert.InDelta(t, 2.5, c.LowestVisibleX(), 1e-9)
	assert.InDelta(t, 7.5, c.HighestVisibleX(), 1e-9)

	// Dragging stops at the data's edge.
	assert.True(t, c.Translate(-100, 0))
	assert.InDelta(t, 5, c.LowestVisibleX(), 1e-9)
	assert.InDelta(t, 10, c.HighestVisibleX(), 1e-9)
}

func TestBarLineChart_TranslateFullyZoomedOut(t *testing.T) {
	c, _ := lineChart(t, chart.Params{})

	assert.False(t, c.Translate(-50, 0))

	c.DragEnabled = false
	c.Zoom(2, 1, 0, 100)
	assert.False(t, c.Translate(-50, 0))
}

func TestBarLineChart_JobsWaitForSize(t *testing.T) {
	c := bareChart(chart.Params{})
	c.SetData(chartdata.NewLineData(chartdata.NewLineSeries(diagonal(10), "a")))

	c.ZoomAt(2, 2, 5, 5, chartdata.AxisLeft)
	assert.Equal(t, 1.0, c.Viewport().ScaleX(), "no size yet")

	c.SetSize(100, 100)

	assert.Equal(t, 2.0, c.Viewport().ScaleX())
	assert.Equal(t, 2.0, c.Viewport().ScaleY())
	assertPoint(t, c, 5, 5, 50, 50)
}

func TestBarLineChart_CenterViewTo(t *testing.T) {
	c, _ := lineChart(t, chart.Params{})
	c.Zoom(2, 2, 0, 100)

	c.CenterViewTo(5, 5, chartdata.AxisLeft)

	assertPoint(t, c, 5, 5, 50, 50)
}

func TestBarLineChart_MoveViewToX(t *testing.T) {
	c, _ := lineChart(t, chart.Params{})
	c.Zoom(2, 1, 0, 100)

	c.MoveViewToX(3)

	assert.InDelta(t, 3, c.LowestVisibleX(), 1e-9)
	assert.InDelta(t, 8, c.HighestVisibleX(), 1e-9)
}

func TestBarLineChart_CenterViewToAnimated(t *testing.T) {
	c, _ := lineChart(t, chart.Params{})
	c.Zoom(2, 2, 0, 100)

	c.CenterViewToAnimated(5, 5, chartdata.AxisLeft, time.Second, nil)

	assert.True(t, c.Tick(t0.Add(500*time.Millisecond)))
	assert.InDelta(t, 1.25, c.LowestVisibleX(), 1e-9)

	assert.False(t, c.Tick(t0.Add(time.Second)))
	assertPoint(t, c, 5, 5, 50, 50)
}

func TestBarLineChart_ZoomAndCenterAnimated(t *testing.T) {
	c, _ := lineChart(t, chart.Params{})

	c.ZoomAndCenterAnimated(2, 2, 5, 5, chartdata.AxisLeft, time.Second, nil)

	assert.True(t, c.Tick(t0.Add(500*time.Millisecond)))
	assert.InDelta(t, 1.5, c.Viewport().ScaleX(), 1e-9)

	assert.False(t, c.Tick(t0.Add(2*time.Second)))
	assert.Equal(t, 2.0, c.Viewport().ScaleX())
	assertPoint(t, c, 5, 5, 50, 50)
}

func TestBarLineChart_VisibleXRangeMaximum(t *testing.T) {
	c, _ := lineChart(t, chart.Params{})

	c.SetVisibleXRangeMaximum(5)

	assert.Equal(t, 2.0, c.Viewport().MinScaleX())
	assert.InDelta(t, 5, c.VisibleXRange(), 1e-9)
}

func TestBarLineChart_AutoScale(t *testing.T) {
	c, _ := lineChart(t, chart.Params{})
	c.AutoScaleMinMax = true

	c.Zoom(2, 1, 0, 100)

	assert.Equal(t, 0.0, c.LeftAxis().Minimum())
	assert.Equal(t, 5.0, c.LeftAxis().Maximum())
	assertPoint(t, c, 5, 5, 100, 0)
}

func TestBarLineChart_XBounds(t *testing.T) {
	c, data := lineChart(t, chart.Params{})
	set, ok := data.DataSetAt(0)
	require.True(t, ok)

	assert.Equal(t, chart.XBounds{Min: 0, Max: 10, Range: 10}, c.XBounds(set))

	c.Zoom(2, 1, 0, 100)
	c.Translate(-50, 0)
	assert.Equal(t, chart.XBounds{Min: 2, Max: 8, Range: 6}, c.XBounds(set))

	c.AnimateX(time.Second, nil)
	c.Tick(t0.Add(500 * time.Millisecond))
	b := c.XBounds(set)
	assert.Equal(t, 3, b.Range)

	var indices []int
	for i := range b.All() {
		indices = append(indices, i)
	}
	assert.Equal(t, []int{2, 3, 4, 5}, indices)
}

func TestBarLineChart_XBoundsEmptySeries(t *testing.T) {
	c, _ := lineChart(t, chart.Params{})

	empty := chartdata.NewLineSeries(nil, "empty")

	assert.Equal(t, chart.XBounds{}, c.XBounds(empty))
}

func TestBarLineChart_TapSelectsAndToggles(t *testing.T) {
	ctrl := gomock.NewController(t)
	delegate := charttest.NewMockDelegate(ctrl)
	c, _ := lineChart(t, chart.Params{})
	c.SetDelegate(delegate)

	gomock.InOrder(
		delegate.EXPECT().ChartValueSelected(c, chartdata.NewEntry(3, 3), gomock.Any()),
		delegate.EXPECT().ChartValueNothingSelected(c),
	)

	c.Tap(30, 70)
	require.Len(t, c.Highlighted(), 1)
	h := c.Highlighted()[0]
	assert.Equal(t, 3.0, h.X)
	assert.Equal(t, 3.0, h.Y)
	assert.InDelta(t, 30, h.XPx, 1e-9)
	assert.InDelta(t, 70, h.YPx, 1e-9)

	c.Tap(30, 70)
	assert.Empty(t, c.Highlighted())
}

func TestBarLineChart_TapDisabled(t *testing.T) {
	c, _ := lineChart(t, chart.Params{})
	c.SetHighlightPerTap(false)

	c.Tap(30, 70)

	assert.False(t, c.ValuesToHighlight())
}

func TestBarLineChart_HighlightValueAt(t *testing.T) {
	ctrl := gomock.NewController(t)
	delegate := charttest.NewMockDelegate(ctrl)
	c, _ := lineChart(t, chart.Params{})
	c.SetDelegate(delegate)

	gomock.InOrder(
		delegate.EXPECT().ChartValueSelected(c, chartdata.NewEntry(4, 4), gomock.Any()),
		delegate.EXPECT().ChartValueNothingSelected(c),
		delegate.EXPECT().ChartValueNothingSelected(c),
	)

	c.HighlightValueAt(4, math.NaN(), 0, true)
	require.Len(t, c.Highlighted(), 1)

	// No series 5.
	c.HighlightValueAt(4, math.NaN(), 5, true)
	assert.Empty(t, c.Highlighted())

	// No entry at x = 4.5.
	c.HighlightValueAt(4.5, math.NaN(), 0, true)
	assert.Empty(t, c.Highlighted())
}

func TestBarLineChart_EntryAt(t *testing.T) {
	c, _ := lineChart(t, chart.Params{})

	e, ok := c.EntryAt(30, 70)

	require.True(t, ok)
	assert.Equal(t, 3.0, e.X())
}

func TestBarLineChart_DragHighlight(t *testing.T) {
	c, _ := lineChart(t, chart.Params{})

	assert.False(t, c.DragHighlight(30, 70), "per-drag highlighting is off")

	c.HighlightPerDrag = true
	assert.True(t, c.DragHighlight(30, 70))
	require.Len(t, c.Highlighted(), 1)
	assert.Equal(t, 3.0, c.Highlighted()[0].X)

	c.Zoom(2, 1, 0, 100)
	assert.False(t, c.DragHighlight(30, 70), "zoomed in drags pan instead")
}

func TestAddEntry(t *testing.T) {
	logger, buf := observabilitytest.NewRecordingTestLogger(t, nil)
	c, data := lineChart(t, chart.Params{Logger: logger})

	assert.True(t, chart.AddEntry(c, data, chartdata.NewEntry(11, 20), 0))
	assert.Equal(t, 11.0, c.XAxis().Maximum())
	assert.Equal(t, 20.0, c.LeftAxis().Maximum())

	assert.False(t, chart.AddEntry(c, data, chartdata.NewEntry(12, 0), 3))

	logs := observabilitytest.ExtractLogs(t, buf)
	require.Len(t, logs, 1)
	assert.Equal(t, "WARN", logs[0]["level"])
	assert.Equal(t, "chart: no series to add the entry to", logs[0]["msg"])
	assert.Equal(t, 3.0, logs[0]["dataSetIndex"])
}

func TestBarLineChart_Redraw(t *testing.T) {
	redraws := 0
	c, _ := lineChart(t, chart.Params{Redraw: func() { redraws++ }})

	c.Tick(t0)
	assert.Equal(t, 1, redraws)

	c.Tick(t0.Add(time.Second))
	assert.Equal(t, 1, redraws, "nothing changed")

	c.Zoom(2, 1, 0, 100)
	c.Tick(t0.Add(time.Second + time.Millisecond))
	assert.Equal(t, 2, redraws)

	c.Zoom(2, 1, 0, 100)
	c.Tick(t0.Add(time.Second + 2*time.Millisecond))
	assert.Equal(t, 2, redraws, "rate limited")
	assert.True(t, c.NeedsRedraw())

	c.Tick(t0.Add(2 * time.Second))
	assert.Equal(t, 3, redraws)
}

func TestBarLineChart_AnimateRedraws(t *testing.T) {
	c, _ := lineChart(t, chart.Params{})

	c.AnimateY(time.Second, nil)
	assert.Equal(t, 0.0, c.PhaseY())

	assert.True(t, c.Tick(t0.Add(250*time.Millisecond)))
	assert.InDelta(t, 0.25, c.PhaseY(), 1e-9)

	assert.False(t, c.Tick(t0.Add(time.Second)))
	assert.Equal(t, 1.0, c.PhaseY())
}

func TestBarLineChart_ApplyConfig(t *testing.T) {
	c, _ := lineChart(t, chart.Params{})
	cfg := chartconfig.Default()
	cfg.Axis.YUnit = chartconfig.UnitPercent
	cfg.Viewport.DragEnabled = false
	cfg.Viewport.AutoScaleMinMax = true
	cfg.Highlight.FullBar = true
	cfg.Highlight.MaxDistance = 10
	cfg.Offsets.Left = 10

	c.ApplyConfig(cfg)

	assert.False(t, c.DragEnabled)
	assert.True(t, c.AutoScaleMinMax)
	assert.True(t, c.IsHighlightFullBarEnabled())
	assert.Equal(t, 10.0, c.MaxHighlightDistance())
	assert.Equal(t, format.UnitPercent, c.LeftAxis().ValueFormatter())
	assert.Equal(t, 10.0, c.Viewport().ContentLeft())
}

func barChart(t *testing.T) (*chart.BarLineChart, *chartdata.BarData) {
	t.Helper()
	entries := make([]chartdata.BarEntry, 0, 5)
	for i := range 5 {
		entries = append(entries, chartdata.NewBarEntry(float64(i), float64(i+1)))
	}
	data := chartdata.NewBarData(chartdata.NewBarSeries(entries, "bars"))

	c := bareChart(chart.Params{})
	c.SetData(data)
	c.SetSize(100, 100)
	return c, data
}

func TestBarChart_PadsXAxis(t *testing.T) {
	c, _ := barChart(t)

	assert.Equal(t, -0.5, c.XAxis().Minimum())
	assert.Equal(t, 4.5, c.XAxis().Maximum())

	c.FitBars = true
	c.NotifyDataSetChanged()
	assert.InDelta(t, -0.925, c.XAxis().Minimum(), 1e-9)
}

func TestBarChart_LineDataDropsBarPadding(t *testing.T) {
	c, _ := barChart(t)

	c.SetData(chartdata.NewLineData(chartdata.NewLineSeries(diagonal(4), "a")))

	assert.Equal(t, 0.0, c.XAxis().SpaceMin)
	assert.Equal(t, 0.0, c.XAxis().SpaceMax)
	assert.Equal(t, 0.0, c.XAxis().Minimum())
	assert.Equal(t, 4.0, c.XAxis().Maximum())
}

func TestBarLineChart_KeepsCallerXPadding(t *testing.T) {
	c := bareChart(chart.Params{})
	c.XAxis().SpaceMin, c.XAxis().SpaceMax = 1, 2

	c.SetData(chartdata.NewLineData(chartdata.NewLineSeries(diagonal(4), "a")))

	assert.Equal(t, -1.0, c.XAxis().Minimum())
	assert.Equal(t, 6.0, c.XAxis().Maximum())
}

func TestBarChart_BarBounds(t *testing.T) {
	c, _ := barChart(t)

	r, ok := c.BarBounds(chartdata.NewBarEntry(2, 3), 0)

	require.True(t, ok)
	assert.InDelta(t, 41.5, r.Left(), 1e-9)
	assert.InDelta(t, 58.5, r.Right(), 1e-9)

	_, ok = c.BarBounds(chartdata.NewBarEntry(2, 3), 1)
	assert.False(t, ok)
}

func TestBarChart_TapSelectsBar(t *testing.T) {
	c, _ := barChart(t)

	// x = 2 is at pixel 50; bars are selected by x alone.
	c.Tap(52, 5)

	require.Len(t, c.Highlighted(), 1)
	assert.Equal(t, 2.0, c.Highlighted()[0].X)
	assert.Equal(t, 3.0, c.Highlighted()[0].Y)
}

func TestBarChart_GroupBars(t *testing.T) {
	bars := func() *chartdata.BarSeries {
		return chartdata.NewBarSeries([]chartdata.BarEntry{
			chartdata.NewBarEntry(0, 1),
			chartdata.NewBarEntry(1, 2),
			chartdata.NewBarEntry(2, 3),
		}, "bars")
	}
	c := bareChart(chart.Params{})
	c.SetData(chartdata.NewBarData(bars(), bars()))

	c.GroupBars(0, 0.1, 0.05)

	// Three groups of width 2*(0.85+0.05)+0.1; the last bar's center is
	// 1.4 into the last group.
	assert.InDelta(t, 2*1.9+1.4+0.5, c.XAxis().Maximum(), 1e-9)
}

func TestBarChart_GroupBarsWithoutBarData(t *testing.T) {
	logger, buf := observabilitytest.NewRecordingTestLogger(t, nil)
	c, _ := lineChart(t, chart.Params{Logger: logger})

	c.GroupBars(0, 0.1, 0.05)

	logs := observabilitytest.ExtractLogs(t, buf)
	require.Len(t, logs, 1)
	assert.Equal(t, "chart: set bar data before grouping bars", logs[0]["msg"])
}

func TestCombinedChart_HighlightsBySubData(t *testing.T) {
	combined := chartdata.NewCombinedData()
	combined.SetLineData(chartdata.NewLineData(
		chartdata.NewLineSeries(diagonal(10), "line")))
	combined.SetBarData(chartdata.NewBarData(chartdata.NewBarSeries(
		[]chartdata.BarEntry{chartdata.NewBarEntry(5, 1)}, "bars")))

	c := bareChart(chart.Params{})
	c.SetData(combined)
	c.SetSize(100, 100)

	require.NotNil(t, c.BarData())
	require.Same(t, combined, c.CombinedData())

	// (5, 5) of the line sits at pixel (50, 50).
	h, ok := c.HighlightAt(50, 50)
	require.True(t, ok)
	assert.Equal(t, combined.DataIndex(chartdata.KindLine), h.DataIndex)

	e, ok := c.EntryForHighlight(h)
	require.True(t, ok)
	assert.Equal(t, 5.0, e.Y())
}
