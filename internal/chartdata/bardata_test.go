package chartdata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wandb/wandb/chartcore/internal/chartdata"
)

func TestBarData_GroupBars(t *testing.T) {
	a := chartdata.NewBarSeries([]chartdata.BarEntry{
		chartdata.NewBarEntry(0, 1), chartdata.NewBarEntry(1, 2),
	}, "a")
	b := chartdata.NewBarSeries([]chartdata.BarEntry{
		chartdata.NewBarEntry(0, 3), chartdata.NewBarEntry(1, 4),
	}, "b")
	d := chartdata.NewBarData(a, b)
	d.BarWidth = 0.4

	require.InDelta(t, 1.0, d.GroupWidth(0.08, 0.06), 1e-9)
	d.GroupBars(0, 0.08, 0.06)

	assert.InDelta(t, 0.27, a.At(0).X(), 1e-9)
	assert.InDelta(t, 0.73, b.At(0).X(), 1e-9)
	assert.InDelta(t, 1.27, a.At(1).X(), 1e-9)
	assert.InDelta(t, 1.73, b.At(1).X(), 1e-9)
	assert.InDelta(t, 1.73, d.XMax(), 1e-9)
	assert.Equal(t, 4.0, b.At(1).Y())
}

func TestBarData_GroupBarsNeedsTwoSeries(t *testing.T) {
	a := chartdata.NewBarSeries([]chartdata.BarEntry{chartdata.NewBarEntry(5, 1)}, "a")
	d := chartdata.NewBarData(a)

	d.GroupBars(0, 0.1, 0.1)

	assert.Equal(t, 5.0, a.At(0).X())
}

func TestBarSeries_Stacks(t *testing.T) {
	s := chartdata.NewBarSeries([]chartdata.BarEntry{
		chartdata.NewBarEntry(0, 1),
		chartdata.NewStackedBarEntry(1, []float64{1, 2, 3}),
		chartdata.NewStackedBarEntry(2, []float64{1, 2}),
	}, "s")

	assert.Equal(t, 3, s.StackSize())
	assert.True(t, s.IsStacked())
	assert.Equal(t, 6, s.EntryCountStacks())
}

func TestBarData_BarBounds(t *testing.T) {
	d := chartdata.NewBarData()
	d.BarWidth = 0.5

	r := d.BarBounds(chartdata.NewBarEntry(2, -3))
	assert.InDelta(t, 1.75, r.Left(), 1e-9)
	assert.InDelta(t, 2.25, r.Right(), 1e-9)
	assert.Equal(t, -3.0, r.Top())
	assert.Equal(t, 0.0, r.Bottom())

	r = d.BarBounds(chartdata.NewStackedBarEntry(0, []float64{3, -2, 5}))
	assert.Equal(t, -2.0, r.Top())
	assert.Equal(t, 8.0, r.Bottom())
}

func TestStyleClamps(t *testing.T) {
	line := chartdata.NewLineSeries(nil, "l")
	line.Style.SetCubicIntensity(5)
	assert.Equal(t, 1.0, line.Style.CubicIntensity())
	line.Style.SetCubicIntensity(0)
	assert.Equal(t, 0.05, line.Style.CubicIntensity())

	candle := chartdata.NewCandleSeries(nil, "c")
	candle.Style.SetBarSpace(1)
	assert.Equal(t, 0.45, candle.Style.BarSpace())

	pie := chartdata.NewPieSeries(nil, "p")
	pie.Style.SetSliceSpace(-4)
	assert.Equal(t, 0.0, pie.Style.SliceSpace())
}
