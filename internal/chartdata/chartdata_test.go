package chartdata_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wandb/wandb/chartcore/internal/chartdata"
)

func twoAxisLineData() *chartdata.LineData {
	left := chartdata.NewLineSeries(entries(
		[2]float64{0, 1}, [2]float64{1, 5}, [2]float64{2, 3},
	), "left")
	right := chartdata.NewLineSeries(entries(
		[2]float64{0, -10}, [2]float64{4, 10},
	), "right")
	right.SetAxisDependency(chartdata.AxisRight)

	return chartdata.NewLineData(left, right)
}

func TestChartData_Extrema(t *testing.T) {
	d := twoAxisLineData()

	assert.Equal(t, -10.0, d.YMin())
	assert.Equal(t, 10.0, d.YMax())
	assert.Equal(t, 0.0, d.XMin())
	assert.Equal(t, 4.0, d.XMax())

	assert.Equal(t, 1.0, d.AxisYMin(chartdata.AxisLeft))
	assert.Equal(t, 5.0, d.AxisYMax(chartdata.AxisLeft))
	assert.Equal(t, -10.0, d.AxisYMin(chartdata.AxisRight))
	assert.Equal(t, 10.0, d.AxisYMax(chartdata.AxisRight))
}

func TestChartData_AxisFallback(t *testing.T) {
	d := chartdata.NewLineData(chartdata.NewLineSeries(entries([2]float64{0, 2}, [2]float64{1, 4}), "only"))

	assert.Equal(t, 2.0, d.AxisYMin(chartdata.AxisRight))
	assert.Equal(t, 4.0, d.AxisYMax(chartdata.AxisRight))
}

func TestChartData_Empty(t *testing.T) {
	d := chartdata.NewLineData()

	assert.Equal(t, 0, d.DataSetCount())
	assert.Equal(t, 0, d.EntryCount())
	assert.True(t, math.IsInf(d.YMin(), 1))
	assert.True(t, math.IsInf(d.XMax(), -1))

	_, ok := d.MaxEntryCountSet()
	assert.False(t, ok)
	_, ok = d.DataSetAt(0)
	assert.False(t, ok)
}

func TestAddEntry_WidensIncrementally(t *testing.T) {
	d := twoAxisLineData()

	require.True(t, chartdata.AddEntry(d, chartdata.NewEntry(10, 50), 0))

	assert.Equal(t, 50.0, d.YMax())
	assert.Equal(t, 10.0, d.XMax())
	assert.Equal(t, 50.0, d.AxisYMax(chartdata.AxisLeft))
	assert.Equal(t, 10.0, d.AxisYMax(chartdata.AxisRight))
	assert.Equal(t, 6, d.EntryCount())

	assert.False(t, chartdata.AddEntry(d, chartdata.NewEntry(0, 0), 7))
}

func TestChartData_RemoveRecomputes(t *testing.T) {
	d := twoAxisLineData()

	require.True(t, d.RemoveEntryX(4, 1))
	assert.Equal(t, 5.0, d.YMax())
	assert.Equal(t, 2.0, d.XMax())

	require.True(t, d.RemoveDataSetAt(1))
	assert.Equal(t, 1.0, d.YMin())
	assert.False(t, d.RemoveDataSetAt(1))

	d.Clear()
	assert.Equal(t, 0, d.DataSetCount())
}

func TestChartData_Lookup(t *testing.T) {
	d := twoAxisLineData()

	assert.Equal(t, 1, d.DataSetIndexByLabel("RIGHT", true))
	assert.Equal(t, -1, d.DataSetIndexByLabel("RIGHT", false))

	set, ok := d.MaxEntryCountSet()
	require.True(t, ok)
	assert.Equal(t, "left", set.Label())
}

func TestChartData_HighlightEnabled(t *testing.T) {
	d := twoAxisLineData()
	assert.True(t, d.IsHighlightEnabled())

	d.SetHighlightEnabled(false)
	assert.False(t, d.IsHighlightEnabled())
}

func TestEntryForHighlight(t *testing.T) {
	d := twoAxisLineData()

	v, ok := chartdata.EntryForHighlight(d, 0, 0, 1, math.NaN())
	require.True(t, ok)
	assert.Equal(t, 5.0, v.Y())

	_, ok = chartdata.EntryForHighlight(d, 0, 0, 1, 4)
	assert.False(t, ok, "y must match when given")

	_, ok = chartdata.EntryForHighlight(d, 0, 3, 1, math.NaN())
	assert.False(t, ok)

	_, ok = chartdata.EntryForHighlight(nil, 0, 0, 0, 0)
	assert.False(t, ok)
}

func TestEntryForHighlight_Pie(t *testing.T) {
	d := chartdata.NewPieData(chartdata.NewPieSeries([]chartdata.PieEntry{
		chartdata.NewPieEntry(10, "a"),
		chartdata.NewPieEntry(30, "b"),
	}, "pie"))

	v, ok := chartdata.EntryForHighlight(d, 0, 0, 1, math.NaN())
	require.True(t, ok)
	assert.Equal(t, "b", v.(chartdata.PieEntry).Label())
	assert.Equal(t, 40.0, d.YValueSum())
}
