package chartdata_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wandb/wandb/chartcore/internal/chartdata"
)

func combinedLineAndBar() *chartdata.CombinedData {
	line := chartdata.NewLineSeries(entries([2]float64{0, 1}, [2]float64{3, 2}), "line")

	bars := chartdata.NewBarSeries([]chartdata.BarEntry{
		chartdata.NewBarEntry(1, 100), chartdata.NewBarEntry(2, -50),
	}, "bars")
	bars.SetAxisDependency(chartdata.AxisRight)

	c := chartdata.NewCombinedData()
	c.SetLineData(chartdata.NewLineData(line))
	c.SetBarData(chartdata.NewBarData(bars))
	return c
}

func TestCombinedData_KeepsAxisSplit(t *testing.T) {
	c := combinedLineAndBar()

	assert.Equal(t, 1.0, c.AxisYMin(chartdata.AxisLeft))
	assert.Equal(t, 2.0, c.AxisYMax(chartdata.AxisLeft))
	assert.Equal(t, -50.0, c.AxisYMin(chartdata.AxisRight))
	assert.Equal(t, 100.0, c.AxisYMax(chartdata.AxisRight))
	assert.Equal(t, 0.0, c.XMin())
	assert.Equal(t, 3.0, c.XMax())
}

func TestCombinedData_Numbering(t *testing.T) {
	c := combinedLineAndBar()

	assert.Equal(t, 2, c.DataSetCount())
	assert.Equal(t, 4, c.EntryCount())
	assert.Equal(t, 1, c.DataIndex(chartdata.KindBar))
	assert.Equal(t, -1, c.DataIndex(chartdata.KindCandle))

	set, ok := c.DataSetAt(1)
	require.True(t, ok)
	assert.Equal(t, "bars", set.Label())

	_, ok = c.DataSetAt(2)
	assert.False(t, ok)
}

func TestCombinedData_EntryForHighlight(t *testing.T) {
	c := combinedLineAndBar()

	v, ok := chartdata.EntryForHighlight(c, 1, 0, 2, math.NaN())
	require.True(t, ok)
	assert.Equal(t, -50.0, v.Y())

	_, ok = chartdata.EntryForHighlight(c, 4, 0, 2, math.NaN())
	assert.False(t, ok)
}

func TestCombinedData_Empty(t *testing.T) {
	c := chartdata.NewCombinedData()

	assert.Empty(t, c.AllData())
	assert.Equal(t, 0, c.DataSetCount())
	assert.True(t, math.IsInf(c.YMin(), 1))

	_, ok := c.MaxEntryCountSet()
	assert.False(t, ok)
}
