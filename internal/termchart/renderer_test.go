package termchart_test

import (
	"math"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wandb/wandb/chartcore/internal/chart"
	"github.com/wandb/wandb/chartcore/internal/chartdata"
	"github.com/wandb/wandb/chartcore/internal/termchart"
)

var ansiEscape = regexp.MustCompile("\x1b\\[[0-9;]*m")

// cells splits a rendered canvas into rows of runes, without styling.
func cells(t *testing.T, view string) [][]rune {
	t.Helper()
	var out [][]rune
	for _, line := range strings.Split(ansiEscape.ReplaceAllString(view, ""), "\n") {
		out = append(out, []rune(line))
	}
	return out
}

func isBraille(r rune) bool {
	return r > 0x2800 && r <= 0x28FF
}

func fixedClock() time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
}

func diagonal(n int) []chartdata.Entry {
	entries := make([]chartdata.Entry, 0, n+1)
	for i := range n + 1 {
		entries = append(entries, chartdata.NewEntry(float64(i), float64(i)))
	}
	return entries
}

// bareLineChart plots (i, i) for i in [0, 10] over a 20x5 cell area with
// no room taken by labels: one x unit is 4 dots and one y unit is 2 dots.
func bareLineChart(t *testing.T) *chart.BarLineChart {
	t.Helper()
	c := chart.NewBarLineChart(chart.Params{Now: fixedClock})
	c.XAxis().DrawLabels = false
	c.LeftAxis().DrawLabels = false
	c.RightAxis().DrawLabels = false
	c.LeftAxis().SpaceTop, c.LeftAxis().SpaceBottom = 0, 0
	c.RightAxis().SpaceTop, c.RightAxis().SpaceBottom = 0, 0
	c.SetData(chartdata.NewLineData(chartdata.NewLineSeries(diagonal(10), "a")))
	termchart.Fit(c, 20, 5)
	return c
}

func TestFit(t *testing.T) {
	c := chart.NewBarLineChart(chart.Params{Now: fixedClock})

	termchart.Fit(c, 40, 10)

	assert.Equal(t, 80.0, c.Viewport().ChartWidth())
	assert.Equal(t, 40.0, c.Viewport().ChartHeight())
}

func TestCellToPixel(t *testing.T) {
	x, y := termchart.CellToPixel(3, 2)

	assert.Equal(t, 6.5, x)
	assert.Equal(t, 9.5, y)
	assert.Equal(t, 3, termchart.PixelToCell(x, y).X)
	assert.Equal(t, 2, termchart.PixelToCell(x, y).Y)
}

func TestRender_NoData(t *testing.T) {
	c := chart.NewBarLineChart(chart.Params{Now: fixedClock})
	termchart.Fit(c, 10, 3)

	grid := cells(t, termchart.NewRenderer(10, 3).Render(c))

	require.Len(t, grid, 3)
	for _, row := range grid {
		assert.Empty(t, strings.TrimSpace(string(row)))
	}
}

func TestRender_Line(t *testing.T) {
	c := bareLineChart(t)

	grid := cells(t, termchart.NewRenderer(20, 5).Render(c))

	require.Len(t, grid, 5)
	for _, row := range grid {
		require.Len(t, row, 20)
	}
	assert.True(t, isBraille(grid[4][0]), "line starts bottom left")
	assert.True(t, isBraille(grid[0][19]), "line ends top right")
	assert.Equal(t, ' ', grid[0][0])
	assert.Equal(t, ' ', grid[4][19])
}

func TestRender_LineFollowsZoom(t *testing.T) {
	c := bareLineChart(t)
	c.Zoom(2, 1, 0, 20)

	grid := cells(t, termchart.NewRenderer(20, 5).Render(c))

	// Only x in [0, 5] is visible, so the line ends halfway up.
	assert.True(t, isBraille(grid[4][0]))
	assert.True(t, isBraille(grid[2][19]))
	assert.Equal(t, ' ', grid[0][19])
}

func TestRender_Highlight(t *testing.T) {
	c := bareLineChart(t)
	c.HighlightValueAt(5, math.NaN(), 0, false)

	grid := cells(t, termchart.NewRenderer(20, 5).Render(c))

	// (5, 5) is the pixel (20, 10), in cell (10, 2).
	assert.Equal(t, '┊', grid[0][10])
	assert.Equal(t, '┊', grid[4][10])
	assert.True(t, isBraille(grid[2][10]))
}

func TestRender_Labels(t *testing.T) {
	c := chart.NewBarLineChart(chart.Params{Now: fixedClock})
	c.SetData(chartdata.NewLineData(chartdata.NewLineSeries(diagonal(10), "a")))
	termchart.Fit(c, 40, 12)

	view := termchart.NewRenderer(40, 12).Render(c)
	grid := cells(t, view)

	require.Len(t, grid, 12)
	for _, row := range grid {
		assert.Equal(t, 40, runewidth.StringWidth(string(row)))
	}
	assert.Contains(t, ansiEscape.ReplaceAllString(view, ""), "10")
	assert.Equal(t, ' ', grid[0][0], "padding left of the y labels")
}

func TestRender_Bars(t *testing.T) {
	c := chart.NewBarLineChart(chart.Params{Now: fixedClock})
	c.XAxis().DrawLabels = false
	c.LeftAxis().DrawLabels = false
	c.RightAxis().DrawLabels = false
	c.SetData(chartdata.NewBarData(chartdata.NewBarSeries(
		[]chartdata.BarEntry{
			chartdata.NewBarEntry(0, 1),
			chartdata.NewBarEntry(1, 2),
		}, "bars")))
	termchart.Fit(c, 20, 5)

	grid := cells(t, termchart.NewRenderer(20, 5).Render(c))

	var dots int
	for _, row := range grid {
		for _, r := range row {
			if isBraille(r) {
				dots++
			}
		}
	}
	assert.Positive(t, dots)
}

func TestRenderPie(t *testing.T) {
	c := chart.NewPieChart(chart.Params{Now: fixedClock})
	c.SetData(chartdata.NewPieData(chartdata.NewPieSeries(
		[]chartdata.PieEntry{
			chartdata.NewPieEntry(1, "a"),
			chartdata.NewPieEntry(1, "b"),
			chartdata.NewPieEntry(1, "c"),
			chartdata.NewPieEntry(1, "d"),
		}, "pie")))
	termchart.FitPie(c, 20, 10)

	grid := cells(t, termchart.NewRenderer(20, 10).RenderPie(c))

	// Center (20, 20), radius 20, hole 10.
	require.Len(t, grid, 10)
	assert.Equal(t, ' ', grid[0][0], "outside")
	assert.Equal(t, ' ', grid[5][10], "hole")
	assert.True(t, isBraille(grid[5][15]), "ring")
}

func TestRenderPie_NoData(t *testing.T) {
	c := chart.NewPieChart(chart.Params{Now: fixedClock})
	termchart.FitPie(c, 6, 2)

	grid := cells(t, termchart.NewRenderer(6, 2).RenderPie(c))

	require.Len(t, grid, 2)
	assert.Empty(t, strings.TrimSpace(string(grid[0])+string(grid[1])))
}

func TestRenderer_Resize(t *testing.T) {
	r := termchart.NewRenderer(-1, 4)
	cols, rows := r.Size()
	assert.Equal(t, 0, cols)
	assert.Equal(t, 4, rows)

	r.Resize(8, 3)
	cols, rows = r.Size()
	assert.Equal(t, 8, cols)
	assert.Equal(t, 3, rows)
}
