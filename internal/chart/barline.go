package chart

import (
	"math"

	"github.com/wandb/wandb/chartcore/internal/axis"
	"github.com/wandb/wandb/chartcore/internal/chartconfig"
	"github.com/wandb/wandb/chartcore/internal/chartdata"
	"github.com/wandb/wandb/chartcore/internal/geom"
	"github.com/wandb/wandb/chartcore/internal/highlight"
	"github.com/wandb/wandb/chartcore/internal/transform"
	"github.com/wandb/wandb/chartcore/internal/viewjob"
)

// barSpace is the x padding of bar charts, so the outer bars are not cut
// in half.
const barSpace = 0.5

// BarLineChart is a chart with an x axis and two y axes: line, bar,
// scatter, candle, bubble and combined charts.
type BarLineChart struct {
	base

	xAxis     *axis.XAxis
	leftAxis  *axis.YAxis
	rightAxis *axis.YAxis

	leftTransformer  *transform.Transformer
	rightTransformer *transform.Transformer

	// ScaleXEnabled and ScaleYEnabled allow zooming along each axis.
	ScaleXEnabled bool
	ScaleYEnabled bool

	DragEnabled bool

	// HighlightPerDrag selects values under a drag when the chart is fully
	// zoomed out.
	HighlightPerDrag bool

	// AutoScaleMinMax fits the y axes to the visible x range whenever the
	// viewport changes.
	AutoScaleMinMax bool

	// FitBars pads the x axis by half a bar so outer bars are fully shown.
	FitBars bool

	highlightFullBar bool

	// barPadded is set while the x axis carries the bar padding.
	barPadded bool

	// labelCellWidth and labelCellHeight are the pixel size of one
	// character of an axis label.
	labelCellWidth  float64
	labelCellHeight float64
}

// NewBarLineChart returns an empty chart without a size.
func NewBarLineChart(params Params) *BarLineChart {
	c := &BarLineChart{
		base:            newBase(params),
		xAxis:           axis.NewXAxis(),
		leftAxis:        axis.NewYAxis(chartdata.AxisLeft),
		rightAxis:       axis.NewYAxis(chartdata.AxisRight),
		ScaleXEnabled:   true,
		ScaleYEnabled:   true,
		DragEnabled:     true,
		labelCellWidth:  1,
		labelCellHeight: 1,
	}
	c.self = c
	c.leftTransformer = transform.MustNew(c.vp)
	c.rightTransformer = transform.MustNew(c.vp)
	c.animator.SetObserver(c)
	c.vp.SetInvalidator(c.viewportChanged)
	return c
}

func (c *BarLineChart) XAxis() *axis.XAxis { return c.xAxis }

func (c *BarLineChart) LeftAxis() *axis.YAxis { return c.leftAxis }

func (c *BarLineChart) RightAxis() *axis.YAxis { return c.rightAxis }

// Axis returns the y axis on the given side.
func (c *BarLineChart) Axis(dep chartdata.AxisDependency) *axis.YAxis {
	if dep == chartdata.AxisRight {
		return c.rightAxis
	}
	return c.leftAxis
}

// Transformer returns the value to pixel transformer of a y axis.
func (c *BarLineChart) Transformer(dep chartdata.AxisDependency) *transform.Transformer {
	if dep == chartdata.AxisRight {
		return c.rightTransformer
	}
	return c.leftTransformer
}

// BarData returns the chart's bar data, on its own or in combined data.
func (c *BarLineChart) BarData() *chartdata.BarData {
	switch d := c.data.(type) {
	case *chartdata.BarData:
		return d
	case *chartdata.CombinedData:
		return d.BarData()
	default:
		return nil
	}
}

// CombinedData returns the chart's data if it is combined data.
func (c *BarLineChart) CombinedData() *chartdata.CombinedData {
	d, _ := c.data.(*chartdata.CombinedData)
	return d
}

// SetHighlightFullBar makes stacked bars highlight as a whole.
func (c *BarLineChart) SetHighlightFullBar(enabled bool) { c.highlightFullBar = enabled }

func (c *BarLineChart) IsHighlightFullBarEnabled() bool { return c.highlightFullBar }

// SetLabelCellSize sets the pixel size of one character of axis labels,
// which the axes reserve space with.
func (c *BarLineChart) SetLabelCellSize(width, height float64) {
	c.labelCellWidth = width
	c.labelCellHeight = height
	c.calculateOffsets()
}

// SetData replaces the chart's data and resets the selection.
//
// Pie data is rejected; it belongs in a PieChart.
func (c *BarLineChart) SetData(d chartdata.Data) {
	if d != nil && d.Kind() == chartdata.KindPie {
		c.logger.CaptureWarn("chart: pie data set on a bar and line chart")
		return
	}

	c.data = d
	c.highlighted = nil
	c.lastHighlighted = nil

	if d == nil {
		c.highlighter = nil
		c.invalidate()
		return
	}

	// Bar padding is undone when other data replaces the bars, leaving any
	// padding set by the caller alone.
	isBar := d.Kind() == chartdata.KindBar
	switch {
	case isBar:
		c.xAxis.SpaceMin = barSpace
		c.xAxis.SpaceMax = barSpace
	case c.barPadded:
		c.xAxis.SpaceMin = 0
		c.xAxis.SpaceMax = 0
	}
	c.barPadded = isBar

	switch d.Kind() {
	case chartdata.KindBar:
		c.highlighter = highlight.NewBarHighlighter(c)
	case chartdata.KindCombined:
		c.highlighter = highlight.NewCombinedHighlighter(c)
	default:
		c.highlighter = highlight.NewChartHighlighter(c)
	}

	c.setupDefaultFormatter(d)
	c.NotifyDataSetChanged()
}

// Clear removes the data and the selection.
func (c *BarLineChart) Clear() {
	c.SetData(nil)
}

// NotifyDataSetChanged recomputes the axes and offsets after the data
// changed.
func (c *BarLineChart) NotifyDataSetChanged() {
	if c.data == nil {
		return
	}

	c.calcMinMax()
	c.computeAxes()
	c.calculateOffsets()
	c.invalidate()
}

// AddEntry appends e to series dataSetIndex of d, which must be the
// chart's data or part of it, and updates the chart.
//
// A missing series is logged and nothing changes.
func AddEntry[S interface {
	chartdata.DataSet
	Append(E)
}, E chartdata.Valuer](
	c *BarLineChart,
	d *chartdata.ChartData[S],
	e E,
	dataSetIndex int,
) bool {
	if !chartdata.AddEntry(d, e, dataSetIndex) {
		c.logger.CaptureWarn(
			"chart: no series to add the entry to",
			"dataSetIndex", dataSetIndex,
			"dataSetCount", d.DataSetCount(),
		)
		return false
	}

	if c.CombinedData() != nil {
		// Combined totals are merged from the sub-data.
		c.data.CalcMinMax()
	}
	c.NotifyDataSetChanged()
	return true
}

// SetSize sets the chart size and runs the viewport jobs that were waiting
// for it.
func (c *BarLineChart) SetSize(width, height float64) {
	if width == c.vp.ChartWidth() && height == c.vp.ChartHeight() {
		return
	}

	c.vp.SetChartDimens(width, height)
	c.calculateOffsets()
	c.NotifyDataSetChanged()
	c.runPendingJobs()
}

// SetExtraOffsets adds space around the content, in pixels.
func (c *BarLineChart) SetExtraOffsets(left, top, right, bottom float64) {
	c.setExtraOffsets(left, top, right, bottom)
	c.calculateOffsets()
}

// ApplyConfig applies the user's settings.
func (c *BarLineChart) ApplyConfig(cfg chartconfig.Config) {
	c.xAxis.SetLabelCount(cfg.Axis.XLabelCount, cfg.Axis.ForceLabels)
	for _, y := range []*axis.YAxis{c.leftAxis, c.rightAxis} {
		y.SetLabelCount(cfg.Axis.YLabelCount, cfg.Axis.ForceLabels)
		y.SpaceTop = cfg.Axis.SpaceTop
		y.SpaceBottom = cfg.Axis.SpaceBottom
		if cfg.Axis.Granularity > 0 {
			y.SetGranularity(cfg.Axis.Granularity)
		}
		y.SetValueFormatter(cfg.Axis.YFormatter())
	}

	c.ScaleXEnabled = cfg.Viewport.ScaleXEnabled
	c.ScaleYEnabled = cfg.Viewport.ScaleYEnabled
	c.DragEnabled = cfg.Viewport.DragEnabled
	c.AutoScaleMinMax = cfg.Viewport.AutoScaleMinMax
	c.vp.SetMaximumScaleX(cfg.Viewport.MaxScaleX)
	c.vp.SetMaximumScaleY(cfg.Viewport.MaxScaleY)
	c.vp.SetDragOffsetX(cfg.Viewport.DragOffsetX)
	c.vp.SetDragOffsetY(cfg.Viewport.DragOffsetY)

	c.highlightPerTap = cfg.Highlight.PerTap
	c.HighlightPerDrag = cfg.Highlight.PerDrag
	c.highlightFullBar = cfg.Highlight.FullBar
	c.maxHighlightDistance = cfg.Highlight.MaxDistance

	c.setExtraOffsets(
		cfg.Offsets.Left, cfg.Offsets.Top,
		cfg.Offsets.Right, cfg.Offsets.Bottom)

	if c.data != nil {
		c.NotifyDataSetChanged()
	} else {
		c.calculateOffsets()
	}
}

// calcMinMax sets the axis ranges from the data.
func (c *BarLineChart) calcMinMax() {
	d := c.data

	if bd := c.BarData(); c.FitBars && bd != nil {
		half := bd.BarWidth / 2
		c.xAxis.Calculate(d.XMin()-half, d.XMax()+half)
	} else {
		c.xAxis.Calculate(d.XMin(), d.XMax())
	}

	c.leftAxis.Calculate(
		d.AxisYMin(chartdata.AxisLeft), d.AxisYMax(chartdata.AxisLeft))
	c.rightAxis.Calculate(
		d.AxisYMin(chartdata.AxisRight), d.AxisYMax(chartdata.AxisRight))
}

// computeAxes recomputes the ticks of every axis over its visible part.
func (c *BarLineChart) computeAxes() {
	c.computeXAxis()
	c.computeYAxis(c.leftAxis)
	c.computeYAxis(c.rightAxis)
}

func (c *BarLineChart) computeXAxis() {
	lo, hi := c.xAxis.Minimum(), c.xAxis.Maximum()

	vp := c.vp
	if vp.ContentWidth() > 10 && !vp.IsFullyZoomedOutX() {
		t := c.leftTransformer
		p1 := t.ValueForTouchPoint(vp.ContentLeft(), vp.ContentTop())
		p2 := t.ValueForTouchPoint(vp.ContentRight(), vp.ContentTop())
		lo, hi = p1.X, p2.X
	}

	c.xAxis.ComputeAxisValues(lo, hi)
}

func (c *BarLineChart) computeYAxis(y *axis.YAxis) {
	lo, hi := y.Minimum(), y.Maximum()

	vp := c.vp
	if vp.ContentWidth() > 10 && !vp.IsFullyZoomedOutY() {
		t := c.Transformer(y.AxisDependency())
		p1 := t.ValueForTouchPoint(vp.ContentLeft(), vp.ContentTop())
		p2 := t.ValueForTouchPoint(vp.ContentLeft(), vp.ContentBottom())
		if y.Inverted {
			lo, hi = p1.Y, p2.Y
		} else {
			lo, hi = p2.Y, p1.Y
		}
	}

	y.ComputeAxisValues(lo, hi)
}

// calculateOffsets insets the content by the extra offsets and the space
// the axis labels need, then refits the transformers.
func (c *BarLineChart) calculateOffsets() {
	left, top := c.extraLeft, c.extraTop
	right, bottom := c.extraRight, c.extraBottom

	if c.leftAxis.NeedsOffset() {
		left += float64(c.leftAxis.RequiredWidth(1)) * c.labelCellWidth
	}
	if c.rightAxis.NeedsOffset() {
		right += float64(c.rightAxis.RequiredWidth(1)) * c.labelCellWidth
	}

	if c.xAxis.Enabled && c.xAxis.DrawLabels {
		switch c.xAxis.Position {
		case axis.XLabelBottom:
			bottom += c.labelCellHeight
		case axis.XLabelTop:
			top += c.labelCellHeight
		case axis.XLabelBothSided:
			top += c.labelCellHeight
			bottom += c.labelCellHeight
		}
	}

	c.vp.RestrainViewPort(left, top, right, bottom)
	c.vp.Refresh(c.vp.TouchMatrix(), false)

	c.prepareOffsetMatrix()
	c.prepareValuePxMatrix()
}

func (c *BarLineChart) prepareValuePxMatrix() {
	x := c.xAxis
	c.rightTransformer.PrepareMatrixValuePx(
		x.Minimum(), x.Range(), c.rightAxis.Range(), c.rightAxis.Minimum())
	c.leftTransformer.PrepareMatrixValuePx(
		x.Minimum(), x.Range(), c.leftAxis.Range(), c.leftAxis.Minimum())
}

func (c *BarLineChart) prepareOffsetMatrix() {
	c.rightTransformer.PrepareMatrixOffset(c.rightAxis.Inverted)
	c.leftTransformer.PrepareMatrixOffset(c.leftAxis.Inverted)
}

// viewportChanged is the viewport's invalidator.
func (c *BarLineChart) viewportChanged() {
	if c.data != nil {
		if c.AutoScaleMinMax {
			c.autoScale()
		}
		c.computeAxes()
	}
	c.invalidate()
}

// autoScale fits the axes to the data in the visible x range.
func (c *BarLineChart) autoScale() {
	from, to := c.LowestVisibleX(), c.HighestVisibleX()
	c.data.CalcMinMaxY(from, to)
	c.calcMinMax()
	c.calculateOffsets()
}

// jobTarget is the target of viewport jobs on the axis dep.
func (c *BarLineChart) jobTarget(dep chartdata.AxisDependency) viewjob.Target {
	return viewjob.Target{
		Viewport:    c.vp,
		Transformer: c.Transformer(dep),
		OnDone: func() {
			c.calculateOffsets()
			c.invalidate()
		},
	}
}

// LowestVisibleX is the smallest x value in the content.
func (c *BarLineChart) LowestVisibleX() float64 {
	p := c.leftTransformer.ValueForTouchPoint(c.vp.ContentLeft(), c.vp.ContentBottom())
	return max(c.xAxis.Minimum(), p.X)
}

// HighestVisibleX is the largest x value in the content.
func (c *BarLineChart) HighestVisibleX() float64 {
	p := c.leftTransformer.ValueForTouchPoint(c.vp.ContentRight(), c.vp.ContentBottom())
	return min(c.xAxis.Maximum(), p.X)
}

// VisibleXRange is the width of the visible x range.
func (c *BarLineChart) VisibleXRange() float64 {
	return c.HighestVisibleX() - c.LowestVisibleX()
}

// PositionFor returns the pixel of the value (x, y) on the axis dep.
func (c *BarLineChart) PositionFor(x, y float64, dep chartdata.AxisDependency) geom.Point {
	return c.Transformer(dep).PixelForValues(x, y)
}

// ValuesForTouch returns the value at a pixel on the axis dep.
func (c *BarLineChart) ValuesForTouch(x, y float64, dep chartdata.AxisDependency) geom.Point {
	return c.Transformer(dep).ValueForTouchPoint(x, y)
}

// EntryAt returns the entry nearest to the touched pixel, if any.
func (c *BarLineChart) EntryAt(x, y float64) (chartdata.Valuer, bool) {
	h, ok := c.HighlightAt(x, y)
	if !ok {
		return nil, false
	}
	return c.EntryForHighlight(h)
}

// HighlightBar selects segment stackIndex of the bar at x in series
// dataSetIndex.
func (c *BarLineChart) HighlightBar(x float64, dataSetIndex, stackIndex int, callDelegate bool) {
	h := highlight.New(x, math.NaN(), dataSetIndex)
	h.StackIndex = stackIndex
	c.HighlightValue(h, callDelegate)
}

// DragHighlight selects the value under a drag when per-drag highlighting
// is on and the chart is fully zoomed out.
//
// It reports whether the drag was used for highlighting.
func (c *BarLineChart) DragHighlight(x, y float64) bool {
	if !c.HighlightPerDrag || !c.vp.IsFullyZoomedOut() || c.data == nil {
		return false
	}

	h, ok := c.HighlightAt(x, y)
	if !ok {
		return true
	}
	if c.lastHighlighted == nil || !h.Equal(*c.lastHighlighted) {
		c.HighlightValue(h, true)
		c.lastHighlighted = &h
	}
	return true
}

// BarBounds returns the pixel rectangle of a bar of series dataSetIndex.
func (c *BarLineChart) BarBounds(e chartdata.BarEntry, dataSetIndex int) (geom.Rect, bool) {
	bd := c.BarData()
	if bd == nil {
		return geom.Rect{}, false
	}
	set, ok := bd.DataSet(dataSetIndex)
	if !ok {
		return geom.Rect{}, false
	}
	r := bd.BarBounds(e)
	return c.Transformer(set.AxisDependency()).RectValueToPixel(r), true
}

// GroupBars lays out the bars of every series side by side starting at
// fromX. See chartdata.BarData.GroupBars.
func (c *BarLineChart) GroupBars(fromX, groupSpace, barSpace float64) {
	bd := c.BarData()
	if bd == nil {
		c.logger.CaptureWarn("chart: set bar data before grouping bars")
		return
	}
	bd.GroupBars(fromX, groupSpace, barSpace)
	c.NotifyDataSetChanged()
}
