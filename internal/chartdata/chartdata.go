package chartdata

import (
	"math"
	"slices"
	"strings"
)

// Kind identifies the chart family a Data value belongs to.
type Kind int

const (
	KindLine Kind = iota
	KindBar
	KindScatter
	KindCandle
	KindBubble
	KindPie
	KindCombined
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindBar:
		return "bar"
	case KindScatter:
		return "scatter"
	case KindCandle:
		return "candle"
	case KindBubble:
		return "bubble"
	case KindPie:
		return "pie"
	case KindCombined:
		return "combined"
	default:
		return "unknown"
	}
}

// Data is the kind-independent view of a chart's data.
type Data interface {
	Kind() Kind

	DataSetCount() int
	DataSetAt(i int) (DataSet, bool)
	EntryCount() int
	MaxEntryCountSet() (DataSet, bool)

	YMin() float64
	YMax() float64
	XMin() float64
	XMax() float64

	// AxisYMin and AxisYMax fall back to the other axis when no series
	// depends on the requested one.
	AxisYMin(axis AxisDependency) float64
	AxisYMax(axis AxisDependency) float64

	CalcMinMax()
	CalcMinMaxY(fromX, toX float64)

	IsHighlightEnabled() bool
	SetHighlightEnabled(enabled bool)

	axisExtrema() extrema
}

// extrema is the global and per-axis min/max of some data.
//
// Empty bounds hold +Inf for minimums and -Inf for maximums.
type extrema struct {
	yMin, yMax, xMin, xMax float64
	leftMin, leftMax       float64
	rightMin, rightMax     float64
}

func emptyExtrema() extrema {
	inf, negInf := math.Inf(1), math.Inf(-1)
	return extrema{
		yMin: inf, yMax: negInf,
		xMin: inf, xMax: negInf,
		leftMin: inf, leftMax: negInf,
		rightMin: inf, rightMax: negInf,
	}
}

func (e *extrema) includeSet(set DataSet) {
	e.includeBounds(set.AxisDependency(),
		set.XMin(), set.XMax(), set.YMin(), set.YMax())
}

func (e *extrema) includeBounds(axis AxisDependency, xMin, xMax, yMin, yMax float64) {
	e.xMin = math.Min(e.xMin, xMin)
	e.xMax = math.Max(e.xMax, xMax)
	e.yMin = math.Min(e.yMin, yMin)
	e.yMax = math.Max(e.yMax, yMax)

	if axis == AxisLeft {
		e.leftMin = math.Min(e.leftMin, yMin)
		e.leftMax = math.Max(e.leftMax, yMax)
	} else {
		e.rightMin = math.Min(e.rightMin, yMin)
		e.rightMax = math.Max(e.rightMax, yMax)
	}
}

// merge widens e to include other, keeping the axis split.
func (e *extrema) merge(other extrema) {
	e.xMin = math.Min(e.xMin, other.xMin)
	e.xMax = math.Max(e.xMax, other.xMax)
	e.yMin = math.Min(e.yMin, other.yMin)
	e.yMax = math.Max(e.yMax, other.yMax)
	e.leftMin = math.Min(e.leftMin, other.leftMin)
	e.leftMax = math.Max(e.leftMax, other.leftMax)
	e.rightMin = math.Min(e.rightMin, other.rightMin)
	e.rightMax = math.Max(e.rightMax, other.rightMax)
}

func (e *extrema) axisYMin(axis AxisDependency) float64 {
	if axis == AxisLeft {
		if math.IsInf(e.leftMin, 1) {
			return e.rightMin
		}
		return e.leftMin
	}
	if math.IsInf(e.rightMin, 1) {
		return e.leftMin
	}
	return e.rightMin
}

func (e *extrema) axisYMax(axis AxisDependency) float64 {
	if axis == AxisLeft {
		if math.IsInf(e.leftMax, -1) {
			return e.rightMax
		}
		return e.leftMax
	}
	if math.IsInf(e.rightMax, -1) {
		return e.leftMax
	}
	return e.rightMax
}

// ChartData is a collection of series of one kind with their combined
// extrema.
type ChartData[S DataSet] struct {
	kind Kind
	sets []S
	ext  extrema
}

func newChartData[S DataSet](kind Kind, sets []S) *ChartData[S] {
	d := &ChartData[S]{kind: kind, sets: sets}
	d.CalcMinMax()
	return d
}

type (
	LineData    = ChartData[*LineSeries]
	ScatterData = ChartData[*ScatterSeries]
	CandleData  = ChartData[*CandleSeries]
	BubbleData  = ChartData[*BubbleSeries]
)

func NewLineData(sets ...*LineSeries) *LineData {
	return newChartData(KindLine, sets)
}

func NewScatterData(sets ...*ScatterSeries) *ScatterData {
	return newChartData(KindScatter, sets)
}

func NewCandleData(sets ...*CandleSeries) *CandleData {
	return newChartData(KindCandle, sets)
}

func NewBubbleData(sets ...*BubbleSeries) *BubbleData {
	return newChartData(KindBubble, sets)
}

func (d *ChartData[S]) Kind() Kind { return d.kind }

func (d *ChartData[S]) YMin() float64 { return d.ext.yMin }
func (d *ChartData[S]) YMax() float64 { return d.ext.yMax }
func (d *ChartData[S]) XMin() float64 { return d.ext.xMin }
func (d *ChartData[S]) XMax() float64 { return d.ext.xMax }

func (d *ChartData[S]) AxisYMin(axis AxisDependency) float64 {
	return d.ext.axisYMin(axis)
}

func (d *ChartData[S]) AxisYMax(axis AxisDependency) float64 {
	return d.ext.axisYMax(axis)
}

func (d *ChartData[S]) axisExtrema() extrema { return d.ext }

// CalcMinMax recomputes the extrema from the series' own extrema.
func (d *ChartData[S]) CalcMinMax() {
	d.ext = emptyExtrema()
	for _, set := range d.sets {
		d.ext.includeSet(set)
	}
}

// CalcMinMaxY narrows every series' y-extrema to the x window and then
// recomputes the totals.
func (d *ChartData[S]) CalcMinMaxY(fromX, toX float64) {
	for _, set := range d.sets {
		set.CalcMinMaxY(fromX, toX)
	}
	d.CalcMinMax()
}

// NotifyDataChanged recomputes every series' extrema and the totals.
//
// Call it after mutating entries through a series directly.
func (d *ChartData[S]) NotifyDataChanged() {
	for _, set := range d.sets {
		set.CalcMinMax()
	}
	d.CalcMinMax()
}

func (d *ChartData[S]) DataSetCount() int { return len(d.sets) }

// DataSets returns the backing slice. Callers must not modify it.
func (d *ChartData[S]) DataSets() []S { return d.sets }

// DataSet returns the series at index i.
func (d *ChartData[S]) DataSet(i int) (S, bool) {
	if i < 0 || i >= len(d.sets) {
		var zero S
		return zero, false
	}
	return d.sets[i], true
}

func (d *ChartData[S]) DataSetAt(i int) (DataSet, bool) {
	set, ok := d.DataSet(i)
	if !ok {
		return nil, false
	}
	return set, true
}

// DataSetIndexByLabel returns the index of the first series with the
// label, or -1.
func (d *ChartData[S]) DataSetIndexByLabel(label string, ignoreCase bool) int {
	return slices.IndexFunc(d.sets, func(s S) bool {
		if ignoreCase {
			return strings.EqualFold(s.Label(), label)
		}
		return s.Label() == label
	})
}

// DataSetByLabel returns the first series with the label.
func (d *ChartData[S]) DataSetByLabel(label string, ignoreCase bool) (S, bool) {
	return d.DataSet(d.DataSetIndexByLabel(label, ignoreCase))
}

// AddDataSet appends a series and widens the extrema to include it.
func (d *ChartData[S]) AddDataSet(set S) {
	d.sets = append(d.sets, set)
	d.ext.includeSet(set)
}

// RemoveDataSetAt removes the series at index i and recomputes the extrema.
func (d *ChartData[S]) RemoveDataSetAt(i int) bool {
	if i < 0 || i >= len(d.sets) {
		return false
	}
	d.sets = slices.Delete(d.sets, i, i+1)
	d.CalcMinMax()
	return true
}

// RemoveDataSet removes the first series for which match returns true.
func (d *ChartData[S]) RemoveDataSet(match func(S) bool) bool {
	return d.RemoveDataSetAt(slices.IndexFunc(d.sets, match))
}

// RemoveEntryX removes the entry closest to x from series i.
func (d *ChartData[S]) RemoveEntryX(x float64, dataSetIndex int) bool {
	set, ok := d.DataSet(dataSetIndex)
	if !ok || !set.RemoveEntryX(x) {
		return false
	}
	d.CalcMinMax()
	return true
}

// Clear removes every series.
func (d *ChartData[S]) Clear() {
	d.sets = nil
	d.CalcMinMax()
}

// EntryCount returns the number of entries over all series.
func (d *ChartData[S]) EntryCount() int {
	count := 0
	for _, set := range d.sets {
		count += set.Len()
	}
	return count
}

// MaxEntryCountSet returns the series with the most entries.
func (d *ChartData[S]) MaxEntryCountSet() (DataSet, bool) {
	if len(d.sets) == 0 {
		return nil, false
	}
	return slices.MaxFunc(d.sets, func(a, b S) int {
		return a.Len() - b.Len()
	}), true
}

// IsHighlightEnabled reports whether any series can be highlighted.
func (d *ChartData[S]) IsHighlightEnabled() bool {
	return slices.ContainsFunc(d.sets, func(s S) bool {
		return s.IsHighlightEnabled()
	})
}

// SetHighlightEnabled sets the flag on every series.
func (d *ChartData[S]) SetHighlightEnabled(enabled bool) {
	for _, set := range d.sets {
		set.SetHighlightEnabled(enabled)
	}
}

// AddEntry appends e to series i of d, widening the extrema to include it
// without a full recompute.
//
// It returns false if there is no series i.
func AddEntry[S interface {
	DataSet
	Append(E)
}, E Valuer](d *ChartData[S], e E, dataSetIndex int) bool {
	set, ok := d.DataSet(dataSetIndex)
	if !ok {
		return false
	}

	set.Append(e)

	lo, hi := e.YBounds()
	d.ext.includeBounds(set.AxisDependency(), e.X(), e.X(), lo, hi)
	return true
}

// EntryForHighlight looks up the entry a highlight refers to.
//
// dataIndex selects the sub-data of combined data and is ignored
// otherwise. For pie data x is the slice index; for other kinds the entry
// must sit exactly at x and, unless y is NaN, have exactly that y.
func EntryForHighlight(d Data, dataIndex, dataSetIndex int, x, y float64) (Valuer, bool) {
	if d == nil {
		return nil, false
	}

	if d.Kind() == KindCombined {
		combined, ok := d.(*CombinedData)
		if !ok {
			return nil, false
		}
		sub, ok := combined.DataAt(dataIndex)
		if !ok {
			return nil, false
		}
		d = sub
	}

	set, ok := d.DataSetAt(dataSetIndex)
	if !ok {
		return nil, false
	}

	if d.Kind() == KindPie {
		return set.ValueAt(int(x))
	}

	for _, v := range set.ValuesForXValue(x) {
		if math.IsNaN(y) || v.Y() == y {
			return v, true
		}
	}
	return nil, false
}
