package chartdata

import (
	"math"

	"github.com/wandb/wandb/chartcore/internal/format"
)

// DataSet is the kind-independent view of a series.
//
// Composite data, highlighters and renderers work through this interface;
// every kind-specific series below implements it by embedding a Series.
type DataSet interface {
	Label() string
	Len() int
	AxisDependency() AxisDependency
	IsVisible() bool
	IsHighlightEnabled() bool
	SetHighlightEnabled(enabled bool)
	ValueFormatter() format.ValueFormatter
	SetValueFormatter(f format.ValueFormatter)
	Color(i int) Color

	YMin() float64
	YMax() float64
	XMin() float64
	XMax() float64
	CalcMinMax()
	CalcMinMaxY(fromX, toX float64)

	EntryIndex(x, closestToY float64, rounding Rounding) int
	ValueAt(i int) (Valuer, bool)
	ValuesForXValue(x float64) []Valuer
	RemoveEntryX(x float64) bool
}

// LineMode is how consecutive points of a line series are joined.
type LineMode int

const (
	LineModeLinear LineMode = iota
	LineModeStepped
	LineModeCubicBezier
	LineModeHorizontalBezier
)

// LineStyle holds the drawing options of a line series.
type LineStyle struct {
	Mode         LineMode
	LineWidth    float64
	DrawCircles  bool
	CircleRadius float64
	DrawFilled   bool
	FillAlpha    float64

	cubicIntensity float64
}

// CubicIntensity is the bezier smoothing factor, in [0.05, 1].
func (s *LineStyle) CubicIntensity() float64 { return s.cubicIntensity }

// SetCubicIntensity sets the smoothing factor, clamped to [0.05, 1].
func (s *LineStyle) SetCubicIntensity(v float64) {
	s.cubicIntensity = min(max(v, 0.05), 1)
}

// LineSeries is a series drawn as a connected line.
type LineSeries struct {
	*Series[Entry]
	Style LineStyle
}

func NewLineSeries(entries []Entry, label string) *LineSeries {
	return &LineSeries{
		Series: NewSeries(entries, label),
		Style: LineStyle{
			LineWidth:      1,
			DrawCircles:    true,
			CircleRadius:   8,
			FillAlpha:      0.33,
			cubicIntensity: 0.2,
		},
	}
}

// ScatterShape is the marker drawn for each point of a scatter series.
type ScatterShape int

const (
	ShapeSquare ScatterShape = iota
	ShapeCircle
	ShapeTriangle
	ShapeCross
	ShapeX
	ShapeChevronUp
	ShapeChevronDown
)

// ScatterStyle holds the drawing options of a scatter series.
type ScatterStyle struct {
	Shape      ScatterShape
	ShapeSize  float64
	HoleRadius float64
}

// ScatterSeries is a series drawn as unconnected markers.
type ScatterSeries struct {
	*Series[Entry]
	Style ScatterStyle
}

func NewScatterSeries(entries []Entry, label string) *ScatterSeries {
	return &ScatterSeries{
		Series: NewSeries(entries, label),
		Style:  ScatterStyle{Shape: ShapeSquare, ShapeSize: 10},
	}
}

// BarStyle holds the drawing options of a bar series.
type BarStyle struct {
	ShadowColor    Color
	BorderWidth    float64
	HighlightAlpha float64

	// StackLabels name the segments of stacked bars, in stack order.
	StackLabels []string
}

// BarSeries is a series of possibly stacked bars.
type BarSeries struct {
	*Series[BarEntry]
	Style BarStyle
}

func NewBarSeries(entries []BarEntry, label string) *BarSeries {
	return &BarSeries{
		Series: NewSeries(entries, label),
		Style: BarStyle{
			ShadowColor:    "#D7D7D7",
			HighlightAlpha: 120.0 / 255.0,
			StackLabels:    []string{"Stack"},
		},
	}
}

// StackSize returns the largest stack size among the entries, at least 1.
func (s *BarSeries) StackSize() int {
	size := 1
	for _, e := range s.entries {
		if e.IsStacked() {
			size = max(size, e.StackSize())
		}
	}
	return size
}

// IsStacked reports whether any entry is a stack of more than one value.
func (s *BarSeries) IsStacked() bool {
	return s.StackSize() > 1
}

// EntryCountStacks counts every stack segment as its own entry.
func (s *BarSeries) EntryCountStacks() int {
	count := 0
	for _, e := range s.entries {
		count += e.StackSize()
	}
	return count
}

// BubbleStyle holds the drawing options of a bubble series.
type BubbleStyle struct {
	NormalizeSize bool
	CircleWidth   float64
}

// BubbleSeries is a series of sized markers.
type BubbleSeries struct {
	*Series[BubbleEntry]
	Style BubbleStyle
}

func NewBubbleSeries(entries []BubbleEntry, label string) *BubbleSeries {
	return &BubbleSeries{
		Series: NewSeries(entries, label),
		Style:  BubbleStyle{NormalizeSize: true, CircleWidth: 2.5},
	}
}

// MaxSize returns the largest bubble size, or 0 if there are none.
func (s *BubbleSeries) MaxSize() float64 {
	var size float64
	for _, e := range s.entries {
		size = math.Max(size, e.Size())
	}
	return size
}

// CandleStyle holds the drawing options of a candle series.
type CandleStyle struct {
	ShadowWidth     float64
	ShowCandleBar   bool
	IncreasingColor Color
	DecreasingColor Color
	NeutralColor    Color

	barSpace float64
}

// BarSpace is the gap on each side of a candle body, in [0, 0.45] of the
// x interval.
func (s *CandleStyle) BarSpace() float64 { return s.barSpace }

// SetBarSpace sets the body gap, clamped to [0, 0.45].
func (s *CandleStyle) SetBarSpace(v float64) {
	s.barSpace = min(max(v, 0), 0.45)
}

// CandleSeries is a series of open/high/low/close candles.
type CandleSeries struct {
	*Series[CandleEntry]
	Style CandleStyle
}

func NewCandleSeries(entries []CandleEntry, label string) *CandleSeries {
	return &CandleSeries{
		Series: NewSeries(entries, label),
		Style: CandleStyle{
			ShadowWidth:     1.5,
			ShowCandleBar:   true,
			IncreasingColor: "#00FF00",
			DecreasingColor: "#FF0000",
			barSpace:        0.1,
		},
	}
}

// PieStyle holds the drawing options of a pie series.
type PieStyle struct {
	SelectionShift float64

	// AutoDisableSliceSpacing turns the gap off when a slice would be
	// smaller than it.
	AutoDisableSliceSpacing bool

	sliceSpace float64
}

// SliceSpace is the gap between slices in pixels, in [0, 20].
func (s *PieStyle) SliceSpace() float64 { return s.sliceSpace }

// SetSliceSpace sets the gap between slices, clamped to [0, 20].
func (s *PieStyle) SetSliceSpace(v float64) {
	s.sliceSpace = min(max(v, 0), 20)
}

// PieSeries holds the slices of a pie chart.
type PieSeries struct {
	*Series[PieEntry]
	Style PieStyle
}

func NewPieSeries(entries []PieEntry, label string) *PieSeries {
	return &PieSeries{
		Series: NewSeries(entries, label),
		Style:  PieStyle{SelectionShift: 18},
	}
}

// YValueSum returns the sum of the slice values.
func (s *PieSeries) YValueSum() float64 {
	var sum float64
	for _, e := range s.entries {
		sum += e.Value()
	}
	return sum
}
