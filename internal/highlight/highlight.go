// Package highlight resolves a touched pixel to the data point it selects.
package highlight

import (
	"fmt"
	"math"

	"github.com/wandb/wandb/chartcore/internal/chartdata"
	"github.com/wandb/wandb/chartcore/internal/transform"
)

// DefaultMaxHighlightDistance is how far, in pixels, a touch may be from a
// point and still select it.
const DefaultMaxHighlightDistance = 500.0

// Highlight is a selected data point.
type Highlight struct {
	// X and Y are the value of the selected entry.
	X, Y float64

	// XPx and YPx are the entry's pixel position.
	XPx, YPx float64

	// DataIndex is the sub-data of combined data, or -1.
	DataIndex int

	DataSetIndex int

	// StackIndex is the selected segment of a stacked bar, or -1.
	StackIndex int

	Axis chartdata.AxisDependency

	// DrawX and DrawY are where the renderer drew the highlight indicator.
	DrawX, DrawY float64
}

// New returns a highlight of the entry at (x, y) in series dataSetIndex,
// outside combined data and not stacked.
func New(x, y float64, dataSetIndex int) Highlight {
	return Highlight{
		X:            x,
		Y:            y,
		XPx:          math.NaN(),
		YPx:          math.NaN(),
		DataIndex:    -1,
		DataSetIndex: dataSetIndex,
		StackIndex:   -1,
	}
}

// IsStacked reports whether the highlight selects one segment of a stack.
func (h Highlight) IsStacked() bool { return h.StackIndex >= 0 }

// Equal reports whether two highlights select the same point.
//
// Draw positions are ignored; NaN values compare equal to each other.
func (h Highlight) Equal(o Highlight) bool {
	return sameFloat(h.X, o.X) &&
		sameFloat(h.Y, o.Y) &&
		sameFloat(h.XPx, o.XPx) &&
		sameFloat(h.YPx, o.YPx) &&
		h.DataIndex == o.DataIndex &&
		h.DataSetIndex == o.DataSetIndex &&
		h.StackIndex == o.StackIndex &&
		h.Axis == o.Axis
}

func sameFloat(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

func (h Highlight) String() string {
	return fmt.Sprintf(
		"Highlight{x: %v, y: %v, dataIndex: %d, dataSetIndex: %d, stackIndex: %d}",
		h.X, h.Y, h.DataIndex, h.DataSetIndex, h.StackIndex)
}

// Highlighter finds the highlight for a touched pixel.
type Highlighter interface {
	Highlight(x, y float64) (Highlight, bool)
}

// DataProvider is what ChartHighlighter needs from a chart.
type DataProvider interface {
	Data() chartdata.Data

	// Transformer returns the transformer of the given y-axis.
	Transformer(axis chartdata.AxisDependency) *transform.Transformer

	MaxHighlightDistance() float64
}

// BarDataProvider is what BarHighlighter needs from a chart.
type BarDataProvider interface {
	DataProvider

	// BarData returns the chart's bar data, or nil.
	BarData() *chartdata.BarData

	// IsHighlightFullBarEnabled makes highlights select whole stacked bars
	// instead of single segments.
	IsHighlightFullBarEnabled() bool
}

// CombinedDataProvider is what CombinedHighlighter needs from a chart.
type CombinedDataProvider interface {
	BarDataProvider

	CombinedData() *chartdata.CombinedData
}

// PieProvider is what PieHighlighter needs from a pie chart.
type PieProvider interface {
	PieData() *chartdata.PieData

	DistanceToCenter(x, y float64) float64
	Radius() float64

	// AngleForPoint returns the angle of the pixel around the center, in
	// degrees clockwise from the positive x direction.
	AngleForPoint(x, y float64) float64

	// IndexForAngle returns the slice at the angle, or -1.
	IndexForAngle(angle float64) int

	// PhaseY is the current y animation phase, which scales the angles.
	PhaseY() float64
}
