package axis

import (
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/wandb/wandb/chartcore/internal/chartdata"
)

// YLabelPosition is where the y-axis labels are drawn.
type YLabelPosition int

const (
	YLabelOutside YLabelPosition = iota
	YLabelInside
)

// YAxis is a vertical axis of a bar or line chart.
type YAxis struct {
	Axis

	// SpaceTop and SpaceBottom pad the data range by a fraction of it.
	SpaceTop    float64
	SpaceBottom float64

	// Inverted draws the minimum at the top.
	Inverted bool

	LabelPosition YLabelPosition
	DrawZeroLine  bool

	// MinWidth and MaxWidth bound RequiredWidth; a MaxWidth of 0 means no
	// upper bound.
	MinWidth int
	MaxWidth int

	dependency chartdata.AxisDependency
}

func NewYAxis(dependency chartdata.AxisDependency) *YAxis {
	return &YAxis{
		Axis:        newAxis(),
		SpaceTop:    0.1,
		SpaceBottom: 0.1,
		dependency:  dependency,
	}
}

// AxisDependency reports which side of the chart the axis is on.
func (a *YAxis) AxisDependency() chartdata.AxisDependency { return a.dependency }

// Calculate sets the axis range from the data range, padded by SpaceTop
// and SpaceBottom times the data range.
//
// The padding uses the range before an empty range is widened, so equal
// bounds end up exactly 1 away from the data.
func (a *YAxis) Calculate(dataMin, dataMax float64) {
	dataMin, dataMax = finiteBounds(dataMin, dataMax)

	lo, hi := dataMin, dataMax
	if a.customMin {
		lo = a.minimum
	}
	if a.customMax {
		hi = a.maximum
	}

	span := math.Abs(hi - lo)
	if span == 0 {
		hi++
		lo--
	}

	if !a.customMin {
		a.minimum = lo - span*a.SpaceBottom
	}
	if !a.customMax {
		a.maximum = hi + span*a.SpaceTop
	}

	a.span = math.Abs(a.maximum - a.minimum)
}

// NeedsOffset reports whether the labels take space outside the content.
func (a *YAxis) NeedsOffset() bool {
	return a.Enabled && a.DrawLabels && a.LabelPosition == YLabelOutside
}

// RequiredWidth is the number of terminal cells the labels need, plus
// padding on each side, bounded by MinWidth and MaxWidth.
func (a *YAxis) RequiredWidth(padding int) int {
	w := runewidth.StringWidth(a.LongestLabel()) + 2*padding
	if a.MaxWidth > 0 {
		w = min(w, a.MaxWidth)
	}
	return max(w, a.MinWidth)
}
