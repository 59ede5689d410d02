package axis

// XLabelPosition is where the x-axis labels are drawn.
type XLabelPosition int

const (
	XLabelBottom XLabelPosition = iota
	XLabelTop
	XLabelBothSided
	XLabelTopInside
	XLabelBottomInside
)

// XAxis is the horizontal axis of a bar or line chart.
type XAxis struct {
	Axis

	Position XLabelPosition

	// AvoidFirstLastClipping shifts the outermost labels inward so they
	// are not cut off at the chart edges.
	AvoidFirstLastClipping bool
}

func NewXAxis() *XAxis {
	return &XAxis{Axis: newAxis()}
}
