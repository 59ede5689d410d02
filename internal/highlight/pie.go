package highlight

// PieHighlighter highlights the slice of a pie chart under a touch.
//
// Any touch inside the radius selects a slice; there is no distance limit.
type PieHighlighter struct {
	provider PieProvider
}

func NewPieHighlighter(provider PieProvider) *PieHighlighter {
	return &PieHighlighter{provider: provider}
}

func (h *PieHighlighter) Highlight(x, y float64) (Highlight, bool) {
	if h.provider.DistanceToCenter(x, y) > h.provider.Radius() {
		return Highlight{}, false
	}

	// Slices grow with the y phase while animating.
	phase := h.provider.PhaseY()
	if phase <= 0 {
		return Highlight{}, false
	}
	angle := h.provider.AngleForPoint(x, y) / phase

	index := h.provider.IndexForAngle(angle)
	if index < 0 {
		return Highlight{}, false
	}

	d := h.provider.PieData()
	if d == nil {
		return Highlight{}, false
	}
	set, ok := d.Series()
	if !ok || index >= set.Len() {
		return Highlight{}, false
	}

	high := New(float64(index), set.At(index).Y(), 0)
	high.XPx = x
	high.YPx = y
	high.Axis = set.AxisDependency()
	return high, true
}
