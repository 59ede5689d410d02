package highlight

import (
	"github.com/wandb/wandb/chartcore/internal/chartdata"
)

// CombinedHighlighter highlights combined data.
//
// Bar sub-data goes through a BarHighlighter so stacks resolve as they do
// on a bar chart; every other kind is searched like ChartHighlighter does.
// Results carry the index of their sub-data in DataIndex.
type CombinedHighlighter struct {
	*ChartHighlighter
	provider CombinedDataProvider
	bar      *BarHighlighter
}

func NewCombinedHighlighter(provider CombinedDataProvider) *CombinedHighlighter {
	h := &CombinedHighlighter{
		ChartHighlighter: NewChartHighlighter(provider),
		provider:         provider,
		bar:              NewBarHighlighter(provider),
	}
	h.collect = h.collectCombined
	return h
}

func (h *CombinedHighlighter) Highlight(x, y float64) (Highlight, bool) {
	high, ok := h.ChartHighlighter.Highlight(x, y)
	if !ok {
		return Highlight{}, false
	}

	if h.provider.IsHighlightFullBarEnabled() {
		high.StackIndex = -1
	}
	return high, true
}

func (h *CombinedHighlighter) collectCombined(xValue, x, y float64) []Highlight {
	combined := h.provider.CombinedData()
	if combined == nil {
		return nil
	}

	var highlights []Highlight
	for i, d := range combined.AllData() {
		if d.Kind() == chartdata.KindBar {
			if high, ok := h.bar.Highlight(x, y); ok {
				high.DataIndex = i
				highlights = append(highlights, high)
			}
			continue
		}

		for _, high := range h.collectFrom(d, xValue) {
			high.DataIndex = i
			highlights = append(highlights, high)
		}
	}
	return highlights
}
