package termchart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/wandb/wandb/chartcore/internal/chart"
	"github.com/wandb/wandb/chartcore/internal/chartdata"
	"github.com/wandb/wandb/chartcore/internal/format"
)

const legendMarker = "●"

// Legend lists the visible series of d on one line of at most width
// cells, marked in the color each series is drawn with.
//
// Labels are shortened evenly when they do not fit.
func Legend(d chartdata.Data, width int) string {
	type item struct {
		label string
		style lipgloss.Style
	}

	var items []item
	var visit func(d chartdata.Data)
	visit = func(d chartdata.Data) {
		if combined, ok := d.(*chartdata.CombinedData); ok {
			for _, sub := range combined.AllData() {
				visit(sub)
			}
			return
		}
		for i := range d.DataSetCount() {
			set, ok := d.DataSetAt(i)
			if !ok || !set.IsVisible() {
				continue
			}
			items = append(items, item{set.Label(), seriesStyle(set, i)})
		}
	}
	if d != nil {
		visit(d)
	}
	if len(items) == 0 || width <= 0 {
		return ""
	}

	// Each item is a marker, a space, the label and two separating spaces.
	labelWidth := width/len(items) - 4
	if labelWidth < 1 {
		return ""
	}

	parts := make([]string, 0, len(items))
	for _, it := range items {
		label := runewidth.Truncate(it.label, labelWidth, "…")
		parts = append(parts, it.style.Render(legendMarker)+" "+labelStyle.Render(label))
	}
	return strings.Join(parts, "  ")
}

// Readout describes the first selected value of c, or returns "" if
// nothing is selected.
func Readout(c *chart.BarLineChart) string {
	highs := c.Highlighted()
	if len(highs) == 0 {
		return ""
	}
	h := highs[0]

	entry, ok := c.EntryForHighlight(h)
	if !ok {
		return ""
	}

	d := c.Data()
	if combined, ok := d.(*chartdata.CombinedData); ok {
		if d, ok = combined.DataAt(h.DataIndex); !ok {
			return ""
		}
	}
	set, ok := d.DataSetAt(h.DataSetIndex)
	if !ok {
		return ""
	}

	y := format.Compact(entry.Y(), 8)
	if f := set.ValueFormatter(); f != nil {
		y = f.FormatValue(entry.Y(), h.DataSetIndex)
	}

	return fmt.Sprintf("%s  x %s  y %s",
		set.Label(),
		format.Compact(entry.X(), 8),
		y)
}
