package chart

import (
	"iter"
	"math"

	"github.com/wandb/wandb/chartcore/internal/chartdata"
)

// XBounds is the range of entry indices of a series that are visible.
type XBounds struct {
	// Min and Max are the first and last visible entry.
	Min, Max int

	// Range is the number of entries after Min to draw, scaled by the x
	// animation phase.
	Range int
}

// All iterates over the indices to draw, Min through Min+Range.
func (b XBounds) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := b.Min; i <= b.Min+b.Range; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// XBounds returns the entries of set that fall in the visible x range,
// widened to the entries just outside it so lines reach the edges.
func (c *BarLineChart) XBounds(set chartdata.DataSet) XBounds {
	if set == nil || set.Len() == 0 {
		return XBounds{}
	}

	phaseX := min(max(c.animator.PhaseX(), 0), 1)

	var b XBounds
	if i := set.EntryIndex(c.LowestVisibleX(), math.NaN(), chartdata.RoundDown); i >= 0 {
		b.Min = i
	}
	if i := set.EntryIndex(c.HighestVisibleX(), math.NaN(), chartdata.RoundUp); i >= 0 {
		b.Max = i
	}
	b.Range = max(int(float64(b.Max-b.Min)*phaseX), 0)
	return b
}
