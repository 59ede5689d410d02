package chartdata

import (
	"iter"
	"math"
	"slices"

	"github.com/wandb/wandb/chartcore/internal/format"
)

// AxisDependency selects which of the two y-axes a series is plotted on.
type AxisDependency int

const (
	AxisLeft AxisDependency = iota
	AxisRight
)

func (a AxisDependency) String() string {
	if a == AxisRight {
		return "right"
	}
	return "left"
}

// Rounding decides which neighbor a lookup picks when the query x falls
// between two entries.
type Rounding int

const (
	RoundUp Rounding = iota
	RoundDown
	RoundClosest
)

// Color is an opaque color value, typically a hex string like "#8CEAFF".
type Color string

// DefaultColor is the color of a series that was never given colors.
const DefaultColor Color = "#8CEAFF"

// Series is an ordered sequence of entries plotted with one style.
//
// Entries are expected to be sorted ascending by x; lookups binary search
// under that assumption. AddEntryOrdered keeps the order, Append and
// Replace trust the caller.
//
// A Series is not safe for concurrent use.
type Series[E Valuer] struct {
	entries []E

	yMin, yMax float64
	xMin, xMax float64

	label            string
	axis             AxisDependency
	colors           []Color
	visible          bool
	highlightEnabled bool
	drawValues       bool
	valueFormatter   format.ValueFormatter
}

// NewSeries returns a series holding entries, with extrema computed.
func NewSeries[E Valuer](entries []E, label string) *Series[E] {
	s := &Series[E]{
		entries:          entries,
		label:            label,
		colors:           []Color{DefaultColor},
		visible:          true,
		highlightEnabled: true,
		drawValues:       true,
	}
	s.CalcMinMax()
	return s
}

func (s *Series[E]) Label() string { return s.label }
func (s *Series[E]) SetLabel(label string) { s.label = label }
func (s *Series[E]) AxisDependency() AxisDependency { return s.axis }
func (s *Series[E]) SetAxisDependency(a AxisDependency) { s.axis = a }
func (s *Series[E]) IsVisible() bool { return s.visible }
func (s *Series[E]) SetVisible(visible bool) { s.visible = visible }
func (s *Series[E]) IsHighlightEnabled() bool { return s.highlightEnabled }
func (s *Series[E]) SetHighlightEnabled(enabled bool) { s.highlightEnabled = enabled }
func (s *Series[E]) IsDrawValuesEnabled() bool { return s.drawValues }
func (s *Series[E]) SetDrawValuesEnabled(enabled bool) { s.drawValues = enabled }
func (s *Series[E]) ValueFormatter() format.ValueFormatter { return s.valueFormatter }

// SetValueFormatter sets the formatter for entry value labels.
//
// A nil formatter means the chart's default formatter is used.
func (s *Series[E]) SetValueFormatter(f format.ValueFormatter) {
	s.valueFormatter = f
}

func (s *Series[E]) YMin() float64 { return s.yMin }
func (s *Series[E]) YMax() float64 { return s.yMax }
func (s *Series[E]) XMin() float64 { return s.xMin }
func (s *Series[E]) XMax() float64 { return s.xMax }

// Len returns the number of entries.
func (s *Series[E]) Len() int { return len(s.entries) }

// At returns the entry at index i, which must be in range.
func (s *Series[E]) At(i int) E { return s.entries[i] }

// ValueAt is At for callers that only know the series as a DataSet.
func (s *Series[E]) ValueAt(i int) (Valuer, bool) {
	if i < 0 || i >= len(s.entries) {
		return nil, false
	}
	return s.entries[i], true
}

// Entries returns the backing slice. Callers must not modify it.
func (s *Series[E]) Entries() []E { return s.entries }

// All iterates over the entries with their indices.
func (s *Series[E]) All() iter.Seq2[int, E] {
	return slices.All(s.entries)
}

// IndexOf returns the index of the first entry matching, or -1.
func (s *Series[E]) IndexOf(match func(E) bool) int {
	return slices.IndexFunc(s.entries, match)
}

// CalcMinMax recomputes all extrema by scanning every entry.
func (s *Series[E]) CalcMinMax() {
	s.yMin, s.yMax = math.Inf(1), math.Inf(-1)
	s.xMin, s.xMax = math.Inf(1), math.Inf(-1)

	for _, e := range s.entries {
		s.includeEntry(e)
	}
}

// CalcMinMaxY recomputes the y-extrema from the entries between fromX and
// toX, widened to the neighbors just outside the window.
func (s *Series[E]) CalcMinMaxY(fromX, toX float64) {
	s.yMin, s.yMax = math.Inf(1), math.Inf(-1)
	if len(s.entries) == 0 {
		return
	}

	from := s.EntryIndex(fromX, math.NaN(), RoundDown)
	to := s.EntryIndex(toX, math.NaN(), RoundUp)
	if to < from {
		return
	}

	for _, e := range s.entries[from : to+1] {
		s.includeY(e)
	}
}

func (s *Series[E]) includeEntry(e E) {
	s.includeX(e)
	s.includeY(e)
}

func (s *Series[E]) includeX(e E) {
	s.xMin = math.Min(s.xMin, e.X())
	s.xMax = math.Max(s.xMax, e.X())
}

func (s *Series[E]) includeY(e E) {
	lo, hi := e.YBounds()
	s.yMin = math.Min(s.yMin, lo)
	s.yMax = math.Max(s.yMax, hi)
}

// Append adds an entry at the end and widens the extrema to include it.
//
// The caller is responsible for keeping x ascending.
func (s *Series[E]) Append(e E) {
	s.entries = append(s.entries, e)
	s.includeEntry(e)
}

// Replace swaps out all entries and recomputes the extrema.
func (s *Series[E]) Replace(entries []E) {
	s.entries = entries
	s.CalcMinMax()
}

// Set replaces the entry at index i and recomputes the extrema.
func (s *Series[E]) Set(i int, e E) bool {
	if i < 0 || i >= len(s.entries) {
		return false
	}
	s.entries[i] = e
	s.CalcMinMax()
	return true
}

// AddEntryOrdered inserts e keeping the series sorted by x.
func (s *Series[E]) AddEntryOrdered(e E) {
	n := len(s.entries)
	if n == 0 || s.entries[n-1].X() <= e.X() {
		s.Append(e)
		return
	}

	// Insert after any entries sharing e's x.
	idx := s.EntryIndex(e.X(), math.NaN(), RoundUp)
	for idx > 0 && s.entries[idx-1].X() > e.X() {
		idx--
	}
	for idx < n && s.entries[idx].X() <= e.X() {
		idx++
	}

	s.entries = slices.Insert(s.entries, idx, e)
	s.includeEntry(e)
}

// RemoveAt removes the entry at index i.
func (s *Series[E]) RemoveAt(i int) bool {
	if i < 0 || i >= len(s.entries) {
		return false
	}
	s.entries = slices.Delete(s.entries, i, i+1)
	s.CalcMinMax()
	return true
}

// RemoveEntry removes the first entry for which match returns true.
func (s *Series[E]) RemoveEntry(match func(E) bool) bool {
	return s.RemoveAt(s.IndexOf(match))
}

// RemoveEntryX removes the entry whose x is closest to x.
func (s *Series[E]) RemoveEntryX(x float64) bool {
	return s.RemoveAt(s.EntryIndex(x, math.NaN(), RoundClosest))
}

func (s *Series[E]) RemoveFirst() bool { return s.RemoveAt(0) }
func (s *Series[E]) RemoveLast() bool { return s.RemoveAt(len(s.entries) - 1) }

// Clear removes every entry.
func (s *Series[E]) Clear() {
	s.entries = nil
	s.CalcMinMax()
}

// EntryIndex returns the index of the entry closest to x, or -1 if the
// series is empty.
//
// When the closest entry lies on the wrong side of x for the requested
// rounding, its neighbor is used instead. If closestToY is not NaN, the
// run of entries sharing the chosen x is searched for the y closest to it.
func (s *Series[E]) EntryIndex(x, closestToY float64, rounding Rounding) int {
	if len(s.entries) == 0 {
		return -1
	}

	low, high := 0, len(s.entries)-1
	for low < high {
		m := (low + high) / 2

		d1 := s.entries[m].X() - x
		d2 := s.entries[m+1].X() - x
		ad1, ad2 := math.Abs(d1), math.Abs(d2)

		switch {
		case ad2 < ad1:
			// The neighbor is closer; search the upper half.
			low = m + 1
		case ad1 < ad2:
			high = m
		case d1 >= 0:
			// Equidistant, with m at or after x.
			high = m
		default:
			low = m + 1
		}
	}
	closest := high

	closestX := s.entries[closest].X()
	switch rounding {
	case RoundUp:
		if closestX < x && closest < len(s.entries)-1 {
			closest++
		}
	case RoundDown:
		if closestX > x && closest > 0 {
			closest--
		}
	}

	if !math.IsNaN(closestToY) {
		closest = s.closestYInRun(closest, closestToY)
	}

	return closest
}

// closestYInRun searches the entries sharing the x of entries[i] for the one
// whose y is closest to y. Earlier entries win ties.
func (s *Series[E]) closestYInRun(i int, y float64) int {
	runX := s.entries[i].X()
	for i > 0 && s.entries[i-1].X() == runX {
		i--
	}

	best := i
	bestDist := math.Abs(s.entries[i].Y() - y)
	for j := i + 1; j < len(s.entries) && s.entries[j].X() == runX; j++ {
		if d := math.Abs(s.entries[j].Y() - y); d < bestDist {
			best, bestDist = j, d
		}
	}
	return best
}

// EntryForXValue returns the entry found by EntryIndex.
func (s *Series[E]) EntryForXValue(x, closestToY float64, rounding Rounding) (E, bool) {
	idx := s.EntryIndex(x, closestToY, rounding)
	if idx < 0 {
		var zero E
		return zero, false
	}
	return s.entries[idx], true
}

// EntriesForXValue returns every entry whose x equals x exactly.
func (s *Series[E]) EntriesForXValue(x float64) []E {
	low, high := 0, len(s.entries)-1
	for low <= high {
		m := (low + high) / 2
		mx := s.entries[m].X()

		switch {
		case x == mx:
			for m > 0 && s.entries[m-1].X() == x {
				m--
			}
			end := m
			for end < len(s.entries) && s.entries[end].X() == x {
				end++
			}
			return slices.Clone(s.entries[m:end])
		case x > mx:
			low = m + 1
		default:
			high = m - 1
		}
	}
	return nil
}

// ValuesForXValue is EntriesForXValue for callers that only know the series
// as a DataSet.
func (s *Series[E]) ValuesForXValue(x float64) []Valuer {
	entries := s.EntriesForXValue(x)
	values := make([]Valuer, len(entries))
	for i, e := range entries {
		values[i] = e
	}
	return values
}

// Colors returns the series palette.
func (s *Series[E]) Colors() []Color { return s.colors }

// SetColors replaces the palette.
func (s *Series[E]) SetColors(colors ...Color) {
	s.colors = slices.Clone(colors)
}

// ResetColors empties the palette.
func (s *Series[E]) ResetColors() {
	s.colors = nil
}

// Color returns the palette color for entry i.
//
// The palette repeats, so any non-negative index is valid. Negative
// indices are treated as 0 and an empty palette yields "".
func (s *Series[E]) Color(i int) Color {
	if len(s.colors) == 0 {
		return ""
	}
	return s.colors[max(i, 0)%len(s.colors)]
}
