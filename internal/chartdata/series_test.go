package chartdata_test

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wandb/wandb/chartcore/internal/chartdata"
)

func entries(points ...[2]float64) []chartdata.Entry {
	out := make([]chartdata.Entry, len(points))
	for i, p := range points {
		out[i] = chartdata.NewEntry(p[0], p[1])
	}
	return out
}

func TestSeries_Empty(t *testing.T) {
	s := chartdata.NewSeries[chartdata.Entry](nil, "empty")

	assert.Equal(t, -1, s.EntryIndex(3, math.NaN(), chartdata.RoundClosest))
	_, ok := s.EntryForXValue(3, math.NaN(), chartdata.RoundClosest)
	assert.False(t, ok)
	assert.Empty(t, s.EntriesForXValue(3))
	assert.True(t, math.IsInf(s.YMin(), 1))
	assert.True(t, math.IsInf(s.YMax(), -1))
	assert.False(t, s.RemoveFirst())
}

func TestSeries_EntryIndexRounding(t *testing.T) {
	s := chartdata.NewSeries(entries(
		[2]float64{1, 0}, [2]float64{2, 0}, [2]float64{4, 0}, [2]float64{8, 0},
	), "s")

	testCases := []struct {
		name     string
		x        float64
		rounding chartdata.Rounding
		want     int
	}{
		{"exact", 4, chartdata.RoundClosest, 2},
		{"tie picks the larger x", 3, chartdata.RoundClosest, 2},
		{"round down", 3, chartdata.RoundDown, 1},
		{"round up", 5, chartdata.RoundUp, 3},
		{"closest", 5, chartdata.RoundClosest, 2},
		{"past the end", 100, chartdata.RoundUp, 3},
		{"before the start", -5, chartdata.RoundDown, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, s.EntryIndex(tc.x, math.NaN(), tc.rounding))
		})
	}
}

func TestSeries_EntryIndexMatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for range 50 {
		n := 1 + rng.IntN(40)
		xs := make([]float64, n)
		for i := range xs {
			xs[i] = rng.Float64()*200 - 100
		}
		slices.Sort(xs)

		es := make([]chartdata.Entry, n)
		for i, x := range xs {
			es[i] = chartdata.NewEntry(x, 0)
		}
		s := chartdata.NewSeries(es, "random")

		for range 20 {
			q := rng.Float64()*240 - 120

			best := math.Inf(1)
			for _, x := range xs {
				best = math.Min(best, math.Abs(x-q))
			}

			got := s.EntryIndex(q, math.NaN(), chartdata.RoundClosest)
			require.GreaterOrEqual(t, got, 0)
			assert.Equal(t, best, math.Abs(xs[got]-q), "query %v", q)
		}
	}
}

func TestSeries_EntryIndexClosestY(t *testing.T) {
	s := chartdata.NewSeries(entries(
		[2]float64{1, 1},
		[2]float64{2, 5},
		[2]float64{2, 1},
		[2]float64{2, 9},
		[2]float64{3, 0},
	), "s")

	assert.Equal(t, 1, s.EntryIndex(2, 4, chartdata.RoundClosest))
	assert.Equal(t, 3, s.EntryIndex(2, 100, chartdata.RoundClosest))

	// y=3 is 2 away from both 5 and 1; the earlier entry wins.
	assert.Equal(t, 1, s.EntryIndex(2, 3, chartdata.RoundClosest))
}

func TestSeries_EntriesForXValue(t *testing.T) {
	s := chartdata.NewSeries(entries(
		[2]float64{1, 1}, [2]float64{2, 5}, [2]float64{2, 6}, [2]float64{3, 0},
	), "s")

	got := s.EntriesForXValue(2)
	require.Len(t, got, 2)
	assert.Equal(t, 5.0, got[0].Y())
	assert.Equal(t, 6.0, got[1].Y())

	got[0] = chartdata.NewEntry(99, 99)
	assert.Equal(t, 2.0, s.At(1).X())

	assert.Empty(t, s.EntriesForXValue(2.5))
}

func TestSeries_AddEntryOrderedKeepsOrder(t *testing.T) {
	s := chartdata.NewSeries(entries([2]float64{1, 0}, [2]float64{3, 0}, [2]float64{5, 0}), "s")

	s.AddEntryOrdered(chartdata.NewEntry(4, 10))
	s.AddEntryOrdered(chartdata.NewEntry(0, -10))
	s.AddEntryOrdered(chartdata.NewEntry(3, 1))
	s.AddEntryOrdered(chartdata.NewEntry(9, 2))

	xs := make([]float64, 0, s.Len())
	for _, e := range s.All() {
		xs = append(xs, e.X())
	}
	assert.True(t, slices.IsSorted(xs), "got %v", xs)
	assert.Equal(t, 7, s.Len())
	assert.Equal(t, -10.0, s.YMin())
	assert.Equal(t, 10.0, s.YMax())
	assert.Equal(t, 0.0, s.XMin())
	assert.Equal(t, 9.0, s.XMax())
}

func TestSeries_AddEntryOrderedAroundDuplicateX(t *testing.T) {
	xsOf := func(s *chartdata.Series[chartdata.Entry]) []float64 {
		xs := make([]float64, 0, s.Len())
		for _, e := range s.All() {
			xs = append(xs, e.X())
		}
		return xs
	}
	newSeries := func() *chartdata.Series[chartdata.Entry] {
		return chartdata.NewSeries(entries(
			[2]float64{0, 0},
			[2]float64{10, 0},
			[2]float64{10, 0},
			[2]float64{10, 5},
			[2]float64{20, 0},
		), "s")
	}

	before := newSeries()
	before.AddEntryOrdered(chartdata.NewEntry(9, 5))
	assert.Equal(t, []float64{0, 9, 10, 10, 10, 20}, xsOf(before))

	into := newSeries()
	into.AddEntryOrdered(chartdata.NewEntry(10, 7))
	assert.Equal(t, []float64{0, 10, 10, 10, 10, 20}, xsOf(into))
	assert.Equal(t, 7.0, into.At(4).Y(), "goes after the run")

	after := newSeries()
	after.AddEntryOrdered(chartdata.NewEntry(11, -1))
	assert.Equal(t, []float64{0, 10, 10, 10, 11, 20}, xsOf(after))
	assert.Equal(t, -1.0, after.YMin())
}

func TestSeries_ExtremaAfterMutation(t *testing.T) {
	s := chartdata.NewSeries(entries(
		[2]float64{1, 10}, [2]float64{2, -1}, [2]float64{3, 7},
	), "s")

	s.Append(chartdata.NewEntry(4, 50))
	assert.Equal(t, 50.0, s.YMax())
	assert.Equal(t, 4.0, s.XMax())

	require.True(t, s.RemoveLast())
	assert.Equal(t, 10.0, s.YMax())

	require.True(t, s.RemoveEntryX(2.1))
	assert.Equal(t, 7.0, s.YMin())

	require.True(t, s.Set(0, chartdata.NewEntry(1, -3)))
	assert.Equal(t, -3.0, s.YMin())
	assert.False(t, s.Set(10, chartdata.NewEntry(1, 1)))

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.True(t, math.IsInf(s.XMin(), 1))
}

func TestSeries_CalcMinMaxYWindow(t *testing.T) {
	s := chartdata.NewSeries(entries(
		[2]float64{1, 10},
		[2]float64{2, -1},
		[2]float64{3, 7},
		[2]float64{4, 3},
		[2]float64{5, 100},
	), "s")

	s.CalcMinMaxY(2.5, 3.5)

	assert.Equal(t, -1.0, s.YMin())
	assert.Equal(t, 7.0, s.YMax())
	assert.Equal(t, 1.0, s.XMin(), "x-extrema are untouched")
}

func TestSeries_StackedBarsUseBounds(t *testing.T) {
	s := chartdata.NewSeries([]chartdata.BarEntry{
		chartdata.NewStackedBarEntry(0, []float64{3, -2, 5}),
		chartdata.NewBarEntry(1, 4),
	}, "bars")

	assert.Equal(t, -2.0, s.YMin())
	assert.Equal(t, 8.0, s.YMax())
}

func TestSeries_RemoveEntry(t *testing.T) {
	s := chartdata.NewSeries(entries([2]float64{1, 1}, [2]float64{2, 2}), "s")

	assert.True(t, s.RemoveEntry(func(e chartdata.Entry) bool { return e.Y() == 2 }))
	assert.False(t, s.RemoveEntry(func(e chartdata.Entry) bool { return e.Y() == 2 }))
	assert.Equal(t, 1, s.Len())
}

func TestSeries_Color(t *testing.T) {
	s := chartdata.NewSeries[chartdata.Entry](nil, "s")
	assert.Equal(t, chartdata.DefaultColor, s.Color(5))

	s.SetColors("#111111", "#222222")
	assert.Equal(t, chartdata.Color("#222222"), s.Color(3))
	assert.Equal(t, chartdata.Color("#111111"), s.Color(-1))

	s.ResetColors()
	assert.Equal(t, chartdata.Color(""), s.Color(0))
}
