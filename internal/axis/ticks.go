package axis

import "math"

// TickOptions controls how ComputeTicks spaces tick values.
type TickOptions struct {
	// LabelCount is the desired number of ticks.
	LabelCount int

	// Force emits exactly LabelCount evenly spaced ticks from min to max
	// instead of rounding the interval to a readable value.
	Force bool

	// Centered shifts the first tick one interval down and reports each
	// tick's interval midpoint as a centered entry.
	Centered bool

	// Granularity is the smallest allowed interval when GranularityEnabled.
	Granularity        float64
	GranularityEnabled bool
}

// Ticks is the result of ComputeTicks.
type Ticks struct {
	// Entries are the tick values in ascending order.
	Entries []float64

	// CenteredEntries are the midpoints after each entry. They are only
	// set for centered ticks.
	CenteredEntries []float64

	Interval float64
	Decimals int
}

// ComputeTicks returns readable tick values spanning [lo, hi].
//
// There are no ticks when LabelCount is not positive or the range is empty
// or not finite.
func ComputeTicks(lo, hi float64, opts TickOptions) Ticks {
	if lo > hi {
		lo, hi = hi, lo
	}

	span := hi - lo
	if opts.LabelCount <= 0 || !(span > 0) || math.IsInf(span, 0) {
		return Ticks{}
	}

	interval := RoundToNextSignificant(span / float64(opts.LabelCount))
	if opts.GranularityEnabled && interval < opts.Granularity {
		interval = opts.Granularity
	}
	interval = normalizeInterval(interval)

	var ticks Ticks
	if opts.Force {
		ticks.Entries, interval = evenlySpaced(lo, hi, opts.LabelCount)
	} else {
		ticks.Entries = multiples(lo, hi, interval, opts.Centered)
	}

	ticks.Interval = interval
	ticks.Decimals = Decimals(interval)

	if opts.Centered {
		ticks.CenteredEntries = make([]float64, len(ticks.Entries))
		for i, v := range ticks.Entries {
			ticks.CenteredEntries[i] = v + interval/2
		}
	}

	return ticks
}

// RoundToNextSignificant rounds v to one significant digit, e.g. 16.7 to
// 20 and 0.034 to 0.03.
func RoundToNextSignificant(v float64) float64 {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}

	d := math.Ceil(math.Log10(math.Abs(v)))
	magnitude := math.Pow(10, 1-d)
	return math.Round(v*magnitude) / magnitude
}

// Decimals returns how many fraction digits labels need to tell ticks
// interval apart.
func Decimals(interval float64) int {
	if !(interval > 0) || interval >= 1 || math.IsInf(interval, 0) {
		return 0
	}
	// The epsilon keeps exact powers of ten, like 0.1, at their digit count.
	return int(math.Ceil(-math.Log10(interval) - 1e-9))
}

// normalizeInterval bumps an interval whose leading digit is above 5 to the
// next power of ten, so 0.7 becomes 1 and 90 becomes 100.
func normalizeInterval(interval float64) float64 {
	if !(interval > 0) || math.IsInf(interval, 0) {
		return interval
	}

	exp := math.Floor(math.Log10(interval))
	magnitude := math.Pow(10, exp)

	// The epsilon keeps e.g. 0.3/0.1 = 2.9999999999999996 at 3.
	if int(interval/magnitude+1e-9) > 5 {
		return math.Pow(10, exp+1)
	}
	return interval
}

// multiples returns every multiple of interval within [lo, hi], in strictly
// ascending order.
func multiples(lo, hi, interval float64, centered bool) []float64 {
	if interval == 0 {
		return nil
	}

	first := math.Ceil(lo / interval)
	if (first-1)*interval >= math.Nextafter(lo, math.Inf(-1)) {
		first--
	}

	last := math.Floor(hi / interval)
	if (last+1)*interval <= math.Nextafter(hi, math.Inf(1)) {
		last++
	}

	if centered {
		first--
	}

	if last < first {
		return nil
	}

	// Far from zero, consecutive multiples can round to the same float.
	snap := snapper(interval)
	base := first * interval
	limit := hi + interval/2
	n := int(last-first) + 1
	entries := make([]float64, 0, n)
	for i := 0; i <= n; i++ {
		v := snap(base + float64(i)*interval)
		if v > limit {
			break
		}
		if len(entries) > 0 && v <= entries[len(entries)-1] {
			continue
		}
		entries = append(entries, v)
	}
	return entries
}

// evenlySpaced returns n values from lo to hi and the step between them.
func evenlySpaced(lo, hi float64, n int) ([]float64, float64) {
	if n == 1 {
		return []float64{lo}, hi - lo
	}

	step := (hi - lo) / float64(n-1)
	entries := make([]float64, n)
	for i := range entries {
		entries[i] = lo + float64(i)*step
	}
	entries[n-1] = hi
	return entries, step
}

// snapper returns a function rounding away the floating point noise of
// multiplying by interval, e.g. 3*0.1 = 0.30000000000000004.
func snapper(interval float64) func(float64) float64 {
	p := math.Pow(10, float64(Decimals(interval)+2))
	return func(v float64) float64 {
		// Past 2^53 every float is an integer and rounding only adds error.
		if scaled := v * p; math.Abs(scaled) < 1<<53 {
			v = math.Round(scaled) / p
		}
		if v == 0 {
			return 0
		}
		return v
	}
}
