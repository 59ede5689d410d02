package format

import (
	"math"
	"strconv"
	"strings"
)

// formatSigFigs formats the float with 'prec' significant digits.
//
// The 'g' format drops trailing zeros and switches to scientific notation
// for very small or large numbers.
func formatSigFigs(v float64, prec int) string {
	return strconv.FormatFloat(v, 'g', prec, 64)
}

type prefix struct {
	factor float64
	symbol string
}

// Unit formats values of one physical quantity with SI or binary prefixes.
type Unit struct {
	name string

	// toBase converts an input value into the base unit, e.g. MiB to B.
	toBase   float64
	prefixes []prefix
}

var (
	// UnitScalar is for dimensionless numbers.
	UnitScalar = Unit{toBase: 1}

	UnitPercent = Unit{name: "%", toBase: 1}
	UnitCelsius = Unit{name: "°C", toBase: 1}
	UnitWatt    = Unit{name: "W", toBase: 1, prefixes: siPrefixes}

	// UnitMHz takes values in MHz and labels them in Hz.
	UnitMHz = Unit{name: "Hz", toBase: 1e6, prefixes: siPrefixes}

	UnitBytes = Unit{name: "B", toBase: 1, prefixes: binaryPrefixes}
	UnitMiB   = Unit{name: "B", toBase: 1 << 20, prefixes: binaryPrefixes}
	UnitGiB   = Unit{name: "B", toBase: 1 << 30, prefixes: binaryPrefixes}

	// UnitBytesPerSecond uses decimal prefixes, as network rates do.
	UnitBytesPerSecond = Unit{name: "B/s", toBase: 1, prefixes: siPrefixes}

	UnitSeconds = Unit{name: "s", toBase: 1, prefixes: subSecondPrefixes}
)

var siPrefixes = []prefix{
	{1, ""}, {1e3, "k"}, {1e6, "M"}, {1e9, "G"}, {1e12, "T"},
}

var binaryPrefixes = []prefix{
	{1, ""}, {1 << 10, "Ki"}, {1 << 20, "Mi"}, {1 << 30, "Gi"}, {1 << 40, "Ti"},
}

var subSecondPrefixes = []prefix{
	{1e-6, "µ"}, {1e-3, "m"}, {1, ""},
}

// Name returns the base unit symbol without prefixes, e.g. "B" or "".
func (u Unit) Name() string { return u.name }

// Format renders v, given in the unit's input scale, with three
// significant digits and the largest prefix not exceeding its magnitude.
func (u Unit) Format(v float64) string {
	if v == 0 {
		return "0"
	}

	base := v * u.toBase
	p := prefix{factor: 1}
	if len(u.prefixes) > 0 {
		p = u.prefixes[0]
		for _, candidate := range u.prefixes[1:] {
			if math.Abs(base) >= candidate.factor {
				p = candidate
			}
		}
	}

	return formatSigFigs(base/p.factor, 3) + p.symbol + u.name
}

// FormatAxisValue lets a Unit label axis ticks.
func (u Unit) FormatAxisValue(value float64, _ AxisInfo) string {
	return u.Format(value)
}

var compactScales = []prefix{
	{1e3, "k"},
	{1e6, "M"},
	{1e9, "B"},
	{1e12, "T"},
	{1e15, "P"},
	{1e18, "E"},
}

// Compact formats v in at most maxWidth characters when possible, using
// k/M/B/T suffixes for large magnitudes. Values under 1000 are rounded to
// integers. A maxWidth of 0 or less means no limit.
func Compact(v float64, maxWidth int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	if math.Round(v) < 1000 {
		n := int64(math.Round(v))
		if n == 0 {
			sign = ""
		}
		return sign + strconv.FormatInt(n, 10)
	}

	idx := 0
	for idx+1 < len(compactScales) && v >= compactScales[idx+1].factor {
		idx++
	}

	for {
		s := compactScales[idx]
		scaled := v / s.factor

		bumped := false
		for decimals := 2; decimals >= 0; decimals-- {
			num := trimTrailingZeros(strconv.FormatFloat(scaled, 'f', decimals, 64))

			// Rounding crossed into the next tier, e.g. 999.6k to 1000k.
			if num == "1000" && idx+1 < len(compactScales) {
				idx++
				bumped = true
				break
			}

			out := sign + num + s.symbol
			if maxWidth <= 0 || len(out) <= maxWidth {
				return out
			}
		}

		if !bumped {
			return sign + trimTrailingZeros(strconv.FormatFloat(scaled, 'f', 0, 64)) + s.symbol
		}
	}
}

// CompactAxisFormatter labels ticks with Compact.
type CompactAxisFormatter struct {
	MaxWidth int
}

func (f CompactAxisFormatter) FormatAxisValue(value float64, _ AxisInfo) string {
	return Compact(value, f.MaxWidth)
}

func trimTrailingZeros(s string) string {
	if strings.IndexByte(s, '.') != -1 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
