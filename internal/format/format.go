// Package format turns values into label strings for value labels and
// axis ticks.
package format

import (
	"math"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ValueFormatter formats the value label of an entry.
type ValueFormatter interface {
	FormatValue(value float64, dataSetIndex int) string
}

// AxisInfo is the axis state an AxisValueFormatter may consult.
type AxisInfo interface {
	// Decimals is the number of decimals needed to tell ticks apart.
	Decimals() int
	Entries() []float64
}

// AxisValueFormatter formats the label of an axis tick.
type AxisValueFormatter interface {
	FormatAxisValue(value float64, axis AxisInfo) string
}

// ValueFunc adapts a function to ValueFormatter.
type ValueFunc func(value float64, dataSetIndex int) string

func (f ValueFunc) FormatValue(value float64, dataSetIndex int) string {
	return f(value, dataSetIndex)
}

// AxisFunc adapts a function to AxisValueFormatter.
type AxisFunc func(value float64, axis AxisInfo) string

func (f AxisFunc) FormatAxisValue(value float64, axis AxisInfo) string {
	return f(value, axis)
}

const labelCacheSize = 512

type labelKey struct {
	value    float64
	decimals int
}

// DefaultValueFormatter prints numbers with a fixed number of decimals and
// grouping separators, like "12,345.67".
//
// Rendered strings are kept in an LRU cache since the same tick and value
// labels are formatted on every frame.
type DefaultValueFormatter struct {
	decimals     int
	autoDecimals bool

	printer *message.Printer
	cache   *lru.Cache
}

// NewDefaultValueFormatter returns a formatter using decimals digits.
//
// For axis labels it uses the axis' own decimal count instead, unless
// SetDecimals is called.
func NewDefaultValueFormatter(decimals int) *DefaultValueFormatter {
	cache, err := lru.New(labelCacheSize)
	if err != nil {
		cache = nil
	}

	return &DefaultValueFormatter{
		decimals:     max(decimals, 0),
		autoDecimals: true,
		printer:      message.NewPrinter(language.English),
		cache:        cache,
	}
}

// Decimals returns the number of decimals used for values.
func (f *DefaultValueFormatter) Decimals() int { return f.decimals }

// HasAutoDecimals reports whether axis labels follow the axis' decimals.
func (f *DefaultValueFormatter) HasAutoDecimals() bool { return f.autoDecimals }

// SetDecimals fixes the number of decimals for values and axis labels.
func (f *DefaultValueFormatter) SetDecimals(decimals int) {
	f.decimals = max(decimals, 0)
	f.autoDecimals = false
}

// Format renders v with the given number of decimals.
func (f *DefaultValueFormatter) Format(v float64, decimals int) string {
	if v == 0 {
		// Also turns -0 into 0.
		v = 0
	}

	key := labelKey{value: v, decimals: decimals}
	if f.cache != nil {
		if s, ok := f.cache.Get(key); ok {
			return s.(string)
		}
	}

	var s string
	switch {
	case math.IsNaN(v):
		s = "NaN"
	case math.IsInf(v, 0):
		s = f.printer.Sprint(v)
	default:
		s = f.printer.Sprint(number.Decimal(v,
			number.MinFractionDigits(decimals),
			number.MaxFractionDigits(decimals)))
	}

	if f.cache != nil {
		f.cache.Add(key, s)
	}
	return s
}

func (f *DefaultValueFormatter) FormatValue(value float64, _ int) string {
	return f.Format(value, f.decimals)
}

func (f *DefaultValueFormatter) FormatAxisValue(value float64, axis AxisInfo) string {
	decimals := f.decimals
	if f.autoDecimals && axis != nil {
		decimals = axis.Decimals()
	}
	return f.Format(value, decimals)
}

// IndexAxisValueFormatter labels integer tick positions with names, for
// charts whose x values are category indices.
type IndexAxisValueFormatter struct {
	Values []string
}

func NewIndexAxisValueFormatter(values ...string) *IndexAxisValueFormatter {
	return &IndexAxisValueFormatter{Values: values}
}

// FormatAxisValue returns the name at the index nearest value, or "" when
// value rounds to a different integer than it truncates to or has no name.
func (f *IndexAxisValueFormatter) FormatAxisValue(value float64, _ AxisInfo) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return ""
	}

	index := int(math.Round(value))
	if index < 0 || index >= len(f.Values) || index != int(value) {
		return ""
	}
	return f.Values[index]
}
