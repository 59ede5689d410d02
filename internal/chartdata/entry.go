package chartdata

import "math"

// Valuer is implemented by every entry kind that can live in a Series.
type Valuer interface {
	X() float64
	Y() float64

	// YBounds returns the lowest and highest y the entry occupies.
	//
	// For a plain entry both are Y; stacked bars and candles span a range.
	YBounds() (lo, hi float64)
}

// Entry is a single (x, y) data point.
//
// Entries are values: modify one by replacing it with a changed copy.
type Entry struct {
	x, y float64
	data any
	icon any
}

func NewEntry(x, y float64) Entry {
	return Entry{x: x, y: y}
}

func (e Entry) X() float64 { return e.x }
func (e Entry) Y() float64 { return e.y }
func (e Entry) YBounds() (lo, hi float64) { return e.y, e.y }

// Data returns the payload attached with WithData, or nil.
func (e Entry) Data() any { return e.data }

// Icon returns the icon reference attached with WithIcon, or nil.
func (e Entry) Icon() any { return e.icon }

func (e Entry) WithX(x float64) Entry {
	e.x = x
	return e
}

func (e Entry) WithY(y float64) Entry {
	e.y = y
	return e
}

func (e Entry) WithData(data any) Entry {
	e.data = data
	return e
}

func (e Entry) WithIcon(icon any) Entry {
	e.icon = icon
	return e
}

// Range is the vertical extent of one segment of a stacked bar.
type Range struct {
	From, To float64
}

// Contains reports whether v lies in the range, bounds included.
func (r Range) Contains(v float64) bool {
	return v >= r.From && v <= r.To
}

// IsLarger reports whether v lies above the range.
func (r Range) IsLarger(v float64) bool {
	return v > r.To
}

// IsSmaller reports whether v lies below the range.
func (r Range) IsSmaller(v float64) bool {
	return v < r.From
}

// BarEntry is a bar, optionally stacked from several sub-values.
type BarEntry struct {
	Entry

	yValues     []float64
	ranges      []Range
	positiveSum float64
	negativeSum float64
}

// NewBarEntry returns a single, unstacked bar.
func NewBarEntry(x, y float64) BarEntry {
	return BarEntry{Entry: NewEntry(x, y)}
}

// NewStackedBarEntry returns a bar stacked from yValues.
//
// Its y is the sum of the values. NegativeSum is the magnitude of the
// negative parts.
func NewStackedBarEntry(x float64, yValues []float64) BarEntry {
	b := BarEntry{yValues: append([]float64(nil), yValues...)}

	var sum float64
	for _, v := range b.yValues {
		sum += v
		if v <= 0 {
			b.negativeSum += math.Abs(v)
		} else {
			b.positiveSum += v
		}
	}
	b.Entry = NewEntry(x, sum)
	b.ranges = stackRanges(b.yValues, b.negativeSum)
	return b
}

// stackRanges lays segments out so negative parts grow down from zero and
// positive parts grow up from zero, in stack order.
func stackRanges(values []float64, negativeSum float64) []Range {
	if len(values) == 0 {
		return nil
	}

	ranges := make([]Range, len(values))
	negRemain := -negativeSum
	var posRemain float64

	for i, v := range values {
		if v < 0 {
			ranges[i] = Range{From: negRemain, To: negRemain - v}
			negRemain -= v
		} else {
			ranges[i] = Range{From: posRemain, To: posRemain + v}
			posRemain += v
		}
	}
	return ranges
}

func (b BarEntry) IsStacked() bool { return b.yValues != nil }

// YValues returns a copy of the stack values, or nil for a plain bar.
func (b BarEntry) YValues() []float64 {
	if b.yValues == nil {
		return nil
	}
	return append([]float64(nil), b.yValues...)
}

// Ranges returns a copy of the stack segment ranges.
func (b BarEntry) Ranges() []Range {
	if b.ranges == nil {
		return nil
	}
	return append([]Range(nil), b.ranges...)
}

func (b BarEntry) PositiveSum() float64 { return b.positiveSum }
func (b BarEntry) NegativeSum() float64 { return b.negativeSum }

// StackSize returns the number of stack values, 1 for a plain bar.
func (b BarEntry) StackSize() int {
	if b.yValues == nil {
		return 1
	}
	return len(b.yValues)
}

// SumBelow returns the sum of the stack values above stackIndex in the
// stack order, which is the offset at which that segment's label sits.
func (b BarEntry) SumBelow(stackIndex int) float64 {
	if b.yValues == nil {
		return 0
	}

	var remainder float64
	for i := len(b.yValues) - 1; i > stackIndex && i >= 0; i-- {
		remainder += b.yValues[i]
	}
	return remainder
}

func (b BarEntry) YBounds() (lo, hi float64) {
	if !b.IsStacked() {
		return b.y, b.y
	}
	return -b.negativeSum, b.positiveSum
}

// WithX returns a copy of the bar moved to x.
func (b BarEntry) WithX(x float64) BarEntry {
	b.Entry = b.Entry.WithX(x)
	return b
}

// BubbleEntry is a point with a size.
type BubbleEntry struct {
	Entry
	size float64
}

func NewBubbleEntry(x, y, size float64) BubbleEntry {
	return BubbleEntry{Entry: NewEntry(x, y), size: size}
}

func (b BubbleEntry) Size() float64 { return b.size }

// CandleEntry is one open/high/low/close sample.
//
// Its y is the midpoint of high and low.
type CandleEntry struct {
	Entry
	high, low, open, close float64
}

func NewCandleEntry(x, high, low, open, close float64) CandleEntry {
	return CandleEntry{
		Entry: NewEntry(x, (high+low)/2),
		high:  high,
		low:   low,
		open:  open,
		close: close,
	}
}

func (c CandleEntry) High() float64 { return c.high }
func (c CandleEntry) Low() float64 { return c.low }
func (c CandleEntry) Open() float64 { return c.open }
func (c CandleEntry) Close() float64 { return c.close }

// ShadowRange is the distance between high and low.
func (c CandleEntry) ShadowRange() float64 { return math.Abs(c.high - c.low) }

// BodyRange is the distance between open and close.
func (c CandleEntry) BodyRange() float64 { return math.Abs(c.open - c.close) }

func (c CandleEntry) YBounds() (lo, hi float64) { return c.low, c.high }

// PieEntry is one slice of a pie; its value is y.
type PieEntry struct {
	Entry
	label string
}

func NewPieEntry(value float64, label string) PieEntry {
	return PieEntry{Entry: NewEntry(0, value), label: label}
}

func (p PieEntry) Value() float64 { return p.y }
func (p PieEntry) Label() string { return p.label }
