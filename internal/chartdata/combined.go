package chartdata

// CombinedData overlays line, bar, scatter, candle and bubble data on one
// pair of axes.
//
// Series are numbered across the sub-data in that order; highlights refer
// to a sub-data by its index in AllData.
type CombinedData struct {
	line    *LineData
	bar     *BarData
	scatter *ScatterData
	candle  *CandleData
	bubble  *BubbleData

	ext extrema
}

func NewCombinedData() *CombinedData {
	return &CombinedData{ext: emptyExtrema()}
}

func (c *CombinedData) Kind() Kind { return KindCombined }

func (c *CombinedData) LineData() *LineData { return c.line }
func (c *CombinedData) BarData() *BarData { return c.bar }
func (c *CombinedData) ScatterData() *ScatterData { return c.scatter }
func (c *CombinedData) CandleData() *CandleData { return c.candle }
func (c *CombinedData) BubbleData() *BubbleData { return c.bubble }

func (c *CombinedData) SetLineData(d *LineData) {
	c.line = d
	c.CalcMinMax()
}

func (c *CombinedData) SetBarData(d *BarData) {
	c.bar = d
	c.CalcMinMax()
}

func (c *CombinedData) SetScatterData(d *ScatterData) {
	c.scatter = d
	c.CalcMinMax()
}

func (c *CombinedData) SetCandleData(d *CandleData) {
	c.candle = d
	c.CalcMinMax()
}

func (c *CombinedData) SetBubbleData(d *BubbleData) {
	c.bubble = d
	c.CalcMinMax()
}

// AllData returns the sub-data that are set, in drawing order.
func (c *CombinedData) AllData() []Data {
	var all []Data
	if c.line != nil {
		all = append(all, c.line)
	}
	if c.bar != nil {
		all = append(all, c.bar)
	}
	if c.scatter != nil {
		all = append(all, c.scatter)
	}
	if c.candle != nil {
		all = append(all, c.candle)
	}
	if c.bubble != nil {
		all = append(all, c.bubble)
	}
	return all
}

// DataAt returns the sub-data at index i of AllData.
func (c *CombinedData) DataAt(i int) (Data, bool) {
	all := c.AllData()
	if i < 0 || i >= len(all) {
		return nil, false
	}
	return all[i], true
}

// DataIndex returns the index in AllData of the sub-data of the given kind,
// or -1.
func (c *CombinedData) DataIndex(kind Kind) int {
	for i, d := range c.AllData() {
		if d.Kind() == kind {
			return i
		}
	}
	return -1
}

func (c *CombinedData) YMin() float64 { return c.ext.yMin }
func (c *CombinedData) YMax() float64 { return c.ext.yMax }
func (c *CombinedData) XMin() float64 { return c.ext.xMin }
func (c *CombinedData) XMax() float64 { return c.ext.xMax }

func (c *CombinedData) AxisYMin(axis AxisDependency) float64 {
	return c.ext.axisYMin(axis)
}

func (c *CombinedData) AxisYMax(axis AxisDependency) float64 {
	return c.ext.axisYMax(axis)
}

func (c *CombinedData) axisExtrema() extrema { return c.ext }

// CalcMinMax recomputes every sub-data and then the totals.
func (c *CombinedData) CalcMinMax() {
	c.ext = emptyExtrema()
	for _, d := range c.AllData() {
		d.CalcMinMax()
		c.ext.merge(d.axisExtrema())
	}
}

// CalcMinMaxY narrows every sub-data to the x window and then recomputes
// the totals.
func (c *CombinedData) CalcMinMaxY(fromX, toX float64) {
	c.ext = emptyExtrema()
	for _, d := range c.AllData() {
		d.CalcMinMaxY(fromX, toX)
		c.ext.merge(d.axisExtrema())
	}
}

// DataSetCount returns the number of series over all sub-data.
func (c *CombinedData) DataSetCount() int {
	count := 0
	for _, d := range c.AllData() {
		count += d.DataSetCount()
	}
	return count
}

// DataSetAt returns series i in the numbering across all sub-data.
func (c *CombinedData) DataSetAt(i int) (DataSet, bool) {
	if i < 0 {
		return nil, false
	}
	for _, d := range c.AllData() {
		if i < d.DataSetCount() {
			return d.DataSetAt(i)
		}
		i -= d.DataSetCount()
	}
	return nil, false
}

func (c *CombinedData) EntryCount() int {
	count := 0
	for _, d := range c.AllData() {
		count += d.EntryCount()
	}
	return count
}

// MaxEntryCountSet returns the series with the most entries across all
// sub-data.
func (c *CombinedData) MaxEntryCountSet() (DataSet, bool) {
	var best DataSet
	for _, d := range c.AllData() {
		set, ok := d.MaxEntryCountSet()
		if ok && (best == nil || set.Len() > best.Len()) {
			best = set
		}
	}
	return best, best != nil
}

func (c *CombinedData) IsHighlightEnabled() bool {
	for _, d := range c.AllData() {
		if d.IsHighlightEnabled() {
			return true
		}
	}
	return false
}

func (c *CombinedData) SetHighlightEnabled(enabled bool) {
	for _, d := range c.AllData() {
		d.SetHighlightEnabled(enabled)
	}
}
