package chartdata

import "github.com/wandb/wandb/chartcore/internal/geom"

// BarData is the data of a bar chart.
type BarData struct {
	*ChartData[*BarSeries]

	// BarWidth is the width of one bar in x units.
	BarWidth float64
}

func NewBarData(sets ...*BarSeries) *BarData {
	return &BarData{
		ChartData: newChartData(KindBar, sets),
		BarWidth:  0.85,
	}
}

// GroupWidth is the x span of one group of bars laid out by GroupBars.
func (d *BarData) GroupWidth(groupSpace, barSpace float64) float64 {
	return float64(len(d.sets))*(d.BarWidth+barSpace) + groupSpace
}

// GroupBars moves the bars of all series side by side, starting at fromX.
//
// Bar i of every series forms group i. Each group is GroupWidth wide and
// has groupSpace split around it; each bar has barSpace split around it.
// It does nothing with fewer than two series.
func (d *BarData) GroupBars(fromX, groupSpace, barSpace float64) {
	if len(d.sets) <= 1 {
		return
	}

	maxSet, _ := d.MaxEntryCountSet()
	maxEntryCount := maxSet.Len()

	groupSpaceHalf := groupSpace / 2
	barSpaceHalf := barSpace / 2
	barWidthHalf := d.BarWidth / 2
	interval := d.GroupWidth(groupSpace, barSpace)

	for i := range maxEntryCount {
		start := fromX
		fromX += groupSpaceHalf

		for _, set := range d.sets {
			fromX += barSpaceHalf + barWidthHalf
			if i < set.Len() {
				set.entries[i] = set.entries[i].WithX(fromX)
			}
			fromX += barWidthHalf + barSpaceHalf
		}

		fromX += groupSpaceHalf

		// Absorb floating point drift so groups stay exactly interval apart.
		if diff := interval - (fromX - start); diff != 0 {
			fromX += diff
		}
	}

	d.NotifyDataChanged()
}

// BarBounds returns the value-space rectangle of a bar.
//
// For stacked bars it spans from the negative sum to the positive sum.
func (d *BarData) BarBounds(e BarEntry) geom.Rect {
	lo, hi := e.YBounds()
	if !e.IsStacked() {
		lo, hi = min(e.Y(), 0), max(e.Y(), 0)
	}
	half := d.BarWidth / 2
	return geom.RectFromEdges(e.X()-half, hi, e.X()+half, lo)
}

// PieData is the data of a pie chart: one series of slices.
type PieData struct {
	*ChartData[*PieSeries]
}

func NewPieData(set *PieSeries) *PieData {
	var sets []*PieSeries
	if set != nil {
		sets = []*PieSeries{set}
	}
	return &PieData{ChartData: newChartData(KindPie, sets)}
}

// Series returns the pie's series, if any. Only the first series of pie
// data is drawn.
func (d *PieData) Series() (*PieSeries, bool) {
	return d.DataSet(0)
}

// SetSeries replaces the pie's series.
func (d *PieData) SetSeries(set *PieSeries) {
	d.sets = []*PieSeries{set}
	d.CalcMinMax()
}

// YValueSum returns the sum of the slice values.
func (d *PieData) YValueSum() float64 {
	set, ok := d.Series()
	if !ok {
		return 0
	}
	return set.YValueSum()
}
