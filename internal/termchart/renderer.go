// Package termchart draws charts onto a terminal canvas.
//
// A chart pixel is one braille dot, so a terminal cell is DotsX by DotsY
// chart pixels. Size a chart with Fit before rendering it.
package termchart

import (
	"math"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/canvas/graph"
	"github.com/mattn/go-runewidth"

	"github.com/wandb/wandb/chartcore/internal/axis"
	"github.com/wandb/wandb/chartcore/internal/chart"
	"github.com/wandb/wandb/chartcore/internal/chartdata"
	"github.com/wandb/wandb/chartcore/internal/geom"
)

const (
	// DotsX and DotsY are the braille dots in one terminal cell.
	DotsX = 2
	DotsY = 4
)

// Fit sizes a chart to a terminal area of cols by rows cells.
func Fit(c *chart.BarLineChart, cols, rows int) {
	c.SetLabelCellSize(DotsX, DotsY)
	c.SetSize(float64(cols*DotsX), float64(rows*DotsY))
}

// FitPie sizes a pie chart to a terminal area of cols by rows cells.
func FitPie(c *chart.PieChart, cols, rows int) {
	c.SetSize(float64(cols*DotsX), float64(rows*DotsY))
}

// CellToPixel returns the chart pixel at the center of a terminal cell.
func CellToPixel(col, row int) (x, y float64) {
	return float64(col*DotsX) + 0.5*(DotsX-1), float64(row*DotsY) + 0.5*(DotsY-1)
}

// PixelToCell returns the terminal cell holding a chart pixel.
func PixelToCell(x, y float64) canvas.Point {
	return canvas.Point{
		X: int(math.Floor(x / DotsX)),
		Y: int(math.Floor(y / DotsY)),
	}
}

// Renderer draws charts onto a canvas of a fixed number of cells.
type Renderer struct {
	cols, rows int
}

func NewRenderer(cols, rows int) *Renderer {
	return &Renderer{cols: max(cols, 0), rows: max(rows, 0)}
}

// Resize changes the canvas size. Charts drawn with the renderer need to
// be refitted.
func (r *Renderer) Resize(cols, rows int) {
	r.cols, r.rows = max(cols, 0), max(rows, 0)
}

// Size returns the canvas size in cells.
func (r *Renderer) Size() (cols, rows int) { return r.cols, r.rows }

// Render draws a bar or line chart.
func (r *Renderer) Render(c *chart.BarLineChart) string {
	cv := canvas.New(r.cols, r.rows)
	if c.Data() == nil || r.cols == 0 || r.rows == 0 {
		return cv.View()
	}

	r.drawData(&cv, c, c.Data())
	r.drawHighlights(&cv, c)
	r.drawYLabels(&cv, c, c.LeftAxis())
	r.drawYLabels(&cv, c, c.RightAxis())
	r.drawXLabels(&cv, c)

	return cv.View()
}

// plotter collects the dots of one series, clipped to the chart content.
type plotter struct {
	grid    *graph.BrailleGrid
	content geom.Rect
	width   int
	height  int
}

func (r *Renderer) newPlotter(content geom.Rect) *plotter {
	return &plotter{
		grid:    graph.NewBrailleGrid(r.cols, r.rows, 0, 1, 0, 1),
		content: content,
		width:   r.cols * DotsX,
		height:  r.rows * DotsY,
	}
}

func (p *plotter) dot(pt geom.Point) (canvas.Point, bool) {
	if math.IsNaN(pt.X) || math.IsNaN(pt.Y) ||
		pt.X < p.content.Left() || pt.X > p.content.Right() ||
		pt.Y < p.content.Top() || pt.Y > p.content.Bottom() {
		return canvas.Point{}, false
	}

	x := min(int(math.Floor(pt.X)), p.width-1)
	y := min(int(math.Floor(pt.Y)), p.height-1)
	return canvas.Point{X: x, Y: y}, x >= 0 && y >= 0
}

func (p *plotter) set(pt geom.Point) {
	if d, ok := p.dot(pt); ok {
		p.grid.Set(d)
	}
}

// line sets the dots between two pixels, clipped to the content.
func (p *plotter) line(a, b geom.Point) {
	if math.IsNaN(a.X) || math.IsNaN(a.Y) || math.IsNaN(b.X) || math.IsNaN(b.Y) {
		return
	}
	a, b = p.clamp(a), p.clamp(b)

	from := canvas.Point{X: int(math.Floor(a.X)), Y: int(math.Floor(a.Y))}
	to := canvas.Point{X: int(math.Floor(b.X)), Y: int(math.Floor(b.Y))}
	for _, d := range graph.GetLinePoints(from, to) {
		p.set(geom.Point{X: float64(d.X), Y: float64(d.Y)})
	}
}

// clamp bounds a pixel to a region slightly larger than the content, so
// lines to far-off points stay short.
func (p *plotter) clamp(pt geom.Point) geom.Point {
	margin := max(p.content.Width, p.content.Height)
	return geom.Point{
		X: min(max(pt.X, p.content.Left()-margin), p.content.Right()+margin),
		Y: min(max(pt.Y, p.content.Top()-margin), p.content.Bottom()+margin),
	}
}

func (p *plotter) fill(rect geom.Rect) {
	for y := math.Floor(rect.Top()); y <= rect.Bottom(); y++ {
		for x := math.Floor(rect.Left()); x <= rect.Right(); x++ {
			p.set(geom.Point{X: x, Y: y})
		}
	}
}

func (r *Renderer) drawData(cv *canvas.Model, c *chart.BarLineChart, d chartdata.Data) {
	if combined, ok := d.(*chartdata.CombinedData); ok {
		for _, sub := range combined.AllData() {
			r.drawData(cv, c, sub)
		}
		return
	}

	content := c.Viewport().ContentRect()
	for i := range d.DataSetCount() {
		set, ok := d.DataSetAt(i)
		if !ok || !set.IsVisible() {
			continue
		}

		p := r.newPlotter(content)
		switch bd, isBar := d.(*chartdata.BarData); {
		case isBar:
			r.plotBars(p, c, bd, set)
		case d.Kind() == chartdata.KindLine:
			r.plotLine(p, c, set)
		case d.Kind() == chartdata.KindCandle:
			r.plotCandles(p, c, set)
		default:
			r.plotPoints(p, c, set)
		}
		graph.DrawBraillePatterns(cv, canvas.Point{}, p.grid.BraillePatterns(), seriesStyle(set, i))
	}
}

func (r *Renderer) plotLine(p *plotter, c *chart.BarLineChart, set chartdata.DataSet) {
	t := c.Transformer(set.AxisDependency())
	phaseY := c.PhaseY()

	var prev geom.Point
	first := true
	for i := range c.XBounds(set).All() {
		e, ok := set.ValueAt(i)
		if !ok {
			break
		}
		pt := t.PixelForValues(e.X(), e.Y()*phaseY)
		if first {
			p.set(pt)
			first = false
		} else {
			p.line(prev, pt)
		}
		prev = pt
	}
}

func (r *Renderer) plotPoints(p *plotter, c *chart.BarLineChart, set chartdata.DataSet) {
	t := c.Transformer(set.AxisDependency())
	phaseY := c.PhaseY()

	for i := range c.XBounds(set).All() {
		e, ok := set.ValueAt(i)
		if !ok {
			break
		}
		p.set(t.PixelForValues(e.X(), e.Y()*phaseY))
	}
}

// plotCandles draws each candle as its high-low shadow.
func (r *Renderer) plotCandles(p *plotter, c *chart.BarLineChart, set chartdata.DataSet) {
	t := c.Transformer(set.AxisDependency())
	phaseY := c.PhaseY()

	for i := range c.XBounds(set).All() {
		e, ok := set.ValueAt(i)
		if !ok {
			break
		}
		lo, hi := e.YBounds()
		p.line(
			t.PixelForValues(e.X(), lo*phaseY),
			t.PixelForValues(e.X(), hi*phaseY))
	}
}

func (r *Renderer) plotBars(
	p *plotter,
	c *chart.BarLineChart,
	bd *chartdata.BarData,
	set chartdata.DataSet,
) {
	t := c.Transformer(set.AxisDependency())
	phaseY := c.PhaseY()

	for i := range c.XBounds(set).All() {
		v, ok := set.ValueAt(i)
		if !ok {
			break
		}
		e, ok := v.(chartdata.BarEntry)
		if !ok {
			continue
		}
		p.fill(t.RectValueToPixelPhase(bd.BarBounds(e), phaseY))
	}
}

// drawHighlights marks each selected value and draws a guide through it.
func (r *Renderer) drawHighlights(cv *canvas.Model, c *chart.BarLineChart) {
	vp := c.Viewport()
	top := PixelToCell(0, vp.ContentTop()).Y
	bottom := PixelToCell(0, vp.ContentBottom()-1).Y

	for _, h := range c.Highlighted() {
		y := h.Y
		if math.IsNaN(y) {
			e, ok := c.EntryForHighlight(h)
			if !ok {
				continue
			}
			y = e.Y()
		}

		pt := c.PositionFor(h.X, y*c.PhaseY(), h.Axis)
		if !vp.IsInBoundsX(pt.X) {
			continue
		}
		cell := PixelToCell(pt.X, pt.Y)

		for row := top; row <= bottom; row++ {
			at := canvas.Point{X: cell.X, Y: row}
			if cv.Cell(at).Rune == 0 {
				cv.SetCell(at, canvas.NewCellWithStyle('┊', axisStyle))
			}
		}
		if vp.IsInBoundsY(pt.Y) {
			cv.SetCellStyle(cell, highlightStyle)
		}
	}
}

// drawYLabels writes the labels of a y axis in the margin it reserved.
func (r *Renderer) drawYLabels(cv *canvas.Model, c *chart.BarLineChart, y *axis.YAxis) {
	if !y.NeedsOffset() {
		return
	}

	vp := c.Viewport()
	width := y.RequiredWidth(1)

	// One padding cell faces the content.
	var col int
	if y.AxisDependency() == chartdata.AxisLeft {
		col = PixelToCell(vp.ContentLeft(), 0).X - width + 1
	} else {
		col = PixelToCell(vp.ContentRight(), 0).X + 1
	}

	for i, v := range y.Entries() {
		pt := c.PositionFor(0, v, y.AxisDependency())
		if !vp.IsInBoundsY(pt.Y) {
			continue
		}
		label := runewidth.Truncate(y.FormattedLabel(i), width-2, "")
		if y.AxisDependency() == chartdata.AxisLeft {
			label = runewidth.FillLeft(label, width-2)
		}
		cv.SetStringWithStyle(
			canvas.Point{X: col, Y: PixelToCell(0, pt.Y).Y},
			label,
			labelStyle)
	}
}

// drawXLabels writes the x labels centered under their ticks, skipping
// those that would overlap the previous label.
func (r *Renderer) drawXLabels(cv *canvas.Model, c *chart.BarLineChart) {
	x := c.XAxis()
	if !x.Enabled || !x.DrawLabels {
		return
	}

	vp := c.Viewport()
	var row int
	switch x.Position {
	case axis.XLabelBottom, axis.XLabelBothSided:
		row = PixelToCell(0, vp.ContentBottom()).Y
	case axis.XLabelTop:
		row = PixelToCell(0, vp.ContentTop()).Y - 1
	case axis.XLabelBottomInside:
		row = PixelToCell(0, vp.ContentBottom()).Y - 1
	case axis.XLabelTopInside:
		row = PixelToCell(0, vp.ContentTop()).Y
	}
	if row < 0 || row >= r.rows {
		return
	}

	next := 0
	for i, v := range x.Entries() {
		pt := c.PositionFor(v, 0, chartdata.AxisLeft)
		if !vp.IsInBoundsX(pt.X) {
			continue
		}

		label := x.FormattedLabel(i)
		w := runewidth.StringWidth(label)
		start := PixelToCell(pt.X, 0).X - w/2
		if x.AvoidFirstLastClipping {
			start = min(max(start, 0), r.cols-w)
		}
		if start < next || start < 0 || start+w > r.cols {
			continue
		}

		cv.SetStringWithStyle(canvas.Point{X: start, Y: row}, label, labelStyle)
		next = start + w + 1
	}
}
