package termchart

import (
	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/canvas/graph"
	"github.com/charmbracelet/lipgloss"

	"github.com/wandb/wandb/chartcore/internal/chart"
	"github.com/wandb/wandb/chartcore/internal/chartdata"
	"github.com/wandb/wandb/chartcore/internal/geom"
)

// RenderPie draws a pie chart. Selected slices are drawn in the highlight
// color.
func (r *Renderer) RenderPie(c *chart.PieChart) string {
	cv := canvas.New(r.cols, r.rows)

	pie := c.PieData()
	if pie == nil || r.cols == 0 || r.rows == 0 {
		return cv.View()
	}
	set, ok := pie.Series()
	if !ok || set.Len() == 0 {
		return cv.View()
	}

	phase := c.PhaseY()
	if phase <= 0 {
		return cv.View()
	}

	content := c.Viewport().ContentRect()
	plots := make([]*plotter, set.Len())
	for i := range plots {
		plots[i] = r.newPlotter(content)
	}

	radius, hole := c.Radius(), c.HoleRadius()
	for y := range r.rows * DotsY {
		for x := range r.cols * DotsX {
			// Sample the middle of the dot.
			px, py := float64(x)+0.5, float64(y)+0.5

			d := c.DistanceToCenter(px, py)
			if d > radius || d < hole {
				continue
			}

			// Slices grow with the y phase, as hit testing assumes.
			i := c.IndexForAngle(c.AngleForPoint(px, py) / phase)
			if i < 0 || i >= len(plots) {
				continue
			}
			plots[i].set(geom.Point{X: px, Y: py})
		}
	}

	selected := make(map[int]bool)
	for _, h := range c.Highlighted() {
		selected[int(h.X)] = true
	}

	for i, p := range plots {
		style := lipgloss.NewStyle().Foreground(graphColors[i%len(graphColors)])
		if color := set.Color(i); color != "" && color != chartdata.DefaultColor {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
		}
		if selected[i] {
			style = highlightStyle
		}
		graph.DrawBraillePatterns(&cv, canvas.Point{}, p.grid.BraillePatterns(), style)
	}

	return cv.View()
}
