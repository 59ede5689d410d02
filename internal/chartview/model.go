// Package chartview is a terminal UI showing one interactive chart.
package chartview

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/canvas"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/afero"

	"github.com/wandb/wandb/chartcore/internal/chart"
	"github.com/wandb/wandb/chartcore/internal/chartconfig"
	"github.com/wandb/wandb/chartcore/internal/chartdata"
	"github.com/wandb/wandb/chartcore/internal/format"
	"github.com/wandb/wandb/chartcore/internal/highlight"
	"github.com/wandb/wandb/chartcore/internal/observability"
	"github.com/wandb/wandb/chartcore/internal/termchart"
)

const (
	headerHeight = 1
	footerHeight = 1

	wheelZoomIn  = 1.4
	wheelZoomOut = 0.7

	// panFraction is how much of the visible content a pan key moves.
	panFraction = 0.1
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FCBC32"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// yUnits is the order the unit key cycles through.
var yUnits = []string{
	chartconfig.UnitNone,
	chartconfig.UnitCompact,
	chartconfig.UnitPercent,
	chartconfig.UnitBytes,
	chartconfig.UnitSeconds,
	chartconfig.UnitWatts,
	chartconfig.UnitMHz,
}

// TickMsg advances animations to the given time.
type TickMsg time.Time

// Params configures a new Model.
type Params struct {
	Title string

	// Data is shown in a bar and line chart, unless Pie is set.
	Data chartdata.Data

	// Pie, if set, is shown in a pie chart.
	Pie *chartdata.PieData

	// Config holds the chart settings. Defaults to settings that are not
	// persisted.
	Config *chartconfig.ConfigManager

	Logger *observability.CoreLogger

	// Now is the chart's clock. Defaults to time.Now.
	Now func() time.Time
}

// Model shows one chart under a title line, with the legend or the
// selected value below it.
//
// Exactly one of chart and pie is set.
type Model struct {
	title string

	chart *chart.BarLineChart
	pie   *chart.PieChart

	renderer *termchart.Renderer
	config   *chartconfig.ConfigManager
	logger   *observability.CoreLogger
	keyMap   map[string]func(*Model, tea.KeyMsg) tea.Cmd

	width, height int

	// press is the cell under the held left button; dragged is set once
	// the mouse moved since the press.
	press   *canvas.Point
	dragged bool

	// ticking is set while a tick is scheduled.
	ticking bool

	// status replaces the footer until the next key press.
	status string
}

func New(params Params) *Model {
	logger := params.Logger
	if logger == nil {
		logger = observability.NewNoOpLogger()
	}
	config := params.Config
	if config == nil {
		config = chartconfig.NewConfigManager(
			afero.NewMemMapFs(), chartconfig.ConfigName, logger)
	}

	cfg := config.Snapshot()
	chartParams := chart.Params{
		Logger:    logger,
		Now:       params.Now,
		FrameRate: cfg.Animation.FrameRate,
	}

	m := &Model{
		title:    params.Title,
		renderer: termchart.NewRenderer(0, 0),
		config:   config,
		logger:   logger,
		keyMap:   buildKeyMap(KeyBindings()),
	}

	if params.Pie != nil {
		m.pie = chart.NewPieChart(chartParams)
		m.pie.ApplyConfig(cfg)
		m.pie.SetData(params.Pie)
		m.pie.SetDelegate(m)
	} else {
		m.chart = chart.NewBarLineChart(chartParams)
		m.chart.ApplyConfig(cfg)
		m.chart.SetData(params.Data)
		m.chart.SetDelegate(m)
	}

	return m
}

// Chart returns the bar and line chart, or nil in pie mode.
func (m *Model) Chart() *chart.BarLineChart { return m.chart }

// Pie returns the pie chart, or nil.
func (m *Model) Pie() *chart.PieChart { return m.pie }

func (m *Model) current() chart.Chart {
	if m.pie != nil {
		return m.pie
	}
	return m.chart
}

// Init starts the intro animation.
func (m *Model) Init() tea.Cmd {
	return m.animate()
}

func (m *Model) animate() tea.Cmd {
	cfg := m.config.Snapshot()
	duration := cfg.Animation.Duration()
	if duration <= 0 {
		return nil
	}
	easing := cfg.Animation.EasingOption().Func()

	if m.pie != nil {
		m.pie.AnimateY(duration, easing)
	} else {
		m.chart.Animate(duration, duration, easing, easing)
	}
	return m.scheduleTick()
}

// scheduleTick returns the command for the next frame, or nil if one is
// already scheduled.
func (m *Model) scheduleTick() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	fps := max(m.config.Snapshot().Animation.FrameRate, 1)
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if m.current().Tick(time.Time(msg)) {
			return m, m.tick()
		}
		m.ticking = false
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		if handler, ok := m.keyMap[msg.String()]; ok {
			return m, handler(m, msg)
		}
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}

	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height

	cols := max(width, 0)
	rows := max(height-headerHeight-footerHeight, 0)
	m.renderer.Resize(cols, rows)

	if m.pie != nil {
		termchart.FitPie(m.pie, cols, rows)
	} else {
		termchart.Fit(m.chart, cols, rows)
	}
}

func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	header := titleStyle.Render(runewidth.Truncate(m.title, m.width, "…"))

	var body string
	if m.pie != nil {
		body = m.renderer.RenderPie(m.pie)
	} else {
		body = m.renderer.Render(m.chart)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.footer())
}

func (m *Model) footer() string {
	var text string
	switch {
	case m.status != "":
		text = footerStyle.Render(runewidth.Truncate(m.status, m.width, "…"))
	case m.pie != nil:
		text = m.pieFooter()
	default:
		if readout := termchart.Readout(m.chart); readout != "" {
			text = footerStyle.Render(runewidth.Truncate(readout, m.width, "…"))
		} else {
			text = termchart.Legend(m.chart.Data(), m.width)
		}
	}
	return text
}

// pieFooter describes the selected slice, or lists the slice labels.
func (m *Model) pieFooter() string {
	d := m.pie.PieData()
	if d == nil {
		return ""
	}
	set, ok := d.Series()
	if !ok {
		return ""
	}

	var text string
	if highs := m.pie.Highlighted(); len(highs) > 0 {
		i := int(highs[0].X)
		if i >= 0 && i < set.Len() {
			e := set.At(i)
			text = fmt.Sprintf("%s  %s", e.Label(), format.Compact(e.Value(), 8))
		}
	} else {
		labels := make([]string, 0, set.Len())
		for _, e := range set.Entries() {
			labels = append(labels, e.Label())
		}
		text = strings.Join(labels, "  ")
	}
	return footerStyle.Render(runewidth.Truncate(text, m.width, "…"))
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	ev := tea.MouseEvent(msg)
	cell := canvas.Point{X: msg.X, Y: msg.Y - headerHeight}
	x, y := termchart.CellToPixel(cell.X, cell.Y)

	switch {
	case ev.IsWheel():
		if m.chart == nil {
			return nil
		}
		switch ev.Button {
		case tea.MouseButtonWheelUp:
			m.chart.Zoom(wheelZoomIn, 1, x, y)
		case tea.MouseButtonWheelDown:
			m.chart.Zoom(wheelZoomOut, 1, x, y)
		}

	case ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft:
		m.press = &cell
		m.dragged = false
		if m.pie != nil {
			m.pie.BeginRotation(x, y)
		}

	case ev.Action == tea.MouseActionMotion && m.press != nil:
		m.dragged = true
		if m.pie != nil {
			m.pie.Rotate(x, y)
		} else if !m.chart.DragHighlight(x, y) {
			fromX, fromY := termchart.CellToPixel(m.press.X, m.press.Y)
			m.chart.Translate(x-fromX, y-fromY)
		}
		m.press = &cell

	case ev.Action == tea.MouseActionRelease && m.press != nil:
		if !m.dragged {
			if m.pie != nil {
				m.pie.Tap(x, y)
			} else {
				m.chart.Tap(x, y)
			}
		}
		m.press = nil
	}

	return nil
}

func (m *Model) handleQuit(tea.KeyMsg) tea.Cmd {
	return tea.Quit
}

func (m *Model) handleAnimate(tea.KeyMsg) tea.Cmd {
	return m.animate()
}

func (m *Model) handleCycleUnit(tea.KeyMsg) tea.Cmd {
	current := m.config.Snapshot().Axis.YUnit
	next := yUnits[0]
	for i, unit := range yUnits {
		if unit == current {
			next = yUnits[(i+1)%len(yUnits)]
			break
		}
	}

	if err := m.config.SetYUnit(next); err != nil {
		m.logger.CaptureError(err)
		m.status = err.Error()
	}
	m.applyConfig()
	return nil
}

func (m *Model) applyConfig() {
	cfg := m.config.Snapshot()
	if m.pie != nil {
		m.pie.ApplyConfig(cfg)
	} else {
		m.chart.ApplyConfig(cfg)
	}
}

func (m *Model) handleClearSelection(tea.KeyMsg) tea.Cmd {
	if m.pie != nil {
		m.pie.ClearHighlight(false)
	} else {
		m.chart.ClearHighlight(false)
	}
	return nil
}

func (m *Model) handleZoomIn(tea.KeyMsg) tea.Cmd {
	if m.chart != nil {
		m.chart.ZoomIn()
	}
	return nil
}

func (m *Model) handleZoomOut(tea.KeyMsg) tea.Cmd {
	if m.chart != nil {
		m.chart.ZoomOut()
	}
	return nil
}

func (m *Model) handleResetZoom(tea.KeyMsg) tea.Cmd {
	if m.chart != nil {
		m.chart.ResetZoom()
	}
	return nil
}

func (m *Model) handlePanLeft(tea.KeyMsg) tea.Cmd {
	if m.chart != nil {
		m.chart.Translate(m.chart.Viewport().ContentWidth()*panFraction, 0)
	}
	return nil
}

func (m *Model) handlePanRight(tea.KeyMsg) tea.Cmd {
	if m.chart != nil {
		m.chart.Translate(-m.chart.Viewport().ContentWidth()*panFraction, 0)
	}
	return nil
}

func (m *Model) handleHome(tea.KeyMsg) tea.Cmd {
	if m.chart == nil {
		return nil
	}
	return m.moveViewTo(m.chart.XAxis().Minimum())
}

func (m *Model) handleEnd(tea.KeyMsg) tea.Cmd {
	if m.chart == nil {
		return nil
	}
	return m.moveViewTo(m.chart.XAxis().Maximum() - m.chart.VisibleXRange())
}

// moveViewTo animates the view's left edge to x, keeping the y range.
func (m *Model) moveViewTo(x float64) tea.Cmd {
	cfg := m.config.Snapshot()
	center := m.chart.Viewport().ContentCenter()
	mid := m.chart.ValuesForTouch(center.X, center.Y, chartdata.AxisLeft)

	m.chart.MoveViewToAnimated(
		x, mid.Y,
		chartdata.AxisLeft,
		cfg.Animation.Duration(),
		cfg.Animation.EasingOption().Func())
	return m.scheduleTick()
}

func (m *Model) ChartValueSelected(_ chart.Chart, entry chartdata.Valuer, h highlight.Highlight) {
	m.logger.Debug("chartview: value selected",
		"x", entry.X(),
		"y", entry.Y(),
		"dataSetIndex", h.DataSetIndex)
}

func (m *Model) ChartValueNothingSelected(chart.Chart) {
	m.logger.Debug("chartview: selection cleared")
}

func (m *Model) ChartScaled(_ chart.Chart, scaleX, scaleY float64) {
	m.logger.Debug("chartview: zoomed", "scaleX", scaleX, "scaleY", scaleY)
}

func (m *Model) ChartTranslated(_ chart.Chart, dx, dy float64) {
	m.logger.Debug("chartview: dragged", "dx", dx, "dy", dy)
}
