package termchart

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/wandb/wandb/chartcore/internal/chartdata"
)

// graphColors is the palette for series that keep the default color.
var graphColors = []lipgloss.Color{
	"#E281FE",
	"#ED9FBB",
	"#F6B784",
	"#FFCF4F",
	"#8CEAFF",
	"#A5F0A0",
	"#F0A5AD",
	"#B7A5F8",
}

var (
	axisStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // gray

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")) // light gray

	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FCBC32")).
			Bold(true)
)

// seriesStyle is the style series dataSetIndex is drawn with.
func seriesStyle(set chartdata.DataSet, dataSetIndex int) lipgloss.Style {
	color := set.Color(0)
	if color == "" || color == chartdata.DefaultColor {
		return lipgloss.NewStyle().
			Foreground(graphColors[dataSetIndex%len(graphColors)])
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
