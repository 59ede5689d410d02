package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexflint/go-arg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/wandb/wandb/chartcore/internal/chartconfig"
	"github.com/wandb/wandb/chartcore/internal/chartview"
	"github.com/wandb/wandb/chartcore/internal/observability"
	"github.com/wandb/wandb/chartcore/internal/seriesio"
)

// maxDefaultMetrics bounds how many metrics are charted when none are
// named on the command line.
const maxDefaultMetrics = 4

type args struct {
	History string   `arg:"positional,required" help:"path to a history file with one JSON object per line"`
	Metrics []string `arg:"-m,--metric,separate" help:"metric to chart; repeat for several (default: the first few)"`
	XKey    string   `arg:"--x-key" default:"_step" help:"key of each row's x value"`
	Pie     bool     `arg:"--pie" help:"show the last value of each metric as a pie"`
	Config  string   `arg:"--config,env:CHARTCORE_CONFIG" help:"settings file (default: user config directory)"`
}

func (args) Description() string {
	return "chartdemo - interactive terminal chart of a run's metric history\n"
}

func (args) Epilogue() string {
	return "Environment Variables:\n" +
		"  CHARTCORE_DEBUG       Enable debug logging (creates chartdemo.debug.log)\n" +
		"  CHARTCORE_CONFIG_DIR  Directory of the settings file"
}

func main() {
	exitCode := mainWithExitCode()
	os.Exit(exitCode)
}

func mainWithExitCode() int {
	var a args
	arg.MustParse(&a)

	// Enable debug logging if CHARTCORE_DEBUG env var is set.
	var writer io.Writer
	if os.Getenv("CHARTCORE_DEBUG") != "" {
		loggerFile, err := os.OpenFile("chartdemo.debug.log", os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			fmt.Println("fatal:", err)
			return 1
		}
		writer = loggerFile
		defer func() {
			_ = loggerFile.Close()
		}()
	} else {
		writer = io.Discard
	}

	logger := observability.NewCoreLogger(
		slog.New(slog.NewJSONHandler(
			writer,
			&slog.HandlerOptions{
				Level: slog.LevelDebug,
			},
		)),
		&observability.CoreLoggerParams{
			Tags: observability.Tags{},
		},
	)

	fs := afero.NewOsFs()

	history, err := seriesio.Load(fs, a.History, seriesio.Options{XKey: a.XKey})
	if err != nil {
		logger.CaptureError(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	metrics := a.Metrics
	if len(metrics) == 0 {
		metrics = history.Metrics()
		metrics = metrics[:min(len(metrics), maxDefaultMetrics)]
	}
	if len(metrics) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no metrics found in %s\n", a.History)
		return 1
	}

	configPath := a.Config
	if configPath == "" {
		configPath = chartconfig.DefaultPath(fs)
	}
	config := chartconfig.NewConfigManager(fs, configPath, logger)

	params := chartview.Params{
		Title:  fmt.Sprintf("%s · %s", strings.Join(metrics, ", "), filepath.Base(a.History)),
		Config: config,
		Logger: logger,
	}
	if a.Pie {
		params.Pie = history.LastValues("last values", metrics...)
	} else {
		params.Data = history.LineData(metrics...)
	}

	model := chartview.New(params)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error(fmt.Sprintf("chartdemo: %v", err))
		return 1
	}

	return 0
}
