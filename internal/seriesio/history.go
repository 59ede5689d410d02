// Package seriesio builds chart series from run history files.
//
// A history file is JSON lines, one object per logged step:
//
//	{"_step": 0, "_runtime": 1.2, "loss": 0.9, "eval": {"acc": 0.5}}
//
// Numeric values become entries of the series named by their key, with
// nested keys joined by dots. Keys starting with an underscore are
// bookkeeping and are only used as the x value.
package seriesio

import (
	"log/slog"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"github.com/wandb/simplejsonext"

	"github.com/wandb/wandb/chartcore/internal/chartdata"
	"github.com/wandb/wandb/chartcore/internal/observability/wberrors"
)

// StepKey is the default x value of a row.
const StepKey = "_step"

// Row is the numeric content of one history line.
type Row struct {
	X       float64
	Metrics map[string]float64
}

// ParseRow extracts the x value under xKey and the numeric metrics of a
// decoded history line.
//
// It reports false if the row has no x value.
func ParseRow(obj map[string]any, xKey string) (Row, bool) {
	row := Row{Metrics: make(map[string]float64)}

	x, ok := number(obj[xKey])
	if !ok {
		return row, false
	}
	row.X = x

	flatten(obj, "", row.Metrics)
	return row, true
}

func flatten(obj map[string]any, prefix string, out map[string]float64) {
	for key, value := range obj {
		if prefix == "" && strings.HasPrefix(key, "_") {
			continue
		}

		name := key
		if prefix != "" {
			name = prefix + "." + key
		}

		if nested, ok := value.(map[string]any); ok {
			flatten(nested, name, out)
			continue
		}

		if v, ok := number(value); ok {
			out[name] = v
		}
	}
}

// number converts a decoded JSON number. Non-finite values are rejected
// since they cannot be placed on an axis.
func number(value any) (float64, bool) {
	var v float64
	switch x := value.(type) {
	case int64:
		v = float64(x)
	case float64:
		v = x
	default:
		return 0, false
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// History is a set of metric series, one per key.
type History struct {
	series map[string]*chartdata.LineSeries
}

func NewHistory() *History {
	return &History{series: make(map[string]*chartdata.LineSeries)}
}

// Add appends the row's metrics to their series.
//
// Series stay sorted by x: rows logged out of order are inserted in place.
func (h *History) Add(row Row) {
	for name, y := range row.Metrics {
		e := chartdata.NewEntry(row.X, y)

		set, ok := h.series[name]
		if !ok {
			h.series[name] = chartdata.NewLineSeries([]chartdata.Entry{e}, name)
			continue
		}

		set.AddEntryOrdered(e)
	}
}

// Metrics returns the metric names in sorted order.
func (h *History) Metrics() []string {
	return slices.Sorted(maps.Keys(h.series))
}

// Series returns the series of a metric.
func (h *History) Series(name string) (*chartdata.LineSeries, bool) {
	set, ok := h.series[name]
	return set, ok
}

// LineData returns the series of the named metrics as chart data. Unknown
// names are skipped.
func (h *History) LineData(names ...string) *chartdata.LineData {
	sets := make([]*chartdata.LineSeries, 0, len(names))
	for _, name := range names {
		if set, ok := h.series[name]; ok {
			sets = append(sets, set)
		}
	}
	return chartdata.NewLineData(sets...)
}

// LastValues returns a pie with one slice per named metric, sized by its
// last logged value. Unknown names are skipped.
func (h *History) LastValues(label string, names ...string) *chartdata.PieData {
	entries := make([]chartdata.PieEntry, 0, len(names))
	for _, name := range names {
		set, ok := h.series[name]
		if !ok || set.Len() == 0 {
			continue
		}
		last := set.At(set.Len() - 1)
		entries = append(entries, chartdata.NewPieEntry(last.Y(), name))
	}
	return chartdata.NewPieData(chartdata.NewPieSeries(entries, label))
}

// Options configures Load.
type Options struct {
	// XKey is the key of each row's x value; StepKey if empty.
	XKey string
}

// Load reads the history file at path.
//
// Rows without an x value are skipped. A malformed line stops the read;
// the error carries its record number.
func Load(fs afero.Fs, path string, opts Options) (*History, error) {
	xKey := opts.XKey
	if xKey == "" {
		xKey = StepKey
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil, wberrors.Bubblef(err, "seriesio: cannot open history").
			Attr(slog.String("path", path))
	}
	defer func() { _ = f.Close() }()

	h := NewHistory()
	parser := simplejsonext.NewParser(f)

	record := 0
	for obj, err := range parser.IterObjectLines() {
		record++
		if err != nil {
			return nil, wberrors.Enrichf(err, "seriesio: bad history record").
				Attr(slog.String("path", path)).
				Attr(slog.Int("record", record))
		}

		if row, ok := ParseRow(obj, xKey); ok {
			h.Add(row)
		}
	}

	return h, nil
}
