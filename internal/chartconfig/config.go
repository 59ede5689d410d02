// Package chartconfig loads and persists the user's chart settings.
package chartconfig

import (
	"math"
	"time"

	"github.com/wandb/wandb/chartcore/internal/animation"
	"github.com/wandb/wandb/chartcore/internal/format"
	"github.com/wandb/wandb/chartcore/internal/highlight"
)

const (
	// Label count constraints, matching the axis package.
	MinLabelCount, MaxLabelCount = 2, 25

	DefaultLabelCount = 6

	DefaultSpace = 0.1

	DefaultAnimationMillis = 1000
	MaxAnimationMillis     = 10_000
	DefaultEasing          = "easeInOutSine"

	DefaultFrameRate, MaxFrameRate = 30, 120

	MaxOffset = 200
)

// Y label units accepted in AxisConfig.YUnit.
const (
	UnitNone    = ""
	UnitCompact = "compact"
	UnitPercent = "percent"
	UnitBytes   = "bytes"
	UnitSeconds = "seconds"
	UnitWatts   = "watts"
	UnitMHz     = "mhz"
)

var units = map[string]format.AxisValueFormatter{
	UnitCompact: format.CompactAxisFormatter{MaxWidth: 6},
	UnitPercent: format.UnitPercent,
	UnitBytes:   format.UnitBytes,
	UnitSeconds: format.UnitSeconds,
	UnitWatts:   format.UnitWatt,
	UnitMHz:     format.UnitMHz,
}

// Config stores the chart settings.
type Config struct {
	Axis      AxisConfig      `yaml:"axis"`
	Viewport  ViewportConfig  `yaml:"viewport"`
	Highlight HighlightConfig `yaml:"highlight"`
	Animation AnimationConfig `yaml:"animation"`
	Offsets   OffsetsConfig   `yaml:"offsets"`
	Pie       PieConfig       `yaml:"pie"`
}

type AxisConfig struct {
	XLabelCount int  `yaml:"x_label_count"`
	YLabelCount int  `yaml:"y_label_count"`
	ForceLabels bool `yaml:"force_labels"`

	// Granularity is the smallest y tick interval; 0 disables it.
	Granularity float64 `yaml:"granularity"`

	// SpaceTop and SpaceBottom pad the y range by a fraction of it.
	SpaceTop    float64 `yaml:"space_top"`
	SpaceBottom float64 `yaml:"space_bottom"`

	// YUnit selects how y labels are formatted. Empty uses the chart's
	// default decimal formatter.
	YUnit string `yaml:"y_unit"`
}

type ViewportConfig struct {
	ScaleXEnabled bool `yaml:"scale_x_enabled"`
	ScaleYEnabled bool `yaml:"scale_y_enabled"`
	DragEnabled   bool `yaml:"drag_enabled"`

	// MaxScaleX and MaxScaleY bound the zoom; 0 is unbounded.
	MaxScaleX float64 `yaml:"max_scale_x"`
	MaxScaleY float64 `yaml:"max_scale_y"`

	// DragOffsetX and DragOffsetY let the content be dragged past its
	// edges, in pixels.
	DragOffsetX float64 `yaml:"drag_offset_x"`
	DragOffsetY float64 `yaml:"drag_offset_y"`

	// AutoScaleMinMax fits the y axis to the visible x range.
	AutoScaleMinMax bool `yaml:"auto_scale_min_max"`
}

type HighlightConfig struct {
	PerTap  bool `yaml:"per_tap"`
	PerDrag bool `yaml:"per_drag"`
	FullBar bool `yaml:"full_bar"`

	// MaxDistance is how far, in pixels, a touch selects a point.
	MaxDistance float64 `yaml:"max_distance"`
}

type AnimationConfig struct {
	DurationMillis int    `yaml:"duration_ms"`
	Easing         string `yaml:"easing"`

	// FrameRate caps redraws per second.
	FrameRate int `yaml:"frame_rate"`
}

// Duration is the animation length.
func (c AnimationConfig) Duration() time.Duration {
	return time.Duration(c.DurationMillis) * time.Millisecond
}

// EasingOption returns the configured easing, or linear if it is unknown.
func (c AnimationConfig) EasingOption() animation.EasingOption {
	o, err := animation.ParseEasing(c.Easing)
	if err != nil {
		return animation.Linear
	}
	return o
}

// OffsetsConfig is extra space around the content, in pixels.
type OffsetsConfig struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

type PieConfig struct {
	RotationAngle   float64 `yaml:"rotation_angle"`
	RotationEnabled bool    `yaml:"rotation_enabled"`
	DrawHole        bool    `yaml:"draw_hole"`

	// HoleRadiusPercent is the hole's radius as a percentage of the pie's.
	HoleRadiusPercent float64 `yaml:"hole_radius_percent"`
}

// YFormatter returns the formatter for the configured unit, or nil for the
// chart's default.
func (c AxisConfig) YFormatter() format.AxisValueFormatter {
	return units[c.YUnit]
}

// Default returns the settings used when there is no config file.
func Default() Config {
	return Config{
		Axis: AxisConfig{
			XLabelCount: DefaultLabelCount,
			YLabelCount: DefaultLabelCount,
			SpaceTop:    DefaultSpace,
			SpaceBottom: DefaultSpace,
		},
		Viewport: ViewportConfig{
			ScaleXEnabled: true,
			ScaleYEnabled: true,
			DragEnabled:   true,
		},
		Highlight: HighlightConfig{
			PerTap:      true,
			PerDrag:     true,
			MaxDistance: highlight.DefaultMaxHighlightDistance,
		},
		Animation: AnimationConfig{
			DurationMillis: DefaultAnimationMillis,
			Easing:         DefaultEasing,
			FrameRate:      DefaultFrameRate,
		},
		Pie: PieConfig{
			RotationAngle:     270,
			RotationEnabled:   true,
			DrawHole:          true,
			HoleRadiusPercent: 50,
		},
	}
}

// Normalize clamps every value into its valid range, replacing unknown
// names with defaults.
func (c *Config) Normalize() {
	c.Axis.XLabelCount = clamp(c.Axis.XLabelCount, MinLabelCount, MaxLabelCount)
	c.Axis.YLabelCount = clamp(c.Axis.YLabelCount, MinLabelCount, MaxLabelCount)
	c.Axis.Granularity = nonNegative(c.Axis.Granularity)
	c.Axis.SpaceTop = clampFloat(c.Axis.SpaceTop, 0, 1)
	c.Axis.SpaceBottom = clampFloat(c.Axis.SpaceBottom, 0, 1)
	if _, ok := units[c.Axis.YUnit]; !ok {
		c.Axis.YUnit = UnitNone
	}

	c.Viewport.MaxScaleX = nonNegative(c.Viewport.MaxScaleX)
	c.Viewport.MaxScaleY = nonNegative(c.Viewport.MaxScaleY)
	c.Viewport.DragOffsetX = clampFloat(c.Viewport.DragOffsetX, 0, MaxOffset)
	c.Viewport.DragOffsetY = clampFloat(c.Viewport.DragOffsetY, 0, MaxOffset)

	if !(c.Highlight.MaxDistance > 0) || math.IsInf(c.Highlight.MaxDistance, 0) {
		c.Highlight.MaxDistance = highlight.DefaultMaxHighlightDistance
	}

	c.Animation.DurationMillis = clamp(c.Animation.DurationMillis, 0, MaxAnimationMillis)
	if _, err := animation.ParseEasing(c.Animation.Easing); err != nil {
		c.Animation.Easing = DefaultEasing
	}
	if c.Animation.FrameRate <= 0 {
		c.Animation.FrameRate = DefaultFrameRate
	}
	c.Animation.FrameRate = min(c.Animation.FrameRate, MaxFrameRate)

	c.Offsets.Left = clampFloat(c.Offsets.Left, 0, MaxOffset)
	c.Offsets.Top = clampFloat(c.Offsets.Top, 0, MaxOffset)
	c.Offsets.Right = clampFloat(c.Offsets.Right, 0, MaxOffset)
	c.Offsets.Bottom = clampFloat(c.Offsets.Bottom, 0, MaxOffset)

	c.Pie.RotationAngle = normalizeAngle(c.Pie.RotationAngle)
	c.Pie.HoleRadiusPercent = clampFloat(c.Pie.HoleRadiusPercent, 0, 100)
}

func clamp(val, minimum, maximum int) int {
	return min(max(val, minimum), maximum)
}

// clampFloat clamps val, mapping NaN to minimum.
func clampFloat(val, minimum, maximum float64) float64 {
	if math.IsNaN(val) {
		return minimum
	}
	return min(max(val, minimum), maximum)
}

func nonNegative(val float64) float64 {
	if math.IsNaN(val) || math.IsInf(val, 0) || val < 0 {
		return 0
	}
	return val
}

// normalizeAngle maps an angle in degrees into [0, 360).
func normalizeAngle(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
