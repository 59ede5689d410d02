package chart

import (
	"math"

	"github.com/wandb/wandb/chartcore/internal/chartconfig"
	"github.com/wandb/wandb/chartcore/internal/chartdata"
	"github.com/wandb/wandb/chartcore/internal/geom"
	"github.com/wandb/wandb/chartcore/internal/highlight"
)

const (
	defaultRotationAngle = 270.0
	fullCircle           = 360.0
)

// PieChart is a chart of the slices of one pie series.
//
// Angles are in degrees, clockwise from the positive x direction. The
// default rotation of 270 starts the first slice at the top.
type PieChart struct {
	base

	pie *chartdata.PieData

	drawAngles     []float64
	absoluteAngles []float64

	rotationAngle float64

	// startAngle is the touch angle minus the rotation when a rotation
	// gesture began.
	startAngle float64

	RotationEnabled bool

	DrawHole bool

	// HoleRadiusPercent is the hole radius as a fraction of the radius.
	HoleRadiusPercent float64

	// MaxAngle is the angle the whole pie spans, at most 360.
	MaxAngle float64
}

// NewPieChart returns an empty pie chart without a size.
func NewPieChart(params Params) *PieChart {
	c := &PieChart{
		base:              newBase(params),
		rotationAngle:     defaultRotationAngle,
		RotationEnabled:   true,
		DrawHole:          true,
		HoleRadiusPercent: 0.5,
		MaxAngle:          fullCircle,
	}
	c.self = c
	c.highlighter = highlight.NewPieHighlighter(c)
	c.animator.SetObserver(c)
	c.vp.SetInvalidator(c.invalidate)
	return c
}

// PieData returns the chart's data, or nil.
func (c *PieChart) PieData() *chartdata.PieData { return c.pie }

// SetData replaces the chart's data and resets the selection.
func (c *PieChart) SetData(d *chartdata.PieData) {
	c.pie = d
	c.highlighted = nil
	c.lastHighlighted = nil

	if d == nil {
		c.data = nil
		c.drawAngles = nil
		c.absoluteAngles = nil
		c.invalidate()
		return
	}

	c.data = d
	c.setupDefaultFormatter(d)
	c.NotifyDataSetChanged()
}

// Clear removes the data and the selection.
func (c *PieChart) Clear() {
	c.SetData(nil)
}

// NotifyDataSetChanged recomputes the slice angles after the data
// changed.
func (c *PieChart) NotifyDataSetChanged() {
	if c.pie == nil {
		return
	}
	c.calcAngles()
	c.calculateOffsets()
	c.invalidate()
}

// calcAngles sizes each slice by its share of the absolute values.
func (c *PieChart) calcAngles() {
	c.drawAngles = c.drawAngles[:0]
	c.absoluteAngles = c.absoluteAngles[:0]

	set, ok := c.pie.Series()
	if !ok {
		return
	}

	var total float64
	for _, e := range set.Entries() {
		total += math.Abs(e.Value())
	}

	maxAngle := min(max(c.MaxAngle, 0), fullCircle)

	var offset float64
	for _, e := range set.Entries() {
		var angle float64
		if total > 0 {
			angle = math.Abs(e.Value()) / total * maxAngle
		}
		offset += angle
		c.drawAngles = append(c.drawAngles, angle)
		c.absoluteAngles = append(c.absoluteAngles, offset)
	}
}

// DrawAngles returns the angle each slice spans. Callers must not modify
// the slice.
func (c *PieChart) DrawAngles() []float64 { return c.drawAngles }

// AbsoluteAngles returns the angle at which each slice ends, relative to
// the rotation. Callers must not modify the slice.
func (c *PieChart) AbsoluteAngles() []float64 { return c.absoluteAngles }

// RotationAngle is where the first slice starts, in [0, 360).
func (c *PieChart) RotationAngle() float64 { return c.rotationAngle }

func (c *PieChart) SetRotationAngle(angle float64) {
	c.rotationAngle = normalizedAngle(angle)
	c.invalidate()
}

// SetSize sets the chart size.
func (c *PieChart) SetSize(width, height float64) {
	if width == c.vp.ChartWidth() && height == c.vp.ChartHeight() {
		return
	}
	c.vp.SetChartDimens(width, height)
	c.calculateOffsets()
	c.NotifyDataSetChanged()
	c.runPendingJobs()
}

// SetExtraOffsets adds space around the content, in pixels.
func (c *PieChart) SetExtraOffsets(left, top, right, bottom float64) {
	c.setExtraOffsets(left, top, right, bottom)
	c.calculateOffsets()
}

// ApplyConfig applies the user's settings.
func (c *PieChart) ApplyConfig(cfg chartconfig.Config) {
	c.rotationAngle = normalizedAngle(cfg.Pie.RotationAngle)
	c.RotationEnabled = cfg.Pie.RotationEnabled
	c.DrawHole = cfg.Pie.DrawHole
	c.HoleRadiusPercent = cfg.Pie.HoleRadiusPercent / 100
	c.highlightPerTap = cfg.Highlight.PerTap

	c.setExtraOffsets(
		cfg.Offsets.Left, cfg.Offsets.Top,
		cfg.Offsets.Right, cfg.Offsets.Bottom)
	c.calculateOffsets()
	c.invalidate()
}

func (c *PieChart) calculateOffsets() {
	c.vp.RestrainViewPort(c.extraLeft, c.extraTop, c.extraRight, c.extraBottom)
}

// Center is the pixel at the center of the pie.
func (c *PieChart) Center() geom.Point { return c.vp.ContentCenter() }

// Radius is the radius of the pie, in pixels.
func (c *PieChart) Radius() float64 {
	r := c.vp.ContentRect()
	return max(min(r.Width, r.Height)/2, 0)
}

// HoleRadius is the radius of the hole, or 0 without one.
func (c *PieChart) HoleRadius() float64 {
	if !c.DrawHole {
		return 0
	}
	return c.Radius() * c.HoleRadiusPercent
}

// DistanceToCenter is how far the pixel (x, y) is from the center.
func (c *PieChart) DistanceToCenter(x, y float64) float64 {
	center := c.Center()
	return geom.Distance(x, y, center.X, center.Y)
}

// AngleForPoint returns the angle of the pixel (x, y) around the center,
// in degrees clockwise from the positive x direction, in [0, 360].
func (c *PieChart) AngleForPoint(x, y float64) float64 {
	center := c.Center()
	tx, ty := x-center.X, y-center.Y

	length := math.Hypot(tx, ty)
	if length == 0 {
		return 0
	}

	angle := math.Acos(ty/length) * 180 / math.Pi
	if x > center.X {
		angle = fullCircle - angle
	}

	// Acos measures from the downward direction.
	angle += 90
	if angle > fullCircle {
		angle -= fullCircle
	}
	return angle
}

// IndexForAngle returns the slice at angle, or -1.
func (c *PieChart) IndexForAngle(angle float64) int {
	a := normalizedAngle(angle - c.rotationAngle)
	for i, end := range c.absoluteAngles {
		if end > a {
			return i
		}
	}
	return -1
}

// SliceMidAngle is the absolute angle through the middle of slice i.
func (c *PieChart) SliceMidAngle(i int) (float64, bool) {
	if i < 0 || i >= len(c.drawAngles) {
		return 0, false
	}
	phase := c.animator.PhaseY()
	start := c.absoluteAngles[i] - c.drawAngles[i]
	return normalizedAngle(c.rotationAngle + (start+c.drawAngles[i]/2)*phase), true
}

// BeginRotation starts a rotation gesture at the pixel (x, y).
func (c *PieChart) BeginRotation(x, y float64) {
	c.startAngle = c.AngleForPoint(x, y) - c.rotationAngle
}

// Rotate continues a rotation gesture at the pixel (x, y), turning the pie
// with the touch.
func (c *PieChart) Rotate(x, y float64) {
	if !c.RotationEnabled {
		return
	}
	c.SetRotationAngle(c.AngleForPoint(x, y) - c.startAngle)
}

// normalizedAngle maps an angle in degrees to [0, 360).
func normalizedAngle(angle float64) float64 {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return 0
	}
	angle = math.Mod(angle, fullCircle)
	if angle < 0 {
		angle += fullCircle
	}
	return angle
}
