package vizkit

import (
	"math"

	"gonum.org/v1/plot"
)

// ----------------------------------------------------------------------------
// Axis formatting

// Tick spacing in pixels. One tick is placed per spacing-sized slot
// of the axis span.
const (
	TickSpacingX = 100
	TickSpacingY = 70
)

// charWidth approximates the pixel width of one label character when
// computing category label budgets.
const charWidth = 7

// barSlotFill is the fraction of a bar's slot the bar occupies, so
// bars never fully fill their slot.
const barSlotFill = 0.6

// TickCount returns the number of ticks for an axis spanning px
// pixels with the given spacing, never less than one.
func TickCount(px, spacing float64) int {
	n := int(math.Round(px / spacing))
	if n < 1 {
		n = 1
	}
	return n
}

// XTickCount returns the tick count of a horizontal axis of the
// given pixel width.
func XTickCount(width float64) int { return TickCount(width, TickSpacingX) }

// YTickCount returns the tick count of a vertical axis of the given
// pixel height.
func YTickCount(height float64) int { return TickCount(height, TickSpacingY) }

// Ticks generates a fixed number of evenly spaced, unit-formatted
// ticks. It implements plot.Ticker.
type Ticks struct {
	Count int
	Unit  string
}

var _ plot.Ticker = Ticks{}

// Ticks returns Count evenly spaced major ticks covering [min, max].
func (t Ticks) Ticks(min, max float64) []plot.Tick {
	n := t.Count
	if n < 2 {
		n = 2
	}
	step := (max - min) / float64(n-1)
	ticks := make([]plot.Tick, n)
	for i := range ticks {
		v := min + float64(i)*step
		ticks[i] = plot.Tick{Value: v, Label: FormatValue(t.Unit, v)}
	}
	return ticks
}

// AxisProps is the render-ready axis configuration handed to the
// chart library.
type AxisProps struct {
	Label      string
	TickCount  int
	Ticks      []plot.Tick
	TickFormat func(v float64) string
}

// Props derives the axis configuration of s for an axis spanning px
// pixels with the given tick spacing. The scale must have been
// autoscaled.
func (s *Scale) Props(px, spacing float64) AxisProps {
	n := TickCount(px, spacing)
	unit := s.Unit
	return AxisProps{
		Label:      s.Title,
		TickCount:  n,
		Ticks:      Ticks{Count: n, Unit: unit}.Ticks(s.Min, s.Max),
		TickFormat: func(v float64) string { return FormatValue(unit, v) },
	}
}

// ----------------------------------------------------------------------------
// Category labels and bars

// CategoryLabelBudget returns the pixel budget of one category label
// on an axis of the given width.
func CategoryLabelBudget(axisWidth float64, categories int) float64 {
	if categories < 1 {
		return axisWidth
	}
	return axisWidth / float64(categories)
}

// TruncateLabel shortens label to fit px pixels, appending an
// ellipsis when something was cut.
func TruncateLabel(label string, px float64) string {
	max := int(px / charWidth)
	if max < 1 {
		max = 1
	}
	r := []rune(label)
	if len(r) <= max {
		return label
	}
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}

// BarWidth returns the pixel width of one bar when bars many bars
// share the horizontal plotting span.
func BarWidth(span float64, bars int) float64 {
	if bars < 1 {
		return 0
	}
	return barSlotFill * span / float64(bars)
}
