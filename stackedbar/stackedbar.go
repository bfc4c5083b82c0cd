// Package stackedbar implements the stacked bar chart widget: one
// faceted aggregate folded into ordered segment series, one segment
// per value of the last facet and one bar per combination of the
// remaining facets.
package stackedbar

import (
	"strings"

	"github.com/vizkit/vizkit"
)

// Config is the externally supplied stacked bar configuration.
type Config struct {
	YAxisConfig vizkit.YAxisConfig `json:"yAxisConfig"`
	Other       vizkit.Other       `json:"other"`
}

// Guidance is the corrective copy for the unsupported-query state.
var Guidance = vizkit.Guidance{
	Title:   "The stacked bar chart needs one aggregate split by at least one facet",
	Example: "SELECT average(duration) FROM Transaction FACET appName, host",
}

// Validate reports whether the classified rows are chartable as a
// stacked bar chart: exactly one aggregate and at least one facet.
func Validate(rows []vizkit.ResultRow, c vizkit.Classification) bool {
	return len(rows) > 0 && len(c.Aggregates) == 1 && len(c.Facets) >= 1
}

// Accepts is the Validate predicate in the form vizkit.Evaluate
// consumes.
func Accepts(rows []vizkit.ResultRow) bool {
	return Validate(rows, vizkit.Classify(rows))
}

// A Point is one bar contribution of a segment.
type Point struct {
	X string  `json:"x"`
	Y float64 `json:"y"`
}

// A Segment is one stacked series across the bars, one per value of
// the last facet. Its color is taken from the first row seen for the
// segment.
type Segment struct {
	Label  string
	Color  string
	Points []Point
}

// A Chart is the transformed stacked bar series.
type Chart struct {
	Segments []Segment
	// Bars lists the distinct bar labels in first-seen order across
	// all segments. The count drives bar width computation.
	Bars []string
	// YUnit is the unit tag of the aggregate values.
	YUnit string
}

// BarCount returns the number of distinct bars.
func (c *Chart) BarCount() int { return len(c.Bars) }

// XLabels returns the bar label accessor for a category axis of the
// given pixel width, truncating each label to its share of the axis.
func (c *Chart) XLabels(axisWidth float64) vizkit.LabelAccessor {
	budget := vizkit.CategoryLabelBudget(axisWidth, c.BarCount())
	return func(i int) string { return vizkit.TruncateLabel(c.Bars[i], budget) }
}

// Empty reports whether every row was dropped during the fold.
func (c *Chart) Empty() bool { return len(c.Segments) == 0 }

// Legend returns the chart's legend entries, one per segment.
func (c *Chart) Legend() []vizkit.LegendItem {
	items := make([]vizkit.LegendItem, 0, len(c.Segments))
	for _, s := range c.Segments {
		items = append(items, vizkit.LegendItem{Label: s.Label, Color: s.Color})
	}
	return vizkit.Legend(items)
}

// YScale returns the value axis scale over all retained points,
// honoring the configured min/max overrides.
func (c *Chart) YScale(cfg Config) *vizkit.Scale {
	s := vizkit.NewScale()
	s.Title = cfg.YAxisConfig.Label
	s.Unit = c.YUnit
	for _, seg := range c.Segments {
		for _, p := range seg.Points {
			s.Data.Update(p.Y)
		}
	}
	if cfg.YAxisConfig.Min != nil {
		s.FixMin(*cfg.YAxisConfig.Min)
	}
	if cfg.YAxisConfig.Max != nil {
		s.FixMax(*cfg.YAxisConfig.Max)
	}
	s.Autoscale()
	return s
}

// Transform folds rows into the segment series. The bar label is the
// comma-joined values of all facets except the last, the segment
// label is the last facet's value and the value is the row's first
// data point. Bars named after the reserved overflow bucket are
// dropped when the bucket is configured invisible.
func Transform(rows []vizkit.ResultRow, cfg Config) (*Chart, error) {
	var (
		segOrder []string
		barOrder []string
		colors   = make(map[string]string)
		values   = make(map[string]map[string]float64)
		seenBar  = make(map[string]bool)
	)

	for _, row := range rows {
		fv := row.FacetValues()
		if len(fv) == 0 {
			continue
		}
		bar := strings.Join(fv[:len(fv)-1], ", ")
		seg := fv[len(fv)-1]
		if bar == vizkit.OtherBucket && !cfg.Other.Visible {
			continue
		}
		y, ok := row.Y()
		if !ok {
			continue
		}

		if _, ok := values[seg]; !ok {
			values[seg] = make(map[string]float64)
			segOrder = append(segOrder, seg)
			color := row.Metadata.Color
			if color == "" {
				color = vizkit.PaletteColor(len(segOrder) - 1)
			}
			colors[seg] = color
		}
		values[seg][bar] = y
		if !seenBar[bar] {
			seenBar[bar] = true
			barOrder = append(barOrder, bar)
		}
	}

	chart := &Chart{Bars: barOrder, YUnit: vizkit.UnitUnknown}
	if len(rows) > 0 {
		chart.YUnit = rows[0].YUnit()
	}
	for _, seg := range segOrder {
		s := Segment{Label: seg, Color: colors[seg]}
		for _, bar := range barOrder {
			if y, ok := values[seg][bar]; ok {
				s.Points = append(s.Points, Point{X: bar, Y: y})
			}
		}
		chart.Segments = append(chart.Segments, s)
	}
	return chart, nil
}
