// Package scatter implements the scatter plot widget. It has two
// transformation modes: aggregate mode plots one point per facet
// group with the declared aggregates mapped to the axes, attribute
// mode plots one point per raw data point with the selected
// attributes mapped to the axes.
package scatter

import (
	"strings"

	"github.com/vizkit/vizkit"
)

// Config is the externally supplied scatter configuration.
type Config struct {
	Other vizkit.Other `json:"other"`
}

// Guidance is the corrective copy for the unsupported-query state.
var Guidance = vizkit.Guidance{
	Title:   "The scatter plot needs at least two aggregates or two attributes",
	Example: "SELECT count(*), average(duration) FROM Transaction FACET appName",
}

// Validate reports whether the classified rows are chartable as a
// scatter plot: at least two plain attributes or at least two
// aggregates.
func Validate(rows []vizkit.ResultRow, c vizkit.Classification) bool {
	return len(rows) > 0 && (len(c.Attributes) >= 2 || len(c.Aggregates) >= 2)
}

// Accepts is the Validate predicate in the form vizkit.Evaluate
// consumes.
func Accepts(rows []vizkit.ResultRow) bool {
	return Validate(rows, vizkit.Classify(rows))
}

// An Axis carries the per-axis metadata for tooltips and tick
// formatting.
type Axis struct {
	Name string
	Unit string
}

// A Point is one scatter mark. Z is only meaningful when HasZ is
// set.
type Point struct {
	X, Y  float64
	Z     float64
	HasZ  bool
	Label string
	Color string
}

// A Series is the transformed scatter series with the ranges of the
// retained points for axis scaling.
type Series struct {
	Points []Point
	X, Y   Axis
	Z      Axis
	// HasZ reports whether a third measure is mapped at all.
	HasZ           bool
	XRange, YRange vizkit.Interval
}

// Empty reports whether every point was dropped during null
// filtering.
func (s *Series) Empty() bool { return len(s.Points) == 0 }

// Colors returns the per-point color accessor handed to the chart
// library.
func (s *Series) Colors() vizkit.ColorAccessor {
	return func(i int) string { return s.Points[i].Color }
}

// Labels returns the per-point tooltip label accessor.
func (s *Series) Labels() vizkit.LabelAccessor {
	return func(i int) string { return s.Points[i].Label }
}

// Transform builds the scatter series from rows. Attribute mode is
// chosen whenever more than one plain attribute was selected and
// takes priority; aggregate mode applies when more than one
// aggregate was declared. When neither mode applies Transform
// returns ErrNoSeries even though the shape validator may have
// passed, and the caller must treat the pass as unsupported.
func Transform(rows []vizkit.ResultRow, c vizkit.Classification, cfg Config) (*Series, error) {
	if len(c.Attributes) > 1 {
		return transformAttributes(rows, c), nil
	}
	if len(c.Aggregates) > 1 {
		return transformAggregates(rows, c, cfg), nil
	}
	return nil, vizkit.ErrNoSeries
}

// transformAggregates groups rows by their joined facet label and
// assigns the declared aggregates to x, y and z in declaration
// order. A facet group missing a required axis value is dropped.
func transformAggregates(rows []vizkit.ResultRow, c vizkit.Classification, cfg Config) *Series {
	axisOf := make(map[string]int, len(c.Aggregates))
	for i, a := range c.Aggregates {
		axisOf[a] = i
	}
	hasZ := len(c.Aggregates) > 2

	type bucket struct {
		vals  [3]float64
		has   [3]bool
		color string
	}
	var order []string
	buckets := make(map[string]*bucket)
	var axes [3]Axis

	for _, row := range rows {
		label := strings.Join(row.FacetValues(), ", ")
		if label == vizkit.OtherBucket && !cfg.Other.Visible {
			continue
		}
		g, ok := row.FunctionGroup()
		if !ok {
			continue
		}
		ai, ok := axisOf[g.Identity()]
		if !ok || ai > 2 {
			continue
		}
		y, ok := row.Y()
		if !ok {
			continue
		}

		b := buckets[label]
		if b == nil {
			b = &bucket{color: row.Metadata.Color}
			if b.color == "" {
				b.color = vizkit.PaletteColor(len(order))
			}
			buckets[label] = b
			order = append(order, label)
		}
		b.vals[ai], b.has[ai] = y, true
		if axes[ai].Name == "" {
			axes[ai] = Axis{Name: g.Identity(), Unit: row.YUnit()}
		}
	}

	s := &Series{
		X: axes[0], Y: axes[1], Z: axes[2], HasZ: hasZ,
		XRange: vizkit.UnsetInterval(),
		YRange: vizkit.UnsetInterval(),
	}
	for _, label := range order {
		b := buckets[label]
		if !b.has[0] || !b.has[1] {
			continue
		}
		if hasZ && !b.has[2] {
			continue
		}
		p := Point{X: b.vals[0], Y: b.vals[1], Label: label, Color: b.color}
		if hasZ {
			p.Z, p.HasZ = b.vals[2], true
		}
		s.Points = append(s.Points, p)
		s.XRange.Update(p.X)
		s.YRange.Update(p.Y)
	}
	return s
}

// transformAttributes emits one point per input data point with the
// first two attributes mapped to x and y and the third, if present
// and non-null, to z. All points share the first row's color. Points
// missing x or y are dropped; a missing z only omits the z value.
func transformAttributes(rows []vizkit.ResultRow, c vizkit.Classification) *Series {
	attrs := c.Attributes
	hasZ := len(attrs) > 2

	color := ""
	if len(rows) > 0 {
		color = rows[0].Metadata.Color
	}
	if color == "" {
		color = vizkit.PaletteColor(0)
	}

	unit := func(attr string) string {
		for _, row := range rows {
			if u, ok := row.Metadata.UnitsData[attr]; ok {
				return u
			}
		}
		return vizkit.UnitUnknown
	}

	s := &Series{
		X:      Axis{Name: attrs[0], Unit: unit(attrs[0])},
		Y:      Axis{Name: attrs[1], Unit: unit(attrs[1])},
		HasZ:   hasZ,
		XRange: vizkit.UnsetInterval(),
		YRange: vizkit.UnsetInterval(),
	}
	if hasZ {
		s.Z = Axis{Name: attrs[2], Unit: unit(attrs[2])}
	}

	for _, row := range rows {
		for _, dp := range row.Data {
			x, ok := dp.Num(attrs[0])
			if !ok {
				continue
			}
			y, ok := dp.Num(attrs[1])
			if !ok {
				continue
			}
			p := Point{X: x, Y: y, Color: color}
			if hasZ {
				if z, ok := dp.Num(attrs[2]); ok {
					p.Z, p.HasZ = z, true
				}
			}
			s.Points = append(s.Points, p)
			s.XRange.Update(x)
			s.YRange.Update(y)
		}
	}
	return s
}
