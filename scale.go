package vizkit

import (
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// set yet.
type Interval struct {
	Min, Max float64
}

// UnsetInterval returns the interval [NaN, NaN].
func UnsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x. NaN values are ignored.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Unset reports whether i still has a NaN edge.
func (i Interval) Unset() bool {
	return math.IsNaN(i.Min) || math.IsNaN(i.Max)
}

func (i Interval) Equal(j Interval) bool {
	if math.IsNaN(i.Min) {
		return math.IsNaN(j.Min)
	}
	if math.IsNaN(i.Max) {
		return math.IsNaN(j.Max)
	}
	return i.Min == j.Min && i.Max == j.Max
}

// ----------------------------------------------------------------------------
// Scale

// A Scale is one axis of a chart. It accumulates the range covered by
// the actual data and turns it into the effective axis range,
// honoring fixed edges from the widget configuration.
type Scale struct {
	// Title is the axis title.
	Title string

	// Unit is the unit tag used to format tick labels.
	Unit string

	// Data is the range covered by retained series points.
	Data Interval

	// Interval is the effective axis range after Autoscale.
	Interval

	fixedMin, fixedMax *float64
}

// NewScale returns a scale which autoscales to the actual data.
func NewScale() *Scale {
	return &Scale{
		Data:     UnsetInterval(),
		Interval: UnsetInterval(),
	}
}

// UpdateData expands the data range of s to cover i.
func (s *Scale) UpdateData(i Interval) {
	s.Data.Update(i.Min)
	s.Data.Update(i.Max)
}

// FixMin fixes the min edge of s to x instead of autoscaling it.
func (s *Scale) FixMin(x float64) { s.fixedMin = &x }

// FixMax fixes the max edge of s to x instead of autoscaling it.
func (s *Scale) FixMax(x float64) { s.fixedMax = &x }

// HasData reports whether any data range was recorded.
func (s *Scale) HasData() bool {
	return !s.Data.Unset()
}

// Autoscale turns the data range into the effective axis range.
// Edges without data and without a fixed value fall back to [-1, 1];
// a degenerate range is widened by one unit on each side so tick
// generation always has room to work with.
func (s *Scale) Autoscale() {
	min, max := s.Data.Min, s.Data.Max
	if s.fixedMin != nil {
		min = *s.fixedMin
	}
	if s.fixedMax != nil {
		max = *s.fixedMax
	}
	if math.IsNaN(min) {
		min = -1
	}
	if math.IsNaN(max) {
		max = 1
	}
	if min == max {
		min, max = min-1, max+1
	}
	s.Min, s.Max = min, max
}

func (s *Scale) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Range=[%.2f:%.2f] Data=[%.2f:%.2f] %q",
		s.Min, s.Max, s.Data.Min, s.Data.Max, s.Title)
}
