// Package gauge implements the circular progress gauge widget: a
// single percentage value drawn as a colored arc plus a transparent
// remainder.
package gauge

import (
	"strconv"

	"github.com/vizkit/vizkit"
)

// Config is the externally supplied gauge configuration.
type Config struct {
	CriticalThreshold    string `json:"criticalThreshold"`
	HighValuesAreSuccess bool   `json:"highValuesAreSuccess"`
}

// Guidance is the corrective copy for the unsupported-query state.
var Guidance = vizkit.Guidance{
	Title:   "The gauge needs a single non-faceted percentage value",
	Example: "SELECT percentage(count(*), WHERE duration < 0.1) FROM Transaction",
}

// Validate reports whether the classified rows are chartable as a
// gauge: exactly one aggregate, no facets and one data point per row,
// i.e. a non-timeseries result.
func Validate(rows []vizkit.ResultRow, c vizkit.Classification) bool {
	if len(c.Aggregates) != 1 || len(c.Facets) != 0 {
		return false
	}
	if len(rows) == 0 {
		return false
	}
	for _, r := range rows {
		if len(r.Data) != 1 {
			return false
		}
	}
	return true
}

// Accepts is the Validate predicate in the form vizkit.Evaluate
// consumes.
func Accepts(rows []vizkit.ResultRow) bool {
	return Validate(rows, vizkit.Classify(rows))
}

// A Slice is one arc of the gauge series.
type Slice struct {
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// A Series is the two-slice gauge series: the colored progress arc
// and the transparent remainder.
type Series struct {
	Percent float64
	Label   string
	Unit    string
	Slices  [2]Slice
}

// Transform folds the single row's single data point into the gauge
// series. The y value is a fraction and is scaled to a percentage.
func Transform(rows []vizkit.ResultRow, cfg Config) (*Series, error) {
	if len(rows) == 0 {
		return nil, vizkit.ErrNoSeries
	}
	row := rows[0]
	y, ok := row.Y()
	if !ok {
		return nil, vizkit.ErrNoSeries
	}

	percent := y * 100
	label := ""
	if g, ok := row.FunctionGroup(); ok {
		label = g.DisplayName
	}

	s := &Series{
		Percent: percent,
		Label:   label,
		Unit:    row.YUnit(),
	}
	s.Slices[0] = Slice{Value: percent, Color: Color(percent, cfg, row.Metadata.Color)}
	s.Slices[1] = Slice{Value: 100 - percent, Color: vizkit.Transparent}
	return s, nil
}

// Color resolves the gauge color. A threshold that does not parse as
// a number leaves the data-provided color untouched; otherwise the
// strict comparison against the threshold picks the success or
// critical color, with the direction given by highValuesAreSuccess.
func Color(percent float64, cfg Config, dataColor string) string {
	t, err := strconv.ParseFloat(cfg.CriticalThreshold, 64)
	if err != nil {
		return dataColor
	}
	if cfg.HighValuesAreSuccess {
		if percent > t {
			return vizkit.SuccessColor
		}
		return vizkit.CriticalColor
	}
	if percent < t {
		return vizkit.SuccessColor
	}
	return vizkit.CriticalColor
}
