package vizkit

import "encoding/json"

// ----------------------------------------------------------------------------
// ResultRow

// GroupType tags one entry of a row's grouping metadata.
type GroupType string

const (
	// GroupFunction marks a SELECT aggregate (count, average, ...).
	GroupFunction GroupType = "function"
	// GroupFacet marks a GROUP-BY-like dimension.
	GroupFacet GroupType = "facet"
)

// OtherBucket is the catch-all facet bucket the query engine emits for
// values outside the top-N shown individually.
const OtherBucket = "Other"

// A Group is one entry of a row's grouping metadata.
type Group struct {
	Type        GroupType `json:"type"`
	Value       string    `json:"value"`
	DisplayName string    `json:"displayName"`
}

// Identity returns the string identifying this group across rows.
// The display name wins because it distinguishes two uses of the same
// aggregate function over different fields.
func (g Group) Identity() string {
	if g.DisplayName != "" {
		return g.DisplayName
	}
	return g.Value
}

// Metadata describes how the query shaped a row.
type Metadata struct {
	Color     string            `json:"color"`
	Groups    []Group           `json:"groups"`
	UnitsData map[string]string `json:"units_data"`
}

// A DataPoint maps field names to values. After JSON decoding a value
// is a float64, a string or nil.
type DataPoint map[string]interface{}

// Num returns the numeric value of field k. The second return is
// false when the field is absent, null or not a number.
func (p DataPoint) Num(k string) (float64, bool) {
	switch v := p[k].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

// A ResultRow is one unit of query output: an ordered sequence of
// value points plus the grouping metadata of the row. Rows are
// immutable once received; a new set arrives on every poll tick.
type ResultRow struct {
	Data     []DataPoint `json:"data"`
	Metadata Metadata    `json:"metadata"`
}

// Y returns the y value of the row's first data point. Aggregate
// results carry their scalar there.
func (r ResultRow) Y() (float64, bool) {
	if len(r.Data) == 0 {
		return 0, false
	}
	return r.Data[0].Num("y")
}

// FunctionGroup returns the row's first function group.
func (r ResultRow) FunctionGroup() (Group, bool) {
	for _, g := range r.Metadata.Groups {
		if g.Type == GroupFunction {
			return g, true
		}
	}
	return Group{}, false
}

// FacetValues returns the values of the row's facet groups in
// metadata order.
func (r ResultRow) FacetValues() []string {
	var vs []string
	for _, g := range r.Metadata.Groups {
		if g.Type == GroupFacet {
			vs = append(vs, g.Value)
		}
	}
	return vs
}

// YUnit returns the unit tag of the row's y values, UnitUnknown if
// the row carries none.
func (r ResultRow) YUnit() string {
	if u, ok := r.Metadata.UnitsData["y"]; ok {
		return u
	}
	return UnitUnknown
}

// DecodeRows decodes a raw query service payload into a row set.
func DecodeRows(raw []byte) ([]ResultRow, error) {
	var rows []ResultRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
