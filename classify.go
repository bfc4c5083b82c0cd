package vizkit

import "sort"

// ----------------------------------------------------------------------------
// Classification

// A Classification lists the distinct grouping identities of a row
// set. It is recomputed from row metadata on every render and never
// cached across renders.
type Classification struct {
	// Aggregates holds the distinct function group identities in
	// first-seen order. The order drives axis assignment in the
	// scatter widget.
	Aggregates []string

	// Facets holds the distinct facet group identities in first-seen
	// order.
	Facets []string

	// Attributes holds the distinct plain attribute keys of rows
	// without aggregation, sorted lexically. Point maps carry no
	// declaration order, so sorting keeps axis assignment
	// deterministic.
	Attributes []string
}

// Classify scans the grouping metadata and value points of rows.
// An empty row set yields an empty classification.
func Classify(rows []ResultRow) Classification {
	var c Classification
	seenAgg := make(map[string]bool)
	seenFacet := make(map[string]bool)
	attrs := make(map[string]bool)

	for _, r := range rows {
		aggregated := false
		for _, g := range r.Metadata.Groups {
			switch g.Type {
			case GroupFunction:
				aggregated = true
				if id := g.Identity(); !seenAgg[id] {
					seenAgg[id] = true
					c.Aggregates = append(c.Aggregates, id)
				}
			case GroupFacet:
				if id := g.Identity(); !seenFacet[id] {
					seenFacet[id] = true
					c.Facets = append(c.Facets, id)
				}
			}
		}
		if aggregated {
			continue
		}
		for _, p := range r.Data {
			for k := range p {
				attrs[k] = true
			}
		}
	}

	for k := range attrs {
		c.Attributes = append(c.Attributes, k)
	}
	sort.Strings(c.Attributes)

	return c
}

// ----------------------------------------------------------------------------
// Form

// Form is the fundamental shape of a classified row set.
type Form int

const (
	// FormUnknown is an empty or unclassifiable row set.
	FormUnknown Form = iota
	// FormAggregate is aggregates without facets.
	FormAggregate
	// FormFacetedAggregate is aggregates split by one or more facets.
	FormFacetedAggregate
	// FormAttribute is raw attributes without aggregation.
	FormAttribute
)

// String returns the name of f.
func (f Form) String() string {
	return []string{"unknown", "aggregate", "faceted-aggregate", "attribute"}[int(f)]
}

// Form collapses c into its fundamental shape.
func (c Classification) Form() Form {
	switch {
	case len(c.Aggregates) > 0 && len(c.Facets) > 0:
		return FormFacetedAggregate
	case len(c.Aggregates) > 0:
		return FormAggregate
	case len(c.Attributes) > 0:
		return FormAttribute
	}
	return FormUnknown
}
