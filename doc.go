// Package vizkit implements the data pipeline behind a small set of
// dashboard visualization widgets: a circular progress gauge, a
// stacked bar chart and a scatter plot.
//
// # Rows and groupings
//
// The input is a set of pre-aggregated result rows delivered by an
// external query service. Each row carries loosely typed value points
// plus grouping metadata describing how the query shaped the row:
//   - function groups   One per SELECT aggregate (count, average, ...).
//   - facet groups      One per GROUP-BY-like dimension.
//
// Rows of queries without aggregation carry plain attribute keys in
// their value points instead.
//
// The pipeline runs in four stages, all pure functions of the latest
// row set and the widget configuration:
//  1. Classify     Derive the distinct aggregate, facet and attribute
//     identities of the row set.
//  2. Validate     Per widget, accept or reject the classified shape.
//  3. Transform    Fold the rows into a normalized series with
//     coordinates, colors, labels and unit tags.
//  4. Format       Derive ticks, truncated category labels, bar
//     widths and legend entries from the series and the
//     available pixel dimensions.
//
// Drawing the resulting series, polling the query service, sizing the
// container and rendering empty or error states are the host
// platform's concern; this package only exposes the render-ready
// values and the collaborator interfaces it consumes.
package vizkit
