package vizkit

// ----------------------------------------------------------------------------
// Host collaborators
//
// The widgets live inside a dashboard host platform which polls the
// query service, tracks the container size and renders the charts.
// Those collaborators stay outside this module; the types here are
// the full surface the pipeline consumes from and exposes to them.

// A PollResult is what the query collaborator delivers on each poll
// tick. Rows is nil while the first poll is in flight.
type PollResult struct {
	Rows    []ResultRow
	Loading bool
	Err     error
}

// A DataSource yields query results on each poll tick.
type DataSource interface {
	Poll(accountID int, query string) PollResult
}

// A Sizer reports the current pixel dimensions of the widget's
// container, recomputed on resize.
type Sizer interface {
	Size() (width, height int)
}

// An NRQLQuery pairs a query with the account to run it against.
// Widgets use exactly the first configured entry.
type NRQLQuery struct {
	AccountID int    `json:"accountId"`
	Query     string `json:"query"`
}

// Other configures whether the reserved overflow bucket is shown.
type Other struct {
	Visible bool `json:"visible"`
}

// YAxisConfig carries the value-axis overrides of the stacked bar
// widget. Nil Min/Max mean autoscale to the data.
type YAxisConfig struct {
	Label string   `json:"label,omitempty"`
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
}

// ColorAccessor maps a datum index to its color token. The chart
// library calls it per datum while drawing.
type ColorAccessor func(i int) string

// LabelAccessor maps a datum index to its tooltip or axis label.
type LabelAccessor func(i int) string
