package vizkit

import "errors"

// ----------------------------------------------------------------------------
// Render states

// ErrNoSeries is returned by a transformer when the row set matches
// neither of its modes even though the shape validator passed.
var ErrNoSeries = errors.New("vizkit: query produced no chartable series")

// State is the terminal outcome of one render pass. Every non-OK
// state maps to a host-rendered view; nothing is retried internally.
type State int

const (
	// StateOK means a series was produced and can be drawn.
	StateOK State = iota
	// StateLoading means the query collaborator has not delivered
	// data yet.
	StateLoading
	// StateMissingConfig means no query/account pair was supplied.
	StateMissingConfig
	// StateQueryError means the query itself was rejected.
	StateQueryError
	// StateNoData means the query resolved to zero rows.
	StateNoData
	// StateUnsupportedShape means the rows fail the widget's shape
	// validator.
	StateUnsupportedShape
	// StateEmptySeries means rows existed but every point was
	// dropped during null filtering.
	StateEmptySeries
)

// String returns the name of s.
func (s State) String() string {
	return []string{
		"ok", "loading", "missing-config", "query-error",
		"no-data", "unsupported-shape", "empty-series",
	}[int(s)]
}

// Guidance is the corrective copy a widget supplies for its
// unsupported-query and missing-config views.
type Guidance struct {
	Title   string
	Example string
}

// Evaluate decides the pre-transform state of a render pass: the
// configured queries, the latest poll result and the widget's shape
// acceptance predicate. Transformation must only run on StateOK;
// StateEmptySeries is decided by the caller after transforming.
func Evaluate(queries []NRQLQuery, res PollResult, accepts func([]ResultRow) bool) State {
	if len(queries) == 0 || queries[0].Query == "" || queries[0].AccountID == 0 {
		return StateMissingConfig
	}
	if res.Err != nil {
		return StateQueryError
	}
	if res.Loading || res.Rows == nil {
		return StateLoading
	}
	if len(res.Rows) == 0 {
		return StateNoData
	}
	if !accepts(res.Rows) {
		return StateUnsupportedShape
	}
	return StateOK
}
