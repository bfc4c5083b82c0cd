package vizkit

// ----------------------------------------------------------------------------
// Legend

// A LegendItem labels one color of the chart legend.
type LegendItem struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Legend deduplicates items by label, keeping first-seen order.
func Legend(items []LegendItem) []LegendItem {
	seen := make(map[string]bool, len(items))
	out := items[:0:0]
	for _, it := range items {
		if seen[it.Label] {
			continue
		}
		seen[it.Label] = true
		out = append(out, it)
	}
	return out
}
