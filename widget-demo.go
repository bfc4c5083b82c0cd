//go:build ignore
// +build ignore

package main

import (
	"fmt"

	"github.com/vizkit/vizkit"
	"github.com/vizkit/vizkit/gauge"
	"github.com/vizkit/vizkit/scatter"
	"github.com/vizkit/vizkit/stackedbar"
)

// Drives the three widget pipelines with canned rows and prints the
// render-ready values a host would hand to its chart library.
func main() {
	demoGauge()
	demoStackedBar()
	demoScatter()
}

func demoGauge() {
	rows := []vizkit.ResultRow{{
		Data: []vizkit.DataPoint{{"y": 0.62}},
		Metadata: vizkit.Metadata{
			Color: "#a35ebf",
			Groups: []vizkit.Group{
				{Type: vizkit.GroupFunction, Value: "percentage", DisplayName: "Fast transactions"},
			},
			UnitsData: map[string]string{"y": vizkit.UnitPercentage},
		},
	}}

	queries := []vizkit.NRQLQuery{{
		AccountID: 1,
		Query:     "SELECT percentage(count(*), WHERE duration < 0.1) FROM Transaction",
	}}
	state := vizkit.Evaluate(queries, vizkit.PollResult{Rows: rows}, gauge.Accepts)
	fmt.Println("gauge state:", state)

	s, err := gauge.Transform(rows, gauge.Config{
		CriticalThreshold:    "50",
		HighValuesAreSuccess: true,
	})
	if err != nil {
		fmt.Println("gauge:", err)
		return
	}
	fmt.Printf("gauge: %s %s, slices %v\n",
		s.Label, vizkit.FormatValue(s.Unit, s.Percent), s.Slices)
}

func demoStackedBar() {
	var rows []vizkit.ResultRow
	for _, rec := range []struct {
		region, host string
		y            float64
	}{
		{"us", "a", 5}, {"us", "b", 7}, {"eu", "a", 3},
	} {
		rows = append(rows, vizkit.ResultRow{
			Data: []vizkit.DataPoint{{"y": rec.y}},
			Metadata: vizkit.Metadata{
				Groups: []vizkit.Group{
					{Type: vizkit.GroupFunction, Value: "average", DisplayName: "Avg duration"},
					{Type: vizkit.GroupFacet, Value: rec.region, DisplayName: "region"},
					{Type: vizkit.GroupFacet, Value: rec.host, DisplayName: "host"},
				},
				UnitsData: map[string]string{"y": vizkit.UnitMs},
			},
		})
	}

	cfg := stackedbar.Config{Other: vizkit.Other{Visible: true}}
	c, err := stackedbar.Transform(rows, cfg)
	if err != nil {
		fmt.Println("stackedbar:", err)
		return
	}

	width, height := 600.0, 400.0
	fmt.Println("bars:", c.Bars, "bar width:", vizkit.BarWidth(width, c.BarCount()))
	fmt.Println("legend:", c.Legend())
	fmt.Println("y axis:", c.YScale(cfg).Props(height, vizkit.TickSpacingY))
	for _, seg := range c.Segments {
		fmt.Printf("  segment %s (%s): %v\n", seg.Label, seg.Color, seg.Points)
	}
}

func demoScatter() {
	rows := []vizkit.ResultRow{
		{Data: []vizkit.DataPoint{
			{"duration": 1.0, "externalDuration": 0.2},
			{"duration": 2.0, "externalDuration": nil},
			{"duration": 0.5, "externalDuration": 0.1},
		}},
	}

	s, err := scatter.Transform(rows, vizkit.Classify(rows), scatter.Config{})
	if err != nil {
		fmt.Println("scatter:", err)
		return
	}
	fmt.Printf("scatter %s/%s: %d points, x %v, y %v\n",
		s.X.Name, s.Y.Name, len(s.Points), s.XRange, s.YRange)
}
