package gauge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizkit/vizkit"
)

func row(points int, facets int) vizkit.ResultRow {
	r := vizkit.ResultRow{
		Metadata: vizkit.Metadata{
			Color: "#a35ebf",
			Groups: []vizkit.Group{
				{Type: vizkit.GroupFunction, Value: "percentage", DisplayName: "Slow transactions"},
			},
			UnitsData: map[string]string{"y": vizkit.UnitPercentage},
		},
	}
	for i := 0; i < points; i++ {
		r.Data = append(r.Data, vizkit.DataPoint{"y": 0.6})
	}
	for i := 0; i < facets; i++ {
		r.Metadata.Groups = append(r.Metadata.Groups,
			vizkit.Group{Type: vizkit.GroupFacet, Value: "us", DisplayName: "region"})
	}
	return r
}

func TestValidate(t *testing.T) {
	ok := []vizkit.ResultRow{row(1, 0)}
	assert.True(t, Validate(ok, vizkit.Classify(ok)))

	faceted := []vizkit.ResultRow{row(1, 1)}
	assert.False(t, Validate(faceted, vizkit.Classify(faceted)))

	timeseries := []vizkit.ResultRow{row(3, 0)}
	assert.False(t, Validate(timeseries, vizkit.Classify(timeseries)))

	assert.False(t, Validate(nil, vizkit.Classify(nil)))
}

func TestColor(t *testing.T) {
	cfg := func(threshold string, high bool) Config {
		return Config{CriticalThreshold: threshold, HighValuesAreSuccess: high}
	}

	assert.Equal(t, vizkit.SuccessColor, Color(60, cfg("50", true), "#a35ebf"))
	assert.Equal(t, vizkit.CriticalColor, Color(60, cfg("50", false), "#a35ebf"))
	assert.Equal(t, "#a35ebf", Color(60, cfg("not-a-number", true), "#a35ebf"))
	assert.Equal(t, "#a35ebf", Color(60, cfg("", false), "#a35ebf"))

	// Strict comparison, no equality band.
	assert.Equal(t, vizkit.CriticalColor, Color(50, cfg("50", true), "#a35ebf"))
	assert.Equal(t, vizkit.CriticalColor, Color(50, cfg("50", false), "#a35ebf"))
}

func TestTransform(t *testing.T) {
	rows := []vizkit.ResultRow{row(1, 0)}
	s, err := Transform(rows, Config{CriticalThreshold: "50", HighValuesAreSuccess: true})
	require.NoError(t, err)

	assert.InDelta(t, 60, s.Percent, 1e-9)
	assert.Equal(t, "Slow transactions", s.Label)
	assert.Equal(t, vizkit.UnitPercentage, s.Unit)

	assert.InDelta(t, 60, s.Slices[0].Value, 1e-9)
	assert.Equal(t, vizkit.SuccessColor, s.Slices[0].Color)
	assert.InDelta(t, 40, s.Slices[1].Value, 1e-9)
	assert.Equal(t, vizkit.Transparent, s.Slices[1].Color)
}

func TestTransformKeepsDataColorWithoutThreshold(t *testing.T) {
	rows := []vizkit.ResultRow{row(1, 0)}
	s, err := Transform(rows, Config{})
	require.NoError(t, err)
	assert.Equal(t, "#a35ebf", s.Slices[0].Color)
}

func TestTransformEmpty(t *testing.T) {
	_, err := Transform(nil, Config{})
	assert.ErrorIs(t, err, vizkit.ErrNoSeries)
}
