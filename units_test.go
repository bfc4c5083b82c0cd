package vizkit

import "testing"

var formatValueTests = []struct {
	unit string
	v    float64
	want string
}{
	{UnitPercentage, 42.5, "42.5%"},
	{UnitPercentage, 50, "50%"},
	{UnitBytes, 1500, "1.5 kB"},
	{UnitBytesPerS, 1500, "1.5 kB/s"},
	{UnitMs, 12, "12 ms"},
	{UnitSeconds, 3, "3 s"},
	{UnitCount, 950, "950"},
	{UnitCount, 12300, "12.3 k"},
	{UnitTimestamp, 1609459200000, "00:00:00"},
	{UnitUnknown, 3.14, "3.14"},
	{"SOME_FUTURE_UNIT", 7, "7"},
}

func TestFormatValue(t *testing.T) {
	for _, tc := range formatValueTests {
		t.Run(tc.unit, func(t *testing.T) {
			if got := FormatValue(tc.unit, tc.v); got != tc.want {
				t.Errorf("FormatValue(%q, %g) = %q, want %q",
					tc.unit, tc.v, got, tc.want)
			}
		})
	}
}
