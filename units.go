package vizkit

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// ----------------------------------------------------------------------------
// Units

// Unit tags as delivered in a row's units_data mapping.
const (
	UnitUnknown    = "UNKNOWN"
	UnitCount      = "COUNT"
	UnitPercentage = "PERCENTAGE"
	UnitBytes      = "BYTES"
	UnitBytesPerS  = "BYTES_PER_SECOND"
	UnitBits       = "BITS"
	UnitBitsPerS   = "BITS_PER_SECOND"
	UnitSeconds    = "SECONDS"
	UnitMs         = "MS"
	UnitTimestamp  = "TIMESTAMP"
)

// FormatValue renders v according to its unit tag. Unknown tags fall
// back to plain numeric formatting: a bare number is always readable
// while an empty tick label is indistinguishable from a missing tick.
func FormatValue(unit string, v float64) string {
	switch unit {
	case UnitBytes:
		return signedBytes(v, "")
	case UnitBytesPerS:
		return signedBytes(v, "/s")
	case UnitBits:
		return humanize.Ftoa(v) + " b"
	case UnitBitsPerS:
		return humanize.Ftoa(v) + " b/s"
	case UnitPercentage:
		return humanize.Ftoa(v) + "%"
	case UnitSeconds:
		return humanize.Ftoa(v) + " s"
	case UnitMs:
		return humanize.Ftoa(v) + " ms"
	case UnitCount:
		return strings.TrimSpace(humanize.SIWithDigits(v, 1, ""))
	case UnitTimestamp:
		// Timestamps arrive as milliseconds since the epoch.
		ms := int64(v)
		t := time.Unix(ms/1000, (ms%1000)*int64(time.Millisecond)).UTC()
		return t.Format("15:04:05")
	default:
		return humanize.Ftoa(v)
	}
}

func signedBytes(v float64, suffix string) string {
	if v < 0 {
		return "-" + humanize.Bytes(uint64(-v)) + suffix
	}
	return humanize.Bytes(uint64(v)) + suffix
}
