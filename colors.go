package vizkit

import (
	"fmt"

	"gonum.org/v1/plot/plotutil"
)

// ----------------------------------------------------------------------------
// Color tokens

// Color tokens understood by the chart library.
const (
	// Transparent hides a series element without removing it, used
	// for the gauge's remainder slice.
	Transparent = "transparent"

	// SuccessColor and CriticalColor are the gauge's threshold
	// colors.
	SuccessColor  = "#01b076"
	CriticalColor = "#bf0016"
)

// PaletteColor returns the default color token for series i, cycling
// through the plotutil palette. It backs rows whose metadata carries
// no color.
func PaletteColor(i int) string {
	r, g, b, _ := plotutil.Color(i).RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
