package token

import (
	"math"
	"strconv"
	"strings"
)

// formatNumber prints v in its shortest round-trip decimal form: 1.5, 0.04, 400.
func formatNumber(v float64) string {
	if v == 0 {
		// avoids "-0"
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// roundTo rounds v half away from zero to the given number of decimals.
func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// roundSignificant rounds v to the given number of significant digits.
func roundSignificant(v float64, digits int) float64 {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	magnitude := int(math.Floor(math.Log10(math.Abs(v))))
	return roundTo(v, digits-1-magnitude)
}

// sizeValue divides a pixel measurement by remSize and appends unit, whatever the unit is.
func sizeValue(px, remSize float64, unit string) string {
	if remSize == 0 {
		return formatNumber(px) + unit
	}
	return formatNumber(px/remSize) + unit
}

// splitNumber separates a literal such as "1.35em" into its number and unit suffix.
func splitNumber(s string) (float64, string, bool) {
	i := len(s)
	for i > 0 && !isNumberByte(s[i-1]) {
		i--
	}
	if i == 0 {
		return 0, "", false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s[:i]), 64)
	if err != nil {
		return 0, "", false
	}
	return v, s[i:], true
}

func isNumberByte(b byte) bool {
	return (b >= '0' && b <= '9') || b == '.'
}
