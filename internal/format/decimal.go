package format

import "regexp"

var twoPlaces = regexp.MustCompile(`^(\d+\.\d{2})`)

// TruncateDecimal cuts a decimal string to two fractional digits without
// rounding. Values with fewer than two fractional digits pass through.
func TruncateDecimal(value string) string {
	match := twoPlaces.FindStringSubmatch(value)
	if match == nil {
		return value
	}
	return match[1]
}
