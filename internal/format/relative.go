package format

import (
	"fmt"
	"math"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerMonth  = 30 * secondsPerDay
	secondsPerYear   = 365 * secondsPerDay
)

// RelativeTime renders the distance between two epoch-second instants as
// "N seconds ago", "approximately N days ago" and so on. Months and years
// are fixed 30 and 365 day spans.
func RelativeTime(now, event int64) string {
	elapsed := now - event

	switch {
	case elapsed < secondsPerMinute:
		return fmt.Sprintf("%d seconds ago", roundDiv(elapsed, 1))
	case elapsed < secondsPerHour:
		return fmt.Sprintf("%d minutes ago", roundDiv(elapsed, secondsPerMinute))
	case elapsed < secondsPerDay:
		return fmt.Sprintf("%d hours ago", roundDiv(elapsed, secondsPerHour))
	case elapsed < secondsPerMonth:
		return fmt.Sprintf("approximately %d days ago", roundDiv(elapsed, secondsPerDay))
	case elapsed < secondsPerYear:
		return fmt.Sprintf("approximately %d months ago", roundDiv(elapsed, secondsPerMonth))
	default:
		return fmt.Sprintf("approximately %d years ago", roundDiv(elapsed, secondsPerYear))
	}
}

// roundDiv divides and rounds half up, so -2.5 becomes -2.
func roundDiv(value, unit int64) int64 {
	return int64(math.Floor(float64(value)/float64(unit) + 0.5))
}
