package format

import "testing"

func TestRelativeTime(t *testing.T) {
	const now = int64(1_700_000_000)

	cases := []struct {
		name    string
		elapsed int64
		want    string
	}{
		{"zero", 0, "0 seconds ago"},
		{"seconds", 45, "45 seconds ago"},
		{"seconds upper edge", 59, "59 seconds ago"},
		{"minute boundary", 60, "1 minutes ago"},
		{"minutes round down", 89, "1 minutes ago"},
		{"minutes round half up", 90, "2 minutes ago"},
		{"minutes upper edge", 3599, "60 minutes ago"},
		{"hour boundary", 3600, "1 hours ago"},
		{"hours upper edge", 86399, "24 hours ago"},
		{"day boundary", 86400, "approximately 1 days ago"},
		{"days", 10 * 86400, "approximately 10 days ago"},
		{"days upper edge", 30*86400 - 1, "approximately 30 days ago"},
		{"month boundary", 30 * 86400, "approximately 1 months ago"},
		{"months", 200 * 86400, "approximately 7 months ago"},
		{"months upper edge", 365*86400 - 1, "approximately 12 months ago"},
		{"year boundary", 31_536_000, "approximately 1 years ago"},
		{"years", 3 * 365 * 86400, "approximately 3 years ago"},
		{"future event", -5, "-5 seconds ago"},
	}

	for _, tc := range cases {
		got := RelativeTime(now, now-tc.elapsed)
		if got != tc.want {
			t.Fatalf("%s: elapsed %d: got %q want %q", tc.name, tc.elapsed, got, tc.want)
		}
	}
}

func TestRoundDivHalfUp(t *testing.T) {
	cases := []struct {
		value, unit, want int64
	}{
		{5, 2, 3},
		{-5, 2, -2},
		{7, 2, 4},
		{1799, 3600, 0},
		{1800, 3600, 1},
	}
	for _, tc := range cases {
		if got := roundDiv(tc.value, tc.unit); got != tc.want {
			t.Fatalf("roundDiv(%d, %d) = %d, want %d", tc.value, tc.unit, got, tc.want)
		}
	}
}
