package paginate

import (
	"reflect"
	"testing"
)

func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPageSizes(t *testing.T) {
	items := sequence(25)

	if got := Page(items, 0, 10); len(got) != 10 {
		t.Fatalf("cursor 0: expected 10 items, got %d", len(got))
	}
	if got := Page(items, 1, 10); !reflect.DeepEqual(got, sequence(20)[10:]) {
		t.Fatalf("cursor 1 mismatch: %v", got)
	}
	last := Page(items, 2, 10)
	if !reflect.DeepEqual(last, []int{20, 21, 22, 23, 24}) {
		t.Fatalf("cursor 2 mismatch: %v", last)
	}
	if CanGoForward(len(last), 10) {
		t.Fatalf("forward should be disabled on a short page")
	}
	if !CanGoForward(10, 10) {
		t.Fatalf("forward should be enabled on a full page")
	}
}

func TestPageOutOfRange(t *testing.T) {
	items := sequence(25)

	cases := []struct {
		cursor, size int
	}{
		{3, 10},
		{100, 10},
		{-1, 10},
		{0, 0},
		{0, -5},
	}
	for _, tc := range cases {
		got := Page(items, tc.cursor, tc.size)
		if got == nil || len(got) != 0 {
			t.Fatalf("Page(cursor=%d, size=%d) = %v, want empty", tc.cursor, tc.size, got)
		}
	}

	if got := Page([]int(nil), 0, 10); len(got) != 0 {
		t.Fatalf("nil input should produce an empty page")
	}
}

func TestPageRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 25, 100} {
		items := sequence(n)
		var rebuilt []int
		for cursor := 0; ; cursor++ {
			page := Page(items, cursor, 10)
			rebuilt = append(rebuilt, page...)
			if !CanGoForward(len(page), 10) {
				break
			}
		}
		if len(rebuilt) != n {
			t.Fatalf("n=%d: rebuilt %d items", n, len(rebuilt))
		}
		for i, v := range rebuilt {
			if v != items[i] {
				t.Fatalf("n=%d: order mismatch at %d", n, i)
			}
		}
	}
}

func TestCanGoBack(t *testing.T) {
	if CanGoBack(0) {
		t.Fatalf("back should be disabled at cursor 0")
	}
	if !CanGoBack(1) {
		t.Fatalf("back should be enabled at cursor 1")
	}
}
