package server

import (
	"net/url"
	"testing"

	"subgraphScope/internal/dashboard"
	"subgraphScope/internal/paginate"
)

func TestParseCursors(t *testing.T) {
	values, _ := url.ParseQuery("pools=3&tokens=x&swaps=-2")
	got := parseCursors(values)
	want := paginate.Cursors{Pools: 3, Tokens: 0, Swaps: 0}
	if got != want {
		t.Fatalf("cursors mismatch: %+v != %+v", got, want)
	}
}

func TestPagerDataKeepsOtherTables(t *testing.T) {
	cursors := paginate.Cursors{Pools: 1, Tokens: 4, Swaps: 2}
	data := newPagerData(cursors, tableTokens, dashboard.Pager{Cursor: 4, Prev: 3, Next: 5})

	if data.PrevQuery != "?pools=1&swaps=2&tokens=3" {
		t.Fatalf("prev query: %s", data.PrevQuery)
	}
	if data.NextQuery != "?pools=1&swaps=2&tokens=5" {
		t.Fatalf("next query: %s", data.NextQuery)
	}
}
