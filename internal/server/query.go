package server

import (
	"net/url"
	"strconv"

	"subgraphScope/internal/dashboard"
	"subgraphScope/internal/paginate"
)

const (
	tablePools  = "pools"
	tableTokens = "tokens"
	tableSwaps  = "swaps"
)

// parseCursors reads the per-table page index from the query string.
// Missing or malformed values mean page zero.
func parseCursors(values url.Values) paginate.Cursors {
	return paginate.Cursors{
		Pools:  parseCursor(values.Get(tablePools)),
		Tokens: parseCursor(values.Get(tableTokens)),
		Swaps:  parseCursor(values.Get(tableSwaps)),
	}.Normalize()
}

func parseCursor(raw string) paginate.Cursor {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return paginate.Cursor(n)
}

func encodeCursors(c paginate.Cursors) string {
	values := url.Values{}
	values.Set(tablePools, strconv.Itoa(int(c.Pools)))
	values.Set(tableTokens, strconv.Itoa(int(c.Tokens)))
	values.Set(tableSwaps, strconv.Itoa(int(c.Swaps)))
	return "?" + values.Encode()
}

// withCursor returns c with one table's cursor replaced.
func withCursor(c paginate.Cursors, table string, cursor paginate.Cursor) paginate.Cursors {
	switch table {
	case tablePools:
		c.Pools = cursor
	case tableTokens:
		c.Tokens = cursor
	case tableSwaps:
		c.Swaps = cursor
	}
	return c
}

type pagerData struct {
	Table     string
	Pager     dashboard.Pager
	PrevQuery string
	NextQuery string
}

func newPagerData(c paginate.Cursors, table string, pager dashboard.Pager) pagerData {
	return pagerData{
		Table:     table,
		Pager:     pager,
		PrevQuery: encodeCursors(withCursor(c, table, pager.Prev)),
		NextQuery: encodeCursors(withCursor(c, table, pager.Next)),
	}
}
