package dashboard

import (
	"time"

	"subgraphScope/internal/explorer"
	"subgraphScope/internal/format"
	"subgraphScope/internal/model"
	"subgraphScope/internal/paginate"
)

// View is the render tree for one page of the dashboard.
type View struct {
	Status    Status           `json:"status"`
	Cursors   paginate.Cursors `json:"cursors"`
	Pools     Table[PoolRow]   `json:"pools"`
	Tokens    Table[TokenRow]  `json:"tokens"`
	Swaps     Table[SwapRow]   `json:"swaps"`
	FetchedAt time.Time        `json:"fetched_at"`
}

// Table is one paginated table.
type Table[R any] struct {
	Pager Pager `json:"pager"`
	Rows  []R   `json:"rows"`
}

// Pager describes the navigation controls of a table.
type Pager struct {
	Cursor       paginate.Cursor `json:"cursor"`
	Prev         paginate.Cursor `json:"prev"`
	Next         paginate.Cursor `json:"next"`
	CanGoBack    bool            `json:"can_go_back"`
	CanGoForward bool            `json:"can_go_forward"`
}

type PoolRow struct {
	ID     string `json:"id"`
	TVL    string `json:"tvl_usd"`
	Volume string `json:"volume_usd"`
}

type TokenRow struct {
	ID      string `json:"id"`
	ShortID string `json:"short_id"`
	Link    string `json:"link"`
	Symbol  string `json:"symbol"`
	TVL     string `json:"tvl"`
	Volume  string `json:"volume_usd"`
}

type SwapRow struct {
	ID      string `json:"id"`
	ShortID string `json:"short_id"`
	Link    string `json:"link"`
	Amount  string `json:"amount_usd"`
	Age     string `json:"age"`
	Sender  string `json:"sender"`
}

// RenderOptions carries the inputs of Render that are not dashboard state.
type RenderOptions struct {
	PageSize int
	Now      time.Time
	Links    *explorer.Links
}

// Render maps a snapshot and cursors to a view. Only a ready dashboard
// has rows; loading and error render empty tables.
func Render(status Status, snapshot model.Snapshot, cursors paginate.Cursors, opts RenderOptions) View {
	if opts.PageSize <= 0 {
		opts.PageSize = paginate.DefaultPageSize
	}
	if opts.Links == nil {
		opts.Links, _ = explorer.New(explorer.DefaultBaseURL)
	}
	cursors = cursors.Normalize()

	view := View{
		Status:  status,
		Cursors: cursors,
		Pools:   Table[PoolRow]{Rows: []PoolRow{}},
		Tokens:  Table[TokenRow]{Rows: []TokenRow{}},
		Swaps:   Table[SwapRow]{Rows: []SwapRow{}},
	}
	if status != StatusReady {
		return view
	}
	view.FetchedAt = snapshot.FetchedAt

	pools := paginate.Page(snapshot.Pools, int(cursors.Pools), opts.PageSize)
	view.Pools.Pager = newPager(cursors.Pools, len(pools), opts.PageSize)
	for _, pool := range pools {
		view.Pools.Rows = append(view.Pools.Rows, PoolRow{
			ID:     pool.ID,
			TVL:    format.TruncateDecimal(pool.TotalValueLockedUSD),
			Volume: format.TruncateDecimal(pool.VolumeUSD),
		})
	}

	tokens := paginate.Page(snapshot.Tokens, int(cursors.Tokens), opts.PageSize)
	view.Tokens.Pager = newPager(cursors.Tokens, len(tokens), opts.PageSize)
	for _, token := range tokens {
		view.Tokens.Rows = append(view.Tokens.Rows, TokenRow{
			ID:      token.ID,
			ShortID: format.ShortID(token.ID),
			Link:    opts.Links.Address(token.ID),
			Symbol:  token.Symbol,
			TVL:     format.TruncateDecimal(token.TotalValueLocked),
			Volume:  format.TruncateDecimal(token.VolumeUSD),
		})
	}

	now := opts.Now.Unix()
	swaps := paginate.Page(snapshot.Swaps, int(cursors.Swaps), opts.PageSize)
	view.Swaps.Pager = newPager(cursors.Swaps, len(swaps), opts.PageSize)
	for _, swap := range swaps {
		view.Swaps.Rows = append(view.Swaps.Rows, SwapRow{
			ID:      swap.ID,
			ShortID: format.ShortID(swap.ID),
			Link:    opts.Links.Tx(swap.ID),
			Amount:  format.TruncateDecimal(swap.AmountUSD),
			Age:     format.RelativeTime(now, swap.Timestamp),
			Sender:  swap.Sender,
		})
	}

	return view
}

func newPager(cursor paginate.Cursor, count, pageSize int) Pager {
	return Pager{
		Cursor:       cursor,
		Prev:         cursor.Prev(),
		Next:         cursor.Next(count, pageSize),
		CanGoBack:    paginate.CanGoBack(int(cursor)),
		CanGoForward: paginate.CanGoForward(count, pageSize),
	}
}
