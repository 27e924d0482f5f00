package paginate

// Cursor is a zero-based page index for one table.
type Cursor int

// Prev steps back one page, stopping at zero.
func (c Cursor) Prev() Cursor {
	if !CanGoBack(int(c)) {
		return 0
	}
	return c - 1
}

// Next steps forward one page when the current page is full.
func (c Cursor) Next(currentPageItemCount, pageSize int) Cursor {
	if c < 0 {
		return 0
	}
	if !CanGoForward(currentPageItemCount, pageSize) {
		return c
	}
	return c + 1
}

// Cursors holds the independent page index of each dashboard table.
type Cursors struct {
	Pools  Cursor `json:"pools"`
	Tokens Cursor `json:"tokens"`
	Swaps  Cursor `json:"swaps"`
}

// Normalize clamps negative cursors to zero.
func (c Cursors) Normalize() Cursors {
	if c.Pools < 0 {
		c.Pools = 0
	}
	if c.Tokens < 0 {
		c.Tokens = 0
	}
	if c.Swaps < 0 {
		c.Swaps = 0
	}
	return c
}
