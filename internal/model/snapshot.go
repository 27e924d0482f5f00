package model

import "time"

// Snapshot is the full result of one subgraph fetch. It is replaced
// wholesale on refresh and never mutated after construction.
type Snapshot struct {
	Pools     []Pool    `json:"pools"`
	Tokens    []Token   `json:"tokens"`
	Swaps     []Swap    `json:"swaps"`
	FetchedAt time.Time `json:"fetched_at"`
}
