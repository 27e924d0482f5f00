package subgraph

import (
	"time"

	"subgraphScope/internal/model"
)

type dashboardResponse struct {
	Pools  []model.Pool  `json:"pools"`
	Tokens []model.Token `json:"tokens"`
	Swaps  []model.Swap  `json:"swaps"`
}

// buildSnapshot copies the decoded lists so the snapshot never aliases
// the response buffers. Nil lists become empty.
func buildSnapshot(resp dashboardResponse, fetchedAt time.Time) model.Snapshot {
	snapshot := model.Snapshot{
		Pools:     make([]model.Pool, 0, len(resp.Pools)),
		Tokens:    make([]model.Token, 0, len(resp.Tokens)),
		Swaps:     make([]model.Swap, 0, len(resp.Swaps)),
		FetchedAt: fetchedAt.UTC(),
	}
	snapshot.Pools = append(snapshot.Pools, resp.Pools...)
	snapshot.Tokens = append(snapshot.Tokens, resp.Tokens...)
	snapshot.Swaps = append(snapshot.Swaps, resp.Swaps...)
	return snapshot
}
