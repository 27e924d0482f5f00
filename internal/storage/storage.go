package storage

import "subgraphScope/internal/model"

// Sink receives fetched snapshots.
type Sink interface {
	PutSnapshot(snapshot model.Snapshot, tables []string) error
}
