package model

// Pool is a V3 pool row as reported by the subgraph.
type Pool struct {
	ID                  string `json:"id"`
	TotalValueLockedUSD string `json:"totalValueLockedUSD"`
	VolumeUSD           string `json:"volumeUSD"`
}
