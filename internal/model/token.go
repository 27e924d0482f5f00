package model

// Token is an ERC20 token row as reported by the subgraph.
type Token struct {
	ID               string `json:"id"`
	Symbol           string `json:"symbol"`
	TotalValueLocked string `json:"totalValueLocked"`
	VolumeUSD        string `json:"volumeUSD"`
}
