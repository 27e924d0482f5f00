package explorer

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// DefaultBaseURL is the block explorer used when none is configured.
const DefaultBaseURL = "https://etherscan.io"

// Links builds block explorer URLs for addresses and transactions.
type Links struct {
	base string
}

// New validates baseURL and returns a link builder for it.
func New(baseURL string) (*Links, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse explorer url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("explorer url must be absolute: %s", baseURL)
	}
	return &Links{base: strings.TrimRight(baseURL, "/")}, nil
}

// Address links to an account or token page. Non-hex ids are passed
// through escaped so the row still renders.
func (l *Links) Address(id string) string {
	id = strings.TrimSpace(id)
	if common.IsHexAddress(id) {
		id = strings.ToLower(common.HexToAddress(id).Hex())
	}
	return l.base + "/address/" + url.PathEscape(id)
}

// Tx links to a transaction page. Swap ids carry a "#logIndex" suffix,
// which is dropped.
func (l *Links) Tx(id string) string {
	hash, err := TxHash(id)
	if err != nil {
		return l.base + "/tx/" + url.PathEscape(strings.TrimSpace(id))
	}
	return l.base + "/tx/" + hash.Hex()
}

// TxHash extracts the transaction hash from a swap id of the form
// "<hash>#<logIndex>" or a bare hash.
func TxHash(id string) (common.Hash, error) {
	id = strings.TrimSpace(id)
	if idx := strings.IndexByte(id, '#'); idx >= 0 {
		id = id[:idx]
	}
	data, err := hexutil.Decode(id)
	if err != nil {
		return common.Hash{}, fmt.Errorf("invalid tx hash: %s", id)
	}
	if len(data) != common.HashLength {
		return common.Hash{}, fmt.Errorf("invalid tx hash length: %s", id)
	}
	return common.BytesToHash(data), nil
}
