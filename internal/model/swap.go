package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Swap is a single swap row. Timestamp is in epoch seconds.
type Swap struct {
	ID        string `json:"id"`
	AmountUSD string `json:"amountUSD"`
	Timestamp int64  `json:"timestamp"`
	Sender    string `json:"sender"`
}

// UnmarshalJSON accepts the timestamp as either a JSON number or a
// decimal string, since subgraph BigInt fields arrive as strings.
func (s *Swap) UnmarshalJSON(data []byte) error {
	type Alias Swap
	aux := struct {
		Timestamp json.RawMessage `json:"timestamp"`
		*Alias
	}{Alias: (*Alias)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	ts, err := parseEpoch(aux.Timestamp)
	if err != nil {
		return fmt.Errorf("swap %s timestamp: %w", s.ID, err)
	}
	s.Timestamp = ts
	return nil
}

func parseEpoch(raw json.RawMessage) (int64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, nil
	}
	if raw[0] == '"' {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, err
		}
		if text == "" {
			return 0, nil
		}
		return strconv.ParseInt(text, 10, 64)
	}
	return strconv.ParseInt(string(raw), 10, 64)
}
