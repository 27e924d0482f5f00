package storage

import (
	"bytes"
	"strings"
	"testing"

	"subgraphScope/internal/model"
)

func sample() model.Snapshot {
	return model.Snapshot{
		Pools:  []model.Pool{{ID: "p1", TotalValueLockedUSD: "1.5", VolumeUSD: "2"}},
		Tokens: []model.Token{{ID: "t1", Symbol: "UNI"}},
		Swaps:  []model.Swap{{ID: "s1", AmountUSD: "3", Timestamp: 10, Sender: "0x1"}, {ID: "s2", Timestamp: 9}},
	}
}

func TestJsonlWriterAllTables(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJsonlWriter(&buf).PutSnapshot(sample(), nil); err != nil {
		t.Fatalf("put snapshot: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), buf.String())
	}
	want := `{"table":"pools","row":{"id":"p1","totalValueLockedUSD":"1.5","volumeUSD":"2"}}`
	if lines[0] != want {
		t.Fatalf("pool line mismatch:\n%s\n%s", lines[0], want)
	}
	if lines[2] != `{"table":"swaps","row":{"id":"s1","amountUSD":"3","timestamp":10,"sender":"0x1"}}` {
		t.Fatalf("swap line mismatch: %s", lines[2])
	}
}

func TestJsonlWriterSelectedTables(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJsonlWriter(&buf).PutSnapshot(sample(), []string{TableSwaps}); err != nil {
		t.Fatalf("put snapshot: %v", err)
	}
	if strings.Contains(buf.String(), `"pools"`) || strings.Count(buf.String(), "\n") != 2 {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestJsonlWriterUnknownTable(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJsonlWriter(&buf).PutSnapshot(sample(), []string{"positions"}); err == nil {
		t.Fatalf("expected error for unknown table")
	}
	if buf.Len() != 0 {
		t.Fatalf("nothing should be written on error")
	}
}
