package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"subgraphScope/internal/model"
)

// Table names accepted by PutSnapshot.
const (
	TablePools  = "pools"
	TableTokens = "tokens"
	TableSwaps  = "swaps"
)

// AllTables lists every table in output order.
var AllTables = []string{TablePools, TableTokens, TableSwaps}

type record struct {
	Table string      `json:"table"`
	Row   interface{} `json:"row"`
}

// JsonlWriter writes snapshot rows as JSON lines, one row per line.
type JsonlWriter struct {
	w  io.Writer
	mu sync.Mutex
}

func NewJsonlWriter(w io.Writer) *JsonlWriter {
	return &JsonlWriter{w: w}
}

// PutSnapshot writes the rows of the named tables in snapshot order.
// Nil tables means all of them.
func (s *JsonlWriter) PutSnapshot(snapshot model.Snapshot, tables []string) error {
	if len(tables) == 0 {
		tables = AllTables
	}
	for _, table := range tables {
		switch table {
		case TablePools, TableTokens, TableSwaps:
		default:
			return fmt.Errorf("unknown table: %s", table)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	writer := bufio.NewWriter(s.w)
	for _, table := range tables {
		var err error
		switch table {
		case TablePools:
			err = writeRows(writer, table, snapshot.Pools)
		case TableTokens:
			err = writeRows(writer, table, snapshot.Tokens)
		case TableSwaps:
			err = writeRows(writer, table, snapshot.Swaps)
		}
		if err != nil {
			return err
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

func writeRows[T any](writer *bufio.Writer, table string, rows []T) error {
	for _, row := range rows {
		line, err := json.Marshal(record{Table: table, Row: row})
		if err != nil {
			return fmt.Errorf("marshal %s row: %w", table, err)
		}
		if _, err := writer.Write(line); err != nil {
			return fmt.Errorf("write %s row: %w", table, err)
		}
		if err := writer.WriteByte('\n'); err != nil {
			return fmt.Errorf("write newline: %w", err)
		}
	}
	return nil
}
