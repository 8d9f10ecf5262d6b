package exec

import (
	"container/heap"
	"fmt"
	"log/slog"

	"github.com/tuannm99/novaexec/internal/record"
)

// Sort orders its child's rows by one column, ascending by Value.Compare.
//
// The first Advance drains the whole child. The key position is resolved once
// from the first row and reused for every later row, so rows must carry the
// key at the same position; a row too short to have that position fails with
// a LookupError. Rows with equal keys come out in heap order, which is not
// stable.
type Sort struct {
	unary
	key string

	loaded bool
	err    error
	rows   rowHeap
	cur    record.Row
	valid  bool
}

func NewSort(key string, child Operator) *Sort {
	return &Sort{unary: unary{child: child}, key: key}
}

func (*Sort) operator() {}

func (s *Sort) Advance() (bool, error) {
	s.valid = false
	if !s.loaded {
		s.loaded = true
		s.err = s.load()
	}
	if s.err != nil {
		return false, s.err
	}
	if s.rows.Len() == 0 {
		s.cur = nil
		return false, nil
	}
	s.cur = heap.Pop(&s.rows).(keyedRow).row
	s.valid = true
	return true, nil
}

func (s *Sort) load() error {
	pos := -1
	for {
		ok, err := s.child.Advance()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		row, err := s.child.Current()
		if err != nil {
			return err
		}
		if pos < 0 {
			if pos = row.Index(s.key); pos < 0 {
				return fmt.Errorf("exec: sort: %w", &record.LookupError{Column: s.key, Row: row})
			}
		}
		if pos >= len(row) {
			return fmt.Errorf("exec: sort key %q at position %d: %w",
				s.key, pos, &record.LookupError{Column: s.key, Row: row})
		}
		heap.Push(&s.rows, keyedRow{key: row[pos].Value, row: row})
	}
	slog.Debug("exec: sort materialized", "key", s.key, "pos", pos, "rows", s.rows.Len())
	return nil
}

func (s *Sort) Current() (record.Row, error) {
	if !s.valid {
		return nil, ErrNoCurrentRow
	}
	return s.cur, nil
}

func (s *Sort) String() string {
	return fmt.Sprintf("Sort(%s)", s.key)
}

type keyedRow struct {
	key record.Value
	row record.Row
}

// rowHeap is a min-heap on keyedRow.key.
type rowHeap []keyedRow

func (h rowHeap) Len() int           { return len(h) }
func (h rowHeap) Less(i, j int) bool { return h[i].key.Less(h[j].key) }
func (h rowHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *rowHeap) Push(x any) { *h = append(*h, x.(keyedRow)) }

func (h *rowHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = keyedRow{}
	*h = old[:n-1]
	return it
}
