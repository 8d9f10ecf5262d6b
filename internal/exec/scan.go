package exec

import (
	"fmt"

	"github.com/tuannm99/novaexec/internal/record"
)

// Scan yields the rows of a table in order. It never mutates the table.
type Scan struct {
	table record.Table
	pos   int // -1 before the first row, len(table) once exhausted
}

func NewScan(table record.Table) *Scan {
	return &Scan{table: table, pos: -1}
}

func (*Scan) operator() {}

func (s *Scan) Advance() (bool, error) {
	if s.pos < len(s.table) {
		s.pos++
	}
	return s.pos < len(s.table), nil
}

func (s *Scan) Current() (record.Row, error) {
	if s.pos < 0 || s.pos >= len(s.table) {
		return nil, ErrNoCurrentRow
	}
	return s.table[s.pos], nil
}

func (s *Scan) String() string {
	return fmt.Sprintf("Scan(rows=%d)", len(s.table))
}
