package exec

import (
	"github.com/tuannm99/novaexec/internal/record"
)

// Result is a fully drained operator tree.
type Result struct {
	// Columns is taken from the first row; empty when no row was produced.
	Columns []string
	Rows    []record.Row
}

// Drain advances op until it is exhausted and collects every row. An error
// aborts the drain; rows pulled before it are returned alongside.
func Drain(op Operator) (*Result, error) {
	res := &Result{}
	for {
		ok, err := op.Advance()
		if err != nil {
			return res, err
		}
		if !ok {
			break
		}
		row, err := op.Current()
		if err != nil {
			return res, err
		}
		if len(res.Rows) == 0 {
			res.Columns = row.Names()
		}
		res.Rows = append(res.Rows, row)
	}
	return res, nil
}
