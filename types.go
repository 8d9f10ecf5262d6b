// Package novaexec is the top-level facade for the pull-based execution
// engine. It re-exports the value model, predicates and operators so callers
// outside this module can build and drive operator trees.
package novaexec

import (
	"github.com/tuannm99/novaexec/internal/exec"
	"github.com/tuannm99/novaexec/internal/expr"
	"github.com/tuannm99/novaexec/internal/record"
)

type (
	Value       = record.Value
	Pair        = record.Pair
	Row         = record.Row
	Table       = record.Table
	LookupError = record.LookupError

	Expr  = expr.Expr
	True  = expr.True
	False = expr.False
	Equal = expr.Equal
	And   = expr.And

	Operator   = exec.Operator
	Scan       = exec.Scan
	Selection  = exec.Selection
	Projection = exec.Projection
	Sort       = exec.Sort
	Limit      = exec.Limit
	Result     = exec.Result
)

var (
	ErrColumnNotFound = record.ErrColumnNotFound
	ErrNoCurrentRow   = exec.ErrNoCurrentRow
)

func Int(v int64) Value                    { return record.Int(v) }
func Text(s string) Value                  { return record.Text(s) }
func P(name string, v Value) Pair          { return record.P(name, v) }
func Eq(column string, v Value) *Equal     { return expr.Eq(column, v) }
func AllOf(exprs ...Expr) Expr             { return expr.AllOf(exprs...) }
func NewScan(t Table) *Scan                { return exec.NewScan(t) }
func NewSort(key string, c Operator) *Sort { return exec.NewSort(key, c) }
func NewLimit(n int, c Operator) *Limit    { return exec.NewLimit(n, c) }

func NewSelection(pred Expr, child Operator) *Selection {
	return exec.NewSelection(pred, child)
}

func NewProjection(columns []string, child Operator) *Projection {
	return exec.NewProjection(columns, child)
}

// Drain runs op to exhaustion and collects its rows.
func Drain(op Operator) (*Result, error) { return exec.Drain(op) }

// Explain renders the operator tree rooted at op.
func Explain(op Operator) string { return exec.Explain(op) }
