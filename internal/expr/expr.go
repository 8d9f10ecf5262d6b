// Package expr implements the boolean predicates a Selection filters rows with.
package expr

import (
	"fmt"

	"github.com/tuannm99/novaexec/internal/record"
)

// Expr is a pure predicate over one row. The set of variants is closed:
// True, False, Equal and And.
type Expr interface {
	Evaluate(row record.Row) (bool, error)
	String() string
	exprNode()
}

type True struct{}

func (True) exprNode()                         {}
func (True) Evaluate(record.Row) (bool, error) { return true, nil }
func (True) String() string                    { return "TRUE" }

type False struct{}

func (False) exprNode()                         {}
func (False) Evaluate(record.Row) (bool, error) { return false, nil }
func (False) String() string                    { return "FALSE" }

// Equal matches rows whose first column named Column holds Value.
// A row without that column is an error, not a mismatch.
type Equal struct {
	Column string
	Value  record.Value
}

func Eq(column string, v record.Value) *Equal {
	return &Equal{Column: column, Value: v}
}

func (*Equal) exprNode() {}

func (e *Equal) Evaluate(row record.Row) (bool, error) {
	got, err := row.Lookup(e.Column)
	if err != nil {
		return false, err
	}
	return got.Equal(e.Value), nil
}

func (e *Equal) String() string {
	return fmt.Sprintf("%s = %#v", e.Column, e.Value)
}

type And struct {
	Left  Expr
	Right Expr
}

func (*And) exprNode() {}

// Evaluate skips Right when Left is false.
func (e *And) Evaluate(row record.Row) (bool, error) {
	ok, err := e.Left.Evaluate(row)
	if err != nil || !ok {
		return false, err
	}
	return e.Right.Evaluate(row)
}

func (e *And) String() string {
	return fmt.Sprintf("(%s AND %s)", e.Left, e.Right)
}

// AllOf folds exprs into a left-deep And chain. No exprs yields True.
func AllOf(exprs ...Expr) Expr {
	if len(exprs) == 0 {
		return True{}
	}
	out := exprs[0]
	for _, e := range exprs[1:] {
		out = &And{Left: out, Right: e}
	}
	return out
}
