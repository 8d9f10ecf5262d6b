// Package pipeline composes the fixed operator chain the CLI runs:
// Scan -> Selection -> Sort -> Projection -> Limit. Stages that are not
// requested are left out. Nothing is reordered or optimized.
package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tuannm99/novaexec/internal/exec"
	"github.com/tuannm99/novaexec/internal/expr"
	"github.com/tuannm99/novaexec/internal/record"
)

var ErrBadCondition = errors.New("pipeline: condition must look like column=value")

// Condition is one equality filter; all conditions of a Query are ANDed.
type Condition struct {
	Column string
	Value  record.Value
}

type Query struct {
	Where []Condition
	// Select lists the columns to keep; nil keeps every column.
	Select  []string
	OrderBy string
	// Limit caps the output; negative means unbounded.
	Limit int
}

// ParseCondition turns "col=val" into a Condition. The value is an Int when it
// parses as a base-10 integer, otherwise Text.
func ParseCondition(s string) (Condition, error) {
	col, val, ok := strings.Cut(s, "=")
	col = strings.TrimSpace(col)
	if !ok || col == "" {
		return Condition{}, fmt.Errorf("%w: %q", ErrBadCondition, s)
	}
	return Condition{Column: col, Value: record.ParseValue(strings.TrimSpace(val))}, nil
}

func (q Query) predicate() expr.Expr {
	preds := make([]expr.Expr, 0, len(q.Where))
	for _, c := range q.Where {
		preds = append(preds, expr.Eq(c.Column, c.Value))
	}
	return expr.AllOf(preds...)
}

// Build returns the root of the operator tree for q over table.
func Build(table record.Table, q Query) exec.Operator {
	var root exec.Operator = exec.NewScan(table)
	if len(q.Where) > 0 {
		root = exec.NewSelection(q.predicate(), root)
	}
	if q.OrderBy != "" {
		root = exec.NewSort(q.OrderBy, root)
	}
	if q.Select != nil {
		root = exec.NewProjection(q.Select, root)
	}
	if q.Limit >= 0 {
		root = exec.NewLimit(q.Limit, root)
	}
	return root
}
