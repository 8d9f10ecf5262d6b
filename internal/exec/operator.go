// Package exec implements the pull-based operator tree.
//
// Every operator exposes Advance and Current. A caller drives the root by
// calling Advance until it returns false; each call cascades down the tree and
// pulls from children only as far as needed to produce one row. Operators are
// forward-only, single-pass, and not safe for concurrent use.
package exec

import (
	"errors"
	"strings"

	"github.com/tuannm99/novaexec/internal/record"
)

// ErrNoCurrentRow is returned by Current when the latest Advance did not
// return true.
var ErrNoCurrentRow = errors.New("exec: no current row")

// Operator is implemented by Scan, Selection, Projection, Sort and Limit.
type Operator interface {
	// Advance positions the operator on its next row. Once it returns false
	// it keeps returning false.
	Advance() (bool, error)
	// Current returns the row the operator is positioned on.
	Current() (record.Row, error)
	String() string

	operator()
}

// unary is embedded by operators that own exactly one child.
type unary struct {
	child Operator
}

func (u *unary) Child() Operator { return u.child }

// Explain renders the tree rooted at op, one operator per line.
func Explain(op Operator) string {
	var b strings.Builder
	depth := 0
	for op != nil {
		if depth > 0 {
			b.WriteByte('\n')
			b.WriteString(strings.Repeat("  ", depth-1))
			b.WriteString("-> ")
		}
		b.WriteString(op.String())
		op = childOf(op)
		depth++
	}
	return b.String()
}

func childOf(op Operator) Operator {
	if c, ok := op.(interface{ Child() Operator }); ok {
		return c.Child()
	}
	return nil
}
