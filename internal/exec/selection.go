package exec

import (
	"fmt"

	"github.com/tuannm99/novaexec/internal/expr"
	"github.com/tuannm99/novaexec/internal/record"
)

// Selection passes through the child rows for which Pred holds.
type Selection struct {
	unary
	pred expr.Expr

	cur   record.Row
	valid bool
	done  bool
	err   error
}

func NewSelection(pred expr.Expr, child Operator) *Selection {
	return &Selection{unary: unary{child: child}, pred: pred}
}

func (*Selection) operator() {}

// Advance stays exhausted once it returned false, and keeps returning the
// first error once one occurred.
func (s *Selection) Advance() (bool, error) {
	s.valid = false
	if s.err != nil || s.done {
		return false, s.err
	}
	for {
		ok, err := s.child.Advance()
		if err != nil {
			s.err = err
			return false, err
		}
		if !ok {
			s.done = true
			return false, nil
		}
		row, err := s.child.Current()
		if err != nil {
			s.err = err
			return false, err
		}
		match, err := s.pred.Evaluate(row)
		if err != nil {
			s.err = fmt.Errorf("exec: selection %s: %w", s.pred, err)
			return false, s.err
		}
		if match {
			s.cur = row
			s.valid = true
			return true, nil
		}
	}
}

func (s *Selection) Current() (record.Row, error) {
	if !s.valid {
		return nil, ErrNoCurrentRow
	}
	return s.cur, nil
}

func (s *Selection) String() string {
	return fmt.Sprintf("Selection(%s)", s.pred)
}
