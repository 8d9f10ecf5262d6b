package exec

import (
	"fmt"
	"log/slog"

	"github.com/tuannm99/novaexec/internal/record"
)

// Limit yields at most n rows of its child. Once n rows were emitted the
// child is not pulled again. n <= 0 yields nothing.
type Limit struct {
	unary
	n       int
	emitted int
	valid   bool
	done    bool
	err     error
}

func NewLimit(n int, child Operator) *Limit {
	if n < 0 {
		n = 0
	}
	return &Limit{unary: unary{child: child}, n: n}
}

func (*Limit) operator() {}

func (l *Limit) Advance() (bool, error) {
	l.valid = false
	if l.err != nil || l.done || l.emitted >= l.n {
		return false, l.err
	}
	ok, err := l.child.Advance()
	if err != nil {
		l.err = err
		return false, err
	}
	if !ok {
		l.done = true
		return false, nil
	}
	l.emitted++
	l.valid = true
	if l.emitted == l.n {
		slog.Debug("exec: limit reached", "limit", l.n)
	}
	return true, nil
}

func (l *Limit) Current() (record.Row, error) {
	if !l.valid {
		return nil, ErrNoCurrentRow
	}
	return l.child.Current()
}

func (l *Limit) String() string {
	return fmt.Sprintf("Limit(%d)", l.n)
}
