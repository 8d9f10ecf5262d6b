package exec

import (
	"fmt"
	"strings"

	"github.com/tuannm99/novaexec/internal/record"
)

// Projection keeps only the named columns of each child row, in their
// original order. Names that never match are ignored.
type Projection struct {
	unary
	columns []string
	keep    map[string]struct{}
}

func NewProjection(columns []string, child Operator) *Projection {
	keep := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		keep[c] = struct{}{}
	}
	return &Projection{unary: unary{child: child}, columns: columns, keep: keep}
}

func (*Projection) operator() {}

func (p *Projection) Advance() (bool, error) {
	return p.child.Advance()
}

func (p *Projection) Current() (record.Row, error) {
	row, err := p.child.Current()
	if err != nil {
		return nil, err
	}
	out := make(record.Row, 0, len(p.keep))
	for _, pair := range row {
		if _, ok := p.keep[pair.Name]; ok {
			out = append(out, pair)
		}
	}
	return out, nil
}

func (p *Projection) String() string {
	return fmt.Sprintf("Projection(%s)", strings.Join(p.columns, ", "))
}
