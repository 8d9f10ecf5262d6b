package record

import (
	"errors"
	"fmt"
	"strings"
)

var ErrColumnNotFound = errors.New("record: column not found")

// LookupError reports a column name that is absent from a row.
type LookupError struct {
	Column string
	Row    Row
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("record: column %q not found in row %s", e.Column, e.Row)
}

func (e *LookupError) Is(target error) bool { return target == ErrColumnNotFound }

// Pair is one named cell of a row.
type Pair struct {
	Name  string
	Value Value
}

func P(name string, v Value) Pair { return Pair{Name: name, Value: v} }

// Row is an ordered sequence of named values. Rows handed out by an operator
// must not be mutated by the receiver.
type Row []Pair

// Table is a pre-materialized ordered sequence of rows.
type Table []Row

// Index returns the position of the first pair named name, or -1.
func (r Row) Index(name string) int {
	for i := range r {
		if r[i].Name == name {
			return i
		}
	}
	return -1
}

// Lookup resolves name by first match.
func (r Row) Lookup(name string) (Value, error) {
	pos := r.Index(name)
	if pos < 0 {
		return Value{}, &LookupError{Column: name, Row: r}
	}
	return r[pos].Value, nil
}

func (r Row) Names() []string {
	out := make([]string, len(r))
	for i := range r {
		out[i] = r[i].Name
	}
	return out
}

func (r Row) Equal(o Row) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		if r[i].Name != o[i].Name || !r[i].Value.Equal(o[i].Value) {
			return false
		}
	}
	return true
}

func (r Row) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range r {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "(%s,%s)", p.Name, p.Value)
	}
	b.WriteByte(']')
	return b.String()
}
