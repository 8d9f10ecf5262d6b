package record

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the closed set of scalar types a Value can hold.
type Kind uint8

const (
	KindInt  Kind = iota // int64
	KindText             // UTF-8
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "INT"
	case KindText:
		return "TEXT"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

var ErrUnsupportedType = errors.New("record: unsupported value type")

// Value is a scalar of the closed Int/Text union. The zero Value is Int(0).
type Value struct {
	kind Kind
	i    int64
	s    string
}

func Int(v int64) Value   { return Value{kind: KindInt, i: v} }
func Text(s string) Value { return Value{kind: KindText, s: s} }

// ValueOf converts a decoded Go scalar into a Value. Floats are accepted only
// when they hold an integral number, since JSON decoders produce float64.
func ValueOf(v any) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case float64:
		if x != math.Trunc(x) || x < math.MinInt64 || x >= math.MaxInt64 {
			return Value{}, fmt.Errorf("%w: non-integral number %v", ErrUnsupportedType, x)
		}
		return Int(int64(x)), nil
	case string:
		return Text(x), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

// ParseValue reads s as an Int when it is a base-10 integer, otherwise as Text.
func ParseValue(s string) Value {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(n)
	}
	return Text(s)
}

func (v Value) Kind() Kind { return v.kind }

// AsInt returns the payload of an Int value.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsText returns the payload of a Text value.
func (v Value) AsText() (string, bool) { return v.s, v.kind == KindText }

func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	if v.kind == KindInt {
		return v.i == o.i
	}
	return v.s == o.s
}

// Compare orders values naturally within a kind. Across kinds every Int sorts
// before every Text.
func (v Value) Compare(o Value) int {
	if v.kind != o.kind {
		if v.kind < o.kind {
			return -1
		}
		return 1
	}
	if v.kind == KindInt {
		switch {
		case v.i < o.i:
			return -1
		case v.i > o.i:
			return 1
		}
		return 0
	}
	return strings.Compare(v.s, o.s)
}

func (v Value) Less(o Value) bool { return v.Compare(o) < 0 }

// Any returns the payload as int64 or string.
func (v Value) Any() any {
	if v.kind == KindInt {
		return v.i
	}
	return v.s
}

func (v Value) String() string {
	if v.kind == KindInt {
		return strconv.FormatInt(v.i, 10)
	}
	return v.s
}

// GoString quotes text so rows print unambiguously in test failures.
func (v Value) GoString() string {
	if v.kind == KindInt {
		return v.String()
	}
	return strconv.Quote(v.s)
}
