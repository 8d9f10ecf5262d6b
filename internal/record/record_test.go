package record

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValue_EqualRequiresSameKind(t *testing.T) {
	require.True(t, Int(1).Equal(Int(1)))
	require.True(t, Text("a").Equal(Text("a")))
	require.False(t, Int(1).Equal(Text("1")))
	require.False(t, Text("a").Equal(Text("b")))
}

func TestValue_Compare(t *testing.T) {
	cases := []struct {
		a, b Value
		want int
	}{
		{Int(1), Int(2), -1},
		{Int(2), Int(2), 0},
		{Int(-5), Int(-9), 1},
		{Text("a"), Text("b"), -1},
		{Text("b"), Text("a"), 1},
		{Text("x"), Text("x"), 0},
		// ints sort before texts regardless of payload
		{Int(100), Text("0"), -1},
		{Text(""), Int(-100), 1},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.a.Compare(tc.b), "%#v vs %#v", tc.a, tc.b)
	}
}

func TestValueOf(t *testing.T) {
	v, err := ValueOf(7)
	require.NoError(t, err)
	require.True(t, v.Equal(Int(7)))

	v, err = ValueOf(float64(3))
	require.NoError(t, err)
	require.True(t, v.Equal(Int(3)))

	v, err = ValueOf("abc")
	require.NoError(t, err)
	n, ok := v.AsText()
	require.True(t, ok)
	require.Equal(t, "abc", n)

	_, err = ValueOf(1.5)
	require.ErrorIs(t, err, ErrUnsupportedType)

	_, err = ValueOf(true)
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestParseValue(t *testing.T) {
	require.Equal(t, KindInt, ParseValue("42").Kind())
	require.Equal(t, KindInt, ParseValue("-3").Kind())
	require.Equal(t, KindText, ParseValue("4x").Kind())
	require.Equal(t, KindText, ParseValue("").Kind())
}

func TestRow_LookupFirstMatch(t *testing.T) {
	row := Row{P("k", Int(1)), P("v", Text("a")), P("k", Int(2))}

	v, err := row.Lookup("k")
	require.NoError(t, err)
	require.True(t, v.Equal(Int(1)))
	require.Equal(t, 0, row.Index("k"))
	require.Equal(t, 1, row.Index("v"))
}

func TestRow_LookupMissing(t *testing.T) {
	row := Row{P("k", Int(1))}

	_, err := row.Lookup("missing")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrColumnNotFound))

	var le *LookupError
	require.ErrorAs(t, err, &le)
	require.Equal(t, "missing", le.Column)
	require.Contains(t, err.Error(), `"missing"`)
}

func TestRow_EqualAndString(t *testing.T) {
	a := Row{P("key", Text("0")), P("value", Text("a"))}
	b := Row{P("key", Text("0")), P("value", Text("a"))}
	c := Row{P("key", Int(0)), P("value", Text("a"))}

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(a[:1]))
	require.Equal(t, "[(key,0) (value,a)]", a.String())
	require.Equal(t, []string{"key", "value"}, a.Names())
	require.Equal(t, int64(0), c[0].Value.Any())
}
