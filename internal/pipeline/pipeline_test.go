package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuannm99/novaexec/internal/exec"
	"github.com/tuannm99/novaexec/internal/record"
)

func table() record.Table {
	return record.Table{
		{record.P("key", record.Int(2)), record.P("value", record.Text("b"))},
		{record.P("key", record.Int(0)), record.P("value", record.Text("a"))},
		{record.P("key", record.Int(1)), record.P("value", record.Text("a"))},
	}
}

func TestParseCondition(t *testing.T) {
	c, err := ParseCondition("key=1")
	require.NoError(t, err)
	require.Equal(t, "key", c.Column)
	require.True(t, c.Value.Equal(record.Int(1)))

	c, err = ParseCondition(" value = a ")
	require.NoError(t, err)
	require.Equal(t, "value", c.Column)
	require.True(t, c.Value.Equal(record.Text("a")))

	c, err = ParseCondition("value=")
	require.NoError(t, err)
	require.True(t, c.Value.Equal(record.Text("")))

	_, err = ParseCondition("novalue")
	require.ErrorIs(t, err, ErrBadCondition)
	_, err = ParseCondition("=x")
	require.ErrorIs(t, err, ErrBadCondition)
}

func TestBuild_ScanOnly(t *testing.T) {
	root := Build(table(), Query{Limit: -1})
	require.Equal(t, "Scan(rows=3)", exec.Explain(root))

	res, err := exec.Drain(root)
	require.NoError(t, err)
	require.Len(t, res.Rows, 3)
}

func TestBuild_AllStages(t *testing.T) {
	q := Query{
		Where:   []Condition{{Column: "value", Value: record.Text("a")}},
		Select:  []string{"key"},
		OrderBy: "key",
		Limit:   1,
	}
	root := Build(table(), q)
	require.Equal(t, "Limit(1)\n"+
		"-> Projection(key)\n"+
		"  -> Sort(key)\n"+
		"    -> Selection(value = \"a\")\n"+
		"      -> Scan(rows=3)", exec.Explain(root))

	res, err := exec.Drain(root)
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	require.True(t, record.Row{record.P("key", record.Int(0))}.Equal(res.Rows[0]))
}

func TestBuild_EmptySelectKeepsZeroColumns(t *testing.T) {
	res, err := exec.Drain(Build(table(), Query{Select: []string{}, Limit: -1}))
	require.NoError(t, err)
	require.Len(t, res.Rows, 3)
	for _, row := range res.Rows {
		require.Len(t, row, 0)
	}
}

func TestBuild_UnknownColumnInWhere(t *testing.T) {
	q := Query{Where: []Condition{{Column: "nope", Value: record.Int(1)}}, Limit: -1}
	_, err := exec.Drain(Build(table(), q))
	require.ErrorIs(t, err, record.ErrColumnNotFound)
}
