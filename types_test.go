package novaexec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuannm99/novaexec"
)

func TestFacade_ConcreteScenarios(t *testing.T) {
	rows := novaexec.Table{
		{novaexec.P("key", novaexec.Text("0")), novaexec.P("value", novaexec.Text("a"))},
		{novaexec.P("key", novaexec.Text("1")), novaexec.P("value", novaexec.Text("a"))},
		{novaexec.P("key", novaexec.Text("2")), novaexec.P("value", novaexec.Text("b"))},
	}

	res, err := novaexec.Drain(novaexec.NewSelection(
		novaexec.AllOf(novaexec.Eq("key", novaexec.Text("1")), novaexec.Eq("value", novaexec.Text("a"))),
		novaexec.NewScan(rows)))
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	require.True(t, rows[1].Equal(res.Rows[0]))

	res, err = novaexec.Drain(novaexec.NewProjection([]string{"value"}, novaexec.NewScan(rows)))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "a", "b"}, []string{
		res.Rows[0][0].Value.String(), res.Rows[1][0].Value.String(), res.Rows[2][0].Value.String(),
	})

	lim := novaexec.NewLimit(1, novaexec.NewScan(rows))
	res, err = novaexec.Drain(lim)
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	_, err = lim.Current()
	require.ErrorIs(t, err, novaexec.ErrNoCurrentRow)

	_, err = novaexec.Eq("missing", novaexec.Text("x")).Evaluate(rows[0])
	require.ErrorIs(t, err, novaexec.ErrColumnNotFound)
}
