package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tuannm99/novaexec/internal"
	"github.com/tuannm99/novaexec/internal/exec"
	"github.com/tuannm99/novaexec/internal/pipeline"
	"github.com/tuannm99/novaexec/internal/tablefile"
)

// queryFlags are shared by run and step.
type queryFlags struct {
	where   []string
	selects []string
	orderBy string
	limit   int
	explain bool
}

func (f *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.where, "where", "w", nil, "equality filter col=val, repeatable (ANDed)")
	cmd.Flags().StringSliceVarP(&f.selects, "select", "s", nil, "columns to keep, e.g. key,value")
	cmd.Flags().StringVarP(&f.orderBy, "order-by", "o", "", "sort ascending by this column")
	cmd.Flags().IntVarP(&f.limit, "limit", "l", -1, "max rows, negative for no limit")
	cmd.Flags().BoolVar(&f.explain, "explain", false, "print the operator tree first")
}

func (f *queryFlags) query(cmd *cobra.Command) (pipeline.Query, error) {
	q := pipeline.Query{OrderBy: f.orderBy, Limit: f.limit}
	for _, w := range f.where {
		c, err := pipeline.ParseCondition(w)
		if err != nil {
			return q, err
		}
		q.Where = append(q.Where, c)
	}
	if cmd.Flags().Changed("select") {
		q.Select = append([]string{}, f.selects...)
	}
	return q, nil
}

// app carries state resolved before any subcommand runs.
type app struct {
	configPath string
	cfg        *internal.NovaExecConfig
}

func (a *app) setup() error {
	cfg, err := internal.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if _, err := internal.SetupLogger(cfg.Log, os.Stderr); err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// open loads the table and builds the operator tree for it.
func (a *app) open(cmd *cobra.Command, path string, f *queryFlags) (exec.Operator, error) {
	q, err := f.query(cmd)
	if err != nil {
		return nil, err
	}
	tbl, err := tablefile.Load(path)
	if err != nil {
		return nil, err
	}
	slog.Info("table loaded", "path", path, "rows", len(tbl))

	root := pipeline.Build(tbl, q)
	if f.explain {
		fmt.Fprintln(cmd.OutOrStdout(), exec.Explain(root))
	}
	return root, nil
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "novaexec",
		Short: "Pull-based query execution over in-memory tables",
		Long: `novaexec runs a Scan -> Selection -> Sort -> Projection -> Limit operator
tree over a table file (YAML or JSON with "columns" and "rows").

Examples:
  novaexec run data.yaml --where value=a --select key
  novaexec run data.yaml --order-by key --limit 2 --explain
  novaexec step data.yaml --where value=a`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (yaml)")

	root.AddCommand(newRunCmd(a))
	root.AddCommand(newStepCmd(a))
	return root
}
