package main

import (
	"github.com/spf13/cobra"

	"github.com/tuannm99/novaexec/internal/exec"
)

func newRunCmd(a *app) *cobra.Command {
	f := &queryFlags{}
	cmd := &cobra.Command{
		Use:   "run <table-file>",
		Short: "Drain the operator tree and print every row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := a.open(cmd, args[0], f)
			if err != nil {
				return err
			}
			res, err := exec.Drain(root)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res, a.cfg.Output.MaxRows)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}
