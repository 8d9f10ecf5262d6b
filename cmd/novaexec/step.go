package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/tuannm99/novaexec/internal/exec"
)

const stepHelp = `commands:
  next | n               advance once and print the current row
  all                    drain the remaining rows
  explain                print the operator tree
  \history               print history
  \help                  show help
  \q | quit | exit       quit`

// stepper drives one operator tree a row at a time.
type stepper struct {
	root    exec.Operator
	hist    *History
	pulled  int
	done    bool
	failure error
}

// handle runs one REPL command and reports whether the session should end.
func (s *stepper) handle(w io.Writer, line string) bool {
	switch strings.TrimSpace(line) {
	case "":
	case `\q`, "quit", "exit":
		return true
	case `\help`:
		fmt.Fprintln(w, stepHelp)
	case `\history`:
		s.hist.Print(w, 50)
	case "explain":
		fmt.Fprintln(w, exec.Explain(s.root))
	case "next", "n":
		s.next(w)
	case "all":
		for !s.done && s.failure == nil {
			s.next(w)
		}
	default:
		fmt.Fprintf(w, "unknown command: %s\n", line)
	}
	return false
}

func (s *stepper) next(w io.Writer) {
	if s.failure != nil {
		fmt.Fprintf(w, "error: %v\n", s.failure)
		return
	}
	if s.done {
		fmt.Fprintln(w, "(exhausted)")
		return
	}
	ok, err := s.root.Advance()
	if err != nil {
		s.failure = err
		slog.Warn("step: advance failed", "pulled", s.pulled, "err", err)
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}
	if !ok {
		s.done = true
		fmt.Fprintf(w, "(exhausted after %d rows)\n", s.pulled)
		return
	}
	row, err := s.root.Current()
	if err != nil {
		s.failure = err
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}
	s.pulled++
	fmt.Fprintf(w, "%d: %s\n", s.pulled, row)
}

func newStepCmd(a *app) *cobra.Command {
	f := &queryFlags{}
	cmd := &cobra.Command{
		Use:   "step <table-file>",
		Short: "Pull rows one at a time from an interactive prompt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := a.open(cmd, args[0], f)
			if err != nil {
				return err
			}

			histPath := a.cfg.Repl.HistoryPath
			if histPath == "" {
				histPath = defaultHistoryPath()
			}
			h := NewHistory(histPath)
			if err := h.Load(); err != nil {
				slog.Warn("step: history not loaded", "path", histPath, "err", err)
			}

			rl, err := readline.NewEx(&readline.Config{
				Prompt:          a.cfg.Repl.Prompt,
				InterruptPrompt: "^C",
				EOFPrompt:       "exit",
				// History decides what is worth keeping; readline bounds its size.
				HistoryLimit:           a.cfg.Repl.HistoryMax,
				DisableAutoSaveHistory: true,
			})
			if err != nil {
				return fmt.Errorf("readline: %w", err)
			}
			defer func() { _ = rl.Close() }()

			for _, line := range h.lines {
				_ = rl.SaveHistory(line)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, `type \help for help`)

			s := &stepper{root: root, hist: h}
			for {
				line, err := rl.Readline()
				if errors.Is(err, readline.ErrInterrupt) {
					continue
				}
				if err != nil {
					// EOF
					return nil
				}
				line = strings.TrimSpace(line)
				if added, err := h.Append(line); err != nil {
					slog.Warn("step: history not saved", "path", histPath, "err", err)
				} else if added {
					_ = rl.SaveHistory(line)
				}
				if s.handle(out, line) {
					return nil
				}
			}
		},
	}
	f.register(cmd)
	return cmd
}
