package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// History is the step REPL's command log. Consecutive repeats are stored
// once, so a run of `n` presses costs a single line. Trimming to the
// configured size is left to readline's HistoryLimit.
type History struct {
	path  string
	lines []string
}

func NewHistory(path string) *History {
	return &History{path: path}
}

func (h *History) last() string {
	if len(h.lines) == 0 {
		return ""
	}
	return h.lines[len(h.lines)-1]
}

// Load reads the history file; a missing file is an empty history.
func (h *History) Load() error {
	if h.path == "" {
		return nil
	}
	f, err := os.Open(h.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	defer func() { _ = f.Close() }()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if cmd := strings.TrimSpace(sc.Text()); cmd != "" && cmd != h.last() {
			h.lines = append(h.lines, cmd)
		}
	}
	return sc.Err()
}

// Append records cmd and reports whether it was new, i.e. not empty and
// not a repeat of the previous command.
func (h *History) Append(cmd string) (bool, error) {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" || cmd == h.last() {
		return false, nil
	}
	h.lines = append(h.lines, cmd)
	if h.path == "" {
		return true, nil
	}

	if err := os.MkdirAll(filepath.Dir(h.path), 0o755); err != nil {
		return true, fmt.Errorf("history: %w", err)
	}
	f, err := os.OpenFile(h.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return true, fmt.Errorf("history: %w", err)
	}
	defer func() { _ = f.Close() }()

	_, err = fmt.Fprintln(f, cmd)
	return true, err
}

// Print writes the last n commands, or all of them when n <= 0.
func (h *History) Print(w io.Writer, n int) {
	start := 0
	if n > 0 && n < len(h.lines) {
		start = len(h.lines) - n
	}
	for i := start; i < len(h.lines); i++ {
		fmt.Fprintf(w, "%5d  %s\n", i+1, h.lines[i])
	}
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".novaexec_history"
	}
	return filepath.Join(home, ".novaexec_history")
}
