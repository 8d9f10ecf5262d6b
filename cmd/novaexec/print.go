package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/tuannm99/novaexec/internal/exec"
	"github.com/tuannm99/novaexec/internal/record"
)

// printResult writes rows as an aligned table. Columns come from the first
// row; a row missing one of them prints an empty cell. maxRows <= 0 prints all.
func printResult(w io.Writer, res *exec.Result, maxRows int) {
	rows := res.Rows
	if maxRows > 0 && len(rows) > maxRows {
		rows = rows[:maxRows]
	}

	grid := make([][]string, 0, len(rows))
	for _, row := range rows {
		grid = append(grid, cells(row, res.Columns))
	}
	widths := columnWidths(res.Columns, grid)

	if len(res.Columns) > 0 {
		writeLine(w, res.Columns, widths, " | ")
		rule := make([]string, len(widths))
		for i, n := range widths {
			rule[i] = strings.Repeat("-", n)
		}
		fmt.Fprintln(w, strings.Join(rule, "-+-"))
	}
	for _, line := range grid {
		writeLine(w, line, widths, " | ")
	}

	if len(rows) < len(res.Rows) {
		fmt.Fprintf(w, "(%d of %d rows)\n", len(rows), len(res.Rows))
		return
	}
	fmt.Fprintf(w, "(%d rows)\n", len(res.Rows))
}

// cells renders row in column order, resolving each column by name.
func cells(row record.Row, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		if v, err := row.Lookup(c); err == nil {
			out[i] = v.String()
		}
	}
	return out
}

func columnWidths(cols []string, grid [][]string) []int {
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = len(c)
	}
	for _, line := range grid {
		for i, s := range line {
			widths[i] = max(widths[i], len(s))
		}
	}
	return widths
}

func writeLine(w io.Writer, values []string, widths []int, sep string) {
	padded := make([]string, len(values))
	for i, s := range values {
		padded[i] = fmt.Sprintf("%-*s", widths[i], s)
	}
	fmt.Fprintln(w, strings.Join(padded, sep))
}
