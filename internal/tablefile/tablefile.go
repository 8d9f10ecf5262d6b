// Package tablefile loads in-memory tables from YAML or JSON fixtures:
//
//	columns: [key, value]
//	rows:
//	  - [0, a]
//	  - [1, a]
package tablefile

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/tuannm99/novaexec/internal/record"
)

var (
	ErrNoColumns = errors.New("tablefile: no columns declared")
	ErrRowWidth  = errors.New("tablefile: row width does not match columns")
)

type document struct {
	Columns []string `mapstructure:"columns"`
	Rows    [][]any  `mapstructure:"rows"`
}

// Load reads a table file; the format follows the extension (.yaml, .yml, .json).
func Load(path string) (record.Table, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("tablefile: read %s: %w", path, err)
	}
	return decode(v)
}

// Parse reads a table document from r. format is "yaml" or "json".
func Parse(r io.Reader, format string) (record.Table, error) {
	v := viper.New()
	v.SetConfigType(strings.TrimPrefix(format, "."))
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("tablefile: parse %s: %w", format, err)
	}
	return decode(v)
}

// FormatOf maps a file name to the format Parse expects.
func FormatOf(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "yml" {
		return "yaml"
	}
	return ext
}

func decode(v *viper.Viper) (record.Table, error) {
	var doc document
	if err := v.Unmarshal(&doc); err != nil {
		return nil, fmt.Errorf("tablefile: decode: %w", err)
	}
	if len(doc.Columns) == 0 {
		return nil, ErrNoColumns
	}

	tbl := make(record.Table, 0, len(doc.Rows))
	for i, cells := range doc.Rows {
		if len(cells) != len(doc.Columns) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrRowWidth, i, len(cells), len(doc.Columns))
		}
		row := make(record.Row, len(cells))
		for j, cell := range cells {
			val, err := record.ValueOf(cell)
			if err != nil {
				return nil, fmt.Errorf("tablefile: row %d column %s: %w", i, doc.Columns[j], err)
			}
			row[j] = record.P(doc.Columns[j], val)
		}
		tbl = append(tbl, row)
	}
	return tbl, nil
}
