package main

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/go-theft-auto/table"
)

//go:embed people.yaml
var defaultDataset []byte

type columnSpec struct {
	Title string  `yaml:"title" toml:"title"`
	Width float32 `yaml:"width" toml:"width"`
}

// dataset is the demo table contents as read from YAML or TOML.
type dataset struct {
	Columns []columnSpec `yaml:"columns" toml:"columns"`
	Rows    [][]string   `yaml:"rows" toml:"rows"`
}

// loadDataset reads path, or the embedded dataset when path is empty.
// Files ending in .toml are read as TOML, anything else as YAML.
func loadDataset(path string) (*dataset, error) {
	if path == "" {
		return parseDataset(defaultDataset, false)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return parseDataset(data, strings.EqualFold(filepath.Ext(path), ".toml"))
}

func parseDataset(data []byte, isTOML bool) (*dataset, error) {
	var ds dataset
	var err error
	if isTOML {
		_, err = toml.Decode(string(data), &ds)
	} else {
		err = yaml.Unmarshal(data, &ds)
	}
	if err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if len(ds.Columns) == 0 {
		return nil, errors.New("parse dataset: no columns")
	}
	return &ds, nil
}

func (ds *dataset) columns() []table.Column {
	cols := make([]table.Column, len(ds.Columns))
	for i, c := range ds.Columns {
		cols[i] = table.NewColumn(c.Title, c.Width)
	}
	return cols
}

// fill pushes every row of ds into t. Each cell carries the dataset row index
// as its value. onClick, if non-nil, builds the click handler for a row.
// Rows with the wrong number of fields are skipped and reported together.
func (ds *dataset) fill(t *table.Table[int], onClick func(row []string) func()) error {
	var errs []error
	for i, fields := range ds.Rows {
		values := make([]table.KeyValue[int], len(fields))
		for j, f := range fields {
			values[j] = table.NewKeyValue(f, i)
		}

		var handler func()
		if onClick != nil {
			handler = onClick(fields)
		}
		if err := t.Push(values, handler); err != nil {
			errs = append(errs, fmt.Errorf("row %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func describeRow(fields []string) string {
	return strings.Join(fields, " | ")
}
