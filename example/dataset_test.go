package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-theft-auto/table"
)

func TestMain(m *testing.M) {
	table.SetLogOutput(io.Discard)
	os.Exit(m.Run())
}

func TestDefaultDataset(t *testing.T) {
	ds, err := loadDataset("")
	if err != nil {
		t.Fatalf("loadDataset: %v", err)
	}
	if len(ds.Columns) != 3 || len(ds.Rows) != 5 {
		t.Fatalf("got %d columns, %d rows; want 3, 5", len(ds.Columns), len(ds.Rows))
	}
	if ds.Columns[0].Title != "Name" || ds.Columns[0].Width != 160 {
		t.Errorf("first column = %+v", ds.Columns[0])
	}
}

func TestLoadDatasetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pets.yaml")
	data := "columns:\n  - {title: Pet, width: 80}\nrows:\n  - [Rex]\n  - [Tom]\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	ds, err := loadDataset(path)
	if err != nil {
		t.Fatalf("loadDataset: %v", err)
	}
	if len(ds.Rows) != 2 || ds.Rows[1][0] != "Tom" {
		t.Errorf("rows = %v", ds.Rows)
	}
}

func TestLoadDatasetTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pets.toml")
	data := `rows = [["Rex", "3"], ["Tom", "5"]]

[[columns]]
title = "Pet"
width = 80.0

[[columns]]
title = "Age"
width = 40.0
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	ds, err := loadDataset(path)
	if err != nil {
		t.Fatalf("loadDataset: %v", err)
	}
	if len(ds.Columns) != 2 || ds.Columns[1].Title != "Age" || ds.Columns[1].Width != 40 {
		t.Errorf("columns = %+v", ds.Columns)
	}
	if len(ds.Rows) != 2 || ds.Rows[1][0] != "Tom" {
		t.Errorf("rows = %v", ds.Rows)
	}
}

func TestParseDatasetErrors(t *testing.T) {
	tests := map[string]string{
		"no columns": "rows:\n  - [a]\n",
		"bad yaml":   "columns: [",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := parseDataset([]byte(data), false); err == nil {
				t.Error("parseDataset succeeded")
			}
		})
	}

	if _, err := loadDataset(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("loadDataset of missing file succeeded")
	}
}

func TestFillSkipsMalformedRows(t *testing.T) {
	ds, err := parseDataset([]byte("columns:\n  - {title: A, width: 40}\n  - {title: B, width: 40}\nrows:\n  - [a1, b1]\n  - [only]\n  - [a3, b3]\n"), false)
	if err != nil {
		t.Fatalf("parseDataset: %v", err)
	}

	doc := table.NewDocument()
	tbl := table.New[int](doc, doc.Root(), ds.columns()...)

	err = ds.fill(tbl, nil)
	if !errors.Is(err, table.ErrColumnCount) {
		t.Fatalf("fill error = %v, want ErrColumnCount", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len = %d, want 2", tbl.Len())
	}

	row, _ := tbl.Row(1)
	cell, _ := row.Cell(0)
	if got := cell.KeyValue(); got.Key() != "a3" || got.Value() != 2 {
		t.Errorf("cell = (%q, %d), want (a3, 2)", got.Key(), got.Value())
	}
}
