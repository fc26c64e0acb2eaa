// ABOUTME: CSV serialization for the generated tables: UTF-8, comma-separated,
// ABOUTME: header row first. Also loads the files back for the export commands.

package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// WriteCSVDir writes every table to dir as <Filename>, creating dir if
// needed. Any filesystem failure is fatal to the run.
func WriteCSVDir(dir string, tables []Table) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, t := range tables {
		if err := writeCSVFile(filepath.Join(dir, t.Filename), t); err != nil {
			return fmt.Errorf("write %s: %w", t.Filename, err)
		}
	}
	return nil
}

func writeCSVFile(path string, t Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Header); err != nil {
		return err
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

// LoadCSVDir reads the five canonical CSV files from dir into tables.
// Each file must carry the expected header in the expected order.
func LoadCSVDir(dir string) ([]Table, error) {
	tables := Specs()
	for i := range tables {
		path := filepath.Join(dir, tables[i].Filename)
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", tables[i].Filename, err)
		}
		records, err := csv.NewReader(f).ReadAll()
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", tables[i].Filename, err)
		}
		if len(records) == 0 {
			return nil, fmt.Errorf("%s: file is empty", tables[i].Filename)
		}
		if err := checkHeader(tables[i], records[0]); err != nil {
			return nil, err
		}
		tables[i].Rows = records[1:]
	}
	return tables, nil
}

func checkHeader(t Table, got []string) error {
	if len(got) != len(t.Header) {
		return fmt.Errorf("%s: expected %d columns, found %d", t.Filename, len(t.Header), len(got))
	}
	for i, want := range t.Header {
		if got[i] != want {
			return fmt.Errorf("%s: column %d is %q, expected %q", t.Filename, i, got[i], want)
		}
	}
	return nil
}
