// ABOUTME: Tests for the workbook exporter: sheet layout and cell contents
// ABOUTME: read back with excelize.

package export

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	tables := []Table{
		{
			Name:   "Vendas",
			Header: []string{"Date", "OrderID"},
			Rows: [][]string{
				{"2025-12-02", "ORD-0001"},
				{"2025-12-02", "ORD-0002"},
			},
		},
		{
			Name:   "Equipa",
			Header: []string{"Name"},
			Rows:   [][]string{{"Sérgio Pinto"}},
		},
	}

	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := WriteXLSX(path, tables); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Vendas" || sheets[1] != "Equipa" {
		t.Fatalf("sheet list = %v, want [Vendas Equipa]", sheets)
	}

	tests := []struct {
		sheet, cell, want string
	}{
		{"Vendas", "A1", "Date"},
		{"Vendas", "B1", "OrderID"},
		{"Vendas", "B2", "ORD-0001"},
		{"Vendas", "A3", "2025-12-02"},
		{"Equipa", "A2", "Sérgio Pinto"},
	}
	for _, tt := range tests {
		got, err := f.GetCellValue(tt.sheet, tt.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s!%s): %v", tt.sheet, tt.cell, err)
		}
		if got != tt.want {
			t.Errorf("%s!%s = %q, want %q", tt.sheet, tt.cell, got, tt.want)
		}
	}
}
