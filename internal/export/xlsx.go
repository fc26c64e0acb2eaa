// ABOUTME: Writes the five tables into one .xlsx workbook, one sheet per
// ABOUTME: table, with the same styled header row the Apps Script applies.

package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes all tables to a single workbook at path. The first table
// replaces the default sheet so the workbook carries exactly one sheet per
// table.
func WriteXLSX(path string, tables []Table) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4285F4"}},
	})
	if err != nil {
		return fmt.Errorf("xlsx: header style: %w", err)
	}

	for i, t := range tables {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", t.Name); err != nil {
				return fmt.Errorf("xlsx: rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(t.Name); err != nil {
				return fmt.Errorf("xlsx: sheet %s: %w", t.Name, err)
			}
		}

		if err := writeSheet(f, t, headerStyle); err != nil {
			return fmt.Errorf("xlsx: sheet %s: %w", t.Name, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx: save %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, t Table, headerStyle int) error {
	for col, name := range t.Header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(t.Name, cell, name); err != nil {
			return err
		}
	}
	lastHeaderCell, err := excelize.CoordinatesToCellName(len(t.Header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(t.Name, "A1", lastHeaderCell, headerStyle); err != nil {
		return err
	}

	for rowIdx, row := range t.Rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(t.Name, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}
