// ABOUTME: Builds the copy-pasteable Google Apps Script that embeds all five
// ABOUTME: tables as literal data, chunked to stay under script size limits.

package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// DefaultChunkSize is the per-table row boundary for splitting data
// functions. Apps Script rejects overly large function bodies.
const DefaultChunkSize = 200

const gsUsageHeader = `/**
 * Import test data for Ralph's Hardware Store Dashboard.
 *
 * HOW TO USE:
 * 1. Open your Google Sheet
 * 2. Go to Extensions > Apps Script
 * 3. Delete any existing code in the editor
 * 4. Paste this entire script
 * 5. Click the Save icon (or Ctrl+S)
 * 6. Select "importAllData" from the function dropdown (top bar)
 * 7. Click Run (play button)
 * 8. On first run, authorize the script when prompted
 * 9. Wait for completion - check your sheets!
 */

`

const gsImportBody = `
  for (const config of sheetsConfig) {
    let sheet = ss.getSheetByName(config.name);
    if (!sheet) {
      sheet = ss.insertSheet(config.name);
    } else {
      sheet.clear();
    }

    if (config.data.length > 0) {
      const numRows = config.data.length;
      const numCols = config.data[0].length;
      sheet.getRange(1, 1, numRows, numCols).setValues(config.data);

      // Format header row
      const headerRange = sheet.getRange(1, 1, 1, numCols);
      headerRange.setFontWeight("bold");
      headerRange.setBackground("#4285f4");
      headerRange.setFontColor("#ffffff");

      // Auto-resize columns
      for (let i = 1; i <= numCols; i++) {
        sheet.autoResizeColumn(i);
      }
    }

    Logger.log("Imported " + (config.data.length - 1) + " rows into " + config.name);
  }

  // Delete default Sheet1 if it exists and is empty
  const sheet1 = ss.getSheetByName("Sheet1") || ss.getSheetByName("Folha1");
  if (sheet1 && sheet1.getLastRow() === 0) {
    ss.deleteSheet(sheet1);
  }

`

// BuildAppsScript renders the full .gs source for the given tables. Tables
// larger than chunkSize rows are split into _chunkN helper functions that
// the parent data function concatenates.
func BuildAppsScript(tables []Table, chunkSize int) ([]byte, error) {
	if chunkSize < 1 {
		return nil, fmt.Errorf("appsscript: chunk size must be at least 1, got %d", chunkSize)
	}

	var b strings.Builder
	b.WriteString(gsUsageHeader)

	b.WriteString("function importAllData() {\n")
	b.WriteString("  const ss = SpreadsheetApp.getActiveSpreadsheet();\n\n")
	b.WriteString("  const sheetsConfig = [\n")
	for _, t := range tables {
		name, err := jsValue(t.Name)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&b, "    { name: %s, data: %s() },\n", name, t.GSFunc)
	}
	b.WriteString("  ];\n")
	b.WriteString(gsImportBody)

	b.WriteString("  SpreadsheetApp.getUi().alert(\n")
	b.WriteString("    \"Import Complete!\\n\\n\" +\n")
	for i, t := range tables {
		sep := " +"
		if i == len(tables)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "    %q + (%s().length - 1) + %q%s\n",
			t.Name+": ", t.GSFunc, " "+t.RowNoun+"\n", sep)
	}
	b.WriteString("  );\n}\n")

	for _, t := range tables {
		if err := writeDataFunc(&b, t, chunkSize); err != nil {
			return nil, err
		}
	}
	return []byte(b.String()), nil
}

// WriteAppsScript builds the script and writes it to path, returning the
// script size in bytes.
func WriteAppsScript(path string, tables []Table, chunkSize int) (int, error) {
	script, err := BuildAppsScript(tables, chunkSize)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, script, 0o644); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return len(script), nil
}

func writeDataFunc(b *strings.Builder, t Table, chunkSize int) error {
	if len(t.Rows) <= chunkSize {
		data := make([][]string, 0, len(t.Rows)+1)
		data = append(data, t.Header)
		data = append(data, t.Rows...)
		encoded, err := jsValue(data)
		if err != nil {
			return err
		}
		fmt.Fprintf(b, "\nfunction %s() {\n  return %s;\n}\n", t.GSFunc, encoded)
		return nil
	}

	header, err := jsValue(t.Header)
	if err != nil {
		return err
	}
	var chunks [][][]string
	for i := 0; i < len(t.Rows); i += chunkSize {
		end := min(i+chunkSize, len(t.Rows))
		chunks = append(chunks, t.Rows[i:end])
	}

	fmt.Fprintf(b, "\nfunction %s() {\n  const header = %s;\n  let rows = [];\n", t.GSFunc, header)
	for i := range chunks {
		fmt.Fprintf(b, "  rows = rows.concat(%s_chunk%d());\n", t.GSFunc, i)
	}
	b.WriteString("  return [header].concat(rows);\n}\n")

	for i, chunk := range chunks {
		encoded, err := jsValue(chunk)
		if err != nil {
			return err
		}
		fmt.Fprintf(b, "\nfunction %s_chunk%d() {\n  return %s;\n}\n", t.GSFunc, i, encoded)
	}
	return nil
}

// jsValue JSON-encodes v without HTML escaping, so the Portuguese text lands
// in the script as raw UTF-8.
func jsValue(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("appsscript: encode data: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
