// ABOUTME: Tests for the Apps Script builder: chunk splitting, function
// ABOUTME: naming, and raw UTF-8 encoding of the embedded data.

package export

import (
	"fmt"
	"strings"
	"testing"
)

func smallTable(name, gsFunc string, rows int) Table {
	t := Table{
		Name:    name,
		GSFunc:  gsFunc,
		RowNoun: "rows",
		Header:  []string{"A", "B"},
	}
	for i := 0; i < rows; i++ {
		t.Rows = append(t.Rows, []string{fmt.Sprintf("a%d", i), fmt.Sprintf("b%d", i)})
	}
	return t
}

func TestBuildAppsScriptSmallTableInlined(t *testing.T) {
	script, err := BuildAppsScript([]Table{smallTable("Vendas", "getVendasData", 3)}, 200)
	if err != nil {
		t.Fatalf("BuildAppsScript: %v", err)
	}
	src := string(script)

	if !strings.Contains(src, "function importAllData()") {
		t.Error("missing importAllData entry function")
	}
	if !strings.Contains(src, "function getVendasData()") {
		t.Error("missing data function")
	}
	if strings.Contains(src, "_chunk") {
		t.Error("small table was chunked")
	}
	if !strings.Contains(src, `["A","B"]`) {
		t.Error("header row not embedded")
	}
}

func TestBuildAppsScriptChunksLargeTable(t *testing.T) {
	script, err := BuildAppsScript([]Table{smallTable("Vendas", "getVendasData", 450)}, 200)
	if err != nil {
		t.Fatalf("BuildAppsScript: %v", err)
	}
	src := string(script)

	// 450 rows at 200 per chunk: three chunk functions.
	for i := 0; i < 3; i++ {
		want := fmt.Sprintf("function getVendasData_chunk%d()", i)
		if !strings.Contains(src, want) {
			t.Errorf("missing %s", want)
		}
	}
	if strings.Contains(src, "getVendasData_chunk3") {
		t.Error("built more chunks than the data needs")
	}
	if !strings.Contains(src, "rows = rows.concat(getVendasData_chunk2());") {
		t.Error("parent function does not concatenate the last chunk")
	}
	// Every row must survive chunking.
	if !strings.Contains(src, `["a449","b449"]`) {
		t.Error("last row missing from the script")
	}
}

func TestBuildAppsScriptChunkBoundaryExact(t *testing.T) {
	// Exactly chunkSize rows stays a single inline function.
	script, err := BuildAppsScript([]Table{smallTable("Stock", "getStockData", 200)}, 200)
	if err != nil {
		t.Fatalf("BuildAppsScript: %v", err)
	}
	if strings.Contains(string(script), "_chunk") {
		t.Error("table of exactly chunk-size rows was chunked")
	}
}

func TestBuildAppsScriptKeepsUTF8(t *testing.T) {
	tbl := Table{
		Name:    "Equipa",
		GSFunc:  "getEquipaData",
		RowNoun: "attendance records",
		Header:  []string{"Name"},
		Rows:    [][]string{{"Sérgio Pinto"}, {"Construções Silva & Filhos"}},
	}
	script, err := BuildAppsScript([]Table{tbl}, 200)
	if err != nil {
		t.Fatalf("BuildAppsScript: %v", err)
	}
	src := string(script)

	if !strings.Contains(src, "Sérgio Pinto") {
		t.Error("accented name was escaped instead of kept as UTF-8")
	}
	if !strings.Contains(src, "Construções Silva & Filhos") {
		t.Error("ampersand was HTML-escaped")
	}
}

func TestBuildAppsScriptAlertSummary(t *testing.T) {
	tables := []Table{
		smallTable("Vendas", "getVendasData", 2),
		smallTable("Tarefas", "getTarefasData", 2),
	}
	tables[0].RowNoun = "orders"
	tables[1].RowNoun = "tasks"

	script, err := BuildAppsScript(tables, 200)
	if err != nil {
		t.Fatalf("BuildAppsScript: %v", err)
	}
	src := string(script)

	if !strings.Contains(src, `"Vendas: " + (getVendasData().length - 1) + " orders\n"`) {
		t.Error("alert summary missing Vendas line")
	}
	if !strings.Contains(src, `{ name: "Vendas", data: getVendasData() },`) {
		t.Error("sheetsConfig missing Vendas entry")
	}
}

func TestBuildAppsScriptRejectsBadChunkSize(t *testing.T) {
	if _, err := BuildAppsScript([]Table{smallTable("Vendas", "getVendasData", 1)}, 0); err == nil {
		t.Error("accepted chunk size 0")
	}
}
