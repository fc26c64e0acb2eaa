// ABOUTME: Tabular view of the generated datasets: sheet name, CSV filename,
// ABOUTME: Apps Script function name, header row, and formatted data rows.

package export

import (
	"strconv"

	"github.com/lojaralph/dashtools/internal/calendar"
	"github.com/lojaralph/dashtools/internal/generate"
)

// Table is one dataset ready for serialization. Rows hold the final text
// form of every field: dates as YYYY-MM-DD, money with exactly two decimals.
type Table struct {
	Name     string // spreadsheet tab name
	Filename string // CSV filename
	GSFunc   string // Apps Script data function name
	RowNoun  string // what one row is, for summaries ("orders", "tasks")
	Header   []string
	Rows     [][]string
}

// Specs returns the five table definitions without data, in canonical order.
// The names and filenames are what the dashboard's import flow expects.
func Specs() []Table {
	return []Table{
		{Name: "Vendas", Filename: "vendas.csv", GSFunc: "getVendasData", RowNoun: "orders",
			Header: []string{"Date", "OrderID", "Amount", "Items", "Customer", "Status"}},
		{Name: "Tarefas", Filename: "tarefas.csv", GSFunc: "getTarefasData", RowNoun: "tasks",
			Header: []string{"Task", "Assignee", "Status", "DueDate", "Priority"}},
		{Name: "Stock", Filename: "stock.csv", GSFunc: "getStockData", RowNoun: "products",
			Header: []string{"Product", "SKU", "Quantity", "MinQuantity", "UnitPrice", "Supplier"}},
		{Name: "Equipa", Filename: "equipa.csv", GSFunc: "getEquipaData", RowNoun: "attendance records",
			Header: []string{"Name", "Role", "Date", "CheckIn", "CheckOut", "Status"}},
		{Name: "Email Metrics", Filename: "email_metrics.csv", GSFunc: "getEmailData", RowNoun: "daily records",
			Header: []string{"Date", "Unread", "Important", "Sent", "ResponseRate"}},
	}
}

// Tables renders all five datasets into their serializable form.
func Tables(ds *generate.Datasets) []Table {
	tables := Specs()

	for _, o := range ds.Sales {
		tables[0].Rows = append(tables[0].Rows, []string{
			o.Date.Format(calendar.DateFormat),
			o.OrderID,
			o.Amount.StringFixed(2),
			strconv.Itoa(o.Items),
			o.Customer,
			o.Status,
		})
	}
	for _, t := range ds.Tasks {
		tables[1].Rows = append(tables[1].Rows, []string{
			t.Description,
			t.Assignee,
			t.Status,
			t.DueDate.Format(calendar.DateFormat),
			t.Priority,
		})
	}
	for _, s := range ds.Stock {
		tables[2].Rows = append(tables[2].Rows, []string{
			s.Product,
			s.SKU,
			strconv.Itoa(s.Quantity),
			strconv.Itoa(s.MinQuantity),
			s.UnitPrice.StringFixed(2),
			s.Supplier,
		})
	}
	for _, a := range ds.Attendance {
		tables[3].Rows = append(tables[3].Rows, []string{
			a.Name,
			a.Role,
			a.Date.Format(calendar.DateFormat),
			a.CheckIn,
			a.CheckOut,
			a.Status,
		})
	}
	for _, e := range ds.Email {
		tables[4].Rows = append(tables[4].Rows, []string{
			e.Date.Format(calendar.DateFormat),
			strconv.Itoa(e.Unread),
			strconv.Itoa(e.Important),
			strconv.Itoa(e.Sent),
			strconv.Itoa(e.ResponseRate),
		})
	}
	return tables
}
