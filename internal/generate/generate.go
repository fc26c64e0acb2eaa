// ABOUTME: Orchestrates the five dataset generators over one seeded random
// ABOUTME: stream; invocation order is part of the reproducibility contract.

package generate

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/shopspring/decimal"

	"github.com/lojaralph/dashtools/internal/calendar"
	"github.com/lojaralph/dashtools/internal/catalog"
)

// Defaults match the dashboard's fixture period: three winter months with
// the Christmas rush and January slump inside the range.
const DefaultSeed int64 = 42

var (
	DefaultStart = calendar.Date(2025, 12, 1)
	DefaultEnd   = calendar.Date(2026, 2, 10)
)

// Record status values shared across the datasets.
const (
	StatusCompleted = "completed"
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
	StatusOpen      = "open"
	StatusOverdue   = "overdue"
	StatusPresent   = "present"
	StatusAbsent    = "absent"
	StatusSick      = "sick"
	StatusDayOff    = "day_off"
	StatusVacation  = "vacation"
)

// SalesOrder is one synthetic till order.
type SalesOrder struct {
	Date     time.Time
	OrderID  string
	Amount   decimal.Decimal
	Items    int
	Customer string
	Status   string
}

// Task is one store task with a due date inside or just past the period.
type Task struct {
	Description string
	Assignee    string
	Status      string
	DueDate     time.Time
	Priority    string
}

// StockRecord is a point-in-time stock level for one product. The snapshot
// is not date-indexed, so closed days do not apply to it.
type StockRecord struct {
	Product     string
	SKU         string
	Quantity    int
	MinQuantity int
	UnitPrice   decimal.Decimal
	Supplier    string
}

// AttendanceRecord is one (team member, open day) presence entry.
type AttendanceRecord struct {
	Name     string
	Role     string
	Date     time.Time
	CheckIn  string
	CheckOut string
	Status   string
}

// EmailMetrics is one open day's inbox summary.
type EmailMetrics struct {
	Date         time.Time
	Unread       int
	Important    int
	Sent         int
	ResponseRate int
}

// Datasets holds all five generated tables in memory.
type Datasets struct {
	Sales      []SalesOrder
	Tasks      []Task
	Stock      []StockRecord
	Attendance []AttendanceRecord
	Email      []EmailMetrics
}

// Config are the run parameters. Same seed and range means byte-identical
// output.
type Config struct {
	Start    time.Time
	End      time.Time
	Seed     int64
	Progress bool
}

// Run validates the catalog and produces all five datasets. The generators
// share one seeded stream and run in a fixed order (sales, tasks, stock,
// attendance, email); reordering them would change every file.
func Run(cfg Config, cat *catalog.Catalog) (*Datasets, error) {
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	if cfg.End.Before(cfg.Start) {
		return nil, fmt.Errorf("generate: end date %s before start date %s",
			cfg.End.Format(calendar.DateFormat), cfg.Start.Format(calendar.DateFormat))
	}

	cal := calendar.New(calendar.Holidays)
	r := rand.New(rand.NewSource(cfg.Seed))

	var bar *progressbar.ProgressBar
	if cfg.Progress {
		bar = progressbar.Default(5, "generating datasets")
	}
	step := func() {
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	ds := &Datasets{}
	var err error

	if ds.Sales, err = generateSales(r, cal, cat, cfg.Start, cfg.End); err != nil {
		return nil, fmt.Errorf("sales: %w", err)
	}
	step()
	if ds.Tasks, err = generateTasks(r, cal, cat, cfg.Start, cfg.End); err != nil {
		return nil, fmt.Errorf("tasks: %w", err)
	}
	step()
	ds.Stock = generateStock(r, cat)
	step()
	ds.Attendance = generateAttendance(r, cal, cat, cfg.Start, cfg.End)
	step()
	ds.Email = generateEmail(r, cal, cfg.Start, cfg.End)
	step()

	return ds, nil
}
