// ABOUTME: Task generator: samples daily tasks from the template catalog and
// ABOUTME: assigns status by where the due date sits relative to period end.

package generate

import (
	"math/rand"
	"time"

	"github.com/lojaralph/dashtools/internal/calendar"
	"github.com/lojaralph/dashtools/internal/catalog"
)

// Status weights per due-date band. The duplicated labels are separate
// hand-tuned tiers, kept literal.
var (
	earlyDueStatuses = []weightedOption[string]{
		{StatusCompleted, 55}, {StatusCompleted, 25}, {StatusOpen, 10}, {StatusOverdue, 10},
	}
	nearEndStatuses = []weightedOption[string]{
		{StatusCompleted, 30}, {StatusOpen, 35}, {StatusOpen, 25}, {StatusOverdue, 10},
	}
	// Due on or after the period end: nothing can be completed or overdue yet.
	beyondEndStatuses = []weightedOption[string]{
		{StatusOpen, 50}, {StatusOpen, 30}, {StatusPending, 20},
	}
)

func generateTasks(r *rand.Rand, cal *calendar.Calendar, cat *catalog.Catalog, start, end time.Time) ([]Task, error) {
	var tasks []Task
	for _, d := range cal.OpenDays(start, end) {
		n := randRange(r, 2, 5)
		if n > len(cat.TaskTemplates) {
			n = len(cat.TaskTemplates)
		}
		selected, err := sample(r, cat.TaskTemplates, n)
		if err != nil {
			return nil, err
		}
		for _, tpl := range selected {
			due := d.AddDate(0, 0, randRange(r, 0, 5))

			var status string
			switch {
			case due.Before(end.AddDate(0, 0, -3)):
				status = pickWeighted(r, earlyDueStatuses)
			case due.Before(end):
				status = pickWeighted(r, nearEndStatuses)
			default:
				status = pickWeighted(r, beyondEndStatuses)
			}

			tasks = append(tasks, Task{
				Description: tpl.Description,
				Assignee:    tpl.Assignee,
				Status:      status,
				DueDate:     due,
				Priority:    tpl.Priority,
			})
		}
	}
	return tasks, nil
}
