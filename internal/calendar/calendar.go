// ABOUTME: Store calendar for the generated period: date walk and closed-day rule.
// ABOUTME: The store is closed on Sundays and Portuguese public holidays.

package calendar

import "time"

// DateFormat is the wire format for every date column in the generated files.
const DateFormat = "2006-01-02"

// Holidays lists the Portuguese public holidays falling inside the default
// generation period (Dec 2025 - Feb 2026).
var Holidays = []time.Time{
	Date(2025, 12, 1),  // Restauração da Independência
	Date(2025, 12, 8),  // Imaculada Conceição
	Date(2025, 12, 25), // Natal
	Date(2026, 1, 1),   // Ano Novo
}

// Date builds a UTC date at midnight. All generator dates use this form so
// comparisons and map keys behave.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Day is one calendar date tagged with its open/closed state.
type Day struct {
	Date   time.Time
	Closed bool
}

// Calendar answers open/closed questions for a fixed holiday set.
type Calendar struct {
	holidays map[time.Time]bool
}

// New builds a calendar over the given holiday dates.
func New(holidays []time.Time) *Calendar {
	set := make(map[time.Time]bool, len(holidays))
	for _, h := range holidays {
		set[h] = true
	}
	return &Calendar{holidays: set}
}

// IsSunday reports whether d falls on a Sunday.
func IsSunday(d time.Time) bool {
	return d.Weekday() == time.Sunday
}

// IsSaturday reports whether d falls on a Saturday.
func IsSaturday(d time.Time) bool {
	return d.Weekday() == time.Saturday
}

// IsClosed reports whether the store is closed on d: Sundays and holidays.
func (c *Calendar) IsClosed(d time.Time) bool {
	return IsSunday(d) || c.holidays[d]
}

// Walk returns every date in [start, end] inclusive, in order, tagged with
// its closed state. Every generator iterates this sequence and skips closed
// days; the stock snapshot is the one dataset that ignores it.
func (c *Calendar) Walk(start, end time.Time) []Day {
	var days []Day
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, Day{Date: d, Closed: c.IsClosed(d)})
	}
	return days
}

// OpenDays returns just the open dates in [start, end] inclusive.
func (c *Calendar) OpenDays(start, end time.Time) []time.Time {
	var open []time.Time
	for _, day := range c.Walk(start, end) {
		if !day.Closed {
			open = append(open, day.Date)
		}
	}
	return open
}
