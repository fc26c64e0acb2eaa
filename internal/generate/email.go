// ABOUTME: Email metrics generator: day-type unread volume with a December
// ABOUTME: multiplier, plus important/sent counts and a response rate.

package generate

import (
	"math/rand"
	"time"

	"github.com/lojaralph/dashtools/internal/calendar"
)

func generateEmail(r *rand.Rand, cal *calendar.Calendar, start, end time.Time) []EmailMetrics {
	var records []EmailMetrics
	for _, d := range cal.OpenDays(start, end) {
		var unread int
		switch {
		case calendar.IsSaturday(d):
			unread = randRange(r, 3, 10)
		case d.Weekday() == time.Monday:
			// the weekend backlog lands on Monday
			unread = randRange(r, 15, 35)
		default:
			unread = randRange(r, 8, 22)
		}
		// December brings extra orders and inquiries; truncating multiply.
		if d.Month() == time.December {
			unread = int(float64(unread) * 1.2)
		}

		records = append(records, EmailMetrics{
			Date:         d,
			Unread:       unread,
			Important:    randRange(r, 1, min(8, unread)),
			Sent:         randRange(r, 5, 20),
			ResponseRate: randRange(r, 55, 95),
		})
	}
	return records
}
