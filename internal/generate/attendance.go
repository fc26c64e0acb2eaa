// ABOUTME: Attendance generator: per-member presence draws, role-dependent
// ABOUTME: shift hours, and vacation-weighted absences around the holidays.

package generate

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lojaralph/dashtools/internal/calendar"
	"github.com/lojaralph/dashtools/internal/catalog"
)

var absenceReasons = []weightedOption[string]{
	{StatusAbsent, 30}, {StatusSick, 20}, {StatusDayOff, 50},
}

// vacation-heavy reason mix used between Christmas and the first days of
// January.
var holidayAbsenceReasons = []string{StatusAbsent, StatusVacation, StatusVacation}

func presenceProbability(role string) float64 {
	switch role {
	case catalog.RoleOwner:
		return 0.92
	case catalog.RoleDriver:
		// the driver spends much of the day out on deliveries
		return 0.75
	default:
		return 0.85
	}
}

func generateAttendance(r *rand.Rand, cal *calendar.Calendar, cat *catalog.Catalog, start, end time.Time) []AttendanceRecord {
	var records []AttendanceRecord
	for _, d := range cal.OpenDays(start, end) {
		for _, m := range cat.Team {
			present := r.Float64() < presenceProbability(m.Role)
			// Saturdays run with a reduced team, independent of the
			// first draw.
			if calendar.IsSaturday(d) && r.Float64() < 0.3 {
				present = false
			}

			rec := AttendanceRecord{Name: m.Name, Role: m.Role, Date: d}
			if present {
				var inH, inM, outH, outM int
				switch m.Role {
				case catalog.RoleOwner:
					inH = pick(r, []int{7, 7, 8, 8, 8})
					inM = randRange(r, 0, 30)
					outH = pick(r, []int{18, 18, 19, 19, 20})
					outM = randRange(r, 0, 45)
				case catalog.RoleDriver:
					inH = pick(r, []int{8, 8, 9})
					inM = randRange(r, 0, 30)
					outH = pick(r, []int{16, 17, 17})
					outM = randRange(r, 0, 45)
				default:
					inH = pick(r, []int{8, 8, 9, 9})
					inM = randRange(r, 0, 45)
					if calendar.IsSaturday(d) {
						outH = pick(r, []int{13, 14})
					} else {
						outH = pick(r, []int{17, 18, 18})
					}
					outM = randRange(r, 0, 45)
				}
				rec.CheckIn = fmt.Sprintf("%02d:%02d", inH, inM)
				rec.CheckOut = fmt.Sprintf("%02d:%02d", outH, outM)
				rec.Status = StatusPresent
			} else {
				switch {
				case d.Month() == time.December && d.Day() >= 26:
					rec.Status = pick(r, holidayAbsenceReasons)
				case d.Month() == time.January && d.Day() <= 3:
					rec.Status = pick(r, holidayAbsenceReasons)
				default:
					rec.Status = pickWeighted(r, absenceReasons)
				}
			}
			records = append(records, rec)
		}
	}
	return records
}
