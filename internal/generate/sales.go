// ABOUTME: Sales order generator: per-day order volume model, weighted basket
// ABOUTME: sizes, jittered totals, and a monotonic order ID across the period.

package generate

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lojaralph/dashtools/internal/calendar"
	"github.com/lojaralph/dashtools/internal/catalog"
)

var basketSizes = []weightedOption[int]{
	{1, 30}, {2, 30}, {3, 20}, {4, 10}, {5, 7}, {6, 3},
}

// Most orders complete; the completed tiers are kept separate on purpose.
var orderStatuses = []weightedOption[string]{
	{StatusCompleted, 70},
	{StatusCompleted, 15},
	{StatusCompleted, 5},
	{StatusPending, 8},
	{StatusCancelled, 2},
}

// dailyOrderCount models order volume for one date: a weekday base with a
// Saturday boost, a pre-Christmas multiplier, a January slump, and noise.
// The multipliers truncate rather than round. Closed days take no orders
// and draw no randomness.
func dailyOrderCount(r *rand.Rand, cal *calendar.Calendar, d time.Time) int {
	if cal.IsClosed(d) {
		return 0
	}
	base := 14
	if calendar.IsSaturday(d) {
		base = 22
	}
	if d.Month() == time.December && d.Day() <= 24 {
		base = int(float64(base) * 1.3)
	}
	if d.Month() == time.January && d.Day() <= 15 {
		base = int(float64(base) * 0.7)
	}
	count := base + randRange(r, -5, 6)
	if count < 3 {
		count = 3
	}
	return count
}

func generateSales(r *rand.Rand, cal *calendar.Calendar, cat *catalog.Catalog, start, end time.Time) ([]SalesOrder, error) {
	var orders []SalesOrder
	counter := 1 // runs across the whole period, never reset per day
	for _, day := range cal.Walk(start, end) {
		count := dailyOrderCount(r, cal, day.Date)
		for i := 0; i < count; i++ {
			size := pickWeighted(r, basketSizes)
			basket, err := sample(r, cat.Products, size)
			if err != nil {
				return nil, fmt.Errorf("basket on %s: %w", day.Date.Format(calendar.DateFormat), err)
			}

			items := 0
			total := decimal.Zero
			for _, p := range basket {
				qty := randRange(r, 1, 4)
				items += qty
				total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(qty))))
			}
			// Multiplicative jitter stands in for discounts and till
			// rounding; it changes the emitted amount, it is not a no-op.
			jitter := 0.95 + r.Float64()*0.10
			total = total.Mul(decimal.NewFromFloat(jitter)).Round(2)

			orders = append(orders, SalesOrder{
				Date:     day.Date,
				OrderID:  fmt.Sprintf("ORD-%04d", counter),
				Amount:   total,
				Items:    items,
				Customer: pick(r, cat.Customers),
				Status:   pickWeighted(r, orderStatuses),
			})
			counter++
		}
	}
	return orders, nil
}
