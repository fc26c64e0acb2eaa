// ABOUTME: Stock snapshot generator: one row per product with shortage and
// ABOUTME: stockout branches biased to trigger the dashboard's alerts.

package generate

import (
	"math/rand"

	"github.com/lojaralph/dashtools/internal/catalog"
)

func generateStock(r *rand.Rand, cat *catalog.Catalog) []StockRecord {
	records := make([]StockRecord, 0, len(cat.Products))
	for _, p := range cat.Products {
		// The stockout draw lives inside the negation of the understock
		// branch; flattening the two draws into one three-way split would
		// shift the combined probabilities.
		var qty int
		if r.Float64() < 0.15 {
			qty = randRange(r, 0, p.MinQuantity-1)
		} else if r.Float64() < 0.05 {
			qty = 0
		} else {
			qty = randRange(r, p.MinQuantity, p.MinQuantity*4)
		}

		records = append(records, StockRecord{
			Product:     p.Name,
			SKU:         p.SKU,
			Quantity:    qty,
			MinQuantity: p.MinQuantity,
			UnitPrice:   p.Price,
			Supplier:    pick(r, cat.SuppliersFor(p.Category)),
		})
	}
	return records
}
