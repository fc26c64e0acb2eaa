// ABOUTME: Unit tests for the reference catalog: validation rules and the
// ABOUTME: fixed values the dashboard fixtures depend on.

package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDefaultCatalogValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default catalog failed validation: %v", err)
	}
}

func TestCatalogSizes(t *testing.T) {
	c := Default()
	if got := len(c.Customers); got != 55 {
		t.Errorf("customers = %d, want 55", got)
	}
	if got := len(c.Products); got != 65 {
		t.Errorf("products = %d, want 65", got)
	}
	if got := len(c.Suppliers); got != 24 {
		t.Errorf("suppliers = %d, want 24", got)
	}
	if got := len(c.Team); got != 8 {
		t.Errorf("team = %d, want 8", got)
	}
	if got := len(c.TaskTemplates); got != 30 {
		t.Errorf("task templates = %d, want 30", got)
	}
}

func TestKnownProduct(t *testing.T) {
	c := Default()
	var hammer *Product
	for i := range c.Products {
		if c.Products[i].SKU == "FER-001" {
			hammer = &c.Products[i]
			break
		}
	}
	if hammer == nil {
		t.Fatal("FER-001 not found in catalog")
	}
	if hammer.MinQuantity != 15 {
		t.Errorf("FER-001 min quantity = %d, want 15", hammer.MinQuantity)
	}
	if got := hammer.Price.StringFixed(2); got != "12.90" {
		t.Errorf("FER-001 price = %s, want 12.90", got)
	}
	if hammer.Category != "ferramentas" {
		t.Errorf("FER-001 category = %s, want ferramentas", hammer.Category)
	}
}

func TestSuppliersForFallsBack(t *testing.T) {
	c := Default()

	subset := c.SuppliersFor("tintas")
	if len(subset) != 3 {
		t.Errorf("tintas suppliers = %d, want 3", len(subset))
	}

	// Unknown category falls back to the full supplier list.
	if got := c.SuppliersFor("nonexistent"); len(got) != len(c.Suppliers) {
		t.Errorf("fallback supplier count = %d, want %d", len(got), len(c.Suppliers))
	}
}

func TestValidateRejectsBadData(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Catalog)
	}{
		{"empty products", func(c *Catalog) { c.Products = nil }},
		{"empty customers", func(c *Catalog) { c.Customers = nil }},
		{"empty suppliers", func(c *Catalog) { c.Suppliers = nil }},
		{"empty team", func(c *Catalog) { c.Team = nil }},
		{"empty templates", func(c *Catalog) { c.TaskTemplates = nil }},
		{"duplicate SKU", func(c *Catalog) {
			c.Products = append(c.Products, c.Products[0])
		}},
		{"zero min quantity", func(c *Catalog) {
			c.Products[0].MinQuantity = 0
		}},
		{"non-positive price", func(c *Catalog) {
			c.Products[0].Price = decimal.Zero
		}},
		{"unknown supplier in category map", func(c *Catalog) {
			c.CategorySuppliers = map[string][]string{"tintas": {"No Such Supplier"}}
		}},
		{"invalid priority", func(c *Catalog) {
			c.TaskTemplates[0].Priority = "urgent"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			// Deep-copy the slices the mutation touches so cases stay independent.
			c.Products = append([]Product(nil), c.Products...)
			c.TaskTemplates = append([]TaskTemplate(nil), c.TaskTemplates...)
			tt.mutate(c)
			if err := c.Validate(); err == nil {
				t.Error("Validate accepted invalid catalog")
			}
		})
	}
}
