// ABOUTME: Reference data model for the hardware store: products, suppliers,
// ABOUTME: customers, team, task templates, plus fail-fast validation.

package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Team roles that change attendance behaviour. Other roles share the
// generic staff pattern.
const (
	RoleOwner  = "Proprietário / Gerente"
	RoleDriver = "Entregas / Motorista"
)

// Product is one catalog item. MinQuantity is the reorder threshold the
// stock snapshot measures shortages against.
type Product struct {
	Name        string `validate:"required"`
	SKU         string `validate:"required"`
	Price       decimal.Decimal
	Category    string `validate:"required"`
	MinQuantity int    `validate:"gte=1"`
}

// TeamMember is one store employee.
type TeamMember struct {
	Name string `validate:"required"`
	Role string `validate:"required"`
}

// TaskTemplate is a recurring store task with its usual owner.
type TaskTemplate struct {
	Description string `validate:"required"`
	Assignee    string `validate:"required"`
	Priority    string `validate:"required,oneof=low medium high"`
}

// Catalog bundles all static reference data the generators draw from.
type Catalog struct {
	Customers         []string
	Products          []Product
	Suppliers         []string
	CategorySuppliers map[string][]string
	Team              []TeamMember
	TaskTemplates     []TaskTemplate
}

// Default returns the built-in Loja de Ferragens Ralph catalog.
func Default() *Catalog {
	return &Catalog{
		Customers:         customers,
		Products:          products,
		Suppliers:         suppliers,
		CategorySuppliers: categorySuppliers,
		Team:              team,
		TaskTemplates:     taskTemplates,
	}
}

// SuppliersFor returns the supplier subset allowed for a category, falling
// back to the full supplier list when the category has no mapping.
func (c *Catalog) SuppliersFor(category string) []string {
	if subset, ok := c.CategorySuppliers[category]; ok {
		return subset
	}
	return c.Suppliers
}

// Validate checks the reference data before any generation starts. An empty
// or inconsistent catalog is a programming error and should stop the run
// immediately rather than produce a partial dataset.
func (c *Catalog) Validate() error {
	if len(c.Customers) == 0 {
		return fmt.Errorf("catalog: customer list is empty")
	}
	if len(c.Products) == 0 {
		return fmt.Errorf("catalog: product list is empty")
	}
	if len(c.Suppliers) == 0 {
		return fmt.Errorf("catalog: supplier list is empty")
	}
	if len(c.Team) == 0 {
		return fmt.Errorf("catalog: team list is empty")
	}
	if len(c.TaskTemplates) == 0 {
		return fmt.Errorf("catalog: task template list is empty")
	}

	v := validator.New()

	seenSKU := make(map[string]bool, len(c.Products))
	for _, p := range c.Products {
		if err := v.Struct(p); err != nil {
			return fmt.Errorf("catalog: product %q: %w", p.SKU, err)
		}
		if !p.Price.IsPositive() {
			return fmt.Errorf("catalog: product %q: price must be positive", p.SKU)
		}
		if seenSKU[p.SKU] {
			return fmt.Errorf("catalog: duplicate SKU %q", p.SKU)
		}
		seenSKU[p.SKU] = true
	}

	supplierSet := make(map[string]bool, len(c.Suppliers))
	for _, s := range c.Suppliers {
		supplierSet[s] = true
	}
	for cat, subset := range c.CategorySuppliers {
		if len(subset) == 0 {
			return fmt.Errorf("catalog: category %q has an empty supplier subset", cat)
		}
		for _, s := range subset {
			if !supplierSet[s] {
				return fmt.Errorf("catalog: category %q references unknown supplier %q", cat, s)
			}
		}
	}

	for _, m := range c.Team {
		if err := v.Struct(m); err != nil {
			return fmt.Errorf("catalog: team member %q: %w", m.Name, err)
		}
	}
	for _, t := range c.TaskTemplates {
		if err := v.Struct(t); err != nil {
			return fmt.Errorf("catalog: task %q: %w", t.Description, err)
		}
	}
	return nil
}
