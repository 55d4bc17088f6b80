package services

import (
	"strings"

	"digitalstore/internal/domain"
	"digitalstore/internal/validate"
)

// FilterCatalog keeps the products whose name, description or category
// contains query (case-insensitive) and whose price lies within
// [minPrice, maxPrice]. Empty or non-numeric bounds are open. Order is kept.
func FilterCatalog(products []domain.Product, query, minPrice, maxPrice string) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	lo, hasLo := validate.Decimal(minPrice)
	hi, hasHi := validate.Decimal(maxPrice)

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) {
			continue
		}
		if hasLo && p.Price.LessThan(lo) {
			continue
		}
		if hasHi && p.Price.GreaterThan(hi) {
			continue
		}
		out = append(out, p)
	}
	return out
}
