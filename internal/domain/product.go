package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// departmentPlaceholders are brand-column values that name a store department
// rather than an actual brand; they are omitted from display names.
var departmentPlaceholders = map[string]bool{
	"PRODUCE": true,
	"MEAT":    true,
	"SEAFOOD": true,
}

// Product represents a single catalog entry. Immutable once loaded.
type Product struct {
	SKU   string          `json:"sku"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Brand string          `json:"brand,omitempty"`
	Size  string          `json:"size,omitempty"`
	Unit  string          `json:"unit,omitempty"`
	Store string          `json:"store"`
}

// DisplayName joins brand, name, and size into a single label.
// Department placeholders in the brand column are skipped.
func (p Product) DisplayName() string {
	parts := make([]string, 0, 3)
	if p.Brand != "" && !departmentPlaceholders[p.Brand] {
		parts = append(parts, p.Brand)
	}
	parts = append(parts, p.Name)
	if p.Size != "" {
		parts = append(parts, fmt.Sprintf("(%s)", p.Size))
	}
	return strings.Join(parts, " ")
}

// DisplayPrice formats the price as $X.XX, with a /unit suffix when known.
func (p Product) DisplayPrice() string {
	if p.Unit != "" {
		return fmt.Sprintf("$%s/%s", p.Price.StringFixed(2), p.Unit)
	}
	return fmt.Sprintf("$%s", p.Price.StringFixed(2))
}

// Candidate is a product paired with its similarity score for a query.
// Scores are in [0, 100]; candidates are transient and never persisted.
type Candidate struct {
	Product Product `json:"product"`
	Score   float64 `json:"score"`
}

// ConfirmedPair is a user-confirmed association of at most one product per
// store for a single query term. At least one side is always present; the
// selection session discards terms where both sides were skipped.
type ConfirmedPair struct {
	Term string   `json:"term"`
	A    *Product `json:"a,omitempty"`
	B    *Product `json:"b,omitempty"`
}

// ComparisonRow is the per-pair view consumed by the report renderer.
// Savings is PriceA - PriceB (signed; negative means side B is cheaper) and
// is only present when both prices are.
type ComparisonRow struct {
	DisplayName string           `json:"displayName"`
	PriceA      *decimal.Decimal `json:"priceA,omitempty"`
	PriceB      *decimal.Decimal `json:"priceB,omitempty"`
	Savings     *decimal.Decimal `json:"savings,omitempty"`
}

// Summary aggregates the full comparison: per-pair rows, per-store totals
// over the sides that were present, and the signed total savings.
type Summary struct {
	Rows         []ComparisonRow `json:"rows"`
	TotalA       decimal.Decimal `json:"totalA"`
	TotalB       decimal.Decimal `json:"totalB"`
	TotalSavings decimal.Decimal `json:"totalSavings"` // TotalA - TotalB
	CheaperStore string          `json:"cheaperStore"` // empty when totals tie
}
