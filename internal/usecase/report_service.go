package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/lukeaslanian/PricePal/internal/domain"
)

// ReportService turns confirmed pairs into comparison rows and the final
// summary. Pure functions of their input: entry order is preserved and no
// state is kept between calls.
type ReportService struct {
	storeA string
	storeB string
}

// NewReportService creates a report service labeled with the two store names.
func NewReportService(storeA, storeB string) *ReportService {
	return &ReportService{storeA: storeA, storeB: storeB}
}

// BuildRows maps pairs to comparison rows one-to-one, in entry order.
// The display name comes from side A when present, otherwise side B.
// Savings is PriceA - PriceB (signed) and only set when both prices exist.
func (s *ReportService) BuildRows(pairs []domain.ConfirmedPair) []domain.ComparisonRow {
	rows := make([]domain.ComparisonRow, 0, len(pairs))
	for _, pair := range pairs {
		rows = append(rows, buildRow(pair))
	}
	return rows
}

// Summarize builds the rows plus per-store totals, the signed total savings,
// and the cheaper-store verdict. Totals sum only the sides that are present,
// matching what a shopper would actually pay at each store.
func (s *ReportService) Summarize(pairs []domain.ConfirmedPair) *domain.Summary {
	summary := &domain.Summary{
		Rows:   s.BuildRows(pairs),
		TotalA: decimal.Zero,
		TotalB: decimal.Zero,
	}

	for _, pair := range pairs {
		if pair.A != nil {
			summary.TotalA = summary.TotalA.Add(pair.A.Price)
		}
		if pair.B != nil {
			summary.TotalB = summary.TotalB.Add(pair.B.Price)
		}
	}

	summary.TotalSavings = summary.TotalA.Sub(summary.TotalB)
	switch summary.TotalSavings.Sign() {
	case 1:
		summary.CheaperStore = s.storeB
	case -1:
		summary.CheaperStore = s.storeA
	}
	return summary
}

func buildRow(pair domain.ConfirmedPair) domain.ComparisonRow {
	var row domain.ComparisonRow

	if pair.A != nil {
		row.DisplayName = pair.A.Name
		price := pair.A.Price
		row.PriceA = &price
	} else if pair.B != nil {
		row.DisplayName = pair.B.Name
	}
	if pair.B != nil {
		price := pair.B.Price
		row.PriceB = &price
	}
	if row.PriceA != nil && row.PriceB != nil {
		savings := row.PriceA.Sub(*row.PriceB)
		row.Savings = &savings
	}
	return row
}
