package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lukeaslanian/PricePal/internal/domain"
)

func pairOf(term string, a, b *domain.Product) domain.ConfirmedPair {
	return domain.ConfirmedPair{Term: term, A: a, B: b}
}

func productPtr(sku, name, price string) *domain.Product {
	p := product(sku, name, price)
	return &p
}

func TestBuildRows(t *testing.T) {
	report := NewReportService("Trader Joe's", "Whole Foods")

	t.Run("preserves entry order", func(t *testing.T) {
		pairs := []domain.ConfirmedPair{
			pairOf("carrots", productPtr("1", "Carrots", "1.99"), productPtr("2", "Organic Carrots", "4.99")),
			pairOf("milk", productPtr("3", "Whole Milk", "3.49"), nil),
			pairOf("bread", nil, productPtr("4", "Sourdough Bread", "5.49")),
		}

		rows := report.BuildRows(pairs)
		require.Len(t, rows, 3)
		require.Equal(t, "Carrots", rows[0].DisplayName)
		require.Equal(t, "Whole Milk", rows[1].DisplayName)
		require.Equal(t, "Sourdough Bread", rows[2].DisplayName)
	})

	t.Run("display name prefers side A", func(t *testing.T) {
		rows := report.BuildRows([]domain.ConfirmedPair{
			pairOf("eggs", productPtr("1", "Large Eggs", "3.29"), productPtr("2", "Organic Eggs", "5.99")),
		})
		require.Equal(t, "Large Eggs", rows[0].DisplayName)
	})

	t.Run("savings sign convention", func(t *testing.T) {
		rows := report.BuildRows([]domain.ConfirmedPair{
			pairOf("a", productPtr("1", "Item", "2.99"), productPtr("2", "Item", "2.49")),
			pairOf("b", productPtr("3", "Item", "1.00"), productPtr("4", "Item", "1.50")),
		})

		require.NotNil(t, rows[0].Savings)
		require.Equal(t, "0.50", rows[0].Savings.StringFixed(2))
		require.NotNil(t, rows[1].Savings)
		require.Equal(t, "-0.50", rows[1].Savings.StringFixed(2))
	})

	t.Run("savings absent when either price is missing", func(t *testing.T) {
		rows := report.BuildRows([]domain.ConfirmedPair{
			pairOf("a", productPtr("1", "Only A", "2.99"), nil),
			pairOf("b", nil, productPtr("2", "Only B", "2.49")),
		})

		require.NotNil(t, rows[0].PriceA)
		require.Nil(t, rows[0].PriceB)
		require.Nil(t, rows[0].Savings)

		require.Nil(t, rows[1].PriceA)
		require.NotNil(t, rows[1].PriceB)
		require.Nil(t, rows[1].Savings)
	})

	t.Run("empty input yields empty rows", func(t *testing.T) {
		rows := report.BuildRows(nil)
		require.Empty(t, rows)
	})
}

func TestSummarize(t *testing.T) {
	report := NewReportService("Trader Joe's", "Whole Foods")

	t.Run("totals sum present sides only", func(t *testing.T) {
		summary := report.Summarize([]domain.ConfirmedPair{
			pairOf("carrots", productPtr("1", "Carrots", "1.99"), productPtr("2", "Organic Carrots", "4.99")),
			pairOf("milk", productPtr("3", "Whole Milk", "3.49"), nil),
		})

		require.Equal(t, "5.48", summary.TotalA.StringFixed(2))
		require.Equal(t, "4.99", summary.TotalB.StringFixed(2))
		require.Equal(t, "0.49", summary.TotalSavings.StringFixed(2))
	})

	t.Run("cheaper store follows the savings sign", func(t *testing.T) {
		summary := report.Summarize([]domain.ConfirmedPair{
			pairOf("carrots", productPtr("1", "Carrots", "1.99"), productPtr("2", "Organic Carrots", "4.99")),
		})
		require.Equal(t, "-3.00", summary.TotalSavings.StringFixed(2))
		require.Equal(t, "Trader Joe's", summary.CheaperStore)

		summary = report.Summarize([]domain.ConfirmedPair{
			pairOf("milk", productPtr("1", "Whole Milk", "5.49"), productPtr("2", "Organic Milk", "3.99")),
		})
		require.Equal(t, "Whole Foods", summary.CheaperStore)
	})

	t.Run("equal totals name no cheaper store", func(t *testing.T) {
		summary := report.Summarize([]domain.ConfirmedPair{
			pairOf("a", productPtr("1", "Item", "2.00"), productPtr("2", "Item", "2.00")),
		})
		require.Empty(t, summary.CheaperStore)
		require.True(t, summary.TotalSavings.IsZero())
	})

	t.Run("empty session summarizes to zeros", func(t *testing.T) {
		summary := report.Summarize(nil)
		require.Empty(t, summary.Rows)
		require.True(t, summary.TotalA.IsZero())
		require.True(t, summary.TotalB.IsZero())
		require.Empty(t, summary.CheaperStore)
	})
}
