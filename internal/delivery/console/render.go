package console

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"github.com/lukeaslanian/PricePal/internal/domain"
)

const notFoundCell = "Not found"

// renderCandidates prints the ranked candidate table with 1-based indices.
func renderCandidates(out io.Writer, candidates []domain.Candidate) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"#", "Product", "Price", "Score"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for i, candidate := range candidates {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			candidate.Product.DisplayName(),
			candidate.Product.DisplayPrice(),
			fmt.Sprintf("%.0f", candidate.Score),
		})
	}
	table.Render()
}

// RenderReport prints the final comparison table and the colored summary
// footer. Rows appear in entry order, exactly as the report builder emitted
// them.
func (c *Console) RenderReport(summary *domain.Summary) {
	fmt.Fprintln(c.out)
	if len(summary.Rows) == 0 {
		c.notice.Fprintln(c.out, "No items were compared.")
		return
	}

	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"Item", c.storeA, c.storeB, "Savings"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, row := range summary.Rows {
		table.Append([]string{
			row.DisplayName,
			priceCell(row.PriceA),
			priceCell(row.PriceB),
			savingsCell(row.Savings),
		})
	}
	table.SetFooter([]string{
		"TOTAL",
		formatMoney(summary.TotalA),
		formatMoney(summary.TotalB),
		formatMoney(summary.TotalSavings),
	})
	table.Render()

	c.renderVerdict(summary)
}

func (c *Console) renderVerdict(summary *domain.Summary) {
	if summary.CheaperStore == "" {
		fmt.Fprintln(c.out, "Both stores come out even.")
		return
	}

	style := c.headingB
	if summary.CheaperStore == c.storeA {
		style = c.headingA
	}
	style.Fprintf(c.out, "%s is cheaper by %s\n",
		summary.CheaperStore, formatMoney(summary.TotalSavings.Abs()))
}

func priceCell(price *decimal.Decimal) string {
	if price == nil {
		return notFoundCell
	}
	return formatMoney(*price)
}

func savingsCell(savings *decimal.Decimal) string {
	if savings == nil {
		return "N/A"
	}
	return formatMoney(*savings)
}

// formatMoney renders a signed decimal as $X.XX, with the sign outside the
// currency symbol.
func formatMoney(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return fmt.Sprintf("-$%s", amount.Neg().StringFixed(2))
	}
	return fmt.Sprintf("$%s", amount.StringFixed(2))
}
