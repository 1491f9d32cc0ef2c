package csvstore

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// The raw Whole Foods dump alternates product-name and price lines, with
// navigation chrome interleaved. These constants mirror the feed the rest of
// the pipeline expects.
const (
	feedStoreCode    = "546"
	feedAvailability = "1"
)

// maxPlausiblePrice bounds sanitizer price extraction; anything at or above
// it is scrape noise (order totals, phone numbers).
var maxPlausiblePrice = decimal.NewFromInt(1000)

// noiseLines are chrome lines that never belong to a product.
var noiseLines = map[string]bool{
	"Add to list":               true,
	"365 by Whole Foods Market": true,
	"Opens in a new tab":        true,
}

var (
	pricePattern     = regexp.MustCompile(`\$?(\d+(?:\.\d{1,2})?)`)
	numericNameRegex = regexp.MustCompile(`^\d+$`)
)

// FeedRow is one sanitized product destined for the structured CSV feed.
type FeedRow struct {
	SKU   string
	Price string
	Name  string
}

// SanitizeDump converts the raw two-line name/price text dump into feed rows:
// noise lines and house-brand entries are dropped, the first plausible price
// is extracted from each price line, and sequential WF SKUs are assigned.
func SanitizeDump(r io.Reader) ([]FeedRow, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dump: %w", err)
	}

	var rows []FeedRow
	skuCounter := 1
	for i := 0; i+1 < len(lines); i += 2 {
		name := strings.TrimSpace(lines[i])
		priceLine := strings.TrimSpace(lines[i+1])

		if name == "" || priceLine == "" {
			continue
		}
		if noiseLines[name] || noiseLines[priceLine] {
			continue
		}
		// House-brand entries duplicate the branded listing.
		if strings.Contains(name, "365") {
			continue
		}

		price := extractPrice(priceLine)
		if price == "" {
			continue
		}
		if len(name) <= 3 || numericNameRegex.MatchString(name) {
			continue
		}

		rows = append(rows, FeedRow{
			SKU:   fmt.Sprintf("WF%05d", skuCounter),
			Price: price,
			Name:  name,
		})
		skuCounter++
	}

	return rows, nil
}

// extractPrice pulls the first plausible price out of a price line, ignoring
// scrape noise around it. Returns "" when nothing valid is found.
func extractPrice(priceLine string) string {
	cleaned := strings.ReplaceAll(priceLine, "Add to list", "")
	cleaned = strings.ReplaceAll(cleaned, "with Prime", "")
	cleaned = strings.TrimSpace(cleaned)

	for _, match := range pricePattern.FindAllStringSubmatch(cleaned, -1) {
		if isValidPrice(match[1]) {
			return match[1]
		}
	}
	return ""
}

// isValidPrice reports whether a candidate string is a positive price below
// the plausibility cap.
func isValidPrice(candidate string) bool {
	price, err := decimal.NewFromString(candidate)
	if err != nil {
		return false
	}
	return price.IsPositive() && price.LessThan(maxPlausiblePrice)
}

// WriteFeed emits the canonical structured feed consumed by LoadCatalog's
// traderjoes layout: sku, retail_price, item_title plus the bookkeeping
// columns the original feed carries.
func WriteFeed(w io.Writer, rows []FeedRow, insertedAt time.Time) error {
	writer := csv.NewWriter(w)

	header := []string{"sku", "retail_price", "item_title", "inserted_at", "store_code", "availability"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write feed header: %w", err)
	}

	timestamp := insertedAt.Format("2006-01-02 15:04:05")
	for _, row := range rows {
		record := []string{row.SKU, row.Price, row.Name, timestamp, feedStoreCode, feedAvailability}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write feed row %s: %w", row.SKU, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
