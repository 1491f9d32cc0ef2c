// Package csvstore loads the two retailer CSV feeds into domain catalogs and
// converts the raw Whole Foods scrape dump into the structured feed format.
package csvstore

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lukeaslanian/PricePal/internal/domain"
)

// Format identifies which retailer feed layout a CSV file uses.
type Format string

const (
	// FormatTraderJoes is the export layout: sku, retail_price, item_title, ...
	FormatTraderJoes Format = "traderjoes"
	// FormatWholeFoods is the scrape layout: name, brand, regularPrice,
	// salePrice, incrementalSalePrice, uom, ...
	FormatWholeFoods Format = "wholefoods"
)

// placeholderPrice marks Trader Joe's rows that carry no real price.
var placeholderPrice = decimal.RequireFromString("0.01")

// ParseFormat validates a format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatTraderJoes:
		return FormatTraderJoes, nil
	case FormatWholeFoods:
		return FormatWholeFoods, nil
	default:
		return "", fmt.Errorf("unknown feed format %q (want %q or %q)", s, FormatTraderJoes, FormatWholeFoods)
	}
}

// LoadCatalog reads a retailer CSV feed and returns a read-only catalog.
// A malformed row (missing name, unparseable or negative price) aborts the
// whole load with a domain.ErrSchema-wrapped error; rows the feed itself
// marks as priceless (empty or placeholder prices) are skipped.
func LoadCatalog(path, store string, format Format) (*domain.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s feed: %w", store, err)
	}
	defer f.Close()

	catalog, err := ReadCatalog(f, store, format)
	if err != nil {
		return nil, fmt.Errorf("load %s feed %s: %w", store, path, err)
	}
	return catalog, nil
}

// ReadCatalog parses a feed from an open reader. Split from LoadCatalog so
// tests can feed literal CSV without touching the filesystem.
func ReadCatalog(r io.Reader, store string, format Format) (*domain.Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // scraped feeds are occasionally ragged

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	columns := indexColumns(header)

	var products []domain.Product
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", domain.ErrSchema, line, err)
		}

		var product *domain.Product
		switch format {
		case FormatTraderJoes:
			product, err = parseTraderJoesRow(columns, record, store)
		case FormatWholeFoods:
			product, err = parseWholeFoodsRow(columns, record, store)
		default:
			return nil, fmt.Errorf("unknown feed format %q", format)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", domain.ErrSchema, line, err)
		}
		if product == nil {
			continue // feed-marked priceless row
		}
		products = append(products, *product)
	}

	return domain.NewCatalog(store, products)
}

// indexColumns maps header names to their positions, case-insensitively.
func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return columns
}

// field returns the trimmed cell for a named column, or "" when the column
// is absent or the record is too short.
func field(columns map[string]int, record []string, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// parseTraderJoesRow maps one export row to a product. Rows with an empty
// price or the 0.01 placeholder carry no real price and are skipped (nil).
func parseTraderJoesRow(columns map[string]int, record []string, store string) (*domain.Product, error) {
	name := field(columns, record, "item_title")
	if name == "" {
		return nil, fmt.Errorf("missing item_title")
	}

	rawPrice := field(columns, record, "retail_price")
	if rawPrice == "" {
		return nil, nil
	}
	price, err := ParsePrice(rawPrice)
	if err != nil {
		return nil, err
	}
	if price.Equal(placeholderPrice) {
		return nil, nil
	}

	return &domain.Product{
		SKU:   field(columns, record, "sku"),
		Name:  name,
		Price: price,
		Store: store,
	}, nil
}

// parseWholeFoodsRow maps one scrape row to a product, preferring the
// incremental sale price, then the sale price, then the regular price.
// Rows with no positive price at all are skipped (nil).
func parseWholeFoodsRow(columns map[string]int, record []string, store string) (*domain.Product, error) {
	name := field(columns, record, "name")
	if name == "" {
		return nil, fmt.Errorf("missing name")
	}

	price, err := bestWholeFoodsPrice(columns, record)
	if err != nil {
		return nil, err
	}
	if price == nil {
		return nil, nil
	}

	return &domain.Product{
		SKU:   field(columns, record, "sku"),
		Name:  name,
		Price: *price,
		Brand: field(columns, record, "brand"),
		Unit:  field(columns, record, "uom"),
		Store: store,
	}, nil
}

func bestWholeFoodsPrice(columns map[string]int, record []string) (*decimal.Decimal, error) {
	for _, column := range []string{"incrementalsaleprice", "saleprice", "regularprice"} {
		raw := field(columns, record, column)
		if raw == "" {
			continue
		}
		price, err := ParsePrice(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %v", column, err)
		}
		if price.IsPositive() {
			return &price, nil
		}
	}
	return nil, nil
}

// ParsePrice parses a feed price cell into a non-negative decimal amount.
// A leading currency symbol and thousands separators are stripped here so
// the core never sees them.
func ParsePrice(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	price, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("unparseable price %q", raw)
	}
	if price.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative price %q", raw)
	}
	return price, nil
}
