package csvstore

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSanitizeDump(t *testing.T) {
	t.Run("pairs name and price lines into feed rows", func(t *testing.T) {
		dump := strings.Join([]string{
			"Organic Strawberries 1 lb",
			"$4.99 Add to list",
			"Avocado Each",
			"$1.99",
		}, "\n")

		rows, err := SanitizeDump(strings.NewReader(dump))
		require.NoError(t, err)
		require.Len(t, rows, 2)

		require.Equal(t, "WF00001", rows[0].SKU)
		require.Equal(t, "4.99", rows[0].Price)
		require.Equal(t, "Organic Strawberries 1 lb", rows[0].Name)

		require.Equal(t, "WF00002", rows[1].SKU)
		require.Equal(t, "1.99", rows[1].Price)
		require.Equal(t, "Avocado Each", rows[1].Name)
	})

	t.Run("drops house-brand entries", func(t *testing.T) {
		dump := strings.Join([]string{
			"365 by Whole Foods Market Whole Milk",
			"$3.49",
			"Horizon Organic Whole Milk",
			"$5.29",
		}, "\n")

		rows, err := SanitizeDump(strings.NewReader(dump))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.Equal(t, "Horizon Organic Whole Milk", rows[0].Name)
	})

	t.Run("drops pairs with no plausible price", func(t *testing.T) {
		dump := strings.Join([]string{
			"Expensive Mistake",
			"$1000.00",
			"Organic Strawberries 1 lb",
			"$4.99",
		}, "\n")

		rows, err := SanitizeDump(strings.NewReader(dump))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.Equal(t, "Organic Strawberries 1 lb", rows[0].Name)
	})

	t.Run("drops short and purely numeric names", func(t *testing.T) {
		dump := strings.Join([]string{
			"abc",
			"$1.99",
			"12345",
			"$2.99",
			"Organic Strawberries 1 lb",
			"$4.99",
		}, "\n")

		rows, err := SanitizeDump(strings.NewReader(dump))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.Equal(t, "Organic Strawberries 1 lb", rows[0].Name)
	})

	t.Run("ignores Prime noise around the price", func(t *testing.T) {
		dump := strings.Join([]string{
			"Organic Kombucha 16 fl oz",
			"$2.99 with Prime Add to list",
		}, "\n")

		rows, err := SanitizeDump(strings.NewReader(dump))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.Equal(t, "2.99", rows[0].Price)
	})

	t.Run("empty dump yields no rows", func(t *testing.T) {
		rows, err := SanitizeDump(strings.NewReader(""))
		require.NoError(t, err)
		require.Empty(t, rows)
	})
}

func TestWriteFeed(t *testing.T) {
	rows := []FeedRow{
		{SKU: "WF00001", Price: "4.99", Name: "Organic Strawberries 1 lb"},
		{SKU: "WF00002", Price: "1.99", Name: "Avocado Each"},
	}
	insertedAt := time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, WriteFeed(&buf, rows, insertedAt))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "sku,retail_price,item_title,inserted_at,store_code,availability", lines[0])
	require.Equal(t, "WF00001,4.99,Organic Strawberries 1 lb,2024-06-15 12:30:00,546,1", lines[1])
	require.Equal(t, "WF00002,1.99,Avocado Each,2024-06-15 12:30:00,546,1", lines[2])
}

func TestSanitizedFeedRoundTrip(t *testing.T) {
	dump := strings.Join([]string{
		"Organic Strawberries 1 lb",
		"$4.99 Add to list",
		"Avocado Each",
		"$1.99",
	}, "\n")

	rows, err := SanitizeDump(strings.NewReader(dump))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteFeed(&buf, rows, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)))

	catalog, err := ReadCatalog(&buf, "Whole Foods", FormatTraderJoes)
	require.NoError(t, err)
	require.Equal(t, 2, catalog.Len())
	require.Equal(t, "Organic Strawberries 1 lb", catalog.Products()[0].Name)
	require.Equal(t, "4.99", catalog.Products()[0].Price.StringFixed(2))
}
