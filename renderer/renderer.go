// Package renderer renders inventory reports as markdown, ready to be
// printed to the terminal.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/stockroom"
)

// ItemTable renders the items as a markdown table with a stock status
// column. Long names and categories are truncated to keep the table
// readable on a console.
func ItemTable(items []stockroom.StockItem, threshold int) string {
	if len(items) == 0 {
		return "No items to display.\n"
	}
	var b strings.Builder
	b.WriteString("| ID | Product Name | Category | Qty | Last Price | Status |\n")
	b.WriteString("|---:|:-------------|:---------|----:|-----------:|:-------|\n")
	for _, it := range items {
		price := "Not Set"
		if !it.LastPrice.IsZero() {
			price = it.LastPrice.String()
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %d | %s | %s |\n",
			it.ID, truncate(it.Name, 23), truncate(it.Category, 13),
			it.Quantity, price, it.Status(threshold))
	}
	return b.String()
}

// Overview renders the one-line statistics summary shown above the full
// listing.
func Overview(stats stockroom.Stats) string {
	return fmt.Sprintf("**OVERVIEW**: %d items | Total Qty: %d | Out of Stock: %d | Low Stock: %d\n",
		stats.Items, stats.TotalQuantity, stats.OutCount, stats.LowCount)
}

// StatisticsMarkdown renders the full statistics including the
// per-category counts.
func StatisticsMarkdown(stats stockroom.Stats, categories []string) string {
	var b strings.Builder
	b.WriteString(Overview(stats))
	b.WriteString("\n| Category | Items |\n|:---------|------:|\n")
	for _, cat := range categories {
		if n := stats.PerCategory[cat]; n > 0 {
			fmt.Fprintf(&b, "| %s | %d |\n", cat, n)
		}
	}
	return b.String()
}

// LowStockMarkdown renders the low-stock partition report.
func LowStockMarkdown(report stockroom.LowStockReport) string {
	if len(report.OutOfStock) == 0 && len(report.LowStock) == 0 {
		return "All items are well stocked! No alerts.\n"
	}
	var b strings.Builder
	if len(report.OutOfStock) > 0 {
		fmt.Fprintf(&b, "# CRITICAL - OUT OF STOCK (%d items)\n\n", len(report.OutOfStock))
		b.WriteString(ItemTable(report.OutOfStock, report.Threshold))
		b.WriteString("\n")
	}
	if len(report.LowStock) > 0 {
		fmt.Fprintf(&b, "# LOW STOCK - below %d units (%d items)\n\n", report.Threshold, len(report.LowStock))
		b.WriteString(ItemTable(report.LowStock, report.Threshold))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Action needed for %d item(s).\n", len(report.OutOfStock)+len(report.LowStock))
	return b.String()
}

// HistoryMarkdown renders the classification summary followed by the
// entries, one classic log line each.
func HistoryMarkdown(entries []stockroom.Entry, counts map[stockroom.Kind]int, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**SUMMARY**: %d total actions", total)
	for _, k := range stockroom.Kinds {
		if counts[k] > 0 {
			fmt.Fprintf(&b, " | %d %s", counts[k], k)
		}
	}
	b.WriteString("\n\n")
	if len(entries) == 0 {
		b.WriteString("No history recorded.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "Recent activities (last %d entries):\n\n", len(entries))
	for _, e := range entries {
		fmt.Fprintf(&b, "    %s\n", e)
	}
	return b.String()
}

// Receipt renders one completed sale.
func Receipt(res stockroom.SaleResult) string {
	return fmt.Sprintf("Sold %dx %s @ %s each = %s (remaining stock: %d)\n",
		res.Quantity, res.Item.Name, res.UnitPrice, res.LineTotal, res.Remaining)
}

// SessionSummary renders the per-session sale counters.
func SessionSummary(session stockroom.SaleSession, grandTotal stockroom.Money) string {
	if session.Count == 0 {
		return "No sales made.\n"
	}
	return fmt.Sprintf("Sale session completed! Items sold: %d | Session total: %s | Total revenue: %s\n",
		session.Count, session.Subtotal, grandTotal)
}

// Item renders the full detail of a single item.
func Item(it stockroom.StockItem, threshold int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- Product ID: %d\n", it.ID)
	fmt.Fprintf(&b, "- Name: %s\n", it.Name)
	fmt.Fprintf(&b, "- Category: %s\n", it.Category)
	fmt.Fprintf(&b, "- Quantity: %d (%s)\n", it.Quantity, it.Status(threshold))
	fmt.Fprintf(&b, "- Last Price: %s\n", it.LastPrice)
	fmt.Fprintf(&b, "- Added: %s\n", it.Added.Format("2006-01-02"))
	return b.String()
}

// truncate counts runes, not bytes, so a multibyte name is never cut
// mid-character.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
