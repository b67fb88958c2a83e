package stockroom

import (
	"testing"
	"time"
)

// testConfig returns a config rooted in a fresh temp directory, with the
// default categories and threshold.
func testConfig(t *testing.T) *Config {
	t.Helper()
	return &Config{
		DataDir:           t.TempDir(),
		InventoryFile:     "stock.dat",
		LedgerFile:        "grand_total.dat",
		HistoryFile:       "history.jsonl",
		Categories:        DefaultCategories,
		LowStockThreshold: 15,
		Currency:          "USD",
	}
}

// usd is a shorthand for amounts in the test currency.
func usd(v float64) Money { return M(v, "USD") }

// apple returns the canonical test item.
func apple() StockItem {
	return StockItem{
		ID:       101,
		Name:     "Apple",
		Category: "Fruits",
		Quantity: 50,
		Added:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local),
	}
}

// openTestTracker opens a tracker over a fresh temp directory.
func openTestTracker(t *testing.T) *Tracker {
	t.Helper()
	tr, err := Open(testConfig(t))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	return tr
}
