package stockroom

// Read-only derived views over the inventory. None of these mutate any
// state, so they are repeatable across calls.

// Search returns the items whose name or category contains the term,
// case-insensitively, preserving store order.
func Search(inv *Inventory, term string) []StockItem {
	return inv.FindByText(term)
}

// LowStockReport partitions the inventory against a threshold. An item
// appears in OutOfStock when its quantity is zero, in LowStock when it is
// strictly between zero and the threshold, and in neither otherwise.
type LowStockReport struct {
	Threshold  int
	OutOfStock []StockItem
	LowStock   []StockItem
}

// LowStock builds the report for the given threshold. The threshold is
// per-invocation; nothing about it is persisted.
func LowStock(inv *Inventory, threshold int) LowStockReport {
	report := LowStockReport{Threshold: threshold}
	for _, it := range inv.Items() {
		switch {
		case it.Quantity == 0:
			report.OutOfStock = append(report.OutOfStock, it)
		case it.Quantity < threshold:
			report.LowStock = append(report.LowStock, it)
		}
	}
	return report
}

// Stats is a pure aggregation over the current inventory state.
type Stats struct {
	Items         int
	TotalQuantity int
	PerCategory   map[string]int
	LowCount      int
	OutCount      int
}

// Statistics aggregates the inventory against the given low-stock
// threshold.
func Statistics(inv *Inventory, threshold int) Stats {
	stats := Stats{PerCategory: make(map[string]int)}
	for _, it := range inv.Items() {
		stats.Items++
		stats.TotalQuantity += it.Quantity
		stats.PerCategory[it.Category]++
		switch {
		case it.Quantity == 0:
			stats.OutCount++
		case it.Quantity < threshold:
			stats.LowCount++
		}
	}
	return stats
}
