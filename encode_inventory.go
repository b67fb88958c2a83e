package stockroom

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// The durable inventory format is a sequential file of fixed-shape records,
// one per item, each occupying six text lines in this order: product id,
// name, category, quantity, last price, epoch seconds of the creation time.
// There is no record separator and no count header; end of file terminates
// the last record. Names must not contain a newline, which Inventory
// guarantees at add/update time.

// EncodeInventory performs a full write of the ordered item sequence.
func EncodeInventory(w io.Writer, items []StockItem) error {
	bw := bufio.NewWriter(w)
	for _, it := range items {
		fmt.Fprintln(bw, it.ID)
		fmt.Fprintln(bw, it.Name)
		fmt.Fprintln(bw, it.Category)
		fmt.Fprintln(bw, it.Quantity)
		fmt.Fprintln(bw, it.LastPrice.Decimal())
		fmt.Fprintln(bw, it.Added.Unix())
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write inventory: %w", err)
	}
	return nil
}

// DecodeInventory reads records until end of file or the first record that
// cannot be fully parsed. In the latter case it returns everything decoded
// before that record together with an error describing where the file went
// bad: loading is truncated at that point, never silently patched up.
func DecodeInventory(r io.Reader, currency string) ([]StockItem, error) {
	scanner := bufio.NewScanner(r)
	var items []StockItem

	record := make([]string, 0, 6)
	for scanner.Scan() {
		record = append(record, scanner.Text())
		if len(record) < 6 {
			continue
		}

		it, err := parseRecord(record, currency)
		if err != nil {
			return items, fmt.Errorf("malformed record after %d item(s), loading truncated: %w", len(items), err)
		}
		items = append(items, it)
		record = record[:0]
	}
	if err := scanner.Err(); err != nil {
		return items, fmt.Errorf("error reading inventory: %w", err)
	}
	if len(record) > 0 {
		return items, fmt.Errorf("incomplete record after %d item(s): got %d of 6 lines, loading truncated", len(items), len(record))
	}
	return items, nil
}

func parseRecord(lines []string, currency string) (StockItem, error) {
	id, err := strconv.Atoi(lines[0])
	if err != nil {
		return StockItem{}, fmt.Errorf("product id %q: %w", lines[0], err)
	}
	qty, err := strconv.Atoi(lines[3])
	if err != nil {
		return StockItem{}, fmt.Errorf("quantity %q: %w", lines[3], err)
	}
	price, err := decimal.NewFromString(lines[4])
	if err != nil {
		return StockItem{}, fmt.Errorf("price %q: %w", lines[4], err)
	}
	epoch, err := strconv.ParseInt(lines[5], 10, 64)
	if err != nil {
		return StockItem{}, fmt.Errorf("date %q: %w", lines[5], err)
	}
	return StockItem{
		ID:        id,
		Name:      lines[1],
		Category:  lines[2],
		Quantity:  qty,
		LastPrice: M(price, currency),
		Added:     time.Unix(epoch, 0),
	}, nil
}
