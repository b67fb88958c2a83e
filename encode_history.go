package stockroom

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// entryCmd is a specialized struct for decoding JSONL history lines. All
// possible fields appear here; the kind decides which ones are meaningful.
type entryCmd struct {
	ID        string          `json:"id"`
	Time      time.Time       `json:"time"`
	Kind      Kind            `json:"kind"`
	ItemID    int             `json:"itemId,omitempty"`
	Name      string          `json:"name,omitempty"`
	Category  string          `json:"category,omitempty"`
	Quantity  int             `json:"quantity,omitempty"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
	Remaining int             `json:"remaining"`
	Fields    []string        `json:"fields,omitempty"`
	Message   string          `json:"message,omitempty"`
}

// EncodeEntry marshals a single history entry to JSON and writes it to the
// writer, followed by a newline, in JSONL format. Keys are emitted in a
// canonical order.
func EncodeEntry(w io.Writer, e Entry) error {
	var ow jsonObjectWriter
	ow.Append("id", e.ID)
	ow.Append("time", e.Time)
	ow.Append("kind", e.Kind)
	ow.Optional("itemId", e.ItemID)
	ow.Optional("name", e.Name)
	ow.Optional("category", e.Category)
	ow.Optional("quantity", e.Quantity)
	switch e.Kind {
	case KindSale:
		// remaining can legitimately be zero, so it is always written.
		ow.Append("unitPrice", e.UnitPrice.Decimal())
		ow.Append("lineTotal", e.LineTotal.Decimal())
		ow.Append("remaining", e.Remaining)
	case KindAdd:
		ow.Append("unitPrice", e.UnitPrice.Decimal())
	case KindRestock:
		ow.Append("remaining", e.Remaining)
	}
	ow.Optional("fields", e.Fields)
	ow.Optional("message", e.Message)

	data, err := ow.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal history entry: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write history entry: %w", err)
	}
	return nil
}

// DecodeHistory decodes history entries from a stream of JSONL data,
// one entry per line, in the order they were appended. The currency is
// applied to the monetary fields, which are stored as plain decimals.
func DecodeHistory(r io.Reader, currency string) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var cmd entryCmd
		if err := json.Unmarshal(lineBytes, &cmd); err != nil {
			return nil, fmt.Errorf("could not decode history line %q: %w", string(lineBytes), err)
		}
		entries = append(entries, Entry{
			ID:        cmd.ID,
			Time:      cmd.Time,
			Kind:      cmd.Kind,
			ItemID:    cmd.ItemID,
			Name:      cmd.Name,
			Category:  cmd.Category,
			Quantity:  cmd.Quantity,
			UnitPrice: M(cmd.UnitPrice, currency),
			LineTotal: M(cmd.LineTotal, currency),
			Remaining: cmd.Remaining,
			Fields:    cmd.Fields,
			Message:   cmd.Message,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading history: %w", err)
	}
	return entries, nil
}
