package stockroom

import (
	"fmt"
	"strings"
	"time"
)

// StockItem is a single inventory record. Items are constructed and mutated
// only through the Inventory, which enforces the invariants: positive unique
// ID, non-empty name, configured category, non-negative quantity and price.
type StockItem struct {
	ID       int
	Name     string
	Category string
	Quantity int
	// LastPrice is the unit price of the most recent sale, or the initial
	// entry price. Prior prices are not retained here; the action history
	// records the price of every sale.
	LastPrice Money
	// Added is the creation timestamp. It is immutable and persisted as
	// epoch seconds.
	Added time.Time
}

// validate checks the per-field invariants against the configured
// category list. Uniqueness of the ID is the Inventory's concern.
func (it StockItem) validate(cfg *Config) error {
	if it.ID <= 0 {
		return fmt.Errorf("product id %d: %w", it.ID, ErrDuplicateID)
	}
	if err := validName(it.Name); err != nil {
		return err
	}
	if !cfg.ValidCategory(it.Category) {
		return fmt.Errorf("%q: %w", it.Category, ErrUnknownCategory)
	}
	if it.Quantity < 0 {
		return fmt.Errorf("quantity %d: %w", it.Quantity, ErrInvalidQuantity)
	}
	if it.LastPrice.IsNegative() {
		return fmt.Errorf("price %s: %w", it.LastPrice, ErrInvalidPrice)
	}
	return nil
}

// validName rejects names the durable format cannot hold: a record's name
// occupies exactly one line of the inventory file, so a newline inside it
// would corrupt every record after it.
func validName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if strings.ContainsAny(name, "\n\r") {
		return fmt.Errorf("name %q: %w", name, ErrInvalidName)
	}
	return nil
}

// Status summarizes the stock level of the item against a threshold:
// "OUT" for zero, "LOW" below the threshold, "OK" otherwise.
func (it StockItem) Status(threshold int) string {
	switch {
	case it.Quantity == 0:
		return "OUT"
	case it.Quantity < threshold:
		return "LOW"
	default:
		return "OK"
	}
}
