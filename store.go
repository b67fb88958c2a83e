package stockroom

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Inventory is the authoritative in-memory collection of stock items.
//
// Items are kept in insertion order; that order is significant for display
// and iteration, and it is the order the durable file preserves. Lookups
// are linear scans, which is fine at console scale.
type Inventory struct {
	items []StockItem
	cfg   *Config
}

// NewInventory creates an empty inventory validating against cfg.
func NewInventory(cfg *Config) *Inventory {
	return &Inventory{cfg: cfg}
}

// Len returns the number of items in the inventory.
func (inv *Inventory) Len() int { return len(inv.items) }

// Items returns a copy of the current ordered item sequence. Mutating the
// returned slice does not affect the inventory.
func (inv *Inventory) Items() []StockItem {
	return slices.Clone(inv.items)
}

// setItems installs a loaded item sequence, bypassing per-item validation:
// the durable file is trusted as the product of previously validated
// operations. Used by Tracker at open time.
func (inv *Inventory) setItems(items []StockItem) {
	inv.items = slices.Clone(items)
}

// Add validates the candidate and appends it to the inventory, preserving
// insertion order. A zero Added timestamp is set to now. It returns true
// when the name duplicates an existing item: duplicate names are accepted
// but worth a warning, and usually mean the operator wanted Restock.
func (inv *Inventory) Add(item StockItem) (nameTaken bool, err error) {
	if err := item.validate(inv.cfg); err != nil {
		return false, err
	}
	if inv.indexByID(item.ID) >= 0 {
		return false, fmt.Errorf("product id %d: %w", item.ID, ErrDuplicateID)
	}
	if item.Added.IsZero() {
		item.Added = time.Now()
	}
	_, nameTaken = inv.FindByName(item.Name)
	inv.items = append(inv.items, item)
	return nameTaken, nil
}

// Restock increments the quantity of the item by extra.
func (inv *Inventory) Restock(id, extra int) (StockItem, error) {
	if extra < 0 {
		return StockItem{}, fmt.Errorf("restock by %d: %w", extra, ErrInvalidQuantity)
	}
	i := inv.indexByID(id)
	if i < 0 {
		return StockItem{}, fmt.Errorf("product id %d: %w", id, ErrItemNotFound)
	}
	inv.items[i].Quantity += extra
	return inv.items[i], nil
}

// ItemPatch describes a partial update: only non-nil fields are applied.
// Each field is validated on its own, so the caller can report exactly
// which field was rejected instead of silently keeping the old value.
type ItemPatch struct {
	ID       *int
	Name     *string
	Category *string
	Quantity *int
	Price    *Money
}

// Update applies the patch to the item identified by id. Changing the ID
// re-checks uniqueness excluding the item's own slot. Nothing is mutated
// when any supplied field fails validation.
func (inv *Inventory) Update(id int, patch ItemPatch) (StockItem, error) {
	i := inv.indexByID(id)
	if i < 0 {
		return StockItem{}, fmt.Errorf("product id %d: %w", id, ErrItemNotFound)
	}

	updated := inv.items[i]
	if patch.ID != nil {
		if *patch.ID <= 0 {
			return StockItem{}, fmt.Errorf("product id %d: %w", *patch.ID, ErrDuplicateID)
		}
		if j := inv.indexByID(*patch.ID); j >= 0 && j != i {
			return StockItem{}, fmt.Errorf("product id %d: %w", *patch.ID, ErrDuplicateID)
		}
		updated.ID = *patch.ID
	}
	if patch.Name != nil {
		if err := validName(*patch.Name); err != nil {
			return StockItem{}, err
		}
		updated.Name = *patch.Name
	}
	if patch.Category != nil {
		if !inv.cfg.ValidCategory(*patch.Category) {
			return StockItem{}, fmt.Errorf("%q: %w", *patch.Category, ErrUnknownCategory)
		}
		updated.Category = *patch.Category
	}
	if patch.Quantity != nil {
		if *patch.Quantity < 0 {
			return StockItem{}, fmt.Errorf("quantity %d: %w", *patch.Quantity, ErrInvalidQuantity)
		}
		updated.Quantity = *patch.Quantity
	}
	if patch.Price != nil {
		if patch.Price.IsNegative() {
			return StockItem{}, fmt.Errorf("price %s: %w", *patch.Price, ErrInvalidPrice)
		}
		updated.LastPrice = *patch.Price
	}

	inv.items[i] = updated
	return updated, nil
}

// Changed lists the names of the fields the patch supplies, for the action
// history.
func (p ItemPatch) Changed() []string {
	var fields []string
	if p.ID != nil {
		fields = append(fields, "id")
	}
	if p.Name != nil {
		fields = append(fields, "name")
	}
	if p.Category != nil {
		fields = append(fields, "category")
	}
	if p.Quantity != nil {
		fields = append(fields, "quantity")
	}
	if p.Price != nil {
		fields = append(fields, "price")
	}
	return fields
}

// Remove deletes the item identified by id. Confirmation is the caller's
// concern; once called, removal is unconditional.
func (inv *Inventory) Remove(id int) (StockItem, error) {
	i := inv.indexByID(id)
	if i < 0 {
		return StockItem{}, fmt.Errorf("product id %d: %w", id, ErrItemNotFound)
	}
	removed := inv.items[i]
	inv.items = slices.Delete(inv.items, i, i+1)
	return removed, nil
}

// FindByID returns the item with the given product id.
func (inv *Inventory) FindByID(id int) (StockItem, bool) {
	if i := inv.indexByID(id); i >= 0 {
		return inv.items[i], true
	}
	return StockItem{}, false
}

// FindByName returns the first item whose name matches exactly.
func (inv *Inventory) FindByName(name string) (StockItem, bool) {
	for _, it := range inv.items {
		if it.Name == name {
			return it, true
		}
	}
	return StockItem{}, false
}

// FindByText returns all items whose name or category contains the term,
// case-insensitively, in store order.
func (inv *Inventory) FindByText(term string) []StockItem {
	term = strings.ToLower(term)
	var matches []StockItem
	for _, it := range inv.items {
		if strings.Contains(strings.ToLower(it.Name), term) ||
			strings.Contains(strings.ToLower(it.Category), term) {
			matches = append(matches, it)
		}
	}
	return matches
}

func (inv *Inventory) indexByID(id int) int {
	for i, it := range inv.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
