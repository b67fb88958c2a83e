package stockroom

import (
	"fmt"
	"log"
)

// Tracker is the one process-owned context object composing the store, the
// ledger, the action history and the persistence gateway. Nothing in this
// package lives in ambient globals: every component is reached through a
// Tracker, and every mutating operation goes mutate, commit, log, in that
// order. Persistence happens only after the in-memory mutation succeeds,
// and logging only after persistence succeeds.
//
// Execution is single-threaded by design: one operator, one process. A
// Tracker must not be shared between goroutines.
type Tracker struct {
	Config  *Config
	Store   *Inventory
	Ledger  *Ledger
	History *History

	gateway *Gateway
	dirty   bool
}

// Open loads the tracker state from the configured data directory. It
// first repairs any evidence of a partial prior commit, then loads the
// inventory (warning about a truncated file), the ledger total and the
// history.
func Open(cfg *Config) (*Tracker, error) {
	g := NewGateway(cfg)

	repaired, err := g.Recover()
	if err != nil {
		return nil, fmt.Errorf("could not recover from partial commit: %w", err)
	}
	if repaired {
		log.Println("warning: repaired evidence of an interrupted commit")
	}

	items, err := g.LoadInventory()
	if err != nil {
		if items == nil {
			return nil, err
		}
		// Truncated file: keep what was decoded, but loudly.
		log.Printf("warning: %v", err)
	}
	if !g.HasInventory() {
		log.Println("no existing inventory file, starting fresh")
	} else {
		log.Printf("loaded %d items", len(items))
	}
	total, err := g.LoadLedgerTotal()
	if err != nil {
		return nil, err
	}
	entries, err := g.LoadHistory()
	if err != nil {
		return nil, err
	}

	store := NewInventory(cfg)
	store.setItems(items)
	history := NewHistory(g.AppendHistory)
	history.Load(entries)

	return &Tracker{
		Config:  cfg,
		Store:   store,
		Ledger:  NewLedger(total),
		History: history,
		gateway: g,
	}, nil
}

// Close performs the final paired save and records one system event, but
// only when the session mutated anything: read-only sessions leave the
// artifacts untouched.
func (t *Tracker) Close() error {
	if !t.dirty {
		return nil
	}
	if err := t.gateway.Commit(t.Store.Items(), t.Ledger.Total()); err != nil {
		return err
	}
	e := newEntry(KindSystem)
	e.Message = fmt.Sprintf("Session closed (%d items in stock)", t.Store.Len())
	t.log(e)
	return nil
}

// Sell is the one transaction that touches inventory, ledger and history
// together. Preconditions: 0 < qty <= available and unitPrice >= 0; a
// violation fails before any state changes. On success the item quantity
// is decremented, its last price overwritten, and the ledger credited with
// qty x unitPrice; both artifacts are then committed as one unit and the
// sale appended to the history. A failed commit restores the in-memory
// state before returning, so memory and disk never disagree.
func (t *Tracker) Sell(id, qty int, unitPrice Money) (SaleResult, error) {
	if qty <= 0 {
		return SaleResult{}, fmt.Errorf("sale quantity %d: %w", qty, ErrInvalidQuantity)
	}
	if unitPrice.IsNegative() {
		return SaleResult{}, fmt.Errorf("unit price %s: %w", unitPrice, ErrInvalidPrice)
	}
	before, ok := t.Store.FindByID(id)
	if !ok {
		return SaleResult{}, fmt.Errorf("product id %d: %w", id, ErrItemNotFound)
	}
	if qty > before.Quantity {
		return SaleResult{}, fmt.Errorf("%d of %q available, %d requested: %w",
			before.Quantity, before.Name, qty, ErrInsufficientStock)
	}

	remaining := before.Quantity - qty
	after, err := t.Store.Update(id, ItemPatch{Quantity: &remaining, Price: &unitPrice})
	if err != nil {
		return SaleResult{}, err
	}
	lineTotal := unitPrice.MulInt(qty)
	t.Ledger.add(lineTotal)

	if err := t.commit(); err != nil {
		// Roll the in-memory state back so the rejected sale leaves no trace.
		t.Store.Update(id, ItemPatch{Quantity: &before.Quantity, Price: &before.LastPrice})
		t.Ledger.total = t.Ledger.total.Sub(lineTotal)
		return SaleResult{}, err
	}

	res := SaleResult{
		Item:      after,
		Quantity:  qty,
		UnitPrice: unitPrice,
		LineTotal: lineTotal,
		Remaining: remaining,
	}
	e := newEntry(KindSale)
	e.ItemID, e.Name = after.ID, after.Name
	e.Quantity, e.UnitPrice, e.LineTotal, e.Remaining = qty, unitPrice, lineTotal, remaining
	t.log(e)
	return res, nil
}

// AddItem validates and stores a new item, then commits and logs it.
// It reports whether the name duplicates an existing item.
func (t *Tracker) AddItem(item StockItem) (nameTaken bool, err error) {
	nameTaken, err = t.Store.Add(item)
	if err != nil {
		return false, err
	}
	added, _ := t.Store.FindByID(item.ID)
	if err := t.commit(); err != nil {
		t.Store.Remove(item.ID)
		return nameTaken, err
	}
	e := newEntry(KindAdd)
	e.ItemID, e.Name, e.Category = added.ID, added.Name, added.Category
	e.Quantity, e.UnitPrice = added.Quantity, added.LastPrice
	t.log(e)
	return nameTaken, nil
}

// Restock increments an existing item's quantity, then commits and logs.
func (t *Tracker) Restock(id, extra int) (StockItem, error) {
	before, _ := t.Store.FindByID(id)
	item, err := t.Store.Restock(id, extra)
	if err != nil {
		return StockItem{}, err
	}
	if err := t.commit(); err != nil {
		t.Store.Update(id, ItemPatch{Quantity: &before.Quantity})
		return StockItem{}, err
	}
	e := newEntry(KindRestock)
	e.ItemID, e.Name = item.ID, item.Name
	e.Quantity, e.Remaining = extra, item.Quantity
	t.log(e)
	return item, nil
}

// UpdateItem applies a partial update, then commits and logs which fields
// changed.
func (t *Tracker) UpdateItem(id int, patch ItemPatch) (StockItem, error) {
	before, ok := t.Store.FindByID(id)
	if !ok {
		return StockItem{}, fmt.Errorf("product id %d: %w", id, ErrItemNotFound)
	}
	updated, err := t.Store.Update(id, patch)
	if err != nil {
		return StockItem{}, err
	}
	if err := t.commit(); err != nil {
		t.Store.Update(updated.ID, ItemPatch{
			ID: &before.ID, Name: &before.Name, Category: &before.Category,
			Quantity: &before.Quantity, Price: &before.LastPrice,
		})
		return StockItem{}, err
	}
	e := newEntry(KindUpdate)
	e.ItemID, e.Name = updated.ID, updated.Name
	e.Fields = patch.Changed()
	t.log(e)
	return updated, nil
}

// DeleteItem removes the item, then commits and logs. The caller is
// responsible for having confirmed the removal.
func (t *Tracker) DeleteItem(id int) (StockItem, error) {
	snapshot := t.Store.Items()
	removed, err := t.Store.Remove(id)
	if err != nil {
		return StockItem{}, err
	}
	if err := t.commit(); err != nil {
		// Restore the snapshot so the item keeps its original position.
		t.Store.setItems(snapshot)
		return StockItem{}, err
	}
	e := newEntry(KindDelete)
	e.ItemID, e.Name, e.Quantity = removed.ID, removed.Name, removed.Quantity
	t.log(e)
	return removed, nil
}

// commit persists the inventory and ledger pair and marks the session
// dirty.
func (t *Tracker) commit() error {
	if err := t.gateway.Commit(t.Store.Items(), t.Ledger.Total()); err != nil {
		return err
	}
	t.dirty = true
	return nil
}

// log appends an entry to the history. A durable append failure is a
// warning, never fatal: the operation itself is already committed.
func (t *Tracker) log(e Entry) {
	if err := t.History.Append(e); err != nil {
		log.Printf("warning: %v", err)
	}
}
