package stockroom

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind is a typed string identifying what an action-history entry records.
// Counts and filters derive from it, never from matching the rendered text.
type Kind string

const (
	KindSale    Kind = "sale"
	KindAdd     Kind = "add"
	KindRestock Kind = "restock"
	KindUpdate  Kind = "update"
	KindDelete  Kind = "delete"
	KindSystem  Kind = "system"
)

// Kinds lists every entry kind in display order.
var Kinds = []Kind{KindSale, KindAdd, KindRestock, KindUpdate, KindDelete, KindSystem}

// Entry is one action-history record. Entries are append-only: they are
// never mutated or deleted, and their order is strictly chronological.
// Which fields are meaningful depends on Kind; the human-readable line is
// produced only at display time by String.
type Entry struct {
	ID   string    // unique entry id
	Time time.Time // when the action happened
	Kind Kind

	// Item fields (sale, add, restock, update, delete).
	ItemID   int
	Name     string
	Category string // add only

	// Quantity is the unit count the action moved: units sold, initial
	// stock on add, units added on restock, units still held on delete.
	Quantity  int
	UnitPrice Money // sale, add
	LineTotal Money // sale
	Remaining int   // sale: stock left after the sale

	Fields  []string // update: names of the changed fields
	Message string   // system events
}

// String renders the entry as the classic history line,
// "[<local timestamp>] <text>".
func (e Entry) String() string {
	return fmt.Sprintf("[%s] %s", e.Time.Format(time.ANSIC), e.text())
}

func (e Entry) text() string {
	switch e.Kind {
	case KindSale:
		return fmt.Sprintf("SALE: %dx %s @ %s each = %s (Remaining: %d)",
			e.Quantity, e.Name, e.UnitPrice, e.LineTotal, e.Remaining)
	case KindAdd:
		return fmt.Sprintf("NEW ITEM: Added %s (ID: %d, Category: %s, Qty: %d)",
			e.Name, e.ItemID, e.Category, e.Quantity)
	case KindRestock:
		return fmt.Sprintf("RESTOCK: Added %d units to %s (New total: %d)",
			e.Quantity, e.Name, e.Remaining)
	case KindUpdate:
		return fmt.Sprintf("UPDATE: %s (ID: %d) changed %s",
			e.Name, e.ItemID, strings.Join(e.Fields, ", "))
	case KindDelete:
		return fmt.Sprintf("DELETE: Removed %s (ID: %d, Had %d units)",
			e.Name, e.ItemID, e.Quantity)
	case KindSystem:
		return e.Message
	default:
		return string(e.Kind)
	}
}

// newEntry stamps a fresh entry of the given kind.
func newEntry(kind Kind) Entry {
	return Entry{ID: uuid.NewString(), Time: time.Now(), Kind: kind}
}

// History is the append-only chronological record of mutating operations.
// Every entry is written to a durable JSONL file and mirrored in memory
// for the lifetime of the process.
type History struct {
	entries  []Entry
	appender func(Entry) error
}

// NewHistory creates a history that persists entries through appender.
// A nil appender keeps the history in memory only, which the tests use.
func NewHistory(appender func(Entry) error) *History {
	return &History{appender: appender}
}

// Load installs previously recorded entries as the in-memory mirror.
func (h *History) Load(entries []Entry) {
	h.entries = append([]Entry(nil), entries...)
}

// Append records the entry in the in-memory mirror and then durably.
// A durable write failure is returned so the caller can warn the operator;
// the mirror keeps the entry either way.
func (h *History) Append(e Entry) error {
	h.entries = append(h.entries, e)
	if h.appender == nil {
		return nil
	}
	if err := h.appender(e); err != nil {
		return fmt.Errorf("could not append to history file: %w", err)
	}
	return nil
}

// Len returns the total number of entries recorded.
func (h *History) Len() int { return len(h.entries) }

// Recent returns the last n entries in chronological order, or all of them
// when fewer than n exist.
func (h *History) Recent(n int) []Entry {
	if n <= 0 || n >= len(h.entries) {
		return append([]Entry(nil), h.entries...)
	}
	return append([]Entry(nil), h.entries[len(h.entries)-n:]...)
}

// Classify counts entries by kind.
func (h *History) Classify() map[Kind]int {
	counts := make(map[Kind]int)
	for _, e := range h.entries {
		counts[e.Kind]++
	}
	return counts
}
