package stockroom

import "errors"

// Validation errors. They are raised before any state is mutated, so an
// operation that returns one leaves the store, the ledger and the files
// untouched.
var (
	ErrDuplicateID     = errors.New("product id must be positive and unique")
	ErrEmptyName       = errors.New("item name cannot be empty")
	ErrInvalidName     = errors.New("item name must fit on one line")
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidPrice    = errors.New("invalid price")
)

// ErrItemNotFound is returned when an operation references an item that is
// no longer (or never was) in the inventory.
var ErrItemNotFound = errors.New("item not found")

// ErrInsufficientStock rejects a sale for more units than are available.
// The sale is rejected whole; no partial decrement occurs.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrPersist wraps a durable write failure. A missing file on read is never
// an error (it decodes to the empty default); a failed write must surface
// loudly because silently losing a recorded sale is the worst failure this
// tool can have.
var ErrPersist = errors.New("could not persist")
