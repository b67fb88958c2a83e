package stockroom

// Ledger holds the accumulated revenue of all recorded sales. It is loaded
// once at open, mutated only by the sale transaction, and persisted
// together with the inventory after every mutation. The total never
// decreases.
type Ledger struct {
	total Money
}

// NewLedger creates a ledger starting from the given total.
func NewLedger(total Money) *Ledger {
	return &Ledger{total: total}
}

// Total returns the accumulated revenue.
func (l *Ledger) Total() Money { return l.total }

// add records revenue. Only the sale transaction calls it.
func (l *Ledger) add(amount Money) {
	l.total = l.total.Add(amount)
}

// SaleResult reports a completed sale for operator feedback and for the
// action history.
type SaleResult struct {
	Item      StockItem // post-sale state of the item
	Quantity  int
	UnitPrice Money
	LineTotal Money
	Remaining int
}

// SaleSession accumulates a subtotal and count over repeated sells in one
// session, purely for operator feedback. It is not durable and is
// discarded at session end.
type SaleSession struct {
	Subtotal Money
	Count    int
}

// Record adds a completed sale to the session counters.
func (s *SaleSession) Record(res SaleResult) {
	s.Subtotal = s.Subtotal.Add(res.LineTotal)
	s.Count++
}
