package stockroom

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Scenario: add Apple (id 101, qty 50), sell 10 at $2.00, expect quantity
// 40, ledger total $20.00, and a history entry referencing both.
func TestTracker_Sell(t *testing.T) {
	tr := openTestTracker(t)
	if _, err := tr.AddItem(apple()); err != nil {
		t.Fatalf("AddItem() failed: %v", err)
	}

	res, err := tr.Sell(101, 10, usd(2))
	if err != nil {
		t.Fatalf("Sell() failed: %v", err)
	}

	if res.Remaining != 40 {
		t.Errorf("Remaining = %d, want 40", res.Remaining)
	}
	if !res.LineTotal.Equal(usd(20)) {
		t.Errorf("LineTotal = %s, want $20.00", res.LineTotal)
	}
	item, _ := tr.Store.FindByID(101)
	if item.Quantity != 40 {
		t.Errorf("item quantity = %d, want 40", item.Quantity)
	}
	if !item.LastPrice.Equal(usd(2)) {
		t.Errorf("LastPrice = %s, want $2.00 (overwritten by the sale)", item.LastPrice)
	}
	if !tr.Ledger.Total().Equal(usd(20)) {
		t.Errorf("ledger total = %s, want $20.00", tr.Ledger.Total())
	}

	entries := tr.History.Recent(1)
	if len(entries) != 1 || entries[0].Kind != KindSale {
		t.Fatalf("expected one sale entry, got %+v", entries)
	}
	if entries[0].Name != "Apple" || entries[0].Quantity != 10 {
		t.Errorf("sale entry = %+v, want Apple x10", entries[0])
	}
}

func TestTracker_Sell_Rejections(t *testing.T) {
	testCases := []struct {
		name    string
		id      int
		qty     int
		price   Money
		wantErr error
	}{
		{"zero quantity", 101, 0, usd(2), ErrInvalidQuantity},
		{"negative quantity", 101, -5, usd(2), ErrInvalidQuantity},
		{"more than available", 101, 51, usd(2), ErrInsufficientStock},
		{"negative price", 101, 1, usd(-2), ErrInvalidPrice},
		{"unknown item", 999, 1, usd(2), ErrItemNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tr := openTestTracker(t)
			if _, err := tr.AddItem(apple()); err != nil {
				t.Fatalf("AddItem() failed: %v", err)
			}
			historyLen := tr.History.Len()

			_, err := tr.Sell(tc.id, tc.qty, tc.price)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Sell() error = %v, want %v", err, tc.wantErr)
			}

			// A rejected sale changes nothing.
			item, _ := tr.Store.FindByID(101)
			if item.Quantity != 50 {
				t.Errorf("quantity = %d, want 50 unchanged", item.Quantity)
			}
			if !tr.Ledger.Total().IsZero() {
				t.Errorf("ledger total = %s, want zero unchanged", tr.Ledger.Total())
			}
			if tr.History.Len() != historyLen {
				t.Error("a rejected sale must not be logged")
			}
		})
	}
}

// Selling an out-of-stock item fails and the durable artifacts stay
// byte-identical.
func TestTracker_Sell_OutOfStockLeavesFilesUntouched(t *testing.T) {
	cfg := testConfig(t)
	tr, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	empty := apple()
	empty.Quantity = 0
	if _, err := tr.AddItem(empty); err != nil {
		t.Fatalf("AddItem() failed: %v", err)
	}

	g := NewGateway(cfg)
	invBefore, ledBefore := readArtifacts(t, g)

	if _, err := tr.Sell(101, 1, usd(2)); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("Sell() error = %v, want ErrInsufficientStock", err)
	}

	invAfter, ledAfter := readArtifacts(t, g)
	if invBefore != invAfter {
		t.Error("inventory file changed on a rejected sale")
	}
	if ledBefore != ledAfter {
		t.Error("ledger file changed on a rejected sale")
	}
}

// The ledger total only ever grows.
func TestTracker_LedgerIsMonotonic(t *testing.T) {
	tr := openTestTracker(t)
	it := apple()
	it.Quantity = 100
	if _, err := tr.AddItem(it); err != nil {
		t.Fatalf("AddItem() failed: %v", err)
	}

	prev := tr.Ledger.Total()
	sales := []struct {
		qty   int
		price Money
	}{
		{10, usd(2)},
		{5, usd(0)}, // a free sale is allowed and adds nothing
		{1, usd(3.5)},
	}
	for _, s := range sales {
		if _, err := tr.Sell(101, s.qty, s.price); err != nil {
			t.Fatalf("Sell(%d, %s) failed: %v", s.qty, s.price, err)
		}
		if tr.Ledger.Total().LessThan(prev) {
			t.Fatalf("ledger total decreased: %s < %s", tr.Ledger.Total(), prev)
		}
		prev = tr.Ledger.Total()
	}
	if !tr.Ledger.Total().Equal(usd(23.5)) {
		t.Errorf("ledger total = %s, want $23.50", tr.Ledger.Total())
	}
}

// State survives a close/reopen cycle: the sale's effects are durable.
func TestTracker_Reload(t *testing.T) {
	cfg := testConfig(t)
	tr, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := tr.AddItem(apple()); err != nil {
		t.Fatalf("AddItem() failed: %v", err)
	}
	if _, err := tr.Sell(101, 10, usd(2)); err != nil {
		t.Fatalf("Sell() failed: %v", err)
	}
	if err := tr.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	reopened, err := Open(cfg)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	item, ok := reopened.Store.FindByID(101)
	if !ok {
		t.Fatal("item lost across restart")
	}
	if item.Quantity != 40 {
		t.Errorf("quantity = %d, want 40", item.Quantity)
	}
	if !reopened.Ledger.Total().Equal(usd(20)) {
		t.Errorf("ledger total = %s, want $20.00", reopened.Ledger.Total())
	}
	// The sale, the add and the session-close events survived too.
	counts := reopened.History.Classify()
	if counts[KindSale] != 1 || counts[KindAdd] != 1 || counts[KindSystem] != 1 {
		t.Errorf("history counts = %v, want 1 sale, 1 add, 1 system", counts)
	}
}

func TestTracker_SaleSession(t *testing.T) {
	tr := openTestTracker(t)
	it := apple()
	it.Quantity = 100
	if _, err := tr.AddItem(it); err != nil {
		t.Fatalf("AddItem() failed: %v", err)
	}

	var session SaleSession
	for _, qty := range []int{10, 20} {
		res, err := tr.Sell(101, qty, usd(1))
		if err != nil {
			t.Fatalf("Sell() failed: %v", err)
		}
		session.Record(res)
	}
	if session.Count != 2 {
		t.Errorf("session count = %d, want 2", session.Count)
	}
	if !session.Subtotal.Equal(usd(30)) {
		t.Errorf("session subtotal = %s, want $30.00", session.Subtotal)
	}
}

func TestTracker_DeleteRestockUpdateAreLogged(t *testing.T) {
	tr := openTestTracker(t)
	if _, err := tr.AddItem(apple()); err != nil {
		t.Fatalf("AddItem() failed: %v", err)
	}
	if _, err := tr.Restock(101, 25); err != nil {
		t.Fatalf("Restock() failed: %v", err)
	}
	qty := 60
	if _, err := tr.UpdateItem(101, ItemPatch{Quantity: &qty}); err != nil {
		t.Fatalf("UpdateItem() failed: %v", err)
	}
	if _, err := tr.DeleteItem(101); err != nil {
		t.Fatalf("DeleteItem() failed: %v", err)
	}

	counts := tr.History.Classify()
	for _, k := range []Kind{KindAdd, KindRestock, KindUpdate, KindDelete} {
		if counts[k] != 1 {
			t.Errorf("counts[%s] = %d, want 1", k, counts[k])
		}
	}
}

// "Starting fresh" is only for a missing inventory file; an existing file
// with zero items is a store that was saved empty.
func TestOpen_LoadNotice(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	cfg := testConfig(t)
	if _, err := Open(cfg); err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "starting fresh") {
		t.Errorf("open without an inventory file logged %q, want a starting-fresh notice", buf.String())
	}

	buf.Reset()
	if err := os.WriteFile(filepath.Join(cfg.DataDir, cfg.InventoryFile), nil, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(cfg); err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if strings.Contains(buf.String(), "starting fresh") {
		t.Error("an existing empty inventory file must not be reported as starting fresh")
	}
}

// readArtifacts returns the raw content of the inventory and ledger files.
func readArtifacts(t *testing.T, g *Gateway) (inventory, ledger string) {
	t.Helper()
	inv, err := os.ReadFile(g.inventoryPath())
	if err != nil {
		t.Fatalf("could not read inventory artifact: %v", err)
	}
	led, err := os.ReadFile(g.ledgerPath())
	if err != nil {
		t.Fatalf("could not read ledger artifact: %v", err)
	}
	return string(inv), string(led)
}
