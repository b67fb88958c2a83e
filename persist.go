package stockroom

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
)

// Gateway reads and writes the three durable artifacts: the inventory
// file, the ledger scalar, and the history JSONL file.
//
// A sale updates two independently-stored artifacts (inventory and
// ledger). To keep a crash from leaving one updated and the other stale,
// Commit stages both as temp files first, drops a commit marker, renames
// both into place, and clears the marker. Recover inspects the leftovers
// at startup: a marker means the commit point was reached and any
// remaining temp is rolled forward; temps without a marker were never
// committed and are rolled back. Neither path guesses.
type Gateway struct {
	cfg *Config
}

// markerFile flags a paired commit in progress.
const markerFile = "commit.pending"

// NewGateway creates a gateway over the configured data directory.
func NewGateway(cfg *Config) *Gateway {
	return &Gateway{cfg: cfg}
}

func (g *Gateway) inventoryPath() string { return filepath.Join(g.cfg.DataDir, g.cfg.InventoryFile) }
func (g *Gateway) ledgerPath() string    { return filepath.Join(g.cfg.DataDir, g.cfg.LedgerFile) }
func (g *Gateway) historyPath() string   { return filepath.Join(g.cfg.DataDir, g.cfg.HistoryFile) }
func (g *Gateway) markerPath() string    { return filepath.Join(g.cfg.DataDir, markerFile) }

// HasInventory reports whether the durable inventory file exists. An
// existing empty file is not the same as a missing one: the former is a
// store that was saved with zero items.
func (g *Gateway) HasInventory() bool {
	_, err := os.Stat(g.inventoryPath())
	return err == nil
}

// LoadInventory reads the ordered item sequence from the inventory file.
// A missing file is an empty inventory. A malformed record truncates the
// load at that point: the items decoded before it are returned together
// with the error, so the caller can keep them and warn loudly.
func (g *Gateway) LoadInventory() ([]StockItem, error) {
	f, err := os.Open(g.inventoryPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open inventory file %q: %w", g.inventoryPath(), err)
	}
	defer f.Close()
	return DecodeInventory(f, g.cfg.Currency)
}

// SaveInventory performs a full rewrite of the inventory file from the
// current ordered sequence.
func (g *Gateway) SaveInventory(items []StockItem) error {
	return g.writeAtomic(g.inventoryPath(), func(w io.Writer) error {
		return EncodeInventory(w, items)
	})
}

// LoadLedgerTotal reads the ledger scalar, defaulting to zero when the
// file is absent.
func (g *Gateway) LoadLedgerTotal() (Money, error) {
	data, err := os.ReadFile(g.ledgerPath())
	if errors.Is(err, fs.ErrNotExist) {
		return M(0, g.cfg.Currency), nil
	}
	if err != nil {
		return Money{}, fmt.Errorf("could not read ledger file %q: %w", g.ledgerPath(), err)
	}
	d, err := decimal.NewFromString(strings.TrimSpace(string(data)))
	if err != nil {
		return Money{}, fmt.Errorf("malformed ledger total %q: %w", strings.TrimSpace(string(data)), err)
	}
	return M(d, g.cfg.Currency), nil
}

// SaveLedgerTotal overwrites the ledger scalar.
func (g *Gateway) SaveLedgerTotal(total Money) error {
	return g.writeAtomic(g.ledgerPath(), func(w io.Writer) error {
		_, err := fmt.Fprintln(w, total.Decimal())
		return err
	})
}

// Commit persists the inventory and the ledger total as one unit. After
// any crash the two artifacts are either both updated or both unchanged.
// Staging is retried once before failing; a returned error means the
// commit point was never reached and the durable state is unchanged.
// Once the marker is durable the commit cannot fail anymore: a rename
// failure past that point leaves the marker in place for the startup
// recovery to finish, and Commit still reports success.
func (g *Gateway) Commit(items []StockItem, total Money) error {
	err := g.commit(items, total)
	if err == nil {
		return nil
	}
	// one retry, then loud failure.
	if err := g.commit(items, total); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}

func (g *Gateway) commit(items []StockItem, total Money) error {
	invTmp := g.inventoryPath() + ".tmp"
	ledTmp := g.ledgerPath() + ".tmp"

	clean := func() {
		os.Remove(invTmp)
		os.Remove(ledTmp)
	}

	if err := writeFile(invTmp, func(w io.Writer) error { return EncodeInventory(w, items) }); err != nil {
		clean()
		return err
	}
	if err := writeFile(ledTmp, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, total.Decimal())
		return err
	}); err != nil {
		clean()
		return err
	}

	// Commit point: both temps are synced, so once the marker exists the
	// new state is committed whatever happens next.
	if err := writeFile(g.markerPath(), func(w io.Writer) error {
		_, err := fmt.Fprintln(w, g.cfg.InventoryFile)
		if err == nil {
			_, err = fmt.Fprintln(w, g.cfg.LedgerFile)
		}
		return err
	}); err != nil {
		clean()
		return err
	}

	if err := g.rollForward(); err != nil {
		// The marker survives, so the next Open finishes the renames.
		log.Printf("warning: commit staged but not finished, will complete on next start: %v", err)
	}
	return nil
}

// rollForward renames any staged temp files into place and clears the
// marker. Call only when the marker exists: the temps were fully synced
// before it was written, so every rename is safe, and a temp already
// renamed is simply gone.
func (g *Gateway) rollForward() error {
	for _, p := range []struct{ tmp, final string }{
		{g.inventoryPath() + ".tmp", g.inventoryPath()},
		{g.ledgerPath() + ".tmp", g.ledgerPath()},
	} {
		if _, err := os.Stat(p.tmp); err == nil {
			if err := os.Rename(p.tmp, p.final); err != nil {
				return err
			}
		}
	}
	return os.Remove(g.markerPath())
}

// Recover repairs the evidence of a partial prior commit. It reports
// whether anything had to be repaired so the caller can log it. It must
// run before any load.
func (g *Gateway) Recover() (repaired bool, err error) {
	invTmp := g.inventoryPath() + ".tmp"
	ledTmp := g.ledgerPath() + ".tmp"

	if _, err := os.Stat(g.markerPath()); err == nil {
		// The commit point was reached, so finish the renames.
		if err := g.rollForward(); err != nil {
			return true, fmt.Errorf("could not complete interrupted commit: %w", err)
		}
		return true, nil
	}

	// No marker: any temp files belong to a commit that never reached its
	// commit point. Roll back by discarding them.
	for _, tmp := range []string{invTmp, ledTmp} {
		if _, err := os.Stat(tmp); err == nil {
			if err := os.Remove(tmp); err != nil {
				return true, fmt.Errorf("could not discard stale temp file %q: %w", tmp, err)
			}
			repaired = true
		}
	}
	return repaired, nil
}

// AppendHistory appends one entry to the durable history file.
func (g *Gateway) AppendHistory(e Entry) error {
	f, err := os.OpenFile(g.historyPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open history file %q: %w", g.historyPath(), err)
	}
	defer f.Close()
	return EncodeEntry(f, e)
}

// LoadHistory reads all previously recorded entries. A missing file is an
// empty history.
func (g *Gateway) LoadHistory() ([]Entry, error) {
	f, err := os.Open(g.historyPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open history file %q: %w", g.historyPath(), err)
	}
	defer f.Close()
	return DecodeHistory(f, g.cfg.Currency)
}

// writeAtomic writes a single artifact through a temp file and rename, so
// a crash mid-write never leaves a half-written final file. The write is
// retried once before failing.
func (g *Gateway) writeAtomic(path string, fill func(io.Writer) error) error {
	write := func() error {
		tmp := path + ".tmp"
		if err := writeFile(tmp, fill); err != nil {
			os.Remove(tmp)
			return err
		}
		return os.Rename(tmp, path)
	}
	if err := write(); err == nil {
		return nil
	}
	if err := write(); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}

// writeFile creates the file, fills it and syncs it to stable storage.
func writeFile(path string, fill func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open %q for writing: %w", path, err)
	}
	if err := fill(f); err != nil {
		f.Close()
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("could not sync %q: %w", path, err)
	}
	return f.Close()
}
