package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/stockroom"
	"github.com/etnz/stockroom/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	stats bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "view all stock items with overview statistics" }
func (*listCmd) Usage() string {
	return `stk list [-stats]

  Displays every item in store order, preceded by the overview line
  (item count, total quantity, out-of-stock and low-stock counts) and the
  current total revenue. With -stats, also shows per-category counts.

Usage Examples:
# The full table.
$ stk list

`
}

func (p *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.stats, "stats", false, "Also show per-category statistics.")
}

func (p *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := openTracker()
	if err != nil {
		return fail(err)
	}

	stats := stockroom.Statistics(t.Store, t.Config.LowStockThreshold)
	fmt.Printf("Total Revenue: %s | Items in Stock: %d\n\n", t.Ledger.Total(), t.Store.Len())
	if p.stats {
		printMarkdown(renderer.StatisticsMarkdown(stats, t.Config.Categories))
	} else {
		printMarkdown(renderer.Overview(stats))
	}
	printMarkdown(renderer.ItemTable(t.Store.Items(), t.Config.LowStockThreshold))

	return closeTracker(t)
}
