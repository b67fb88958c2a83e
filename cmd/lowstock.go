package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/stockroom"
	"github.com/etnz/stockroom/renderer"
	"github.com/google/subcommands"
)

type lowStockCmd struct {
	threshold int
}

func (*lowStockCmd) Name() string     { return "lowstock" }
func (*lowStockCmd) Synopsis() string { return "alert on out-of-stock and low-stock items" }
func (*lowStockCmd) Usage() string {
	return `stk lowstock [-t <threshold>]

  Partitions the inventory into out-of-stock items (quantity zero) and
  low-stock items (below the threshold). The threshold defaults to the
  configured value and applies to this invocation only.

Usage Examples:
# Use the configured threshold.
$ stk lowstock

# A stricter check.
$ stk lowstock -t 5

`
}

func (p *lowStockCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.threshold, "t", 0, "Low-stock threshold. Defaults to the configured value.")
}

func (p *lowStockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := openTracker()
	if err != nil {
		return fail(err)
	}

	threshold := p.threshold
	if threshold <= 0 {
		threshold = t.Config.LowStockThreshold
	}
	report := stockroom.LowStock(t.Store, threshold)
	fmt.Printf("Items with stock below %d units:\n\n", threshold)
	printMarkdown(renderer.LowStockMarkdown(report))

	return subcommands.ExitSuccess
}
