package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type restockCmd struct {
	id  int
	qty int
}

func (*restockCmd) Name() string     { return "restock" }
func (*restockCmd) Synopsis() string { return "add stock to an existing item" }
func (*restockCmd) Usage() string {
	return `stk restock -id <product_id> -qty <n>

  Increments an existing item's quantity without creating a new record.

Usage Examples:
# Receive 30 more apples.
$ stk restock -id 101 -qty 30

`
}

func (p *restockCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.id, "id", 0, "Product ID of the item to restock.")
	f.IntVar(&p.qty, "qty", 0, "Quantity to add.")
}

func (p *restockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := openTracker()
	if err != nil {
		return fail(err)
	}

	item, err := t.Restock(p.id, p.qty)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Stock updated! %s now has %d units.\n", item.Name, item.Quantity)

	return closeTracker(t)
}
