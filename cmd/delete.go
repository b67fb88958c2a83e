package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockroom/renderer"
	"github.com/google/subcommands"
)

type deleteCmd struct {
	id  int
	yes bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete an item from the inventory" }
func (*deleteCmd) Usage() string {
	return `stk delete -id <product_id> [-y]

  Removes an item. Without -y the item is only displayed, so the operator
  can check what would be removed; with -y the removal is unconditional.

Usage Examples:
# Inspect first, then confirm.
$ stk delete -id 101
$ stk delete -id 101 -y

`
}

func (p *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.id, "id", 0, "Product ID of the item to delete.")
	f.BoolVar(&p.yes, "y", false, "Confirm the deletion.")
}

func (p *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := openTracker()
	if err != nil {
		return fail(err)
	}

	if !p.yes {
		item, ok := t.Store.FindByID(p.id)
		if !ok {
			return fail(fmt.Errorf("no item with product id %d", p.id))
		}
		fmt.Println("ITEM TO DELETE:")
		printMarkdown(renderer.Item(item, t.Config.LowStockThreshold))
		if item.Quantity > 0 {
			fmt.Fprintf(os.Stderr, "Warning: this item still has %d units in stock!\n", item.Quantity)
		}
		fmt.Println("Re-run with -y to confirm the deletion.")
		return subcommands.ExitSuccess
	}

	removed, err := t.DeleteItem(p.id)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Item %q deleted successfully!\n", removed.Name)

	return closeTracker(t)
}
