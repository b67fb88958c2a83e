package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockroom"
	"github.com/etnz/stockroom/renderer"
	"github.com/google/subcommands"
)

type addCmd struct {
	id       int
	name     string
	category string
	qty      int
	price    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new item to the inventory" }
func (*addCmd) Usage() string {
	return `stk add -id <product_id> -name <name> -category <category> [-qty <n>] [-price <p>]

  Adds a new stock item. The product ID must be positive and unique, the
  name non-empty, and the category one of the configured list. Adding a
  name that already exists is allowed but warned about; 'stk restock' is
  usually what you want then.

Usage Examples:
# Add 50 apples.
$ stk add -id 101 -name Apple -category Fruits -qty 50 -price 0.50

`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.id, "id", 0, "Product ID, positive and unique.")
	f.StringVar(&p.name, "name", "", "Item name.")
	f.StringVar(&p.category, "category", "", "Item category.")
	f.IntVar(&p.qty, "qty", 0, "Initial quantity.")
	f.StringVar(&p.price, "price", "0", "Initial price.")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := openTracker()
	if err != nil {
		return fail(err)
	}

	price, err := stockroom.ParseMoney(p.price, t.Config.Currency)
	if err != nil {
		return fail(err)
	}

	nameTaken, err := t.AddItem(stockroom.StockItem{
		ID:        p.id,
		Name:      p.name,
		Category:  p.category,
		Quantity:  p.qty,
		LastPrice: price,
	})
	if err != nil {
		return fail(err)
	}
	if nameTaken {
		fmt.Fprintf(os.Stderr, "Warning: an item named %q already exists. Use 'stk restock' to add stock to it.\n", p.name)
	}

	item, _ := t.Store.FindByID(p.id)
	fmt.Printf("Item %q added successfully!\n", p.name)
	printMarkdown(renderer.Item(item, t.Config.LowStockThreshold))

	return closeTracker(t)
}
