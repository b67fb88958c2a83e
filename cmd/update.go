package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/etnz/stockroom"
	"github.com/etnz/stockroom/renderer"
	"github.com/google/subcommands"
)

type updateCmd struct {
	id       int
	newID    string
	name     string
	category string
	qty      string
	price    string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "update fields of an existing item" }
func (*updateCmd) Usage() string {
	return `stk update -id <product_id> [-new-id <n>] [-name <s>] [-category <s>] [-qty <n>] [-price <p>]

  Applies only the supplied fields; everything else is left untouched.
  Each supplied field is parsed and validated on its own, and a rejected
  field fails the whole update with an explicit reason, never a silent
  fallback to the old value. Changing the product ID re-checks uniqueness.

Usage Examples:
# Rename item 101 and set its quantity.
$ stk update -id 101 -name "Green Apple" -qty 35

`
}

func (p *updateCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.id, "id", 0, "Product ID of the item to update.")
	f.StringVar(&p.newID, "new-id", "", "New product ID.")
	f.StringVar(&p.name, "name", "", "New name.")
	f.StringVar(&p.category, "category", "", "New category.")
	f.StringVar(&p.qty, "qty", "", "New quantity.")
	f.StringVar(&p.price, "price", "", "New last price.")
}

func (p *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := openTracker()
	if err != nil {
		return fail(err)
	}

	// Build the patch from the flags explicitly set, parsing each field
	// with its own error report.
	var patch stockroom.ItemPatch
	var parseErr error
	f.Visit(func(fl *flag.Flag) {
		if parseErr != nil {
			return
		}
		switch fl.Name {
		case "new-id":
			id, err := strconv.Atoi(p.newID)
			if err != nil {
				parseErr = fmt.Errorf("invalid new product id %q: %v", p.newID, err)
				return
			}
			patch.ID = &id
		case "name":
			patch.Name = &p.name
		case "category":
			patch.Category = &p.category
		case "qty":
			qty, err := strconv.Atoi(p.qty)
			if err != nil {
				parseErr = fmt.Errorf("invalid quantity %q: %v", p.qty, err)
				return
			}
			patch.Quantity = &qty
		case "price":
			price, err := stockroom.ParseMoney(p.price, t.Config.Currency)
			if err != nil {
				parseErr = err
				return
			}
			patch.Price = &price
		}
	})
	if parseErr != nil {
		return fail(parseErr)
	}
	if len(patch.Changed()) == 0 {
		fmt.Println("Nothing to update.")
		return subcommands.ExitSuccess
	}

	updated, err := t.UpdateItem(p.id, patch)
	if err != nil {
		return fail(err)
	}
	fmt.Println("Item updated successfully!")
	printMarkdown(renderer.Item(updated, t.Config.LowStockThreshold))

	return closeTracker(t)
}
