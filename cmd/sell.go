package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/stockroom"
	"github.com/etnz/stockroom/renderer"
	"github.com/google/subcommands"
)

type sellCmd struct {
	id    int
	qty   int
	price string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale, updating stock and revenue" }
func (*sellCmd) Usage() string {
	return `stk sell -id <product_id> -qty <n> -price <unit_price>
stk sell <id> <qty> <price> [<id> <qty> <price> ...]

  Records one sale, or a whole sale session when id/qty/price triplets are
  given as arguments. Each sale decrements the item's stock, overwrites its
  last price, and credits the revenue ledger; inventory and ledger are
  persisted together before the sale is logged.

Usage Examples:
# Sell 10 units of product 101 at $2.00 each.
$ stk sell -id 101 -qty 10 -price 2.00

# A session of two sales.
$ stk sell 101 10 2.00 205 1 3.50

`
}

func (p *sellCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.id, "id", 0, "Product ID of the item to sell.")
	f.IntVar(&p.qty, "qty", 0, "Quantity to sell.")
	f.StringVar(&p.price, "price", "", "Unit price for this sale.")
}

func (p *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	type line struct {
		id, qty int
		price   string
	}
	var lines []line

	if f.NArg() > 0 {
		if f.NArg()%3 != 0 {
			fmt.Fprintln(os.Stderr, "Error: arguments must be id/qty/price triplets.")
			return subcommands.ExitUsageError
		}
		for i := 0; i < f.NArg(); i += 3 {
			id, err := strconv.Atoi(f.Arg(i))
			if err != nil {
				return fail(fmt.Errorf("invalid product id %q: %v", f.Arg(i), err))
			}
			qty, err := strconv.Atoi(f.Arg(i + 1))
			if err != nil {
				return fail(fmt.Errorf("invalid quantity %q: %v", f.Arg(i+1), err))
			}
			lines = append(lines, line{id: id, qty: qty, price: f.Arg(i + 2)})
		}
	} else {
		if p.id == 0 || p.price == "" {
			fmt.Fprintln(os.Stderr, "Error: -id and -price are required.")
			return subcommands.ExitUsageError
		}
		lines = append(lines, line{id: p.id, qty: p.qty, price: p.price})
	}

	t, err := openTracker()
	if err != nil {
		return fail(err)
	}

	var session stockroom.SaleSession
	for _, l := range lines {
		price, err := stockroom.ParseMoney(l.price, t.Config.Currency)
		if err != nil {
			return fail(err)
		}
		res, err := t.Sell(l.id, l.qty, price)
		if err != nil {
			// A rejected sale leaves no state change; earlier sales of
			// the session are already committed.
			return fail(err)
		}
		session.Record(res)
		printMarkdown(renderer.Receipt(res))
	}
	printMarkdown(renderer.SessionSummary(session, t.Ledger.Total()))

	return closeTracker(t)
}
