package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/stockroom"
	"github.com/etnz/stockroom/renderer"
	"github.com/google/subcommands"
)

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search items by name or category" }
func (*searchCmd) Usage() string {
	return `stk search <term>

  Case-insensitive substring search against item names and categories,
  in store order. Read-only.

Usage Examples:
# Everything apple-ish, and the whole Fruits category.
$ stk search apple
$ stk search fruits

`
}

func (*searchCmd) SetFlags(*flag.FlagSet) {}

func (p *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a search term is required.")
		return subcommands.ExitUsageError
	}
	term := strings.Join(f.Args(), " ")

	t, err := openTracker()
	if err != nil {
		return fail(err)
	}

	results := stockroom.Search(t.Store, term)
	if len(results) == 0 {
		fmt.Printf("No items found matching %q.\n", term)
		return subcommands.ExitSuccess
	}
	fmt.Printf("Found %d item(s) matching %q:\n\n", len(results), term)
	printMarkdown(renderer.ItemTable(results, t.Config.LowStockThreshold))

	return subcommands.ExitSuccess
}
