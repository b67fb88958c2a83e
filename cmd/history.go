package cmd

import (
	"context"
	"flag"

	"github.com/etnz/stockroom/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	tail int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "view the action history" }
func (*historyCmd) Usage() string {
	return `stk history [-n <count>]

  Shows the most recent entries of the append-only action history in
  chronological order, preceded by a summary of entry counts by kind.

Usage Examples:
# The last 20 actions.
$ stk history

# Everything since the beginning.
$ stk history -n 0

`
}

func (p *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.tail, "n", 20, "Number of recent entries to show; 0 shows all.")
}

func (p *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := openTracker()
	if err != nil {
		return fail(err)
	}

	entries := t.History.Recent(p.tail)
	printMarkdown(renderer.HistoryMarkdown(entries, t.History.Classify(), t.History.Len()))

	return subcommands.ExitSuccess
}
