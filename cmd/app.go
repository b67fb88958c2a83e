// Package cmd implements the CLI application to manage a stockroom.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockroom"
	"github.com/google/subcommands"
)

// Commands lists every subcommand of the application. A main package
// registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&sellCmd{},
	&addCmd{},
	&restockCmd{},
	&listCmd{},
	&updateCmd{},
	&deleteCmd{},
	&searchCmd{},
	&lowStockCmd{},
	&historyCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok
// to use a global variable for the config flag.
var configFile = flag.String("config", "", "Path to the config file (YAML). Defaults to stockroom.yaml in the working directory.")

// openTracker loads the configuration and opens the tracker on the
// configured data directory, repairing partial commits first.
func openTracker() (*stockroom.Tracker, error) {
	cfg, err := stockroom.LoadConfig(*configFile)
	if err != nil {
		return nil, err
	}
	t, err := stockroom.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not open tracker: %w", err)
	}
	return t, nil
}

// closeTracker performs the final save and reports it; a failed final
// save must not look like a success.
func closeTracker(t *stockroom.Tracker) subcommands.ExitStatus {
	if err := t.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save on exit: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// fail prints the error and returns the failure status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
