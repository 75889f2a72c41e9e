// Package cmd implements the CLI application to manage a CoinTrack ledger.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/cointrack"
	"github.com/etnz/cointrack/config"
	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
)

// Commands lists every subcommand with its group.
var Commands = []struct {
	Command subcommands.Command
	Group   string
}{
	{&incomeCmd{}, "transactions"},
	{&expenseCmd{}, "transactions"},
	{&budgetCmd{}, "budgets"},
	{&balanceCmd{}, "analytics"},
	{&topCmd{}, "analytics"},
	{&budgetsCmd{}, "analytics"},
	{&analyticsCmd{}, "analytics"},
	{&reportCmd{}, "analytics"},
	{&topicCmd{}, "help"},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, e := range Commands {
		c.Register(e.Command, e.Group)
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", config.DefaultFile, "Path to the YAML configuration file")
var dataDir = flag.String("data-dir", "", "Directory holding the transactions and budgets files, overrides the configuration")

// stdin and stdout are variables so that tests can replace them.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

// Configure loads and validates the configuration and applies the log level.
func Configure() (config.Application, error) {
	app, err := config.Load(*configFile)
	if err != nil {
		return app, err
	}
	if *dataDir != "" {
		app.Data.Dir = *dataDir
	}
	if err := app.Validate(); err != nil {
		return app, fmt.Errorf("invalid configuration: %w", err)
	}
	level, _ := log.ParseLevel(app.Log.Level) // checked by Validate
	log.SetLevel(level)
	return app, nil
}

// Open opens both stores and the analytics built on them.
func Open() (*cointrack.TransactionStore, *cointrack.BudgetStore, *cointrack.Analytics, error) {
	app, err := Configure()
	if err != nil {
		return nil, nil, nil, err
	}
	txs, err := cointrack.OpenTransactionStore(app.TransactionsPath())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not open transactions: %w", err)
	}
	budgets, err := cointrack.OpenBudgetStore(app.BudgetsPath())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not open budgets: %w", err)
	}
	return txs, budgets, cointrack.NewAnalytics(txs, budgets), nil
}

// fail prints err to stderr and returns ExitFailure.
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitFailure
}

// printMarkdown renders md for the terminal, or prints it raw when it cannot be rendered.
func printMarkdown(md string) {
	if stdout != io.Writer(os.Stdout) {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		log.Debugf("markdown renderer unavailable: %v", err)
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Debugf("could not render markdown: %v", err)
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
