package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/cointrack/renderer"
	"github.com/google/subcommands"
)

// --- Balance Command ---

type balanceCmd struct{}

func (*balanceCmd) Name() string             { return "balance" }
func (*balanceCmd) Synopsis() string         { return "print the current balance" }
func (*balanceCmd) Usage() string            { return "balance\n\n  Prints incomes minus expenses.\n" }
func (*balanceCmd) SetFlags(f *flag.FlagSet) {}

func (*balanceCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, _, analytics, err := Open()
	if err != nil {
		return fail("%v", err)
	}
	balance, err := analytics.CurrentBalance()
	if err != nil {
		return fail("%v", err)
	}
	fmt.Fprintf(stdout, "Current balance: %s\n", balance.StringFixed(2))
	return subcommands.ExitSuccess
}

// --- Top Command ---

type topCmd struct{}

func (*topCmd) Name() string             { return "top" }
func (*topCmd) Synopsis() string         { return "print the category with the largest expenses" }
func (*topCmd) Usage() string            { return "top\n\n  Prints the top spending category and its total.\n" }
func (*topCmd) SetFlags(f *flag.FlagSet) {}

func (*topCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, _, analytics, err := Open()
	if err != nil {
		return fail("%v", err)
	}
	top, err := analytics.TopSpendingCategory()
	if err != nil {
		return fail("%v", err)
	}
	fmt.Fprintf(stdout, "Top spending category: %s\n", top)
	return subcommands.ExitSuccess
}

// --- Budgets Command ---

type budgetsCmd struct{}

func (*budgetsCmd) Name() string     { return "budgets" }
func (*budgetsCmd) Synopsis() string { return "show limit, spent and remaining for every budget" }
func (*budgetsCmd) Usage() string {
	return `budgets

  Shows every configured budget with what was spent in its category.
`
}
func (*budgetsCmd) SetFlags(f *flag.FlagSet) {}

func (*budgetsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, _, analytics, err := Open()
	if err != nil {
		return fail("%v", err)
	}
	snapshots, err := analytics.Snapshots()
	if err != nil {
		return fail("%v", err)
	}
	printMarkdown(renderer.BudgetsMarkdown(snapshots))
	return subcommands.ExitSuccess
}

// --- Analytics Command ---

type analyticsCmd struct{}

func (*analyticsCmd) Name() string     { return "analytics" }
func (*analyticsCmd) Synopsis() string { return "show balance, top spending category and budgets" }
func (*analyticsCmd) Usage() string {
	return `analytics

  Shows the current balance, the top spending category and the state of
  every budget.
`
}
func (*analyticsCmd) SetFlags(f *flag.FlagSet) {}

func (*analyticsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, _, analytics, err := Open()
	if err != nil {
		return fail("%v", err)
	}
	summary, err := analytics.Summary()
	if err != nil {
		return fail("%v", err)
	}
	printMarkdown(renderer.SummaryMarkdown(summary))
	return subcommands.ExitSuccess
}

// --- Report Command ---

type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "print the balance and every transaction" }
func (*reportCmd) Usage() string {
	return `report

  Prints the balance followed by one line per transaction, in the order
  they were recorded.
`
}
func (*reportCmd) SetFlags(f *flag.FlagSet) {}

func (*reportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, _, analytics, err := Open()
	if err != nil {
		return fail("%v", err)
	}
	report, err := analytics.FullReport()
	if err != nil {
		return fail("%v", err)
	}
	fmt.Fprintln(stdout, report)
	return subcommands.ExitSuccess
}
