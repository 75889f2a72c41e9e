package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/cointrack"
	"github.com/google/subcommands"
)

type budgetCmd struct {
	category string
	limit    string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "set or update the spending limit of a category" }
func (*budgetCmd) Usage() string {
	return `budget -c <category> -l <limit>

  Sets the spending limit of a category, replacing the previous one.
  A limit of 0 means no limit.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Category to limit")
	f.StringVar(&c.limit, "l", "", "Limit, a positive decimal number")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	category := strings.TrimSpace(c.category)
	if category == "" || c.limit == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	limit, err := cointrack.ParseAmount(c.limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	_, budgets, _, err := Open()
	if err != nil {
		return fail("%v", err)
	}
	if err := budgets.Set(category, limit); err != nil {
		return fail("could not save budget: %v", err)
	}
	fmt.Fprintf(stdout, "Budget saved for %s\n", category)
	return subcommands.ExitSuccess
}
