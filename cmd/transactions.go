package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/cointrack"
	"github.com/etnz/cointrack/date"
	"github.com/google/subcommands"
)

// txFlags are the flags shared by income and expense.
type txFlags struct {
	date     string
	amount   string
	category string
	memo     string
}

func (c *txFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.amount, "a", "", "Amount, a positive decimal number")
	f.StringVar(&c.category, "c", "", "Category")
	f.StringVar(&c.memo, "m", "", "An optional short description")
}

// transaction validates the flags into a new transaction of the given kind.
func (c *txFlags) transaction(kind cointrack.Kind) (cointrack.Transaction, error) {
	day, err := date.Parse(c.date)
	if err != nil {
		return cointrack.Transaction{}, err
	}
	amount, err := cointrack.ParseAmount(c.amount)
	if err != nil {
		return cointrack.Transaction{}, err
	}
	return cointrack.NewTransactionOn(day, amount, kind, strings.TrimSpace(c.category), c.memo)
}

// --- Income Command ---

type incomeCmd struct{ txFlags }

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record money coming in" }
func (*incomeCmd) Usage() string {
	return `income -a <amount> -c <category> [-m <memo>] [-d <date>]

  Appends an income to the transactions file.
`
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" || c.category == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	tx, err := c.transaction(cointrack.Income)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	store, _, _, err := Open()
	if err != nil {
		return fail("%v", err)
	}
	return appendTransaction(store, tx)
}

// --- Expense Command ---

type expenseCmd struct {
	txFlags
	yes bool
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record money going out" }
func (*expenseCmd) Usage() string {
	return `expense -a <amount> -c <category> [-m <memo>] [-d <date>] [-y]

  Appends an expense to the transactions file.

  An expense larger than the current balance is refused. An expense that
  would exceed the category budget asks for confirmation, unless -y is set.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	c.txFlags.SetFlags(f)
	f.BoolVar(&c.yes, "y", false, "Record the expense even if it exceeds the category budget")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" || c.category == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	tx, err := c.transaction(cointrack.Expense)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	store, _, analytics, err := Open()
	if err != nil {
		return fail("%v", err)
	}

	check, err := analytics.CheckExpense(tx.Amount, tx.Category)
	if err != nil {
		return fail("%v", err)
	}
	if check.ExceedsBalance {
		return fail("cannot spend more than current balance (%s)", check.Balance.StringFixed(2))
	}
	if check.ExceedsBudget && !c.yes {
		fmt.Fprintf(stdout, "Warning: This expense exceeds the %s budget (limit %s, already spent %s).\n",
			tx.Category, check.Limit.StringFixed(2), check.Spent.StringFixed(2))
		if !confirm("Continue anyway? (y/n): ") {
			fmt.Fprintln(stdout, "Expense cancelled.")
			return subcommands.ExitSuccess
		}
	}
	return appendTransaction(store, tx)
}

// confirm asks a yes/no question on stdin.
func confirm(question string) bool {
	fmt.Fprint(stdout, question)
	answer, _ := bufio.NewReader(stdin).ReadString('\n')
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}

// appendTransaction appends tx to the store and prints it.
func appendTransaction(store *cointrack.TransactionStore, tx cointrack.Transaction) subcommands.ExitStatus {
	if err := store.Add(tx); err != nil {
		return fail("could not save transaction: %v", err)
	}
	fmt.Fprintf(stdout, "Saved: %s\n", tx)
	return subcommands.ExitSuccess
}
