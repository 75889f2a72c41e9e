package cointrack

import (
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// Ledger is the read side of the transaction store used by Analytics.
type Ledger interface {
	Balance() (decimal.Decimal, error)
	SpentForCategory(category string) (decimal.Decimal, error)
	TopSpendingCategory() (string, error)
	Report() (string, error)
}

// Budgets is the read side of the budget store used by Analytics.
type Budgets interface {
	Load() (map[string]decimal.Decimal, error)
	BudgetFor(category string) (decimal.Decimal, error)
}

var (
	_ Ledger  = (*TransactionStore)(nil)
	_ Budgets = (*BudgetStore)(nil)
)

// BudgetSnapshot is the usage of a category budget, computed on demand.
type BudgetSnapshot struct {
	Category string
	Limit    decimal.Decimal
	Spent    decimal.Decimal
}

// Remaining returns what is left to spend, negative when overspent.
func (s BudgetSnapshot) Remaining() decimal.Decimal { return s.Limit.Sub(s.Spent) }

// Analytics combines transactions and budgets. It holds no state of its own.
type Analytics struct {
	ledger  Ledger
	budgets Budgets
}

// NewAnalytics returns analytics over ledger and budgets.
func NewAnalytics(ledger Ledger, budgets Budgets) *Analytics {
	return &Analytics{ledger: ledger, budgets: budgets}
}

// CurrentBalance returns the ledger balance.
func (a *Analytics) CurrentBalance() (decimal.Decimal, error) { return a.ledger.Balance() }

// TopSpendingCategory returns the ledger's top spending category.
func (a *Analytics) TopSpendingCategory() (string, error) { return a.ledger.TopSpendingCategory() }

// FullReport returns the ledger report.
func (a *Analytics) FullReport() (string, error) { return a.ledger.Report() }

// BudgetSnapshots returns a snapshot for every category with a budget.
// Categories with expenses but no budget are not included.
func (a *Analytics) BudgetSnapshots() (map[string]BudgetSnapshot, error) {
	budgets, err := a.budgets.Load()
	if err != nil {
		return nil, err
	}
	snapshots := make(map[string]BudgetSnapshot, len(budgets))
	for category, limit := range budgets {
		spent, err := a.ledger.SpentForCategory(category)
		if err != nil {
			return nil, err
		}
		snapshots[category] = BudgetSnapshot{Category: category, Limit: limit, Spent: spent}
	}
	return snapshots, nil
}

// Snapshots is like BudgetSnapshots but sorted by category.
func (a *Analytics) Snapshots() ([]BudgetSnapshot, error) {
	m, err := a.BudgetSnapshots()
	if err != nil {
		return nil, err
	}
	snapshots := make([]BudgetSnapshot, 0, len(m))
	for _, category := range slices.Sorted(maps.Keys(m)) {
		snapshots = append(snapshots, m[category])
	}
	return snapshots, nil
}

// Summary gathers what the analytics view shows.
type Summary struct {
	Balance     decimal.Decimal
	TopCategory string
	Budgets     []BudgetSnapshot // sorted by category
}

// Summary computes the balance, top spending category and budget snapshots.
func (a *Analytics) Summary() (*Summary, error) {
	var s Summary
	var err error
	if s.Balance, err = a.CurrentBalance(); err != nil {
		return nil, err
	}
	if s.TopCategory, err = a.TopSpendingCategory(); err != nil {
		return nil, err
	}
	if s.Budgets, err = a.Snapshots(); err != nil {
		return nil, err
	}
	return &s, nil
}
