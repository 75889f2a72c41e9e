package cointrack

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalytics_PassThrough(t *testing.T) {
	store, budgets := newStores(t)
	a := NewAnalytics(store, budgets)
	require.NoError(t, store.Add(newTx(t, Income, "Salary", "100", "")))
	require.NoError(t, store.Add(newTx(t, Expense, "Food", "30", "")))

	balance, err := a.CurrentBalance()
	require.NoError(t, err)
	assertDecimal(t, "70", balance)

	top, err := a.TopSpendingCategory()
	require.NoError(t, err)
	assert.Equal(t, "Food - 30.00", top)

	report, err := a.FullReport()
	require.NoError(t, err)
	want, err := store.Report()
	require.NoError(t, err)
	assert.Equal(t, want, report)
}

func TestAnalytics_BudgetSnapshots(t *testing.T) {
	store, budgets := newStores(t)
	a := NewAnalytics(store, budgets)
	require.NoError(t, store.Add(newTx(t, Income, "Salary", "1000", "")))
	require.NoError(t, store.Add(newTx(t, Expense, "Food", "120", "")))
	require.NoError(t, store.Add(newTx(t, Expense, "food", "100", "")))
	require.NoError(t, store.Add(newTx(t, Expense, "Travel", "300", "no budget")))
	require.NoError(t, budgets.Set("Food", dec("200")))
	require.NoError(t, budgets.Set("Rent", dec("500")))

	snapshots, err := a.BudgetSnapshots()
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.NotContains(t, snapshots, "Travel", "spending without a budget is not a snapshot")

	food := snapshots["Food"]
	assert.Equal(t, "Food", food.Category)
	assertDecimal(t, "200", food.Limit)
	assertDecimal(t, "220", food.Spent)
	assertDecimal(t, "-20", food.Remaining(), "overspent")

	rent := snapshots["Rent"]
	assertDecimal(t, "0", rent.Spent)
	assertDecimal(t, "500", rent.Remaining())

	sorted, err := a.Snapshots()
	require.NoError(t, err)
	require.Len(t, sorted, 2)
	assert.Equal(t, "Food", sorted[0].Category)
	assert.Equal(t, "Rent", sorted[1].Category)
}

func TestAnalytics_CheckExpense(t *testing.T) {
	store, budgets := newStores(t)
	a := NewAnalytics(store, budgets)
	require.NoError(t, store.Add(newTx(t, Income, "Salary", "100", "")))
	require.NoError(t, store.Add(newTx(t, Expense, "Food", "40", "")))
	require.NoError(t, budgets.Set("Food", dec("50")))

	testCases := []struct {
		name           string
		amount         string
		category       string
		exceedsBalance bool
		exceedsBudget  bool
	}{
		{name: "within everything", amount: "10", category: "Food"},
		{name: "over budget", amount: "11", category: "food", exceedsBudget: true},
		{name: "over balance", amount: "61", category: "Rent", exceedsBalance: true},
		{name: "exactly the balance", amount: "60", category: "Rent"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := a.CheckExpense(dec(tc.amount), tc.category)
			require.NoError(t, err)
			assertDecimal(t, "60", c.Balance)
			assert.Equal(t, tc.exceedsBalance, c.ExceedsBalance, "ExceedsBalance")
			assert.Equal(t, tc.exceedsBudget, c.ExceedsBudget, "ExceedsBudget")
		})
	}
}

// failingLedger is a Ledger that cannot be read.
type failingLedger struct{ err error }

func (f failingLedger) Balance() (decimal.Decimal, error)                { return decimal.Zero, f.err }
func (f failingLedger) SpentForCategory(string) (decimal.Decimal, error) { return decimal.Zero, f.err }
func (f failingLedger) TopSpendingCategory() (string, error)             { return "", f.err }
func (f failingLedger) Report() (string, error)                          { return "", f.err }

func TestAnalytics_PropagatesErrors(t *testing.T) {
	_, budgets := newStores(t)
	require.NoError(t, budgets.Set("Food", dec("50")))
	a := NewAnalytics(failingLedger{err: ErrCorruptRecord}, budgets)

	_, err := a.BudgetSnapshots()
	assert.True(t, errors.Is(err, ErrCorruptRecord))

	_, err = a.CheckExpense(dec("1"), "Food")
	assert.ErrorIs(t, err, ErrCorruptRecord)
}

func TestAnalytics_Summary(t *testing.T) {
	store, budgets := newStores(t)
	a := NewAnalytics(store, budgets)
	require.NoError(t, store.Add(newTx(t, Income, "Salary", "100", "")))
	require.NoError(t, store.Add(newTx(t, Expense, "Food", "30", "")))
	require.NoError(t, budgets.Set("Rent", dec("500")))
	require.NoError(t, budgets.Set("Food", dec("50")))

	s, err := a.Summary()
	require.NoError(t, err)
	assertDecimal(t, "70", s.Balance)
	assert.Equal(t, "Food - 30.00", s.TopCategory)
	require.Len(t, s.Budgets, 2)
	assert.Equal(t, "Food", s.Budgets[0].Category)
	assertDecimal(t, "20", s.Budgets[0].Remaining())
}
