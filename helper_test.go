package cointrack

import (
	"path/filepath"
	"testing"

	"github.com/etnz/cointrack/date"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dec is a helper for tests to create decimals from constants.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// newTx creates a transaction dated 2025-08-01 or fails the test.
func newTx(t *testing.T, kind Kind, category, amount, description string) Transaction {
	t.Helper()
	tx, err := NewTransactionOn(date.New(2025, 8, 1), dec(amount), kind, category, description)
	require.NoError(t, err)
	return tx
}

// newStores opens both stores in a fresh temporary data directory.
func newStores(t *testing.T) (*TransactionStore, *BudgetStore) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "data")
	txs, err := OpenTransactionStore(filepath.Join(dir, "transactions.txt"))
	require.NoError(t, err)
	budgets, err := OpenBudgetStore(filepath.Join(dir, "budgets.txt"))
	require.NoError(t, err)
	return txs, budgets
}

// assertDecimal compares decimals by value, 1.5 and 1.50 are equal.
func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "Got: %s, want: %s %v", got, want, msgAndArgs)
}

// assertSameTransaction compares every field, amounts by value.
func assertSameTransaction(t *testing.T, want, got Transaction) {
	t.Helper()
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Date, got.Date)
	assert.Equal(t, want.Kind, got.Kind)
	assert.Equal(t, want.Category, got.Category)
	assertDecimal(t, want.Amount.String(), got.Amount)
	assert.Equal(t, want.Description, got.Description)
}
