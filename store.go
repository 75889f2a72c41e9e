package cointrack

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// Messages returned by queries when there is nothing to report.
const (
	NoExpensesMessage     = "No expenses recorded yet."
	NoTransactionsMessage = "No transactions recorded."
)

// TransactionStore is an append-only file of transaction records.
//
// Every query reads the whole file again, there is no in-memory state besides the path.
type TransactionStore struct {
	path string
}

// OpenTransactionStore opens the store backed by path, creating the file and
// its directory when they do not exist yet.
func OpenTransactionStore(path string) (*TransactionStore, error) {
	if err := ensureFile(path); err != nil {
		return nil, err
	}
	log.WithField("path", path).Debug("transaction store opened")
	return &TransactionStore{path: path}, nil
}

// Path returns the backing file path.
func (s *TransactionStore) Path() string { return s.path }

// Add appends a transaction to the file.
func (s *TransactionStore) Add(tx Transaction) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	defer f.Close()

	if _, err := f.WriteString(EncodeRecord(tx) + "\n"); err != nil {
		return fmt.Errorf("could not append transaction to %q: %w", s.path, err)
	}
	log.WithFields(log.Fields{"id": tx.ID, "kind": tx.Kind, "category": tx.Category}).Debug("transaction appended")
	return f.Close()
}

// FindAll returns every transaction in insertion order.
func (s *TransactionStore) FindAll() ([]Transaction, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	defer f.Close()

	txs, err := DecodeRecords(f)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", s.path, err)
	}
	return txs, nil
}

// Balance returns the sum of incomes minus the sum of expenses.
func (s *TransactionStore) Balance() (decimal.Decimal, error) {
	txs, err := s.FindAll()
	if err != nil {
		return decimal.Zero, err
	}
	return balance(txs), nil
}

func balance(txs []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Signed())
	}
	return total
}

// SpentForCategory returns the sum of expenses in category, compared case-insensitively.
func (s *TransactionStore) SpentForCategory(category string) (decimal.Decimal, error) {
	txs, err := s.FindAll()
	if err != nil {
		return decimal.Zero, err
	}
	spent := decimal.Zero
	for _, tx := range txs {
		if tx.IsExpense() && strings.EqualFold(tx.Category, category) {
			spent = spent.Add(tx.Amount)
		}
	}
	return spent, nil
}

// TopSpendingCategory returns the category with the largest total expense, as
// "<category> - <total>", or NoExpensesMessage.
//
// Categories are grouped by their exact stored spelling, "Food" and "food"
// are two different groups here. On a tie the category seen first wins.
func (s *TransactionStore) TopSpendingCategory() (string, error) {
	txs, err := s.FindAll()
	if err != nil {
		return "", err
	}

	var order []string
	totals := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if !tx.IsExpense() {
			continue
		}
		total, seen := totals[tx.Category]
		if !seen {
			order = append(order, tx.Category)
		}
		totals[tx.Category] = total.Add(tx.Amount)
	}
	if len(order) == 0 {
		return NoExpensesMessage, nil
	}

	top := order[0]
	for _, category := range order[1:] {
		if totals[category].GreaterThan(totals[top]) {
			top = category
		}
	}
	return fmt.Sprintf("%s - %s", top, totals[top].StringFixed(2)), nil
}

// Report returns a balance header followed by one line per transaction, or NoTransactionsMessage.
func (s *TransactionStore) Report() (string, error) {
	txs, err := s.FindAll()
	if err != nil {
		return "", err
	}
	if len(txs) == 0 {
		return NoTransactionsMessage, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Balance: %s", balance(txs).StringFixed(2))
	for _, tx := range txs {
		fmt.Fprintf(&b, "\n%s | %s | %s | %s | %s", tx.Date, tx.Kind, tx.Category, tx.Amount.StringFixed(2), tx.Description)
	}
	return b.String(), nil
}

// ensureFile creates path and its parent directory if needed.
func ensureFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return f.Close()
}
