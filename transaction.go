package cointrack

import (
	"fmt"
	"strings"

	"github.com/etnz/cointrack/date"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind tells whether a transaction brings money in or takes it out.
type Kind string

// Transaction kinds, in their canonical stored form.
const (
	Income  Kind = "INCOME"
	Expense Kind = "EXPENSE"
)

// ParseKind parses a kind case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToUpper(strings.TrimSpace(s))); k {
	case Income, Expense:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q want %s or %s", ErrInvalidKind, s, Income, Expense)
	}
}

// Transaction is a single income or expense entry.
type Transaction struct {
	ID          string          // ID is generated at creation and never changes.
	Date        date.Date       // Date is the day the transaction was recorded.
	Kind        Kind            // Kind is either Income or Expense.
	Category    string          // Category is a free text label.
	Amount      decimal.Decimal // Amount is never negative, Kind carries the sign.
	Description string          // Description is an optional free text.
}

// NewTransaction creates a transaction dated today with a fresh ID.
func NewTransaction(amount decimal.Decimal, kind Kind, category, description string) (Transaction, error) {
	return NewTransactionOn(date.Today(), amount, kind, category, description)
}

// NewTransactionOn is like NewTransaction but for a given day.
func NewTransactionOn(day date.Date, amount decimal.Decimal, kind Kind, category, description string) (Transaction, error) {
	kind, err := ParseKind(string(kind))
	if err != nil {
		return Transaction{}, err
	}
	if amount.IsNegative() {
		return Transaction{}, fmt.Errorf("%w: %s must not be negative", ErrInvalidAmount, amount)
	}
	if err := validateCategory(category); err != nil {
		return Transaction{}, err
	}
	return Transaction{
		ID:          uuid.NewString(),
		Date:        day,
		Kind:        kind,
		Category:    category,
		Amount:      amount,
		Description: description,
	}, nil
}

// IsExpense reports whether the transaction takes money out.
func (t Transaction) IsExpense() bool { return t.Kind == Expense }

// Signed returns the amount with its effect on the balance: negative for expenses.
func (t Transaction) Signed() decimal.Decimal {
	if t.IsExpense() {
		return t.Amount.Neg()
	}
	return t.Amount
}

// String returns a short human readable form of the transaction.
func (t Transaction) String() string {
	return fmt.Sprintf("%s %s - %s (%s)", t.Date, t.Kind, t.Amount.StringFixed(2), t.Category)
}

// ParseAmount parses a non-negative decimal amount. A decimal comma is accepted.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", "."))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w %q: %v", ErrInvalidAmount, s, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s must not be negative", ErrInvalidAmount, s)
	}
	return d, nil
}

func validateCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return fmt.Errorf("%w: category is empty", ErrInvalidCategory)
	}
	if strings.Contains(category, Delimiter) {
		return fmt.Errorf("%w: %q contains %q", ErrInvalidCategory, category, Delimiter)
	}
	if strings.ContainsAny(category, "\r\n") {
		return fmt.Errorf("%w: %q contains a line break", ErrInvalidCategory, category)
	}
	return nil
}
