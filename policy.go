package cointrack

import "github.com/shopspring/decimal"

// ExpenseCheck describes how a prospective expense relates to the current
// balance and to the budget of its category.
type ExpenseCheck struct {
	Amount  decimal.Decimal
	Balance decimal.Decimal
	Limit   decimal.Decimal // zero when the category has no budget
	Spent   decimal.Decimal // already spent in the category

	ExceedsBalance bool // the expense is larger than the balance
	ExceedsBudget  bool // the expense would push the category over its limit
}

// CheckExpense evaluates an expense before it is recorded. It does not
// record anything; refusing or confirming is up to the caller.
func (a *Analytics) CheckExpense(amount decimal.Decimal, category string) (ExpenseCheck, error) {
	c := ExpenseCheck{Amount: amount}
	var err error
	if c.Balance, err = a.ledger.Balance(); err != nil {
		return ExpenseCheck{}, err
	}
	c.ExceedsBalance = amount.GreaterThan(c.Balance)

	if c.Limit, err = a.budgets.BudgetFor(category); err != nil {
		return ExpenseCheck{}, err
	}
	if c.Limit.IsPositive() {
		if c.Spent, err = a.ledger.SpentForCategory(category); err != nil {
			return ExpenseCheck{}, err
		}
		c.ExceedsBudget = c.Spent.Add(amount).GreaterThan(c.Limit)
	}
	return c, nil
}
