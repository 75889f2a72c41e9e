// Package renderer renders analytics as markdown for the terminal.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/cointrack"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// NoBudgetsMessage is printed instead of the budget table when no budget is set.
const NoBudgetsMessage = "No budgets configured."

// SummaryMarkdown renders the balance, the top spending category and the budgets.
func SummaryMarkdown(s *cointrack.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("CoinTrack")
	doc.PlainText(fmt.Sprintf("Current balance: %s", amount(s.Balance)))
	doc.PlainText("")
	doc.PlainText(fmt.Sprintf("Top spending category: %s", s.TopCategory))

	doc.H2("Budgets")
	budgetsTable(doc, s.Budgets)

	return doc.String()
}

// BudgetsMarkdown renders the budget snapshots as a table.
func BudgetsMarkdown(snapshots []cointrack.BudgetSnapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	budgetsTable(doc, snapshots)
	return doc.String()
}

func budgetsTable(doc *md.Markdown, snapshots []cointrack.BudgetSnapshot) {
	if len(snapshots) == 0 {
		doc.PlainText(NoBudgetsMessage)
		return
	}
	table := md.TableSet{
		Header: []string{"Category", "Limit", "Spent", "Remaining"},
		Rows:   make([][]string, 0, len(snapshots)),
	}
	for _, s := range snapshots {
		table.Rows = append(table.Rows, []string{s.Category, amount(s.Limit), amount(s.Spent), amount(s.Remaining())})
	}
	doc.Table(table)
}

func amount(d decimal.Decimal) string { return d.StringFixed(2) }
