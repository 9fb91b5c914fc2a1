// Package report assembles the cash/bank ledger report across accounts.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tillbook-dev/tillbook/internal/model"
)

// Window is an inclusive report date range.
type Window struct {
	From time.Time
	To   time.Time
}

// Contains reports whether a date falls inside the window.
func (w Window) Contains(d time.Time) bool {
	day := model.DateOf(d)
	return !day.Before(model.DateOf(w.From)) && !day.After(model.DateOf(w.To))
}

// Params selects what one report run covers. Empty AccountLabels means every
// cash/bank account in the catalog.
type Params struct {
	Window        Window
	AccountLabels []string
}

// Report is the outcome of one run: a display row sequence per account label,
// plus per-account failures. A failed account is absent from Rows and present
// in Errors; other accounts are unaffected.
type Report struct {
	Window Window
	Rows   map[string][]model.Row
	Errors map[string]error
}

// AccountSummary is the opening/receipts/payments/closing view of one account.
type AccountSummary struct {
	Label    string
	Opening  decimal.Decimal
	Receipts decimal.Decimal
	Payments decimal.Decimal
	Closing  decimal.Decimal
}

// Summary condenses a report to per-account totals plus a grand total line.
// It is derived purely from each account's opening and closing rows.
type Summary struct {
	Accounts []AccountSummary
	Totals   AccountSummary
}

// Summary derives the summary view of the report.
func (r *Report) Summary() Summary {
	var sum Summary
	sum.Totals = AccountSummary{
		Opening:  decimal.Zero,
		Receipts: decimal.Zero,
		Payments: decimal.Zero,
		Closing:  decimal.Zero,
	}

	for _, label := range sortedLabels(r.Rows) {
		rows := r.Rows[label]
		if len(rows) == 0 {
			continue
		}
		opening := rows[0]
		closing := rows[len(rows)-1]
		as := AccountSummary{
			Label:    label,
			Opening:  opening.Balance,
			Receipts: closing.Inflow,
			Payments: closing.Outflow,
			Closing:  closing.Balance,
		}
		sum.Accounts = append(sum.Accounts, as)

		sum.Totals.Opening = sum.Totals.Opening.Add(as.Opening)
		sum.Totals.Receipts = sum.Totals.Receipts.Add(as.Receipts)
		sum.Totals.Payments = sum.Totals.Payments.Add(as.Payments)
		sum.Totals.Closing = sum.Totals.Closing.Add(as.Closing)
	}
	return sum
}

func sortedLabels(rows map[string][]model.Row) []string {
	labels := make([]string, 0, len(rows))
	for label := range rows {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
