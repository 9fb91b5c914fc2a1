// Package ledger renders one account's date-ordered transactions into the
// display row sequence of the cash/bank report.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tillbook-dev/tillbook/internal/model"
)

// BuildRows produces the display sequence for one account over a report
// window: an opening row, one row per transaction with its running balance, a
// day-closing row per distinct calendar date, and a final closing row with
// period totals.
//
// The input is not mutated; transactions are ordered by (date, voucher
// number) before rendering.
func BuildRows(openingBalance decimal.Decimal, txns []model.Transaction) []model.Row {
	sorted := make([]model.Transaction, len(txns))
	copy(sorted, txns)
	model.SortTransactions(sorted)

	rows := []model.Row{{Type: model.RowOpening, Balance: openingBalance}}

	balance := openingBalance
	totalIn := decimal.Zero
	totalOut := decimal.Zero

	var day time.Time
	dayIn := decimal.Zero
	dayOut := decimal.Zero

	closeDay := func() {
		if day.IsZero() {
			return
		}
		rows = append(rows, model.Row{
			Type:    model.RowDayClosing,
			Date:    day,
			Inflow:  dayIn,
			Outflow: dayOut,
			Balance: balance,
		})
	}

	for _, t := range sorted {
		d := model.DateOf(t.Date)
		if !d.Equal(day) {
			closeDay()
			day = d
			dayIn = decimal.Zero
			dayOut = decimal.Zero
		}

		balance = balance.Add(t.Signed())
		if t.Flow == model.Inflow {
			dayIn = dayIn.Add(t.Amount)
			totalIn = totalIn.Add(t.Amount)
		} else {
			dayOut = dayOut.Add(t.Amount)
			totalOut = totalOut.Add(t.Amount)
		}

		rows = append(rows, model.Row{
			Type:         model.RowTransaction,
			Date:         d,
			VoucherNo:    t.VoucherNo,
			Counterparty: t.Counterparty,
			Narration:    t.Narration,
			Flow:         t.Flow,
			Amount:       t.Amount,
			Balance:      balance,
		})
	}
	closeDay()

	rows = append(rows, model.Row{
		Type:    model.RowClosing,
		Inflow:  totalIn,
		Outflow: totalOut,
		Balance: balance,
	})
	return rows
}
