package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RowType discriminates the lines of a rendered account ledger.
type RowType string

const (
	RowOpening     RowType = "opening"
	RowTransaction RowType = "transaction"
	RowDayClosing  RowType = "day-closing"
	RowClosing     RowType = "closing"
)

// Row is one line of a rendered account ledger. Fields are populated per type:
//
//	RowOpening:     Balance
//	RowTransaction: Date, VoucherNo, Counterparty, Narration, Flow, Amount, Balance
//	RowDayClosing:  Date, Inflow, Outflow (that day's totals), Balance
//	RowClosing:     Inflow, Outflow (period totals), Balance
//
// Balance is always the running balance after applying the row.
type Row struct {
	Type         RowType
	Date         time.Time
	VoucherNo    string
	Counterparty string
	Narration    string
	Flow         Flow
	Amount       decimal.Decimal
	Inflow       decimal.Decimal
	Outflow      decimal.Decimal
	Balance      decimal.Decimal
}
