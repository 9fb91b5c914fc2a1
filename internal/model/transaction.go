package model

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Flow is the signed direction of a canonical transaction.
type Flow string

const (
	Inflow  Flow = "inflow"
	Outflow Flow = "outflow"
)

// Transaction is the canonical, source-agnostic shape the report engine
// operates on. It is derived from the source streams on every report run and
// never persisted.
type Transaction struct {
	AccountLabel string
	Date         time.Time // calendar date; time of day carries no meaning
	Flow         Flow
	Amount       decimal.Decimal // always >= 0; Flow carries the sign
	Counterparty string
	Narration    string
	VoucherNo    string
}

// Signed returns the amount with the flow's sign applied.
func (t Transaction) Signed() decimal.Decimal {
	if t.Flow == Outflow {
		return t.Amount.Neg()
	}
	return t.Amount
}

// SortTransactions orders transactions by date, then voucher number.
// The voucher-number tie-break keeps same-day ordering deterministic across
// runs instead of depending on whatever order the source query returned.
func SortTransactions(txns []Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		di, dj := DateOf(txns[i].Date), DateOf(txns[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return txns[i].VoucherNo < txns[j].VoucherNo
	})
}

// DateOf truncates a timestamp to its calendar date.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
