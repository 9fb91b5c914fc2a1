package replay

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tillbook-dev/tillbook/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func cash() model.Account {
	return model.Account{Code: "1010", Label: "Cash in Hand", CashBank: true, OpeningValue: dec("1000")}
}

func history() []model.Transaction {
	return []model.Transaction{
		{AccountLabel: "Cash in Hand", Date: date(2024, 12, 10), Flow: model.Inflow, Amount: dec("300"), VoucherNo: "RCPT-2024-12-001"},
		{AccountLabel: "Cash in Hand", Date: date(2024, 12, 20), Flow: model.Outflow, Amount: dec("120"), VoucherNo: "PMT-2024-12-001"},
		{AccountLabel: "GPay", Date: date(2024, 12, 21), Flow: model.Inflow, Amount: dec("999"), VoucherNo: "INV-099"},
		{AccountLabel: "Cash in Hand", Date: date(2025, 1, 2), Flow: model.Inflow, Amount: dec("50"), VoucherNo: "RCPT-2025-01-001"},
	}
}

func TestOpeningBalanceAsOf(t *testing.T) {
	// 1000 + 300 - 120; the 2025-01-02 transaction is not before the cutoff,
	// and the GPay transaction belongs to another account.
	got := OpeningBalanceAsOf(cash(), date(2025, 1, 1), history())
	assert.True(t, got.Equal(dec("1180")), "got %s", got)
}

func TestOpeningBalanceAsOf_CutoffIsExclusive(t *testing.T) {
	txns := []model.Transaction{
		{AccountLabel: "Cash in Hand", Date: date(2025, 1, 1), Flow: model.Inflow, Amount: dec("500"), VoucherNo: "RCPT-1"},
	}
	// A transaction dated on the window start belongs to the window, not the
	// opening balance.
	got := OpeningBalanceAsOf(cash(), date(2025, 1, 1), txns)
	assert.True(t, got.Equal(dec("1000")), "got %s", got)
}

func TestOpeningBalanceAsOf_EmptyHistory(t *testing.T) {
	got := OpeningBalanceAsOf(cash(), date(2025, 1, 1), nil)
	assert.True(t, got.Equal(dec("1000")))
}

func TestOpeningBalanceFromCheckpoint_MatchesFullReplay(t *testing.T) {
	account := cash()
	txns := history()
	windowStart := date(2025, 2, 1)

	full := OpeningBalanceAsOf(account, windowStart, txns)

	// Checkpoint covering everything before 2025-01-01: 1000 + 300 - 120.
	cp := Checkpoint{AccountLabel: account.Label, AsOf: date(2025, 1, 1), Balance: dec("1180")}
	snap := OpeningBalanceFromCheckpoint(account, cp, windowStart, txns)

	assert.True(t, full.Equal(snap), "full %s != checkpoint %s", full, snap)
	assert.True(t, snap.Equal(dec("1230")))
}

func TestOpeningBalanceAsOf_OrderIndependentResult(t *testing.T) {
	account := cash()
	txns := history()
	reversed := make([]model.Transaction, len(txns))
	for i, tx := range txns {
		reversed[len(txns)-1-i] = tx
	}

	a := OpeningBalanceAsOf(account, date(2025, 2, 1), txns)
	b := OpeningBalanceAsOf(account, date(2025, 2, 1), reversed)
	assert.True(t, a.Equal(b))
}
