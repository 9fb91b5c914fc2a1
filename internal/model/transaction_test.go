package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
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

func TestSigned(t *testing.T) {
	in := Transaction{Flow: Inflow, Amount: dec("125.50")}
	out := Transaction{Flow: Outflow, Amount: dec("125.50")}

	assert.True(t, in.Signed().Equal(dec("125.50")))
	assert.True(t, out.Signed().Equal(dec("-125.50")))
}

func TestSortTransactions_DateThenVoucher(t *testing.T) {
	txns := []Transaction{
		{Date: date(2025, 2, 2), VoucherNo: "RCPT-2025-02-002"},
		{Date: date(2025, 2, 1), VoucherNo: "RCPT-2025-02-003"},
		{Date: date(2025, 2, 2), VoucherNo: "RCPT-2025-02-001"},
	}

	SortTransactions(txns)

	assert.Equal(t, "RCPT-2025-02-003", txns[0].VoucherNo)
	assert.Equal(t, "RCPT-2025-02-001", txns[1].VoucherNo)
	assert.Equal(t, "RCPT-2025-02-002", txns[2].VoucherNo)
}

func TestSortTransactions_IgnoresTimeOfDay(t *testing.T) {
	txns := []Transaction{
		{Date: time.Date(2025, 2, 1, 18, 0, 0, 0, time.UTC), VoucherNo: "B"},
		{Date: time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC), VoucherNo: "A"},
	}

	SortTransactions(txns)

	// Same calendar date, so voucher number decides regardless of clock time.
	assert.Equal(t, "A", txns[0].VoucherNo)
}
