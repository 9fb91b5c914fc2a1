package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tillbook-dev/tillbook/internal/model"
	"github.com/tillbook-dev/tillbook/internal/report"
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

func sampleRows() []model.Row {
	return []model.Row{
		{Type: model.RowOpening, Balance: dec("1000")},
		{Type: model.RowTransaction, Date: date(2025, 1, 1), VoucherNo: "RCPT-2025-01-001", Counterparty: "Walk-in", Narration: "Counter receipt", Flow: model.Inflow, Amount: dec("500"), Balance: dec("1500")},
		{Type: model.RowDayClosing, Date: date(2025, 1, 1), Inflow: dec("500"), Outflow: dec("0"), Balance: dec("1500")},
		{Type: model.RowClosing, Inflow: dec("500"), Outflow: dec("0"), Balance: dec("1500")},
	}
}

func TestWriteLedger(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{CurrencySymbol: "₹", Letterhead: "Asha Stores"}

	require.NoError(t, WriteLedger(&buf, "Cash in Hand", sampleRows(), opts))

	cr := csv.NewReader(&buf)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 7) // letterhead + account + header + 4 rows

	assert.Equal(t, []string{"Asha Stores"}, records[0])
	assert.Equal(t, []string{"Account: Cash in Hand"}, records[1])
	assert.Equal(t, "date", records[2][0])

	opening := records[3]
	assert.Equal(t, "Opening Balance", opening[colNarr])
	assert.Equal(t, "₹1000.00", opening[colBalance])

	txn := records[4]
	assert.Equal(t, "2025-01-01", txn[colDate])
	assert.Equal(t, "RCPT-2025-01-001", txn[colVoucher])
	assert.Equal(t, "₹500.00", txn[colIn])
	assert.Empty(t, txn[colOut])
	assert.Equal(t, "₹1500.00", txn[colBalance])

	closing := records[6]
	assert.Equal(t, "Closing Balance", closing[colNarr])
	assert.Equal(t, "₹1500.00", closing[colBalance])
}

func TestWriteLedger_NoLetterhead(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLedger(&buf, "Cash in Hand", sampleRows(), Options{}))

	cr := csv.NewReader(&buf)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"Account: Cash in Hand"}, records[0])
}

func TestMarshalRow_OutflowColumn(t *testing.T) {
	rec := MarshalRow(model.Row{
		Type: model.RowTransaction, Date: date(2025, 1, 2), Flow: model.Outflow,
		Amount: dec("200"), Balance: dec("1300"),
	}, Options{})
	assert.Empty(t, rec[colIn])
	assert.Equal(t, "200.00", rec[colOut])
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	sum := report.Summary{
		Accounts: []report.AccountSummary{
			{Label: "Cash in Hand", Opening: dec("1000"), Receipts: dec("600"), Payments: dec("200"), Closing: dec("1400")},
		},
		Totals: report.AccountSummary{Opening: dec("1000"), Receipts: dec("600"), Payments: dec("200"), Closing: dec("1400")},
	}

	require.NoError(t, WriteSummary(&buf, sum, Options{CurrencySymbol: "₹"}))

	cr := csv.NewReader(&buf)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Cash in Hand", "₹1000.00", "₹600.00", "₹200.00", "₹1400.00"}, records[1])
	assert.Equal(t, "Total", records[2][0])
}
