package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tillbook-dev/tillbook/internal/logger"
	"github.com/tillbook-dev/tillbook/internal/model"
	"github.com/tillbook-dev/tillbook/internal/replay"
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

func openTest(t *testing.T) *TenantStore {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "tillbook.db"), logger.Discard())
	require.NoError(t, err)
	return s.ForTenant("shop-1")
}

func TestAccounts_RoundTrip(t *testing.T) {
	ts := openTest(t)
	ctx := context.Background()

	require.NoError(t, ts.SaveAccount(ctx, model.Account{
		Code: "1010", Label: "Cash in Hand", CashBank: true, OpeningValue: dec("1000"),
	}))
	require.NoError(t, ts.SaveAccount(ctx, model.Account{
		Code: "1030", Label: "PhonePe", CashBank: true, Channel: "PhonePe",
	}))

	accounts, err := ts.Accounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "Cash in Hand", accounts[0].Label)
	assert.True(t, accounts[0].OpeningValue.Equal(dec("1000")))
}

func TestSaveAccount_UpdatesByLabel(t *testing.T) {
	ts := openTest(t)
	ctx := context.Background()

	require.NoError(t, ts.SaveAccount(ctx, model.Account{Code: "1010", Label: "Cash in Hand", CashBank: true}))
	require.NoError(t, ts.SaveAccount(ctx, model.Account{Code: "1010", Label: "Cash in Hand", CashBank: true, OpeningValue: dec("500")}))

	accounts, err := ts.Accounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.True(t, accounts[0].OpeningValue.Equal(dec("500")))
}

func TestTenantIsolation(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "tillbook.db"), logger.Discard())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.ForTenant("shop-1").SaveAccount(ctx, model.Account{Label: "Cash in Hand", CashBank: true}))

	accounts, err := s.ForTenant("shop-2").Accounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestVouchers_DateFilterAndNumbering(t *testing.T) {
	ts := openTest(t)
	ctx := context.Background()

	no1, err := ts.AddVoucher(ctx, model.Voucher{
		AccountLabel: "Cash in Hand",
		Date:         date(2025, 1, 5),
		Type:         model.VoucherReceipt,
		Amount:       dec("500"),
	})
	require.NoError(t, err)
	assert.Equal(t, "RCPT-2025-01-001", no1)

	no2, err := ts.AddVoucher(ctx, model.Voucher{
		AccountLabel: "Cash in Hand",
		Date:         date(2025, 1, 6),
		Type:         model.VoucherPayment,
		Amount:       dec("120"),
	})
	require.NoError(t, err)
	assert.Equal(t, "PMT-2025-01-002", no2)

	_, err = ts.AddVoucher(ctx, model.Voucher{
		AccountLabel: "Cash in Hand",
		Date:         date(2025, 2, 1),
		Type:         model.VoucherReceipt,
		Amount:       dec("50"),
	})
	require.NoError(t, err)

	jan, err := ts.Vouchers(ctx, date(2025, 1, 31))
	require.NoError(t, err)
	require.Len(t, jan, 2)
	assert.Equal(t, "RCPT-2025-01-001", jan[0].VoucherNo)

	all, err := ts.Vouchers(ctx, date(2025, 2, 28))
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSales_PreservesChannelOrder(t *testing.T) {
	ts := openTest(t)
	ctx := context.Background()

	require.NoError(t, ts.AddSale(ctx, model.SaleDocument{
		InvoiceNo:   "INV-050",
		Date:        date(2025, 1, 8),
		PaymentMode: "UPI",
		GrandTotal:  dec("200"),
		Channels: []model.ChannelEntry{
			{Channel: "GPay", Amount: dec("50")},
			{Channel: "PhonePe", Amount: dec("150")},
		},
	}))

	sales, err := ts.Sales(ctx, date(2025, 1, 31))
	require.NoError(t, err)
	require.Len(t, sales, 1)
	require.Len(t, sales[0].Channels, 2)
	assert.Equal(t, "GPay", sales[0].Channels[0].Channel)
	assert.Equal(t, "PhonePe", sales[0].Channels[1].Channel)
}

func TestPurchases_DateFilter(t *testing.T) {
	ts := openTest(t)
	ctx := context.Background()

	require.NoError(t, ts.AddPurchase(ctx, model.PurchaseDocument{
		BillNo: "BILL-001", Date: date(2025, 1, 10), VendorName: "Metro Wholesale",
		PaymentMode: "Cash", GrandTotal: dec("180"),
	}))
	require.NoError(t, ts.AddPurchase(ctx, model.PurchaseDocument{
		BillNo: "BILL-002", Date: date(2025, 3, 1), VendorName: "Metro Wholesale",
		PaymentMode: "Cash", GrandTotal: dec("90"),
	}))

	purchases, err := ts.Purchases(ctx, date(2025, 1, 31))
	require.NoError(t, err)
	require.Len(t, purchases, 1)
	assert.Equal(t, "BILL-001", purchases[0].BillNo)
}

func TestCheckpoint_LatestAtOrBeforeCutoff(t *testing.T) {
	ts := openTest(t)
	ctx := context.Background()

	_, ok, err := ts.Checkpoint(ctx, "Cash in Hand", date(2025, 1, 1))
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, ts.SaveCheckpoint(ctx, replay.Checkpoint{
		AccountLabel: "Cash in Hand", AsOf: date(2024, 12, 1), Balance: dec("900"),
	}))
	require.NoError(t, ts.SaveCheckpoint(ctx, replay.Checkpoint{
		AccountLabel: "Cash in Hand", AsOf: date(2025, 1, 1), Balance: dec("1180"),
	}))
	require.NoError(t, ts.SaveCheckpoint(ctx, replay.Checkpoint{
		AccountLabel: "Cash in Hand", AsOf: date(2025, 2, 1), Balance: dec("1400"),
	}))

	cp, ok, err := ts.Checkpoint(ctx, "Cash in Hand", date(2025, 1, 15))
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, cp.AsOf.Equal(date(2025, 1, 1)), "as_of %s", cp.AsOf)
	assert.True(t, cp.Balance.Equal(dec("1180")))
}
