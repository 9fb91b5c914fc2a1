package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType classifies a manual cash/bank voucher.
type VoucherType string

const (
	VoucherReceipt VoucherType = "Receipt"
	VoucherPayment VoucherType = "Payment"
)

// Voucher is a manually entered cash/bank voucher.
type Voucher struct {
	VoucherNo    string
	AccountLabel string
	Date         time.Time
	Type         VoucherType
	Amount       decimal.Decimal
	Party        string
	Narration    string
}

// ChannelEntry is one gateway's share of a document's payment breakdown.
// Documents split across gateways carry one entry per channel.
type ChannelEntry struct {
	Channel string
	Amount  decimal.Decimal
}

// SaleDocument is the invoice-level view of a sale that the normalizer
// consumes. Only documents paid by cash or an electronic channel affect the
// cash/bank ledger; credit sales are ignored.
type SaleDocument struct {
	InvoiceNo    string
	Date         time.Time
	CustomerName string
	PaymentMode  string
	GrandTotal   decimal.Decimal
	Channels     []ChannelEntry
}

// PurchaseDocument is the bill-level view of a paid purchase.
type PurchaseDocument struct {
	BillNo      string
	Date        time.Time
	VendorName  string
	PaymentMode string
	GrandTotal  decimal.Decimal
	Channels    []ChannelEntry
}
