package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tillbook-dev/tillbook/internal/model"
)

// Account is a catalog row. Labels are unique per tenant; the report engine
// resolves documents against them.
type Account struct {
	ID           uint   `gorm:"primaryKey"`
	Tenant       string `gorm:"uniqueIndex:idx_account_tenant_label,priority:1;index"`
	Code         string
	Label        string `gorm:"uniqueIndex:idx_account_tenant_label,priority:2"`
	CashBank     bool
	OpeningValue decimal.Decimal `gorm:"type:decimal(20,4);default:0"`
	Channel      string
}

func (a Account) toModel() model.Account {
	return model.Account{
		Code:         a.Code,
		Label:        a.Label,
		CashBank:     a.CashBank,
		OpeningValue: a.OpeningValue,
		Channel:      a.Channel,
	}
}

// Voucher is a stored manual cash/bank voucher.
type Voucher struct {
	ID           uint      `gorm:"primaryKey"`
	Tenant       string    `gorm:"uniqueIndex:idx_voucher_tenant_no,priority:1;index:idx_voucher_tenant_date,priority:1"`
	VoucherNo    string    `gorm:"uniqueIndex:idx_voucher_tenant_no,priority:2"`
	AccountLabel string    `gorm:"index"`
	Date         time.Time `gorm:"index:idx_voucher_tenant_date,priority:2"`
	Type         string
	Amount       decimal.Decimal `gorm:"type:decimal(20,4);default:0"`
	Party        string
	Narration    string
}

func (v Voucher) toModel() model.Voucher {
	return model.Voucher{
		VoucherNo:    v.VoucherNo,
		AccountLabel: v.AccountLabel,
		Date:         v.Date,
		Type:         model.VoucherType(v.Type),
		Amount:       v.Amount,
		Party:        v.Party,
		Narration:    v.Narration,
	}
}

// SaleDocument is a stored sale invoice with its payment breakdown.
type SaleDocument struct {
	ID           uint      `gorm:"primaryKey"`
	Tenant       string    `gorm:"uniqueIndex:idx_sale_tenant_no,priority:1;index:idx_sale_tenant_date,priority:1"`
	InvoiceNo    string    `gorm:"uniqueIndex:idx_sale_tenant_no,priority:2"`
	Date         time.Time `gorm:"index:idx_sale_tenant_date,priority:2"`
	CustomerName string
	PaymentMode  string
	GrandTotal   decimal.Decimal `gorm:"type:decimal(20,4);default:0"`
	Channels     []SaleChannel   `gorm:"foreignKey:SaleDocumentID"`
}

// SaleChannel is one gateway's share of a sale's payment breakdown. Entry
// order is persisted: the last entry is the representative channel.
type SaleChannel struct {
	ID             uint `gorm:"primaryKey"`
	SaleDocumentID uint `gorm:"index"`
	Channel        string
	Amount         decimal.Decimal `gorm:"type:decimal(20,4);default:0"`
}

func (d SaleDocument) toModel() model.SaleDocument {
	channels := make([]model.ChannelEntry, 0, len(d.Channels))
	for _, c := range d.Channels {
		channels = append(channels, model.ChannelEntry{Channel: c.Channel, Amount: c.Amount})
	}
	return model.SaleDocument{
		InvoiceNo:    d.InvoiceNo,
		Date:         d.Date,
		CustomerName: d.CustomerName,
		PaymentMode:  d.PaymentMode,
		GrandTotal:   d.GrandTotal,
		Channels:     channels,
	}
}

// PurchaseDocument is a stored purchase bill with its payment breakdown.
type PurchaseDocument struct {
	ID          uint              `gorm:"primaryKey"`
	Tenant      string            `gorm:"uniqueIndex:idx_purchase_tenant_no,priority:1;index:idx_purchase_tenant_date,priority:1"`
	BillNo      string            `gorm:"uniqueIndex:idx_purchase_tenant_no,priority:2"`
	Date        time.Time         `gorm:"index:idx_purchase_tenant_date,priority:2"`
	VendorName  string
	PaymentMode string
	GrandTotal  decimal.Decimal   `gorm:"type:decimal(20,4);default:0"`
	Channels    []PurchaseChannel `gorm:"foreignKey:PurchaseDocumentID"`
}

// PurchaseChannel is one gateway's share of a purchase's payment breakdown.
type PurchaseChannel struct {
	ID                 uint `gorm:"primaryKey"`
	PurchaseDocumentID uint `gorm:"index"`
	Channel            string
	Amount             decimal.Decimal `gorm:"type:decimal(20,4);default:0"`
}

func (d PurchaseDocument) toModel() model.PurchaseDocument {
	channels := make([]model.ChannelEntry, 0, len(d.Channels))
	for _, c := range d.Channels {
		channels = append(channels, model.ChannelEntry{Channel: c.Channel, Amount: c.Amount})
	}
	return model.PurchaseDocument{
		BillNo:      d.BillNo,
		Date:        d.Date,
		VendorName:  d.VendorName,
		PaymentMode: d.PaymentMode,
		GrandTotal:  d.GrandTotal,
		Channels:    channels,
	}
}

// BalanceCheckpoint is a persisted opening-balance snapshot: the account's
// balance including every transaction dated before AsOf.
type BalanceCheckpoint struct {
	ID           uint      `gorm:"primaryKey"`
	Tenant       string    `gorm:"index:idx_checkpoint_lookup,priority:1"`
	AccountLabel string    `gorm:"index:idx_checkpoint_lookup,priority:2"`
	AsOf         time.Time `gorm:"index:idx_checkpoint_lookup,priority:3"`
	Balance      decimal.Decimal `gorm:"type:decimal(20,4);default:0"`
}
