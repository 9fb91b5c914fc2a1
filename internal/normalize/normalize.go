// Package normalize converts heterogeneous source records (manual vouchers,
// sale documents, purchase documents) into canonical transactions.
package normalize

import (
	"strings"
	"time"

	"github.com/tillbook-dev/tillbook/internal/model"
	"github.com/tillbook-dev/tillbook/internal/resolve"
)

// Normalizer maps source records into canonical transactions. It holds the
// account catalog for one report run so that document resolution is a pure
// in-memory lookup.
type Normalizer struct {
	accounts []model.Account
}

// New creates a Normalizer over an account catalog.
func New(accounts []model.Account) *Normalizer {
	return &Normalizer{accounts: accounts}
}

// Voucher maps a manual voucher. Voucher fields carry over directly; a
// Receipt nets as inflow, everything else as outflow.
func (n *Normalizer) Voucher(v model.Voucher) (model.Transaction, bool) {
	flow := model.Outflow
	if v.Type == model.VoucherReceipt {
		flow = model.Inflow
	}
	return model.Transaction{
		AccountLabel: v.AccountLabel,
		Date:         safeDate(v.Date),
		Flow:         flow,
		Amount:       v.Amount.Abs(),
		Counterparty: v.Party,
		Narration:    v.Narration,
		VoucherNo:    v.VoucherNo,
	}, true
}

// Sale maps a paid sale document. Sales always net as inflow. Documents that
// resolve to no account (credit sales, unknown channels) are dropped.
func (n *Normalizer) Sale(d model.SaleDocument) (model.Transaction, bool) {
	acct, ok := n.resolveDocument(d.PaymentMode, d.Channels)
	if !ok {
		return model.Transaction{}, false
	}
	return model.Transaction{
		AccountLabel: acct.Label,
		Date:         safeDate(d.Date),
		Flow:         model.Inflow,
		Amount:       d.GrandTotal.Abs(),
		Counterparty: d.CustomerName,
		Narration:    "Sales invoice " + d.InvoiceNo,
		VoucherNo:    d.InvoiceNo,
	}, true
}

// Purchase maps a paid purchase document. Purchases always net as outflow.
func (n *Normalizer) Purchase(d model.PurchaseDocument) (model.Transaction, bool) {
	acct, ok := n.resolveDocument(d.PaymentMode, d.Channels)
	if !ok {
		return model.Transaction{}, false
	}
	return model.Transaction{
		AccountLabel: acct.Label,
		Date:         safeDate(d.Date),
		Flow:         model.Outflow,
		Amount:       d.GrandTotal.Abs(),
		Counterparty: d.VendorName,
		Narration:    "Purchase bill " + d.BillNo,
		VoucherNo:    d.BillNo,
	}, true
}

// All normalizes the three source streams into one canonical list.
// Unresolvable records are silently omitted.
func (n *Normalizer) All(vouchers []model.Voucher, sales []model.SaleDocument, purchases []model.PurchaseDocument) []model.Transaction {
	txns := make([]model.Transaction, 0, len(vouchers)+len(sales)+len(purchases))
	for _, v := range vouchers {
		if t, ok := n.Voucher(v); ok {
			txns = append(txns, t)
		}
	}
	for _, d := range sales {
		if t, ok := n.Sale(d); ok {
			txns = append(txns, t)
		}
	}
	for _, d := range purchases {
		if t, ok := n.Purchase(d); ok {
			txns = append(txns, t)
		}
	}
	return txns
}

func (n *Normalizer) resolveDocument(mode string, channels []model.ChannelEntry) (model.Account, bool) {
	if mode == "" || strings.EqualFold(mode, "credit") {
		return model.Account{}, false
	}
	hint := ""
	if !strings.EqualFold(mode, "cash") {
		// A document split across gateways attributes its whole amount to the
		// last recorded channel entry. Misattributes multi-channel splits;
		// kept for compatibility with existing reports.
		if len(channels) > 0 {
			hint = channels[len(channels)-1].Channel
		}
	}
	return resolve.Resolve(mode, hint, n.accounts)
}

// safeDate replaces a missing date with today so one bad record cannot take
// down the whole report.
func safeDate(d time.Time) time.Time {
	if d.IsZero() {
		return model.DateOf(time.Now())
	}
	return model.DateOf(d)
}
