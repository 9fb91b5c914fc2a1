// Package resolve maps payment information on source documents to the
// cash/bank account it affects.
package resolve

import (
	"strings"

	"github.com/tillbook-dev/tillbook/internal/model"
)

// Resolve returns the account a payment settles into.
//
// Cash payments match the first account whose label contains "cash"
// (case-insensitive substring, a deliberate heuristic). Electronic payments
// match the first account whose label equals the channel hint exactly.
// Only cash/bank-flagged accounts participate. ok is false when nothing
// matches; callers drop the record.
func Resolve(paymentMode, channelHint string, accounts []model.Account) (model.Account, bool) {
	if strings.EqualFold(paymentMode, "cash") {
		for _, a := range accounts {
			if a.CashBank && strings.Contains(strings.ToLower(a.Label), "cash") {
				return a, true
			}
		}
		return model.Account{}, false
	}

	if channelHint == "" {
		return model.Account{}, false
	}
	for _, a := range accounts {
		if a.CashBank && a.Label == channelHint {
			return a, true
		}
	}
	return model.Account{}, false
}
