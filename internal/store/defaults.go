package store

import (
	"github.com/shopspring/decimal"

	"github.com/tillbook-dev/tillbook/internal/model"
)

// DefaultAccounts is the starter catalog seeded by init. Labels follow the
// resolution rules: the cash account's label contains "cash", electronic
// accounts are labeled exactly after their channel.
func DefaultAccounts() []model.Account {
	return []model.Account{
		{Code: "1010", Label: "Cash in Hand", CashBank: true, OpeningValue: decimal.Zero},
		{Code: "1020", Label: "Bank", CashBank: true, OpeningValue: decimal.Zero, Channel: "Bank"},
		{Code: "1030", Label: "GPay", CashBank: true, OpeningValue: decimal.Zero, Channel: "GPay"},
		{Code: "1040", Label: "PhonePe", CashBank: true, OpeningValue: decimal.Zero, Channel: "PhonePe"},
	}
}
