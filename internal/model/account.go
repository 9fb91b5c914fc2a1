package model

import "github.com/shopspring/decimal"

// Account is one cash or bank ledger line from the account catalog.
// Accounts are created and edited by master-data screens; the report engine
// only reads them.
type Account struct {
	Code         string
	Label        string          // unique within a tenant; resolution key
	CashBank     bool            // false = not tracked by the cash/bank report
	OpeningValue decimal.Decimal // set once at creation, never mutated by the engine
	Channel      string          // electronic payment channel this account settles
}
