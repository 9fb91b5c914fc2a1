// Package replay derives an account's balance at a point in time by
// sequentially applying its transaction history.
package replay

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tillbook-dev/tillbook/internal/model"
)

// Checkpoint is a persisted balance snapshot: the account's balance including
// every transaction dated before AsOf. Replaying from a checkpoint must give
// the same result as replaying the full history.
type Checkpoint struct {
	AccountLabel string
	AsOf         time.Time
	Balance      decimal.Decimal
}

// OpeningBalanceAsOf computes the account's balance at the start of
// windowStart: the account's opening value plus every one of its transactions
// dated strictly before windowStart, applied in (date, voucher number) order.
//
// This replays the account's entire history on every call. Fine for a single
// small-business tenant; use a Checkpoint once historical volume grows.
func OpeningBalanceAsOf(account model.Account, windowStart time.Time, history []model.Transaction) decimal.Decimal {
	return apply(account.OpeningValue, account.Label, time.Time{}, windowStart, history)
}

// OpeningBalanceFromCheckpoint is the snapshot variant of OpeningBalanceAsOf:
// replay starts at the checkpoint balance and only covers transactions dated
// on or after the checkpoint.
func OpeningBalanceFromCheckpoint(account model.Account, cp Checkpoint, windowStart time.Time, history []model.Transaction) decimal.Decimal {
	return apply(cp.Balance, account.Label, cp.AsOf, windowStart, history)
}

func apply(start decimal.Decimal, label string, from, until time.Time, history []model.Transaction) decimal.Decimal {
	var own []model.Transaction
	for _, t := range history {
		if t.AccountLabel != label {
			continue
		}
		d := model.DateOf(t.Date)
		if !from.IsZero() && d.Before(from) {
			continue
		}
		if !d.Before(until) {
			continue
		}
		own = append(own, t)
	}
	model.SortTransactions(own)

	balance := start
	for _, t := range own {
		balance = balance.Add(t.Signed())
	}
	return balance
}
