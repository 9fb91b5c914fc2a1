package report

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/tillbook-dev/tillbook/internal/ledger"
	"github.com/tillbook-dev/tillbook/internal/model"
	"github.com/tillbook-dev/tillbook/internal/normalize"
	"github.com/tillbook-dev/tillbook/internal/replay"
	"github.com/tillbook-dev/tillbook/internal/resolve"
)

// Source supplies the account catalog and the three raw record streams.
// Stream methods return every record dated on or before through, so the
// composer can replay opening balances from full history. Checkpoint returns
// the most recent balance snapshot dated at or before cutoff, with ok=false
// when none exists.
type Source interface {
	Accounts(ctx context.Context) ([]model.Account, error)
	Vouchers(ctx context.Context, through time.Time) ([]model.Voucher, error)
	Sales(ctx context.Context, through time.Time) ([]model.SaleDocument, error)
	Purchases(ctx context.Context, through time.Time) ([]model.PurchaseDocument, error)
	Checkpoint(ctx context.Context, accountLabel string, cutoff time.Time) (replay.Checkpoint, bool, error)
}

// Composer runs the report pipeline: normalize the source streams, replay
// each account's opening balance, and aggregate its window into display rows.
// It holds no state between runs; concurrent runs do not interfere.
type Composer struct {
	src Source
	log zerolog.Logger
}

// NewComposer creates a Composer over a record source.
func NewComposer(src Source, log zerolog.Logger) *Composer {
	return &Composer{src: src, log: log}
}

// Run executes one report. The three source streams are fetched concurrently;
// a stream failure aborts the whole run. Per-account pipelines then run
// concurrently and fail independently: a failed account lands in
// Report.Errors while the rest of the report stands.
func (c *Composer) Run(ctx context.Context, p Params) (*Report, error) {
	started := time.Now()

	accounts, err := c.src.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading account catalog: %w", err)
	}
	catalog := resolve.NewCatalog(accounts)

	var (
		vouchers  []model.Voucher
		sales     []model.SaleDocument
		purchases []model.PurchaseDocument
	)
	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		var err error
		vouchers, err = c.src.Vouchers(gctx, p.Window.To)
		return err
	})
	grp.Go(func() error {
		var err error
		sales, err = c.src.Sales(gctx, p.Window.To)
		return err
	})
	grp.Go(func() error {
		var err error
		purchases, err = c.src.Purchases(gctx, p.Window.To)
		return err
	})
	if err := grp.Wait(); err != nil {
		return nil, fmt.Errorf("loading source streams: %w", err)
	}

	txns := normalize.New(accounts).All(vouchers, sales, purchases)
	byLabel := make(map[string][]model.Transaction)
	for _, t := range txns {
		byLabel[t.AccountLabel] = append(byLabel[t.AccountLabel], t)
	}

	selected, err := selectAccounts(catalog, p.AccountLabels)
	if err != nil {
		return nil, err
	}

	rep := &Report{
		Window: p.Window,
		Rows:   make(map[string][]model.Row, len(selected)),
		Errors: make(map[string]error),
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, acct := range selected {
		wg.Add(1)
		go func(acct model.Account) {
			defer wg.Done()
			rows, err := c.accountRows(ctx, acct, byLabel[acct.Label], p.Window)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				rep.Errors[acct.Label] = err
				return
			}
			rep.Rows[acct.Label] = rows
		}(acct)
	}
	wg.Wait()

	c.log.Info().
		Int("accounts", len(selected)).
		Int("transactions", len(txns)).
		Int("failed", len(rep.Errors)).
		Dur("took", time.Since(started)).
		Time("from", p.Window.From).
		Time("to", p.Window.To).
		Msg("cash/bank report composed")

	return rep, nil
}

// accountRows runs one account's pipeline: opening balance replay, then
// window aggregation. Replay starts from a checkpoint when the store has one
// before the window, otherwise from the account's full history.
func (c *Composer) accountRows(ctx context.Context, acct model.Account, txns []model.Transaction, w Window) ([]model.Row, error) {
	windowStart := model.DateOf(w.From)

	cp, ok, err := c.src.Checkpoint(ctx, acct.Label, windowStart)
	if err != nil {
		return nil, fmt.Errorf("loading checkpoint for %s: %w", acct.Label, err)
	}

	var opening decimal.Decimal
	if ok {
		opening = replay.OpeningBalanceFromCheckpoint(acct, cp, windowStart, txns)
	} else {
		opening = replay.OpeningBalanceAsOf(acct, windowStart, txns)
	}

	var window []model.Transaction
	for _, t := range txns {
		if w.Contains(t.Date) {
			window = append(window, t)
		}
	}
	return ledger.BuildRows(opening, window), nil
}

func selectAccounts(catalog *resolve.Catalog, labels []string) ([]model.Account, error) {
	if len(labels) == 0 {
		return catalog.CashBank(), nil
	}
	selected := make([]model.Account, 0, len(labels))
	for _, label := range labels {
		a, ok := catalog.ByLabel(label)
		if !ok {
			return nil, fmt.Errorf("unknown account %q", label)
		}
		selected = append(selected, a)
	}
	return selected, nil
}
