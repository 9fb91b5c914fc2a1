// Package export renders report rows for downstream consumers. It is a pure
// consumer of display rows; rendering settings arrive as explicit options,
// never as ambient state.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tillbook-dev/tillbook/internal/model"
	"github.com/tillbook-dev/tillbook/internal/report"
)

// Options carries the rendering settings supplied by the caller.
type Options struct {
	CurrencySymbol string
	Letterhead     string // company name printed above the table
}

// Header is the CSV header for a ledger export.
const Header = "date,voucher_no,counterparty,narration,inflow,outflow,balance"

const (
	numFields  = 7
	dateFormat = "2006-01-02"
	colDate    = 0
	colVoucher = 1
	colCparty  = 2
	colNarr    = 3
	colIn      = 4
	colOut     = 5
	colBalance = 6
)

// WriteLedger writes one account's display rows as CSV, preceded by the
// letterhead and account label.
func WriteLedger(w io.Writer, accountLabel string, rows []model.Row, opts Options) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if opts.Letterhead != "" {
		if err := cw.Write([]string{opts.Letterhead}); err != nil {
			return fmt.Errorf("writing letterhead: %w", err)
		}
	}
	if err := cw.Write([]string{"Account: " + accountLabel}); err != nil {
		return fmt.Errorf("writing account line: %w", err)
	}
	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rows {
		if err := cw.Write(MarshalRow(row, opts)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalRow converts a display row to a CSV record.
func MarshalRow(row model.Row, opts Options) []string {
	rec := make([]string, numFields)
	rec[colBalance] = money(row.Balance, opts)

	switch row.Type {
	case model.RowOpening:
		rec[colNarr] = "Opening Balance"
	case model.RowTransaction:
		rec[colDate] = row.Date.Format(dateFormat)
		rec[colVoucher] = row.VoucherNo
		rec[colCparty] = row.Counterparty
		rec[colNarr] = row.Narration
		if row.Flow == model.Inflow {
			rec[colIn] = money(row.Amount, opts)
		} else {
			rec[colOut] = money(row.Amount, opts)
		}
	case model.RowDayClosing:
		rec[colDate] = row.Date.Format(dateFormat)
		rec[colNarr] = "Day Closing"
		rec[colIn] = money(row.Inflow, opts)
		rec[colOut] = money(row.Outflow, opts)
	case model.RowClosing:
		rec[colNarr] = "Closing Balance"
		rec[colIn] = money(row.Inflow, opts)
		rec[colOut] = money(row.Outflow, opts)
	}
	return rec
}

// SummaryHeader is the CSV header for a summary export.
const SummaryHeader = "account,opening,receipts,payments,closing"

// WriteSummary writes the condensed per-account view plus a totals line.
func WriteSummary(w io.Writer, sum report.Summary, opts Options) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if opts.Letterhead != "" {
		if err := cw.Write([]string{opts.Letterhead}); err != nil {
			return fmt.Errorf("writing letterhead: %w", err)
		}
	}
	if err := cw.Write(strings.Split(SummaryHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, a := range sum.Accounts {
		if err := cw.Write(summaryRecord(a.Label, a, opts)); err != nil {
			return fmt.Errorf("writing account %s: %w", a.Label, err)
		}
	}
	if err := cw.Write(summaryRecord("Total", sum.Totals, opts)); err != nil {
		return fmt.Errorf("writing totals: %w", err)
	}
	return cw.Error()
}

func summaryRecord(label string, a report.AccountSummary, opts Options) []string {
	return []string{
		label,
		money(a.Opening, opts),
		money(a.Receipts, opts),
		money(a.Payments, opts),
		money(a.Closing, opts),
	}
}

func money(d decimal.Decimal, opts Options) string {
	return opts.CurrencySymbol + d.StringFixed(2)
}
