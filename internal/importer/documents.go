package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tillbook-dev/tillbook/internal/model"
)

const (
	docDateFormat = "2006-01-02"
	docNumFields  = 6
	docColNo      = 0
	docColDate    = 1
	docColParty   = 2
	docColMode    = 3
	docColTotal   = 4
	docColChan    = 5
)

// SalesParser parses sale invoice CSV exports.
//
// Columns: invoice_no,date,customer,payment_mode,grand_total,channels
// where channels is a semicolon-separated list of channel:amount pairs in
// gateway order, e.g. "GPay:50;PhonePe:150".
type SalesParser struct{}

// Format returns the parser name.
func (p *SalesParser) Format() string { return "sales" }

// Parse reads a sales CSV and returns its records.
func (p *SalesParser) Parse(r io.Reader) (Records, error) {
	rows, err := readDocRows(r, "sales")
	if err != nil {
		return Records{}, err
	}

	var out Records
	for _, d := range rows {
		out.Sales = append(out.Sales, model.SaleDocument{
			InvoiceNo:    d.no,
			Date:         d.date,
			CustomerName: d.party,
			PaymentMode:  d.mode,
			GrandTotal:   d.total,
			Channels:     d.channels,
		})
	}
	return out, nil
}

// PurchasesParser parses purchase bill CSV exports.
//
// Columns: bill_no,date,vendor,payment_mode,grand_total,channels
type PurchasesParser struct{}

// Format returns the parser name.
func (p *PurchasesParser) Format() string { return "purchases" }

// Parse reads a purchases CSV and returns its records.
func (p *PurchasesParser) Parse(r io.Reader) (Records, error) {
	rows, err := readDocRows(r, "purchases")
	if err != nil {
		return Records{}, err
	}

	var out Records
	for _, d := range rows {
		out.Purchases = append(out.Purchases, model.PurchaseDocument{
			BillNo:      d.no,
			Date:        d.date,
			VendorName:  d.party,
			PaymentMode: d.mode,
			GrandTotal:  d.total,
			Channels:    d.channels,
		})
	}
	return out, nil
}

type docRow struct {
	no       string
	date     time.Time
	party    string
	mode     string
	total    decimal.Decimal
	channels []model.ChannelEntry
}

func readDocRows(r io.Reader, kind string) ([]docRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = docNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s CSV: %w", kind, err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var rows []docRow
	for i, rec := range records[1:] {
		row, err := parseDocRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseDocRow(rec []string) (docRow, error) {
	date, err := time.Parse(docDateFormat, rec[docColDate])
	if err != nil {
		return docRow{}, fmt.Errorf("parsing date %q: %w", rec[docColDate], err)
	}

	total, err := decimal.NewFromString(rec[docColTotal])
	if err != nil {
		return docRow{}, fmt.Errorf("parsing grand_total %q: %w", rec[docColTotal], err)
	}

	channels, err := parseChannels(rec[docColChan])
	if err != nil {
		return docRow{}, err
	}

	return docRow{
		no:       rec[docColNo],
		date:     date,
		party:    rec[docColParty],
		mode:     rec[docColMode],
		total:    total,
		channels: channels,
	}, nil
}

// parseChannels decodes "GPay:50;PhonePe:150" preserving entry order.
func parseChannels(s string) ([]model.ChannelEntry, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var entries []model.ChannelEntry
	for _, pair := range strings.Split(s, ";") {
		name, amt, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("invalid channel entry %q", pair)
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(amt))
		if err != nil {
			return nil, fmt.Errorf("parsing channel amount %q: %w", amt, err)
		}
		entries = append(entries, model.ChannelEntry{
			Channel: strings.TrimSpace(name),
			Amount:  amount,
		})
	}
	return entries, nil
}
