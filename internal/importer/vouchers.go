package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tillbook-dev/tillbook/internal/model"
)

// VoucherParser parses manual voucher CSV exports.
//
// Columns: voucher_no,date,account_label,type,amount,party,narration
type VoucherParser struct{}

const (
	voucherDateFormat = "2006-01-02"
	voucherNumFields  = 7
	voucherColNo      = 0
	voucherColDate    = 1
	voucherColAccount = 2
	voucherColType    = 3
	voucherColAmount  = 4
	voucherColParty   = 5
	voucherColNarr    = 6
)

// Format returns the parser name.
func (p *VoucherParser) Format() string { return "vouchers" }

// Parse reads a voucher CSV and returns its records.
func (p *VoucherParser) Parse(r io.Reader) (Records, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = voucherNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return Records{}, fmt.Errorf("reading voucher CSV: %w", err)
	}

	if len(records) <= 1 {
		return Records{}, nil
	}

	var out Records
	for i, rec := range records[1:] {
		v, err := parseVoucherRow(rec)
		if err != nil {
			return Records{}, fmt.Errorf("row %d: %w", i+2, err)
		}
		out.Vouchers = append(out.Vouchers, v)
	}
	return out, nil
}

func parseVoucherRow(rec []string) (model.Voucher, error) {
	date, err := time.Parse(voucherDateFormat, rec[voucherColDate])
	if err != nil {
		return model.Voucher{}, fmt.Errorf("parsing date %q: %w", rec[voucherColDate], err)
	}

	amount, err := decimal.NewFromString(rec[voucherColAmount])
	if err != nil {
		return model.Voucher{}, fmt.Errorf("parsing amount %q: %w", rec[voucherColAmount], err)
	}

	return model.Voucher{
		VoucherNo:    rec[voucherColNo],
		Date:         date,
		AccountLabel: rec[voucherColAccount],
		Type:         model.VoucherType(rec[voucherColType]),
		Amount:       amount,
		Party:        rec[voucherColParty],
		Narration:    rec[voucherColNarr],
	}, nil
}
