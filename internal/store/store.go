// Package store persists the account catalog, the three source document
// streams, and balance checkpoints in sqlite. It stands in for the production
// document database; a tenant-scoped view implements report.Source.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tillbook-dev/tillbook/internal/id"
	"github.com/tillbook-dev/tillbook/internal/model"
	"github.com/tillbook-dev/tillbook/internal/replay"
)

// Store wraps the sqlite database shared by all tenants.
type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Open opens (or creates) the database at path and migrates the schema.
func Open(path string, log zerolog.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	if err := db.AutoMigrate(
		&Account{},
		&Voucher{},
		&SaleDocument{},
		&SaleChannel{},
		&PurchaseDocument{},
		&PurchaseChannel{},
		&BalanceCheckpoint{},
	); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

// ForTenant returns a tenant-scoped view of the store.
func (s *Store) ForTenant(tenant string) *TenantStore {
	return &TenantStore{db: s.db, tenant: tenant, log: s.log.With().Str("tenant", tenant).Logger()}
}

// TenantStore reads and writes one tenant's records. It implements
// report.Source.
type TenantStore struct {
	db     *gorm.DB
	tenant string
	log    zerolog.Logger
}

// Accounts returns the tenant's account catalog ordered by label.
func (t *TenantStore) Accounts(ctx context.Context) ([]model.Account, error) {
	var rows []Account
	err := t.db.WithContext(ctx).
		Where("tenant = ?", t.tenant).
		Order("label").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("loading accounts: %w", err)
	}
	accounts := make([]model.Account, 0, len(rows))
	for _, r := range rows {
		accounts = append(accounts, r.toModel())
	}
	return accounts, nil
}

// Vouchers returns every voucher dated on or before through.
func (t *TenantStore) Vouchers(ctx context.Context, through time.Time) ([]model.Voucher, error) {
	var rows []Voucher
	err := t.db.WithContext(ctx).
		Where("tenant = ? AND date < ?", t.tenant, dayAfter(through)).
		Order("date, voucher_no").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("loading vouchers: %w", err)
	}
	vouchers := make([]model.Voucher, 0, len(rows))
	for _, r := range rows {
		vouchers = append(vouchers, r.toModel())
	}
	return vouchers, nil
}

// Sales returns every sale document dated on or before through, with its
// payment breakdown in stored order.
func (t *TenantStore) Sales(ctx context.Context, through time.Time) ([]model.SaleDocument, error) {
	var rows []SaleDocument
	err := t.db.WithContext(ctx).
		Preload("Channels", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("tenant = ? AND date < ?", t.tenant, dayAfter(through)).
		Order("date, invoice_no").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("loading sale documents: %w", err)
	}
	sales := make([]model.SaleDocument, 0, len(rows))
	for _, r := range rows {
		sales = append(sales, r.toModel())
	}
	return sales, nil
}

// Purchases returns every purchase document dated on or before through.
func (t *TenantStore) Purchases(ctx context.Context, through time.Time) ([]model.PurchaseDocument, error) {
	var rows []PurchaseDocument
	err := t.db.WithContext(ctx).
		Preload("Channels", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("tenant = ? AND date < ?", t.tenant, dayAfter(through)).
		Order("date, bill_no").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("loading purchase documents: %w", err)
	}
	purchases := make([]model.PurchaseDocument, 0, len(rows))
	for _, r := range rows {
		purchases = append(purchases, r.toModel())
	}
	return purchases, nil
}

// Checkpoint returns the latest balance snapshot for the account dated at or
// before cutoff.
func (t *TenantStore) Checkpoint(ctx context.Context, accountLabel string, cutoff time.Time) (replay.Checkpoint, bool, error) {
	var row BalanceCheckpoint
	err := t.db.WithContext(ctx).
		Where("tenant = ? AND account_label = ? AND as_of <= ?", t.tenant, accountLabel, cutoff).
		Order("as_of DESC").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return replay.Checkpoint{}, false, nil
	}
	if err != nil {
		return replay.Checkpoint{}, false, fmt.Errorf("loading checkpoint: %w", err)
	}
	return replay.Checkpoint{
		AccountLabel: row.AccountLabel,
		AsOf:         row.AsOf,
		Balance:      row.Balance,
	}, true, nil
}

// SaveAccount inserts or updates a catalog account by label.
func (t *TenantStore) SaveAccount(ctx context.Context, a model.Account) error {
	row := Account{
		Tenant:       t.tenant,
		Code:         a.Code,
		Label:        a.Label,
		CashBank:     a.CashBank,
		OpeningValue: a.OpeningValue,
		Channel:      a.Channel,
	}
	var existing Account
	err := t.db.WithContext(ctx).
		Where("tenant = ? AND label = ?", t.tenant, a.Label).
		First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := t.db.WithContext(ctx).Create(&row).Error; err != nil {
			return fmt.Errorf("creating account %s: %w", a.Label, err)
		}
	case err != nil:
		return fmt.Errorf("looking up account %s: %w", a.Label, err)
	default:
		row.ID = existing.ID
		if err := t.db.WithContext(ctx).Save(&row).Error; err != nil {
			return fmt.Errorf("updating account %s: %w", a.Label, err)
		}
	}
	return nil
}

// AddVoucher stores a manual voucher. A missing voucher number is assigned
// from the month's sequence.
func (t *TenantStore) AddVoucher(ctx context.Context, v model.Voucher) (string, error) {
	if v.VoucherNo == "" {
		no, err := t.nextVoucherNo(ctx, v)
		if err != nil {
			return "", err
		}
		v.VoucherNo = no
	}
	row := Voucher{
		Tenant:       t.tenant,
		VoucherNo:    v.VoucherNo,
		AccountLabel: v.AccountLabel,
		Date:         v.Date,
		Type:         string(v.Type),
		Amount:       v.Amount,
		Party:        v.Party,
		Narration:    v.Narration,
	}
	if err := t.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", fmt.Errorf("storing voucher %s: %w", v.VoucherNo, err)
	}
	return v.VoucherNo, nil
}

// AddSale stores a sale document with its payment breakdown.
func (t *TenantStore) AddSale(ctx context.Context, d model.SaleDocument) error {
	row := SaleDocument{
		Tenant:       t.tenant,
		InvoiceNo:    d.InvoiceNo,
		Date:         d.Date,
		CustomerName: d.CustomerName,
		PaymentMode:  d.PaymentMode,
		GrandTotal:   d.GrandTotal,
	}
	for _, c := range d.Channels {
		row.Channels = append(row.Channels, SaleChannel{Channel: c.Channel, Amount: c.Amount})
	}
	if err := t.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("storing sale %s: %w", d.InvoiceNo, err)
	}
	return nil
}

// AddPurchase stores a purchase document with its payment breakdown.
func (t *TenantStore) AddPurchase(ctx context.Context, d model.PurchaseDocument) error {
	row := PurchaseDocument{
		Tenant:      t.tenant,
		BillNo:      d.BillNo,
		Date:        d.Date,
		VendorName:  d.VendorName,
		PaymentMode: d.PaymentMode,
		GrandTotal:  d.GrandTotal,
	}
	for _, c := range d.Channels {
		row.Channels = append(row.Channels, PurchaseChannel{Channel: c.Channel, Amount: c.Amount})
	}
	if err := t.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("storing purchase %s: %w", d.BillNo, err)
	}
	return nil
}

// SaveCheckpoint persists a balance snapshot.
func (t *TenantStore) SaveCheckpoint(ctx context.Context, cp replay.Checkpoint) error {
	row := BalanceCheckpoint{
		Tenant:       t.tenant,
		AccountLabel: cp.AccountLabel,
		AsOf:         cp.AsOf,
		Balance:      cp.Balance,
	}
	if err := t.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("storing checkpoint for %s: %w", cp.AccountLabel, err)
	}
	return nil
}

// nextVoucherNo assigns the next sequence for the voucher's year/month.
func (t *TenantStore) nextVoucherNo(ctx context.Context, v model.Voucher) (string, error) {
	prefix := id.PrefixPayment
	if v.Type == model.VoucherReceipt {
		prefix = id.PrefixReceipt
	}
	year, month := v.Date.Year(), int(v.Date.Month())

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, v.Date.Location())
	var count int64
	err := t.db.WithContext(ctx).Model(&Voucher{}).
		Where("tenant = ? AND date >= ? AND date < ?", t.tenant, monthStart, monthStart.AddDate(0, 1, 0)).
		Count(&count).Error
	if err != nil {
		return "", fmt.Errorf("counting vouchers: %w", err)
	}
	return id.FormatVoucherNo(prefix, year, month, int(count)+1), nil
}

func dayAfter(d time.Time) time.Time {
	return model.DateOf(d).AddDate(0, 0, 1)
}
