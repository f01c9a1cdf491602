package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/bizledger/backend/internal/domain/billing"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newBillingDB creates an in-memory database with the billing schema
func newBillingDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&billing.Invoice{}, &billing.InvoiceItem{}))
	return db
}

func newTestInvoice(t *testing.T, tenantID uuid.UUID, number string) *billing.Invoice {
	t.Helper()

	item, err := billing.NewInvoiceItem(uuid.New(), 2, decimal.NewFromInt(500), decimal.NewFromInt(18), decimal.Zero)
	require.NoError(t, err)

	now := time.Now()
	invoice, err := billing.NewInvoice(tenantID, uuid.New(), number, now, now.AddDate(0, 0, 30), []billing.InvoiceItem{*item}, "")
	require.NoError(t, err)
	return invoice
}

func TestGormInvoiceRepository_SaveAndFind(t *testing.T) {
	db := newBillingDB(t)
	repo := NewGormInvoiceRepository(db)
	tenantID := uuid.New()

	invoice := newTestInvoice(t, tenantID, "INV-2026-001")
	require.NoError(t, repo.Save(context.Background(), invoice))

	t.Run("finds invoice with line items", func(t *testing.T) {
		found, err := repo.FindByIDForTenant(context.Background(), tenantID, invoice.ID)

		require.NoError(t, err)
		assert.Equal(t, "INV-2026-001", found.InvoiceNumber)
		assert.Equal(t, billing.InvoiceStatusSent, found.Status)
		require.Len(t, found.Items, 1)
		assert.Equal(t, 2, found.Items[0].Quantity)
		assert.True(t, found.Total.Equal(decimal.NewFromInt(1180)))
	})

	t.Run("does not leak invoices across tenants", func(t *testing.T) {
		_, err := repo.FindByIDForTenant(context.Background(), uuid.New(), invoice.ID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("save replaces line items", func(t *testing.T) {
		replacement, err := billing.NewInvoiceItem(uuid.New(), 1, decimal.NewFromInt(100), decimal.Zero, decimal.Zero)
		require.NoError(t, err)
		replacement.InvoiceID = invoice.ID
		invoice.Items = []billing.InvoiceItem{*replacement}

		require.NoError(t, repo.Save(context.Background(), invoice))

		found, err := repo.FindByIDForTenant(context.Background(), tenantID, invoice.ID)
		require.NoError(t, err)
		require.Len(t, found.Items, 1)
		assert.Equal(t, 1, found.Items[0].Quantity)
	})
}

func TestGormInvoiceRepository_FindAllForTenant(t *testing.T) {
	db := newBillingDB(t)
	repo := NewGormInvoiceRepository(db)
	tenantID := uuid.New()

	first := newTestInvoice(t, tenantID, "INV-2026-001")
	second := newTestInvoice(t, tenantID, "INV-2026-002")
	require.NoError(t, first.MarkPaid())
	require.NoError(t, repo.Save(context.Background(), first))
	require.NoError(t, repo.Save(context.Background(), second))

	other := newTestInvoice(t, uuid.New(), "INV-2026-001")
	require.NoError(t, repo.Save(context.Background(), other))

	t.Run("lists only the tenant's invoices", func(t *testing.T) {
		filter := shared.Filter{Take: 50}
		invoices, err := repo.FindAllForTenant(context.Background(), tenantID, filter)

		require.NoError(t, err)
		assert.Len(t, invoices, 2)

		count, err := repo.CountForTenant(context.Background(), tenantID, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("filters by status", func(t *testing.T) {
		filter := shared.Filter{
			Take:    50,
			Filters: map[string]any{"status": "PAID"},
		}
		invoices, err := repo.FindAllForTenant(context.Background(), tenantID, filter)

		require.NoError(t, err)
		require.Len(t, invoices, 1)
		assert.Equal(t, "INV-2026-001", invoices[0].InvoiceNumber)
	})
}

func TestGormInvoiceRepository_DeleteForTenant(t *testing.T) {
	db := newBillingDB(t)
	repo := NewGormInvoiceRepository(db)
	tenantID := uuid.New()

	invoice := newTestInvoice(t, tenantID, "INV-2026-001")
	require.NoError(t, repo.Save(context.Background(), invoice))

	t.Run("refuses to delete across tenants", func(t *testing.T) {
		err := repo.DeleteForTenant(context.Background(), uuid.New(), invoice.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("deletes the invoice", func(t *testing.T) {
		require.NoError(t, repo.DeleteForTenant(context.Background(), tenantID, invoice.ID))

		_, err := repo.FindByIDForTenant(context.Background(), tenantID, invoice.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
