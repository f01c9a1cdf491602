package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(t *testing.T, qty int, price, taxRate, discount float64) InvoiceItem {
	t.Helper()
	item, err := NewInvoiceItem(uuid.New(), qty,
		decimal.NewFromFloat(price), decimal.NewFromFloat(taxRate), decimal.NewFromFloat(discount))
	require.NoError(t, err)
	return *item
}

func TestNewInvoiceItem(t *testing.T) {
	t.Run("computes tax and total", func(t *testing.T) {
		item, err := NewInvoiceItem(uuid.New(), 2,
			decimal.NewFromInt(100), decimal.NewFromInt(18), decimal.NewFromInt(10))
		require.NoError(t, err)

		assert.True(t, item.LineAmount().Equal(decimal.NewFromInt(190)), "line amount was %s", item.LineAmount())
		assert.True(t, item.TaxAmount.Equal(decimal.NewFromFloat(34.2)), "tax was %s", item.TaxAmount)
		assert.True(t, item.Total.Equal(decimal.NewFromFloat(224.2)), "total was %s", item.Total)
	})

	t.Run("zero tax rate yields zero tax", func(t *testing.T) {
		item, err := NewInvoiceItem(uuid.New(), 3,
			decimal.NewFromFloat(9.99), decimal.Zero, decimal.Zero)
		require.NoError(t, err)
		assert.True(t, item.TaxAmount.IsZero())
		assert.True(t, item.Total.Equal(decimal.NewFromFloat(29.97)))
	})

	t.Run("fails with zero quantity", func(t *testing.T) {
		_, err := NewInvoiceItem(uuid.New(), 0, decimal.NewFromInt(100), decimal.Zero, decimal.Zero)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Quantity must be positive")
	})

	t.Run("fails with negative unit price", func(t *testing.T) {
		_, err := NewInvoiceItem(uuid.New(), 1, decimal.NewFromInt(-1), decimal.Zero, decimal.Zero)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Unit price cannot be negative")
	})

	t.Run("fails with tax rate above 100", func(t *testing.T) {
		_, err := NewInvoiceItem(uuid.New(), 1, decimal.NewFromInt(10), decimal.NewFromInt(101), decimal.Zero)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "between 0 and 100")
	})

	t.Run("fails with nil product", func(t *testing.T) {
		_, err := NewInvoiceItem(uuid.Nil, 1, decimal.NewFromInt(10), decimal.Zero, decimal.Zero)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Product ID is required")
	})
}

func TestNewInvoice(t *testing.T) {
	tenantID := uuid.New()
	customerID := uuid.New()
	now := time.Now()
	due := now.AddDate(0, 0, 30)

	t.Run("creates invoice and sums line totals", func(t *testing.T) {
		items := []InvoiceItem{
			testItem(t, 2, 100, 18, 10),
			testItem(t, 1, 50, 0, 0),
		}

		inv, err := NewInvoice(tenantID, customerID, "INV-001", now, due, items, "first order")
		require.NoError(t, err)
		require.NotNil(t, inv)

		assert.Equal(t, tenantID, inv.TenantID)
		assert.Equal(t, InvoiceStatusSent, inv.Status)
		assert.True(t, inv.Subtotal.Equal(decimal.NewFromInt(240)), "subtotal was %s", inv.Subtotal)
		assert.True(t, inv.TaxAmount.Equal(decimal.NewFromFloat(34.2)), "tax was %s", inv.TaxAmount)
		assert.True(t, inv.Total.Equal(decimal.NewFromFloat(274.2)), "total was %s", inv.Total)
		for _, item := range inv.Items {
			assert.Equal(t, inv.ID, item.InvoiceID)
		}
	})

	t.Run("fails without items", func(t *testing.T) {
		_, err := NewInvoice(tenantID, customerID, "INV-002", now, due, nil, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one item")
	})

	t.Run("fails with due date before invoice date", func(t *testing.T) {
		items := []InvoiceItem{testItem(t, 1, 10, 0, 0)}
		_, err := NewInvoice(tenantID, customerID, "INV-003", now, now.AddDate(0, 0, -1), items, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Due date")
	})

	t.Run("fails with empty invoice number", func(t *testing.T) {
		items := []InvoiceItem{testItem(t, 1, 10, 0, 0)}
		_, err := NewInvoice(tenantID, customerID, "", now, due, items, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invoice number")
	})
}

func TestInvoiceMarkPaid(t *testing.T) {
	newInvoice := func(t *testing.T) *Invoice {
		items := []InvoiceItem{testItem(t, 1, 100, 0, 0)}
		inv, err := NewInvoice(uuid.New(), uuid.New(), "INV-100", time.Now(), time.Now().AddDate(0, 0, 15), items, "")
		require.NoError(t, err)
		return inv
	}

	t.Run("marks sent invoice as paid", func(t *testing.T) {
		inv := newInvoice(t)
		require.NoError(t, inv.MarkPaid())
		assert.Equal(t, InvoiceStatusPaid, inv.Status)
	})

	t.Run("marking paid twice is a no-op", func(t *testing.T) {
		inv := newInvoice(t)
		require.NoError(t, inv.MarkPaid())
		require.NoError(t, inv.MarkPaid())
		assert.Equal(t, InvoiceStatusPaid, inv.Status)
	})

	t.Run("fails on cancelled invoice", func(t *testing.T) {
		inv := newInvoice(t)
		inv.Status = InvoiceStatusCancelled
		err := inv.MarkPaid()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Cancelled")
	})
}

func TestInvoiceStatusTransitions(t *testing.T) {
	t.Run("valid statuses", func(t *testing.T) {
		assert.True(t, InvoiceStatusSent.IsValid())
		assert.True(t, InvoiceStatusPaid.IsValid())
		assert.True(t, InvoiceStatusOverdue.IsValid())
		assert.True(t, InvoiceStatusCancelled.IsValid())
		assert.False(t, InvoiceStatus("DRAFT").IsValid())
	})

	t.Run("transition rules", func(t *testing.T) {
		assert.True(t, InvoiceStatusSent.CanTransitionTo(InvoiceStatusPaid))
		assert.True(t, InvoiceStatusSent.CanTransitionTo(InvoiceStatusCancelled))
		assert.True(t, InvoiceStatusOverdue.CanTransitionTo(InvoiceStatusPaid))
		assert.False(t, InvoiceStatusPaid.CanTransitionTo(InvoiceStatusSent))
		assert.False(t, InvoiceStatusCancelled.CanTransitionTo(InvoiceStatusPaid))
	})
}
