package procurement

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPOItem(t *testing.T, qty int, price, taxRate float64) PurchaseOrderItem {
	t.Helper()
	item, err := NewPurchaseOrderItem(uuid.New(), qty,
		decimal.NewFromFloat(price), decimal.NewFromFloat(taxRate))
	require.NoError(t, err)
	return *item
}

func newTestPO(t *testing.T) *PurchaseOrder {
	t.Helper()
	items := []PurchaseOrderItem{testPOItem(t, 5, 20, 18)}
	po, err := NewPurchaseOrder(uuid.New(), uuid.New(), "PO-001", time.Now(), nil, items, "")
	require.NoError(t, err)
	return po
}

func TestNewPurchaseOrder(t *testing.T) {
	tenantID := uuid.New()
	supplierID := uuid.New()
	now := time.Now()

	t.Run("creates order and sums line totals", func(t *testing.T) {
		items := []PurchaseOrderItem{
			testPOItem(t, 5, 20, 18),
			testPOItem(t, 2, 7.5, 0),
		}

		po, err := NewPurchaseOrder(tenantID, supplierID, "PO-100", now, nil, items, "restock")
		require.NoError(t, err)

		assert.Equal(t, PurchaseOrderStatusSent, po.Status)
		assert.True(t, po.Subtotal.Equal(decimal.NewFromInt(115)), "subtotal was %s", po.Subtotal)
		assert.True(t, po.TaxAmount.Equal(decimal.NewFromInt(18)), "tax was %s", po.TaxAmount)
		assert.True(t, po.Total.Equal(decimal.NewFromInt(133)), "total was %s", po.Total)
		for _, item := range po.Items {
			assert.Equal(t, po.ID, item.PurchaseOrderID)
		}
	})

	t.Run("fails without items", func(t *testing.T) {
		_, err := NewPurchaseOrder(tenantID, supplierID, "PO-101", now, nil, nil, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one item")
	})

	t.Run("fails with expected date before order date", func(t *testing.T) {
		expected := now.AddDate(0, 0, -1)
		items := []PurchaseOrderItem{testPOItem(t, 1, 10, 0)}
		_, err := NewPurchaseOrder(tenantID, supplierID, "PO-102", now, &expected, items, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Expected date")
	})
}

func TestPurchaseOrderConfirm(t *testing.T) {
	t.Run("confirms sent order", func(t *testing.T) {
		po := newTestPO(t)
		require.NoError(t, po.Confirm())
		assert.Equal(t, PurchaseOrderStatusConfirmed, po.Status)
	})

	t.Run("confirming twice is a no-op", func(t *testing.T) {
		po := newTestPO(t)
		require.NoError(t, po.Confirm())
		require.NoError(t, po.Confirm())
		assert.Equal(t, PurchaseOrderStatusConfirmed, po.Status)
	})

	t.Run("fails on received order", func(t *testing.T) {
		po := newTestPO(t)
		require.NoError(t, po.Receive())
		require.Error(t, po.Confirm())
	})
}

func TestPurchaseOrderReceive(t *testing.T) {
	t.Run("receives confirmed order", func(t *testing.T) {
		po := newTestPO(t)
		require.NoError(t, po.Confirm())
		require.NoError(t, po.Receive())
		assert.Equal(t, PurchaseOrderStatusReceived, po.Status)
	})

	t.Run("receives sent order directly", func(t *testing.T) {
		po := newTestPO(t)
		require.NoError(t, po.Receive())
		assert.Equal(t, PurchaseOrderStatusReceived, po.Status)
	})

	t.Run("receiving twice is a no-op", func(t *testing.T) {
		po := newTestPO(t)
		require.NoError(t, po.Receive())
		require.NoError(t, po.Receive())
		assert.Equal(t, PurchaseOrderStatusReceived, po.Status)
	})

	t.Run("fails on cancelled order", func(t *testing.T) {
		po := newTestPO(t)
		po.Status = PurchaseOrderStatusCancelled
		require.Error(t, po.Receive())
	})
}

func TestPurchaseOrderStatusTransitions(t *testing.T) {
	assert.True(t, PurchaseOrderStatusSent.CanTransitionTo(PurchaseOrderStatusConfirmed))
	assert.True(t, PurchaseOrderStatusConfirmed.CanTransitionTo(PurchaseOrderStatusReceived))
	assert.False(t, PurchaseOrderStatusSent.CanTransitionTo(PurchaseOrderStatusReceived))
	assert.False(t, PurchaseOrderStatusReceived.CanTransitionTo(PurchaseOrderStatusSent))
	assert.False(t, PurchaseOrderStatusCancelled.CanTransitionTo(PurchaseOrderStatusConfirmed))
	assert.False(t, PurchaseOrderStatus("DRAFT").IsValid())
}
