package hr

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPayroll(t *testing.T) *Payroll {
	t.Helper()
	p, err := NewPayroll(uuid.New(), uuid.New(), 3, 2025,
		decimal.NewFromInt(50000), decimal.NewFromInt(8000), decimal.NewFromInt(3000))
	require.NoError(t, err)
	return p
}

func TestNewPayroll(t *testing.T) {
	tenantID := uuid.New()
	employeeID := uuid.New()

	t.Run("computes net salary", func(t *testing.T) {
		p, err := NewPayroll(tenantID, employeeID, 3, 2025,
			decimal.NewFromInt(50000), decimal.NewFromInt(8000), decimal.NewFromInt(3000))
		require.NoError(t, err)

		assert.Equal(t, PayrollStatusPending, p.Status)
		assert.True(t, p.NetSalary.Equal(decimal.NewFromInt(55000)), "net salary was %s", p.NetSalary)
		assert.Nil(t, p.PaidDate)
	})

	t.Run("fails with month out of range", func(t *testing.T) {
		_, err := NewPayroll(tenantID, employeeID, 0, 2025, decimal.Zero, decimal.Zero, decimal.Zero)
		require.Error(t, err)

		_, err = NewPayroll(tenantID, employeeID, 13, 2025, decimal.Zero, decimal.Zero, decimal.Zero)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "between 1 and 12")
	})

	t.Run("fails with year before 2000", func(t *testing.T) {
		_, err := NewPayroll(tenantID, employeeID, 1, 1999, decimal.Zero, decimal.Zero, decimal.Zero)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "2000 or later")
	})

	t.Run("fails with negative amounts", func(t *testing.T) {
		_, err := NewPayroll(tenantID, employeeID, 1, 2025,
			decimal.NewFromInt(-1), decimal.Zero, decimal.Zero)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be negative")
	})
}

func TestPayrollSetAmounts(t *testing.T) {
	p := newTestPayroll(t)
	require.NoError(t, p.SetAmounts(decimal.NewFromInt(60000), decimal.NewFromInt(5000), decimal.NewFromInt(2500)))
	assert.True(t, p.NetSalary.Equal(decimal.NewFromInt(62500)), "net salary was %s", p.NetSalary)
}

func TestPayrollLifecycle(t *testing.T) {
	t.Run("pending to processed to paid", func(t *testing.T) {
		p := newTestPayroll(t)
		require.NoError(t, p.Process())
		assert.Equal(t, PayrollStatusProcessed, p.Status)

		require.NoError(t, p.Pay())
		assert.Equal(t, PayrollStatusPaid, p.Status)
		require.NotNil(t, p.PaidDate)
	})

	t.Run("pays straight from pending", func(t *testing.T) {
		p := newTestPayroll(t)
		require.NoError(t, p.Pay())
		assert.Equal(t, PayrollStatusPaid, p.Status)
		require.NotNil(t, p.PaidDate)
	})

	t.Run("cannot pay a cancelled payroll", func(t *testing.T) {
		p := newTestPayroll(t)
		require.NoError(t, p.Cancel())
		err := p.Pay()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Cancelled")
	})

	t.Run("processing twice is a no-op", func(t *testing.T) {
		p := newTestPayroll(t)
		require.NoError(t, p.Process())
		require.NoError(t, p.Process())
		assert.Equal(t, PayrollStatusProcessed, p.Status)
	})

	t.Run("cancel from pending and processed", func(t *testing.T) {
		p := newTestPayroll(t)
		require.NoError(t, p.Cancel())
		assert.Equal(t, PayrollStatusCancelled, p.Status)

		p = newTestPayroll(t)
		require.NoError(t, p.Process())
		require.NoError(t, p.Cancel())
		assert.Equal(t, PayrollStatusCancelled, p.Status)
	})

	t.Run("cannot cancel a paid payroll", func(t *testing.T) {
		p := newTestPayroll(t)
		require.NoError(t, p.Process())
		require.NoError(t, p.Pay())
		require.Error(t, p.Cancel())
	})
}

func TestPayrollStatusTransitions(t *testing.T) {
	assert.True(t, PayrollStatusPending.CanTransitionTo(PayrollStatusProcessed))
	assert.True(t, PayrollStatusPending.CanTransitionTo(PayrollStatusCancelled))
	assert.True(t, PayrollStatusProcessed.CanTransitionTo(PayrollStatusPaid))
	assert.True(t, PayrollStatusProcessed.CanTransitionTo(PayrollStatusCancelled))
	assert.False(t, PayrollStatusPending.CanTransitionTo(PayrollStatusPaid))
	assert.False(t, PayrollStatusPaid.CanTransitionTo(PayrollStatusCancelled))
	assert.False(t, PayrollStatusCancelled.CanTransitionTo(PayrollStatusPending))
}
