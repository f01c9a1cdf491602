package billing

import (
	"context"
	"testing"
	"time"

	"github.com/bizledger/backend/internal/domain/billing"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockInvoiceRepository is a mock implementation of InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*billing.Invoice, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]billing.Invoice, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Save(ctx context.Context, invoice *billing.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockInvoiceRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func validCreateRequest(customerID uuid.UUID) CreateInvoiceRequest {
	taxRate := decimal.NewFromInt(18)
	discount := decimal.NewFromInt(10)
	now := time.Now()
	return CreateInvoiceRequest{
		InvoiceNumber: "INV-001",
		CustomerID:    customerID,
		InvoiceDate:   now,
		DueDate:       now.AddDate(0, 0, 30),
		Items: []InvoiceItemRequest{
			{
				ProductID: uuid.New(),
				Quantity:  2,
				UnitPrice: decimal.NewFromInt(100),
				TaxRate:   &taxRate,
				Discount:  &discount,
			},
		},
	}
}

func TestInvoiceServiceCreate(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("computes totals before saving", func(t *testing.T) {
		repo := new(MockInvoiceRepository)
		service := NewInvoiceService(repo, false)

		repo.On("Save", ctx, mock.AnythingOfType("*billing.Invoice")).Return(nil)

		resp, err := service.Create(ctx, tenantID, validCreateRequest(uuid.New()))
		require.NoError(t, err)

		assert.Equal(t, "SENT", resp.Status)
		assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(190)), "subtotal was %s", resp.Subtotal)
		assert.True(t, resp.TaxAmount.Equal(decimal.NewFromFloat(34.2)), "tax was %s", resp.TaxAmount)
		assert.True(t, resp.Total.Equal(decimal.NewFromFloat(224.2)), "total was %s", resp.Total)
		repo.AssertExpectations(t)
	})

	t.Run("rejects invalid line item without saving", func(t *testing.T) {
		repo := new(MockInvoiceRepository)
		service := NewInvoiceService(repo, false)

		req := validCreateRequest(uuid.New())
		req.Items[0].Quantity = 0

		_, err := service.Create(ctx, tenantID, req)
		require.Error(t, err)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestInvoiceServiceMarkPaid(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	newInvoice := func(t *testing.T) *billing.Invoice {
		item, err := billing.NewInvoiceItem(uuid.New(), 1, decimal.NewFromInt(100), decimal.Zero, decimal.Zero)
		require.NoError(t, err)
		inv, err := billing.NewInvoice(tenantID, uuid.New(), "INV-002", time.Now(), time.Now().AddDate(0, 0, 15), []billing.InvoiceItem{*item}, "")
		require.NoError(t, err)
		return inv
	}

	t.Run("marks invoice as paid", func(t *testing.T) {
		repo := new(MockInvoiceRepository)
		service := NewInvoiceService(repo, false)

		inv := newInvoice(t)
		repo.On("FindByIDForTenant", ctx, tenantID, inv.ID).Return(inv, nil)
		repo.On("Save", ctx, inv).Return(nil)

		resp, err := service.MarkPaid(ctx, tenantID, inv.ID)
		require.NoError(t, err)
		assert.Equal(t, "PAID", resp.Status)
	})

	t.Run("marking paid twice succeeds without change", func(t *testing.T) {
		repo := new(MockInvoiceRepository)
		service := NewInvoiceService(repo, true)

		inv := newInvoice(t)
		require.NoError(t, inv.MarkPaid())
		repo.On("FindByIDForTenant", ctx, tenantID, inv.ID).Return(inv, nil)
		repo.On("Save", ctx, inv).Return(nil)

		resp, err := service.MarkPaid(ctx, tenantID, inv.ID)
		require.NoError(t, err)
		assert.Equal(t, "PAID", resp.Status)
	})

	t.Run("strict mode rejects cancelled invoice", func(t *testing.T) {
		repo := new(MockInvoiceRepository)
		service := NewInvoiceService(repo, true)

		inv := newInvoice(t)
		inv.Status = billing.InvoiceStatusCancelled
		repo.On("FindByIDForTenant", ctx, tenantID, inv.ID).Return(inv, nil)

		_, err := service.MarkPaid(ctx, tenantID, inv.ID)
		require.Error(t, err)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("returns not found for another tenant's invoice", func(t *testing.T) {
		repo := new(MockInvoiceRepository)
		service := NewInvoiceService(repo, false)

		invoiceID := uuid.New()
		repo.On("FindByIDForTenant", ctx, tenantID, invoiceID).Return(nil, shared.ErrNotFound)

		_, err := service.MarkPaid(ctx, tenantID, invoiceID)
		require.Error(t, err)
	})
}

func TestInvoiceServiceDelete(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("verifies ownership before deleting", func(t *testing.T) {
		repo := new(MockInvoiceRepository)
		service := NewInvoiceService(repo, false)

		invoiceID := uuid.New()
		repo.On("FindByIDForTenant", ctx, tenantID, invoiceID).Return(nil, shared.ErrNotFound)

		err := service.Delete(ctx, tenantID, invoiceID)
		require.Error(t, err)
		repo.AssertNotCalled(t, "DeleteForTenant")
	})
}
