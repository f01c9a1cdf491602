package partner

import (
	"context"
	"errors"
	"testing"

	"github.com/bizledger/backend/internal/domain/partner"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

// =============================================================================
// Tests
// =============================================================================

func TestCustomerServiceCreate(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("creates customer with full details", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		repo.On("Save", ctx, mock.AnythingOfType("*partner.Customer")).Return(nil)

		resp, err := service.Create(ctx, tenantID, CreateCustomerRequest{
			Name:      "Acme Traders",
			Email:     "contact@acme.example",
			Phone:     "+91 98765 43210",
			City:      "Mumbai",
			GSTNumber: "27AAPFU0939F1ZV",
		})
		require.NoError(t, err)

		assert.Equal(t, "Acme Traders", resp.Name)
		assert.Equal(t, "contact@acme.example", resp.Email)
		assert.True(t, resp.IsActive)
		repo.AssertExpectations(t)
	})

	t.Run("fails with invalid email", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		_, err := service.Create(ctx, tenantID, CreateCustomerRequest{
			Name:  "Acme Traders",
			Email: "not-an-email",
		})
		require.Error(t, err)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestCustomerServiceGetByID(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("returns not found for another tenant's customer", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		customerID := uuid.New()
		repo.On("FindByIDForTenant", ctx, tenantID, customerID).Return(nil, shared.ErrNotFound)

		_, err := service.GetByID(ctx, tenantID, customerID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrNotFound) || err.Error() == shared.ErrNotFound.Error())
	})

	t.Run("returns customer", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		customer, err := partner.NewCustomer(tenantID, "Acme Traders")
		require.NoError(t, err)
		repo.On("FindByIDForTenant", ctx, tenantID, customer.ID).Return(customer, nil)

		resp, err := service.GetByID(ctx, tenantID, customer.ID)
		require.NoError(t, err)
		assert.Equal(t, customer.ID, resp.ID)
	})
}

func TestCustomerServiceList(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("applies default pagination", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		customer, err := partner.NewCustomer(tenantID, "Acme Traders")
		require.NoError(t, err)

		expected := shared.DefaultFilter()
		expected.Search = "acme"
		expected.Filters["is_active"] = true
		repo.On("FindAllForTenant", ctx, tenantID, expected).Return([]partner.Customer{*customer}, nil)
		repo.On("CountForTenant", ctx, tenantID, expected).Return(int64(1), nil)

		list, total, err := service.List(ctx, tenantID, PartnerListFilter{Search: "acme"})
		require.NoError(t, err)
		assert.Len(t, list, 1)
		assert.Equal(t, int64(1), total)
		repo.AssertExpectations(t)
	})

	t.Run("requests only active customers", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		onlyActive := mock.MatchedBy(func(f shared.Filter) bool {
			active, ok := f.Filters["is_active"].(bool)
			return ok && active
		})
		repo.On("FindAllForTenant", ctx, tenantID, onlyActive).Return([]partner.Customer{}, nil)
		repo.On("CountForTenant", ctx, tenantID, onlyActive).Return(int64(0), nil)

		_, _, err := service.List(ctx, tenantID, PartnerListFilter{})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestCustomerServiceUpdate(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("updates only provided fields", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		customer, err := partner.NewCustomer(tenantID, "Acme Traders")
		require.NoError(t, err)
		require.NoError(t, customer.SetContact("contact@acme.example", "12345"))

		repo.On("FindByIDForTenant", ctx, tenantID, customer.ID).Return(customer, nil)
		repo.On("Save", ctx, customer).Return(nil)

		newName := "Acme Traders Pvt Ltd"
		resp, err := service.Update(ctx, tenantID, customer.ID, UpdateCustomerRequest{Name: &newName})
		require.NoError(t, err)

		assert.Equal(t, newName, resp.Name)
		assert.Equal(t, "contact@acme.example", resp.Email)
	})
}

func TestCustomerServiceDelete(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("deactivates instead of removing the row", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		customer, err := partner.NewCustomer(tenantID, "Acme Traders")
		require.NoError(t, err)

		repo.On("FindByIDForTenant", ctx, tenantID, customer.ID).Return(customer, nil)
		repo.On("Save", ctx, customer).Return(nil)

		require.NoError(t, service.Delete(ctx, tenantID, customer.ID))
		assert.False(t, customer.IsActive)
		repo.AssertNotCalled(t, "DeleteForTenant")
	})
}
