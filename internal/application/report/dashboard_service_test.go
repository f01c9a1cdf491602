package report

import (
	"context"
	"testing"
	"time"

	"github.com/bizledger/backend/internal/domain/report"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDashboardRepository is a mock implementation of report.DashboardRepository
type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) CountEntities(ctx context.Context, tenantID uuid.UUID) (*report.EntityCounts, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.EntityCounts), args.Error(1)
}

func (m *MockDashboardRepository) PaidInvoiceTotal(ctx context.Context, tenantID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, tenantID, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockDashboardRepository) ReceivedPurchaseTotal(ctx context.Context, tenantID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, tenantID, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockDashboardRepository) LowStockItems(ctx context.Context, tenantID uuid.UUID, threshold, limit int) ([]report.LowStockItem, error) {
	args := m.Called(ctx, tenantID, threshold, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.LowStockItem), args.Error(1)
}

func (m *MockDashboardRepository) RecentTransactions(ctx context.Context, tenantID uuid.UUID, limit int) ([]report.RecentTransaction, error) {
	args := m.Called(ctx, tenantID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.RecentTransaction), args.Error(1)
}

func (m *MockDashboardRepository) UpcomingDueInvoices(ctx context.Context, tenantID uuid.UUID, limit int) ([]report.DueInvoice, error) {
	args := m.Called(ctx, tenantID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.DueInvoice), args.Error(1)
}

func (m *MockDashboardRepository) PaidInvoices(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]report.PaidInvoice, error) {
	args := m.Called(ctx, tenantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.PaidInvoice), args.Error(1)
}

func (m *MockDashboardRepository) TopCustomersBySales(ctx context.Context, tenantID uuid.UUID, from, to time.Time, limit int) ([]report.CustomerSales, error) {
	args := m.Called(ctx, tenantID, from, to, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.CustomerSales), args.Error(1)
}

func (m *MockDashboardRepository) WarehouseStockSummaries(ctx context.Context, tenantID uuid.UUID) ([]report.WarehouseStockSummary, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.WarehouseStockSummary), args.Error(1)
}

func (m *MockDashboardRepository) TopSellingProducts(ctx context.Context, tenantID uuid.UUID, limit int) ([]report.TopProduct, error) {
	args := m.Called(ctx, tenantID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.TopProduct), args.Error(1)
}

func (m *MockDashboardRepository) MonthlySeries(ctx context.Context, tenantID uuid.UUID, year int) ([]report.MonthlyTotal, error) {
	args := m.Called(ctx, tenantID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.MonthlyTotal), args.Error(1)
}

func (m *MockDashboardRepository) AccountBalances(ctx context.Context, tenantID uuid.UUID) ([]report.AccountBalance, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.AccountBalance), args.Error(1)
}

func TestDashboardServiceGetOverview(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	repo := new(MockDashboardRepository)
	service := NewDashboardService(repo)

	repo.On("CountEntities", ctx, tenantID).Return(&report.EntityCounts{
		Customers: 12, Suppliers: 4, Products: 30, Employees: 7, Invoices: 55, PurchaseOrders: 21,
	}, nil)
	repo.On("PaidInvoiceTotal", ctx, tenantID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(decimal.NewFromInt(125000), nil)
	repo.On("ReceivedPurchaseTotal", ctx, tenantID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(decimal.NewFromInt(48000), nil)
	repo.On("LowStockItems", ctx, tenantID, 10, 5).Return([]report.LowStockItem{
		{ProductID: uuid.New(), ProductName: "Copper Wire", SKU: "CW-01", Available: 3, MinStock: 10},
	}, nil)
	repo.On("RecentTransactions", ctx, tenantID, 10).Return([]report.RecentTransaction{}, nil)
	repo.On("UpcomingDueInvoices", ctx, tenantID, 5).Return([]report.DueInvoice{}, nil)

	overview, err := service.GetOverview(ctx, tenantID)
	require.NoError(t, err)
	assert.Equal(t, int64(12), overview.Counts.Customers)
	assert.Equal(t, int64(55), overview.Counts.Invoices)
	assert.Equal(t, int64(21), overview.Counts.PurchaseOrders)
	assert.True(t, overview.MonthlyRevenue.Equal(decimal.NewFromInt(125000)))
	assert.True(t, overview.MonthlyExpenses.Equal(decimal.NewFromInt(48000)))
	assert.Len(t, overview.LowStockItems, 1)
	assert.Equal(t, "CW-01", overview.LowStockItems[0].SKU)
	repo.AssertExpectations(t)
}

func TestDashboardServiceGetSalesReport(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("defaults to the month window", func(t *testing.T) {
		repo := new(MockDashboardRepository)
		service := NewDashboardService(repo)

		repo.On("PaidInvoiceTotal", ctx, tenantID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return(decimal.NewFromInt(90000), nil)
		repo.On("PaidInvoices", ctx, tenantID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return([]report.PaidInvoice{
				{InvoiceID: uuid.New(), InvoiceNumber: "INV-0042", CustomerName: "Sharma Stores", Total: decimal.NewFromInt(42000)},
			}, nil)
		repo.On("TopCustomersBySales", ctx, tenantID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), 5).
			Return([]report.CustomerSales{
				{CustomerID: uuid.New(), CustomerName: "Sharma Stores", InvoiceCount: 6, Total: decimal.NewFromInt(42000)},
			}, nil)

		sales, err := service.GetSalesReport(ctx, tenantID, SalesReportFilter{})
		require.NoError(t, err)
		assert.Equal(t, "month", sales.Window)
		assert.True(t, sales.TotalSales.Equal(decimal.NewFromInt(90000)))
		require.Len(t, sales.Invoices, 1)
		assert.Equal(t, "INV-0042", sales.Invoices[0].InvoiceNumber)
		require.Len(t, sales.TopCustomers, 1)
		assert.Equal(t, "Sharma Stores", sales.TopCustomers[0].CustomerName)
	})

	t.Run("week window spans seven days", func(t *testing.T) {
		repo := new(MockDashboardRepository)
		service := NewDashboardService(repo)

		repo.On("PaidInvoiceTotal", ctx, tenantID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return(decimal.Zero, nil)
		repo.On("PaidInvoices", ctx, tenantID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return([]report.PaidInvoice{}, nil)
		repo.On("TopCustomersBySales", ctx, tenantID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), 5).
			Return([]report.CustomerSales{}, nil)

		sales, err := service.GetSalesReport(ctx, tenantID, SalesReportFilter{Window: "week"})
		require.NoError(t, err)
		assert.Equal(t, "week", sales.Window)
		assert.InDelta(t, 7*24, sales.To.Sub(sales.From).Hours(), 1)
	})
}

func TestWindowStart(t *testing.T) {
	to := time.Date(2025, time.August, 19, 15, 30, 0, 0, time.UTC)

	// Only the week window rolls back from now. The rest anchor to the
	// calendar period containing it.
	assert.Equal(t, to.AddDate(0, 0, -7), windowStart(to, "week"))
	assert.Equal(t, time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC), windowStart(to, "month"))
	assert.Equal(t, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), windowStart(to, "quarter"))
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), windowStart(to, "year"))

	january := time.Date(2025, time.February, 10, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), windowStart(january, "quarter"))
}

func TestDashboardServiceGetFinancialReport(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	repo := new(MockDashboardRepository)
	service := NewDashboardService(repo)

	year := time.Now().Year()
	repo.On("MonthlySeries", ctx, tenantID, year).Return([]report.MonthlyTotal{
		{Month: 1, Revenue: decimal.NewFromInt(10000), Expenses: decimal.NewFromInt(4000)},
		{Month: 2, Revenue: decimal.NewFromInt(12000), Expenses: decimal.NewFromInt(3000)},
	}, nil)
	repo.On("AccountBalances", ctx, tenantID).Return([]report.AccountBalance{
		{AccountID: uuid.New(), AccountCode: "1000", AccountName: "Cash", AccountType: "ASSET", Balance: decimal.NewFromInt(25000)},
	}, nil)

	financial, err := service.GetFinancialReport(ctx, tenantID)
	require.NoError(t, err)
	assert.Equal(t, year, financial.Year)
	require.Len(t, financial.Monthly, 2)
	assert.Equal(t, 2, financial.Monthly[1].Month)
	require.Len(t, financial.AccountBalances, 1)
	assert.Equal(t, "1000", financial.AccountBalances[0].AccountCode)
	repo.AssertExpectations(t)
}
