package report

import (
	"context"
	"time"

	"github.com/bizledger/backend/internal/domain/report"
	"github.com/google/uuid"
)

const (
	lowStockThreshold = 10

	overviewLowStockLimit    = 5
	overviewTransactionLimit = 10
	overviewDueInvoiceLimit  = 5

	topCustomerLimit = 5
	topProductLimit  = 10
)

// DashboardService serves the aggregated dashboard and report endpoints
type DashboardService struct {
	dashboardRepo report.DashboardRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(dashboardRepo report.DashboardRepository) *DashboardService {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
	}
}

// GetOverview assembles the landing dashboard. Revenue and expenses
// cover the current calendar month.
func (s *DashboardService) GetOverview(ctx context.Context, tenantID uuid.UUID) (*OverviewResponse, error) {
	counts, err := s.dashboardRepo.CountEntities(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	from, to := calendarMonth(time.Now())

	revenue, err := s.dashboardRepo.PaidInvoiceTotal(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}

	expenses, err := s.dashboardRepo.ReceivedPurchaseTotal(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.dashboardRepo.LowStockItems(ctx, tenantID, lowStockThreshold, overviewLowStockLimit)
	if err != nil {
		return nil, err
	}

	transactions, err := s.dashboardRepo.RecentTransactions(ctx, tenantID, overviewTransactionLimit)
	if err != nil {
		return nil, err
	}

	dueInvoices, err := s.dashboardRepo.UpcomingDueInvoices(ctx, tenantID, overviewDueInvoiceLimit)
	if err != nil {
		return nil, err
	}

	return &OverviewResponse{
		Counts: EntityCountsResponse{
			Customers:      counts.Customers,
			Suppliers:      counts.Suppliers,
			Products:       counts.Products,
			Employees:      counts.Employees,
			Invoices:       counts.Invoices,
			PurchaseOrders: counts.PurchaseOrders,
		},
		MonthlyRevenue:     revenue,
		MonthlyExpenses:    expenses,
		LowStockItems:      toLowStockItemResponses(lowStock),
		RecentTransactions: toRecentTransactionResponses(transactions),
		UpcomingInvoices:   toDueInvoiceResponses(dueInvoices),
	}, nil
}

// GetSalesReport assembles paid sales totals over the requested window
func (s *DashboardService) GetSalesReport(ctx context.Context, tenantID uuid.UUID, filter SalesReportFilter) (*SalesReportResponse, error) {
	window := filter.Window
	if window == "" {
		window = "month"
	}

	to := time.Now()
	from := windowStart(to, window)

	total, err := s.dashboardRepo.PaidInvoiceTotal(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}

	invoices, err := s.dashboardRepo.PaidInvoices(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}

	topCustomers, err := s.dashboardRepo.TopCustomersBySales(ctx, tenantID, from, to, topCustomerLimit)
	if err != nil {
		return nil, err
	}

	return &SalesReportResponse{
		Window:       window,
		From:         from,
		To:           to,
		TotalSales:   total,
		Invoices:     toPaidInvoiceResponses(invoices),
		TopCustomers: toCustomerSalesResponses(topCustomers),
	}, nil
}

// GetInventoryReport assembles per-warehouse stock levels and alerts
func (s *DashboardService) GetInventoryReport(ctx context.Context, tenantID uuid.UUID) (*InventoryReportResponse, error) {
	warehouses, err := s.dashboardRepo.WarehouseStockSummaries(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.dashboardRepo.LowStockItems(ctx, tenantID, lowStockThreshold, 0)
	if err != nil {
		return nil, err
	}

	topProducts, err := s.dashboardRepo.TopSellingProducts(ctx, tenantID, topProductLimit)
	if err != nil {
		return nil, err
	}

	return &InventoryReportResponse{
		Warehouses:    toWarehouseStockSummaryResponses(warehouses),
		LowStockItems: toLowStockItemResponses(lowStock),
		TopProducts:   toTopProductResponses(topProducts),
	}, nil
}

// GetFinancialReport assembles the year-to-date monthly series and the
// debit-minus-credit balance of every ledger account
func (s *DashboardService) GetFinancialReport(ctx context.Context, tenantID uuid.UUID) (*FinancialReportResponse, error) {
	year := time.Now().Year()

	monthly, err := s.dashboardRepo.MonthlySeries(ctx, tenantID, year)
	if err != nil {
		return nil, err
	}

	balances, err := s.dashboardRepo.AccountBalances(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return &FinancialReportResponse{
		Year:            year,
		Monthly:         toMonthlyTotalResponses(monthly),
		AccountBalances: toAccountBalanceResponses(balances),
	}, nil
}

// calendarMonth returns the first instant of now's month and the first
// instant of the next month.
func calendarMonth(now time.Time) (time.Time, time.Time) {
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return from, from.AddDate(0, 1, 0)
}

// windowStart anchors month, quarter and year windows to the calendar
// period containing to. Only the week window is rolling.
func windowStart(to time.Time, window string) time.Time {
	switch window {
	case "week":
		return to.AddDate(0, 0, -7)
	case "quarter":
		quarterMonth := time.Month(((int(to.Month())-1)/3)*3 + 1)
		return time.Date(to.Year(), quarterMonth, 1, 0, 0, 0, 0, to.Location())
	case "year":
		return time.Date(to.Year(), time.January, 1, 0, 0, 0, 0, to.Location())
	default:
		return time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, to.Location())
	}
}
