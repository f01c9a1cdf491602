package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntityCounts holds the per-tenant record counts shown on the
// dashboard. Master data counts cover active rows only; document
// counts cover every row.
type EntityCounts struct {
	Customers      int64
	Suppliers      int64
	Products       int64
	Employees      int64
	Invoices       int64
	PurchaseOrders int64
}

// LowStockItem is a product whose available stock fell to or below the
// low stock threshold
type LowStockItem struct {
	ProductID   uuid.UUID
	ProductName string
	SKU         string
	WarehouseID uuid.UUID
	Available   int
	MinStock    int
}

// RecentTransaction is a ledger transaction row for the dashboard feed
type RecentTransaction struct {
	TransactionID uuid.UUID
	Date          time.Time
	Description   string
	Amount        decimal.Decimal
	Type          string
	Status        string
}

// DueInvoice is an unpaid invoice ordered by due date
type DueInvoice struct {
	InvoiceID     uuid.UUID
	InvoiceNumber string
	CustomerID    uuid.UUID
	CustomerName  string
	DueDate       time.Time
	Total         decimal.Decimal
	Status        string
}

// PaidInvoice is one settled invoice inside a sales report window
type PaidInvoice struct {
	InvoiceID     uuid.UUID
	InvoiceNumber string
	CustomerID    uuid.UUID
	CustomerName  string
	InvoiceDate   time.Time
	Total         decimal.Decimal
}

// CustomerSales aggregates paid invoice totals per customer
type CustomerSales struct {
	CustomerID   uuid.UUID
	CustomerName string
	InvoiceCount int64
	Total        decimal.Decimal
}

// WarehouseStockSummary aggregates stock quantities per warehouse
type WarehouseStockSummary struct {
	WarehouseID   uuid.UUID
	WarehouseName string
	TotalQuantity int64
	TotalReserved int64
}

// TopProduct aggregates quantities sold over paid invoices
type TopProduct struct {
	ProductID    uuid.UUID
	ProductName  string
	SKU          string
	QuantitySold int64
}

// MonthlyTotal is one month of the year-to-date revenue and expense series
type MonthlyTotal struct {
	Month    int
	Revenue  decimal.Decimal
	Expenses decimal.Decimal
}

// AccountBalance is the debit-minus-credit balance of one ledger account
type AccountBalance struct {
	AccountID   uuid.UUID
	AccountCode string
	AccountName string
	AccountType string
	Balance     decimal.Decimal
}

// DashboardRepository exposes the aggregate read queries behind the
// dashboard endpoints. Implementations query across bounded contexts
// and never mutate state.
type DashboardRepository interface {
	CountEntities(ctx context.Context, tenantID uuid.UUID) (*EntityCounts, error)

	// PaidInvoiceTotal sums PAID invoice totals dated inside the range.
	PaidInvoiceTotal(ctx context.Context, tenantID uuid.UUID, from, to time.Time) (decimal.Decimal, error)
	// ReceivedPurchaseTotal sums RECEIVED purchase order totals dated inside the range.
	ReceivedPurchaseTotal(ctx context.Context, tenantID uuid.UUID, from, to time.Time) (decimal.Decimal, error)

	LowStockItems(ctx context.Context, tenantID uuid.UUID, threshold, limit int) ([]LowStockItem, error)
	RecentTransactions(ctx context.Context, tenantID uuid.UUID, limit int) ([]RecentTransaction, error)
	UpcomingDueInvoices(ctx context.Context, tenantID uuid.UUID, limit int) ([]DueInvoice, error)

	// PaidInvoices lists PAID invoices dated inside the range, newest first.
	PaidInvoices(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]PaidInvoice, error)
	TopCustomersBySales(ctx context.Context, tenantID uuid.UUID, from, to time.Time, limit int) ([]CustomerSales, error)
	WarehouseStockSummaries(ctx context.Context, tenantID uuid.UUID) ([]WarehouseStockSummary, error)
	TopSellingProducts(ctx context.Context, tenantID uuid.UUID, limit int) ([]TopProduct, error)

	MonthlySeries(ctx context.Context, tenantID uuid.UUID, year int) ([]MonthlyTotal, error)
	AccountBalances(ctx context.Context, tenantID uuid.UUID) ([]AccountBalance, error)
}
