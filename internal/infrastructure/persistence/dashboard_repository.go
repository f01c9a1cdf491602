package persistence

import (
	"context"
	"database/sql"
	"time"

	"github.com/bizledger/backend/internal/domain/billing"
	"github.com/bizledger/backend/internal/domain/procurement"
	"github.com/bizledger/backend/internal/domain/report"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormDashboardRepository implements DashboardRepository with read-only
// aggregate queries spanning several bounded contexts
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewGormDashboardRepository creates a new GormDashboardRepository
func NewGormDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

// CountEntities counts the tenant's records per entity. Master data
// tables count active rows only; documents are counted regardless of
// status.
func (r *GormDashboardRepository) CountEntities(ctx context.Context, tenantID uuid.UUID) (*report.EntityCounts, error) {
	counts := &report.EntityCounts{}

	tables := []struct {
		name       string
		target     *int64
		activeOnly bool
	}{
		{"customers", &counts.Customers, true},
		{"suppliers", &counts.Suppliers, true},
		{"products", &counts.Products, true},
		{"employees", &counts.Employees, true},
		{"invoices", &counts.Invoices, false},
		{"purchase_orders", &counts.PurchaseOrders, false},
	}

	for _, t := range tables {
		query := r.db.WithContext(ctx).
			Table(t.name).
			Where("tenant_id = ?", tenantID)
		if t.activeOnly {
			query = query.Where("is_active = ?", true)
		}
		if err := query.Count(t.target).Error; err != nil {
			return nil, err
		}
	}

	return counts, nil
}

// PaidInvoiceTotal sums PAID invoice totals dated inside the range
func (r *GormDashboardRepository) PaidInvoiceTotal(ctx context.Context, tenantID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	return r.sumColumn(ctx,
		r.db.WithContext(ctx).Table("invoices").
			Select("SUM(total)").
			Where("tenant_id = ? AND status = ? AND invoice_date >= ? AND invoice_date < ?",
				tenantID, billing.InvoiceStatusPaid, from, to))
}

// ReceivedPurchaseTotal sums RECEIVED purchase order totals dated inside the range
func (r *GormDashboardRepository) ReceivedPurchaseTotal(ctx context.Context, tenantID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	return r.sumColumn(ctx,
		r.db.WithContext(ctx).Table("purchase_orders").
			Select("SUM(total)").
			Where("tenant_id = ? AND status = ? AND order_date >= ? AND order_date < ?",
				tenantID, procurement.PurchaseOrderStatusReceived, from, to))
}

// LowStockItems lists stock rows whose available quantity fell to or
// below the threshold. A non-positive limit returns all rows.
func (r *GormDashboardRepository) LowStockItems(ctx context.Context, tenantID uuid.UUID, threshold, limit int) ([]report.LowStockItem, error) {
	var items []report.LowStockItem
	query := r.db.WithContext(ctx).
		Table("stocks").
		Select("stocks.product_id, products.name AS product_name, products.sku, stocks.warehouse_id, stocks.available, products.min_stock").
		Joins("JOIN products ON products.id = stocks.product_id").
		Where("stocks.tenant_id = ? AND stocks.available <= ?", tenantID, threshold).
		Order("stocks.available ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// RecentTransactions lists the most recently recorded ledger
// transactions. Ordered by creation time, not transaction date, so
// backdated entries still surface at the top of the feed.
func (r *GormDashboardRepository) RecentTransactions(ctx context.Context, tenantID uuid.UUID, limit int) ([]report.RecentTransaction, error) {
	var rows []report.RecentTransaction
	if err := r.db.WithContext(ctx).
		Table("transactions").
		Select("id AS transaction_id, date, description, amount, type, status").
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// UpcomingDueInvoices lists unpaid invoices ordered by nearest due date
func (r *GormDashboardRepository) UpcomingDueInvoices(ctx context.Context, tenantID uuid.UUID, limit int) ([]report.DueInvoice, error) {
	var rows []report.DueInvoice
	if err := r.db.WithContext(ctx).
		Table("invoices").
		Select("invoices.id AS invoice_id, invoices.invoice_number, invoices.customer_id, customers.name AS customer_name, invoices.due_date, invoices.total, invoices.status").
		Joins("JOIN customers ON customers.id = invoices.customer_id").
		Where("invoices.tenant_id = ? AND invoices.status IN ?",
			tenantID, []string{string(billing.InvoiceStatusSent), string(billing.InvoiceStatusOverdue)}).
		Order("invoices.due_date ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// PaidInvoices lists settled invoices dated inside the range
func (r *GormDashboardRepository) PaidInvoices(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]report.PaidInvoice, error) {
	var rows []report.PaidInvoice
	if err := r.db.WithContext(ctx).
		Table("invoices").
		Select("invoices.id AS invoice_id, invoices.invoice_number, invoices.customer_id, customers.name AS customer_name, invoices.invoice_date, invoices.total").
		Joins("JOIN customers ON customers.id = invoices.customer_id").
		Where("invoices.tenant_id = ? AND invoices.status = ? AND invoices.invoice_date >= ? AND invoices.invoice_date < ?",
			tenantID, billing.InvoiceStatusPaid, from, to).
		Order("invoices.invoice_date DESC, invoices.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// TopCustomersBySales ranks customers by paid invoice totals in the
// range. Ties break on customer id so the ordering stays stable.
func (r *GormDashboardRepository) TopCustomersBySales(ctx context.Context, tenantID uuid.UUID, from, to time.Time, limit int) ([]report.CustomerSales, error) {
	var rows []report.CustomerSales
	if err := r.db.WithContext(ctx).
		Table("invoices").
		Select("invoices.customer_id, customers.name AS customer_name, COUNT(invoices.id) AS invoice_count, SUM(invoices.total) AS total").
		Joins("JOIN customers ON customers.id = invoices.customer_id").
		Where("invoices.tenant_id = ? AND invoices.status = ? AND invoices.invoice_date >= ? AND invoices.invoice_date < ?",
			tenantID, billing.InvoiceStatusPaid, from, to).
		Group("invoices.customer_id, customers.name").
		Order("total DESC, invoices.customer_id ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// WarehouseStockSummaries sums stock quantities per warehouse
func (r *GormDashboardRepository) WarehouseStockSummaries(ctx context.Context, tenantID uuid.UUID) ([]report.WarehouseStockSummary, error) {
	var rows []report.WarehouseStockSummary
	if err := r.db.WithContext(ctx).
		Table("warehouses").
		Select("warehouses.id AS warehouse_id, warehouses.name AS warehouse_name, COALESCE(SUM(stocks.quantity), 0) AS total_quantity, COALESCE(SUM(stocks.reserved), 0) AS total_reserved").
		Joins("LEFT JOIN stocks ON stocks.warehouse_id = warehouses.id").
		Where("warehouses.tenant_id = ?", tenantID).
		Group("warehouses.id, warehouses.name").
		Order("warehouses.name ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// TopSellingProducts ranks products by quantity sold over paid invoices
func (r *GormDashboardRepository) TopSellingProducts(ctx context.Context, tenantID uuid.UUID, limit int) ([]report.TopProduct, error) {
	var rows []report.TopProduct
	if err := r.db.WithContext(ctx).
		Table("invoice_items").
		Select("invoice_items.product_id, products.name AS product_name, products.sku, SUM(invoice_items.quantity) AS quantity_sold").
		Joins("JOIN invoices ON invoices.id = invoice_items.invoice_id").
		Joins("JOIN products ON products.id = invoice_items.product_id").
		Where("invoices.tenant_id = ? AND invoices.status = ?", tenantID, billing.InvoiceStatusPaid).
		Group("invoice_items.product_id, products.name, products.sku").
		Order("quantity_sold DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// MonthlySeries builds the per-month revenue and expense totals for one
// year. Months without activity appear with zero totals.
func (r *GormDashboardRepository) MonthlySeries(ctx context.Context, tenantID uuid.UUID, year int) ([]report.MonthlyTotal, error) {
	type monthlyRow struct {
		Month int
		Total decimal.Decimal
	}

	series := make([]report.MonthlyTotal, 12)
	for i := range series {
		series[i] = report.MonthlyTotal{Month: i + 1, Revenue: decimal.Zero, Expenses: decimal.Zero}
	}

	var revenue []monthlyRow
	if err := r.db.WithContext(ctx).
		Table("invoices").
		Select("EXTRACT(MONTH FROM invoice_date)::int AS month, SUM(total) AS total").
		Where("tenant_id = ? AND status = ? AND EXTRACT(YEAR FROM invoice_date) = ?",
			tenantID, billing.InvoiceStatusPaid, year).
		Group("month").
		Scan(&revenue).Error; err != nil {
		return nil, err
	}
	for _, row := range revenue {
		if row.Month >= 1 && row.Month <= 12 {
			series[row.Month-1].Revenue = row.Total
		}
	}

	var expenses []monthlyRow
	if err := r.db.WithContext(ctx).
		Table("purchase_orders").
		Select("EXTRACT(MONTH FROM order_date)::int AS month, SUM(total) AS total").
		Where("tenant_id = ? AND status = ? AND EXTRACT(YEAR FROM order_date) = ?",
			tenantID, procurement.PurchaseOrderStatusReceived, year).
		Group("month").
		Scan(&expenses).Error; err != nil {
		return nil, err
	}
	for _, row := range expenses {
		if row.Month >= 1 && row.Month <= 12 {
			series[row.Month-1].Expenses = row.Total
		}
	}

	return series, nil
}

// AccountBalances returns the debit-minus-credit balance per account
func (r *GormDashboardRepository) AccountBalances(ctx context.Context, tenantID uuid.UUID) ([]report.AccountBalance, error) {
	var rows []report.AccountBalance
	if err := r.db.WithContext(ctx).
		Table("accounts").
		Select("accounts.id AS account_id, accounts.code AS account_code, accounts.name AS account_name, accounts.type AS account_type, COALESCE(SUM(CASE WHEN transactions.type = 'DEBIT' THEN transactions.amount ELSE -transactions.amount END), 0) AS balance").
		Joins("LEFT JOIN transactions ON transactions.account_id = accounts.id").
		Where("accounts.tenant_id = ?", tenantID).
		Group("accounts.id, accounts.code, accounts.name, accounts.type").
		Order("accounts.type ASC, accounts.code ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormDashboardRepository) sumColumn(ctx context.Context, query *gorm.DB) (decimal.Decimal, error) {
	var total sql.NullString
	if err := query.Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(total.String)
}

// Ensure GormDashboardRepository implements DashboardRepository
var _ report.DashboardRepository = (*GormDashboardRepository)(nil)
