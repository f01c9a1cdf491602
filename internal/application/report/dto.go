package report

import (
	"time"

	"github.com/bizledger/backend/internal/domain/report"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Overview DTOs
// =============================================================================

// OverviewResponse is the landing dashboard payload
type OverviewResponse struct {
	Counts             EntityCountsResponse        `json:"counts"`
	MonthlyRevenue     decimal.Decimal             `json:"monthly_revenue"`
	MonthlyExpenses    decimal.Decimal             `json:"monthly_expenses"`
	LowStockItems      []LowStockItemResponse      `json:"low_stock_items"`
	RecentTransactions []RecentTransactionResponse `json:"recent_transactions"`
	UpcomingInvoices   []DueInvoiceResponse        `json:"upcoming_invoices"`
}

// EntityCountsResponse holds the per-tenant record counts
type EntityCountsResponse struct {
	Customers      int64 `json:"customers"`
	Suppliers      int64 `json:"suppliers"`
	Products       int64 `json:"products"`
	Employees      int64 `json:"employees"`
	Invoices       int64 `json:"invoices"`
	PurchaseOrders int64 `json:"purchase_orders"`
}

// LowStockItemResponse is a low stock alert row
type LowStockItemResponse struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	SKU         string    `json:"sku"`
	WarehouseID uuid.UUID `json:"warehouse_id"`
	Available   int       `json:"available"`
	MinStock    int       `json:"min_stock"`
}

// RecentTransactionResponse is a dashboard transaction feed row
type RecentTransactionResponse struct {
	TransactionID uuid.UUID       `json:"transaction_id"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Status        string          `json:"status"`
}

// DueInvoiceResponse is an unpaid invoice approaching its due date
type DueInvoiceResponse struct {
	InvoiceID     uuid.UUID       `json:"invoice_id"`
	InvoiceNumber string          `json:"invoice_number"`
	CustomerID    uuid.UUID       `json:"customer_id"`
	CustomerName  string          `json:"customer_name"`
	DueDate       time.Time       `json:"due_date"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
}

// =============================================================================
// Sales DTOs
// =============================================================================

// SalesReportFilter selects the sales report window
type SalesReportFilter struct {
	Window string `form:"window" binding:"omitempty,oneof=week month quarter year"`
}

// SalesReportResponse is the sales dashboard payload
type SalesReportResponse struct {
	Window       string                  `json:"window"`
	From         time.Time               `json:"from"`
	To           time.Time               `json:"to"`
	TotalSales   decimal.Decimal         `json:"total_sales"`
	Invoices     []PaidInvoiceResponse   `json:"invoices"`
	TopCustomers []CustomerSalesResponse `json:"top_customers"`
}

// PaidInvoiceResponse is one settled invoice in the sales report window
type PaidInvoiceResponse struct {
	InvoiceID     uuid.UUID       `json:"invoice_id"`
	InvoiceNumber string          `json:"invoice_number"`
	CustomerID    uuid.UUID       `json:"customer_id"`
	CustomerName  string          `json:"customer_name"`
	InvoiceDate   time.Time       `json:"invoice_date"`
	Total         decimal.Decimal `json:"total"`
}

// CustomerSalesResponse aggregates paid invoice totals per customer
type CustomerSalesResponse struct {
	CustomerID   uuid.UUID       `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	InvoiceCount int64           `json:"invoice_count"`
	Total        decimal.Decimal `json:"total"`
}

// =============================================================================
// Inventory DTOs
// =============================================================================

// InventoryReportResponse is the inventory dashboard payload
type InventoryReportResponse struct {
	Warehouses    []WarehouseStockSummaryResponse `json:"warehouses"`
	LowStockItems []LowStockItemResponse          `json:"low_stock_items"`
	TopProducts   []TopProductResponse            `json:"top_products"`
}

// WarehouseStockSummaryResponse aggregates stock per warehouse
type WarehouseStockSummaryResponse struct {
	WarehouseID   uuid.UUID `json:"warehouse_id"`
	WarehouseName string    `json:"warehouse_name"`
	TotalQuantity int64     `json:"total_quantity"`
	TotalReserved int64     `json:"total_reserved"`
}

// TopProductResponse is a best selling product row
type TopProductResponse struct {
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	SKU          string    `json:"sku"`
	QuantitySold int64     `json:"quantity_sold"`
}

// =============================================================================
// Financial DTOs
// =============================================================================

// FinancialReportResponse is the financial dashboard payload
type FinancialReportResponse struct {
	Year            int                      `json:"year"`
	Monthly         []MonthlyTotalResponse   `json:"monthly"`
	AccountBalances []AccountBalanceResponse `json:"account_balances"`
}

// MonthlyTotalResponse is one month of the year-to-date series
type MonthlyTotalResponse struct {
	Month    int             `json:"month"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
}

// AccountBalanceResponse is the balance of one ledger account
type AccountBalanceResponse struct {
	AccountID   uuid.UUID       `json:"account_id"`
	AccountCode string          `json:"account_code"`
	AccountName string          `json:"account_name"`
	AccountType string          `json:"account_type"`
	Balance     decimal.Decimal `json:"balance"`
}

// =============================================================================
// Converters
// =============================================================================

func toLowStockItemResponses(items []report.LowStockItem) []LowStockItemResponse {
	responses := make([]LowStockItemResponse, len(items))
	for i, item := range items {
		responses[i] = LowStockItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			SKU:         item.SKU,
			WarehouseID: item.WarehouseID,
			Available:   item.Available,
			MinStock:    item.MinStock,
		}
	}
	return responses
}

func toRecentTransactionResponses(rows []report.RecentTransaction) []RecentTransactionResponse {
	responses := make([]RecentTransactionResponse, len(rows))
	for i, row := range rows {
		responses[i] = RecentTransactionResponse{
			TransactionID: row.TransactionID,
			Date:          row.Date,
			Description:   row.Description,
			Amount:        row.Amount,
			Type:          row.Type,
			Status:        row.Status,
		}
	}
	return responses
}

func toDueInvoiceResponses(rows []report.DueInvoice) []DueInvoiceResponse {
	responses := make([]DueInvoiceResponse, len(rows))
	for i, row := range rows {
		responses[i] = DueInvoiceResponse{
			InvoiceID:     row.InvoiceID,
			InvoiceNumber: row.InvoiceNumber,
			CustomerID:    row.CustomerID,
			CustomerName:  row.CustomerName,
			DueDate:       row.DueDate,
			Total:         row.Total,
			Status:        row.Status,
		}
	}
	return responses
}

func toPaidInvoiceResponses(rows []report.PaidInvoice) []PaidInvoiceResponse {
	responses := make([]PaidInvoiceResponse, len(rows))
	for i, row := range rows {
		responses[i] = PaidInvoiceResponse{
			InvoiceID:     row.InvoiceID,
			InvoiceNumber: row.InvoiceNumber,
			CustomerID:    row.CustomerID,
			CustomerName:  row.CustomerName,
			InvoiceDate:   row.InvoiceDate,
			Total:         row.Total,
		}
	}
	return responses
}

func toCustomerSalesResponses(rows []report.CustomerSales) []CustomerSalesResponse {
	responses := make([]CustomerSalesResponse, len(rows))
	for i, row := range rows {
		responses[i] = CustomerSalesResponse{
			CustomerID:   row.CustomerID,
			CustomerName: row.CustomerName,
			InvoiceCount: row.InvoiceCount,
			Total:        row.Total,
		}
	}
	return responses
}

func toWarehouseStockSummaryResponses(rows []report.WarehouseStockSummary) []WarehouseStockSummaryResponse {
	responses := make([]WarehouseStockSummaryResponse, len(rows))
	for i, row := range rows {
		responses[i] = WarehouseStockSummaryResponse{
			WarehouseID:   row.WarehouseID,
			WarehouseName: row.WarehouseName,
			TotalQuantity: row.TotalQuantity,
			TotalReserved: row.TotalReserved,
		}
	}
	return responses
}

func toTopProductResponses(rows []report.TopProduct) []TopProductResponse {
	responses := make([]TopProductResponse, len(rows))
	for i, row := range rows {
		responses[i] = TopProductResponse{
			ProductID:    row.ProductID,
			ProductName:  row.ProductName,
			SKU:          row.SKU,
			QuantitySold: row.QuantitySold,
		}
	}
	return responses
}

func toMonthlyTotalResponses(rows []report.MonthlyTotal) []MonthlyTotalResponse {
	responses := make([]MonthlyTotalResponse, len(rows))
	for i, row := range rows {
		responses[i] = MonthlyTotalResponse{
			Month:    row.Month,
			Revenue:  row.Revenue,
			Expenses: row.Expenses,
		}
	}
	return responses
}

func toAccountBalanceResponses(rows []report.AccountBalance) []AccountBalanceResponse {
	responses := make([]AccountBalanceResponse, len(rows))
	for i, row := range rows {
		responses[i] = AccountBalanceResponse{
			AccountID:   row.AccountID,
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			AccountType: row.AccountType,
			Balance:     row.Balance,
		}
	}
	return responses
}
