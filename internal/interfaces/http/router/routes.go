package router

import (
	"github.com/bizledger/backend/internal/domain/identity"
	"github.com/bizledger/backend/internal/interfaces/http/handler"
	"github.com/bizledger/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// API bundles all handlers and registers their routes
type API struct {
	Auth          *handler.AuthHandler
	User          *handler.UserHandler
	Company       *handler.CompanyHandler
	Customer      *handler.CustomerHandler
	Supplier      *handler.SupplierHandler
	Product       *handler.ProductHandler
	Inventory     *handler.InventoryHandler
	Invoice       *handler.InvoiceHandler
	PurchaseOrder *handler.PurchaseOrderHandler
	Employee      *handler.EmployeeHandler
	Payroll       *handler.PayrollHandler
	Finance       *handler.FinanceHandler
	Report        *handler.ReportHandler
	System        *handler.SystemHandler
}

var _ RouteRegistrar = (*API)(nil)

// RegisterRoutes implements RouteRegistrar
func (a *API) RegisterRoutes(rg *gin.RouterGroup) {
	adminOnly := middleware.RequireRoles(string(identity.RoleAdmin), string(identity.RoleSuperAdmin))
	hrRoles := middleware.RequireRoles(string(identity.RoleAdmin), string(identity.RoleSuperAdmin), string(identity.RoleHR))
	financeRoles := middleware.RequireRoles(string(identity.RoleAdmin), string(identity.RoleSuperAdmin), string(identity.RoleAccountant))

	auth := rg.Group("/auth")
	{
		auth.POST("/login", a.Auth.Login)
		auth.POST("/register", a.Auth.Register)
		auth.GET("/me", a.Auth.Me)
		auth.POST("/change-password", a.Auth.ChangePassword)
	}

	users := rg.Group("/users", adminOnly)
	{
		users.POST("", a.User.Create)
		users.GET("", a.User.List)
		users.GET("/:id", a.User.GetByID)
		users.PUT("/:id", a.User.Update)
		users.DELETE("/:id", a.User.Delete)
	}

	company := rg.Group("/company")
	{
		company.GET("", a.Company.Get)
		company.PUT("", adminOnly, a.Company.Update)
	}

	customers := rg.Group("/customers")
	{
		customers.POST("", a.Customer.Create)
		customers.GET("", a.Customer.List)
		customers.GET("/:id", a.Customer.GetByID)
		customers.PUT("/:id", a.Customer.Update)
		customers.DELETE("/:id", a.Customer.Delete)
	}

	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", a.Supplier.Create)
		suppliers.GET("", a.Supplier.List)
		suppliers.GET("/:id", a.Supplier.GetByID)
		suppliers.PUT("/:id", a.Supplier.Update)
		suppliers.DELETE("/:id", a.Supplier.Delete)
	}

	products := rg.Group("/products")
	{
		products.POST("", a.Product.Create)
		products.GET("", a.Product.List)
		products.GET("/:id", a.Product.GetByID)
		products.PUT("/:id", a.Product.Update)
		products.DELETE("/:id", a.Product.Delete)
	}

	warehouses := rg.Group("/warehouses")
	{
		warehouses.POST("", a.Inventory.CreateWarehouse)
		warehouses.GET("", a.Inventory.ListWarehouses)
		warehouses.GET("/:id", a.Inventory.GetWarehouse)
		warehouses.PUT("/:id", a.Inventory.UpdateWarehouse)
		warehouses.DELETE("/:id", a.Inventory.DeleteWarehouse)
	}

	stock := rg.Group("/stock")
	{
		stock.POST("", a.Inventory.CreateStock)
		stock.GET("", a.Inventory.ListStock)
		stock.PUT("/:id", a.Inventory.UpdateStock)
	}

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", a.Invoice.Create)
		invoices.GET("", a.Invoice.List)
		invoices.GET("/:id", a.Invoice.GetByID)
		invoices.POST("/:id/mark-paid", a.Invoice.MarkPaid)
		invoices.DELETE("/:id", a.Invoice.Delete)
	}

	purchaseOrders := rg.Group("/purchase-orders")
	{
		purchaseOrders.POST("", a.PurchaseOrder.Create)
		purchaseOrders.GET("", a.PurchaseOrder.List)
		purchaseOrders.GET("/:id", a.PurchaseOrder.GetByID)
		purchaseOrders.POST("/:id/confirm", a.PurchaseOrder.Confirm)
		purchaseOrders.POST("/:id/receive", a.PurchaseOrder.Receive)
		purchaseOrders.DELETE("/:id", a.PurchaseOrder.Delete)
	}

	employees := rg.Group("/employees", hrRoles)
	{
		employees.POST("", a.Employee.Create)
		employees.GET("", a.Employee.List)
		employees.GET("/:id", a.Employee.GetByID)
		employees.PUT("/:id", a.Employee.Update)
		employees.DELETE("/:id", a.Employee.Delete)
	}

	payrolls := rg.Group("/payrolls", hrRoles)
	{
		payrolls.POST("", a.Payroll.Create)
		payrolls.GET("", a.Payroll.List)
		payrolls.GET("/:id", a.Payroll.GetByID)
		payrolls.PUT("/:id", a.Payroll.Update)
		payrolls.POST("/:id/process", a.Payroll.Process)
		payrolls.POST("/:id/pay", a.Payroll.Pay)
		payrolls.DELETE("/:id", a.Payroll.Delete)
	}

	accounts := rg.Group("/accounts", financeRoles)
	{
		accounts.POST("", a.Finance.CreateAccount)
		accounts.GET("", a.Finance.ListAccounts)
		accounts.GET("/:id", a.Finance.GetAccount)
		accounts.PUT("/:id", a.Finance.UpdateAccount)
		accounts.DELETE("/:id", a.Finance.DeleteAccount)
	}

	transactions := rg.Group("/transactions", financeRoles)
	{
		transactions.POST("", a.Finance.CreateTransaction)
		transactions.GET("", a.Finance.ListTransactions)
		transactions.GET("/:id", a.Finance.GetTransaction)
		transactions.PUT("/:id", a.Finance.UpdateTransaction)
		transactions.POST("/:id/approve", a.Finance.ApproveTransaction)
		transactions.DELETE("/:id", a.Finance.DeleteTransaction)
	}

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/overview", a.Report.Overview)
	}

	reports := rg.Group("/reports")
	{
		reports.GET("/sales", a.Report.Sales)
		reports.GET("/inventory", a.Report.Inventory)
		reports.GET("/financial", a.Report.Financial)
	}

	system := rg.Group("/system")
	{
		system.GET("/info", a.System.GetSystemInfo)
	}
}
