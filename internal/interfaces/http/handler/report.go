package handler

import (
	reportapp "github.com/bizledger/backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles dashboard and report endpoints
type ReportHandler struct {
	BaseHandler
	dashboardService *reportapp.DashboardService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(dashboardService *reportapp.DashboardService) *ReportHandler {
	return &ReportHandler{
		dashboardService: dashboardService,
	}
}

// Overview godoc
// @Summary      Get the dashboard overview
// @Tags         reports
// @Produce      json
// @Success      200 {object} dto.Response
// @Security     BearerAuth
// @Router       /dashboard/overview [get]
func (h *ReportHandler) Overview(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	overview, err := h.dashboardService.GetOverview(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, overview)
}

// Sales godoc
// @Summary      Get the sales report for a time window
// @Tags         reports
// @Produce      json
// @Param        window query string false "Report window" Enums(week, month, quarter, year) default(month)
// @Success      200 {object} dto.Response
// @Security     BearerAuth
// @Router       /reports/sales [get]
func (h *ReportHandler) Sales(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter reportapp.SalesReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	report, err := h.dashboardService.GetSalesReport(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, report)
}

// Inventory godoc
// @Summary      Get the inventory report
// @Tags         reports
// @Produce      json
// @Success      200 {object} dto.Response
// @Security     BearerAuth
// @Router       /reports/inventory [get]
func (h *ReportHandler) Inventory(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	report, err := h.dashboardService.GetInventoryReport(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, report)
}

// Financial godoc
// @Summary      Get the financial report for the current year
// @Tags         reports
// @Produce      json
// @Success      200 {object} dto.Response
// @Security     BearerAuth
// @Router       /reports/financial [get]
func (h *ReportHandler) Financial(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	report, err := h.dashboardService.GetFinancialReport(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, report)
}
