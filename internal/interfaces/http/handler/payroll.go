package handler

import (
	hrapp "github.com/bizledger/backend/internal/application/hr"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PayrollHandler handles payroll endpoints
type PayrollHandler struct {
	BaseHandler
	payrollService *hrapp.PayrollService
}

// NewPayrollHandler creates a new PayrollHandler
func NewPayrollHandler(payrollService *hrapp.PayrollService) *PayrollHandler {
	return &PayrollHandler{
		payrollService: payrollService,
	}
}

// Create godoc
// @Summary      Create a payroll entry for an employee
// @Tags         payrolls
// @Accept       json
// @Produce      json
// @Param        request body hrapp.CreatePayrollRequest true "Payroll creation request"
// @Success      201 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Security     BearerAuth
// @Router       /payrolls [post]
func (h *PayrollHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req hrapp.CreatePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	payroll, err := h.payrollService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, payroll)
}

// GetByID godoc
// @Summary      Get payroll entry by ID
// @Tags         payrolls
// @Produce      json
// @Param        id path string true "Payroll ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /payrolls/{id} [get]
func (h *PayrollHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	payrollID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payroll ID format")
		return
	}

	payroll, err := h.payrollService.GetByID(c.Request.Context(), tenantID, payrollID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, payroll)
}

// List godoc
// @Summary      List payroll entries
// @Tags         payrolls
// @Produce      json
// @Param        employee_id query string false "Filter by employee" format(uuid)
// @Param        month query int false "Filter by month (1-12)"
// @Param        year query int false "Filter by year"
// @Param        status query string false "Payroll status" Enums(PENDING, PROCESSED, PAID, CANCELLED)
// @Param        skip query int false "Rows to skip" default(0)
// @Param        take query int false "Rows to return" default(20) maximum(500)
// @Success      200 {object} dto.Response
// @Security     BearerAuth
// @Router       /payrolls [get]
func (h *PayrollHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter hrapp.PayrollListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	payrolls, total, err := h.payrollService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, payrolls, total, filter.Skip, filter.Take)
}

// Update godoc
// @Summary      Update a pending payroll entry
// @Tags         payrolls
// @Accept       json
// @Produce      json
// @Param        id path string true "Payroll ID" format(uuid)
// @Param        request body hrapp.UpdatePayrollRequest true "Payroll update request"
// @Success      200 {object} dto.Response
// @Failure      422 {object} dto.Response
// @Security     BearerAuth
// @Router       /payrolls/{id} [put]
func (h *PayrollHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	payrollID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payroll ID format")
		return
	}

	var req hrapp.UpdatePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	payroll, err := h.payrollService.Update(c.Request.Context(), tenantID, payrollID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, payroll)
}

// Process godoc
// @Summary      Move a pending payroll entry to processed
// @Tags         payrolls
// @Produce      json
// @Param        id path string true "Payroll ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      422 {object} dto.Response
// @Security     BearerAuth
// @Router       /payrolls/{id}/process [post]
func (h *PayrollHandler) Process(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	payrollID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payroll ID format")
		return
	}

	payroll, err := h.payrollService.Process(c.Request.Context(), tenantID, payrollID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, payroll)
}

// Pay godoc
// @Summary      Mark a processed payroll entry as paid
// @Tags         payrolls
// @Produce      json
// @Param        id path string true "Payroll ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      422 {object} dto.Response
// @Security     BearerAuth
// @Router       /payrolls/{id}/pay [post]
func (h *PayrollHandler) Pay(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	payrollID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payroll ID format")
		return
	}

	payroll, err := h.payrollService.Pay(c.Request.Context(), tenantID, payrollID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, payroll)
}

// Delete godoc
// @Summary      Delete a payroll entry
// @Tags         payrolls
// @Produce      json
// @Param        id path string true "Payroll ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /payrolls/{id} [delete]
func (h *PayrollHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	payrollID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payroll ID format")
		return
	}

	if err := h.payrollService.Delete(c.Request.Context(), tenantID, payrollID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
