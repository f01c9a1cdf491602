package handler

import (
	financeapp "github.com/bizledger/backend/internal/application/finance"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FinanceHandler handles account and transaction endpoints
type FinanceHandler struct {
	BaseHandler
	accountService     *financeapp.AccountService
	transactionService *financeapp.TransactionService
}

// NewFinanceHandler creates a new FinanceHandler
func NewFinanceHandler(accountService *financeapp.AccountService, transactionService *financeapp.TransactionService) *FinanceHandler {
	return &FinanceHandler{
		accountService:     accountService,
		transactionService: transactionService,
	}
}

// CreateAccount godoc
// @Summary      Create a new ledger account
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        request body financeapp.CreateAccountRequest true "Account creation request"
// @Success      201 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Security     BearerAuth
// @Router       /accounts [post]
func (h *FinanceHandler) CreateAccount(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req financeapp.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	account, err := h.accountService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, account)
}

// GetAccount godoc
// @Summary      Get account by ID with its current balance
// @Tags         finance
// @Produce      json
// @Param        id path string true "Account ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /accounts/{id} [get]
func (h *FinanceHandler) GetAccount(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid account ID format")
		return
	}

	account, err := h.accountService.GetByID(c.Request.Context(), tenantID, accountID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, account)
}

// ListAccounts godoc
// @Summary      List ledger accounts
// @Tags         finance
// @Produce      json
// @Param        q query string false "Search term (code, name)"
// @Param        type query string false "Account type" Enums(ASSET, LIABILITY, EQUITY, REVENUE, EXPENSE)
// @Param        skip query int false "Rows to skip" default(0)
// @Param        take query int false "Rows to return" default(20) maximum(500)
// @Success      200 {object} dto.Response
// @Security     BearerAuth
// @Router       /accounts [get]
func (h *FinanceHandler) ListAccounts(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter financeapp.AccountListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	accounts, total, err := h.accountService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, accounts, total, filter.Skip, filter.Take)
}

// UpdateAccount godoc
// @Summary      Update a ledger account
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        id path string true "Account ID" format(uuid)
// @Param        request body financeapp.UpdateAccountRequest true "Account update request"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /accounts/{id} [put]
func (h *FinanceHandler) UpdateAccount(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid account ID format")
		return
	}

	var req financeapp.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	account, err := h.accountService.Update(c.Request.Context(), tenantID, accountID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, account)
}

// DeleteAccount godoc
// @Summary      Delete a ledger account
// @Tags         finance
// @Produce      json
// @Param        id path string true "Account ID" format(uuid)
// @Success      204
// @Failure      422 {object} dto.Response
// @Security     BearerAuth
// @Router       /accounts/{id} [delete]
func (h *FinanceHandler) DeleteAccount(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid account ID format")
		return
	}

	if err := h.accountService.Delete(c.Request.Context(), tenantID, accountID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateTransaction godoc
// @Summary      Record a new transaction against an account
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        request body financeapp.CreateTransactionRequest true "Transaction creation request"
// @Success      201 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Security     BearerAuth
// @Router       /transactions [post]
func (h *FinanceHandler) CreateTransaction(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req financeapp.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	transaction, err := h.transactionService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, transaction)
}

// GetTransaction godoc
// @Summary      Get transaction by ID
// @Tags         finance
// @Produce      json
// @Param        id path string true "Transaction ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /transactions/{id} [get]
func (h *FinanceHandler) GetTransaction(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid transaction ID format")
		return
	}

	transaction, err := h.transactionService.GetByID(c.Request.Context(), tenantID, transactionID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, transaction)
}

// ListTransactions godoc
// @Summary      List transactions
// @Tags         finance
// @Produce      json
// @Param        q query string false "Search term (description, reference)"
// @Param        account_id query string false "Filter by account" format(uuid)
// @Param        type query string false "Transaction type" Enums(DEBIT, CREDIT)
// @Param        status query string false "Transaction status" Enums(PENDING, APPROVED)
// @Param        skip query int false "Rows to skip" default(0)
// @Param        take query int false "Rows to return" default(20) maximum(500)
// @Success      200 {object} dto.Response
// @Security     BearerAuth
// @Router       /transactions [get]
func (h *FinanceHandler) ListTransactions(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter financeapp.TransactionListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	transactions, total, err := h.transactionService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, transactions, total, filter.Skip, filter.Take)
}

// UpdateTransaction godoc
// @Summary      Update a pending transaction
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        id path string true "Transaction ID" format(uuid)
// @Param        request body financeapp.UpdateTransactionRequest true "Transaction update request"
// @Success      200 {object} dto.Response
// @Failure      422 {object} dto.Response
// @Security     BearerAuth
// @Router       /transactions/{id} [put]
func (h *FinanceHandler) UpdateTransaction(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid transaction ID format")
		return
	}

	var req financeapp.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	transaction, err := h.transactionService.Update(c.Request.Context(), tenantID, transactionID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, transaction)
}

// ApproveTransaction godoc
// @Summary      Approve a pending transaction
// @Tags         finance
// @Produce      json
// @Param        id path string true "Transaction ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      422 {object} dto.Response
// @Security     BearerAuth
// @Router       /transactions/{id}/approve [post]
func (h *FinanceHandler) ApproveTransaction(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid transaction ID format")
		return
	}

	transaction, err := h.transactionService.Approve(c.Request.Context(), tenantID, transactionID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, transaction)
}

// DeleteTransaction godoc
// @Summary      Delete a transaction
// @Tags         finance
// @Produce      json
// @Param        id path string true "Transaction ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /transactions/{id} [delete]
func (h *FinanceHandler) DeleteTransaction(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid transaction ID format")
		return
	}

	if err := h.transactionService.Delete(c.Request.Context(), tenantID, transactionID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
