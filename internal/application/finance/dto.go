package finance

import (
	"time"

	"github.com/bizledger/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Account DTOs
// =============================================================================

// CreateAccountRequest represents a request to create a ledger account
type CreateAccountRequest struct {
	Code     string     `json:"code" binding:"required,min=1,max=50"`
	Name     string     `json:"name" binding:"required,min=1,max=200"`
	Type     string     `json:"type" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	ParentID *uuid.UUID `json:"parent_id"`
}

// UpdateAccountRequest represents a request to update a ledger account
type UpdateAccountRequest struct {
	Name     *string    `json:"name" binding:"omitempty,min=1,max=200"`
	ParentID *uuid.UUID `json:"parent_id"`
}

// AccountResponse represents a ledger account in API responses
type AccountResponse struct {
	ID        uuid.UUID  `json:"id"`
	Code      string     `json:"code"`
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	ParentID  *uuid.UUID `json:"parent_id"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// AccountListFilter represents filter options for account lists
type AccountListFilter struct {
	Search string `form:"q"`
	Type   string `form:"type" binding:"omitempty,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Skip   int    `form:"skip" binding:"min=0"`
	Take   int    `form:"take" binding:"min=0,max=500"`
}

// ToAccountResponse converts a domain Account to AccountResponse
func ToAccountResponse(a *finance.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID,
		Code:      a.Code,
		Name:      a.Name,
		Type:      string(a.Type),
		ParentID:  a.ParentID,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ToAccountResponses converts a slice of domain Accounts to AccountResponses
func ToAccountResponses(accounts []finance.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}

// =============================================================================
// Transaction DTOs
// =============================================================================

// CreateTransactionRequest represents a request to record a transaction
type CreateTransactionRequest struct {
	AccountID   uuid.UUID       `json:"account_id" binding:"required"`
	Date        time.Time       `json:"date" binding:"required"`
	Description string          `json:"description" binding:"required,min=1,max=500"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=DEBIT CREDIT"`
	Reference   string          `json:"reference" binding:"max=100"`
	CustomerID  *uuid.UUID      `json:"customer_id"`
	SupplierID  *uuid.UUID      `json:"supplier_id"`
}

// UpdateTransactionRequest represents a request to update a transaction
type UpdateTransactionRequest struct {
	Description *string          `json:"description" binding:"omitempty,min=1,max=500"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *time.Time       `json:"date"`
	Reference   *string          `json:"reference" binding:"omitempty,max=100"`
	CustomerID  *uuid.UUID       `json:"customer_id"`
	SupplierID  *uuid.UUID       `json:"supplier_id"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID          uuid.UUID       `json:"id"`
	AccountID   uuid.UUID       `json:"account_id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Status      string          `json:"status"`
	Reference   string          `json:"reference"`
	CustomerID  *uuid.UUID      `json:"customer_id"`
	SupplierID  *uuid.UUID      `json:"supplier_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TransactionListFilter represents filter options for transaction lists
type TransactionListFilter struct {
	Search    string     `form:"q"`
	AccountID *uuid.UUID `form:"account_id"`
	Type      string     `form:"type" binding:"omitempty,oneof=DEBIT CREDIT"`
	Status    string     `form:"status" binding:"omitempty,oneof=PENDING APPROVED"`
	Skip      int        `form:"skip" binding:"min=0"`
	Take      int        `form:"take" binding:"min=0,max=500"`
}

// ToTransactionResponse converts a domain Transaction to TransactionResponse
func ToTransactionResponse(tx *finance.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		AccountID:   tx.AccountID,
		Date:        tx.Date,
		Description: tx.Description,
		Amount:      tx.Amount,
		Type:        string(tx.Type),
		Status:      string(tx.Status),
		Reference:   tx.Reference,
		CustomerID:  tx.CustomerID,
		SupplierID:  tx.SupplierID,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
}

// ToTransactionResponses converts a slice of domain Transactions to responses
func ToTransactionResponses(transactions []finance.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		responses[i] = ToTransactionResponse(&transactions[i])
	}
	return responses
}
