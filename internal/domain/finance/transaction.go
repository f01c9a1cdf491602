package finance

import (
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a ledger transaction
type TransactionType string

const (
	TransactionTypeDebit  TransactionType = "DEBIT"
	TransactionTypeCredit TransactionType = "CREDIT"
)

// IsValid checks if the type is a valid TransactionType
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeDebit || t == TransactionTypeCredit
}

// String returns the string representation of TransactionType
func (t TransactionType) String() string {
	return string(t)
}

// TransactionStatus represents the status of a ledger transaction
type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "PENDING"
	TransactionStatusApproved TransactionStatus = "APPROVED"
)

// IsValid checks if the status is a valid TransactionStatus
func (s TransactionStatus) IsValid() bool {
	return s == TransactionStatusPending || s == TransactionStatusApproved
}

// String returns the string representation of TransactionStatus
func (s TransactionStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s TransactionStatus) CanTransitionTo(target TransactionStatus) bool {
	return s == TransactionStatusPending && target == TransactionStatusApproved
}

// Transaction represents a single-entry ledger transaction against an account
type Transaction struct {
	shared.TenantEntity
	AccountID   uuid.UUID         `gorm:"type:uuid;not null;index"`
	Date        time.Time         `gorm:"not null;index"`
	Description string            `gorm:"type:varchar(500);not null"`
	Amount      decimal.Decimal   `gorm:"type:decimal(18,2);not null"`
	Type        TransactionType   `gorm:"type:varchar(10);not null;index"`
	Status      TransactionStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Reference   string            `gorm:"type:varchar(100)"`
	CustomerID  *uuid.UUID        `gorm:"type:uuid;index"`
	SupplierID  *uuid.UUID        `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (Transaction) TableName() string {
	return "transactions"
}

// NewTransaction creates a new pending transaction
func NewTransaction(tenantID, accountID uuid.UUID, date time.Time, description string, amount decimal.Decimal, txType TransactionType) (*Transaction, error) {
	if accountID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACCOUNT", "Account ID is required")
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Transaction date is required")
	}
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}
	if len(description) > 500 {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 500 characters")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}
	if !txType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TRANSACTION_TYPE", "Invalid transaction type")
	}

	return &Transaction{
		TenantEntity: shared.NewTenantEntity(tenantID),
		AccountID:    accountID,
		Date:         date,
		Description:  description,
		Amount:       amount,
		Type:         txType,
		Status:       TransactionStatusPending,
	}, nil
}

// SetReference sets the external reference number
func (tx *Transaction) SetReference(reference string) error {
	if len(reference) > 100 {
		return shared.NewDomainError("INVALID_REFERENCE", "Reference cannot exceed 100 characters")
	}

	tx.Reference = reference
	tx.UpdatedAt = time.Now()

	return nil
}

// SetParties links the transaction to an optional customer or supplier
func (tx *Transaction) SetParties(customerID, supplierID *uuid.UUID) {
	tx.CustomerID = customerID
	tx.SupplierID = supplierID
	tx.UpdatedAt = time.Now()
}

// Approve transitions the transaction to APPROVED. Approving twice is a no-op.
func (tx *Transaction) Approve() error {
	if tx.Status == TransactionStatusApproved {
		return nil
	}

	tx.Status = TransactionStatusApproved
	tx.UpdatedAt = time.Now()

	return nil
}
