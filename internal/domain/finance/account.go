package finance

import (
	"strings"
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AccountType represents the classification of a ledger account
type AccountType string

const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeEquity    AccountType = "EQUITY"
	AccountTypeRevenue   AccountType = "REVENUE"
	AccountTypeExpense   AccountType = "EXPENSE"
)

// IsValid checks if the type is a valid AccountType
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity,
		AccountTypeRevenue, AccountTypeExpense:
		return true
	}
	return false
}

// String returns the string representation of AccountType
func (t AccountType) String() string {
	return string(t)
}

// Account represents a ledger account in the chart of accounts
type Account struct {
	shared.TenantEntity
	Code     string      `gorm:"type:varchar(50);not null;uniqueIndex:idx_account_tenant_code,priority:2"`
	Name     string      `gorm:"type:varchar(200);not null"`
	Type     AccountType `gorm:"type:varchar(20);not null;index"`
	ParentID *uuid.UUID  `gorm:"type:uuid;index"`
	IsActive bool        `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Account) TableName() string {
	return "accounts"
}

// NewAccount creates a new ledger account
func NewAccount(tenantID uuid.UUID, code, name string, accountType AccountType, parentID *uuid.UUID) (*Account, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Account code cannot be empty")
	}
	if len(code) > 50 {
		return nil, shared.NewDomainError("INVALID_CODE", "Account code cannot exceed 50 characters")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Account name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Account name cannot exceed 200 characters")
	}
	if !accountType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_TYPE", "Invalid account type")
	}

	return &Account{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Code:         strings.ToUpper(code),
		Name:         name,
		Type:         accountType,
		ParentID:     parentID,
		IsActive:     true,
	}, nil
}

// Update updates the account's name and parent
func (a *Account) Update(name string, parentID *uuid.UUID) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Account name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Account name cannot exceed 200 characters")
	}

	a.Name = name
	a.ParentID = parentID
	a.UpdatedAt = time.Now()

	return nil
}

// Deactivate soft-deletes the account
func (a *Account) Deactivate() {
	a.IsActive = false
	a.UpdatedAt = time.Now()
}
