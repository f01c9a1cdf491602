package finance

import (
	"context"

	"github.com/bizledger/backend/internal/domain/finance"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TransactionService handles ledger transaction business operations
type TransactionService struct {
	transactionRepo finance.TransactionRepository
	accountRepo     finance.AccountRepository
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactionRepo finance.TransactionRepository, accountRepo finance.AccountRepository) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
	}
}

// Create records a new pending transaction
func (s *TransactionService) Create(ctx context.Context, tenantID uuid.UUID, req CreateTransactionRequest) (*TransactionResponse, error) {
	if _, err := s.accountRepo.FindByIDForTenant(ctx, tenantID, req.AccountID); err != nil {
		return nil, err
	}

	transaction, err := finance.NewTransaction(tenantID, req.AccountID, req.Date, req.Description, req.Amount, finance.TransactionType(req.Type))
	if err != nil {
		return nil, err
	}

	if req.Reference != "" {
		if err := transaction.SetReference(req.Reference); err != nil {
			return nil, err
		}
	}

	if req.CustomerID != nil || req.SupplierID != nil {
		transaction.SetParties(req.CustomerID, req.SupplierID)
	}

	if err := s.transactionRepo.Save(ctx, transaction); err != nil {
		return nil, err
	}

	response := ToTransactionResponse(transaction)
	return &response, nil
}

// GetByID retrieves a transaction by ID
func (s *TransactionService) GetByID(ctx context.Context, tenantID, transactionID uuid.UUID) (*TransactionResponse, error) {
	transaction, err := s.transactionRepo.FindByIDForTenant(ctx, tenantID, transactionID)
	if err != nil {
		return nil, err
	}

	response := ToTransactionResponse(transaction)
	return &response, nil
}

// List retrieves transactions with filtering and pagination
func (s *TransactionService) List(ctx context.Context, tenantID uuid.UUID, filter TransactionListFilter) ([]TransactionResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Take = 100
	domainFilter.OrderBy = "date"
	domainFilter.Skip = filter.Skip
	if filter.Take > 0 {
		domainFilter.Take = filter.Take
	}
	domainFilter.Search = filter.Search
	if filter.AccountID != nil {
		domainFilter.Filters["account_id"] = *filter.AccountID
	}
	if filter.Type != "" {
		domainFilter.Filters["type"] = filter.Type
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	transactions, err := s.transactionRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.transactionRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToTransactionResponses(transactions), total, nil
}

// Update updates a transaction's editable fields
func (s *TransactionService) Update(ctx context.Context, tenantID, transactionID uuid.UUID, req UpdateTransactionRequest) (*TransactionResponse, error) {
	transaction, err := s.transactionRepo.FindByIDForTenant(ctx, tenantID, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		if *req.Description == "" {
			return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
		}
		transaction.Description = *req.Description
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
		}
		transaction.Amount = *req.Amount
	}
	if req.Date != nil {
		transaction.Date = *req.Date
	}
	if req.Reference != nil {
		if err := transaction.SetReference(*req.Reference); err != nil {
			return nil, err
		}
	}
	if req.CustomerID != nil || req.SupplierID != nil {
		customerID := transaction.CustomerID
		supplierID := transaction.SupplierID
		if req.CustomerID != nil {
			customerID = req.CustomerID
		}
		if req.SupplierID != nil {
			supplierID = req.SupplierID
		}
		transaction.SetParties(customerID, supplierID)
	}
	transaction.Touch()

	if err := s.transactionRepo.Save(ctx, transaction); err != nil {
		return nil, err
	}

	response := ToTransactionResponse(transaction)
	return &response, nil
}

// Approve transitions a transaction to APPROVED
func (s *TransactionService) Approve(ctx context.Context, tenantID, transactionID uuid.UUID) (*TransactionResponse, error) {
	transaction, err := s.transactionRepo.FindByIDForTenant(ctx, tenantID, transactionID)
	if err != nil {
		return nil, err
	}

	if err := transaction.Approve(); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Save(ctx, transaction); err != nil {
		return nil, err
	}

	response := ToTransactionResponse(transaction)
	return &response, nil
}

// Delete removes a transaction
func (s *TransactionService) Delete(ctx context.Context, tenantID, transactionID uuid.UUID) error {
	if _, err := s.transactionRepo.FindByIDForTenant(ctx, tenantID, transactionID); err != nil {
		return err
	}

	return s.transactionRepo.DeleteForTenant(ctx, tenantID, transactionID)
}
