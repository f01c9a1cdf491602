package finance

import (
	"context"

	"github.com/bizledger/backend/internal/domain/finance"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AccountService handles chart-of-accounts business operations
type AccountService struct {
	accountRepo finance.AccountRepository
}

// NewAccountService creates a new AccountService
func NewAccountService(accountRepo finance.AccountRepository) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

// Create creates a new ledger account
func (s *AccountService) Create(ctx context.Context, tenantID uuid.UUID, req CreateAccountRequest) (*AccountResponse, error) {
	exists, err := s.accountRepo.ExistsByCode(ctx, tenantID, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Account with this code already exists")
	}

	if req.ParentID != nil {
		if _, err := s.accountRepo.FindByIDForTenant(ctx, tenantID, *req.ParentID); err != nil {
			return nil, err
		}
	}

	account, err := finance.NewAccount(tenantID, req.Code, req.Name, finance.AccountType(req.Type), req.ParentID)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.Save(ctx, account); err != nil {
		return nil, err
	}

	response := ToAccountResponse(account)
	return &response, nil
}

// GetByID retrieves an account by ID
func (s *AccountService) GetByID(ctx context.Context, tenantID, accountID uuid.UUID) (*AccountResponse, error) {
	account, err := s.accountRepo.FindByIDForTenant(ctx, tenantID, accountID)
	if err != nil {
		return nil, err
	}

	response := ToAccountResponse(account)
	return &response, nil
}

// List retrieves accounts ordered by type and code. The whole chart of
// accounts fits one page for a typical tenant.
func (s *AccountService) List(ctx context.Context, tenantID uuid.UUID, filter AccountListFilter) ([]AccountResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Take = 500
	domainFilter.OrderBy = "type, code"
	domainFilter.OrderDir = "asc"
	domainFilter.Skip = filter.Skip
	if filter.Take > 0 {
		domainFilter.Take = filter.Take
	}
	domainFilter.Search = filter.Search
	if filter.Type != "" {
		domainFilter.Filters["type"] = filter.Type
	}
	domainFilter.Filters["is_active"] = true

	accounts, err := s.accountRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.accountRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToAccountResponses(accounts), total, nil
}

// Update updates an account
func (s *AccountService) Update(ctx context.Context, tenantID, accountID uuid.UUID, req UpdateAccountRequest) (*AccountResponse, error) {
	account, err := s.accountRepo.FindByIDForTenant(ctx, tenantID, accountID)
	if err != nil {
		return nil, err
	}

	name := account.Name
	if req.Name != nil {
		name = *req.Name
	}
	parentID := account.ParentID
	if req.ParentID != nil {
		if _, err := s.accountRepo.FindByIDForTenant(ctx, tenantID, *req.ParentID); err != nil {
			return nil, err
		}
		parentID = req.ParentID
	}

	if err := account.Update(name, parentID); err != nil {
		return nil, err
	}

	if err := s.accountRepo.Save(ctx, account); err != nil {
		return nil, err
	}

	response := ToAccountResponse(account)
	return &response, nil
}

// Delete deactivates an account. The row is kept for posted transactions.
func (s *AccountService) Delete(ctx context.Context, tenantID, accountID uuid.UUID) error {
	account, err := s.accountRepo.FindByIDForTenant(ctx, tenantID, accountID)
	if err != nil {
		return err
	}

	account.Deactivate()

	return s.accountRepo.Save(ctx, account)
}
