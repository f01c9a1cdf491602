package finance

import (
	"context"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRepository manages ledger account persistence
type AccountRepository interface {
	shared.TenantRepository[Account]
	ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error)
}

// TransactionRepository manages transaction persistence
type TransactionRepository interface {
	shared.TenantRepository[Transaction]
	// BalanceByAccount returns debits minus credits for one account.
	BalanceByAccount(ctx context.Context, tenantID, accountID uuid.UUID) (decimal.Decimal, error)
}
