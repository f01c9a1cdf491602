package hr

import (
	"context"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EmployeeRepository manages employee persistence
type EmployeeRepository interface {
	shared.TenantRepository[Employee]
	ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error)
}

// PayrollRepository manages payroll persistence
type PayrollRepository interface {
	shared.TenantRepository[Payroll]
}
