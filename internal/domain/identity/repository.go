package identity

import (
	"context"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CompanyRepository manages company persistence
type CompanyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Company, error)
	Save(ctx context.Context, company *Company) error
}

// UserRepository manages user persistence
type UserRepository interface {
	shared.TenantRepository[User]
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RegistrationRepository persists a new company together with its first
// admin user in a single transaction. A duplicate email must leave
// nothing behind.
type RegistrationRepository interface {
	CreateCompanyWithAdmin(ctx context.Context, company *Company, admin *User) error
}
