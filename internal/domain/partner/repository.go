package partner

import (
	"github.com/bizledger/backend/internal/domain/shared"
)

// CustomerRepository manages customer persistence
type CustomerRepository interface {
	shared.TenantRepository[Customer]
}

// SupplierRepository manages supplier persistence
type SupplierRepository interface {
	shared.TenantRepository[Supplier]
}
