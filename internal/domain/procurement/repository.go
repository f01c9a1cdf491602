package procurement

import (
	"github.com/bizledger/backend/internal/domain/shared"
)

// PurchaseOrderRepository manages purchase order persistence. Saving an
// order persists its line items in the same transaction.
type PurchaseOrderRepository interface {
	shared.TenantRepository[PurchaseOrder]
}
