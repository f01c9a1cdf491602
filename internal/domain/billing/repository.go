package billing

import (
	"github.com/bizledger/backend/internal/domain/shared"
)

// InvoiceRepository manages invoice persistence. Saving an invoice
// persists its line items in the same transaction.
type InvoiceRepository interface {
	shared.TenantRepository[Invoice]
}
