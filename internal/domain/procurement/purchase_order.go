package procurement

import (
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus represents the status of a purchase order
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusSent      PurchaseOrderStatus = "SENT"
	PurchaseOrderStatusConfirmed PurchaseOrderStatus = "CONFIRMED"
	PurchaseOrderStatusReceived  PurchaseOrderStatus = "RECEIVED"
	PurchaseOrderStatusCancelled PurchaseOrderStatus = "CANCELLED"
)

// IsValid checks if the status is a valid PurchaseOrderStatus
func (s PurchaseOrderStatus) IsValid() bool {
	switch s {
	case PurchaseOrderStatusSent, PurchaseOrderStatusConfirmed,
		PurchaseOrderStatusReceived, PurchaseOrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of PurchaseOrderStatus
func (s PurchaseOrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s PurchaseOrderStatus) CanTransitionTo(target PurchaseOrderStatus) bool {
	switch s {
	case PurchaseOrderStatusSent:
		return target == PurchaseOrderStatusConfirmed || target == PurchaseOrderStatusCancelled
	case PurchaseOrderStatusConfirmed:
		return target == PurchaseOrderStatusReceived || target == PurchaseOrderStatusCancelled
	case PurchaseOrderStatusReceived, PurchaseOrderStatusCancelled:
		return false // Terminal states
	}
	return false
}

// PurchaseOrderItem represents a line item in a purchase order.
// Purchase lines carry no discount.
type PurchaseOrderItem struct {
	shared.BaseEntity
	PurchaseOrderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity        int             `gorm:"not null"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	TaxRate         decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	TaxAmount       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Total           decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}

// NewPurchaseOrderItem creates a line item and computes its tax and total
func NewPurchaseOrderItem(productID uuid.UUID, quantity int, unitPrice, taxRate decimal.Decimal) (*PurchaseOrderItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID is required")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	if taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.NewDomainError("INVALID_TAX_RATE", "Tax rate must be between 0 and 100")
	}

	item := &PurchaseOrderItem{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TaxRate:    taxRate,
	}
	item.calculate()

	return item, nil
}

// LineAmount returns quantity times unit price
func (i *PurchaseOrderItem) LineAmount() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func (i *PurchaseOrderItem) calculate() {
	base := i.LineAmount()
	i.TaxAmount = base.Mul(i.TaxRate).Div(decimal.NewFromInt(100)).Round(2)
	i.Total = base.Add(i.TaxAmount).Round(2)
}

// PurchaseOrder represents an order placed with a supplier
type PurchaseOrder struct {
	shared.TenantEntity
	PONumber     string              `gorm:"type:varchar(50);not null;uniqueIndex:idx_po_tenant_number,priority:2"`
	SupplierID   uuid.UUID           `gorm:"type:uuid;not null;index"`
	OrderDate    time.Time           `gorm:"not null"`
	ExpectedDate *time.Time          `gorm:""`
	Status       PurchaseOrderStatus `gorm:"type:varchar(20);not null;default:'SENT';index"`
	Subtotal     decimal.Decimal     `gorm:"type:decimal(18,2);not null;default:0"`
	TaxAmount    decimal.Decimal     `gorm:"type:decimal(18,2);not null;default:0"`
	Total        decimal.Decimal     `gorm:"type:decimal(18,2);not null;default:0"`
	Notes        string              `gorm:"type:text"`
	Items        []PurchaseOrderItem `gorm:"foreignKey:PurchaseOrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// NewPurchaseOrder creates a purchase order with its line items and computed totals
func NewPurchaseOrder(tenantID, supplierID uuid.UUID, poNumber string, orderDate time.Time, expectedDate *time.Time, items []PurchaseOrderItem, notes string) (*PurchaseOrder, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID is required")
	}
	if poNumber == "" {
		return nil, shared.NewDomainError("INVALID_PO_NUMBER", "Purchase order number cannot be empty")
	}
	if len(poNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_PO_NUMBER", "Purchase order number cannot exceed 50 characters")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("INVALID_ITEMS", "Purchase order must have at least one item")
	}
	if expectedDate != nil && expectedDate.Before(orderDate) {
		return nil, shared.NewDomainError("INVALID_EXPECTED_DATE", "Expected date cannot be before the order date")
	}

	po := &PurchaseOrder{
		TenantEntity: shared.NewTenantEntity(tenantID),
		PONumber:     poNumber,
		SupplierID:   supplierID,
		OrderDate:    orderDate,
		ExpectedDate: expectedDate,
		Status:       PurchaseOrderStatusSent,
		Notes:        notes,
	}
	for idx := range items {
		items[idx].PurchaseOrderID = po.ID
	}
	po.Items = items
	po.recalcTotals()

	return po, nil
}

// Confirm transitions the order to CONFIRMED. Confirming twice is a no-op.
func (po *PurchaseOrder) Confirm() error {
	if po.Status == PurchaseOrderStatusConfirmed {
		return nil
	}
	if po.Status != PurchaseOrderStatusSent {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION", "Only sent orders can be confirmed")
	}

	po.Status = PurchaseOrderStatusConfirmed
	po.UpdatedAt = time.Now()

	return nil
}

// Receive transitions the order to RECEIVED. Receiving directly from
// SENT is allowed, skipping confirmation. Receiving twice is a no-op.
func (po *PurchaseOrder) Receive() error {
	if po.Status == PurchaseOrderStatusReceived {
		return nil
	}
	if po.Status != PurchaseOrderStatusSent && po.Status != PurchaseOrderStatusConfirmed {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION", "Only sent or confirmed orders can be received")
	}

	po.Status = PurchaseOrderStatusReceived
	po.UpdatedAt = time.Now()

	return nil
}

func (po *PurchaseOrder) recalcTotals() {
	subtotal := decimal.Zero
	tax := decimal.Zero
	total := decimal.Zero
	for i := range po.Items {
		subtotal = subtotal.Add(po.Items[i].LineAmount())
		tax = tax.Add(po.Items[i].TaxAmount)
		total = total.Add(po.Items[i].Total)
	}
	po.Subtotal = subtotal.Round(2)
	po.TaxAmount = tax.Round(2)
	po.Total = total.Round(2)
}
