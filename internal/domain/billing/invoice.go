package billing

import (
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusSent      InvoiceStatus = "SENT"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusOverdue   InvoiceStatus = "OVERDUE"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
)

// IsValid checks if the status is a valid InvoiceStatus
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of InvoiceStatus
func (s InvoiceStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s InvoiceStatus) CanTransitionTo(target InvoiceStatus) bool {
	switch s {
	case InvoiceStatusSent, InvoiceStatusOverdue:
		return target == InvoiceStatusPaid || target == InvoiceStatusCancelled
	case InvoiceStatusPaid, InvoiceStatusCancelled:
		return false // Terminal states
	}
	return false
}

// InvoiceItem represents a line item in an invoice
type InvoiceItem struct {
	shared.BaseEntity
	InvoiceID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	TaxRate   decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	Discount  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	TaxAmount decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Total     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (InvoiceItem) TableName() string {
	return "invoice_items"
}

// NewInvoiceItem creates a line item and computes its tax and total
func NewInvoiceItem(productID uuid.UUID, quantity int, unitPrice, taxRate, discount decimal.Decimal) (*InvoiceItem, error) {
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
	if discount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot be negative")
	}

	item := &InvoiceItem{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TaxRate:    taxRate,
		Discount:   discount,
	}
	item.calculate()

	return item, nil
}

// LineAmount returns quantity times unit price minus discount
func (i *InvoiceItem) LineAmount() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity))).Sub(i.Discount)
}

func (i *InvoiceItem) calculate() {
	base := i.LineAmount()
	i.TaxAmount = base.Mul(i.TaxRate).Div(decimal.NewFromInt(100)).Round(2)
	i.Total = base.Add(i.TaxAmount).Round(2)
}

// Invoice represents a sales invoice issued to a customer
type Invoice struct {
	shared.TenantEntity
	InvoiceNumber string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_invoice_tenant_number,priority:2"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	InvoiceDate   time.Time       `gorm:"not null"`
	DueDate       time.Time       `gorm:"not null"`
	Status        InvoiceStatus   `gorm:"type:varchar(20);not null;default:'SENT';index"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	TaxAmount     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Total         decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Notes         string          `gorm:"type:text"`
	Items         []InvoiceItem   `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "invoices"
}

// NewInvoice creates an invoice with its line items and computed totals
func NewInvoice(tenantID, customerID uuid.UUID, invoiceNumber string, invoiceDate, dueDate time.Time, items []InvoiceItem, notes string) (*Invoice, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID is required")
	}
	if invoiceNumber == "" {
		return nil, shared.NewDomainError("INVALID_INVOICE_NUMBER", "Invoice number cannot be empty")
	}
	if len(invoiceNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_INVOICE_NUMBER", "Invoice number cannot exceed 50 characters")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("INVALID_ITEMS", "Invoice must have at least one item")
	}
	if dueDate.Before(invoiceDate) {
		return nil, shared.NewDomainError("INVALID_DUE_DATE", "Due date cannot be before the invoice date")
	}

	inv := &Invoice{
		TenantEntity:  shared.NewTenantEntity(tenantID),
		InvoiceNumber: invoiceNumber,
		CustomerID:    customerID,
		InvoiceDate:   invoiceDate,
		DueDate:       dueDate,
		Status:        InvoiceStatusSent,
		Notes:         notes,
	}
	for idx := range items {
		items[idx].InvoiceID = inv.ID
	}
	inv.Items = items
	inv.recalcTotals()

	return inv, nil
}

// MarkPaid transitions the invoice to PAID. Marking an already paid
// invoice is a no-op.
func (inv *Invoice) MarkPaid() error {
	if inv.Status == InvoiceStatusPaid {
		return nil
	}
	if inv.Status == InvoiceStatusCancelled {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION", "Cancelled invoices cannot be marked as paid")
	}

	inv.Status = InvoiceStatusPaid
	inv.UpdatedAt = time.Now()

	return nil
}

func (inv *Invoice) recalcTotals() {
	subtotal := decimal.Zero
	tax := decimal.Zero
	total := decimal.Zero
	for i := range inv.Items {
		subtotal = subtotal.Add(inv.Items[i].LineAmount())
		tax = tax.Add(inv.Items[i].TaxAmount)
		total = total.Add(inv.Items[i].Total)
	}
	inv.Subtotal = subtotal.Round(2)
	inv.TaxAmount = tax.Round(2)
	inv.Total = total.Round(2)
}
