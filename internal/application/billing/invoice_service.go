package billing

import (
	"context"

	"github.com/bizledger/backend/internal/domain/billing"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceService handles invoice-related business operations
type InvoiceService struct {
	invoiceRepo       billing.InvoiceRepository
	strictTransitions bool
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo billing.InvoiceRepository, strictTransitions bool) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:       invoiceRepo,
		strictTransitions: strictTransitions,
	}
}

// Create creates a new invoice with computed totals. The header and
// line items are persisted in one transaction by the repository.
func (s *InvoiceService) Create(ctx context.Context, tenantID uuid.UUID, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	items := make([]billing.InvoiceItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		taxRate := decimal.Zero
		if itemReq.TaxRate != nil {
			taxRate = *itemReq.TaxRate
		}
		discount := decimal.Zero
		if itemReq.Discount != nil {
			discount = *itemReq.Discount
		}

		item, err := billing.NewInvoiceItem(itemReq.ProductID, itemReq.Quantity, itemReq.UnitPrice, taxRate, discount)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	invoice, err := billing.NewInvoice(tenantID, req.CustomerID, req.InvoiceNumber, req.InvoiceDate, req.DueDate, items, req.Notes)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// GetByID retrieves an invoice by ID
func (s *InvoiceService) GetByID(ctx context.Context, tenantID, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByIDForTenant(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// List retrieves invoices with search and pagination
func (s *InvoiceService) List(ctx context.Context, tenantID uuid.UUID, filter InvoiceListFilter) ([]InvoiceResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Take = 100
	domainFilter.Skip = filter.Skip
	if filter.Take > 0 {
		domainFilter.Take = filter.Take
	}
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.CustomerID != nil {
		domainFilter.Filters["customer_id"] = *filter.CustomerID
	}

	invoices, err := s.invoiceRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.invoiceRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToInvoiceResponses(invoices), total, nil
}

// MarkPaid transitions an invoice to PAID
func (s *InvoiceService) MarkPaid(ctx context.Context, tenantID, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByIDForTenant(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}

	if s.strictTransitions && invoice.Status != billing.InvoiceStatusPaid {
		if !invoice.Status.CanTransitionTo(billing.InvoiceStatusPaid) {
			return nil, shared.NewDomainError("INVALID_STATUS_TRANSITION", "Invoice cannot be marked as paid from its current status")
		}
	}

	if err := invoice.MarkPaid(); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// Delete removes an invoice and its items
func (s *InvoiceService) Delete(ctx context.Context, tenantID, invoiceID uuid.UUID) error {
	if _, err := s.invoiceRepo.FindByIDForTenant(ctx, tenantID, invoiceID); err != nil {
		return err
	}

	return s.invoiceRepo.DeleteForTenant(ctx, tenantID, invoiceID)
}
