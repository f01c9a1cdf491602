package partner

import (
	"context"

	"github.com/bizledger/backend/internal/domain/partner"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SupplierService handles supplier-related business operations
type SupplierService struct {
	supplierRepo partner.SupplierRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
	}
}

// Create creates a new supplier
func (s *SupplierService) Create(ctx context.Context, tenantID uuid.UUID, req CreateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := partner.NewSupplier(tenantID, req.Name)
	if err != nil {
		return nil, err
	}

	if req.ContactPerson != "" {
		if err := supplier.Update(req.Name, req.ContactPerson); err != nil {
			return nil, err
		}
	}

	if req.Email != "" || req.Phone != "" {
		if err := supplier.SetContact(req.Email, req.Phone); err != nil {
			return nil, err
		}
	}

	if req.Address != "" || req.City != "" || req.State != "" || req.Country != "" || req.Pincode != "" {
		if err := supplier.SetAddress(req.Address, req.City, req.State, req.Country, req.Pincode); err != nil {
			return nil, err
		}
	}

	if req.GSTNumber != "" {
		if err := supplier.SetGSTNumber(req.GSTNumber); err != nil {
			return nil, err
		}
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// GetByID retrieves a supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, tenantID, supplierID uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByIDForTenant(ctx, tenantID, supplierID)
	if err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// List retrieves suppliers with search and pagination
func (s *SupplierService) List(ctx context.Context, tenantID uuid.UUID, filter PartnerListFilter) ([]SupplierResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Skip = filter.Skip
	if filter.Take > 0 {
		domainFilter.Take = filter.Take
	}
	domainFilter.Search = filter.Search
	domainFilter.Filters["is_active"] = true

	suppliers, err := s.supplierRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.supplierRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToSupplierResponses(suppliers), total, nil
}

// Update updates a supplier
func (s *SupplierService) Update(ctx context.Context, tenantID, supplierID uuid.UUID, req UpdateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByIDForTenant(ctx, tenantID, supplierID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.ContactPerson != nil {
		name := supplier.Name
		contactPerson := supplier.ContactPerson
		if req.Name != nil {
			name = *req.Name
		}
		if req.ContactPerson != nil {
			contactPerson = *req.ContactPerson
		}
		if err := supplier.Update(name, contactPerson); err != nil {
			return nil, err
		}
	}

	if req.Email != nil || req.Phone != nil {
		email := supplier.Email
		phone := supplier.Phone
		if req.Email != nil {
			email = *req.Email
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if err := supplier.SetContact(email, phone); err != nil {
			return nil, err
		}
	}

	if req.Address != nil || req.City != nil || req.State != nil || req.Country != nil || req.Pincode != nil {
		address := supplier.Address
		city := supplier.City
		state := supplier.State
		country := supplier.Country
		pincode := supplier.Pincode

		if req.Address != nil {
			address = *req.Address
		}
		if req.City != nil {
			city = *req.City
		}
		if req.State != nil {
			state = *req.State
		}
		if req.Country != nil {
			country = *req.Country
		}
		if req.Pincode != nil {
			pincode = *req.Pincode
		}

		if err := supplier.SetAddress(address, city, state, country, pincode); err != nil {
			return nil, err
		}
	}

	if req.GSTNumber != nil {
		if err := supplier.SetGSTNumber(*req.GSTNumber); err != nil {
			return nil, err
		}
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// Delete deactivates a supplier. The row is kept for historical orders.
func (s *SupplierService) Delete(ctx context.Context, tenantID, supplierID uuid.UUID) error {
	supplier, err := s.supplierRepo.FindByIDForTenant(ctx, tenantID, supplierID)
	if err != nil {
		return err
	}

	supplier.Deactivate()

	return s.supplierRepo.Save(ctx, supplier)
}
