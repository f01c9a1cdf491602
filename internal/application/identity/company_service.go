package identity

import (
	"context"

	"github.com/bizledger/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// CompanyService handles company settings
type CompanyService struct {
	companyRepo identity.CompanyRepository
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo identity.CompanyRepository) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
	}
}

// Get retrieves the caller's company
func (s *CompanyService) Get(ctx context.Context, tenantID uuid.UUID) (*CompanyResponse, error) {
	company, err := s.companyRepo.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	response := ToCompanyResponse(company)
	return &response, nil
}

// Update updates the caller's company settings
func (s *CompanyService) Update(ctx context.Context, tenantID uuid.UUID, req UpdateCompanyRequest) (*CompanyResponse, error) {
	company, err := s.companyRepo.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.Address != nil || req.Phone != nil || req.Email != nil || req.Website != nil || req.TaxID != nil {
		name := company.Name
		address := company.Address
		phone := company.Phone
		email := company.Email
		website := company.Website
		taxID := company.TaxID

		if req.Name != nil {
			name = *req.Name
		}
		if req.Address != nil {
			address = *req.Address
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.Email != nil {
			email = *req.Email
		}
		if req.Website != nil {
			website = *req.Website
		}
		if req.TaxID != nil {
			taxID = *req.TaxID
		}

		if err := company.Update(name, address, phone, email, website, taxID); err != nil {
			return nil, err
		}
	}

	if req.Currency != nil || req.Timezone != nil {
		currency := ""
		timezone := ""
		if req.Currency != nil {
			currency = *req.Currency
		}
		if req.Timezone != nil {
			timezone = *req.Timezone
		}
		if err := company.SetLocalisation(currency, timezone); err != nil {
			return nil, err
		}
	}

	if err := s.companyRepo.Save(ctx, company); err != nil {
		return nil, err
	}

	response := ToCompanyResponse(company)
	return &response, nil
}
