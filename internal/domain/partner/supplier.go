package partner

import (
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Supplier represents a vendor in the partner context
type Supplier struct {
	shared.TenantEntity
	Name          string `gorm:"type:varchar(200);not null"`
	ContactPerson string `gorm:"type:varchar(100)"`
	Email         string `gorm:"type:varchar(200);index"`
	Phone         string `gorm:"type:varchar(50);index"`
	Address       string `gorm:"type:text"`
	City          string `gorm:"type:varchar(100)"`
	State         string `gorm:"type:varchar(100)"`
	Country       string `gorm:"type:varchar(100)"`
	Pincode       string `gorm:"type:varchar(20)"`
	GSTNumber     string `gorm:"type:varchar(50)"`
	IsActive      bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier with required fields
func NewSupplier(tenantID uuid.UUID, name string) (*Supplier, error) {
	if err := validatePartnerName(name); err != nil {
		return nil, err
	}

	return &Supplier{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Name:         name,
		IsActive:     true,
	}, nil
}

// Update updates the supplier's basic information
func (s *Supplier) Update(name, contactPerson string) error {
	if err := validatePartnerName(name); err != nil {
		return err
	}
	if contactPerson != "" && len(contactPerson) > 100 {
		return shared.NewDomainError("INVALID_CONTACT_PERSON", "Contact person cannot exceed 100 characters")
	}

	s.Name = name
	s.ContactPerson = contactPerson
	s.UpdatedAt = time.Now()

	return nil
}

// SetContact sets the supplier's contact information
func (s *Supplier) SetContact(email, phone string) error {
	if email != "" {
		if err := validatePartnerEmail(email); err != nil {
			return err
		}
	}
	if phone != "" {
		if err := validatePartnerPhone(phone); err != nil {
			return err
		}
	}

	s.Email = email
	s.Phone = phone
	s.UpdatedAt = time.Now()

	return nil
}

// SetAddress sets the supplier's address information
func (s *Supplier) SetAddress(address, city, state, country, pincode string) error {
	if err := validatePartnerAddress(address, city, state, country, pincode); err != nil {
		return err
	}

	s.Address = address
	s.City = city
	s.State = state
	s.Country = country
	s.Pincode = pincode
	s.UpdatedAt = time.Now()

	return nil
}

// SetGSTNumber sets the supplier's GST registration number
func (s *Supplier) SetGSTNumber(gst string) error {
	if gst != "" && len(gst) > 50 {
		return shared.NewDomainError("INVALID_GST_NUMBER", "GST number cannot exceed 50 characters")
	}

	s.GSTNumber = gst
	s.UpdatedAt = time.Now()

	return nil
}

// Deactivate soft-deletes the supplier
func (s *Supplier) Deactivate() {
	s.IsActive = false
	s.UpdatedAt = time.Now()
}
