package partner

import (
	"regexp"
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Customer represents a buyer in the partner context
type Customer struct {
	shared.TenantEntity
	Name      string `gorm:"type:varchar(200);not null"`
	Email     string `gorm:"type:varchar(200);index"`
	Phone     string `gorm:"type:varchar(50);index"`
	Address   string `gorm:"type:text"`
	City      string `gorm:"type:varchar(100)"`
	State     string `gorm:"type:varchar(100)"`
	Country   string `gorm:"type:varchar(100)"`
	Pincode   string `gorm:"type:varchar(20)"`
	GSTNumber string `gorm:"type:varchar(50)"`
	IsActive  bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer with required fields
func NewCustomer(tenantID uuid.UUID, name string) (*Customer, error) {
	if err := validatePartnerName(name); err != nil {
		return nil, err
	}

	return &Customer{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Name:         name,
		IsActive:     true,
	}, nil
}

// Update updates the customer's basic information
func (c *Customer) Update(name string) error {
	if err := validatePartnerName(name); err != nil {
		return err
	}

	c.Name = name
	c.UpdatedAt = time.Now()

	return nil
}

// SetContact sets the customer's contact information
func (c *Customer) SetContact(email, phone string) error {
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

	c.Email = email
	c.Phone = phone
	c.UpdatedAt = time.Now()

	return nil
}

// SetAddress sets the customer's address information
func (c *Customer) SetAddress(address, city, state, country, pincode string) error {
	if err := validatePartnerAddress(address, city, state, country, pincode); err != nil {
		return err
	}

	c.Address = address
	c.City = city
	c.State = state
	c.Country = country
	c.Pincode = pincode
	c.UpdatedAt = time.Now()

	return nil
}

// SetGSTNumber sets the customer's GST registration number
func (c *Customer) SetGSTNumber(gst string) error {
	if gst != "" && len(gst) > 50 {
		return shared.NewDomainError("INVALID_GST_NUMBER", "GST number cannot exceed 50 characters")
	}

	c.GSTNumber = gst
	c.UpdatedAt = time.Now()

	return nil
}

// Deactivate soft-deletes the customer
func (c *Customer) Deactivate() {
	c.IsActive = false
	c.UpdatedAt = time.Now()
}

// Validation functions shared by customer and supplier

var (
	partnerEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	partnerPhoneRegex = regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)
)

func validatePartnerName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	return nil
}

func validatePartnerEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !partnerEmailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

func validatePartnerPhone(phone string) error {
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 50 characters")
	}
	if !partnerPhoneRegex.MatchString(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Invalid phone number format")
	}
	return nil
}

func validatePartnerAddress(address, city, state, country, pincode string) error {
	if address != "" && len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}
	if city != "" && len(city) > 100 {
		return shared.NewDomainError("INVALID_CITY", "City cannot exceed 100 characters")
	}
	if state != "" && len(state) > 100 {
		return shared.NewDomainError("INVALID_STATE", "State cannot exceed 100 characters")
	}
	if country != "" && len(country) > 100 {
		return shared.NewDomainError("INVALID_COUNTRY", "Country cannot exceed 100 characters")
	}
	if pincode != "" && len(pincode) > 20 {
		return shared.NewDomainError("INVALID_PINCODE", "Pincode cannot exceed 20 characters")
	}
	return nil
}
