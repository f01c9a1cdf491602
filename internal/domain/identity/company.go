package identity

import (
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
)

// Default localisation applied to newly registered companies.
const (
	DefaultCurrency = "INR"
	DefaultTimezone = "Asia/Kolkata"
)

// Company is the tenant root. Every other aggregate in the system is
// scoped to a company through its TenantID.
type Company struct {
	shared.BaseEntity
	Name     string `gorm:"type:varchar(200);not null"`
	Address  string `gorm:"type:text"`
	Phone    string `gorm:"type:varchar(50)"`
	Email    string `gorm:"type:varchar(200)"`
	Website  string `gorm:"type:varchar(200)"`
	TaxID    string `gorm:"type:varchar(50)"`
	Currency string `gorm:"type:varchar(10);not null;default:'INR'"`
	Timezone string `gorm:"type:varchar(50);not null;default:'Asia/Kolkata'"`
}

// TableName returns the table name for GORM
func (Company) TableName() string {
	return "companies"
}

// NewCompany creates a new company with localisation defaults
func NewCompany(name string) (*Company, error) {
	if err := validateCompanyName(name); err != nil {
		return nil, err
	}

	return &Company{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Currency:   DefaultCurrency,
		Timezone:   DefaultTimezone,
	}, nil
}

// Update updates the company's profile
func (c *Company) Update(name, address, phone, email, website, taxID string) error {
	if err := validateCompanyName(name); err != nil {
		return err
	}

	c.Name = name
	c.Address = address
	c.Phone = phone
	c.Email = email
	c.Website = website
	c.TaxID = taxID
	c.UpdatedAt = time.Now()

	return nil
}

// SetLocalisation sets the company's currency and timezone
func (c *Company) SetLocalisation(currency, timezone string) error {
	if currency != "" {
		if len(currency) > 10 {
			return shared.NewDomainError("INVALID_CURRENCY", "Currency code cannot exceed 10 characters")
		}
		c.Currency = currency
	}
	if timezone != "" {
		if len(timezone) > 50 {
			return shared.NewDomainError("INVALID_TIMEZONE", "Timezone cannot exceed 50 characters")
		}
		c.Timezone = timezone
	}
	c.UpdatedAt = time.Now()

	return nil
}

func validateCompanyName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Company name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Company name cannot exceed 200 characters")
	}
	return nil
}
