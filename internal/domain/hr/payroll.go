package hr

import (
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayrollStatus represents the status of a payroll run
type PayrollStatus string

const (
	PayrollStatusPending   PayrollStatus = "PENDING"
	PayrollStatusProcessed PayrollStatus = "PROCESSED"
	PayrollStatusPaid      PayrollStatus = "PAID"
	PayrollStatusCancelled PayrollStatus = "CANCELLED"
)

// IsValid checks if the status is a valid PayrollStatus
func (s PayrollStatus) IsValid() bool {
	switch s {
	case PayrollStatusPending, PayrollStatusProcessed, PayrollStatusPaid, PayrollStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of PayrollStatus
func (s PayrollStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s PayrollStatus) CanTransitionTo(target PayrollStatus) bool {
	switch s {
	case PayrollStatusPending:
		return target == PayrollStatusProcessed || target == PayrollStatusCancelled
	case PayrollStatusProcessed:
		return target == PayrollStatusPaid || target == PayrollStatusCancelled
	case PayrollStatusPaid, PayrollStatusCancelled:
		return false // Terminal states
	}
	return false
}

// Payroll represents one employee's pay for a month. The net salary is
// always derived from basic, allowances and deductions.
type Payroll struct {
	shared.TenantEntity
	EmployeeID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Month      int             `gorm:"not null"`
	Year       int             `gorm:"not null"`
	Basic      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Allowances decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Deductions decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	NetSalary  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Status     PayrollStatus   `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	PaidDate   *time.Time      `gorm:""`
}

// TableName returns the table name for GORM
func (Payroll) TableName() string {
	return "payrolls"
}

// NewPayroll creates a payroll entry for an employee and period
func NewPayroll(tenantID, employeeID uuid.UUID, month, year int, basic, allowances, deductions decimal.Decimal) (*Payroll, error) {
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE", "Employee ID is required")
	}
	if month < 1 || month > 12 {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Month must be between 1 and 12")
	}
	if year < 2000 {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Year must be 2000 or later")
	}
	if err := validateAmounts(basic, allowances, deductions); err != nil {
		return nil, err
	}

	p := &Payroll{
		TenantEntity: shared.NewTenantEntity(tenantID),
		EmployeeID:   employeeID,
		Month:        month,
		Year:         year,
		Basic:        basic,
		Allowances:   allowances,
		Deductions:   deductions,
		Status:       PayrollStatusPending,
	}
	p.recalcNetSalary()

	return p, nil
}

// SetAmounts updates the pay components and recomputes the net salary
func (p *Payroll) SetAmounts(basic, allowances, deductions decimal.Decimal) error {
	if err := validateAmounts(basic, allowances, deductions); err != nil {
		return err
	}

	p.Basic = basic
	p.Allowances = allowances
	p.Deductions = deductions
	p.recalcNetSalary()
	p.UpdatedAt = time.Now()

	return nil
}

// Process transitions the payroll to PROCESSED. Processing twice is a no-op.
func (p *Payroll) Process() error {
	if p.Status == PayrollStatusProcessed {
		return nil
	}
	if p.Status != PayrollStatusPending {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION", "Only pending payrolls can be processed")
	}

	p.Status = PayrollStatusProcessed
	p.UpdatedAt = time.Now()

	return nil
}

// Pay transitions the payroll to PAID and stamps the paid date.
// Paying straight from PENDING is allowed; paying twice is a no-op.
func (p *Payroll) Pay() error {
	if p.Status == PayrollStatusPaid {
		return nil
	}
	if p.Status == PayrollStatusCancelled {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION", "Cancelled payrolls cannot be paid")
	}

	now := time.Now()
	p.Status = PayrollStatusPaid
	p.PaidDate = &now
	p.UpdatedAt = now

	return nil
}

// Cancel transitions the payroll to CANCELLED
func (p *Payroll) Cancel() error {
	if p.Status == PayrollStatusCancelled {
		return nil
	}
	if p.Status == PayrollStatusPaid {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION", "Paid payrolls cannot be cancelled")
	}

	p.Status = PayrollStatusCancelled
	p.UpdatedAt = time.Now()

	return nil
}

func (p *Payroll) recalcNetSalary() {
	p.NetSalary = p.Basic.Add(p.Allowances).Sub(p.Deductions).Round(2)
}

func validateAmounts(basic, allowances, deductions decimal.Decimal) error {
	if basic.IsNegative() || allowances.IsNegative() || deductions.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Payroll amounts cannot be negative")
	}
	return nil
}
