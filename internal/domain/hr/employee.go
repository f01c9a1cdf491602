package hr

import (
	"regexp"
	"strings"
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Employee represents a staff member in the HR context
type Employee struct {
	shared.TenantEntity
	EmployeeCode string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_employee_tenant_code,priority:2"`
	FirstName    string          `gorm:"type:varchar(100);not null"`
	LastName     string          `gorm:"type:varchar(100);not null"`
	Email        string          `gorm:"type:varchar(200);index"`
	Phone        string          `gorm:"type:varchar(50)"`
	Department   string          `gorm:"type:varchar(100);index"`
	Designation  string          `gorm:"type:varchar(100)"`
	Salary       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	JoiningDate  time.Time       `gorm:"not null"`
	IsActive     bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Employee) TableName() string {
	return "employees"
}

var employeeEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// NewEmployee creates a new employee with required fields
func NewEmployee(tenantID uuid.UUID, employeeCode, firstName, lastName string, salary decimal.Decimal, joiningDate time.Time) (*Employee, error) {
	if err := validateEmployeeCode(employeeCode); err != nil {
		return nil, err
	}
	if err := validateEmployeeName(firstName, lastName); err != nil {
		return nil, err
	}
	if salary.IsNegative() {
		return nil, shared.NewDomainError("INVALID_SALARY", "Salary cannot be negative")
	}
	if joiningDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_JOINING_DATE", "Joining date is required")
	}

	return &Employee{
		TenantEntity: shared.NewTenantEntity(tenantID),
		EmployeeCode: strings.ToUpper(employeeCode),
		FirstName:    firstName,
		LastName:     lastName,
		Salary:       salary,
		JoiningDate:  joiningDate,
		IsActive:     true,
	}, nil
}

// Update updates the employee's basic information
func (e *Employee) Update(firstName, lastName, department, designation string) error {
	if err := validateEmployeeName(firstName, lastName); err != nil {
		return err
	}
	if department != "" && len(department) > 100 {
		return shared.NewDomainError("INVALID_DEPARTMENT", "Department cannot exceed 100 characters")
	}
	if designation != "" && len(designation) > 100 {
		return shared.NewDomainError("INVALID_DESIGNATION", "Designation cannot exceed 100 characters")
	}

	e.FirstName = firstName
	e.LastName = lastName
	e.Department = department
	e.Designation = designation
	e.UpdatedAt = time.Now()

	return nil
}

// SetContact sets the employee's contact information
func (e *Employee) SetContact(email, phone string) error {
	if email != "" && !employeeEmailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	if phone != "" && len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 50 characters")
	}

	e.Email = email
	e.Phone = phone
	e.UpdatedAt = time.Now()

	return nil
}

// SetSalary sets the employee's monthly salary
func (e *Employee) SetSalary(salary decimal.Decimal) error {
	if salary.IsNegative() {
		return shared.NewDomainError("INVALID_SALARY", "Salary cannot be negative")
	}

	e.Salary = salary
	e.UpdatedAt = time.Now()

	return nil
}

// FullName returns the employee's full name
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Deactivate soft-deletes the employee
func (e *Employee) Deactivate() {
	e.IsActive = false
	e.UpdatedAt = time.Now()
}

func validateEmployeeCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_EMPLOYEE_CODE", "Employee code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_EMPLOYEE_CODE", "Employee code cannot exceed 50 characters")
	}
	return nil
}

func validateEmployeeName(firstName, lastName string) error {
	if firstName == "" {
		return shared.NewDomainError("INVALID_NAME", "First name cannot be empty")
	}
	if lastName == "" {
		return shared.NewDomainError("INVALID_NAME", "Last name cannot be empty")
	}
	if len(firstName) > 100 || len(lastName) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 100 characters")
	}
	return nil
}
