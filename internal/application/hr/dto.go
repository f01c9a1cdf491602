package hr

import (
	"time"

	"github.com/bizledger/backend/internal/domain/hr"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Employee DTOs
// =============================================================================

// CreateEmployeeRequest represents a request to create a new employee
type CreateEmployeeRequest struct {
	EmployeeCode string          `json:"employee_code" binding:"required,min=1,max=50"`
	FirstName    string          `json:"first_name" binding:"required,min=1,max=100"`
	LastName     string          `json:"last_name" binding:"required,min=1,max=100"`
	Email        string          `json:"email" binding:"omitempty,email,max=200"`
	Phone        string          `json:"phone" binding:"max=50"`
	Department   string          `json:"department" binding:"max=100"`
	Designation  string          `json:"designation" binding:"max=100"`
	Salary       decimal.Decimal `json:"salary" binding:"required"`
	JoiningDate  time.Time       `json:"joining_date" binding:"required"`
}

// UpdateEmployeeRequest represents a request to update an employee
type UpdateEmployeeRequest struct {
	FirstName   *string          `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName    *string          `json:"last_name" binding:"omitempty,min=1,max=100"`
	Email       *string          `json:"email" binding:"omitempty,email,max=200"`
	Phone       *string          `json:"phone" binding:"omitempty,max=50"`
	Department  *string          `json:"department" binding:"omitempty,max=100"`
	Designation *string          `json:"designation" binding:"omitempty,max=100"`
	Salary      *decimal.Decimal `json:"salary"`
}

// EmployeeResponse represents an employee in API responses
type EmployeeResponse struct {
	ID           uuid.UUID       `json:"id"`
	EmployeeCode string          `json:"employee_code"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Department   string          `json:"department"`
	Designation  string          `json:"designation"`
	Salary       decimal.Decimal `json:"salary"`
	JoiningDate  time.Time       `json:"joining_date"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// EmployeeListFilter represents filter options for employee lists
type EmployeeListFilter struct {
	Search     string `form:"q"`
	Department string `form:"department"`
	Skip       int    `form:"skip" binding:"min=0"`
	Take       int    `form:"take" binding:"min=0,max=500"`
}

// ToEmployeeResponse converts a domain Employee to EmployeeResponse
func ToEmployeeResponse(e *hr.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		Phone:        e.Phone,
		Department:   e.Department,
		Designation:  e.Designation,
		Salary:       e.Salary,
		JoiningDate:  e.JoiningDate,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// ToEmployeeResponses converts a slice of domain Employees to EmployeeResponses
func ToEmployeeResponses(employees []hr.Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = ToEmployeeResponse(&employees[i])
	}
	return responses
}

// =============================================================================
// Payroll DTOs
// =============================================================================

// CreatePayrollRequest represents a request to create a payroll entry
type CreatePayrollRequest struct {
	EmployeeID uuid.UUID        `json:"employee_id" binding:"required"`
	Month      int              `json:"month" binding:"required,min=1,max=12"`
	Year       int              `json:"year" binding:"required,min=2000"`
	Basic      decimal.Decimal  `json:"basic" binding:"required"`
	Allowances *decimal.Decimal `json:"allowances"`
	Deductions *decimal.Decimal `json:"deductions"`
}

// UpdatePayrollRequest represents a generic payroll update. The status
// field accepts CANCELLED to withdraw an unpaid payroll.
type UpdatePayrollRequest struct {
	Basic      *decimal.Decimal `json:"basic"`
	Allowances *decimal.Decimal `json:"allowances"`
	Deductions *decimal.Decimal `json:"deductions"`
	Status     *string          `json:"status" binding:"omitempty,oneof=PENDING PROCESSED PAID CANCELLED"`
}

// PayrollResponse represents a payroll entry in API responses
type PayrollResponse struct {
	ID         uuid.UUID       `json:"id"`
	EmployeeID uuid.UUID       `json:"employee_id"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	Basic      decimal.Decimal `json:"basic"`
	Allowances decimal.Decimal `json:"allowances"`
	Deductions decimal.Decimal `json:"deductions"`
	NetSalary  decimal.Decimal `json:"net_salary"`
	Status     string          `json:"status"`
	PaidDate   *time.Time      `json:"paid_date"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// PayrollListFilter represents filter options for payroll lists
type PayrollListFilter struct {
	EmployeeID *uuid.UUID `form:"employee_id"`
	Month      *int       `form:"month" binding:"omitempty,min=1,max=12"`
	Year       *int       `form:"year" binding:"omitempty,min=2000"`
	Status     string     `form:"status" binding:"omitempty,oneof=PENDING PROCESSED PAID CANCELLED"`
	Skip       int        `form:"skip" binding:"min=0"`
	Take       int        `form:"take" binding:"min=0,max=500"`
}

// ToPayrollResponse converts a domain Payroll to PayrollResponse
func ToPayrollResponse(p *hr.Payroll) PayrollResponse {
	return PayrollResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Month:      p.Month,
		Year:       p.Year,
		Basic:      p.Basic,
		Allowances: p.Allowances,
		Deductions: p.Deductions,
		NetSalary:  p.NetSalary,
		Status:     string(p.Status),
		PaidDate:   p.PaidDate,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// ToPayrollResponses converts a slice of domain Payrolls to PayrollResponses
func ToPayrollResponses(payrolls []hr.Payroll) []PayrollResponse {
	responses := make([]PayrollResponse, len(payrolls))
	for i := range payrolls {
		responses[i] = ToPayrollResponse(&payrolls[i])
	}
	return responses
}
