package hr

import (
	"context"

	"github.com/bizledger/backend/internal/domain/hr"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayrollService handles payroll business operations
type PayrollService struct {
	payrollRepo       hr.PayrollRepository
	employeeRepo      hr.EmployeeRepository
	strictTransitions bool
}

// NewPayrollService creates a new PayrollService
func NewPayrollService(payrollRepo hr.PayrollRepository, employeeRepo hr.EmployeeRepository, strictTransitions bool) *PayrollService {
	return &PayrollService{
		payrollRepo:       payrollRepo,
		employeeRepo:      employeeRepo,
		strictTransitions: strictTransitions,
	}
}

// Create creates a payroll entry with a computed net salary
func (s *PayrollService) Create(ctx context.Context, tenantID uuid.UUID, req CreatePayrollRequest) (*PayrollResponse, error) {
	if _, err := s.employeeRepo.FindByIDForTenant(ctx, tenantID, req.EmployeeID); err != nil {
		return nil, err
	}

	allowances := decimal.Zero
	if req.Allowances != nil {
		allowances = *req.Allowances
	}
	deductions := decimal.Zero
	if req.Deductions != nil {
		deductions = *req.Deductions
	}

	payroll, err := hr.NewPayroll(tenantID, req.EmployeeID, req.Month, req.Year, req.Basic, allowances, deductions)
	if err != nil {
		return nil, err
	}

	if err := s.payrollRepo.Save(ctx, payroll); err != nil {
		return nil, err
	}

	response := ToPayrollResponse(payroll)
	return &response, nil
}

// GetByID retrieves a payroll entry by ID
func (s *PayrollService) GetByID(ctx context.Context, tenantID, payrollID uuid.UUID) (*PayrollResponse, error) {
	payroll, err := s.payrollRepo.FindByIDForTenant(ctx, tenantID, payrollID)
	if err != nil {
		return nil, err
	}

	response := ToPayrollResponse(payroll)
	return &response, nil
}

// List retrieves payroll entries with filtering and pagination
func (s *PayrollService) List(ctx context.Context, tenantID uuid.UUID, filter PayrollListFilter) ([]PayrollResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Take = 100
	domainFilter.Skip = filter.Skip
	if filter.Take > 0 {
		domainFilter.Take = filter.Take
	}
	if filter.EmployeeID != nil {
		domainFilter.Filters["employee_id"] = *filter.EmployeeID
	}
	if filter.Month != nil {
		domainFilter.Filters["month"] = *filter.Month
	}
	if filter.Year != nil {
		domainFilter.Filters["year"] = *filter.Year
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	payrolls, err := s.payrollRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.payrollRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToPayrollResponses(payrolls), total, nil
}

// Process transitions a payroll to PROCESSED
func (s *PayrollService) Process(ctx context.Context, tenantID, payrollID uuid.UUID) (*PayrollResponse, error) {
	payroll, err := s.payrollRepo.FindByIDForTenant(ctx, tenantID, payrollID)
	if err != nil {
		return nil, err
	}

	if err := payroll.Process(); err != nil {
		return nil, err
	}

	if err := s.payrollRepo.Save(ctx, payroll); err != nil {
		return nil, err
	}

	response := ToPayrollResponse(payroll)
	return &response, nil
}

// Pay transitions a payroll to PAID and stamps the paid date. In strict
// mode the payroll must be processed first; otherwise paying straight
// from PENDING is allowed.
func (s *PayrollService) Pay(ctx context.Context, tenantID, payrollID uuid.UUID) (*PayrollResponse, error) {
	payroll, err := s.payrollRepo.FindByIDForTenant(ctx, tenantID, payrollID)
	if err != nil {
		return nil, err
	}

	if s.strictTransitions && payroll.Status != hr.PayrollStatusPaid {
		if !payroll.Status.CanTransitionTo(hr.PayrollStatusPaid) {
			return nil, shared.NewDomainError("INVALID_STATUS_TRANSITION", "Payroll cannot be paid from its current status")
		}
	}

	if err := payroll.Pay(); err != nil {
		return nil, err
	}

	if err := s.payrollRepo.Save(ctx, payroll); err != nil {
		return nil, err
	}

	response := ToPayrollResponse(payroll)
	return &response, nil
}

// Update updates payroll amounts and, optionally, the status. Amount
// changes recompute the net salary.
func (s *PayrollService) Update(ctx context.Context, tenantID, payrollID uuid.UUID, req UpdatePayrollRequest) (*PayrollResponse, error) {
	payroll, err := s.payrollRepo.FindByIDForTenant(ctx, tenantID, payrollID)
	if err != nil {
		return nil, err
	}

	if req.Basic != nil || req.Allowances != nil || req.Deductions != nil {
		basic := payroll.Basic
		allowances := payroll.Allowances
		deductions := payroll.Deductions

		if req.Basic != nil {
			basic = *req.Basic
		}
		if req.Allowances != nil {
			allowances = *req.Allowances
		}
		if req.Deductions != nil {
			deductions = *req.Deductions
		}

		if err := payroll.SetAmounts(basic, allowances, deductions); err != nil {
			return nil, err
		}
	}

	if req.Status != nil {
		target := hr.PayrollStatus(*req.Status)
		if !target.IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", "Invalid payroll status")
		}
		if target != payroll.Status {
			if s.strictTransitions && !payroll.Status.CanTransitionTo(target) {
				return nil, shared.NewDomainError("INVALID_STATUS_TRANSITION", "Payroll cannot move to the requested status")
			}
			switch target {
			case hr.PayrollStatusProcessed:
				err = payroll.Process()
			case hr.PayrollStatusPaid:
				err = payroll.Pay()
			case hr.PayrollStatusCancelled:
				err = payroll.Cancel()
			default:
				err = shared.NewDomainError("INVALID_STATUS_TRANSITION", "Payroll cannot move to the requested status")
			}
			if err != nil {
				return nil, err
			}
		}
	}

	if err := s.payrollRepo.Save(ctx, payroll); err != nil {
		return nil, err
	}

	response := ToPayrollResponse(payroll)
	return &response, nil
}

// Delete removes a payroll entry
func (s *PayrollService) Delete(ctx context.Context, tenantID, payrollID uuid.UUID) error {
	if _, err := s.payrollRepo.FindByIDForTenant(ctx, tenantID, payrollID); err != nil {
		return err
	}

	return s.payrollRepo.DeleteForTenant(ctx, tenantID, payrollID)
}
