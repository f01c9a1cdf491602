package hr

import (
	"context"

	"github.com/bizledger/backend/internal/domain/hr"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EmployeeService handles employee-related business operations
type EmployeeService struct {
	employeeRepo hr.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employeeRepo hr.EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
	}
}

// Create creates a new employee
func (s *EmployeeService) Create(ctx context.Context, tenantID uuid.UUID, req CreateEmployeeRequest) (*EmployeeResponse, error) {
	exists, err := s.employeeRepo.ExistsByCode(ctx, tenantID, req.EmployeeCode)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Employee with this code already exists")
	}

	employee, err := hr.NewEmployee(tenantID, req.EmployeeCode, req.FirstName, req.LastName, req.Salary, req.JoiningDate)
	if err != nil {
		return nil, err
	}

	if req.Email != "" || req.Phone != "" {
		if err := employee.SetContact(req.Email, req.Phone); err != nil {
			return nil, err
		}
	}

	if req.Department != "" || req.Designation != "" {
		if err := employee.Update(req.FirstName, req.LastName, req.Department, req.Designation); err != nil {
			return nil, err
		}
	}

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// GetByID retrieves an employee by ID
func (s *EmployeeService) GetByID(ctx context.Context, tenantID, employeeID uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByIDForTenant(ctx, tenantID, employeeID)
	if err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// List retrieves employees with search and pagination
func (s *EmployeeService) List(ctx context.Context, tenantID uuid.UUID, filter EmployeeListFilter) ([]EmployeeResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Take = 100
	domainFilter.Skip = filter.Skip
	if filter.Take > 0 {
		domainFilter.Take = filter.Take
	}
	domainFilter.Search = filter.Search
	if filter.Department != "" {
		domainFilter.Filters["department"] = filter.Department
	}
	domainFilter.Filters["is_active"] = true

	employees, err := s.employeeRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.employeeRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToEmployeeResponses(employees), total, nil
}

// Update updates an employee
func (s *EmployeeService) Update(ctx context.Context, tenantID, employeeID uuid.UUID, req UpdateEmployeeRequest) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByIDForTenant(ctx, tenantID, employeeID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil || req.LastName != nil || req.Department != nil || req.Designation != nil {
		firstName := employee.FirstName
		lastName := employee.LastName
		department := employee.Department
		designation := employee.Designation

		if req.FirstName != nil {
			firstName = *req.FirstName
		}
		if req.LastName != nil {
			lastName = *req.LastName
		}
		if req.Department != nil {
			department = *req.Department
		}
		if req.Designation != nil {
			designation = *req.Designation
		}

		if err := employee.Update(firstName, lastName, department, designation); err != nil {
			return nil, err
		}
	}

	if req.Email != nil || req.Phone != nil {
		email := employee.Email
		phone := employee.Phone
		if req.Email != nil {
			email = *req.Email
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if err := employee.SetContact(email, phone); err != nil {
			return nil, err
		}
	}

	if req.Salary != nil {
		if err := employee.SetSalary(*req.Salary); err != nil {
			return nil, err
		}
	}

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// Delete deactivates an employee. The row is kept for payroll history.
func (s *EmployeeService) Delete(ctx context.Context, tenantID, employeeID uuid.UUID) error {
	employee, err := s.employeeRepo.FindByIDForTenant(ctx, tenantID, employeeID)
	if err != nil {
		return err
	}

	employee.Deactivate()

	return s.employeeRepo.Save(ctx, employee)
}
