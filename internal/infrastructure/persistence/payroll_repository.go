package persistence

import (
	"context"
	"errors"

	"github.com/bizledger/backend/internal/domain/hr"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPayrollRepository implements PayrollRepository using GORM
type GormPayrollRepository struct {
	db *gorm.DB
}

// NewGormPayrollRepository creates a new GormPayrollRepository
func NewGormPayrollRepository(db *gorm.DB) *GormPayrollRepository {
	return &GormPayrollRepository{db: db}
}

// FindByID finds a payroll by its ID
func (r *GormPayrollRepository) FindByID(ctx context.Context, id uuid.UUID) (*hr.Payroll, error) {
	var payroll hr.Payroll
	if err := r.db.WithContext(ctx).First(&payroll, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payroll, nil
}

// FindByIDForTenant finds a payroll by ID within a tenant
func (r *GormPayrollRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*hr.Payroll, error) {
	var payroll hr.Payroll
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&payroll).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payroll, nil
}

// FindAllForTenant finds all payrolls for a tenant matching the filter
func (r *GormPayrollRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]hr.Payroll, error) {
	var payrolls []hr.Payroll
	query := applyPagination(r.filtered(ctx, tenantID, filter), filter)

	if err := query.Find(&payrolls).Error; err != nil {
		return nil, err
	}
	return payrolls, nil
}

// CountForTenant counts payrolls for a tenant matching the filter
func (r *GormPayrollRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.filtered(ctx, tenantID, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a payroll
func (r *GormPayrollRepository) Save(ctx context.Context, payroll *hr.Payroll) error {
	return r.db.WithContext(ctx).Save(payroll).Error
}

// Delete deletes a payroll
func (r *GormPayrollRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&hr.Payroll{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteForTenant deletes a payroll within a tenant
func (r *GormPayrollRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&hr.Payroll{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormPayrollRepository) filtered(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&hr.Payroll{}).Where("tenant_id = ?", tenantID)

	for key, value := range filter.Filters {
		switch key {
		case "employee_id":
			query = query.Where("employee_id = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "month":
			query = query.Where("month = ?", value)
		case "year":
			query = query.Where("year = ?", value)
		}
	}

	return query
}

// Ensure GormPayrollRepository implements PayrollRepository
var _ hr.PayrollRepository = (*GormPayrollRepository)(nil)
