package persistence

import (
	"strings"

	"github.com/bizledger/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// applySearch matches the filter's search term against the given columns
// with a case-insensitive contains
func applySearch(query *gorm.DB, search string, columns ...string) *gorm.DB {
	if search == "" || len(columns) == 0 {
		return query
	}

	pattern := "%" + search + "%"
	clauses := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, column := range columns {
		clauses[i] = column + " ILIKE ?"
		args[i] = pattern
	}

	return query.Where(strings.Join(clauses, " OR "), args...)
}

// applyPagination applies skip/take and ordering to a list query
func applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Skip > 0 {
		query = query.Offset(filter.Skip)
	}
	if filter.Take > 0 {
		query = query.Limit(filter.Take)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	}

	return query
}
