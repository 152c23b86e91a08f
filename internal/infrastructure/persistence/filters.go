package persistence

import (
	"fmt"

	"github.com/farmstead/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// applySort orders the query by a whitelisted column, falling back to
// created_at when the requested field is unknown.
func applySort(query *gorm.DB, filter shared.Filter, allowedFields map[string]bool) *gorm.DB {
	sortField := ValidateSortField(filter.OrderBy, allowedFields, "created_at")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	return query.Order(fmt.Sprintf("%s %s", sortField, sortOrder))
}

// applyPagination applies page-based offset and limit when both are set.
func applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	return query
}

// applyFilter applies whitelisted ordering and pagination to a list query.
func applyFilter(query *gorm.DB, filter shared.Filter, allowedFields map[string]bool) *gorm.DB {
	return applyPagination(applySort(query, filter, allowedFields), filter)
}
