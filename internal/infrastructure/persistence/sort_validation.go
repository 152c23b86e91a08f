package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// FarmSortFields contains allowed sort fields for farms
var FarmSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"code":       true,
	"name":       true,
	"size":       true,
}

// FeedSortFields contains allowed sort fields for feeds
var FeedSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"name":          true,
	"feed_type_id":  true,
	"unit":          true,
	"cost_per_unit": true,
	"inventory":     true,
}

// FeedTypeSortFields contains allowed sort fields for feed types
var FeedTypeSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
}

// FeedPurchaseSortFields contains allowed sort fields for feed purchases
var FeedPurchaseSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"feed_id":       true,
	"quantity":      true,
	"cost":          true,
	"purchase_date": true,
	"is_paid":       true,
}

// FeedEntrySortFields contains allowed sort fields for feed consumption entries
var FeedEntrySortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"feed_id":        true,
	"animal_type_id": true,
	"quantity":       true,
	"total_cost":     true,
	"feed_date":      true,
}

// TransactionSortFields contains allowed sort fields for farm transactions
var TransactionSortFields = map[string]bool{
	"id":               true,
	"created_at":       true,
	"updated_at":       true,
	"transaction_type": true,
	"amount":           true,
	"transaction_date": true,
	"transaction_code": true,
}

// ExpenseSortFields contains allowed sort fields for expenses
var ExpenseSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"name":           true,
	"category":       true,
	"amount":         true,
	"total_paid":     true,
	"pending_amount": true,
	"payment_status": true,
	"due_date":       true,
}

// EquipmentSortFields contains allowed sort fields for equipment
var EquipmentSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"condition":  true,
}

// EquipmentPurchaseSortFields contains allowed sort fields for equipment purchases
var EquipmentPurchaseSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"equipment_id":   true,
	"total_cost":     true,
	"purchase_date":  true,
	"supplier":       true,
	"payment_status": true,
	"due_date":       true,
}

// TreatmentSortFields contains allowed sort fields for treatments
var TreatmentSortFields = map[string]bool{
	"id":               true,
	"created_at":       true,
	"updated_at":       true,
	"animal_id":        true,
	"vet_service_name": true,
	"treatment_date":   true,
	"cost":             true,
	"payment_status":   true,
	"due_date":         true,
}

// ProductSortFields contains allowed sort fields for farm products
var ProductSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"unit":       true,
	"inventory":  true,
}

// ProductionRecordSortFields contains allowed sort fields for production records
var ProductionRecordSortFields = map[string]bool{
	"id":              true,
	"created_at":      true,
	"updated_at":      true,
	"product_id":      true,
	"quantity":        true,
	"production_date": true,
}

// SaleSortFields contains allowed sort fields for product sales
var SaleSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"product_id":   true,
	"buyer_name":   true,
	"quantity":     true,
	"unit_price":   true,
	"total_amount": true,
	"sale_date":    true,
	"is_paid":      true,
}
