package persistence

import (
	"context"
	"time"

	"github.com/farmstead/backend/internal/domain/report"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormStatisticsRepository implements StatisticsRepository using GORM. Each
// sum is an independent aggregate query; soft-deleted rows never count.
type GormStatisticsRepository struct {
	db *gorm.DB
}

// NewGormStatisticsRepository creates a new GormStatisticsRepository
func NewGormStatisticsRepository(db *gorm.DB) *GormStatisticsRepository {
	return &GormStatisticsRepository{db: db}
}

// sumColumn runs a COALESCE(SUM(column), 0) over the prepared query
func (r *GormStatisticsRepository) sumColumn(query *gorm.DB, column string) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	if err := query.Select("COALESCE(SUM(" + column + "), 0) as total").Scan(&result).Error; err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// SumProductSales sums live sale totals dated within [start, end]
func (r *GormStatisticsRepository) SumProductSales(ctx context.Context, farmID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	return r.sumColumn(
		r.db.WithContext(ctx).Table("product_sales").
			Where("farm_id = ? AND is_deleted = ? AND sale_date BETWEEN ? AND ?", farmID, false, start, end),
		"total_amount",
	)
}

// SumIncomingTransactions sums incoming ledger transactions dated within [start, end]
func (r *GormStatisticsRepository) SumIncomingTransactions(ctx context.Context, farmID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	return r.sumColumn(
		r.db.WithContext(ctx).Table("farm_transactions").
			Where("farm_id = ? AND transaction_type = ? AND transaction_date BETWEEN ? AND ?", farmID, "incoming", start, end),
		"amount",
	)
}

// SumOutgoingTransactions sums outgoing ledger transactions dated within [start, end]
func (r *GormStatisticsRepository) SumOutgoingTransactions(ctx context.Context, farmID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	return r.sumColumn(
		r.db.WithContext(ctx).Table("farm_transactions").
			Where("farm_id = ? AND transaction_type = ? AND transaction_date BETWEEN ? AND ?", farmID, "outgoing", start, end),
		"amount",
	)
}

// SumExpenses sums expenses due within [start, end]
func (r *GormStatisticsRepository) SumExpenses(ctx context.Context, farmID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	return r.sumColumn(
		r.db.WithContext(ctx).Table("expenses").
			Where("farm_id = ? AND due_date BETWEEN ? AND ?", farmID, start, end),
		"amount",
	)
}

// SumTreatmentCosts sums treatment costs dated within [start, end]
func (r *GormStatisticsRepository) SumTreatmentCosts(ctx context.Context, farmID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	return r.sumColumn(
		r.db.WithContext(ctx).Table("treatments").
			Where("farm_id = ? AND treatment_date BETWEEN ? AND ?", farmID, start, end),
		"cost",
	)
}

// SumEquipmentPurchases sums equipment purchase costs dated within [start, end]
func (r *GormStatisticsRepository) SumEquipmentPurchases(ctx context.Context, farmID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	return r.sumColumn(
		r.db.WithContext(ctx).Table("equipment_purchases").
			Where("farm_id = ? AND purchase_date BETWEEN ? AND ?", farmID, start, end),
		"total_cost",
	)
}

// SumFeedPurchases sums live feed purchase costs dated within [start, end]
func (r *GormStatisticsRepository) SumFeedPurchases(ctx context.Context, farmID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	return r.sumColumn(
		r.db.WithContext(ctx).Table("feed_purchases").
			Where("farm_id = ? AND is_deleted = ? AND purchase_date BETWEEN ? AND ?", farmID, false, start, end),
		"cost",
	)
}

// SumFeedConsumption sums live consumption entry costs dated within [start, end]
func (r *GormStatisticsRepository) SumFeedConsumption(ctx context.Context, farmID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	return r.sumColumn(
		r.db.WithContext(ctx).Table("feed_entries").
			Where("farm_id = ? AND is_deleted = ? AND feed_date BETWEEN ? AND ?", farmID, false, start, end),
		"total_cost",
	)
}

// Ensure GormStatisticsRepository implements StatisticsRepository
var _ report.StatisticsRepository = (*GormStatisticsRepository)(nil)
